package export

import (
	"sort"

	"github.com/ramonehamilton/rudc-rec/internal/aggregate"
	"github.com/ramonehamilton/rudc-rec/internal/cards"
	"github.com/ramonehamilton/rudc-rec/internal/stats"
)

func newTopCards() TopCards {
	top := make(TopCards, len(cards.Categories))
	for _, cat := range cards.Categories {
		top[cat] = []TopCard{}
	}
	return top
}

// topCards ranks a scope's cards by inclusion percentage within each category.
// Cards classified as other are dropped. Ties keep first-seen order.
func (b *SiteBuilder) topCards(counts *aggregate.Counter, denominator int) TopCards {
	top := newTopCards()

	for _, name := range counts.Keys() {
		card := b.result.Card(name)
		cat := cards.ClassifyCardType(card.TypeLine)
		if cat == cards.CategoryOther {
			continue
		}

		count := counts.Get(name)
		inclusion := stats.InclusionPct(count, denominator)
		global := b.globalPct(name)

		top[cat] = append(top[cat], TopCard{
			Name:         name,
			Slug:         cards.Slugify(name),
			ScryfallID:   card.ScryfallID,
			ImageURI:     b.imageURL(card.ScryfallID),
			InclusionPct: inclusion,
			GlobalPct:    global,
			DeckCount:    count,
			Synergy:      stats.Synergy(inclusion, global),
		})
	}

	for _, cat := range cards.Categories {
		list := top[cat]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].InclusionPct > list[j].InclusionPct
		})
		if len(list) > b.topCardsPerCategory {
			top[cat] = list[:b.topCardsPerCategory]
		}
	}

	return top
}

// cleanDecks converts deck records into published entries, most recently updated first.
func cleanDecks(records []aggregate.DeckRecord) []DeckEntry {
	type keyed struct {
		entry   DeckEntry
		updated string
	}

	rows := make([]keyed, len(records))
	for i, d := range records {
		rows[i] = keyed{
			entry: DeckEntry{
				Name:      d.Name,
				Author:    d.Author,
				URL:       d.URL,
				CreatedAt: d.CreatedAt,
				UpdatedAt: d.UpdatedAt,
			},
			updated: d.UpdatedAt,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return updatedAfter(rows[i].updated, rows[j].updated)
	})

	out := make([]DeckEntry, len(rows))
	for i, r := range rows {
		out[i] = r.entry
	}
	return out
}

// updatedAfter compares update timestamps as instants when both parse, as text otherwise.
func updatedAfter(a, b string) bool {
	ta, okA := stats.ParseTimestamp(a)
	tb, okB := stats.ParseTimestamp(b)
	if okA && okB {
		return ta.After(tb)
	}
	return a > b
}
