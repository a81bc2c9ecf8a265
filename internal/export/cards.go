package export

import (
	"sort"

	"github.com/ramonehamilton/rudc-rec/internal/cards"
	"github.com/ramonehamilton/rudc-rec/internal/stats"
)

func (b *SiteBuilder) buildCards() ([]CardSummary, []CardDetail) {
	r := b.result

	summaries := make([]CardSummary, 0, r.GlobalCards.Len())
	for _, name := range r.GlobalCards.Keys() {
		card := r.Card(name)
		count := r.GlobalCards.Get(name)
		summaries = append(summaries, CardSummary{
			Name:          name,
			Slug:          cards.Slugify(name),
			ScryfallID:    card.ScryfallID,
			ImageURI:      b.imageURL(card.ScryfallID),
			TypeLine:      card.TypeLine,
			TotalDecks:    count,
			TotalPct:      stats.InclusionPct(count, r.TotalDecks),
			ColorIdentity: card.SortedColors(),
			HasDetail:     count >= b.cardDetailMinDecks,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalDecks > summaries[j].TotalDecks
	})

	var details []CardDetail
	for _, summary := range summaries {
		if !summary.HasDetail {
			continue
		}
		details = append(details, b.cardDetail(summary))
	}

	return summaries, details
}

func (b *SiteBuilder) cardDetail(summary CardSummary) CardDetail {
	r := b.result
	card := r.Card(summary.Name)
	byCommander := r.CardCommanders.Group(summary.Name)

	commanders := make([]CardCommander, 0, byCommander.Len())
	for _, name := range byCommander.Keys() {
		count := byCommander.Get(name)
		cmdrDecks := 0
		if cmdr, ok := r.Commanders[name]; ok {
			cmdrDecks = cmdr.DeckCount()
		}
		inclusion := stats.InclusionPct(count, cmdrDecks)

		commanders = append(commanders, CardCommander{
			ID:                 cards.Slugify(name),
			Name:               name,
			ImageURI:           b.imageURL(r.Card(name).ScryfallID),
			DeckCount:          count,
			CommanderDeckCount: cmdrDecks,
			InclusionPct:       inclusion,
			GlobalPct:          summary.TotalPct,
			Synergy:            stats.Synergy(inclusion, summary.TotalPct),
		})
	}
	sort.SliceStable(commanders, func(i, j int) bool {
		return commanders[i].DeckCount > commanders[j].DeckCount
	})

	return CardDetail{
		Card: CardPage{
			CardSummary: summary,
			ManaCost:    card.ManaCost,
			CMC:         card.CMC,
			OracleText:  card.OracleText,
		},
		Commanders: commanders,
	}
}
