package export

import (
	"sort"

	"github.com/samber/lo"

	"github.com/ramonehamilton/rudc-rec/internal/corpus"
)

// buildBanlist re-emits every ban entry with an image_uri. Entries without an art id
// borrow one from the corpus card with the same name.
func (b *SiteBuilder) buildBanlist() BanlistView {
	view := BanlistView{
		BannedAsCommander: []map[string]any{},
		BannedInDeck:      []map[string]any{},
	}
	if b.banlist == nil {
		return view
	}

	annotate := func(entries []corpus.BanEntry) []map[string]any {
		out := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			sid := e.ScryfallID
			if sid == "" {
				if card, ok := b.result.CardInfo[e.Name]; ok {
					sid = card.ScryfallID
				}
			}

			entry := make(map[string]any, len(e.Fields)+1)
			for k, v := range e.Fields {
				entry[k] = v
			}
			entry["image_uri"] = b.imageURL(sid)
			out = append(out, entry)
		}
		return out
	}

	view.BannedAsCommander = annotate(b.banlist.BannedAsCommander)
	view.BannedInDeck = annotate(b.banlist.BannedInDeck)
	return view
}

func (b *SiteBuilder) buildMeta(site *Site) Meta {
	colors := make(map[string]int)
	for _, cmdr := range site.Commanders {
		for _, c := range cmdr.ColorIdentity {
			colors[c] += cmdr.DeckCount
		}
	}

	recent := lo.Filter(site.Commanders, func(c CommanderSummary, _ int) bool {
		return c.DeckCount180d > 0
	})
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DeckCount180d > recent[j].DeckCount180d
	})
	if len(recent) > b.recentTopN {
		recent = recent[:b.recentTopN]
	}

	return Meta{
		TotalDecks:        b.result.TotalDecks,
		TotalCommanders:   len(site.Commanders),
		TotalUniqueCards:  len(site.Cards),
		TotalPairs:        len(site.Pairs),
		TotalCardPages:    len(site.CardDetails),
		LastUpdated:       b.asOf.Format("2006-01-02"),
		ColorDistribution: colors,
		Top20Recent:       recent,
	}
}

// buildSearchIndex lists the leading commanders, then the leading cards, in published order.
func (b *SiteBuilder) buildSearchIndex(site *Site) []SearchEntry {
	commanders := site.Commanders
	if len(commanders) > b.searchIndexLimit {
		commanders = commanders[:b.searchIndexLimit]
	}
	cardList := site.Cards
	if len(cardList) > b.searchIndexLimit {
		cardList = cardList[:b.searchIndexLimit]
	}

	index := make([]SearchEntry, 0, len(commanders)+len(cardList))
	for _, c := range commanders {
		index = append(index, SearchEntry{
			Name:      c.Name,
			ID:        c.ID,
			Kind:      KindCommander,
			DeckCount: c.DeckCount,
			ImageURI:  c.ImageURI,
		})
	}
	for _, c := range cardList {
		index = append(index, SearchEntry{
			Name:      c.Name,
			ID:        c.Slug,
			Kind:      KindCard,
			DeckCount: c.TotalDecks,
			ImageURI:  c.ImageURI,
		})
	}
	return index
}
