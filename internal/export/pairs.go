package export

import (
	"sort"

	"github.com/samber/lo"

	"github.com/ramonehamilton/rudc-rec/internal/aggregate"
	"github.com/ramonehamilton/rudc-rec/internal/cards"
)

func (b *SiteBuilder) buildPairs() ([]PairSummary, []PairDetail) {
	r := b.result

	summaries := make([]PairSummary, 0, len(r.PairOrder))
	for _, id := range r.PairOrder {
		summaries = append(summaries, b.pairSummary(r.Pairs[id]))
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].DeckCount > summaries[j].DeckCount
	})

	details := make([]PairDetail, 0, len(summaries))
	for _, summary := range summaries {
		pair := r.Pairs[summary.ID]
		details = append(details, PairDetail{
			Pair:     summary,
			TopCards: b.topCards(pair.Cards, pair.DeckCount()),
			Decks:    cleanDecks(pair.Decks),
		})
	}

	return summaries, details
}

func (b *SiteBuilder) pairSummary(pair *aggregate.Pair) PairSummary {
	first := b.result.Card(pair.Members[0])
	second := b.result.Card(pair.Members[1])
	windows := b.windows.Count(pair.CreatedTimes())

	colors := lo.Uniq(append(first.SortedColors(), second.SortedColors()...))
	sort.Strings(colors)

	return PairSummary{
		ID:            pair.ID,
		PairType:      cards.ClassifyPair(first, second),
		Commanders:    []PairMember{b.pairMember(first), b.pairMember(second)},
		ColorIdentity: colors,
		DeckCount:     pair.DeckCount(),
		DeckCount30d:  windows.Last30,
		DeckCount90d:  windows.Last90,
		DeckCount180d: windows.Last180,
	}
}

func (b *SiteBuilder) pairMember(card cards.Card) PairMember {
	return PairMember{
		ID:            cards.Slugify(card.Name),
		Name:          card.Name,
		ScryfallID:    card.ScryfallID,
		ImageURI:      b.imageURL(card.ScryfallID),
		TypeLine:      card.TypeLine,
		ColorIdentity: card.SortedColors(),
	}
}
