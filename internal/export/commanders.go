package export

import (
	"sort"

	"github.com/ramonehamilton/rudc-rec/internal/aggregate"
	"github.com/ramonehamilton/rudc-rec/internal/cards"
)

func (b *SiteBuilder) buildCommanders() ([]CommanderSummary, []CommanderDetail) {
	r := b.result

	summaries := make([]CommanderSummary, 0, len(r.CommanderOrder))
	for _, name := range r.CommanderOrder {
		summaries = append(summaries, b.commanderSummary(r.Commanders[name]))
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].DeckCount > summaries[j].DeckCount
	})

	details := make([]CommanderDetail, 0, len(summaries))
	for _, summary := range summaries {
		cmdr := r.Commanders[summary.Name]
		details = append(details, CommanderDetail{
			Commander: summary,
			TopCards:  b.topCards(r.CommanderCards.Group(cmdr.Name), cmdr.DeckCount()),
			Decks:     cleanDecks(cmdr.Decks),
		})
	}

	return summaries, details
}

func (b *SiteBuilder) commanderSummary(cmdr *aggregate.Commander) CommanderSummary {
	card := b.result.Card(cmdr.Name)
	windows := b.windows.Count(cmdr.CreatedTimes())
	status := b.banlist.StatusOf(cmdr.Name)

	return CommanderSummary{
		ID:            cards.Slugify(cmdr.Name),
		Name:          cmdr.Name,
		ScryfallID:    card.ScryfallID,
		ImageURI:      b.imageURL(card.ScryfallID),
		ColorIdentity: card.SortedColors(),
		TypeLine:      card.TypeLine,
		ManaCost:      card.ManaCost,
		CMC:           card.CMC,
		DeckCount:     cmdr.DeckCount(),
		DeckCount30d:  windows.Last30,
		DeckCount90d:  windows.Last90,
		DeckCount180d: windows.Last180,
		BanStatus:     status,
		IsBanned:      status.ShortType() != nil,
		BannedType:    status.ShortType(),
		Partners:      partnerRefs(cmdr.Partners),
	}
}

// partnerRefs lists co-commanders by shared deck count, ties in first-seen order.
func partnerRefs(partners *aggregate.Counter) []PartnerRef {
	if partners.Len() == 0 {
		return nil
	}

	refs := make([]PartnerRef, 0, partners.Len())
	for _, name := range partners.Keys() {
		refs = append(refs, PartnerRef{
			ID:        cards.Slugify(name),
			Name:      name,
			DeckCount: partners.Get(name),
		})
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].DeckCount > refs[j].DeckCount
	})
	return refs
}
