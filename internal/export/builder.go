package export

import (
	"time"

	"github.com/ramonehamilton/rudc-rec/internal/aggregate"
	"github.com/ramonehamilton/rudc-rec/internal/cards"
	"github.com/ramonehamilton/rudc-rec/internal/corpus"
	"github.com/ramonehamilton/rudc-rec/internal/stats"
)

// Defaults for the ranking limits.
const (
	DefaultTopCardsPerCategory = 50
	DefaultCardDetailMinDecks  = 3
	DefaultRecentTopN          = 20
	DefaultSearchIndexLimit    = 500
)

// SiteBuilder derives every published view from an aggregation result.
//
// Example usage:
//
//	site := NewSiteBuilder(result).
//	    WithBanlist(banlist).
//	    WithAsOf(time.Now().UTC()).
//	    Build()
type SiteBuilder struct {
	result  *aggregate.Result
	banlist *corpus.Banlist
	asOf    time.Time

	topCardsPerCategory int
	cardDetailMinDecks  int
	recentTopN          int
	searchIndexLimit    int
	imageBaseURL        string

	windows stats.RecencyWindows
}

// NewSiteBuilder creates a builder with default limits and the current time as reference.
func NewSiteBuilder(result *aggregate.Result) *SiteBuilder {
	return &SiteBuilder{
		result:              result,
		asOf:                time.Now().UTC(),
		topCardsPerCategory: DefaultTopCardsPerCategory,
		cardDetailMinDecks:  DefaultCardDetailMinDecks,
		recentTopN:          DefaultRecentTopN,
		searchIndexLimit:    DefaultSearchIndexLimit,
		imageBaseURL:        cards.DefaultImageBaseURL,
	}
}

// WithBanlist sets the ban list used for commander ban status and banlist.json.
func (b *SiteBuilder) WithBanlist(banlist *corpus.Banlist) *SiteBuilder {
	b.banlist = banlist
	return b
}

// WithAsOf sets the reference instant for recency windows and the last_updated date.
func (b *SiteBuilder) WithAsOf(asOf time.Time) *SiteBuilder {
	b.asOf = asOf.UTC()
	return b
}

// WithTopCardsPerCategory caps each category of a top-card list.
func (b *SiteBuilder) WithTopCardsPerCategory(n int) *SiteBuilder {
	if n > 0 {
		b.topCardsPerCategory = n
	}
	return b
}

// WithCardDetailMinDecks sets how many decks a card needs before it gets a detail page.
func (b *SiteBuilder) WithCardDetailMinDecks(n int) *SiteBuilder {
	if n > 0 {
		b.cardDetailMinDecks = n
	}
	return b
}

// WithRecentTopN sets the length of the recent-commanders list in meta.json.
func (b *SiteBuilder) WithRecentTopN(n int) *SiteBuilder {
	if n > 0 {
		b.recentTopN = n
	}
	return b
}

// WithSearchIndexLimit caps each kind in the search index.
func (b *SiteBuilder) WithSearchIndexLimit(n int) *SiteBuilder {
	if n > 0 {
		b.searchIndexLimit = n
	}
	return b
}

// WithImageBaseURL sets the card image CDN root.
func (b *SiteBuilder) WithImageBaseURL(base string) *SiteBuilder {
	if base != "" {
		b.imageBaseURL = base
	}
	return b
}

// Site holds every view of one build, ready to be written.
type Site struct {
	Commanders       []CommanderSummary
	CommanderDetails []CommanderDetail
	Pairs            []PairSummary
	PairDetails      []PairDetail
	Cards            []CardSummary
	CardDetails      []CardDetail
	Banlist          BanlistView
	Meta             Meta
	SearchIndex      []SearchEntry
}

// Build derives all views. The aggregation result is only read.
func (b *SiteBuilder) Build() *Site {
	b.windows = stats.NewRecencyWindows(b.asOf)

	site := &Site{}
	site.Commanders, site.CommanderDetails = b.buildCommanders()
	site.Pairs, site.PairDetails = b.buildPairs()
	site.Cards, site.CardDetails = b.buildCards()
	site.Banlist = b.buildBanlist()
	site.Meta = b.buildMeta(site)
	site.SearchIndex = b.buildSearchIndex(site)
	return site
}

func (b *SiteBuilder) imageURL(scryfallID string) string {
	return cards.ImageURLWithBase(b.imageBaseURL, scryfallID)
}

// globalPct is a card's inclusion percentage across the whole corpus.
func (b *SiteBuilder) globalPct(name string) float64 {
	return stats.InclusionPct(b.result.GlobalCards.Get(name), b.result.TotalDecks)
}
