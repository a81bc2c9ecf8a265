package export

import (
	"github.com/ramonehamilton/rudc-rec/internal/cards"
	"github.com/ramonehamilton/rudc-rec/internal/corpus"
)

// CommanderSummary is one row of commanders.json and the header of a commander page.
type CommanderSummary struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ScryfallID    string           `json:"scryfall_id"`
	ImageURI      string           `json:"image_uri"`
	ColorIdentity []string         `json:"color_identity"`
	TypeLine      string           `json:"type_line"`
	ManaCost      string           `json:"mana_cost"`
	CMC           float64          `json:"cmc"`
	DeckCount     int              `json:"deck_count"`
	DeckCount30d  int              `json:"deck_count_30d"`
	DeckCount90d  int              `json:"deck_count_90d"`
	DeckCount180d int              `json:"deck_count_180d"`
	BanStatus     corpus.BanStatus `json:"ban_status"`
	IsBanned      bool             `json:"is_banned"`
	BannedType    *string          `json:"banned_type"`
	Partners      []PartnerRef     `json:"partners,omitempty"`
}

// PartnerRef links a commander to a co-commander it has shared decks with.
type PartnerRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DeckCount int    `json:"deck_count"`
}

// TopCard is one ranked card within a commander or pair scope.
type TopCard struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	ScryfallID   string  `json:"scryfall_id"`
	ImageURI     string  `json:"image_uri"`
	InclusionPct float64 `json:"inclusion_pct"`
	GlobalPct    float64 `json:"global_pct"`
	DeckCount    int     `json:"deck_count"`
	Synergy      float64 `json:"synergy"`
}

// TopCards groups ranked cards by category. Every ranked category is present.
type TopCards map[cards.Category][]TopCard

// DeckEntry is a deck link on a commander or pair page. Only JSON-safe primitives.
type DeckEntry struct {
	Name      string `json:"name"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CommanderDetail is the content of commanders/<id>.json.
type CommanderDetail struct {
	Commander CommanderSummary `json:"commander"`
	TopCards  TopCards         `json:"top_cards"`
	Decks     []DeckEntry      `json:"decks"`
}

// PairMember summarizes one commander of a pair.
type PairMember struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ScryfallID    string   `json:"scryfall_id"`
	ImageURI      string   `json:"image_uri"`
	TypeLine      string   `json:"type_line"`
	ColorIdentity []string `json:"color_identity"`
}

// PairSummary is one row of pairs.json and the header of a pair page.
type PairSummary struct {
	ID            string         `json:"id"`
	PairType      cards.PairType `json:"pair_type"`
	Commanders    []PairMember   `json:"commanders"`
	ColorIdentity []string       `json:"color_identity"`
	DeckCount     int            `json:"deck_count"`
	DeckCount30d  int            `json:"deck_count_30d"`
	DeckCount90d  int            `json:"deck_count_90d"`
	DeckCount180d int            `json:"deck_count_180d"`
}

// PairDetail is the content of commanders/<pair-id>.json.
type PairDetail struct {
	Pair     PairSummary `json:"pair"`
	TopCards TopCards    `json:"top_cards"`
	Decks    []DeckEntry `json:"decks"`
}

// CardSummary is one row of cards.json.
type CardSummary struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	ScryfallID    string   `json:"scryfall_id"`
	ImageURI      string   `json:"image_uri"`
	TypeLine      string   `json:"type_line"`
	TotalDecks    int      `json:"total_decks"`
	TotalPct      float64  `json:"total_pct"`
	ColorIdentity []string `json:"color_identity"`
	HasDetail     bool     `json:"has_detail"`
}

// CardPage is the card header of a card detail page.
type CardPage struct {
	CardSummary
	ManaCost   string  `json:"mana_cost"`
	CMC        float64 `json:"cmc"`
	OracleText string  `json:"oracle_text"`
}

// CardCommander is the card's standing under one commander.
type CardCommander struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ImageURI           string  `json:"image_uri"`
	DeckCount          int     `json:"deck_count"`
	CommanderDeckCount int     `json:"commander_deck_count"`
	InclusionPct       float64 `json:"inclusion_pct"`
	GlobalPct          float64 `json:"global_pct"`
	Synergy            float64 `json:"synergy"`
}

// CardDetail is the content of cards/<slug>.json.
type CardDetail struct {
	Card       CardPage        `json:"card"`
	Commanders []CardCommander `json:"commanders"`
}

// BanlistView is banlist.json: the source entries with an image_uri added.
type BanlistView struct {
	BannedAsCommander []map[string]any `json:"banned_as_commander"`
	BannedInDeck      []map[string]any `json:"banned_in_deck"`
}

// Meta is meta.json.
type Meta struct {
	TotalDecks        int                `json:"total_decks"`
	TotalCommanders   int                `json:"total_commanders"`
	TotalUniqueCards  int                `json:"total_unique_cards"`
	TotalPairs        int                `json:"total_pairs"`
	TotalCardPages    int                `json:"total_card_pages"`
	LastUpdated       string             `json:"last_updated"`
	ColorDistribution map[string]int     `json:"color_distribution"`
	Top20Recent       []CommanderSummary `json:"top_20_recent"`
}

// SearchKind tags search index entries.
type SearchKind string

// Search index kinds.
const (
	KindCommander SearchKind = "commander"
	KindCard      SearchKind = "card"
)

// SearchEntry is one compact search-index.json row.
type SearchEntry struct {
	Name      string     `json:"name"`
	ID        string     `json:"id"`
	Kind      SearchKind `json:"kind"`
	DeckCount int        `json:"deck_count"`
	ImageURI  string     `json:"image_uri"`
}
