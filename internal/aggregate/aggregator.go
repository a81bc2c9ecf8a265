// Package aggregate folds the loaded decks into the counters every output is derived from.
package aggregate

import (
	"time"

	"go.uber.org/zap"

	"github.com/ramonehamilton/rudc-rec/internal/cards"
	"github.com/ramonehamilton/rudc-rec/internal/corpus"
	"github.com/ramonehamilton/rudc-rec/internal/stats"
)

// DefaultDeckURLBase is where deck links point when no base is configured.
const DefaultDeckURLBase = "https://moxfield.com/decks/"

// DeckRecord is the per-deck information kept for commander and pair deck lists.
type DeckRecord struct {
	PublicID  string
	Name      string
	Author    string
	URL       string
	CreatedAt string
	UpdatedAt string

	// Created is the parsed creation time; zero when missing or unparseable.
	Created time.Time
}

// Commander accumulates everything known about one commander.
type Commander struct {
	Name     string
	Decks    []DeckRecord
	Partners *Counter
}

// DeckCount is the number of distinct decks led by the commander.
func (c *Commander) DeckCount() int {
	return len(c.Decks)
}

// CreatedTimes returns the creation time of every deck, zero where unknown.
func (c *Commander) CreatedTimes() []time.Time {
	return createdTimes(c.Decks)
}

// Pair accumulates decks led by exactly one partner pair.
type Pair struct {
	ID      string
	Members [2]string
	Decks   []DeckRecord
	Cards   *Counter
}

// DeckCount is the number of decks led by the pair.
func (p *Pair) DeckCount() int {
	return len(p.Decks)
}

// CreatedTimes returns the creation time of every deck, zero where unknown.
func (p *Pair) CreatedTimes() []time.Time {
	return createdTimes(p.Decks)
}

func createdTimes(decks []DeckRecord) []time.Time {
	out := make([]time.Time, len(decks))
	for i, d := range decks {
		out[i] = d.Created
	}
	return out
}

// SkipStats counts decks that were loaded but not aggregated.
type SkipStats struct {
	NoCommanders int
}

// Result is the output of one aggregation pass. It is read-only once Aggregate returns.
type Result struct {
	TotalDecks int

	Commanders     map[string]*Commander
	CommanderOrder []string

	// CommanderCards counts, per commander name, the decks containing each mainboard card.
	CommanderCards *GroupedCounter

	Pairs     map[string]*Pair
	PairOrder []string

	// GlobalCards counts the decks containing each mainboard card across the corpus.
	GlobalCards *Counter

	// CardCommanders is the inverse of CommanderCards: card name, then commander name.
	CardCommanders *GroupedCounter

	// CardInfo holds the merged metadata for every commander and mainboard card seen.
	CardInfo map[string]cards.Card

	Skipped       SkipStats
	CardConflicts int
}

// Card returns the metadata for a card name. A miss yields a card carrying only its name.
func (r *Result) Card(name string) cards.Card {
	if c, ok := r.CardInfo[name]; ok {
		return c
	}
	return cards.Card{Name: name}
}

// Options configures the aggregator.
type Options struct {
	DeckURLBase string
}

// Aggregator performs the single pass over the corpus. It is not safe for concurrent use.
type Aggregator struct {
	opts   Options
	logger *zap.Logger
	result *Result
}

// New creates an aggregator with empty counters.
func New(opts Options, logger *zap.Logger) *Aggregator {
	if opts.DeckURLBase == "" {
		opts.DeckURLBase = DefaultDeckURLBase
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		opts:   opts,
		logger: logger.Named("aggregate"),
		result: &Result{
			Commanders:     make(map[string]*Commander),
			CommanderCards: NewGroupedCounter(),
			Pairs:          make(map[string]*Pair),
			GlobalCards:    NewCounter(),
			CardCommanders: NewGroupedCounter(),
			CardInfo:       make(map[string]cards.Card),
		},
	}
}

// Aggregate folds every deck and returns the result.
func Aggregate(decks []*corpus.Deck, opts Options, logger *zap.Logger) *Result {
	a := New(opts, logger)
	for _, deck := range decks {
		a.Add(deck)
	}
	return a.Result()
}

// Result returns the accumulated counters.
func (a *Aggregator) Result() *Result {
	return a.result
}

// Add folds one deck into the counters. It returns false when the deck has no commander
// and was skipped without touching any counter.
func (a *Aggregator) Add(deck *corpus.Deck) bool {
	r := a.result

	if !deck.HasCommanders() {
		r.Skipped.NoCommanders++
		return false
	}

	for _, entry := range deck.CommanderEntries() {
		c := entry.Card
		c.Name = entry.Name()
		a.recordCard(c)
	}
	for _, c := range deck.MainboardCards() {
		a.recordCard(c)
	}

	record := a.deckRecord(deck)
	commanderNames := deck.CommanderNames()
	mainboard := deck.MainboardNames()

	for _, name := range commanderNames {
		cmdr := a.commander(name)
		cmdr.Decks = append(cmdr.Decks, record)
		for _, card := range mainboard {
			r.CommanderCards.Inc(name, card)
			r.CardCommanders.Inc(card, name)
		}
	}

	for _, card := range mainboard {
		r.GlobalCards.Inc(card)
	}

	// Only the first two commanders form a pair; a third entry is ignored.
	if len(commanderNames) >= 2 {
		a.addPair(commanderNames[0], commanderNames[1], record, mainboard)
	}

	r.TotalDecks++
	return true
}

func (a *Aggregator) addPair(nameA, nameB string, record DeckRecord, mainboard []string) {
	r := a.result
	id := cards.CanonicalPairID(nameA, nameB)

	pair, ok := r.Pairs[id]
	if !ok {
		first, second := cards.CanonicalOrder(nameA, nameB)
		pair = &Pair{
			ID:      id,
			Members: [2]string{first, second},
			Cards:   NewCounter(),
		}
		r.Pairs[id] = pair
		r.PairOrder = append(r.PairOrder, id)
	}

	pair.Decks = append(pair.Decks, record)
	for _, card := range mainboard {
		pair.Cards.Inc(card)
	}

	a.commander(nameA).Partners.Inc(nameB)
	a.commander(nameB).Partners.Inc(nameA)
}

func (a *Aggregator) commander(name string) *Commander {
	r := a.result
	cmdr, ok := r.Commanders[name]
	if !ok {
		cmdr = &Commander{Name: name, Partners: NewCounter()}
		r.Commanders[name] = cmdr
		r.CommanderOrder = append(r.CommanderOrder, name)
	}
	return cmdr
}

// recordCard merges a card observation into the card-info table: the first observation
// wins and later ones only fill its empty fields.
func (a *Aggregator) recordCard(c cards.Card) {
	r := a.result
	existing, ok := r.CardInfo[c.Name]
	if !ok {
		r.CardInfo[c.Name] = c
		return
	}
	if existing.FillFrom(c) {
		r.CardConflicts++
		a.logger.Debug("Card metadata disagrees with first observation", zap.String("card", c.Name))
	}
	r.CardInfo[c.Name] = existing
}

func (a *Aggregator) deckRecord(deck *corpus.Deck) DeckRecord {
	created, _ := stats.ParseTimestamp(deck.CreatedAtUTC)
	return DeckRecord{
		PublicID:  deck.PublicID,
		Name:      deck.DisplayName(),
		Author:    deck.Author(),
		URL:       a.opts.DeckURLBase + deck.PublicID,
		CreatedAt: deck.CreatedAtUTC,
		UpdatedAt: deck.LastUpdatedAtUTC,
		Created:   created,
	}
}
