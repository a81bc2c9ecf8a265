// Package benchmarks measures the cost of the build stages on synthetic corpora.
//
// To run:
//
//	go test -bench=. -benchmem ./benchmarks/...
//
// To compare two revisions:
//
//	go install golang.org/x/perf/cmd/benchstat@latest
//	go test -bench=. -benchmem -count=5 ./benchmarks/... > old.txt
//	go test -bench=. -benchmem -count=5 ./benchmarks/... > new.txt
//	benchstat old.txt new.txt
package benchmarks

import (
	"encoding/json"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/ramonehamilton/rudc-rec/internal/aggregate"
	"github.com/ramonehamilton/rudc-rec/internal/cards"
	"github.com/ramonehamilton/rudc-rec/internal/corpus"
	"github.com/ramonehamilton/rudc-rec/internal/export"
)

var asOf = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

var typeLines = []string{"Creature — Elf", "Instant", "Sorcery", "Artifact", "Enchantment", "Planeswalker — Test", "Basic Land — Forest"}

func makeCard(id int) cards.Card {
	return cards.Card{
		Name:          fmt.Sprintf("Test Card %d", id),
		ScryfallID:    fmt.Sprintf("%08x-0000-0000-0000-000000000000", id),
		TypeLine:      typeLines[id%len(typeLines)],
		ManaCost:      "{2}{G}",
		CMC:           3,
		ColorIdentity: []string{"G"},
		OracleText:    "When this enters, search your library for a basic land card and put it onto the battlefield tapped.",
	}
}

// makeDeck builds a 99-card deck from a pool of poolSize cards. The deck's commander is one
// of a fixed set of the given size, and every fifth deck adds a partner.
func makeDeck(id, commanders, poolSize int) *corpus.Deck {
	cmdr := makeCard(1_000_000 + id%commanders)
	cmdr.TypeLine = "Legendary Creature — Test"
	cmdrEntries := []corpus.BoardEntry{{Key: cmdr.Name, Quantity: 1, Card: cmdr}}
	if id%5 == 0 {
		partner := makeCard(2_000_000 + id%7)
		partner.TypeLine = "Legendary Creature — Partner"
		partner.OracleText = "Partner"
		cmdrEntries = append(cmdrEntries, corpus.BoardEntry{Key: partner.Name, Quantity: 1, Card: partner})
	}

	mainboard := make([]corpus.BoardEntry, 99)
	for i := range mainboard {
		c := makeCard((id*31 + i*17) % poolSize)
		mainboard[i] = corpus.BoardEntry{Key: c.Name, Quantity: 1, Card: c}
	}

	created := asOf.Add(-time.Duration(id%400) * 24 * time.Hour).Format(time.RFC3339)
	return &corpus.Deck{
		PublicID:         fmt.Sprintf("deck-%d", id),
		Name:             fmt.Sprintf("Deck %d", id),
		CreatedAtUTC:     created,
		LastUpdatedAtUTC: created,
		Commanders:       corpus.NewBoard(cmdrEntries...),
		Mainboard:        corpus.NewBoard(mainboard...),
	}
}

func makeCorpus(decks int) []*corpus.Deck {
	out := make([]*corpus.Deck, decks)
	for i := range out {
		out[i] = makeDeck(i, decks/20+1, 3000)
	}
	return out
}

// BenchmarkAggregate measures the single pass over the corpus.
func BenchmarkAggregate(b *testing.B) {
	for _, size := range []int{1000, 5000, 20000} {
		decks := makeCorpus(size)
		b.Run(sizeName(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r := aggregate.Aggregate(decks, aggregate.Options{}, nil)
				runtime.KeepAlive(r)
			}
		})
	}
}

// BenchmarkBuildSite measures deriving every view from an aggregated corpus.
func BenchmarkBuildSite(b *testing.B) {
	for _, size := range []int{1000, 5000, 20000} {
		r := aggregate.Aggregate(makeCorpus(size), aggregate.Options{}, nil)
		b.Run(sizeName(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				site := export.NewSiteBuilder(r).WithAsOf(asOf).Build()
				runtime.KeepAlive(site)
			}
		})
	}
}

// BenchmarkDeckDecode measures decoding one deck document with ordered boards.
func BenchmarkDeckDecode(b *testing.B) {
	type entry struct {
		Quantity int        `json:"quantity"`
		Card     cards.Card `json:"card"`
	}
	doc := map[string]any{
		"publicId":   "deck-1",
		"name":       "Deck 1",
		"commanders": map[string]entry{"Commander": {Quantity: 1, Card: makeCard(1)}},
	}
	mainboard := make(map[string]entry, 99)
	for i := 0; i < 99; i++ {
		c := makeCard(i)
		mainboard[c.Name] = entry{Quantity: 1, Card: c}
	}
	doc["mainboard"] = mainboard

	data, err := json.Marshal(doc)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		var deck corpus.Deck
		if err := json.Unmarshal(data, &deck); err != nil {
			b.Fatal(err)
		}
	}
}

func sizeName(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprintf("%d", n)
}
