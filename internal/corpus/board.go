package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ramonehamilton/rudc-rec/internal/cards"
)

// BoardEntry is one named slot of a deck board.
type BoardEntry struct {
	Key      string
	Quantity int
	Card     cards.Card
}

// Name returns the card's own name, falling back to the board key.
func (e BoardEntry) Name() string {
	if e.Card.Name != "" {
		return e.Card.Name
	}
	return e.Key
}

// Board is a deck board (commanders or mainboard) keyed by card name.
// Entries keep the order they appear in the source document.
type Board struct {
	entries []BoardEntry
}

// NewBoard builds a board from entries in the given order.
func NewBoard(entries ...BoardEntry) *Board {
	return &Board{entries: entries}
}

// Entries returns the board entries in source order.
func (b *Board) Entries() []BoardEntry {
	if b == nil {
		return nil
	}
	return b.entries
}

// Len returns the number of entries on the board.
func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Names returns the distinct card names on the board in first-seen order.
func (b *Board) Names() []string {
	if b == nil {
		return nil
	}
	seen := make(map[string]bool, len(b.entries))
	names := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		name := e.Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// UnmarshalJSON decodes a board object, preserving key order.
func (b *Board) UnmarshalJSON(data []byte) error {
	b.entries = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("board: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("board: expected key, got %v", tok)
		}

		var slot struct {
			Quantity int        `json:"quantity"`
			Card     cards.Card `json:"card"`
		}
		if err := dec.Decode(&slot); err != nil {
			return fmt.Errorf("board entry %q: %w", key, err)
		}

		b.entries = append(b.entries, BoardEntry{Key: key, Quantity: slot.Quantity, Card: slot.Card})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
