// Package corpus loads the scraper's output: the ban list, the deck index and the
// per-deck documents.
package corpus

import (
	"github.com/ramonehamilton/rudc-rec/internal/cards"
)

// User is the author sub-record of a deck.
type User struct {
	UserName string `json:"userName"`
}

// Deck is one scraped deck document.
type Deck struct {
	PublicID         string `json:"publicId"`
	Name             string `json:"name"`
	CreatedAtUTC     string `json:"createdAtUtc"`
	LastUpdatedAtUTC string `json:"lastUpdatedAtUtc"`
	CreatedByUser    *User  `json:"createdByUser,omitempty"`

	// Commanders is nil when the document has no commanders mapping at all.
	Commanders *Board `json:"commanders"`
	Mainboard  *Board `json:"mainboard"`

	// File is the source file the deck was read from.
	File string `json:"-"`
}

// DisplayName returns the deck name or "Unnamed".
func (d *Deck) DisplayName() string {
	if d.Name == "" {
		return "Unnamed"
	}
	return d.Name
}

// Author returns the author handle or "Unknown".
func (d *Deck) Author() string {
	if d.CreatedByUser == nil || d.CreatedByUser.UserName == "" {
		return "Unknown"
	}
	return d.CreatedByUser.UserName
}

// HasCommanders reports whether the deck can be attributed to any commander.
func (d *Deck) HasCommanders() bool {
	return d.Commanders.Len() > 0
}

// CommanderEntries returns the commander slots in source order.
func (d *Deck) CommanderEntries() []BoardEntry {
	return d.Commanders.Entries()
}

// CommanderNames returns the distinct commander names in source order.
func (d *Deck) CommanderNames() []string {
	return d.Commanders.Names()
}

// MainboardNames returns the set of mainboard card names in first-seen order.
func (d *Deck) MainboardNames() []string {
	return d.Mainboard.Names()
}

// MainboardCards returns every mainboard slot's card metadata in source order.
func (d *Deck) MainboardCards() []cards.Card {
	entries := d.Mainboard.Entries()
	out := make([]cards.Card, 0, len(entries))
	for _, e := range entries {
		c := e.Card
		c.Name = e.Name()
		out = append(out, c)
	}
	return out
}

// ApplySummary fills fields the deck document left empty from its deck index entry.
func (d *Deck) ApplySummary(s DeckSummary) {
	if d.Name == "" {
		d.Name = s.Name
	}
	if d.CreatedAtUTC == "" {
		d.CreatedAtUTC = s.CreatedAtUTC
	}
	if d.LastUpdatedAtUTC == "" {
		d.LastUpdatedAtUTC = s.LastUpdatedAtUTC
	}
	if (d.CreatedByUser == nil || d.CreatedByUser.UserName == "") && s.CreatedByUser != nil {
		d.CreatedByUser = &User{UserName: s.CreatedByUser.UserName}
	}
}
