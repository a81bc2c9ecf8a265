package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrBanlistMissing is returned when the ban list file does not exist.
var ErrBanlistMissing = errors.New("ban list not found")

// BanEntry is one card stub on the ban list. Fields holds the entry exactly as it
// appeared in the source so it can be re-emitted with additions.
type BanEntry struct {
	Name       string
	ScryfallID string
	Fields     map[string]any
}

// UnmarshalJSON keeps every source field and extracts the ones the build needs.
func (e *BanEntry) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		fields = map[string]any{}
	}

	e.Fields = fields
	e.Name, _ = fields["name"].(string)
	e.ScryfallID, _ = fields["scryfall_id"].(string)
	return nil
}

// Banlist holds both ban categories.
type Banlist struct {
	BannedAsCommander []BanEntry `json:"banned_as_commander"`
	BannedInDeck      []BanEntry `json:"banned_in_deck"`
}

// BanStatus is a commander's standing on the ban list.
type BanStatus string

// Ban statuses. A card on both lists is banned as commander.
const (
	BanNone        BanStatus = "none"
	BanAsCommander BanStatus = "banned_as_commander"
	BanInDeck      BanStatus = "banned_in_deck"
)

// StatusOf returns the ban status of a card by name.
func (b *Banlist) StatusOf(name string) BanStatus {
	if b == nil {
		return BanNone
	}
	for _, e := range b.BannedAsCommander {
		if e.Name == name {
			return BanAsCommander
		}
	}
	for _, e := range b.BannedInDeck {
		if e.Name == name {
			return BanInDeck
		}
	}
	return BanNone
}

// ShortType returns the short ban type published to the site, or nil when not banned.
func (s BanStatus) ShortType() *string {
	var t string
	switch s {
	case BanAsCommander:
		t = "commander"
	case BanInDeck:
		t = "deck"
	default:
		return nil
	}
	return &t
}

// LoadBanlist reads the ban list. A missing file is fatal for the run.
func LoadBanlist(path string) (*Banlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBanlistMissing, path)
		}
		return nil, fmt.Errorf("read ban list: %w", err)
	}

	var banlist Banlist
	if err := json.Unmarshal(data, &banlist); err != nil {
		return nil, fmt.Errorf("parse ban list: %w", err)
	}
	return &banlist, nil
}
