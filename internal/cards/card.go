// Package cards holds the card model shared by every stage of the build along with
// the identity and classification helpers derived from a card's name and text.
package cards

import "sort"

// Card represents the metadata scraped alongside a deck entry.
// Field names follow the Scryfall card object embedded in each deck record.
type Card struct {
	Name          string   `json:"name"`
	ScryfallID    string   `json:"scryfall_id"`
	TypeLine      string   `json:"type_line"`
	ManaCost      string   `json:"mana_cost"`
	CMC           float64  `json:"cmc"`
	ColorIdentity []string `json:"color_identity"`
	OracleText    string   `json:"oracle_text"`
}

// SortedColors returns a sorted copy of the card's color identity.
// A card without a color identity yields an empty, non-nil slice so it serializes as [].
func (c Card) SortedColors() []string {
	colors := make([]string, len(c.ColorIdentity))
	copy(colors, c.ColorIdentity)
	sort.Strings(colors)
	return colors
}

// IsZero reports whether no metadata at all is known for the card.
func (c Card) IsZero() bool {
	return c.Name == "" && c.ScryfallID == "" && c.TypeLine == "" && c.ManaCost == "" &&
		c.CMC == 0 && len(c.ColorIdentity) == 0 && c.OracleText == ""
}

// FillFrom copies fields that are empty on c from other and reports whether
// other disagreed with an already-populated field.
//
// Populated fields are never overwritten: the first observation of a card wins.
func (c *Card) FillFrom(other Card) (conflict bool) {
	fillString := func(dst *string, src string) {
		switch {
		case src == "":
		case *dst == "":
			*dst = src
		case *dst != src:
			conflict = true
		}
	}

	fillString(&c.Name, other.Name)
	fillString(&c.ScryfallID, other.ScryfallID)
	fillString(&c.TypeLine, other.TypeLine)
	fillString(&c.ManaCost, other.ManaCost)
	fillString(&c.OracleText, other.OracleText)

	if c.CMC == 0 {
		c.CMC = other.CMC
	} else if other.CMC != 0 && other.CMC != c.CMC {
		conflict = true
	}

	if len(c.ColorIdentity) == 0 {
		c.ColorIdentity = append([]string(nil), other.ColorIdentity...)
	}

	return conflict
}
