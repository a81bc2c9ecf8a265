package cards

import "strings"

// Category is the deck-building bucket a card is ranked in.
type Category string

// Card categories in classification priority order.
const (
	CategoryCreatures     Category = "creatures"
	CategoryInstants      Category = "instants"
	CategorySorceries     Category = "sorceries"
	CategoryPlaneswalkers Category = "planeswalkers"
	CategoryArtifacts     Category = "artifacts"
	CategoryEnchantments  Category = "enchantments"
	CategoryLands         Category = "lands"
	CategoryOther         Category = "other"
)

// Categories lists the ranked categories in output order. CategoryOther is never ranked.
var Categories = []Category{
	CategoryCreatures,
	CategoryInstants,
	CategorySorceries,
	CategoryArtifacts,
	CategoryEnchantments,
	CategoryPlaneswalkers,
	CategoryLands,
}

// typeRules is checked in order; the first substring match wins.
var typeRules = []struct {
	needle   string
	category Category
}{
	{"creature", CategoryCreatures},
	{"instant", CategoryInstants},
	{"sorcery", CategorySorceries},
	{"planeswalker", CategoryPlaneswalkers},
	{"artifact", CategoryArtifacts},
	{"enchantment", CategoryEnchantments},
	{"land", CategoryLands},
}

// ClassifyCardType maps a type line to its category. "Artifact Creature" is a creature.
func ClassifyCardType(typeLine string) Category {
	tl := strings.ToLower(typeLine)
	for _, rule := range typeRules {
		if strings.Contains(tl, rule.needle) {
			return rule.category
		}
	}
	return CategoryOther
}

// PairType describes how two commanders are allowed to share a deck.
type PairType string

// Pair classifications.
const (
	PairPartner    PairType = "partner"
	PairBackground PairType = "background"
	PairOther      PairType = "other"
)

// ClassifyPairType classifies a single commander card by its partner mechanic.
func ClassifyPairType(card Card) PairType {
	switch {
	case strings.Contains(card.TypeLine, "Background"):
		return PairBackground
	case strings.Contains(card.OracleText, "Partner"):
		return PairPartner
	case strings.Contains(card.OracleText, "Choose a Background"):
		return PairBackground
	default:
		return PairOther
	}
}

// ClassifyPair classifies a pair from its two members in canonical order.
// The second member decides unless it is unclassified, in which case the first does.
// Two unclassified members yield PairOther.
func ClassifyPair(first, second Card) PairType {
	if t := ClassifyPairType(second); t != PairOther {
		return t
	}
	return ClassifyPairType(first)
}
