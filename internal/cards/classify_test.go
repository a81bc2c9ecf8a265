package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCardType(t *testing.T) {
	tests := []struct {
		typeLine string
		want     Category
	}{
		{"Legendary Creature — Phyrexian Angel Horror", CategoryCreatures},
		{"Artifact Creature — Golem", CategoryCreatures},
		{"Instant", CategoryInstants},
		{"Tribal Sorcery — Elf", CategorySorceries},
		{"Legendary Planeswalker — Jace", CategoryPlaneswalkers},
		{"Artifact", CategoryArtifacts},
		{"Enchantment Artifact", CategoryArtifacts},
		{"Enchantment — Aura", CategoryEnchantments},
		{"Land — Forest", CategoryLands},
		{"Artifact Land", CategoryArtifacts},
		{"Creature — Land", CategoryCreatures},
		{"LEGENDARY CREATURE", CategoryCreatures},
		{"Legendary Enchantment — Background", CategoryEnchantments},
		{"Battle — Siege", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCardType(tt.typeLine), "type line %q", tt.typeLine)
	}
}

func TestClassifyPairType(t *testing.T) {
	background := Card{TypeLine: "Legendary Enchantment — Background"}
	chooser := Card{TypeLine: "Legendary Creature — Human", OracleText: "Choose a Background (You can have a Background as a second commander.)"}
	partner := Card{TypeLine: "Legendary Creature — Merfolk Wizard", OracleText: "Partner (You can have two commanders if both have partner.)"}
	plain := Card{TypeLine: "Legendary Creature — Dragon", OracleText: "Flying"}

	assert.Equal(t, PairBackground, ClassifyPairType(background))
	assert.Equal(t, PairBackground, ClassifyPairType(chooser))
	assert.Equal(t, PairPartner, ClassifyPairType(partner))
	assert.Equal(t, PairOther, ClassifyPairType(plain))
	assert.Equal(t, PairOther, ClassifyPairType(Card{}))
}

func TestClassifyPair(t *testing.T) {
	partner := Card{OracleText: "Partner"}
	background := Card{TypeLine: "Legendary Enchantment — Background"}
	plain := Card{TypeLine: "Legendary Creature"}

	assert.Equal(t, PairBackground, ClassifyPair(partner, background), "second member decides")
	assert.Equal(t, PairPartner, ClassifyPair(partner, plain), "falls back to first member")
	assert.Equal(t, PairOther, ClassifyPair(plain, plain))
}
