package cards

import (
	"regexp"
	"strings"
)

// FaceSeparator separates the faces of a multi-faced card name.
const FaceSeparator = " // "

// PairSeparator joins the two member slugs of a partner pair id.
const PairSeparator = "--"

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// FrontFace returns the name of the front face of a multi-faced card.
func FrontFace(name string) string {
	front, _, _ := strings.Cut(name, FaceSeparator)
	return front
}

// Slugify converts a card name into the URL-safe identifier used for every
// output key: commander ids, card slugs and pair ids.
//
//	Slugify("Atraxa, Praetors' Voice")           // "atraxa-praetors-voice"
//	Slugify("Esika, God of the Tree // The Prismatic Bridge") // "esika-god-of-the-tree"
func Slugify(name string) string {
	s := strings.ToLower(FrontFace(name))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CanonicalPairID returns the id of the partner pair formed by two commanders.
// The id does not depend on argument order.
func CanonicalPairID(nameA, nameB string) string {
	a, b := Slugify(nameA), Slugify(nameB)
	if b < a {
		a, b = b, a
	}
	return a + PairSeparator + b
}

// CanonicalOrder returns the two names ordered the way CanonicalPairID orders their slugs.
func CanonicalOrder(nameA, nameB string) (first, second string) {
	if Slugify(nameB) < Slugify(nameA) {
		return nameB, nameA
	}
	return nameA, nameB
}
