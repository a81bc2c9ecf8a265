package cards

import "strings"

// DefaultImageBaseURL is the Scryfall image CDN root for normal-size front faces.
const DefaultImageBaseURL = "https://cards.scryfall.io/normal/front/"

// ImageURL builds the Scryfall CDN URL for a card art id using the default base URL.
func ImageURL(scryfallID string) string {
	return ImageURLWithBase(DefaultImageBaseURL, scryfallID)
}

// ImageURLWithBase builds the CDN URL for a card art id. The CDN shards images by the
// first two characters of the id. Ids shorter than two characters are malformed and
// yield an empty URL, as does an empty id.
func ImageURLWithBase(baseURL, scryfallID string) string {
	if len(scryfallID) < 2 {
		return ""
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + scryfallID[0:1] + "/" + scryfallID[1:2] + "/" + scryfallID + ".jpg"
}
