package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DeckSummary is one entry of the scraper's deck index.
type DeckSummary struct {
	PublicID         string `json:"publicId"`
	Name             string `json:"name"`
	CreatedAtUTC     string `json:"createdAtUtc"`
	LastUpdatedAtUTC string `json:"lastUpdatedAtUtc"`
	CreatedByUser    *User  `json:"createdByUser,omitempty"`
}

// DeckIndex maps public deck ids to their index summaries.
type DeckIndex map[string]DeckSummary

// LoadDeckIndex reads the deck index. The index is optional metadata: a missing file
// returns an empty index together with an error wrapping os.ErrNotExist.
func LoadDeckIndex(path string) (DeckIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DeckIndex{}, fmt.Errorf("deck index %s: %w", path, err)
		}
		return DeckIndex{}, fmt.Errorf("read deck index: %w", err)
	}

	var summaries []DeckSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return DeckIndex{}, fmt.Errorf("parse deck index: %w", err)
	}

	index := make(DeckIndex, len(summaries))
	for _, s := range summaries {
		if s.PublicID == "" {
			continue
		}
		index[s.PublicID] = s
	}
	return index, nil
}
