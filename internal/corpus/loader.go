package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrDecksDirMissing is returned when the deck directory does not exist.
var ErrDecksDirMissing = errors.New("deck directory not found")

// LoadStats summarizes one pass over the deck directory.
type LoadStats struct {
	Files       int
	Loaded      int
	ParseErrors int
	Indexed     int
}

// Loader reads deck documents from a directory.
type Loader struct {
	index    DeckIndex
	logger   *zap.Logger
	progress *rate.Sometimes
}

// NewLoader creates a loader. The index may be nil.
func NewLoader(index DeckIndex, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		index:    index,
		logger:   logger.Named("loader"),
		progress: &rate.Sometimes{First: 1, Interval: 2 * time.Second},
	}
}

// LoadDecks reads every *.json file in dir in lexical order. Files that fail to parse are
// logged and skipped; a missing directory is fatal.
func (l *Loader) LoadDecks(ctx context.Context, dir string) ([]*Deck, LoadStats, error) {
	var stats LoadStats

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, stats, fmt.Errorf("%w: %s", ErrDecksDirMissing, dir)
		}
		return nil, stats, fmt.Errorf("stat deck directory: %w", err)
	}
	if !info.IsDir() {
		return nil, stats, fmt.Errorf("%w: %s is not a directory", ErrDecksDirMissing, dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, stats, fmt.Errorf("scan deck directory: %w", err)
	}
	stats.Files = len(files)

	l.logger.Info("Processing deck files", zap.Int("files", len(files)), zap.String("dir", dir))

	decks := make([]*Deck, 0, len(files))
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		deck, err := l.loadDeck(path)
		if err != nil {
			stats.ParseErrors++
			l.logger.Warn("Skipping deck file", zap.String("file", filepath.Base(path)), zap.Error(err))
			continue
		}

		if summary, ok := l.index[deck.PublicID]; ok {
			deck.ApplySummary(summary)
			stats.Indexed++
		}

		decks = append(decks, deck)
		stats.Loaded++

		l.progress.Do(func() {
			l.logger.Info("Loading decks", zap.Int("done", i+1), zap.Int("total", len(files)))
		})
	}

	return decks, stats, nil
}

// loadDeck reads one deck document. The public id falls back to the file stem.
func (l *Loader) loadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var deck Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	deck.File = path
	if deck.PublicID == "" {
		deck.PublicID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &deck, nil
}
