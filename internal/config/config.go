package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the config file.
const (
	EnvDataDir   = "REC_DATA_DIR"
	EnvOutputDir = "REC_OUTPUT_DIR"
	EnvDebug     = "REC_DEBUG"
)

// EnvFiles are the .env locations tried in order; the first one found is loaded.
var EnvFiles = []string{".env", "../.env"}

// Config represents the builder configuration.
type Config struct {
	// Input locations
	Input InputConfig `toml:"input"`

	// Output tree
	Output OutputConfig `toml:"output"`

	// Ranking limits
	Stats StatsConfig `toml:"stats"`

	// External link roots
	Links LinksConfig `toml:"links"`

	// HTML chart report
	Report ReportConfig `toml:"report"`

	// Prometheus textfile metrics
	Metrics MetricsConfig `toml:"metrics"`

	// Watch mode
	Watch WatchConfig `toml:"watch"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// InputConfig locates the scraper output. Empty file paths are derived from DataDir.
type InputConfig struct {
	DataDir       string `toml:"data_dir" validate:"required"` // Scraper output root
	DecksDir      string `toml:"decks_dir"`                    // One JSON file per deck
	BanlistFile   string `toml:"banlist_file"`                 // banlist.json
	DeckIndexFile string `toml:"deck_index_file"`              // decks_list.json
}

// OutputConfig controls the generated tree.
type OutputConfig struct {
	Dir        string `toml:"dir" validate:"required"`
	PrettyJSON bool   `toml:"pretty_json"` // Indent every file, not just banlist and meta
	Clean      bool   `toml:"clean"`       // Remove detail files not produced by this run
	CSV        bool   `toml:"csv"`         // Also write commanders.csv and cards.csv
}

// StatsConfig holds the ranking limits.
type StatsConfig struct {
	TopCardsPerCategory int `toml:"top_cards_per_category" validate:"gte=1"`
	CardDetailMinDecks  int `toml:"card_detail_min_decks" validate:"gte=1"`
	RecentTopN          int `toml:"recent_top_n" validate:"gte=1"`
	SearchIndexLimit    int `toml:"search_index_limit" validate:"gte=1"`
}

// LinksConfig holds URL roots for deck and image links.
type LinksConfig struct {
	DeckURLBase  string `toml:"deck_url_base" validate:"required,url"`
	ImageBaseURL string `toml:"image_base_url" validate:"required,url"`
}

// ReportConfig controls the HTML chart report.
type ReportConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir" validate:"required_if=Enabled true"`
}

// MetricsConfig controls the Prometheus textfile. An empty path disables it.
type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// WatchConfig controls rebuild timing in watch mode.
type WatchConfig struct {
	Debounce    string `toml:"debounce" validate:"duration"`     // Quiet period before a rebuild (e.g., "2s")
	MinInterval string `toml:"min_interval" validate:"duration"` // Minimum time between rebuilds
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			DataDir: "data",
		},
		Output: OutputConfig{
			Dir:        "site/data",
			PrettyJSON: false,
			Clean:      true,
		},
		Stats: StatsConfig{
			TopCardsPerCategory: 50,
			CardDetailMinDecks:  3,
			RecentTopN:          20,
			SearchIndexLimit:    500,
		},
		Links: LinksConfig{
			DeckURLBase:  "https://moxfield.com/decks/",
			ImageBaseURL: "https://cards.scryfall.io/normal/front/",
		},
		Report: ReportConfig{
			Dir: "site/report",
		},
		Watch: WatchConfig{
			Debounce:    "2s",
			MinInterval: "30s",
		},
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".rudc-rec", "config.toml"), nil
}

// Load loads the configuration from path. A missing file yields the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(expandHome(path))
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to path.
func (c *Config) Save(path string) error {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// LoadEnvFile loads the first .env file found in EnvFiles and returns its path,
// or "" when none exists. Variables already set in the environment win.
func LoadEnvFile() string {
	for _, path := range EnvFiles {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

// ApplyEnv overrides config values from the environment.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Input.DataDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		c.App.DebugMode = debug
	}
	return nil
}

// Resolve expands ~ in every path and derives unset input paths from the data directory.
func (c *Config) Resolve() {
	c.Input.DataDir = expandHome(c.Input.DataDir)
	c.Output.Dir = expandHome(c.Output.Dir)
	c.Report.Dir = expandHome(c.Report.Dir)
	c.Metrics.Textfile = expandHome(c.Metrics.Textfile)

	derive := func(dst *string, name string) {
		if *dst == "" {
			*dst = filepath.Join(c.Input.DataDir, name)
			return
		}
		*dst = expandHome(*dst)
	}
	derive(&c.Input.DecksDir, "decks")
	derive(&c.Input.BanlistFile, "banlist.json")
	derive(&c.Input.DeckIndexFile, "decks_list.json")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetWatchDebounce returns the watch debounce as a duration.
func (c *Config) GetWatchDebounce() (time.Duration, error) {
	return time.ParseDuration(c.Watch.Debounce)
}

// GetWatchMinInterval returns the minimum time between rebuilds as a duration.
func (c *Config) GetWatchMinInterval() (time.Duration, error) {
	return time.ParseDuration(c.Watch.MinInterval)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
