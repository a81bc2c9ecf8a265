// Command rec-builder turns scraped Commander decks into the static JSON consumed by the site.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramonehamilton/rudc-rec/internal/config"
	"github.com/ramonehamilton/rudc-rec/internal/logging"
	"github.com/ramonehamilton/rudc-rec/internal/pipeline"
	"github.com/ramonehamilton/rudc-rec/internal/version"
)

var (
	configPath string
	dataDir    string
	outputDir  string
	asOf       string
	debug      bool

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rec-builder",
	Short: "Build commander statistics from scraped decks",
	Long: `rec-builder reads scraped deck documents, a ban list and a deck index, and
writes the precomputed JSON files served by the commander statistics site.

Running without a subcommand performs a single build.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBuild,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run one full build",
	RunE:  runBuild,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever the deck directory or ban list changes",
	RunE:  runWatch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	// Skips config loading.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "rec-builder", version.GetVersion())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.rudc-rec/config.toml)")
	flags.StringVar(&dataDir, "data-dir", "", "scraper output directory (overrides config)")
	flags.StringVar(&outputDir, "output-dir", "", "output directory (overrides config)")
	flags.StringVar(&asOf, "as-of", "", "reference time for recency windows, RFC3339 (default now)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(buildCmd, watchCmd, versionCmd)
}

// setup resolves the configuration (file, then .env and environment, then flags) and
// builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	envFile := config.LoadEnvFile()

	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := loaded.ApplyEnv(); err != nil {
		return err
	}
	if dataDir != "" {
		loaded.Input.DataDir = dataDir
	}
	if outputDir != "" {
		loaded.Output.Dir = outputDir
	}
	if cmd.Flags().Changed("debug") {
		loaded.App.DebugMode = debug
	}
	loaded.Resolve()
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	if logger, err = logging.New(cfg.App.DebugMode); err != nil {
		return err
	}
	logger.Debug("Configuration loaded", zap.String("config", path), zap.String("env_file", envFile))
	return nil
}

func parseAsOf() (time.Time, error) {
	if asOf == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, asOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: %w", asOf, err)
	}
	return t, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runBuild(cmd *cobra.Command, args []string) error {
	at, err := parseAsOf()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	_, err = pipeline.Run(ctx, cfg, pipeline.RunOptions{AsOf: at}, logger)
	return err
}

func runWatch(cmd *cobra.Command, args []string) error {
	at, err := parseAsOf()
	if err != nil {
		return err
	}
	debounce, err := cfg.GetWatchDebounce()
	if err != nil {
		return err
	}
	minInterval, err := cfg.GetWatchMinInterval()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	w := pipeline.NewWatcher(pipeline.WatchOptions{
		DecksDir:    cfg.Input.DecksDir,
		Files:       []string{cfg.Input.BanlistFile, cfg.Input.DeckIndexFile},
		Debounce:    debounce,
		MinInterval: minInterval,
	}, func(ctx context.Context) error {
		_, err := pipeline.Run(ctx, cfg, pipeline.RunOptions{AsOf: at}, logger)
		return err
	}, logger)

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("Shutting down")
		return nil
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
