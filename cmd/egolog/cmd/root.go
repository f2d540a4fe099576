package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/egolog/config"
	"github.com/rustyeddy/egolog/journal"
	"github.com/rustyeddy/egolog/kv"
	"github.com/rustyeddy/egolog/logging"
)

// Commands carrying this annotation run without opening the journal.
const noStore = "egolog/no-store"

var (
	cfgFile string
	verbose bool

	cfg     *config.Config
	logger  *zap.Logger
	adapter *kv.Adapter
	store   *journal.Store
)

var rootCmd = &cobra.Command{
	Use:   "egolog",
	Short: "Track ego, trades and practice drills toward a capital goal",
	Long: `egolog is a personal self-tracking journal.

It records:
  - Ego self-ratings (0-100) classified into seven tiers
  - Completed trades with P/L and declared outcome
  - Practice drills with intensity and category
  - Progress from starting capital toward a target

All data stays on this machine.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err = logging.New(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if skipsStore(cmd) {
		return nil
	}
	if adapter != nil {
		_ = adapter.Close()
	}

	backend, err := kv.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		// The journal still works in memory; nothing will be persisted.
		logger.Error("storage unavailable", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
		backend = nil
	}
	adapter = kv.New(backend, logger)
	store = journal.NewStore(adapter, cfg.Defaults.Settings(), journal.WithLogger(logger))
	store.Initialize()

	logger.Debug("journal opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path))
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if adapter != nil {
		if err := adapter.Close(); err != nil {
			logger.Warn("close storage", zap.Error(err))
		}
		adapter = nil
	}
	store = nil
	if logger != nil {
		_ = logger.Sync()
	}
}

func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[noStore]; ok {
			return true
		}
	}
	return false
}
