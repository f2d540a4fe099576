package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/egolog/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a snapshot of the whole journal",
	Long: `Write every ego entry, trade, drill and the settings to one JSON
document named after today's date. With --xz the file is xz-compressed.

Examples:
  egolog export
  egolog export --xz
  egolog export -o backup.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the journal with an exported snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var (
	exportOutput string
	exportXZ     bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default <export dir>/egolog-<date>.json)")
	exportCmd.Flags().BoolVar(&exportXZ, "xz", false, "compress with xz")
}

func runExport(cmd *cobra.Command, args []string) error {
	now := time.Now()
	path := exportOutput
	if path == "" {
		compress := exportXZ || cfg.Export.Compress
		path = filepath.Join(cfg.Export.Dir, export.FileName(now, compress))
	}

	snap := export.Take(store, now)
	if err := export.WriteFile(path, snap); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	logger.Info("exported", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d ego, %d trades, %d drills to %s\n",
		len(snap.EgoEntries), len(snap.TradeEntries), len(snap.DrillEntries), path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	snap, err := export.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	export.Apply(store, snap)

	logger.Info("imported", zap.String("path", args[0]), zap.Time("exportedAt", snap.ExportedAt))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d ego, %d trades, %d drills from %s\n",
		len(snap.EgoEntries), len(snap.TradeEntries), len(snap.DrillEntries), args[0])
	return nil
}
