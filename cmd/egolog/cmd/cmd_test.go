package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/egolog/export"
	"github.com/rustyeddy/egolog/journal"
	"github.com/rustyeddy/egolog/kv"
)

// useTempJournal points the CLI at a fresh file-backed journal.
func useTempJournal(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("EGOLOG_STORAGE_BACKEND", kv.KindFile)
	t.Setenv("EGOLOG_STORAGE_PATH", dir)
	t.Setenv("EGOLOG_CURRENCY", "USD")
	t.Setenv("EGOLOG_LOG_LEVEL", "error")
	return dir
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()

	out, err := execute(t, args...)
	require.NoError(t, err, out)
	return out
}

func TestEgoAddAndList(t *testing.T) {
	useTempJournal(t)

	out := mustExecute(t, "ego", "add", "72", "-n", "green week")
	assert.Contains(t, out, "✓ Ego 72:")
	assert.Contains(t, out, "Bold")

	mustExecute(t, "ego", "add", "not-a-number")

	out = mustExecute(t, "ego", "list")
	assert.Contains(t, out, "green week")
	assert.Contains(t, out, "Humbled")

	out = mustExecute(t, "ego", "list", "--org")
	assert.Contains(t, out, "** Ego: 72 Bold")
	assert.Contains(t, out, "** Ego: 0 Humbled")
}

func TestTradeAddComputesPnL(t *testing.T) {
	useTempJournal(t)

	out := mustExecute(t, "trade", "add", "-t", "aapl", "--entry", "10", "--exit", "15", "--shares", "2", "-r", "win")
	assert.Contains(t, out, "✓ WIN AAPL x2")
	assert.Contains(t, out, "+$10.00")

	out = mustExecute(t, "trade", "list", "--org")
	assert.Contains(t, out, ":PNL: 10.00")
}

func TestTradeMalformedNumbersBecomeZero(t *testing.T) {
	useTempJournal(t)

	mustExecute(t, "trade", "add", "-t", "spy", "--entry", "abc", "--exit", "5", "-r", "loss")

	out := mustExecute(t, "trade", "csv")
	assert.Contains(t, out, "SPY,0.000000,5.000000,1,LOSS,5.000000")
}

func TestTradeRejectsUnknownResult(t *testing.T) {
	useTempJournal(t)

	_, err := execute(t, "trade", "add", "-t", "spy", "-r", "draw")
	assert.Error(t, err)
}

func TestDrillBlankWeaponIsSilent(t *testing.T) {
	useTempJournal(t)

	out := mustExecute(t, "drill", "add", "-w", "  ", "-i", "9")
	assert.Empty(t, out)

	out = mustExecute(t, "drill", "list")
	assert.Contains(t, out, "no drills yet")
}

func TestStatsDashboard(t *testing.T) {
	useTempJournal(t)

	mustExecute(t, "trade", "add", "-t", "a", "--entry", "1", "--exit", "2", "-r", "win")
	mustExecute(t, "trade", "add", "-t", "b", "--entry", "1", "--exit", "2", "-r", "win")
	mustExecute(t, "trade", "add", "-t", "c", "--entry", "2", "--exit", "1", "-r", "loss")
	for _, level := range []string{"8", "3", "9", "9"} {
		mustExecute(t, "drill", "add", "-w", "jab", "-i", level, "--category", "fitness")
	}
	mustExecute(t, "settings", "set", "--starting", "100", "--target", "200", "--current", "150")

	out := mustExecute(t, "stats")
	assert.Contains(t, out, "Win rate: 67%")
	assert.Contains(t, out, "Streak:   2")
	assert.Contains(t, out, "FITNESS  4")
	assert.Contains(t, out, "MINDSET  0")
	assert.Contains(t, out, "50%")
}

func TestSettingsSetOnlyChangesGivenFields(t *testing.T) {
	useTempJournal(t)

	mustExecute(t, "settings", "set", "--target", "$2,500")
	out := mustExecute(t, "settings", "show")
	assert.Contains(t, out, "Target:   $2,500.00")
	assert.Contains(t, out, "Starting: $10,000.00")
}

func TestResetKeepsSettings(t *testing.T) {
	dir := useTempJournal(t)

	mustExecute(t, "settings", "set", "--current", "777")
	mustExecute(t, "ego", "add", "50")

	_, err := execute(t, "reset")
	require.Error(t, err)

	mustExecute(t, "reset", "--yes")

	raw, err := os.ReadFile(filepath.Join(dir, kv.KeyEgo+".json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	out := mustExecute(t, "settings", "show")
	assert.Contains(t, out, "$777.00")
}

func TestExportImport(t *testing.T) {
	useTempJournal(t)

	mustExecute(t, "ego", "add", "88")
	mustExecute(t, "drill", "add", "-w", "journaling", "--category", "mindset")

	path := filepath.Join(t.TempDir(), "backup.json.xz")
	out := mustExecute(t, "export", "-o", path)
	assert.Contains(t, out, "✓ Exported 1 ego, 0 trades, 1 drills")

	snap, err := export.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, snap.DrillEntries, 1)
	assert.Equal(t, journal.Mindset, snap.DrillEntries[0].Category)

	mustExecute(t, "reset", "--yes")
	out = mustExecute(t, "import", path)
	assert.Contains(t, out, "✓ Imported 1 ego, 0 trades, 1 drills")

	out = mustExecute(t, "drill", "list")
	assert.Contains(t, out, "journaling")
}

func TestVersion(t *testing.T) {
	useTempJournal(t)

	out := mustExecute(t, "version")
	assert.Contains(t, out, "egolog version "+version)
}

func TestConfigInitAndValidate(t *testing.T) {
	useTempJournal(t)

	path := filepath.Join(t.TempDir(), "egolog.yaml")
	out := mustExecute(t, "config", "init", "-o", path)
	assert.Contains(t, out, "✓ Created default configuration")

	out = mustExecute(t, "config", "validate", "-f", path)
	assert.Contains(t, out, "✓ Configuration valid")
	assert.Contains(t, out, "Currency: USD")
}
