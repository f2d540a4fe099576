package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/egolog/journal"
	"github.com/rustyeddy/egolog/kv"
)

func seededStore(t *testing.T) *journal.Store {
	t.Helper()

	next := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	s := journal.NewStore(kv.New(kv.NewMemory(), nil), journal.Settings{
		StartingCapital: 2000,
		TargetCapital:   20000,
		WeeklyInjection: 250,
		CurrentCapital:  3100.55,
	}, journal.WithClock(func() time.Time {
		next = next.Add(90 * time.Second)
		return next
	}))
	s.Initialize()

	s.AppendEgo(journal.EgoInput{Score: 72, Notes: "solid day"})
	s.AppendEgo(journal.EgoInput{Score: 97})
	s.AppendTrade(journal.TradeInput{Ticker: "aapl", EntryPrice: 187.12, ExitPrice: 190.01, Shares: 15, Result: journal.Win, Notes: "breakout"})
	s.AppendTrade(journal.TradeInput{Ticker: "coin", EntryPrice: 250, ExitPrice: 231.4, Shares: 3, Result: journal.Loss})
	s.AppendDrill(journal.DrillInput{Weapon: "tape reading", Intensity: 6, Category: journal.Trading})
	s.AppendDrill(journal.DrillInput{Weapon: "meditation", Intensity: 3, Category: journal.Mindset})
	return s
}

func TestTakeIsVerbatim(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	now := time.Date(2024, 7, 2, 12, 0, 0, 0, time.UTC)
	snap := Take(s, now)

	assert.Equal(t, s.Ego(), snap.EgoEntries)
	assert.Equal(t, s.Trades(), snap.TradeEntries)
	assert.Equal(t, s.Drills(), snap.DrillEntries)
	assert.Equal(t, s.Settings(), snap.Settings)
	assert.True(t, snap.ExportedAt.Equal(now))
}

func TestWriteFieldNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Take(seededStore(t), time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC))))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	for _, key := range []string{"egoEntries", "tradeEntries", "drillEntries", "settings", "exportedAt"} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, `"2024-07-02T00:00:00Z"`, string(doc["exportedAt"]))
}

func TestRoundTripThroughImport(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"plain.json", "packed.json.xz"} {
		t.Run(name, func(t *testing.T) {
			src := seededStore(t)
			path := filepath.Join(t.TempDir(), "out", name)
			require.NoError(t, WriteFile(path, Take(src, time.Now())))

			snap, err := ReadFile(path)
			require.NoError(t, err)

			dst := journal.NewStore(kv.New(kv.NewMemory(), nil), journal.Settings{})
			dst.Initialize()
			Apply(dst, snap)

			want := Take(src, time.Time{})
			got := Take(dst, time.Time{})
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFileRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Read(bytes.NewBufferString("not json"))
	assert.Error(t, err)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "egolog-2026-10-19.json", FileName(now, false))
	assert.Equal(t, "egolog-2026-10-19.json.xz", FileName(now, true))
}
