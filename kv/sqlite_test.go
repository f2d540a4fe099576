package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "egolog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Get(KeyEgo)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteOverwriteAndReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "egolog.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyTrades, []byte(`[1]`)))
	require.NoError(t, s.Set(KeyTrades, []byte(`[1,2]`)))
	require.NoError(t, s.Close())

	b, err := Open(KindSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	got, err := b.Get(KeyTrades)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}

func TestSQLiteThroughAdapter(t *testing.T) {
	t.Parallel()

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "egolog.db"))
	require.NoError(t, err)

	a := New(s, nil)
	a.Save(KeySettings, map[string]float64{"targetCapital": 5000})
	got := Load(a, KeySettings, map[string]float64{})
	assert.Equal(t, 5000.0, got["targetCapital"])
	assert.NoError(t, a.Close())
}
