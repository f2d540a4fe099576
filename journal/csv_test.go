package journal

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTradesCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteTradesCSV(&buf, []TradeEntry{{
		ID:         "T1",
		Timestamp:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Ticker:     "MSFT",
		EntryPrice: 400,
		ExitPrice:  390.5,
		Shares:     2,
		Result:     Loss,
		PnL:        -19,
		Notes:      "chased, again",
	}})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, tradeHeader, rows[0])
	assert.Equal(t, []string{
		"T1", "2024-01-02T03:04:05Z", "MSFT", "400.000000", "390.500000", "2", "LOSS", "-19.000000", "chased, again",
	}, rows[1])
}

func TestWriteDrillsCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteDrillsCSV(&buf, []DrillEntry{
		{ID: "D1", Timestamp: time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC), Weapon: "shadowboxing", Intensity: 7, Category: Fitness},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, drillHeader, rows[0])
	assert.Equal(t, []string{"D1", "2024-02-03T04:05:06Z", "shadowboxing", "7", "FITNESS"}, rows[1])
}

func TestWriteTradesCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteTradesCSV(&buf, nil))
	assert.Equal(t, "id,timestamp,ticker,entry_price,exit_price,shares,result,pnl,notes\n", buf.String())
}
