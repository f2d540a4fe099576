package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var (
	tradeHeader = []string{"id", "timestamp", "ticker", "entry_price", "exit_price", "shares", "result", "pnl", "notes"}
	drillHeader = []string{"id", "timestamp", "weapon", "intensity", "category"}
)

// WriteTradesCSV writes trades with a header row.
func WriteTradesCSV(w io.Writer, trades []TradeEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tradeHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			t.ID,
			t.Timestamp.UTC().Format(time.RFC3339),
			t.Ticker,
			f(t.EntryPrice),
			f(t.ExitPrice),
			strconv.Itoa(t.Shares),
			string(t.Result),
			f(t.PnL),
			t.Notes,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDrillsCSV writes drills with a header row.
func WriteDrillsCSV(w io.Writer, drills []DrillEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(drillHeader); err != nil {
		return err
	}
	for _, d := range drills {
		err := cw.Write([]string{
			d.ID,
			d.Timestamp.UTC().Format(time.RFC3339),
			d.Weapon,
			strconv.Itoa(d.Intensity),
			string(d.Category),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
