package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a trade as an Org-mode block. Structured facts go
// in the PROPERTIES drawer; the Review heading is left for free writing.
func FormatTradeOrg(t TradeEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Trade: %s %s (%s)\n", t.Ticker, t.Result, shortID(t.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", t.ID)
	fmt.Fprintf(&b, ":TIME: %s\n", t.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":TICKER: %s\n", t.Ticker)
	fmt.Fprintf(&b, ":SHARES: %d\n", t.Shares)
	fmt.Fprintf(&b, ":ENTRY_PRICE: %.2f\n", t.EntryPrice)
	fmt.Fprintf(&b, ":EXIT_PRICE: %.2f\n", t.ExitPrice)
	fmt.Fprintf(&b, ":RESULT: %s\n", t.Result)
	fmt.Fprintf(&b, ":PNL: %.2f\n", t.PnL)
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n")
	writeNotes(&b, t.Notes)
	b.WriteString("\n*** Review\n- \n")
	return b.String()
}

// FormatTradesOrg renders trades separated by blank lines.
func FormatTradesOrg(trades []TradeEntry) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

// FormatEgoOrg renders one self-rating as an Org-mode block.
func FormatEgoOrg(e EgoEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Ego: %d %s (%s)\n", e.Score, e.Label, shortID(e.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", e.ID)
	fmt.Fprintf(&b, ":TIME: %s\n", e.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":SCORE: %d\n", e.Score)
	fmt.Fprintf(&b, ":LABEL: %s\n", e.Label)
	b.WriteString(":END:\n")
	writeNotes(&b, e.Notes)
	return b.String()
}

// FormatEgoListOrg renders ego entries separated by blank lines.
func FormatEgoListOrg(entries []EgoEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatEgoOrg(e))
	}
	return b.String()
}

func writeNotes(b *strings.Builder, notes string) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		b.WriteString("- \n")
		return
	}
	for _, line := range strings.Split(notes, "\n") {
		fmt.Fprintf(b, "- %s\n", strings.TrimSpace(line))
	}
}

// shortID keeps the random tail of a ULID; the head is the timestamp and
// is shared by records created close together.
func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[len(full)-8:]
}
