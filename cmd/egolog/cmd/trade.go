package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/egolog/journal"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and review trades",
	Long: `Record completed trades and review them.

P/L is computed as (exit - entry) * shares. The result is whatever you
declare and is not checked against the P/L.

Examples:
  egolog trade add -t AAPL --entry 187.10 --exit 190 --shares 10 -r win
  egolog trade list --org
  egolog trade csv -o trades.csv`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a completed trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write all trades as CSV",
	Args:  cobra.NoArgs,
	RunE:  runTradeCSV,
}

var (
	tradeTicker string
	tradeEntry  string
	tradeExit   string
	tradeShares string
	tradeResult string
	tradeNotes  string
	tradeOrg    bool
	tradeOutput string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeCSVCmd)

	f := tradeAddCmd.Flags()
	f.StringVarP(&tradeTicker, "ticker", "t", "", "ticker symbol (required)")
	f.StringVar(&tradeEntry, "entry", "0", "entry price")
	f.StringVar(&tradeExit, "exit", "0", "exit price")
	f.StringVarP(&tradeShares, "shares", "s", "1", "number of shares")
	f.StringVarP(&tradeResult, "result", "r", "", "WIN, LOSS or BREAKEVEN (required)")
	f.StringVarP(&tradeNotes, "notes", "n", "", "free-form notes")
	tradeAddCmd.MarkFlagRequired("ticker")
	tradeAddCmd.MarkFlagRequired("result")

	tradeListCmd.Flags().BoolVar(&tradeOrg, "org", false, "print as Org-mode blocks")
	tradeCSVCmd.Flags().StringVarP(&tradeOutput, "output", "o", "-", "output file, - for stdout")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	result, err := journal.ParseResult(tradeResult)
	if err != nil {
		return err
	}

	t := store.AppendTrade(journal.TradeInput{
		Ticker:     tradeTicker,
		EntryPrice: journal.ParseNumber(tradeEntry),
		ExitPrice:  journal.ParseNumber(tradeExit),
		Shares:     journal.ParseInt(tradeShares),
		Result:     result,
		Notes:      tradeNotes,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s %s x%d  P/L %s\n", t.Result, t.Ticker, t.Shares, formatPnL(t.PnL))
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	trades := store.Trades()

	if tradeOrg {
		fmt.Fprintln(out, journal.FormatTradesOrg(trades))
		return nil
	}
	if len(trades) == 0 {
		fmt.Fprintln(out, dimStyle.Render("no trades yet"))
		return nil
	}
	for _, t := range trades {
		fmt.Fprintf(out, "%s  %-6s %-9s %5d @ %s -> %s  %s\n",
			t.Timestamp.Local().Format("2006-01-02 15:04"), t.Ticker, t.Result, t.Shares,
			formatMoney(t.EntryPrice), formatMoney(t.ExitPrice), formatPnL(t.PnL))
	}
	return nil
}

func runTradeCSV(cmd *cobra.Command, args []string) error {
	return withOutput(cmd, tradeOutput, func(w io.Writer) error {
		return journal.WriteTradesCSV(w, store.Trades())
	})
}

// withOutput runs write against stdout for "-" or a created file otherwise.
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s\n", path)
	return nil
}
