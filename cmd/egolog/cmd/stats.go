package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/egolog/journal"
	"github.com/rustyeddy/egolog/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard",
	Long: `Show ego trend, trading performance, drill streak and progress toward
the capital target. Every figure is recomputed from the journal.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	renderSummary(cmd.OutOrStdout(), stats.Of(store))
	return nil
}

func renderSummary(out io.Writer, s stats.Summary) {
	fmt.Fprintln(out, headingStyle.Render("Ego"))
	if s.Latest != nil {
		fmt.Fprintf(out, "  Latest:   %d %s (%s)\n", s.Latest.Score, tierLabel(s.Latest.Score, s.Latest.Label), formatTrend(s.Trend))
	} else {
		fmt.Fprintln(out, "  Latest:   "+dimStyle.Render("none"))
	}
	fmt.Fprintf(out, "  Average:  %d over %d entries\n", s.AverageEgo, s.EgoCount)
	fmt.Fprintln(out)

	fmt.Fprintln(out, headingStyle.Render("Trading"))
	fmt.Fprintf(out, "  Trades:   %d (%d win / %d loss / %d breakeven)\n", s.TradeCount,
		s.Outcomes[journal.Win], s.Outcomes[journal.Loss], s.Outcomes[journal.Breakeven])
	fmt.Fprintf(out, "  Win rate: %d%%\n", s.WinRate)
	fmt.Fprintf(out, "  Total:    %s\n", formatPnL(s.TotalPnL))
	fmt.Fprintf(out, "  Avg win:  %s   Avg loss: %s\n", formatMoney(s.AverageWin), formatMoney(s.AverageLoss))
	fmt.Fprintf(out, "  Best:     %s   Worst: %s\n", formatPnL(s.BestTrade), formatPnL(s.WorstTrade))
	fmt.Fprintln(out)

	fmt.Fprintln(out, headingStyle.Render("Drills"))
	fmt.Fprintf(out, "  Streak:   %d\n", s.DrillStreak)
	fmt.Fprintf(out, "  Sessions: %d (avg intensity %.1f)\n", s.DrillCount, s.AverageIntensity)
	for _, c := range journal.Categories {
		fmt.Fprintf(out, "    %-8s %d\n", c, s.Categories[c])
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, headingStyle.Render("Goal"))
	fmt.Fprintf(out, "  %s %.0f%%\n", progressBar(s.Progress, 30), s.Progress)
	fmt.Fprintf(out, "  %s of %s, %s to go\n",
		formatMoney(s.Settings.CurrentCapital), formatMoney(s.Settings.TargetCapital), formatMoney(s.RemainingCapital))
	switch {
	case s.WeeksToTarget == 0:
		fmt.Fprintln(out, "  Target reached")
	case s.WeeksToTarget > 0:
		fmt.Fprintf(out, "  ~%d weeks at %s/week\n", s.WeeksToTarget, formatMoney(s.Settings.WeeklyInjection))
	}
}
