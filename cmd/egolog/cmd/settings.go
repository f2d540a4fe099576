package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/egolog/journal"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the capital goal",
	Long: `Show or change starting, target, weekly and current capital.

Examples:
  egolog settings show
  egolog settings set --current 12500
  egolog settings set --starting 10000 --target 50000 --weekly 250`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSet,
}

var (
	setStarting string
	setTarget   string
	setWeekly   string
	setCurrent  string
)

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	f := settingsSetCmd.Flags()
	f.StringVar(&setStarting, "starting", "", "starting capital")
	f.StringVar(&setTarget, "target", "", "target capital")
	f.StringVar(&setWeekly, "weekly", "", "weekly injection")
	f.StringVar(&setCurrent, "current", "", "current capital")
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	printSettings(cmd, store.Settings())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	next := store.Settings()
	flags := cmd.Flags()

	if flags.Changed("starting") {
		next.StartingCapital = journal.ParseNumber(setStarting)
	}
	if flags.Changed("target") {
		next.TargetCapital = journal.ParseNumber(setTarget)
	}
	if flags.Changed("weekly") {
		next.WeeklyInjection = journal.ParseNumber(setWeekly)
	}
	if flags.Changed("current") {
		next.CurrentCapital = journal.ParseNumber(setCurrent)
	}

	store.UpdateSettings(next)
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Settings updated")
	printSettings(cmd, next)
	return nil
}

func printSettings(cmd *cobra.Command, s journal.Settings) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Starting: %s\n", formatMoney(s.StartingCapital))
	fmt.Fprintf(out, "  Target:   %s\n", formatMoney(s.TargetCapital))
	fmt.Fprintf(out, "  Weekly:   %s\n", formatMoney(s.WeeklyInjection))
	fmt.Fprintf(out, "  Current:  %s\n", formatMoney(s.CurrentCapital))
}
