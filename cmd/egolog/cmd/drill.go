package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/egolog/journal"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Record and review practice drills",
	Long: `Record practice sessions. Drills at intensity 5 or above extend the
streak; one below 5 ends it.

Examples:
  egolog drill add -w "tape reading" -i 7 -c trading
  egolog drill list
  egolog drill csv -o drills.csv`,
}

var drillAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a drill",
	Args:  cobra.NoArgs,
	RunE:  runDrillAdd,
}

var drillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drills, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runDrillList,
}

var drillCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write all drills as CSV",
	Args:  cobra.NoArgs,
	RunE:  runDrillCSV,
}

var (
	drillWeapon    string
	drillIntensity string
	drillCategory  string
	drillOutput    string
)

func init() {
	rootCmd.AddCommand(drillCmd)
	drillCmd.AddCommand(drillAddCmd)
	drillCmd.AddCommand(drillListCmd)
	drillCmd.AddCommand(drillCSVCmd)

	f := drillAddCmd.Flags()
	f.StringVarP(&drillWeapon, "weapon", "w", "", "skill or activity practiced")
	f.StringVarP(&drillIntensity, "intensity", "i", "5", "intensity 1-10")
	f.StringVar(&drillCategory, "category", string(journal.Skill), "TRADING, FITNESS, SKILL or MINDSET")

	drillCSVCmd.Flags().StringVarP(&drillOutput, "output", "o", "-", "output file, - for stdout")
}

func runDrillAdd(cmd *cobra.Command, args []string) error {
	category, err := journal.ParseCategory(drillCategory)
	if err != nil {
		return err
	}

	d, ok := store.AppendDrill(journal.DrillInput{
		Weapon:    drillWeapon,
		Intensity: journal.ParseInt(drillIntensity),
		Category:  category,
	})
	if !ok {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s drill: %s (intensity %d)\n", d.Category, d.Weapon, d.Intensity)
	return nil
}

func runDrillList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	drills := store.Drills()
	if len(drills) == 0 {
		fmt.Fprintln(out, dimStyle.Render("no drills yet"))
		return nil
	}
	for _, d := range drills {
		fmt.Fprintf(out, "%s  %-8s %2d  %s\n",
			d.Timestamp.Local().Format("2006-01-02 15:04"), d.Category, d.Intensity, d.Weapon)
	}
	return nil
}

func runDrillCSV(cmd *cobra.Command, args []string) error {
	return withOutput(cmd, drillOutput, func(w io.Writer) error {
		return journal.WriteDrillsCSV(w, store.Drills())
	})
}
