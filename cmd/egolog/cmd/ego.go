package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/egolog/journal"
)

var egoCmd = &cobra.Command{
	Use:   "ego",
	Short: "Record and review ego self-ratings",
	Long: `Record how inflated or humbled you feel on a 0-100 scale.

Examples:
  egolog ego add 72 -n "green week, getting cocky"
  egolog ego list
  egolog ego list --org`,
}

var egoAddCmd = &cobra.Command{
	Use:   "add <score>",
	Short: "Record a self-rating",
	Args:  cobra.ExactArgs(1),
	RunE:  runEgoAdd,
}

var egoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List self-ratings, oldest first",
	Args:  cobra.NoArgs,
	RunE:  runEgoList,
}

var (
	egoNotes string
	egoOrg   bool
)

func init() {
	rootCmd.AddCommand(egoCmd)
	egoCmd.AddCommand(egoAddCmd)
	egoCmd.AddCommand(egoListCmd)

	egoAddCmd.Flags().StringVarP(&egoNotes, "notes", "n", "", "free-form notes")
	egoListCmd.Flags().BoolVar(&egoOrg, "org", false, "print as Org-mode blocks")
}

func runEgoAdd(cmd *cobra.Command, args []string) error {
	e := store.AppendEgo(journal.EgoInput{
		Score: journal.ParseInt(args[0]),
		Notes: egoNotes,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Ego %d: %s\n", e.Score, tierLabel(e.Score, e.Label))
	return nil
}

func runEgoList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	entries := store.Ego()

	if egoOrg {
		fmt.Fprintln(out, journal.FormatEgoListOrg(entries))
		return nil
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, dimStyle.Render("no ego entries yet"))
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %3d  %s  %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04"), e.Score, tierLabel(e.Score, e.Label), e.Notes)
	}
	return nil
}
