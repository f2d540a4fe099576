package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every ego entry, trade and drill",
	Long: `Clear the ego, trade and drill collections. Settings are kept.
Export first if you may want the data back.

Example:
  egolog reset --yes`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

var resetConfirm bool

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "confirm the reset")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetConfirm {
		return errors.New("refusing to reset without --yes")
	}
	store.ResetAll()
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Journal cleared (settings kept)")
	return nil
}
