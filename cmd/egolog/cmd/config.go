package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/egolog/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage egolog configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  egolog config init -o egolog.yaml
  egolog config validate -f egolog.yaml`,
	Annotations: map[string]string{noStore: ""},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "egolog.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.Default().SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Created default configuration: %s\n", configInitOutput)
	fmt.Fprintln(out, "\nEdit the file and run with:")
	fmt.Fprintf(out, "  egolog -c %s stats\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	c, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Configuration valid: %s\n", configValidatePath)
	fmt.Fprintf(out, "  Storage:  %s %s\n", c.Storage.Backend, c.Storage.Path)
	fmt.Fprintf(out, "  Currency: %s\n", c.Currency)
	fmt.Fprintf(out, "  Log:      %s\n", c.Log.Level)
	return nil
}
