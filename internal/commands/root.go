// Package commands wires the CLI surface: converting a YNAB budget to
// ledger-cli, beancount, or JSON output.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ynabtoledger/ynabtoledger/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "ynabtoledger",
		Short:   "Convert a YNAB budget to plain-text accounting formats",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.ynabtoledger.yaml)")

	rootCmd.AddCommand(newInitCommand(&configPath))
	rootCmd.AddCommand(newToLedgerCommand(&configPath))
	rootCmd.AddCommand(newToBeancountCommand(&configPath))
	rootCmd.AddCommand(newToJSONCommand(&configPath))
	rootCmd.AddCommand(newListAccountsCommand(&configPath))

	return rootCmd
}
