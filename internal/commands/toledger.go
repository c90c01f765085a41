package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ynabtoledger/ynabtoledger/internal/render"
)

func newToLedgerCommand(configPath *string) *cobra.Command {
	var includeBudget bool

	cmd := &cobra.Command{
		Use:   "to-ledger",
		Short: "Convert the configured budget to ledger-cli format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			entries, err := buildEntries(cmd.Context(), cfg, includeBudget)
			if err != nil {
				return err
			}

			out, err := render.Compile(entries, render.FormatLedger, render.Options{})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&includeBudget, "budget", false, "include budget and automatic allocation entries")

	return cmd
}
