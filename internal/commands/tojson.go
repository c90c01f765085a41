package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newToJSONCommand(configPath *string) *cobra.Command {
	var includeBudget bool

	cmd := &cobra.Command{
		Use:   "to-json",
		Short: "Dump the converted entries as JSON",
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

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		},
	}

	cmd.Flags().BoolVar(&includeBudget, "budget", false, "include budget and automatic allocation entries")

	return cmd
}
