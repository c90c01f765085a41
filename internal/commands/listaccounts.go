package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newListAccountsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-accounts",
		Short: "List the distinct account names the conversion produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			entries, err := buildEntries(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}

			seen := map[string]bool{}
			var names []string
			for _, e := range entries {
				for _, s := range e.Splits {
					name := s.FullAccount()
					if !seen[name] {
						seen[name] = true
						names = append(names, name)
					}
				}
			}
			sort.Strings(names)

			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
