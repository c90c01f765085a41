package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ynabtoledger/ynabtoledger/internal/render"
)

func newToBeancountCommand(configPath *string) *cobra.Command {
	var tags bool

	cmd := &cobra.Command{
		Use:   "to-beancount",
		Short: "Convert the configured budget to beancount format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			entries, err := buildEntries(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}

			opts := render.Options{Tags: tags || cfg.BeancountTags}
			out, err := render.Compile(entries, render.FormatBeancount, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&tags, "tags", false, "tag each entry with its YNAB transaction id")

	return cmd
}
