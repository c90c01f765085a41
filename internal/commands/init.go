package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ynabtoledger/ynabtoledger/internal/config"
)

func newInitCommand(configPath *string) *cobra.Command {
	var token string
	var budgetID string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *configPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			return runInit(cmd, path, token, budgetID, force)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "YNAB API access token")
	cmd.Flags().StringVar(&budgetID, "budget-id", "", "YNAB budget id to convert (required)")
	_ = cmd.MarkFlagRequired("budget-id")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, path, token, budgetID string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := config.Save(path, config.Default(token, budgetID)); err != nil {
		return err
	}

	cmd.Printf("Wrote %s\n", path)
	if token == "" {
		cmd.Printf("No token given: set %s or add ynab.api_access_token to the file\n", config.EnvAccessToken)
	}
	return nil
}
