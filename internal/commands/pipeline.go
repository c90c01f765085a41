package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ynabtoledger/ynabtoledger/internal/builder"
	"github.com/ynabtoledger/ynabtoledger/internal/config"
	"github.com/ynabtoledger/ynabtoledger/internal/logging"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
	"github.com/ynabtoledger/ynabtoledger/internal/transform"
	"github.com/ynabtoledger/ynabtoledger/internal/ynab"
)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("run `ynabtoledger init` first: %w", err)
	}
	return cfg, nil
}

// buildEntries fetches the configured budget and runs it through the full
// conversion pipeline: build, map, filter.
func buildEntries(ctx context.Context, cfg *config.Config, includeBudget bool) ([]model.Entry, error) {
	token := cfg.AccessToken()
	if token == "" {
		return nil, fmt.Errorf("no YNAB API token: set ynab.api_access_token or %s", config.EnvAccessToken)
	}
	if cfg.YNAB.PrimaryBudgetID == "" {
		return nil, fmt.Errorf("no budget configured: set ynab.primary_budget_id")
	}

	log := logging.NewDedup(logging.NewLogger(os.Stderr, cfg.LogLevel), "pipeline")

	budget, err := ynab.NewClient(token).BudgetByID(ctx, cfg.YNAB.PrimaryBudgetID)
	if err != nil {
		return nil, fmt.Errorf("fetching budget: %w", err)
	}

	entries := builder.New(ynab.NewService(budget), log).BuildAll(includeBudget)
	return transform.Transform(entries, cfg, log)
}
