package transform

import (
	"github.com/ynabtoledger/ynabtoledger/internal/config"
	"github.com/ynabtoledger/ynabtoledger/internal/logging"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
)

// Transform applies the configured pipeline stages in order: account-name
// mapping, then the boolean-expression filter, the account filter, and the
// start-date cutoff. Unconfigured stages are no-ops.
func Transform(entries []model.Entry, cfg *config.Config, log *logging.DedupLogger) ([]model.Entry, error) {
	entries, err := MapAccounts(cfg, entries, log)
	if err != nil {
		return nil, err
	}
	entries, err = FilterByExpression(cfg, entries)
	if err != nil {
		return nil, err
	}
	entries, err = FilterByAccount(cfg, entries)
	if err != nil {
		return nil, err
	}
	return FilterByStartDate(cfg, entries), nil
}
