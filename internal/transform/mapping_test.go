package transform

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynabtoledger/ynabtoledger/internal/config"
	"github.com/ynabtoledger/ynabtoledger/internal/logging"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
)

func testLogger() *logging.DedupLogger {
	return logging.NewDedup(logging.NewLogger(io.Discard, "error"), "test")
}

func entryWithSplits(splits ...model.Split) model.Entry {
	return model.Entry{
		Type:       model.EntryTypeTransaction,
		ID:         1,
		RecordDate: "2021-01-05",
		Splits:     splits,
	}
}

func TestMapAccountsRewritesGroupAndAccount(t *testing.T) {
	cfg := &config.Config{
		AccountNameMap: config.MapRules{
			{Search: "^Expenses:Dining.*", Replace: "Expenses:Food"},
		},
	}
	entries := []model.Entry{entryWithSplits(
		model.Split{Group: model.GroupExpenses, Account: "Dining:Coffee", Amount: decimal.New(450, -2)},
		model.Split{Group: model.GroupAssets, Account: "Checking:Main", Amount: decimal.New(-450, -2)},
	)}

	got, err := MapAccounts(cfg, entries, testLogger())
	require.NoError(t, err)

	assert.Equal(t, model.GroupExpenses, got[0].Splits[0].Group)
	assert.Equal(t, "Food", got[0].Splits[0].Account)
	// Non-matching split untouched.
	assert.Equal(t, "Checking:Main", got[0].Splits[1].Account)
}

func TestMapAccountsFirstRuleWins(t *testing.T) {
	cfg := &config.Config{
		AccountNameMap: config.MapRules{
			{Search: "^Expenses:Dining.*", Replace: "Expenses:Food"},
			{Search: "^Expenses:.*", Replace: "Expenses:Misc"},
		},
	}
	entries := []model.Entry{entryWithSplits(
		model.Split{Group: model.GroupExpenses, Account: "Dining:Coffee"},
		model.Split{Group: model.GroupExpenses, Account: "Rent"},
	)}

	got, err := MapAccounts(cfg, entries, testLogger())
	require.NoError(t, err)

	assert.Equal(t, "Food", got[0].Splits[0].Account)
	assert.Equal(t, "Misc", got[0].Splits[1].Account)
}

func TestMapAccountsCaptureGroups(t *testing.T) {
	cfg := &config.Config{
		AccountNameMap: config.MapRules{
			{Search: "^Expenses:Everyday Expenses:(.*)", Replace: "Expenses:$1"},
		},
	}
	entries := []model.Entry{entryWithSplits(
		model.Split{Group: model.GroupExpenses, Account: "Everyday Expenses:Dining Out"},
	)}

	got, err := MapAccounts(cfg, entries, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "Dining Out", got[0].Splits[0].Account)
}

func TestMapAccountsInvalidGroupPrefixLeavesSplit(t *testing.T) {
	cfg := &config.Config{
		AccountNameMap: config.MapRules{
			{Search: "^Expenses:Dining.*", Replace: "Spending:Food"},
		},
	}
	entries := []model.Entry{entryWithSplits(
		model.Split{Group: model.GroupExpenses, Account: "Dining:Coffee"},
	)}

	got, err := MapAccounts(cfg, entries, testLogger())
	require.NoError(t, err)

	// Invalid prefix: no partial mapping applied.
	assert.Equal(t, model.GroupExpenses, got[0].Splits[0].Group)
	assert.Equal(t, "Dining:Coffee", got[0].Splits[0].Account)
}

func TestMapAccountsBadRegexFatal(t *testing.T) {
	cfg := &config.Config{
		AccountNameMap: config.MapRules{
			{Search: "(unclosed", Replace: "Expenses:X"},
		},
	}
	_, err := MapAccounts(cfg, []model.Entry{entryWithSplits()}, testLogger())
	assert.Error(t, err)
}
