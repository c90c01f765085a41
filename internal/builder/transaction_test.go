package builder

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynabtoledger/ynabtoledger/internal/logging"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
	"github.com/ynabtoledger/ynabtoledger/internal/ynab"
)

func testLogger() *logging.DedupLogger {
	return logging.NewDedup(logging.NewLogger(io.Discard, "error"), "test")
}

func newTestBuilder(budget *ynab.BudgetDetail) *Builder {
	return New(ynab.NewService(budget), testLogger())
}

func transactionBudget() *ynab.BudgetDetail {
	return &ynab.BudgetDetail{
		Accounts: []ynab.Account{
			{ID: "acc-1", Name: "Main", Type: ynab.AccountTypeChecking},
			{ID: "acc-2", Name: "Visa", Type: ynab.AccountTypeCreditCard},
		},
		Payees: []ynab.Payee{
			{ID: "pay-1", Name: "Coffee Shop"},
		},
		CategoryGroups: []ynab.CategoryGroup{
			{ID: "grp-1", Name: "Everyday Expenses"},
			{ID: "grp-2", Name: "Archived"},
		},
		Categories: []ynab.Category{
			{ID: "cat-1", CategoryGroupID: "grp-1", Name: "Dining Out"},
			{ID: "cat-2", CategoryGroupID: "grp-1", Name: "Groceries"},
			{ID: "cat-hidden", CategoryGroupID: "grp-1", OriginalCategoryGroupID: "grp-2", Name: "Old Stuff", Hidden: true},
		},
	}
}

func sumSplits(t *testing.T, e model.Entry) decimal.Decimal {
	t.Helper()
	total := decimal.Zero
	for _, s := range e.Splits {
		total = total.Add(s.Amount)
	}
	return total
}

func TestBuildStandardEntry(t *testing.T) {
	budget := transactionBudget()
	budget.Transactions = []ynab.TransactionDetail{
		{
			ID:         "txn-1",
			Date:       "2021-01-05",
			Amount:     -4500,
			AccountID:  "acc-1",
			PayeeID:    "pay-1",
			CategoryID: "cat-1",
			Cleared:    ynab.ClearedCleared,
		},
	}
	b := newTestBuilder(budget)

	e, err := b.BuildTransactionEntry(b.svc.Transactions()[0])
	require.NoError(t, err)

	assert.Equal(t, model.EntryTypeTransaction, e.Type)
	assert.Equal(t, "2021-01-05", e.RecordDate)
	assert.Equal(t, "Coffee Shop", e.Payee)
	assert.True(t, e.Cleared)
	assert.Equal(t, "$", e.CurrencySymbol)
	assert.Equal(t, "txn-1", e.Metadata["ynab_id"])

	require.Len(t, e.Splits, 2)
	assert.Equal(t, model.GroupAssets, e.Splits[0].Group)
	assert.Equal(t, "Checking:Main", e.Splits[0].Account)
	assert.True(t, e.Splits[0].Amount.Equal(decimal.RequireFromString("-4.50")))
	assert.Equal(t, model.GroupExpenses, e.Splits[1].Group)
	assert.Equal(t, "Everyday Expenses:Dining Out", e.Splits[1].Account)
	assert.True(t, e.Splits[1].Amount.Equal(decimal.RequireFromString("4.50")))

	assert.True(t, sumSplits(t, e).IsZero(), "entry must balance")
}

func TestBuildEntryUncleared(t *testing.T) {
	budget := transactionBudget()
	budget.Transactions = []ynab.TransactionDetail{
		{ID: "txn-1", Date: "2021-01-05", Amount: -1000, AccountID: "acc-1", CategoryID: "cat-1", Cleared: ynab.ClearedUncleared},
		{ID: "txn-2", Date: "2021-01-06", Amount: -1000, AccountID: "acc-1", CategoryID: "cat-1", Cleared: ynab.ClearedReconciled},
	}
	b := newTestBuilder(budget)

	e1, err := b.BuildTransactionEntry(b.svc.Transactions()[0])
	require.NoError(t, err)
	assert.False(t, e1.Cleared)

	e2, err := b.BuildTransactionEntry(b.svc.Transactions()[1])
	require.NoError(t, err)
	assert.True(t, e2.Cleared)
}

func TestBuildTransferEntryBothLegsShareID(t *testing.T) {
	budget := transactionBudget()
	budget.Transactions = []ynab.TransactionDetail{
		{
			ID: "txn-a", Date: "2021-02-01", Amount: -100000,
			AccountID: "acc-1", TransferAccountID: "acc-2", TransferTransactionID: "txn-b",
			Cleared: ynab.ClearedCleared,
		},
		{
			ID: "txn-b", Date: "2021-02-01", Amount: 100000,
			AccountID: "acc-2", TransferAccountID: "acc-1", TransferTransactionID: "txn-a",
			Cleared: ynab.ClearedCleared,
		},
	}
	b := newTestBuilder(budget)

	legA, err := b.BuildTransactionEntry(b.svc.Transactions()[0])
	require.NoError(t, err)
	legB, err := b.BuildTransactionEntry(b.svc.Transactions()[1])
	require.NoError(t, err)

	assert.Equal(t, "Transfer", legA.Payee)
	assert.Equal(t, legA.ID, legB.ID, "both legs must collapse under one id")
	assert.True(t, sumSplits(t, legA).IsZero())

	deduped := model.Dedupe([]model.Entry{legA, legB})
	assert.Len(t, deduped, 1)

	// One side is the checking asset, the other the credit-card liability.
	groups := map[model.SplitGroup]string{}
	for _, s := range legA.Splits {
		groups[s.Group] = s.Account
	}
	assert.Equal(t, "Checking:Main", groups[model.GroupAssets])
	assert.Equal(t, "Credit:Visa", groups[model.GroupLiabilities])
}

func TestBuildSplitEntry(t *testing.T) {
	budget := transactionBudget()
	budget.Transactions = []ynab.TransactionDetail{
		{
			ID: "txn-1", Date: "2021-01-10", Amount: -7500,
			AccountID: "acc-1", PayeeID: "pay-1", Cleared: ynab.ClearedCleared,
		},
	}
	budget.Subtransactions = []ynab.SubTransaction{
		{ID: "sub-1", TransactionID: "txn-1", Amount: -4500, CategoryID: "cat-1", Memo: "lunch"},
		{ID: "sub-2", TransactionID: "txn-1", Amount: -3000, CategoryID: "cat-2"},
	}
	b := newTestBuilder(budget)

	e, err := b.BuildTransactionEntry(b.svc.Transactions()[0])
	require.NoError(t, err)

	require.Len(t, e.Splits, 3)
	assert.Empty(t, e.Splits[0].Memo, "account-side split has no memo")
	assert.Equal(t, "lunch", e.Splits[1].Memo)
	assert.True(t, e.Splits[1].Amount.Equal(decimal.RequireFromString("4.50")))
	assert.True(t, e.Splits[2].Amount.Equal(decimal.RequireFromString("3.00")))
	assert.True(t, sumSplits(t, e).IsZero())
}

func TestHiddenCategoryUsesOriginalGroup(t *testing.T) {
	budget := transactionBudget()
	budget.Transactions = []ynab.TransactionDetail{
		{ID: "txn-1", Date: "2021-01-05", Amount: -1000, AccountID: "acc-1", CategoryID: "cat-hidden", Cleared: ynab.ClearedCleared},
	}
	b := newTestBuilder(budget)

	e, err := b.BuildTransactionEntry(b.svc.Transactions()[0])
	require.NoError(t, err)
	assert.Equal(t, "Archived:Old Stuff", e.Splits[1].Account)
}

func TestBuildEntryNormalizesAccountNames(t *testing.T) {
	budget := transactionBudget()
	budget.Categories = append(budget.Categories, ynab.Category{
		ID: "cat-bad", CategoryGroupID: "grp-1", Name: "Fun (Money)",
	})
	budget.Transactions = []ynab.TransactionDetail{
		{ID: "txn-1", Date: "2021-01-05", Amount: -1000, AccountID: "acc-1", CategoryID: "cat-bad", Cleared: ynab.ClearedCleared},
	}
	b := newTestBuilder(budget)

	e, err := b.BuildTransactionEntry(b.svc.Transactions()[0])
	require.NoError(t, err)
	assert.Equal(t, "Everyday Expenses:Fun Money", e.Splits[1].Account)
}

func TestBuildAllSkipsBrokenEntries(t *testing.T) {
	budget := transactionBudget()
	budget.Transactions = []ynab.TransactionDetail{
		{ID: "txn-ok", Date: "2021-01-05", Amount: -1000, AccountID: "acc-1", CategoryID: "cat-1", Cleared: ynab.ClearedCleared},
		{ID: "txn-bad", Date: "2021-01-06", Amount: -1000, AccountID: "acc-1", CategoryID: "cat-missing", Cleared: ynab.ClearedCleared},
	}
	b := newTestBuilder(budget)

	entries := b.BuildAll(false)
	require.Len(t, entries, 1)
	assert.Equal(t, "2021-01-05", entries[0].RecordDate)
}
