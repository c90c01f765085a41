package builder

import (
	"github.com/ynabtoledger/ynabtoledger/internal/id"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
	"github.com/ynabtoledger/ynabtoledger/internal/ynab"
)

// BuildTransactionEntry converts one transaction into one entry. Transfers
// are detected first, then splits; everything else is a standard two-split
// entry.
func (b *Builder) BuildTransactionEntry(t ynab.TransactionDetail) (model.Entry, error) {
	switch {
	case t.TransferAccountID != "":
		return b.buildTransferEntry(t)
	case len(t.Subtransactions) == 0:
		return b.buildStandardEntry(t)
	default:
		return b.buildSplitEntry(t)
	}
}

func (b *Builder) baseEntry(t ynab.TransactionDetail) model.Entry {
	return model.Entry{
		Type:           model.EntryTypeTransaction,
		ID:             id.HashString(t.ID),
		RecordDate:     t.Date,
		Payee:          t.PayeeName,
		Memo:           t.Memo,
		Cleared:        t.Cleared != ynab.ClearedUncleared,
		CurrencySymbol: currencySymbol,
		Metadata:       map[string]string{"ynab_id": t.ID},
	}
}

// buildTransferEntry books both legs of a transfer from their own
// transactions. The entry id hashes the sorted pair of transaction ids, so
// the entry built from the other leg is identical up to deduplication.
func (b *Builder) buildTransferEntry(t ynab.TransactionDetail) (model.Entry, error) {
	account, err := b.account(t.AccountID)
	if err != nil {
		return model.Entry{}, err
	}
	transferTransaction, err := b.transaction(t.TransferTransactionID)
	if err != nil {
		return model.Entry{}, err
	}
	transferAccount, err := b.account(t.TransferAccountID)
	if err != nil {
		return model.Entry{}, err
	}

	e := b.baseEntry(t)
	e.ID = id.TransferKey(t.ID, transferTransaction.ID)
	e.Payee = "Transfer"
	e.Splits = []model.Split{
		{
			Group:   accountSplitGroup(account),
			Account: b.validateAccountName(accountAccountName(account)),
			Amount:  milliToAmount(t.Amount),
		},
		{
			Group:   accountSplitGroup(transferAccount),
			Account: b.validateAccountName(accountAccountName(transferAccount)),
			Amount:  milliToAmount(transferTransaction.Amount),
		},
	}
	return e, nil
}

func (b *Builder) buildStandardEntry(t ynab.TransactionDetail) (model.Entry, error) {
	account, err := b.account(t.AccountID)
	if err != nil {
		return model.Entry{}, err
	}
	category, err := b.category(t.CategoryID)
	if err != nil {
		return model.Entry{}, err
	}
	categoryGroup, err := b.categoryGroup(category)
	if err != nil {
		return model.Entry{}, err
	}

	e := b.baseEntry(t)
	e.Splits = []model.Split{
		{
			Group:   accountSplitGroup(account),
			Account: b.validateAccountName(accountAccountName(account)),
			Amount:  milliToAmount(t.Amount),
		},
		{
			Group:   categorySplitGroup(t, category),
			Account: b.validateAccountName(categoryAccountName(t, category, categoryGroup)),
			Amount:  milliToAmount(-t.Amount),
		},
	}
	return e, nil
}

// buildSplitEntry books the full account-side amount against one category
// split per sub-transaction. Sub-transaction memos ride along on their
// splits.
func (b *Builder) buildSplitEntry(t ynab.TransactionDetail) (model.Entry, error) {
	account, err := b.account(t.AccountID)
	if err != nil {
		return model.Entry{}, err
	}

	e := b.baseEntry(t)
	e.Splits = []model.Split{
		{
			Group:   accountSplitGroup(account),
			Account: b.validateAccountName(accountAccountName(account)),
			Amount:  milliToAmount(t.Amount),
		},
	}
	for _, sub := range t.Subtransactions {
		category, err := b.category(sub.CategoryID)
		if err != nil {
			return model.Entry{}, err
		}
		categoryGroup, err := b.categoryGroup(category)
		if err != nil {
			return model.Entry{}, err
		}
		e.Splits = append(e.Splits, model.Split{
			Group:   categorySplitGroup(t, category),
			Account: b.validateAccountName(categoryAccountName(t, category, categoryGroup)),
			Amount:  milliToAmount(-sub.Amount),
			Memo:    sub.Memo,
		})
	}
	return e, nil
}
