// Package builder converts YNAB transactions and budget months into
// canonical double-entry entries.
package builder

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ynabtoledger/ynabtoledger/internal/logging"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
	"github.com/ynabtoledger/ynabtoledger/internal/ynab"
)

// currencySymbol is the only currency this pipeline emits. YNAB budgets are
// single-currency and the source data carries no symbol per transaction.
const currencySymbol = "$"

var thousand = decimal.NewFromInt(1000)

// Builder constructs entries from one budget's records.
type Builder struct {
	svc *ynab.Service
	log *logging.DedupLogger
}

// New creates a Builder over a budget lookup service.
func New(svc *ynab.Service, log *logging.DedupLogger) *Builder {
	return &Builder{svc: svc, log: log}
}

// milliToAmount converts milliunits to a decimal currency amount rounded to
// cents.
func milliToAmount(milli int64) decimal.Decimal {
	return decimal.NewFromInt(milli).Div(thousand).Round(2)
}

// validateAccountName normalizes an invalid account path, logging the rewrite
// once per distinct name.
func (b *Builder) validateAccountName(name string) string {
	if model.ValidateAccountName(name) {
		return name
	}
	normalized := model.NormalizeAccountName(name)
	b.log.Warn(
		"ACCOUNT_NAME_NORMALIZATION_WARNING",
		fmt.Sprintf("account name %q is invalid, normalizing to %q", name, normalized),
	)
	return normalized
}

func (b *Builder) account(accountID string) (ynab.Account, error) {
	a, ok := b.svc.Account(accountID)
	if !ok {
		return ynab.Account{}, fmt.Errorf("account %q not found", accountID)
	}
	return a, nil
}

func (b *Builder) transaction(transactionID string) (ynab.TransactionDetail, error) {
	t, ok := b.svc.Transaction(transactionID)
	if !ok {
		return ynab.TransactionDetail{}, fmt.Errorf("transaction %q not found", transactionID)
	}
	return t, nil
}

func (b *Builder) category(categoryID string) (ynab.Category, error) {
	c, ok := b.svc.Category(categoryID)
	if !ok {
		return ynab.Category{}, fmt.Errorf("category %q not found", categoryID)
	}
	return c, nil
}

// categoryGroup resolves the group a category displays under. Hidden
// categories prefer their original group, falling back to the current one.
func (b *Builder) categoryGroup(category ynab.Category) (ynab.CategoryGroup, error) {
	if category.Hidden {
		if g, ok := b.svc.CategoryGroup(category.OriginalCategoryGroupID); ok {
			return g, nil
		}
	}
	g, ok := b.svc.CategoryGroup(category.CategoryGroupID)
	if !ok {
		return ynab.CategoryGroup{}, fmt.Errorf("category group %q not found", category.CategoryGroupID)
	}
	return g, nil
}
