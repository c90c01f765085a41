package builder

import (
	"github.com/shopspring/decimal"

	"github.com/ynabtoledger/ynabtoledger/internal/id"
	"github.com/ynabtoledger/ynabtoledger/internal/model"
	"github.com/ynabtoledger/ynabtoledger/internal/ynab"
)

// epochDate marks automatic entries as dateless templates.
const epochDate = "1970-01-01"

// BuildBudgetEntry converts one budget month into a balanced budget entry:
// a liability split for the total budgeted against one asset split per goal
// category.
func (b *Builder) BuildBudgetEntry(month ynab.MonthDetail) (model.Entry, error) {
	goals := b.svc.GoalCategories(month)

	var totalBudgeted int64
	for _, c := range goals {
		totalBudgeted += c.Budgeted
	}

	splits := []model.Split{
		{
			Group:   model.GroupLiabilities,
			Account: "Budget",
			Amount:  milliToAmount(-totalBudgeted),
		},
	}
	for _, c := range goals {
		group, err := b.categoryGroup(c)
		if err != nil {
			return model.Entry{}, err
		}
		splits = append(splits, model.Split{
			Group:   model.GroupAssets,
			Account: "Budget:" + b.validateAccountName(group.Name+":"+c.Name),
			Amount:  milliToAmount(c.Budgeted),
		})
	}

	return model.Entry{
		Type:           model.EntryTypeBudget,
		ID:             id.HashString(month.Month),
		RecordDate:     month.Month,
		Payee:          "Budget",
		Memo:           month.Note,
		Cleared:        true,
		CurrencySymbol: currencySymbol,
		Splits:         splits,
	}, nil
}

// BuildAutomaticEntry builds the automated-transaction template for one goal
// category: a ledger rule matched on the expense account, moving one unit
// from the budget liability per matched unit.
func (b *Builder) BuildAutomaticEntry(category ynab.Category) (model.Entry, error) {
	group, err := b.categoryGroup(category)
	if err != nil {
		return model.Entry{}, err
	}
	accountName := b.validateAccountName(group.Name + ":" + category.Name)
	matcher := "/" + string(model.GroupExpenses) + ":" + accountName + "/"

	one := decimal.NewFromInt(1)
	return model.Entry{
		Type:           model.EntryTypeBudget,
		ID:             id.HashString(matcher),
		RecordDate:     epochDate,
		AccountMatcher: matcher,
		CurrencySymbol: currencySymbol,
		Splits: []model.Split{
			{Group: model.GroupLiabilities, Account: "Budget", Amount: one},
			{Group: model.GroupExpenses, Account: "Budget:" + accountName, Amount: one.Neg()},
		},
	}, nil
}
