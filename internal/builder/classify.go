package builder

import (
	"github.com/ynabtoledger/ynabtoledger/internal/model"
	"github.com/ynabtoledger/ynabtoledger/internal/ynab"
)

// accountPrefixes maps YNAB account types to the hierarchical prefix bucket
// of the account side. Types not listed use the bare account name.
var accountPrefixes = map[ynab.AccountType]string{
	ynab.AccountTypeCreditCard:        "Credit:",
	ynab.AccountTypeLineOfCredit:      "Credit:",
	ynab.AccountTypeMortgage:          "Mortgage:",
	ynab.AccountTypeOtherLiability:    "Other:",
	ynab.AccountTypeOtherAsset:        "Other:",
	ynab.AccountTypeCash:              "Other:",
	ynab.AccountTypePayPal:            "Other:",
	ynab.AccountTypeChecking:          "Checking:",
	ynab.AccountTypeSavings:           "Savings:",
	ynab.AccountTypeInvestmentAccount: "Investment:",
	ynab.AccountTypeMerchantAccount:   "Investment:",
}

// liabilityTypes holds the account types classified as liabilities; every
// other type is an asset.
var liabilityTypes = map[ynab.AccountType]bool{
	ynab.AccountTypeCreditCard:     true,
	ynab.AccountTypeLineOfCredit:   true,
	ynab.AccountTypeMortgage:       true,
	ynab.AccountTypeOtherLiability: true,
}

// inflowsCategory is the YNAB category funneling all income.
const inflowsCategory = "Inflows"

// startingBalancePayee marks the synthetic opening transaction YNAB creates
// for each account; it books against equity rather than income.
const startingBalancePayee = "Starting Balance"

// accountSplitGroup classifies the account side of a transaction.
func accountSplitGroup(account ynab.Account) model.SplitGroup {
	if liabilityTypes[account.Type] {
		return model.GroupLiabilities
	}
	return model.GroupAssets
}

// accountAccountName builds the account-side path, e.g. "Checking:Main".
func accountAccountName(account ynab.Account) string {
	return accountPrefixes[account.Type] + account.Name
}

// categorySplitGroup classifies the category side of a transaction.
func categorySplitGroup(transaction ynab.TransactionDetail, category ynab.Category) model.SplitGroup {
	if category.Name == inflowsCategory {
		if transaction.PayeeName == startingBalancePayee {
			return model.GroupEquity
		}
		return model.GroupIncome
	}
	return model.GroupExpenses
}

// categoryAccountName builds the category-side path: the payee for income,
// the literal starting-balance account for equity, and
// "{group}:{category}" for expenses.
func categoryAccountName(
	transaction ynab.TransactionDetail,
	category ynab.Category,
	categoryGroup ynab.CategoryGroup,
) string {
	switch categorySplitGroup(transaction, category) {
	case model.GroupIncome:
		return transaction.PayeeName
	case model.GroupEquity:
		return startingBalancePayee
	default:
		return categoryGroup.Name + ":" + category.Name
	}
}
