// Package ynab holds the budget records fetched from the YNAB API and an
// in-memory lookup service over them. All amounts are milliunits
// (thousandths of a currency unit).
package ynab

// AccountType is the YNAB account type string.
type AccountType string

const (
	AccountTypeChecking          AccountType = "checking"
	AccountTypeSavings           AccountType = "savings"
	AccountTypeCash              AccountType = "cash"
	AccountTypeCreditCard        AccountType = "creditCard"
	AccountTypeLineOfCredit      AccountType = "lineOfCredit"
	AccountTypeOtherAsset        AccountType = "otherAsset"
	AccountTypeOtherLiability    AccountType = "otherLiability"
	AccountTypeMortgage          AccountType = "mortgage"
	AccountTypePayPal            AccountType = "payPal"
	AccountTypeMerchantAccount   AccountType = "merchantAccount"
	AccountTypeInvestmentAccount AccountType = "investmentAccount"
)

// ClearedStatus is the cleared state of a transaction.
type ClearedStatus string

const (
	ClearedCleared    ClearedStatus = "cleared"
	ClearedUncleared  ClearedStatus = "uncleared"
	ClearedReconciled ClearedStatus = "reconciled"
)

// Account is a budget account.
type Account struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// Payee is a transaction counterparty.
type Payee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryGroup is a named group of budget categories.
type CategoryGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is a budget category. Budgeted is the month-specific budgeted
// amount when the category comes from a MonthDetail.
type Category struct {
	ID                      string `json:"id"`
	CategoryGroupID         string `json:"category_group_id"`
	OriginalCategoryGroupID string `json:"original_category_group_id"`
	Name                    string `json:"name"`
	Hidden                  bool   `json:"hidden"`
	GoalType                string `json:"goal_type"`
	Budgeted                int64  `json:"budgeted"`
}

// SubTransaction is one piece of a split transaction.
type SubTransaction struct {
	ID            string `json:"id"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Memo          string `json:"memo"`
	CategoryID    string `json:"category_id"`
}

// TransactionDetail is a budget transaction. The *_name fields are empty in
// the raw budget payload and are hydrated by the Service from the id fields,
// as are Subtransactions.
type TransactionDetail struct {
	ID                    string           `json:"id"`
	Date                  string           `json:"date"`
	Amount                int64            `json:"amount"`
	Memo                  string           `json:"memo"`
	Cleared               ClearedStatus    `json:"cleared"`
	AccountID             string           `json:"account_id"`
	AccountName           string           `json:"account_name"`
	PayeeID               string           `json:"payee_id"`
	PayeeName             string           `json:"payee_name"`
	CategoryID            string           `json:"category_id"`
	CategoryName          string           `json:"category_name"`
	TransferAccountID     string           `json:"transfer_account_id"`
	TransferTransactionID string           `json:"transfer_transaction_id"`
	Subtransactions       []SubTransaction `json:"subtransactions"`
}

// MonthDetail is one budget month with its per-month category amounts.
type MonthDetail struct {
	Month      string     `json:"month"` // YYYY-MM-01
	Note       string     `json:"note"`
	Categories []Category `json:"categories"`
}

// BudgetDetail is the full budget export returned by the API.
type BudgetDetail struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Accounts        []Account           `json:"accounts"`
	Payees          []Payee             `json:"payees"`
	CategoryGroups  []CategoryGroup     `json:"category_groups"`
	Categories      []Category          `json:"categories"`
	Months          []MonthDetail       `json:"months"`
	Transactions    []TransactionDetail `json:"transactions"`
	Subtransactions []SubTransaction    `json:"subtransactions"`
}
