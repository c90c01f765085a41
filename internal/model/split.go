package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SplitGroup is the top-level accounting category of a split.
type SplitGroup string

const (
	GroupAssets      SplitGroup = "Assets"
	GroupLiabilities SplitGroup = "Liabilities"
	GroupEquity      SplitGroup = "Equity"
	GroupIncome      SplitGroup = "Income"
	GroupExpenses    SplitGroup = "Expenses"
)

// ParseSplitGroup matches a string against the closed set of split groups.
// The match is case-sensitive and exact.
func ParseSplitGroup(s string) (SplitGroup, bool) {
	switch SplitGroup(s) {
	case GroupAssets, GroupLiabilities, GroupEquity, GroupIncome, GroupExpenses:
		return SplitGroup(s), true
	}
	return "", false
}

// Split is one leg of a double-entry posting. Account is a colon-delimited
// path without the group prefix. Outflows are negative, inflows positive.
type Split struct {
	Group   SplitGroup      `json:"group"`
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Memo    string          `json:"memo,omitempty"`
}

// FullAccount returns the complete account name, e.g. "Assets:Checking:Main".
func (s Split) FullAccount() string {
	return string(s.Group) + ":" + s.Account
}

// SortSplits orders splits by (amount ascending, account name ascending).
// The account tie-break keeps rendering reproducible across runs.
func SortSplits(splits []Split) {
	sort.SliceStable(splits, func(i, j int) bool {
		if c := splits[i].Amount.Cmp(splits[j].Amount); c != 0 {
			return c < 0
		}
		return splits[i].Account < splits[j].Account
	})
}
