package model

import "sort"

// EntryType distinguishes entries built from bank transactions from entries
// built from budget months.
type EntryType string

const (
	EntryTypeTransaction EntryType = "Transaction"
	EntryTypeBudget      EntryType = "Budget"
)

// Entry is a complete balanced set of splits sharing one date/payee/memo
// context. IDs are content hashes of domain identifiers, so both legs of a
// transfer collapse to the same entry.
//
// A non-empty AccountMatcher marks an automatic entry: a dated-at-epoch
// ledger automated-transaction template matched by account name instead of
// carrying a payee.
type Entry struct {
	Type           EntryType         `json:"type"`
	ID             int32             `json:"id"`
	RecordDate     string            `json:"recordDate"`
	Payee          string            `json:"payee,omitempty"`
	Memo           string            `json:"memo,omitempty"`
	Cleared        bool              `json:"cleared"`
	CurrencySymbol string            `json:"currencySymbol,omitempty"`
	AccountMatcher string            `json:"accountMatcher,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Splits         []Split           `json:"splits"`
}

// Automatic reports whether the entry is an automated-transaction template.
func (e Entry) Automatic() bool {
	return e.AccountMatcher != ""
}

// SortEntries orders entries by (record date ascending, id ascending).
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].RecordDate != entries[j].RecordDate {
			return entries[i].RecordDate < entries[j].RecordDate
		}
		return entries[i].ID < entries[j].ID
	})
}

// Dedupe collapses entries sharing an ID, keeping the last occurrence. Both
// legs of a transfer build entries with the same ID, so exactly one survives.
func Dedupe(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	index := make(map[int32]int, len(entries))
	for _, e := range entries {
		if i, seen := index[e.ID]; seen {
			out[i] = e
			continue
		}
		index[e.ID] = len(out)
		out = append(out, e)
	}
	return out
}
