// Package render turns a final entry list into aligned plain text in the
// ledger or beancount dialect.
package render

import "fmt"

// Format selects the output dialect.
type Format string

const (
	FormatLedger    Format = "ledger"
	FormatBeancount Format = "beancount"
)

// ParseFormat matches a dialect name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatLedger, FormatBeancount:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Options tweaks rendering.
type Options struct {
	// Tags adds a ^ynab_{id} tag to beancount entries carrying an
	// id-tracking metadata field.
	Tags bool
}

// RowKind distinguishes aligned split rows from verbatim comment rows.
type RowKind string

const (
	RowKindComment RowKind = "Comment"
	RowKindSplit   RowKind = "Split"
)

// Row is one emitted line under an entry header. Comment rows use Text;
// split rows use Account/Amount/Memo and take part in column alignment.
type Row struct {
	Kind    RowKind
	Text    string
	Account string
	Amount  string
	Memo    string
}

func commentRow(text string) Row {
	return Row{Kind: RowKindComment, Text: text}
}

// OutputEntry is one rendered entry before column alignment.
type OutputEntry struct {
	Header string
	Rows   []Row
}
