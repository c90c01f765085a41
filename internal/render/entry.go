package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ynabtoledger/ynabtoledger/internal/model"
)

// currencyCodes maps currency symbols to beancount commodity codes. The
// pipeline is single-currency; an unmapped symbol is a configuration error.
var currencyCodes = map[string]string{
	"$": "USD",
}

var (
	tagToken     = regexp.MustCompile(`(?i)[#^][a-z0-9_-]+`)
	trailingTags = regexp.MustCompile(`(?i)( +[#^][a-z0-9_-]+)+ *$`)
	quoteRun     = regexp.MustCompile(`"+`)
	spaceRun     = regexp.MustCompile(` +`)
)

// buildOutputEntry renders one entry's header and rows for a dialect.
// Unsupported combinations (any budget-origin entry to beancount) fail
// loudly: they are programmer or configuration errors, not data errors.
func buildOutputEntry(e model.Entry, format Format, opts Options) (OutputEntry, error) {
	switch format {
	case FormatLedger:
		return buildLedgerEntry(e)
	case FormatBeancount:
		return buildBeancountEntry(e, opts)
	default:
		return OutputEntry{}, fmt.Errorf("cannot compile entry to %q", format)
	}
}

func buildLedgerEntry(e model.Entry) (OutputEntry, error) {
	out := OutputEntry{}
	if e.Automatic() {
		out.Header = "= " + e.AccountMatcher
	} else {
		out.Header = fmt.Sprintf("%s %s %s", e.RecordDate, clearedMark(e.Cleared), e.Payee)
	}

	if e.Memo != "" {
		out.Rows = append(out.Rows, commentRow("; "+e.Memo))
	}

	rows, err := splitRows(e, FormatLedger)
	if err != nil {
		return OutputEntry{}, err
	}
	out.Rows = append(out.Rows, rows...)
	return out, nil
}

func buildBeancountEntry(e model.Entry, opts Options) (OutputEntry, error) {
	if e.Type != model.EntryTypeTransaction {
		return OutputEntry{}, fmt.Errorf("cannot compile %q entry to %q", e.Type, FormatBeancount)
	}

	var tags []string
	if opts.Tags {
		if ynabID, ok := e.Metadata["ynab_id"]; ok {
			tags = append(tags, "^ynab_"+ynabID)
		}
	}
	tags = append(tags, tagToken.FindAllString(e.Memo, -1)...)

	parts := []string{e.RecordDate, clearedMark(e.Cleared)}
	if e.Payee != "" {
		parts = append(parts, `"`+e.Payee+`"`)
	}
	if e.Memo != "" {
		memo := trailingTags.ReplaceAllString(e.Memo, "")
		memo = quoteRun.ReplaceAllString(memo, "'")
		parts = append(parts, `"`+memo+`"`)
	}
	parts = append(parts, tags...)

	out := OutputEntry{Header: strings.Join(parts, " ")}

	// Metadata rows in key order for reproducible output.
	keys := make([]string, 0, len(e.Metadata))
	for k := range e.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Rows = append(out.Rows, commentRow(fmt.Sprintf("%s: %q", k, e.Metadata[k])))
	}

	rows, err := splitRows(e, FormatBeancount)
	if err != nil {
		return OutputEntry{}, err
	}
	out.Rows = append(out.Rows, rows...)
	return out, nil
}

// splitRows renders an entry's splits in render order.
func splitRows(e model.Entry, format Format) ([]Row, error) {
	splits := make([]model.Split, len(e.Splits))
	copy(splits, e.Splits)
	model.SortSplits(splits)

	rows := make([]Row, 0, len(splits))
	for _, s := range splits {
		account := s.FullAccount()
		var amount string

		switch format {
		case FormatLedger:
			amount = formatLedgerAmount(s, e.CurrencySymbol)
			if e.Type == model.EntryTypeBudget {
				// Bracketed accounts are virtual postings in ledger-cli.
				account = "[" + account + "]"
			}
		case FormatBeancount:
			code, ok := currencyCodes[e.CurrencySymbol]
			if !ok {
				return nil, fmt.Errorf("no currency code for symbol %q", e.CurrencySymbol)
			}
			amount = formatBeancountAmount(s, code)
			account = beancountAccount(account)
		}

		row := Row{Kind: RowKindSplit, Account: account, Amount: amount}
		if s.Memo != "" {
			row.Memo = "; " + s.Memo
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func clearedMark(cleared bool) string {
	if cleared {
		return "*"
	}
	return "!"
}

// formatLedgerAmount renders "-$4.50" / " $4.50"; positive amounts carry a
// leading space so decimal columns line up against negative ones.
func formatLedgerAmount(s model.Split, symbol string) string {
	return amountSign(s) + symbol + s.Amount.Abs().StringFixed(2)
}

func formatBeancountAmount(s model.Split, code string) string {
	return amountSign(s) + s.Amount.Abs().StringFixed(2) + " " + code
}

func amountSign(s model.Split) string {
	if s.Amount.IsNegative() {
		return "-"
	}
	return " "
}

// beancountAccount makes an account path legal for beancount: spaces become
// hyphens, periods and apostrophes are dropped.
func beancountAccount(account string) string {
	account = spaceRun.ReplaceAllString(account, "-")
	account = strings.ReplaceAll(account, ".", "")
	return strings.ReplaceAll(account, "'", "")
}
