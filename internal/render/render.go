package render

import (
	"strings"

	"github.com/ynabtoledger/ynabtoledger/internal/model"
)

const (
	// splitPadding is the fixed left indent of every row under a header.
	splitPadding = 4
	// columnSpacing is the minimum gap between the account and amount
	// columns, and between the amount and a trailing memo.
	columnSpacing = 2
)

// Compile renders entries as one plain-text document. Entries are sorted by
// (record date, id) and splits by (amount, account) first, so identical
// input always produces byte-identical output.
func Compile(entries []model.Entry, format Format, opts Options) (string, error) {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	model.SortEntries(sorted)

	outputs := make([]OutputEntry, 0, len(sorted))
	for _, e := range sorted {
		out, err := buildOutputEntry(e, format, opts)
		if err != nil {
			return "", err
		}
		outputs = append(outputs, out)
	}

	maxAccount, maxAmount, maxDecimalOffset := columnWidths(outputs)

	var b strings.Builder
	for _, out := range outputs {
		b.WriteString(out.Header)
		b.WriteByte('\n')
		for _, row := range out.Rows {
			line := strings.Repeat(" ", splitPadding) + rowString(row, maxAccount, maxAmount, maxDecimalOffset)
			b.WriteString(strings.TrimRight(line, " "))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// columnWidths computes, across all split rows being rendered together, the
// widest account string, the widest amount string, and the right-most
// decimal point offset. Amounts without a decimal point count their full
// length as the offset.
func columnWidths(outputs []OutputEntry) (maxAccount, maxAmount, maxDecimalOffset int) {
	for _, out := range outputs {
		for _, row := range out.Rows {
			if row.Kind != RowKindSplit {
				continue
			}
			if len(row.Account) > maxAccount {
				maxAccount = len(row.Account)
			}
			if len(row.Amount) > maxAmount {
				maxAmount = len(row.Amount)
			}
			if i := strings.Index(row.Amount, "."); i >= 0 && i > maxDecimalOffset {
				maxDecimalOffset = i
			}
		}
	}
	return maxAccount, maxAmount, maxDecimalOffset
}

// rowString aligns a split row so every amount's decimal point lands in the
// same column. Comment rows are emitted verbatim.
func rowString(row Row, maxAccount, maxAmount, maxDecimalOffset int) string {
	if row.Kind == RowKindComment {
		return row.Text
	}

	decimalIndex := strings.Index(row.Amount, ".")
	if decimalIndex < 0 {
		decimalIndex = len(row.Amount)
	}
	amountOffset := maxDecimalOffset - decimalIndex

	accountPad := maxAccount - len(row.Account) + columnSpacing + amountOffset
	amountPad := maxAmount - amountOffset - len(row.Amount) + columnSpacing
	if accountPad < 0 {
		accountPad = 0
	}
	if amountPad < 0 {
		amountPad = 0
	}

	return row.Account + strings.Repeat(" ", accountPad) + row.Amount + strings.Repeat(" ", amountPad) + row.Memo
}
