package cibc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// cellValue returns the trimmed value at idx, or "" when the row is too short.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// splitAmount picks the debit column over the credit column and reports the
// raw magnitude, unsigned. ok is false when both columns are empty.
func splitAmount(debit, credit string) (amount decimal.Decimal, isDebit, ok bool, err error) {
	switch {
	case debit != "":
		amount, err = decimal.NewFromString(debit)
		return amount, true, true, err
	case credit != "":
		amount, err = decimal.NewFromString(credit)
		return amount, false, true, err
	}

	return decimal.Zero, false, false, nil
}
