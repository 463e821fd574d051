package cibc

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

// ParseError describes one row that could not be turned into a record.
// Row 0 is used for failures that concern the whole file.
type ParseError struct {
	Row     int
	Message string
	Fields  []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

func rowError(row int, fields []string, format string, args ...any) *ParseError {
	return &ParseError{Row: row, Message: fmt.Sprintf(format, args...), Fields: fields}
}

// ParseRow validates one statement row. Checks run in a fixed order and the
// first failing one is reported.
func ParseRow(fields []string, row int) (ledger.Record, error) {
	if len(fields) < 4 {
		return ledger.Record{}, rowError(row, fields, "Row has %d columns, expected at least 4", len(fields))
	}

	date := cellValue(fields, 0)
	desc := cellValue(fields, 1)
	debit := cellValue(fields, 2)
	credit := cellValue(fields, 3)

	if date == "" {
		return ledger.Record{}, rowError(row, fields, "Missing transaction date")
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		return ledger.Record{}, rowError(row, fields, "Invalid date format: %s", date)
	}

	if desc == "" {
		return ledger.Record{}, rowError(row, fields, "Missing description")
	}

	amount, isDebit, ok, err := splitAmount(debit, credit)
	if !ok {
		return ledger.Record{}, rowError(row, fields, "Missing both debit and credit amounts")
	}

	if err != nil {
		return ledger.Record{}, rowError(row, fields, "Invalid amount: debit=%s, credit=%s", debit, credit)
	}

	if isDebit {
		amount = amount.Neg()
	}

	return ledger.Record{
		ID:              uuid.NewString(),
		TransactionDate: date,
		Description:     desc,
		Amount:          amount,
		Currency:        ledger.Currency,
	}, nil
}
