package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the only currency statements are exported in.
const Currency = "CAD"

// Record is one normalized statement row, as produced by a parser.
// Amount is negative for debits and positive for credits.
type Record struct {
	ID              string
	TransactionDate string // YYYY-MM-DD
	TransactionTime *string
	Description     string
	Amount          decimal.Decimal
	Currency        string
}

// Entry is a Record as stored in the ledger table. The enrichment fields
// (vendor, location, category, note) are left nil on import.
type Entry struct {
	Record
	AccountID      string
	SourceFilename string
	VendorID       *string
	LocationID     *string
	Category       *string
	InternalNote   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewEntry attaches provenance to a parsed record.
func NewEntry(r Record, accountID, sourceFilename string) *Entry {
	return &Entry{
		Record:         r,
		AccountID:      accountID,
		SourceFilename: sourceFilename,
	}
}
