package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

type entryResponse struct {
	ID              string          `json:"id"`
	TransactionDate string          `json:"transaction_date"`
	TransactionTime *string         `json:"transaction_time"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	AccountID       string          `json:"account_id"`
	SourceFilename  string          `json:"source_filename"`
	VendorID        *string         `json:"vendor_id"`
	LocationID      *string         `json:"location_id"`
	Category        *string         `json:"category"`
	InternalNote    *string         `json:"internal_note"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func toResponse(e *ledger.Entry) entryResponse {
	return entryResponse{
		ID:              e.ID,
		TransactionDate: e.TransactionDate,
		TransactionTime: e.TransactionTime,
		Description:     e.Description,
		Amount:          e.Amount,
		Currency:        e.Currency,
		AccountID:       e.AccountID,
		SourceFilename:  e.SourceFilename,
		VendorID:        e.VendorID,
		LocationID:      e.LocationID,
		Category:        e.Category,
		InternalNote:    e.InternalNote,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toResponseList(entries []*ledger.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}
