package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/manchego/internal/database"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

type Store struct {
	db     *sql.DB
	driver database.Driver
}

func New(db *sql.DB, driver database.Driver) *Store {
	return &Store{db: db, driver: driver}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectEntryColumns = `
	id, CAST(transaction_date AS TEXT), transaction_time, description, amount, currency,
	account_id, source_filename, vendor_id, location_id, category, internal_note,
	created_at, updated_at
`

func scanEntry(s scanner) (*ledger.Entry, error) {
	var e ledger.Entry

	if err := s.Scan(
		&e.ID, &e.TransactionDate, &e.TransactionTime, &e.Description, &e.Amount, &e.Currency,
		&e.AccountID, &e.SourceFilename, &e.VendorID, &e.LocationID, &e.Category, &e.InternalNote,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) ListEntries(ctx context.Context, filter ledger.Filter) ([]*ledger.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM ledger WHERE 1 = 1`

	var args []any

	if filter.AccountID != "" {
		query += " AND account_id = ?"
		args = append(args, filter.AccountID)
	}

	if filter.StartDate != "" {
		query += " AND transaction_date >= ?"
		args = append(args, filter.StartDate)
	}

	if filter.EndDate != "" {
		query += " AND transaction_date <= ?"
		args = append(args, filter.EndDate)
	}

	if filter.SourceFilename != "" {
		query += " AND source_filename = ?"
		args = append(args, filter.SourceFilename)
	}

	query += " ORDER BY transaction_date DESC, created_at DESC, id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, s.driver.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger entries: %w", err)
	}

	return entries, nil
}

func (s *Store) CountBySource(ctx context.Context, sourceFilename string) (int, error) {
	query := s.driver.Rebind(`SELECT COUNT(*) FROM ledger WHERE source_filename = ?`)

	var n int
	if err := s.db.QueryRowContext(ctx, query, sourceFilename).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting ledger entries: %w", err)
	}

	return n, nil
}

type fileTx struct {
	tx     *sql.Tx
	insert string
}

func (s *Store) BeginFile(ctx context.Context) (ledger.FileTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning file tx: %w", err)
	}

	return &fileTx{tx: dbTx, insert: s.driver.Rebind(insertEntry)}, nil
}

const insertEntry = `
	INSERT INTO ledger (
		id, transaction_date, transaction_time, description, amount, currency,
		account_id, source_filename, vendor_id, location_id, category, internal_note,
		created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const savepoint = "ledger_row"

// Insert runs inside a savepoint so a rejected row leaves the transaction
// usable for the rows that follow.
func (ftx *fileTx) Insert(ctx context.Context, e *ledger.Entry) error {
	if _, err := ftx.tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
		return fmt.Errorf("%w: creating savepoint: %w", ledger.ErrTxAborted, err)
	}

	now := time.Now().UTC()

	_, err := ftx.tx.ExecContext(ctx, ftx.insert,
		e.ID,
		e.TransactionDate,
		e.TransactionTime,
		e.Description,
		e.Amount,
		e.Currency,
		e.AccountID,
		e.SourceFilename,
		e.VendorID,
		e.LocationID,
		e.Category,
		e.InternalNote,
		now,
		now,
	)
	if err != nil {
		if _, rbErr := ftx.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
			return fmt.Errorf("%w: rolling back to savepoint: %w", ledger.ErrTxAborted, rbErr)
		}

		return fmt.Errorf("inserting ledger entry: %w", err)
	}

	if _, err := ftx.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint); err != nil {
		return fmt.Errorf("%w: releasing savepoint: %w", ledger.ErrTxAborted, err)
	}

	e.CreatedAt = now
	e.UpdatedAt = now

	return nil
}

func (ftx *fileTx) Commit() error   { return ftx.tx.Commit() }
func (ftx *fileTx) Rollback() error { return ftx.tx.Rollback() }
