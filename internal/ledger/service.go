package ledger

import (
	"context"
	"errors"
)

// ErrTxAborted marks a failure of the surrounding database transaction, as
// opposed to a single rejected row. Once returned, the FileTx is unusable.
var ErrTxAborted = errors.New("ledger transaction aborted")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	BeginFile(ctx context.Context) (FileTx, error)
	ListEntries(ctx context.Context, filter Filter) ([]*Entry, error)
	CountBySource(ctx context.Context, sourceFilename string) (int, error)
}

// FileTx scopes the inserts of one statement file to a single database
// transaction. A failed Insert leaves earlier inserts intact unless the error
// wraps ErrTxAborted.
type FileTx interface {
	Insert(ctx context.Context, e *Entry) error
	Commit() error
	Rollback() error
}

type Filter struct {
	AccountID      string
	StartDate      string // inclusive, YYYY-MM-DD
	EndDate        string // inclusive, YYYY-MM-DD
	SourceFilename string
	Limit          int
}

// DefaultLimit caps List when the filter does not set one.
const DefaultLimit = 500

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) BeginFile(ctx context.Context) (FileTx, error) {
	return s.repo.BeginFile(ctx)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}

	return s.repo.ListEntries(ctx, filter)
}

func (s *Service) CountBySource(ctx context.Context, sourceFilename string) (int, error) {
	return s.repo.CountBySource(ctx, sourceFilename)
}
