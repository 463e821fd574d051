package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	"github.com/MrJamesThe3rd/manchego/internal/importer/cibc"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

type Config struct {
	Dirs      Dirs
	Prefix    string
	Extension string
}

type Service struct {
	ledger Ledger
	format Format
	cfg    Config
	log    *slog.Logger
}

type Option func(*Service)

// WithFormat replaces the default CIBC statement format.
func WithFormat(f Format) Option {
	return func(s *Service) {
		s.format = f
	}
}

func NewService(l Ledger, cfg Config, log *slog.Logger, opts ...Option) *Service {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}

	if log == nil {
		log = slog.Default()
	}

	s := &Service{
		ledger: l,
		format: cibc.New(),
		cfg:    cfg,
		log:    log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Dirs() Dirs {
	return s.cfg.Dirs
}

// Run imports every file currently in the intake directory, one at a time
// in name order. A failure in one file never stops the run. Errors are
// returned when the intake directory cannot be listed, or when ctx ends
// before every file was processed; the files not reached stay in the intake
// directory and the returned summary covers the ones that were.
func (s *Service) Run(ctx context.Context, operationID string) (*Summary, error) {
	log := s.log.With("operation_id", operationID)
	start := time.Now()

	files, err := Discover(s.cfg.Dirs.Raw, s.cfg.Extension)
	if err != nil {
		return nil, err
	}

	log.Info("starting transaction import", "files", len(files), "dir", s.cfg.Dirs.Raw)

	summary := &Summary{OperationID: operationID, Failures: []FileResult{}}

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			log.Warn("import interrupted, leaving remaining files in intake", "remaining", len(files)-i, "error", err)

			summary.Success = false
			summary.ElapsedS = time.Since(start).Seconds()

			return summary, fmt.Errorf("import interrupted: %w", err)
		}

		summary.add(s.importGuarded(ctx, log, path))
	}

	summary.Success = summary.Failed == 0
	summary.ElapsedS = time.Since(start).Seconds()

	log.Info("transaction import complete",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"elapsed_s", summary.ElapsedS,
	)

	return summary, nil
}

// importGuarded turns unexpected errors and panics from a single file into
// a failure entry.
func (s *Service) importGuarded(ctx context.Context, log *slog.Logger, path string) (res FileResult) {
	name := filepath.Base(path)
	log = log.With("file", name)

	defer func() {
		if r := recover(); r != nil {
			log.Error("unexpected panic while importing file", "panic", r)
			res = FileResult{File: name, Reason: fmt.Sprint(r)}
		}
	}()

	res, err := s.importFile(ctx, log, path)
	if err != nil {
		log.Error("unexpected error while importing file", "error", err)
		return FileResult{File: name, Reason: err.Error()}
	}

	return res
}

func (s *Service) importFile(ctx context.Context, log *slog.Logger, path string) (FileResult, error) {
	name := filepath.Base(path)
	res := FileResult{File: name}

	log.Info("processing file")

	match, ok := s.format.Identify(path)
	if !ok {
		log.Warn("could not identify account, leaving file in intake")
		res.Reason = ReasonUnidentified

		return res, nil
	}

	accountID, err := account.ID(match.Label)
	if err != nil {
		return res, err
	}

	res.Account = match.Label
	log = log.With("account", match.Label)
	log.Debug("identified account", "by", match.By)

	parsed := s.format.ParseFile(path)
	for _, perr := range parsed.Errors {
		log.Debug("row parse error", "row", perr.Row, "message", perr.Message)
	}

	if parsed.Empty() {
		log.Warn("no rows found")
		res.Reason = ReasonNoRows

		return res, nil
	}

	canonical := s.CanonicalName(match.Label, parsed.MinDate, parsed.MaxDate, name)
	res.ImportedAs = canonical

	if err := os.MkdirAll(s.cfg.Dirs.Backup, 0o755); err != nil {
		return res, fmt.Errorf("creating backup dir: %w", err)
	}

	// nothing has moved yet, so an interrupted run leaves the file in intake
	if err := ctx.Err(); err != nil {
		return res, err
	}

	backupPath := filepath.Join(s.cfg.Dirs.Backup, canonical)
	if err := s.claim(path, backupPath, canonical); err != nil {
		log.Error("failed to move file to backup", "error", err)
		res.Reason = fmt.Sprintf("%s: %v", ReasonBackupMove, err)

		return res, nil
	}

	log.Debug("claimed file", "backup", backupPath)

	res.ParseErrors = parsed.ErrorStrings()

	// a claimed file is always carried through its transaction
	rows, dbErrors, err := s.persist(context.WithoutCancel(ctx), log, parsed.Records, accountID, canonical)
	res.RowsImported = rows
	res.DBErrors = dbErrors

	if err != nil {
		log.Error("database error", "error", err, "rows_imported", rows)
		res.Reason = fmt.Sprintf("%s: %v", ReasonDatabase, err)

		return res, nil
	}

	log.Info("imported rows", "rows", rows, "source", canonical)

	if len(res.ParseErrors) > 0 || len(res.DBErrors) > 0 {
		res.Reason = ReasonCompletedWithErr
		return res, nil
	}

	s.finalize(log, backupPath, canonical)
	res.Success = true

	return res, nil
}

// persist inserts one file's records inside a single transaction. Row
// failures are collected; a transaction-level failure ends the file.
func (s *Service) persist(ctx context.Context, log *slog.Logger, records []ledger.Record, accountID, source string) (int, []string, error) {
	ftx, err := s.ledger.BeginFile(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("beginning file transaction: %w", err)
	}
	defer ftx.Rollback()

	var (
		imported int
		dbErrors []string
	)

	for _, rec := range records {
		e := ledger.NewEntry(rec, accountID, source)

		if err := ftx.Insert(ctx, e); err != nil {
			if errors.Is(err, ledger.ErrTxAborted) {
				return imported, dbErrors, err
			}

			log.Warn("failed to insert row", "id", rec.ID, "error", err)
			dbErrors = append(dbErrors, fmt.Sprintf("Row %s: %v", rec.ID, err))

			continue
		}

		imported++
	}

	if err := ftx.Commit(); err != nil {
		return imported, dbErrors, fmt.Errorf("committing file transaction: %w", err)
	}

	return imported, dbErrors, nil
}

// claim moves an intake file into backup under its canonical name. It
// refuses when a file of that name is already parked in backup or imported.
func (s *Service) claim(path, backupPath, canonical string) error {
	if _, err := os.Lstat(filepath.Join(s.cfg.Dirs.Imported, canonical)); err == nil {
		return fmt.Errorf("%s already imported: %w", canonical, fs.ErrExist)
	}

	return moveFile(path, backupPath)
}

// finalize moves a cleanly imported file to the imported directory. The rows
// are already committed, so a failure only leaves the file in backup.
func (s *Service) finalize(log *slog.Logger, backupPath, canonical string) {
	if err := os.MkdirAll(s.cfg.Dirs.Imported, 0o755); err != nil {
		log.Warn("failed to create imported dir", "error", err)
		return
	}

	if err := moveFile(backupPath, filepath.Join(s.cfg.Dirs.Imported, canonical)); err != nil {
		log.Warn("failed to move file to imported", "error", err)
		return
	}

	log.Debug("moved file to imported")
}

// CanonicalName is <prefix>_<label>_<min>_to_<max><ext>, or
// <prefix>_<label>_<stem><ext> when the file has no valid dates.
func (s *Service) CanonicalName(label account.Label, minDate, maxDate, original string) string {
	if minDate != "" && maxDate != "" {
		return fmt.Sprintf("%s_%s_%s_to_%s%s", s.cfg.Prefix, label, minDate, maxDate, s.cfg.Extension)
	}

	stem := strings.TrimSuffix(original, filepath.Ext(original))

	return fmt.Sprintf("%s_%s_%s%s", s.cfg.Prefix, label, stem, s.cfg.Extension)
}
