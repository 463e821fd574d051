package importer

import "github.com/MrJamesThe3rd/manchego/internal/account"

const (
	ReasonUnidentified     = "account identification failed"
	ReasonNoRows           = "no rows found"
	ReasonBackupMove       = "failed to move to backup"
	ReasonDatabase         = "database error"
	ReasonCompletedWithErr = "import completed with errors"
)

// FileResult is the outcome of importing one file. File is the name the
// file had in the intake directory.
type FileResult struct {
	Success      bool          `json:"success"`
	File         string        `json:"file"`
	Reason       string        `json:"reason,omitempty"`
	RowsImported int           `json:"rows_imported"`
	ParseErrors  []string      `json:"parse_errors,omitempty"`
	DBErrors     []string      `json:"db_errors,omitempty"`
	Account      account.Label `json:"account,omitempty"`
	ImportedAs   string        `json:"imported_as,omitempty"`
}

// Summary aggregates one run. Failures holds only the failed files.
type Summary struct {
	OperationID string       `json:"operation_id,omitempty"`
	Success     bool         `json:"success"`
	Total       int          `json:"total"`
	Succeeded   int          `json:"succeeded"`
	Failed      int          `json:"failed"`
	ElapsedS    float64      `json:"elapsed_s"`
	Failures    []FileResult `json:"failures"`
}

func (s *Summary) add(r FileResult) {
	s.Total++

	if r.Success {
		s.Succeeded++
		return
	}

	s.Failed++
	s.Failures = append(s.Failures, r)
}
