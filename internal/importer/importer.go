// Package importer moves bank statement files through the intake pipeline:
// raw -> backup_raw (claimed, canonically renamed) -> imported, loading their
// rows into the ledger on the way.
package importer

import (
	"context"

	"github.com/MrJamesThe3rd/manchego/internal/importer/cibc"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

// Format recognises and parses one bank's statement exports.
type Format interface {
	Identify(path string) (cibc.Match, bool)
	ParseFile(path string) *cibc.ParsedFile
}

// Ledger is the storage side of an import. Each file gets its own FileTx.
type Ledger interface {
	BeginFile(ctx context.Context) (ledger.FileTx, error)
}

// Dirs are the three pipeline locations. They are created on demand.
type Dirs struct {
	Raw      string
	Backup   string
	Imported string
}

const (
	DefaultPrefix    = "CIBC"
	DefaultExtension = ".csv"
)
