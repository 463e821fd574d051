package cibc

import (
	"errors"
	"io"
	"strings"

	enc "github.com/MrJamesThe3rd/manchego/internal/encoding"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

// ParsedFile is the outcome of parsing one statement. MinDate and MaxDate are
// empty when no row parsed.
type ParsedFile struct {
	Records []ledger.Record
	Errors  []*ParseError
	MinDate string
	MaxDate string
}

// Empty reports whether the file yielded neither records nor errors.
func (f *ParsedFile) Empty() bool {
	return len(f.Records) == 0 && len(f.Errors) == 0
}

// ErrorStrings renders the parse errors as "Row N: message".
func (f *ParsedFile) ErrorStrings() []string {
	if len(f.Errors) == 0 {
		return nil
	}

	out := make([]string, len(f.Errors))
	for i, e := range f.Errors {
		out[i] = e.Error()
	}

	return out
}

func (f *ParsedFile) add(rec ledger.Record) {
	f.Records = append(f.Records, rec)

	if f.MinDate == "" || rec.TransactionDate < f.MinDate {
		f.MinDate = rec.TransactionDate
	}

	if rec.TransactionDate > f.MaxDate {
		f.MaxDate = rec.TransactionDate
	}
}

func (f *ParsedFile) fail(err error) {
	f.Errors = append(f.Errors, rowError(0, nil, "File read error: %v", err))
}

// ParseFile never returns a filesystem error: an unreadable file yields a
// single row 0 error instead.
func ParseFile(path string) *ParsedFile {
	f, err := enc.OpenFile(path)
	if err != nil {
		out := &ParsedFile{}
		out.fail(err)

		return out
	}
	defer f.Close()

	return parse(f)
}

// Parse reads every row, collecting records and row errors. Blank rows are
// skipped. Row numbers are physical line numbers in the input.
func Parse(r io.Reader) *ParsedFile {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		out := &ParsedFile{}
		out.fail(err)

		return out
	}

	return parse(utf8r)
}

func parse(r io.Reader) *ParsedFile {
	out := &ParsedFile{}
	reader := newReader(r)

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			out.fail(err)
			break
		}

		if blank(fields) {
			continue
		}

		line, _ := reader.FieldPos(0)

		rec, err := ParseRow(fields, line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				out.Errors = append(out.Errors, perr)
			}

			continue
		}

		out.add(rec)
	}

	return out
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
