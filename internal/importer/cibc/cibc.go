// Package cibc reads the headerless CSV exports of CIBC chequing, savings
// and credit card accounts.
//
// Rows are either date,description,debit,credit or, for card statements,
// date,description,debit,credit,card-number.
package cibc

import (
	"encoding/csv"
	"io"
)

const dateLayout = "2006-01-02"

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Identify(path string) (Match, bool) {
	return Identify(path)
}

func (p *Parser) ParseFile(path string) *ParsedFile {
	return ParseFile(path)
}

// newReader expects input that is already UTF-8.
func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader
}
