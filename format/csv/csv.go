// Package csv provides the CSV record source: it reads delimited text and
// yields one Row per data line, keyed by the header.
package csv

import (
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/csv2bib/format"
)

// Format implements the CSV input format.
type Format struct{}

// Ensure Format implements the interface
var _ format.Format = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Comma- or tab-separated values with a header row"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv", "tsv", "tab"}
}

// DefaultDelimiter returns the delimiter implied by a file name: tab for
// .tsv and .tab files, comma otherwise.
func DefaultDelimiter(filename string) rune {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsv", ".tab":
		return '\t'
	default:
		return ','
	}
}

func init() {
	format.Register(&Format{})
}
