// Package biblatex provides the BibLaTeX output format.
package biblatex

import (
	"github.com/lehigh-university-libraries/csv2bib/bib"
	"github.com/lehigh-university-libraries/csv2bib/format"
)

// Format implements the BibLaTeX format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

var separator = []byte("\n\n")

// Name returns the format identifier.
func (f *Format) Name() string {
	return "biblatex"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "BibLaTeX bibliography format (default)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"bib", "biblatex"}
}

// SerializeEntry renders e as BibLaTeX. It never fails.
func (f *Format) SerializeEntry(e *bib.Entry) ([]byte, error) {
	return []byte(e.BibLaTeX()), nil
}

// Separator returns the blank line written after each entry.
func (f *Format) Separator() []byte {
	return separator
}

func init() {
	format.Register(&Format{})
}
