// Package bibtex provides the BibTeX output format.
package bibtex

import (
	"github.com/lehigh-university-libraries/csv2bib/format"
)

// Version documents the BibTeX specification this implementation targets.
const Version = "bibtex-0.99"

// Format implements the BibTeX format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "bibtex"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "BibTeX bibliography format (BibLaTeX-only types and fields are mapped or rejected)"
}

// Extensions returns file extensions associated with this format. BibLaTeX
// claims .bib, so BibTeX output is only picked by name or .bibtex files.
func (f *Format) Extensions() []string {
	return []string{"bibtex"}
}

func init() {
	format.Register(&Format{})
}
