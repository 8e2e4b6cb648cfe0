package bibtex

import (
	"github.com/lehigh-university-libraries/csv2bib/bib"
)

var separator = []byte("\n\n")

// SerializeEntry renders e as BibTeX. Entries using BibLaTeX features that
// BibTeX cannot express fail with a *bib.RepresentationError.
func (f *Format) SerializeEntry(e *bib.Entry) ([]byte, error) {
	text, err := e.BibTeX()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Separator returns the blank line written after each entry.
func (f *Format) Separator() []byte {
	return separator
}
