// Package format defines the interface for input and output format plugins
// and the writer that streams bibliography entries to an output.
package format

import (
	"github.com/lehigh-university-libraries/csv2bib/bib"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "csv", "bibtex", "biblatex")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// Serializer is a format that can write bibliography entries.
type Serializer interface {
	Format

	// SerializeEntry renders a single entry, without the separator that
	// follows it in the output.
	SerializeEntry(e *bib.Entry) ([]byte, error)

	// Separator is written after every entry.
	Separator() []byte
}
