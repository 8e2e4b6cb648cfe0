package format

import (
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/csv2bib/bib"
)

// SerializeError reports an entry the output format cannot express. It is
// never caused by I/O.
type SerializeError struct {
	Format string
	Key    string
	Err    error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serializing entry %q as %s: %v", e.Key, e.Format, e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}

// Writer streams entries to an output using a Serializer.
type Writer struct {
	w     io.Writer
	s     Serializer
	count int
}

// NewWriter creates a Writer.
func NewWriter(w io.Writer, s Serializer) *Writer {
	return &Writer{w: w, s: s}
}

// Write serializes e and writes it followed by the format's separator. The
// count only grows when the whole entry was written.
func (w *Writer) Write(e *bib.Entry) error {
	data, err := w.s.SerializeEntry(e)
	if err != nil {
		return &SerializeError{Format: w.s.Name(), Key: e.Key, Err: err}
	}
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("writing entry %q: %w", e.Key, err)
	}
	if _, err := w.w.Write(w.s.Separator()); err != nil {
		return fmt.Errorf("writing entry %q: %w", e.Key, err)
	}
	w.count++
	return nil
}

// Count returns the number of entries written successfully.
func (w *Writer) Count() int {
	return w.count
}

// Format returns the name of the output format.
func (w *Writer) Format() string {
	return w.s.Name()
}
