// Package pipeline runs the conversion loop: it pulls rows from a source,
// converts each to an entry and writes it.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lehigh-university-libraries/csv2bib/bib"
	"github.com/lehigh-university-libraries/csv2bib/convert"
	"github.com/lehigh-university-libraries/csv2bib/format/csv"
)

// Source yields rows until io.EOF. *csv.Reader implements it.
type Source interface {
	Next() (csv.Row, error)
}

// Converter turns a row into an entry. *convert.Converter implements it.
type Converter interface {
	Convert(row map[string]string, fallbackKey string) (*bib.Entry, error)
}

// Writer receives converted entries. *format.Writer implements it.
type Writer interface {
	Write(e *bib.Entry) error
}

// Options controls error handling.
type Options struct {
	// Lazy skips malformed rows and rows with an invalid entry type instead
	// of aborting
	Lazy bool

	// Limit stops after this many entries were written; zero means no limit
	Limit int

	// Logger receives skipped-row warnings; nil means slog.Default()
	Logger *slog.Logger
}

// Summary describes a finished run.
type Summary struct {
	Written int
	Skipped int
	Elapsed time.Duration
}

// FallbackKey returns the entry key used for the n-th row (1-based) when the
// mapping does not produce one.
func FallbackKey(n int) string {
	return fmt.Sprintf("entry_%d", n)
}

// Run converts every row of src and writes it to w. In strict mode the first
// malformed row ends the run with an error; writer errors always do. The
// summary is valid even when an error is returned.
func Run(ctx context.Context, src Source, conv Converter, w Writer, opts Options) (Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var sum Summary
	start := time.Now()

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			sum.Elapsed = time.Since(start)
			return sum, err
		}
		if opts.Limit > 0 && sum.Written >= opts.Limit {
			break
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err == nil {
			var entry *bib.Entry
			entry, err = conv.Convert(row, FallbackKey(n))
			if err == nil {
				if err := w.Write(entry); err != nil {
					sum.Elapsed = time.Since(start)
					return sum, err
				}
				sum.Written++
				continue
			}
		}

		if !recoverable(err) {
			sum.Elapsed = time.Since(start)
			return sum, fmt.Errorf("reading row %d: %w", n, err)
		}
		if !opts.Lazy {
			sum.Elapsed = time.Since(start)
			return sum, fmt.Errorf("row %d: %w (rerun with --lazy to skip malformed rows)", n, err)
		}
		sum.Skipped++
		logger.Warn("skipping row", "row", n, "error", err)
	}

	sum.Elapsed = time.Since(start)
	return sum, nil
}

// recoverable reports whether err concerns a single row only.
func recoverable(err error) bool {
	var rowErr *csv.RowError
	var typeErr *convert.EntryTypeError
	return errors.As(err, &rowErr) || errors.As(err, &typeErr)
}
