package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row is one data record keyed by column header. Every header column is
// present, possibly with an empty value.
type Row map[string]string

// RowError reports a malformed data row. Reading can continue with the next
// row after a RowError.
type RowError struct {
	// Row is the 1-based ordinal of the data row (the header is not counted)
	Row int
	// Line is the input line the row starts on
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (line %d): %v", e.Row, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Options configures a Reader.
type Options struct {
	// Delimiter separates cells; zero means ','
	Delimiter rune

	// Lazy pads short rows with empty cells and drops empty trailing cells
	// instead of rejecting the row
	Lazy bool

	// Encoding is the input text encoding label (WHATWG names such as
	// "utf-8", "windows-1252", "latin1", "utf-16"); empty means UTF-8
	Encoding string
}

// ParseDelimiter parses a delimiter given on the command line. It must be a
// single character; the two-character sequence `\t` stands for a tab.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// NewDecoder wraps r so that it yields UTF-8 text. A byte order mark at the
// start of the input always wins over the named encoding and is removed.
func NewDecoder(r io.Reader, name string) (io.Reader, error) {
	var enc encoding.Encoding = unicode.UTF8
	if name != "" {
		e, err := htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
		}
		enc = e
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// Reader reads rows from delimited text. The first record is the header.
type Reader struct {
	csv    *csv.Reader
	header []string
	lazy   bool
	row    int
	line   int
}

// NewReader creates a Reader and reads the header row.
func NewReader(r io.Reader, opts Options) (*Reader, error) {
	decoded, err := NewDecoder(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	// Field counts are checked here so that lazy mode can repair rows.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("reading header: input is empty")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	return &Reader{
		csv:    cr,
		header: header,
		lazy:   opts.Lazy,
		line:   1,
	}, nil
}

// Header returns the column names.
func (r *Reader) Header() []string {
	out := make([]string, len(r.header))
	copy(out, r.header)
	return out
}

// Row returns the 1-based ordinal of the last data row read.
func (r *Reader) Row() int {
	return r.row
}

// Line returns the input line on which the last data row started.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next row. It returns io.EOF after the last row and a
// *RowError for a malformed row; any other error comes from the underlying
// reader and ends the input.
func (r *Reader) Next() (Row, error) {
	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	r.row++

	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			r.line = perr.StartLine
			return nil, &RowError{Row: r.row, Line: perr.StartLine, Err: perr.Err}
		}
		return nil, fmt.Errorf("reading row %d: %w", r.row, err)
	}
	r.line, _ = r.csv.FieldPos(0)

	record, err = r.fit(record)
	if err != nil {
		return nil, &RowError{Row: r.row, Line: r.line, Err: err}
	}

	row := make(Row, len(r.header))
	for i, col := range r.header {
		row[col] = record[i]
	}
	return row, nil
}

// fit checks the record length against the header. In lazy mode short
// records are padded and empty trailing cells are dropped; extra non-empty
// cells are always an error because they cannot be assigned to a column.
func (r *Reader) fit(record []string) ([]string, error) {
	n := len(r.header)
	if len(record) == n {
		return record, nil
	}
	if !r.lazy {
		return nil, fieldCountError(len(record), n)
	}

	if len(record) < n {
		padded := make([]string, n)
		copy(padded, record)
		return padded, nil
	}
	if strings.Join(record[n:], "") != "" {
		return nil, fieldCountError(len(record), n)
	}
	return record[:n], nil
}

func fieldCountError(got, want int) error {
	return fmt.Errorf("%w: found %d fields, header has %d", csv.ErrFieldCount, got, want)
}
