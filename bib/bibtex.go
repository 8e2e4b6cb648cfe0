package bib

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RepresentationError reports an entry that cannot be written as BibTeX.
type RepresentationError struct {
	Key    string
	Reason string
}

func (e *RepresentationError) Error() string {
	return fmt.Sprintf("cannot represent entry %q in BibTeX: %s", e.Key, e.Reason)
}

// bibtexFieldNames renames BibLaTeX fields to their BibTeX equivalents.
var bibtexFieldNames = map[string]string{
	"journaltitle": "journal",
	"location":     "address",
}

// isoDateRe matches the date forms that have a BibTeX year/month
// equivalent: YYYY, YYYY-MM and YYYY-MM-DD.
var isoDateRe = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)

// BibTeX renders the entry in BibTeX syntax. BibLaTeX-only entry types and
// fields are mapped to their BibTeX counterparts; entries that have none
// return a *RepresentationError.
func (e *Entry) BibTeX() (string, error) {
	t, ok := e.Type.BibTeX()
	if !ok {
		return "", &RepresentationError{Key: e.Key, Reason: fmt.Sprintf("entry type %q has no BibTeX equivalent", e.Type)}
	}

	fields, err := e.bibtexFields()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "@%s{%s,\n", t, e.Key)
	for _, f := range fields {
		if f.Name == "month" && f.Value.Kind == KindNormal {
			if m, ok := monthMacro(f.Value.Value); ok {
				fmt.Fprintf(&sb, "  month = %s,\n", m)
				continue
			}
		}
		writeField(&sb, f.Name, formatChunk(f.Value))
	}
	sb.WriteString("}")

	return sb.String(), nil
}

func (e *Entry) bibtexFields() ([]Field, error) {
	out := NewEntry(e.Key, e.Type)

	var date *Field
	for _, f := range e.fields {
		name := f.Name
		if renamed, ok := bibtexFieldNames[name]; ok {
			if _, exists := e.index[renamed]; exists {
				continue
			}
			name = renamed
		}
		if name == "date" {
			date = &f
			continue
		}
		out.Set(name, f.Value)
	}

	if date != nil {
		year, month, err := splitDate(date.Value.Value)
		if err != nil {
			return nil, &RepresentationError{Key: e.Key, Reason: err.Error()}
		}
		if _, ok := out.Get("year"); !ok {
			out.Set("year", Normal(year))
		}
		if _, ok := out.Get("month"); !ok && month != "" {
			out.Set("month", Normal(month))
		}
	}

	return out.fields, nil
}

func splitDate(s string) (year, month string, err error) {
	m := isoDateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", "", fmt.Errorf("date %q is not a plain YYYY[-MM[-DD]] date", s)
	}
	if m[2] != "" {
		n, _ := strconv.Atoi(m[2])
		if n < 1 || n > 12 {
			return "", "", fmt.Errorf("date %q has an invalid month", s)
		}
		month = strconv.Itoa(n)
	}
	return m[1], month, nil
}

// monthMacro converts a month number or English month name to the
// standard BibTeX month macro.
func monthMacro(s string) (string, bool) {
	names := []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return names[n-1][:3], true
		}
		return "", false
	}
	for _, name := range names {
		if s == name || s == name[:3] {
			return name[:3], true
		}
	}
	return "", false
}
