// Package convert turns CSV rows into bibliography entries using a field
// mapping.
package convert

import (
	"fmt"
	"sort"

	"github.com/lehigh-university-libraries/csv2bib/bib"
	"github.com/lehigh-university-libraries/csv2bib/mapping"
	"github.com/lehigh-university-libraries/csv2bib/template"
)

// DefaultEntryType is used when no entry type template is mapped, and in
// place of unresolved placeholders in the entry type template.
const DefaultEntryType = "article"

// EntryTypeError reports a row whose resolved entry type is not a valid
// BibTeX or BibLaTeX type.
type EntryTypeError struct {
	Key   string
	Value string
	Err   error
}

func (e *EntryTypeError) Error() string {
	return fmt.Sprintf("entry %q: %v", e.Key, e.Err)
}

func (e *EntryTypeError) Unwrap() error {
	return e.Err
}

type field struct {
	name     string
	template *template.Template
	verbatim bool
}

// Converter resolves a field mapping against CSV rows. It holds its own copy
// of the mapping and is safe for concurrent use once created.
type Converter struct {
	key       *template.Template
	entryType *template.Template
	fields    []field
	verbatim  mapping.FieldSet
}

// New creates a converter for m. Fields named in verbatim produce verbatim
// values. Every template is parsed once here; later changes to m or
// verbatim do not affect the converter.
func New(m mapping.Mapping, verbatim mapping.FieldSet) *Converter {
	c := &Converter{
		verbatim: verbatim.Clone(),
	}

	for _, name := range m.Names() {
		tpl := template.Parse(m[name])
		switch name {
		case mapping.KeyField:
			c.key = tpl
		case mapping.TypeField:
			c.entryType = tpl
		default:
			c.fields = append(c.fields, field{
				name:     name,
				template: tpl,
				verbatim: c.verbatim.Has(name),
			})
		}
	}

	return c
}

// Convert builds the entry for row. fallbackKey is used as the entry key when
// no key template is mapped, and in place of key template placeholders that
// row does not have.
//
// Ordinary fields whose template expands to the empty string are left out of
// the entry. Fields are added in field name order.
func (c *Converter) Convert(row map[string]string, fallbackKey string) (*bib.Entry, error) {
	key := fallbackKey
	if c.key != nil {
		key = c.key.Expand(row, fallbackKey)
	}

	typeName := DefaultEntryType
	if c.entryType != nil {
		typeName = c.entryType.Expand(row, DefaultEntryType)
	}
	entryType, err := bib.ParseEntryType(typeName)
	if err != nil {
		return nil, &EntryTypeError{Key: key, Value: typeName, Err: err}
	}

	entry := bib.NewEntry(key, entryType)
	for _, f := range c.fields {
		value := f.template.Expand(row, "")
		if value == "" {
			continue
		}
		if f.verbatim {
			entry.Set(f.name, bib.Verbatim(value))
		} else {
			entry.Set(f.name, bib.Normal(value))
		}
	}

	return entry, nil
}

// Fields returns the mapped output fields, control fields excluded, in the
// order they are added to entries.
func (c *Converter) Fields() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.name
	}
	return names
}

// Verbatim returns the verbatim field names in sorted order.
func (c *Converter) Verbatim() []string {
	return c.verbatim.Names()
}

// MissingColumns reports, for every mapped field, the placeholder keys that
// do not appear in header. Control fields are included under their reserved
// names. Fields whose placeholders all exist are omitted.
func (c *Converter) MissingColumns(header []string) map[string][]string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	missing := make(map[string][]string)
	check := func(name string, tpl *template.Template) {
		seen := make(map[string]bool)
		for _, k := range tpl.Keys() {
			if present[k] || seen[k] {
				continue
			}
			seen[k] = true
			missing[name] = append(missing[name], k)
		}
	}

	if c.key != nil {
		check(mapping.KeyField, c.key)
	}
	if c.entryType != nil {
		check(mapping.TypeField, c.entryType)
	}
	for _, f := range c.fields {
		check(f.name, f.template)
	}

	return missing
}

// SortedKeys returns the keys of a MissingColumns result in sorted order.
func SortedKeys(missing map[string][]string) []string {
	keys := make([]string, 0, len(missing))
	for k := range missing {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
