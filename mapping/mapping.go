// Package mapping provides the field mapping configuration used to turn CSV
// rows into bibliography entries.
//
// A Mapping assigns each output field a template (see package template). Two
// keys are reserved: KeyField holds the template for the entry key and
// TypeField the template for the entry type.
package mapping

import (
	"fmt"
	"sort"
	"strings"
)

// Reserved control fields.
const (
	KeyField  = "bibtexkey"
	TypeField = "entrytype"
)

// Mapping maps output field names to templates.
type Mapping map[string]string

// Clone returns a copy of m. A nil mapping clones to an empty one.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Names returns the mapped field names in sorted order.
func (m Mapping) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SetDefault stores template under field only when field is not mapped yet.
// It reports whether the mapping changed.
func (m Mapping) SetDefault(field, template string) bool {
	if _, ok := m[field]; ok {
		return false
	}
	m[field] = template
	return true
}

// ParseAssignment splits a "field=template" assignment. Only the first '='
// separates the field from the template, so templates may contain '='.
func ParseAssignment(s string) (field, template string, err error) {
	field, template, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid field mapping %q: expected field=template", s)
	}
	field = strings.TrimSpace(field)
	if field == "" {
		return "", "", fmt.Errorf("invalid field mapping %q: empty field name", s)
	}
	return field, template, nil
}

// ParseAssignments parses a list of "field=template" assignments into m.
// Later assignments for the same field win.
func ParseAssignments(m Mapping, assignments []string) error {
	for _, a := range assignments {
		field, template, err := ParseAssignment(a)
		if err != nil {
			return err
		}
		m[field] = template
	}
	return nil
}

// FieldSet is a set of output field names.
type FieldSet map[string]struct{}

// NewFieldSet returns a set holding names.
func NewFieldSet(names ...string) FieldSet {
	s := make(FieldSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name and reports whether it was new.
func (s FieldSet) Add(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

// Has reports whether name is in the set.
func (s FieldSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Clone returns a copy of s.
func (s FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Names returns the set members in sorted order.
func (s FieldSet) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
