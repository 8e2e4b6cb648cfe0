// Package template implements the placeholder syntax used by field mappings.
//
// A template is plain text with zero or more placeholders of the form
// [[column]]. Expanding a template against a row replaces each placeholder
// with the row's value for that column:
//
//	t := template.Parse("[[Start Page]]--[[End Page]]")
//	t.Expand(map[string]string{"Start Page": "1200", "End Page": "1212"}, "")
//	// "1200--1212"
//
// The bracket syntax cannot be escaped. An unterminated "[[" is kept as
// literal text.
package template

import (
	"regexp"
	"strings"
)

// placeholderRe matches [[key]] non-greedily and captures key.
var placeholderRe = regexp.MustCompile(`\[\[(.+?)\]\]`)

type segment struct {
	text        string
	placeholder bool
}

// Template is a parsed template string. It is safe for concurrent use.
type Template struct {
	source   string
	segments []segment
}

// Parse splits s into literal and placeholder segments.
func Parse(s string) *Template {
	t := &Template{source: s}

	last := 0
	for _, m := range placeholderRe.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			t.segments = append(t.segments, segment{text: s[last:m[0]]})
		}
		t.segments = append(t.segments, segment{text: s[m[2]:m[3]], placeholder: true})
		last = m[1]
	}
	if last < len(s) {
		t.segments = append(t.segments, segment{text: s[last:]})
	}

	return t
}

// Expand substitutes every placeholder with its value in row. Placeholders
// whose key is absent from row are replaced with missing. A key that is
// present with an empty value expands to the empty string.
func (t *Template) Expand(row map[string]string, missing string) string {
	switch len(t.segments) {
	case 0:
		return ""
	case 1:
		return t.expandSegment(t.segments[0], row, missing)
	}

	var sb strings.Builder
	for _, seg := range t.segments {
		sb.WriteString(t.expandSegment(seg, row, missing))
	}
	return sb.String()
}

func (t *Template) expandSegment(seg segment, row map[string]string, missing string) string {
	if !seg.placeholder {
		return seg.text
	}
	if v, ok := row[seg.text]; ok {
		return v
	}
	return missing
}

// Keys returns the placeholder keys in order of appearance, duplicates
// included.
func (t *Template) Keys() []string {
	var keys []string
	for _, seg := range t.segments {
		if seg.placeholder {
			keys = append(keys, seg.text)
		}
	}
	return keys
}

// IsConstant reports whether the template has no placeholders.
func (t *Template) IsConstant() bool {
	for _, seg := range t.segments {
		if seg.placeholder {
			return false
		}
	}
	return true
}

// String returns the template source text.
func (t *Template) String() string {
	return t.source
}
