package bib

import (
	"fmt"
	"strings"
)

// BibLaTeX renders the entry in BibLaTeX syntax. The result has no trailing
// newline.
func (e *Entry) BibLaTeX() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "@%s{%s,\n", e.Type, e.Key)
	for _, f := range e.fields {
		writeField(&sb, f.Name, formatChunk(f.Value))
	}
	sb.WriteString("}")

	return sb.String()
}

func writeField(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "  %s = {%s},\n", name, value)
}
