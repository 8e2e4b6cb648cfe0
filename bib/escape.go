package bib

import "strings"

// latexReplacer escapes LaTeX special characters in normal text. The
// replacer works in a single pass, so the braces it emits are not escaped
// again.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// verbatimReplacer backslash-escapes the characters that would otherwise
// break out of a verbatim brace group.
var verbatimReplacer = strings.NewReplacer(
	`\`, `\\`,
	"{", `\{`,
	"}", `\}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"~", `\~`,
	"^", `\^`,
	":", `\:`,
)

// EscapeLaTeX escapes special characters for a normal field value.
func EscapeLaTeX(s string) string {
	return latexReplacer.Replace(s)
}

// EscapeVerbatim escapes a verbatim field value. The result still needs to
// be wrapped in its own brace group.
func EscapeVerbatim(s string) string {
	return verbatimReplacer.Replace(s)
}

func formatChunk(c Chunk) string {
	if c.Kind == KindVerbatim {
		return "{" + EscapeVerbatim(c.Value) + "}"
	}
	return EscapeLaTeX(c.Value)
}
