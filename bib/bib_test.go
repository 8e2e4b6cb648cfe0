package bib

import (
	"errors"
	"strings"
	"testing"
)

func TestParseEntryType(t *testing.T) {
	tests := []struct {
		input   string
		want    EntryType
		wantErr bool
	}{
		{input: "article", want: Article},
		{input: "Article", want: Article},
		{input: " MISC ", want: Misc},
		{input: "@book", want: Book},
		{input: "phdthesis", want: PhDThesis},
		{input: "online", want: Online},
		{input: "", wantErr: true},
		{input: "journal-article", wantErr: true},
		{input: "articles", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEntryType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEntryType) {
					t.Fatalf("ParseEntryType(%q) error = %v, want ErrUnknownEntryType", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEntryType(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseEntryType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEntrySet(t *testing.T) {
	e := NewEntry("k", Article)
	e.Set("title", Normal("first"))
	e.Set("author", Normal("alice"))
	e.Set("title", Normal("second"))

	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
	fields := e.Fields()
	if fields[0].Name != "title" || fields[0].Value.Value != "second" {
		t.Errorf("fields[0] = %+v, want title=second", fields[0])
	}
	if _, ok := e.Get("year"); ok {
		t.Error("Get(year) found a field that was never set")
	}
}

func TestBibLaTeX(t *testing.T) {
	e := NewEntry("test1", Misc)
	e.Set("author", Normal("author1, author2"))
	e.Set("testfield", Verbatim(`Test: 1234$%?_]';p[\]`))
	e.Set("title", Normal("My eloquent title"))

	want := "@misc{test1,\n" +
		"  author = {author1, author2},\n" +
		"  testfield = {{Test\\: 1234\\$\\%?\\_]';p[\\\\]}},\n" +
		"  title = {My eloquent title},\n" +
		"}"

	if got := e.BibLaTeX(); got != want {
		t.Errorf("BibLaTeX() =\n%s\nwant\n%s", got, want)
	}
}

func TestNormalAndVerbatimEscapeDifferently(t *testing.T) {
	value := `50% of $x_1$ \ {y}`

	e := NewEntry("k", Article)
	e.Set("note", Normal(value))
	e.Set("url", Verbatim(value))
	out := e.BibLaTeX()

	if !strings.Contains(out, `note = {50\% of \$x\_1\$ \textbackslash{} \{y\}}`) {
		t.Errorf("normal field not escaped as LaTeX:\n%s", out)
	}
	if !strings.Contains(out, `url = {{50\% of \$x\_1\$ \\ \{y\}}}`) {
		t.Errorf("verbatim field not escaped verbatim:\n%s", out)
	}
}

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"A & B", `A \& B`},
		{"~^", `\textasciitilde{}\textasciicircum{}`},
		{"#1", `\#1`},
		{`\`, `\textbackslash{}`},
	}
	for _, tt := range tests {
		if got := EscapeLaTeX(tt.in); got != tt.want {
			t.Errorf("EscapeLaTeX(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBibTeXTypeMapping(t *testing.T) {
	tests := []struct {
		in   EntryType
		want string
	}{
		{Article, "@article{k,"},
		{Online, "@misc{k,"},
		{Report, "@techreport{k,"},
		{Thesis, "@phdthesis{k,"},
		{InReference, "@incollection{k,"},
	}
	for _, tt := range tests {
		out, err := NewEntry("k", tt.in).BibTeX()
		if err != nil {
			t.Fatalf("BibTeX() for %s failed: %v", tt.in, err)
		}
		if !strings.HasPrefix(out, tt.want) {
			t.Errorf("BibTeX() for %s = %q, want prefix %q", tt.in, out, tt.want)
		}
	}
}

func TestBibTeXFieldMapping(t *testing.T) {
	e := NewEntry("k", Article)
	e.Set("journaltitle", Normal("Nature"))
	e.Set("location", Normal("London"))
	e.Set("date", Normal("2021-03-14"))
	e.Set("doi", Verbatim("10.1/x_y"))

	out, err := e.BibTeX()
	if err != nil {
		t.Fatalf("BibTeX() failed: %v", err)
	}

	for _, want := range []string{
		"  journal = {Nature},\n",
		"  address = {London},\n",
		"  year = {2021},\n",
		"  month = mar,\n",
		"  doi = {{10.1/x\\_y}},\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("BibTeX() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "date =") || strings.Contains(out, "journaltitle") {
		t.Errorf("BibTeX() kept BibLaTeX-only fields:\n%s", out)
	}
}

func TestBibTeXKeepsExplicitJournal(t *testing.T) {
	e := NewEntry("k", Article)
	e.Set("journaltitle", Normal("Long Name"))
	e.Set("journal", Normal("Short"))
	e.Set("year", Normal("1999"))
	e.Set("date", Normal("2001"))

	out, err := e.BibTeX()
	if err != nil {
		t.Fatalf("BibTeX() failed: %v", err)
	}
	if !strings.Contains(out, "journal = {Short}") || strings.Contains(out, "Long Name") {
		t.Errorf("explicit journal lost:\n%s", out)
	}
	if !strings.Contains(out, "year = {1999}") {
		t.Errorf("explicit year overridden by date:\n%s", out)
	}
}

func TestBibTeXRepresentationErrors(t *testing.T) {
	e := NewEntry("k", Set)
	_, err := e.BibTeX()
	var repErr *RepresentationError
	if !errors.As(err, &repErr) {
		t.Fatalf("BibTeX() for set error = %v, want *RepresentationError", err)
	}
	if repErr.Key != "k" {
		t.Errorf("Key = %q, want k", repErr.Key)
	}

	e = NewEntry("k2", Article)
	e.Set("date", Normal("2020/2021"))
	if _, err := e.BibTeX(); !errors.As(err, &repErr) {
		t.Fatalf("BibTeX() for range date error = %v, want *RepresentationError", err)
	}

	e = NewEntry("k3", Article)
	e.Set("date", Normal("2020-13"))
	if _, err := e.BibTeX(); !errors.As(err, &repErr) {
		t.Fatalf("BibTeX() for invalid month error = %v, want *RepresentationError", err)
	}
}

func TestMonthMacro(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"1", "jan", true},
		{"12", "dec", true},
		{"13", "", false},
		{"March", "mar", true},
		{"sep", "sep", true},
		{"junk", "", false},
	}
	for _, tt := range tests {
		got, ok := monthMacro(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("monthMacro(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
