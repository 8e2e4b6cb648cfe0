package format_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/csv2bib/bib"
	"github.com/lehigh-university-libraries/csv2bib/format"
	_ "github.com/lehigh-university-libraries/csv2bib/format/biblatex"
	_ "github.com/lehigh-university-libraries/csv2bib/format/bibtex"
	_ "github.com/lehigh-university-libraries/csv2bib/format/csv"
	_ "github.com/lehigh-university-libraries/csv2bib/format/json"
)

func sampleEntry() *bib.Entry {
	e := bib.NewEntry("smith2020", bib.Article)
	e.Set("author", bib.Normal("Smith, Jane"))
	e.Set("doi", bib.Verbatim("10.1000/x_1"))
	e.Set("title", bib.Normal("Fast & Loose"))
	return e
}

func TestWriterBibLaTeX(t *testing.T) {
	s, err := format.GetSerializer("biblatex")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := format.NewWriter(&buf, s)
	require.NoError(t, w.Write(sampleEntry()))
	require.NoError(t, w.Write(bib.NewEntry("empty", bib.Misc)))

	want := "@article{smith2020,\n" +
		"  author = {Smith, Jane},\n" +
		"  doi = {{10.1000/x\\_1}},\n" +
		"  title = {Fast \\& Loose},\n" +
		"}\n\n" +
		"@misc{empty,\n}\n\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, w.Count())
	assert.Equal(t, "biblatex", w.Format())
}

func TestWriterBibTeXRepresentationError(t *testing.T) {
	s, err := format.GetSerializer("bibtex")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := format.NewWriter(&buf, s)

	err = w.Write(bib.NewEntry("x", bib.XData))

	var serErr *format.SerializeError
	require.ErrorAs(t, err, &serErr)
	assert.Equal(t, "bibtex", serErr.Format)
	assert.Equal(t, "x", serErr.Key)

	var repErr *bib.RepresentationError
	assert.True(t, errors.As(err, &repErr))
	assert.Zero(t, w.Count())
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterIOError(t *testing.T) {
	s, err := format.GetSerializer("biblatex")
	require.NoError(t, err)

	w := format.NewWriter(failingWriter{}, s)
	err = w.Write(sampleEntry())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	var serErr *format.SerializeError
	assert.False(t, errors.As(err, &serErr), "I/O failure reported as serialization error")
	assert.Zero(t, w.Count())
}

func TestWriterJSON(t *testing.T) {
	s, err := format.GetSerializer("json")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := format.NewWriter(&buf, s)
	require.NoError(t, w.Write(sampleEntry()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)

	var got struct {
		Key      string            `json:"key"`
		Type     string            `json:"type"`
		Fields   map[string]string `json:"fields"`
		Verbatim []string          `json:"verbatim"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))

	assert.Equal(t, "smith2020", got.Key)
	assert.Equal(t, "article", got.Type)
	assert.Equal(t, "Fast & Loose", got.Fields["title"])
	assert.Equal(t, []string{"doi"}, got.Verbatim)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"biblatex", "bibtex", "csv", "json"}, format.DefaultRegistry.List())
	assert.Equal(t, []string{"biblatex", "bibtex", "json"}, format.DefaultRegistry.Serializers())

	_, err := format.GetSerializer("csv")
	assert.Error(t, err, "csv is input only")

	_, err = format.GetSerializer("ris")
	assert.Error(t, err)

	f, ok := format.Get("BibTeX")
	require.True(t, ok)
	assert.Equal(t, "bibtex", f.Name())
}

func TestDetectSerializer(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{filename: "out.bib", want: "biblatex"},
		{filename: "OUT.BIB", want: "biblatex"},
		{filename: "out.bibtex", want: "bibtex"},
		{filename: "out.jsonl", want: "json"},
		{filename: "out.txt", wantErr: true},
		{filename: "-", wantErr: true},
	}

	for _, tt := range tests {
		s, err := format.DetectSerializer(tt.filename)
		if tt.wantErr {
			assert.Error(t, err, tt.filename)
			continue
		}
		require.NoError(t, err, tt.filename)
		assert.Equal(t, tt.want, s.Name(), tt.filename)
	}
}
