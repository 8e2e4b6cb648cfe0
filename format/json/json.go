// Package json provides a line-delimited JSON output format, one object per
// entry:
//
//	{"key":"smith2020","type":"article","fields":{"title":"…"},"verbatim":["doi"]}
//
// Values are written unescaped; the verbatim list names the fields that
// would be written verbatim in BibLaTeX.
package json

import (
	"github.com/lehigh-university-libraries/csv2bib/bib"
	"github.com/lehigh-university-libraries/csv2bib/format"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Format implements the JSON lines format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

var (
	separator = []byte("\n")
	marshal   = protojson.MarshalOptions{}
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON lines, one object per entry"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json", "jsonl", "ndjson"}
}

// SerializeEntry renders e as a single-line JSON object.
func (f *Format) SerializeEntry(e *bib.Entry) ([]byte, error) {
	s, err := toStruct(e)
	if err != nil {
		return nil, err
	}
	return marshal.Marshal(s)
}

// Separator returns the newline written after each entry.
func (f *Format) Separator() []byte {
	return separator
}

func toStruct(e *bib.Entry) (*structpb.Struct, error) {
	fields := make(map[string]any, e.Len())
	verbatim := []any{}
	for _, fld := range e.Fields() {
		fields[fld.Name] = fld.Value.Value
		if fld.Value.Kind == bib.KindVerbatim {
			verbatim = append(verbatim, fld.Name)
		}
	}

	return structpb.NewStruct(map[string]any{
		"key":      e.Key,
		"type":     e.Type.String(),
		"fields":   fields,
		"verbatim": verbatim,
	})
}

func init() {
	format.Register(&Format{})
}
