// Package bib models bibliography entries and writes them as BibTeX or
// BibLaTeX.
package bib

// ChunkKind tells the serializer how a field value is escaped.
type ChunkKind int

const (
	// KindNormal values are escaped as LaTeX text.
	KindNormal ChunkKind = iota
	// KindVerbatim values are written inside a verbatim brace group, for
	// fields such as url or doi that biber reads literally.
	KindVerbatim
)

func (k ChunkKind) String() string {
	if k == KindVerbatim {
		return "verbatim"
	}
	return "normal"
}

// Chunk is a field value tagged with its kind.
type Chunk struct {
	Kind  ChunkKind
	Value string
}

// Normal returns a chunk that is escaped as ordinary text.
func Normal(s string) Chunk {
	return Chunk{Kind: KindNormal, Value: s}
}

// Verbatim returns a chunk that is written verbatim.
func Verbatim(s string) Chunk {
	return Chunk{Kind: KindVerbatim, Value: s}
}

// Field is a named entry field.
type Field struct {
	Name  string
	Value Chunk
}

// Entry is a single bibliography entry. Fields keep insertion order.
type Entry struct {
	Key    string
	Type   EntryType
	fields []Field
	index  map[string]int
}

// NewEntry creates an empty entry.
func NewEntry(key string, t EntryType) *Entry {
	return &Entry{
		Key:   key,
		Type:  t,
		index: make(map[string]int),
	}
}

// Set stores a field. Setting an existing field replaces its value in place.
func (e *Entry) Set(name string, c Chunk) {
	if e.index == nil {
		e.index = make(map[string]int)
	}
	if i, ok := e.index[name]; ok {
		e.fields[i].Value = c
		return
	}
	e.index[name] = len(e.fields)
	e.fields = append(e.fields, Field{Name: name, Value: c})
}

// Get returns the named field.
func (e *Entry) Get(name string) (Chunk, bool) {
	i, ok := e.index[name]
	if !ok {
		return Chunk{}, false
	}
	return e.fields[i].Value, true
}

// Fields returns a copy of the entry's fields in insertion order.
func (e *Entry) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Len returns the number of fields.
func (e *Entry) Len() int {
	return len(e.fields)
}
