package mapping

// DefaultField is a field added by WithDefaults.
type DefaultField struct {
	Field    string
	Template string
}

// DefaultFields returns the default field templates. They match the column
// names most reference managers use for their CSV exports.
func DefaultFields() []DefaultField {
	return []DefaultField{
		{Field: TypeField, Template: "[[type]]"},
		{Field: KeyField, Template: "[[bibtexkey]]"},
		{Field: "title", Template: "[[title]]"},
		{Field: "author", Template: "[[author]]"},
		{Field: "abstract", Template: "[[abstract]]"},
		{Field: "journal", Template: "[[journal]]"},
		{Field: "volume", Template: "[[volume]]"},
		{Field: "number", Template: "[[issue]]"},
	}
}

// DefaultVerbatimFields returns the fields BibLaTeX treats as verbatim.
func DefaultVerbatimFields() []string {
	return []string{"url", "file", "doi", "pdf", "eprint", "verba", "verbb", "verbc", "urlraw"}
}

// WithDefaults returns copies of m and verbatim widened with the default
// fields. Existing mappings always win: a default is only added when its
// field is absent. m and verbatim are not modified.
func WithDefaults(m Mapping, verbatim FieldSet) (Mapping, FieldSet) {
	outMap := m.Clone()
	for _, d := range DefaultFields() {
		outMap.SetDefault(d.Field, d.Template)
	}

	outSet := verbatim.Clone()
	for _, name := range DefaultVerbatimFields() {
		outSet.Add(name)
	}

	return outMap, outSet
}
