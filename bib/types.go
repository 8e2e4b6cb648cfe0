package bib

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEntryType is returned when an entry type string does not name a
// BibTeX or BibLaTeX entry type.
var ErrUnknownEntryType = errors.New("unknown entry type")

// EntryType is a lower-case BibLaTeX (or BibTeX) entry type name.
type EntryType string

// Entry types.
const (
	Article        EntryType = "article"
	Book           EntryType = "book"
	MVBook         EntryType = "mvbook"
	InBook         EntryType = "inbook"
	BookInBook     EntryType = "bookinbook"
	SuppBook       EntryType = "suppbook"
	Booklet        EntryType = "booklet"
	Collection     EntryType = "collection"
	MVCollection   EntryType = "mvcollection"
	InCollection   EntryType = "incollection"
	SuppCollection EntryType = "suppcollection"
	Conference     EntryType = "conference"
	Dataset        EntryType = "dataset"
	Electronic     EntryType = "electronic"
	Manual         EntryType = "manual"
	MastersThesis  EntryType = "mastersthesis"
	Misc           EntryType = "misc"
	Online         EntryType = "online"
	Patent         EntryType = "patent"
	Periodical     EntryType = "periodical"
	SuppPeriodical EntryType = "suppperiodical"
	PhDThesis      EntryType = "phdthesis"
	Proceedings    EntryType = "proceedings"
	MVProceedings  EntryType = "mvproceedings"
	InProceedings  EntryType = "inproceedings"
	Reference      EntryType = "reference"
	MVReference    EntryType = "mvreference"
	InReference    EntryType = "inreference"
	Report         EntryType = "report"
	Set            EntryType = "set"
	Software       EntryType = "software"
	TechReport     EntryType = "techreport"
	Thesis         EntryType = "thesis"
	Unpublished    EntryType = "unpublished"
	WWW            EntryType = "www"
	XData          EntryType = "xdata"
)

// bibtexTypes maps every known type to its closest BibTeX type. An empty
// value means the type has no BibTeX counterpart.
var bibtexTypes = map[EntryType]EntryType{
	Article:        Article,
	Book:           Book,
	MVBook:         Book,
	InBook:         InBook,
	BookInBook:     InBook,
	SuppBook:       InBook,
	Booklet:        Booklet,
	Collection:     Book,
	MVCollection:   Book,
	InCollection:   InCollection,
	SuppCollection: InCollection,
	Conference:     Conference,
	Dataset:        Misc,
	Electronic:     Misc,
	Manual:         Manual,
	MastersThesis:  MastersThesis,
	Misc:           Misc,
	Online:         Misc,
	Patent:         Misc,
	Periodical:     Misc,
	SuppPeriodical: Article,
	PhDThesis:      PhDThesis,
	Proceedings:    Proceedings,
	MVProceedings:  Proceedings,
	InProceedings:  InProceedings,
	Reference:      Book,
	MVReference:    Book,
	InReference:    InCollection,
	Report:         TechReport,
	Set:            "",
	Software:       Misc,
	TechReport:     TechReport,
	Thesis:         PhDThesis,
	Unpublished:    Unpublished,
	WWW:            Misc,
	XData:          "",
}

// ParseEntryType parses s case-insensitively, ignoring surrounding
// whitespace and a leading '@'.
func ParseEntryType(s string) (EntryType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "@")
	t := EntryType(name)
	if _, ok := bibtexTypes[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntryType, s)
	}
	return t, nil
}

// String returns the type name.
func (t EntryType) String() string {
	return string(t)
}

// BibTeX returns the BibTeX type used for t, or false when t cannot be
// expressed in BibTeX.
func (t EntryType) BibTeX() (EntryType, bool) {
	bt := bibtexTypes[t]
	return bt, bt != ""
}
