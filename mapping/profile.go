package mapping

import (
	"fmt"
	"os"
	"path/filepath"
)

// Profile is a named, reusable mapping configuration, usually describing the
// CSV export of one database or reference manager.
type Profile struct {
	// Name is the profile identifier
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Delimiter is the CSV cell delimiter ("\t" for tab)
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// Encoding is the input text encoding (e.g., "utf-8", "windows-1252")
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`

	// Lazy skips malformed rows instead of aborting
	Lazy bool `yaml:"lazy,omitempty" json:"lazy,omitempty"`

	// NoDefaults disables the default field mappings and verbatim fields
	NoDefaults bool `yaml:"no_defaults,omitempty" json:"no_defaults,omitempty"`

	// Fields maps output fields to templates
	Fields Mapping `yaml:"fields" json:"fields"`

	// Verbatim lists output fields written verbatim
	Verbatim []string `yaml:"verbatim,omitempty" json:"verbatim,omitempty"`
}

// Apply copies the profile's fields and verbatim names into m and verbatim.
// Fields already present in m are kept, so values given on the command line
// override the profile.
func (p *Profile) Apply(m Mapping, verbatim FieldSet) {
	for field, template := range p.Fields {
		m.SetDefault(field, template)
	}
	for _, name := range p.Verbatim {
		verbatim.Add(name)
	}
}

// ProfileDirEnv names the environment variable that overrides the user
// profile directory.
const ProfileDirEnv = "CSV2BIB_PROFILE_DIR"

// ProfilesDir returns the directory holding user profiles: $CSV2BIB_PROFILE_DIR
// if set, else ~/.csv2bib/profiles.
func ProfilesDir() (string, error) {
	if dir := os.Getenv(ProfileDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".csv2bib", "profiles"), nil
}
