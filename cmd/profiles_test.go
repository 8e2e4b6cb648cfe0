package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/csv2bib/mapping"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestProfilesList(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(mapping.ProfileDirEnv, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lab.yaml"), []byte(`description: Lab reading list
fields:
  title: "[[Name]]"
`), 0o644))

	out, err := execRoot(t, "profiles", "list")
	require.NoError(t, err)
	assert.Equal(t, `Available profiles:
  ieee - IEEE Xplore search result export (CSV)
  lab - Lab reading list
  scopus - Scopus CSV export
  wos - Web of Science tab-delimited export
`, out)
}

func TestProfilesShow(t *testing.T) {
	t.Setenv(mapping.ProfileDirEnv, t.TempDir())

	out, err := execRoot(t, "profiles", "show", "wos")
	require.NoError(t, err)

	var p mapping.Profile
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.Equal(t, "wos", p.Name)
	assert.True(t, p.Lazy)
	assert.Equal(t, `\t`, p.Delimiter)
	assert.Equal(t, "[[TI]]", p.Fields["title"])

	_, err = execRoot(t, "profiles", "show", "nope")
	assert.EqualError(t, err, "unknown profile: nope")
}

func TestDefaults(t *testing.T) {
	out, err := execRoot(t, "defaults")
	require.NoError(t, err)

	var p mapping.Profile
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))

	want, verbatim := mapping.WithDefaults(mapping.Mapping{}, mapping.NewFieldSet())
	assert.Equal(t, want, p.Fields)
	assert.Equal(t, verbatim.Names(), p.Verbatim)
}
