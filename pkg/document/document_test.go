package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	tree, err := Parse([]byte("sessions:\n  - name: dev\n  - ~\n"), FormatYAML)
	require.NoError(t, err)

	root, ok := tree.(map[string]any)
	require.True(t, ok, "root should be a mapping, got %T", tree)
	sessions, ok := root["sessions"].([]any)
	require.True(t, ok)
	require.Len(t, sessions, 2)
	assert.Equal(t, map[string]any{"name": "dev"}, sessions[0])
	assert.Nil(t, sessions[1])
}

func TestParseTOML(t *testing.T) {
	src := `
[[sessions]]
name = "dev"
attach = true

[[sessions.windows]]
name = "editor"
cmd = ["cd src", "vim"]
`
	tree, err := Parse([]byte(src), FormatTOML)
	require.NoError(t, err)

	root := tree.(map[string]any)
	sessions, ok := root["sessions"].([]map[string]any)
	require.True(t, ok, "toml arrays of tables decode as []map[string]any, got %T", root["sessions"])
	assert.Equal(t, "dev", sessions[0]["name"])
	assert.Equal(t, true, sessions[0]["attach"])
}

func TestParseJSONC(t *testing.T) {
	src := `{
  // comment
  "sessions": [
    {"name": "dev", "windows": [{"dir": "/tmp"},]},
  ],
}`
	tree, err := Parse([]byte(src), FormatJSON)
	require.NoError(t, err)

	root := tree.(map[string]any)
	sessions := root["sessions"].([]any)
	assert.Len(t, sessions, 1)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("sessions: [\n"), FormatYAML)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, FormatYAML, perr.Format)
}

func TestParseEmpty(t *testing.T) {
	tree, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Nil(t, tree)

	tree, err = Parse([]byte("  \n"), FormatJSON)
	require.NoError(t, err)
	assert.Nil(t, tree)
}

func TestFormatFor(t *testing.T) {
	cases := map[string]Format{
		"dev.yaml":  FormatYAML,
		"dev.YML":   FormatYAML,
		"dev.toml":  FormatTOML,
		"dev.json":  FormatJSON,
		"dev.jsonc": FormatJSON,
	}
	for name, want := range cases {
		got, err := FormatFor(name)
		if err != nil {
			t.Fatalf("FormatFor(%q) error: %v", name, err)
		}
		if got != want {
			t.Errorf("FormatFor(%q) = %q, want %q", name, got, want)
		}
	}

	if _, err := FormatFor("dev.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFor(dev.ini) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadSetsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sessions: {"), 0o644))

	_, err := Load(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
	assert.Contains(t, err.Error(), path)
}
