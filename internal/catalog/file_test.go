package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileValid(t *testing.T) {
	path := writeCatalog(t, `[
		{
			"name": "Sage",
			"traits": {"patience": 0.9, "friendliness": 0.85},
			"preferredStyle": "auditory",
			"strategies": ["socraticMethod", "scaffolding"],
			"responses": {
				"greeting": "Welcome back.",
				"problemSolving": "Let's think this through."
			}
		}
	]`)

	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 1)

	p := list[0]
	assert.Equal(t, "Sage", p.Name)
	assert.Equal(t, 0.9, p.Patience())
	assert.Equal(t, 0.5, p.Formality(), "absent trait falls back to default")
	assert.Equal(t, "Welcome back.", p.Responses["greeting"])
}

func TestLoadFileRejectsBadShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not an array", `{"name": "Sage"}`},
		{"missing name", `[{"responses": {"greeting": "hi"}}]`},
		{"missing responses", `[{"name": "Sage"}]`},
		{"empty responses", `[{"name": "Sage", "responses": {}}]`},
		{"bad style", `[{"name": "Sage", "preferredStyle": "telepathic", "responses": {"greeting": "hi"}}]`},
		{"bad strategy", `[{"name": "Sage", "strategies": ["hypnosis"], "responses": {"greeting": "hi"}}]`},
		{"trait not a number", `[{"name": "Sage", "traits": {"patience": "high"}, "responses": {"greeting": "hi"}}]`},
		{"not json", `personalities: []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeCatalog(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileRejectsSemanticErrors(t *testing.T) {
	// Passes the schema but violates catalog invariants.
	path := writeCatalog(t, `[
		{"name": "Twin", "responses": {"greeting": "hi"}},
		{"name": "Twin", "responses": {"greeting": "hello"}}
	]`)
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	path = writeCatalog(t, `[{"name": "Odd", "traits": {"patience": 1.5}, "responses": {"greeting": "hi"}}]`)
	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of [0,1]")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
