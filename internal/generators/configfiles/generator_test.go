package configfiles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Ace1928/repo-forge/internal/identity"
	"github.com/Ace1928/repo-forge/internal/report"
)

func testIdentity() identity.Info {
	info := identity.Fallback()
	info.AuthorName = "Grace Hopper"
	info.AuthorEmail = "grace@example.com"
	return info
}

func TestGenerateWritesConfigFiles(t *testing.T) {
	base := t.TempDir()
	gen := NewGenerator(testIdentity())

	raw, err := gen.Generate(base, "my_repo", []string{"python", "go"}, false)
	require.NoError(t, err)

	result, err := report.Normalize(raw, "config")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, len(result.CreatedFiles), result.Count)

	for _, rel := range []string{
		"README.md",
		".gitignore",
		".editorconfig",
		"forge.yml",
		"CONTRIBUTING.md",
		"CODE_OF_CONDUCT.md",
		"LICENSE",
		"SECURITY.md",
		"CHANGELOG.md",
		".forge.json",
		filepath.Join(".github", "workflows", "ci.yml"),
	} {
		assert.FileExists(t, filepath.Join(base, rel))
	}
}

func TestGenerateRendersIdentity(t *testing.T) {
	base := t.TempDir()
	gen := NewGenerator(testIdentity())

	_, err := gen.Generate(base, "my_repo", nil, false)
	require.NoError(t, err)

	license, err := os.ReadFile(filepath.Join(base, "LICENSE"))
	require.NoError(t, err)
	assert.Contains(t, string(license), "Grace Hopper")
	assert.Contains(t, string(license), time.Now().Format("2006"))

	readme, err := os.ReadFile(filepath.Join(base, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "My Repo")
	assert.NotContains(t, string(readme), "$repo_name")
}

func TestGeneratePreservesWorkflowExpressions(t *testing.T) {
	base := t.TempDir()
	gen := NewGenerator(testIdentity())

	_, err := gen.Generate(base, "my_repo", nil, false)
	require.NoError(t, err)

	ci, err := os.ReadFile(filepath.Join(base, ".github", "workflows", "ci.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(ci), "${{ matrix.language }}")
	assert.Contains(t, string(ci), "my_repo")
}

func TestGeneratedYAMLParses(t *testing.T) {
	base := t.TempDir()
	gen := NewGenerator(testIdentity())

	_, err := gen.Generate(base, "my_repo", nil, false)
	require.NoError(t, err)

	for _, rel := range []string{"forge.yml", filepath.Join(".github", "workflows", "ci.yml")} {
		data, err := os.ReadFile(filepath.Join(base, rel))
		require.NoError(t, err)

		var doc map[string]any
		assert.NoError(t, yaml.Unmarshal(data, &doc), rel)
	}
}

func TestGenerateMetadata(t *testing.T) {
	base := t.TempDir()
	gen := NewGenerator(testIdentity())

	_, err := gen.Generate(base, "my_repo", []string{"rust"}, false)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(base, ".forge.json"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "1.0.0", doc["version"])

	meta, ok := doc["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"rust"}, meta["languagesSupported"])
}

func TestGenerateNeverOverwritesMetadata(t *testing.T) {
	base := t.TempDir()
	gen := NewGenerator(testIdentity())

	metaPath := filepath.Join(base, ".forge.json")
	require.NoError(t, os.WriteFile(metaPath, []byte(`{"version":"9.9.9"}`), 0o644))

	raw, err := gen.Generate(base, "my_repo", nil, true)
	require.NoError(t, err)

	data, err := os.ReadFile(metaPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "9.9.9")
	assert.NotContains(t, raw["created_files"], ".forge.json")
}

func TestGenerateSkipsExisting(t *testing.T) {
	base := t.TempDir()
	gen := NewGenerator(testIdentity())

	readme := filepath.Join(base, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("keep me"), 0o644))

	raw, err := gen.Generate(base, "my_repo", nil, false)
	require.NoError(t, err)
	assert.Contains(t, raw["skipped_files"], "README.md")

	content, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))
}
