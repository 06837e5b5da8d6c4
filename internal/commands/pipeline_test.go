package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPipelineCreatesFullStructure(t *testing.T) {
	base := t.TempDir()
	repoPath := filepath.Join(base, "demo_repo")
	require.NoError(t, os.MkdirAll(repoPath, 0o755))

	err := runPipeline(pipelineOptions{
		repoPath:  repoPath,
		repoName:  "demo_repo",
		languages: []string{"python", "go"},
		overwrite: true,
	})
	require.NoError(t, err)

	// One representative artifact per phase.
	assert.DirExists(t, filepath.Join(repoPath, "libs"))
	assert.FileExists(t, filepath.Join(repoPath, "docs", "index.md"))
	assert.FileExists(t, filepath.Join(repoPath, "README.md"))
	assert.FileExists(t, filepath.Join(repoPath, "scripts", "dev", "run_tests.sh"))
	assert.FileExists(t, filepath.Join(repoPath, "projects", "go_project", "go.mod"))
}

func TestRunPipelineSafeModePreservesFiles(t *testing.T) {
	base := t.TempDir()
	repoPath := filepath.Join(base, "demo_repo")
	require.NoError(t, os.MkdirAll(repoPath, 0o755))

	readme := filepath.Join(repoPath, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("existing"), 0o644))

	err := runPipeline(pipelineOptions{
		repoPath:  repoPath,
		repoName:  "demo_repo",
		languages: []string{"python"},
		overwrite: false,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
}
