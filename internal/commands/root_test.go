package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// standing in for t.Chdir which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestForgeRepoName(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, ok := ForgeRepoName()
	assert.False(t, ok, "no forge.yml present")

	require.NoError(t, os.WriteFile("forge.yml", []byte("repository:\n  name: my_repo\n"), 0o644))
	name, ok := ForgeRepoName()
	assert.True(t, ok)
	assert.Equal(t, "my_repo", name)
}

func TestForgeRepoNameInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile("forge.yml", []byte(":\t not yaml ["), 0o644))
	_, ok := ForgeRepoName()
	assert.False(t, ok)
}

func TestRootCmdMetadata(t *testing.T) {
	cmd := RootCmd()
	assert.Equal(t, "repoforge", cmd.Use)
	assert.NotEmpty(t, cmd.Version)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}
