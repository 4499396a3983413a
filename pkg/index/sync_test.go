package index

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registryRepo creates a local git repository holding the given files
func registryRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		_, err := wt.Add(name)
		require.NoError(t, err)
	}

	_, err = wt.Commit("registry", &git.CommitOptions{
		Author: &object.Signature{Name: "fplan", Email: "fplan@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestSyncCopiesDepsDirectory(t *testing.T) {
	repo := registryRepo(t, map[string]string{
		"deps/atlas/index.toml": "libraries = [\"atlas\"]\n",
		"deps/blas/index.toml":  "libraries = [\"blas\"]\n",
		"README.md":             "registry\n",
	})
	dest := filepath.Join(t.TempDir(), "deps")
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "stale"), 0755))

	require.NoError(t, Sync(Options{URL: repo, Dest: dest}))

	data, err := os.ReadFile(filepath.Join(dest, "atlas", "index.toml"))
	require.NoError(t, err)
	assert.Equal(t, "libraries = [\"atlas\"]\n", string(data))
	assert.FileExists(t, filepath.Join(dest, "blas", "index.toml"))
	assert.NoFileExists(t, filepath.Join(dest, "README.md"))
	assert.NoDirExists(t, filepath.Join(dest, "stale"))
}

func TestSyncRepositoryRoot(t *testing.T) {
	repo := registryRepo(t, map[string]string{
		"blas_src/index.toml": "sources = [\"daxpy.f\"]\n",
	})
	dest := filepath.Join(t.TempDir(), "deps")

	require.NoError(t, Sync(Options{URL: repo, Dest: dest}))

	assert.FileExists(t, filepath.Join(dest, "blas_src", "index.toml"))
	assert.NoDirExists(t, filepath.Join(dest, ".git"))
}

func TestSyncFailureKeepsRegistry(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "deps")
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "atlas"), 0755))

	err := Sync(Options{URL: filepath.Join(t.TempDir(), "missing"), Dest: dest})
	assert.ErrorContains(t, err, "git clone failed")
	assert.DirExists(t, filepath.Join(dest, "atlas"))

	assert.Error(t, Sync(Options{Dest: dest}))
	assert.Error(t, Sync(Options{URL: "https://example.com/deps"}))
}
