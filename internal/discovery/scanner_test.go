package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeCorpus creates the named files (with content "image") in a temp dir
func makeCorpus(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("image"), 0644))
	}
	return dir
}

// rawOrder lists dir the way the scanner does, without sorting
func rawOrder(t *testing.T, dir string) []string {
	t.Helper()
	f, err := os.Open(dir)
	require.NoError(t, err)
	defer f.Close()
	entries, err := f.ReadDir(-1)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestScanner_Scan(t *testing.T) {
	dir := makeCorpus(t, "add.bin", "sub.bin", "README.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.bin", "inner.bin"), []byte("image"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "nested.bin"), filepath.Join(dir, "dirlink.bin")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "add.bin"), filepath.Join(dir, "filelink.bin")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.bin"), filepath.Join(dir, "dangling.bin")))

	t.Run("every regular file", func(t *testing.T) {
		results, err := NewScanner(AllFiles).Scan(dir)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "add.bin"),
			filepath.Join(dir, "sub.bin"),
			filepath.Join(dir, "README.md"),
			filepath.Join(dir, "filelink.bin"),
		}, results)
	})

	t.Run("suffix filter", func(t *testing.T) {
		results, err := NewScanner(HasSuffix("bin")).Scan(dir)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "add.bin"),
			filepath.Join(dir, "sub.bin"),
			filepath.Join(dir, "filelink.bin"),
		}, results)
	})

	t.Run("nil include accepts every regular file", func(t *testing.T) {
		results, err := NewScanner(nil).Scan(dir)
		require.NoError(t, err)
		assert.Len(t, results, 4)
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := NewScanner(AllFiles).Scan(filepath.Join(dir, "missing"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCorpusUnavailable))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := NewScanner(AllFiles).Scan(filepath.Join(dir, "add.bin"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCorpusUnavailable))
	})
}

func TestScanner_ScanKeepsDirectoryOrder(t *testing.T) {
	dir := makeCorpus(t, "zeta.bin", "alpha.bin", "mid.bin", "beta.bin", "omega.bin")

	results, err := NewScanner(AllFiles).Scan(dir)
	require.NoError(t, err)

	var expected []string
	for _, name := range rawOrder(t, dir) {
		expected = append(expected, filepath.Join(dir, name))
	}
	assert.Equal(t, expected, results)
}

func TestIncludeFor(t *testing.T) {
	assert.True(t, IncludeFor("")("notes.txt"))
	assert.True(t, IncludeFor("bin")("rv64ui-p-add.bin"))
	assert.False(t, IncludeFor("bin")("rv64ui-p-add.dump"))
}
