package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "out.json")

	require.NoError(t, WriteFile(path, []byte("{}")))

	content, err := ReadToString(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", content)
}

func TestReadToStringMissing(t *testing.T) {
	_, err := ReadToString(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestFileAndDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, WriteFile(file, []byte("x")))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))

	assert.False(t, FileExists(filepath.Join(dir, "nope")))
}
