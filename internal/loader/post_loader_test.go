package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/blogdex/internal/parser"
	"github.com/geocine/blogdex/internal/testutil"
)

func validPost(title, date, category string) string {
	return "[Title]\n" + title + "\n\n[Date]\n" + date + "\n\n[Category]\n" + category +
		"\n\n[Content]\nSome body text.\n"
}

func TestLoadMixedValidAndInvalid(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.txt", validPost("A", "01/05/2024", "Go"))
	testutil.WriteFile(t, dir, "b.txt", "[Title]\nB\n\n[Content]\nno date, no category\n")
	testutil.WriteFile(t, dir, "c.txt", validPost("C", "03/01/2024", "Life"))

	posts, failures, err := NewPostLoader(dir).Load()
	require.NoError(t, err)

	require.Len(t, posts, 2)
	assert.Equal(t, "A", posts[0].Title)
	assert.Equal(t, "C", posts[1].Title)

	require.Len(t, failures, 1)
	assert.Equal(t, "b.txt", failures[0].File)
	var verr *parser.ValidationError
	assert.ErrorAs(t, failures[0].Err, &verr)
}

func TestDiscoverFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "b.txt", "x")
	testutil.WriteFile(t, dir, "a.txt", "x")
	testutil.WriteFile(t, dir, "notes.md", "x")
	testutil.WriteFile(t, dir, "README", "x")

	names, err := NewPostLoader(dir).Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := NewPostLoader("does-not-exist").Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadFileDerivesPathFromName(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "hello.txt", validPost("Hello", "01/05/2024", "Go"))

	post, err := NewPostLoader(dir).LoadFile("hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "posts/hello.txt", post.Path)
}

func TestLoadEmptyDir(t *testing.T) {
	posts, failures, err := NewPostLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Empty(t, failures)
}
