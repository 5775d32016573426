package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/blogdex/internal/config"
	"github.com/geocine/blogdex/internal/loader"
	"github.com/geocine/blogdex/internal/utils"
)

func TestInitScaffoldsLoadableBlog(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my-blog")

	require.NoError(t, Init(InitOptions{Name: root, Title: "Test Blog", Search: true}))

	// blog.toml parses and carries the options
	cfg, err := config.LoadFromFile(filepath.Join(root, "blog.toml"))
	require.NoError(t, err)
	assert.Equal(t, "Test Blog", cfg.Blog.Title)
	assert.Equal(t, "posts", cfg.Blog.PostsDir)
	assert.True(t, cfg.Build.Search)

	// The sample post parses cleanly
	posts, failures, err := loader.NewPostLoader(filepath.Join(root, "posts")).Load()
	require.NoError(t, err)
	require.Empty(t, failures)
	require.Len(t, posts, 1)
	assert.Equal(t, "Welcome to Test Blog", posts[0].Title)
	assert.Equal(t, "General", posts[0].Category)

	// The escaped header line in the sample became literal content
	assert.Contains(t, posts[0].Content, "[Title]")
	assert.NotContains(t, posts[0].Excerpt, "<img")
}

func TestInitDefaults(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "my-blog")

	require.NoError(t, Init(InitOptions{Name: root}))

	assert.True(t, utils.FileExists(filepath.Join(root, "blog.toml")))
	assert.True(t, utils.DirExists(filepath.Join(root, "posts")))
	assert.True(t, utils.FileExists(filepath.Join(root, "posts", "welcome.txt")))
}
