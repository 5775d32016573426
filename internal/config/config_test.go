package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromString(t *testing.T) {
	toml := `
[blog]
title = "My Blog"
posts-dir = "content"

[build]
out-dir = "public"
search = true
`

	cfg, err := LoadFromString(toml)
	require.NoError(t, err)

	assert.Equal(t, "My Blog", cfg.Blog.Title)
	assert.Equal(t, "content", cfg.Blog.PostsDir)
	assert.Equal(t, "public", cfg.Build.OutDir)
	assert.True(t, cfg.Build.Search)
}

func TestDefaults(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "posts", cfg.Blog.PostsDir)
	assert.Equal(t, ".", cfg.Build.OutDir)
	assert.False(t, cfg.Build.Search)
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromString(`
[blog]
title = "Partial"
`)
	require.NoError(t, err)

	assert.Equal(t, "Partial", cfg.Blog.Title)
	assert.Equal(t, "posts", cfg.Blog.PostsDir)
	assert.Equal(t, ".", cfg.Build.OutDir)
}

func TestUpdateFromEnv(t *testing.T) {
	// set and ensure cleanup
	_ = os.Setenv("BLOGDEX_BLOG__POSTS_DIR", "env-posts")
	_ = os.Setenv("BLOGDEX_BUILD__SEARCH", "true")
	t.Cleanup(func() {
		_ = os.Unsetenv("BLOGDEX_BLOG__POSTS_DIR")
		_ = os.Unsetenv("BLOGDEX_BUILD__SEARCH")
	})

	cfg := NewDefaultConfig()
	cfg.UpdateFromEnv()

	assert.Equal(t, "env-posts", cfg.Blog.PostsDir)
	assert.True(t, cfg.Build.Search)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile("no-such-blog.toml")
	require.Error(t, err)
}
