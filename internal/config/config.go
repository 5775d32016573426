package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// BlogConfig contains metadata about the blog
type BlogConfig struct {
	Title    string `toml:"title"`
	PostsDir string `toml:"posts-dir"` // Source directory, defaults to "posts"
}

// DefaultBlogConfig returns a blog config with defaults
func DefaultBlogConfig() BlogConfig {
	return BlogConfig{
		Title:    "My Blog",
		PostsDir: "posts",
	}
}

// BuildConfig contains index build settings
type BuildConfig struct {
	OutDir string `toml:"out-dir"`
	Search bool   `toml:"search"`
}

// DefaultBuildConfig returns a build config with defaults
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		OutDir: ".",
		Search: false,
	}
}

// Config is the top-level configuration
type Config struct {
	Blog  BlogConfig  `toml:"blog"`
	Build BuildConfig `toml:"build"`
}

// NewDefaultConfig returns a config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Blog:  DefaultBlogConfig(),
		Build: DefaultBuildConfig(),
	}
}

// LoadFromFile loads configuration from a blog.toml file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromString(string(data))
}

// LoadFromString loads configuration from a TOML string
func LoadFromString(content string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := toml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.UpdateFromEnv()
	return cfg, nil
}

// UpdateFromEnv updates config from environment variables
// Variables starting with BLOGDEX_ are used
// BLOGDEX_FOO_BAR -> foo-bar
// BLOGDEX_FOO__BAR -> foo.bar
func (c *Config) UpdateFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "BLOGDEX_") {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], "BLOGDEX_")
		value := parts[1]

		// Convert BLOGDEX_KEY format to config key
		configKey := strings.ToLower(key)
		configKey = strings.ReplaceAll(configKey, "__", ".")
		configKey = strings.ReplaceAll(configKey, "_", "-")

		c.Set(configKey, value)
	}
}

// Set sets a configuration value using dot notation (e.g., "blog.title",
// "build.out-dir"). Unknown keys are ignored.
func (c *Config) Set(key, value string) {
	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return
	}

	switch parts[0] {
	case "blog":
		c.setBlogValue(parts[1], value)
	case "build":
		c.setBuildValue(parts[1], value)
	}
}

func (c *Config) setBlogValue(key, value string) {
	switch strings.ToLower(key) {
	case "title":
		c.Blog.Title = value
	case "posts-dir":
		c.Blog.PostsDir = value
	}
}

func (c *Config) setBuildValue(key, value string) {
	switch strings.ToLower(key) {
	case "out-dir":
		c.Build.OutDir = value
	case "search":
		c.Build.Search = strings.ToLower(value) == "true"
	}
}
