package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/geocine/blogdex/internal/parser"
	"github.com/geocine/blogdex/internal/utils"
)

// InitOptions captures options for initializing a new blog
type InitOptions struct {
	Name     string // directory to create
	Title    string // optional blog title; defaults to Name
	PostsDir string // default: posts
	OutDir   string // default: . (documented in blog.toml)
	Search   bool   // whether builds also emit search_index.json
}

// Init scaffolds a new blog at the given directory
func Init(opts InitOptions) error {
	if opts.Name == "" {
		opts.Name = "my-blog"
	}
	if opts.PostsDir == "" {
		opts.PostsDir = "posts"
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	if opts.Title == "" {
		opts.Title = opts.Name
	}

	root := opts.Name

	// Create root and posts directories
	if err := utils.CreateDirAll(root); err != nil {
		return err
	}
	postsPath := filepath.Join(root, opts.PostsDir)
	if err := utils.CreateDirAll(postsPath); err != nil {
		return err
	}

	// Write blog.toml
	blogToml := []byte(fmt.Sprintf(`[blog]
title = "%s"
posts-dir = "%s"

[build]
out-dir = "%s"
search = %t
`, opts.Title, opts.PostsDir, opts.OutDir, opts.Search))
	if err := utils.WriteFile(filepath.Join(root, "blog.toml"), blogToml); err != nil {
		return err
	}

	// Write a sample post in the section markup
	sample := []byte(fmt.Sprintf(`[Title]
Welcome to %s

[Date]
%s

[Category]
General

[Content]
This is your first post. Sections start with a bracketed header line.
A line such as \[Title] with a leading backslash stays literal content.
Inline images use the <img "images/example.png"> form and are stripped
from excerpts.
`, opts.Title, time.Now().Format(parser.DateLayout)))
	if err := utils.WriteFile(filepath.Join(postsPath, "welcome.txt"), sample); err != nil {
		return err
	}

	return nil
}
