package loader

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/geocine/blogdex/internal/models"
	"github.com/geocine/blogdex/internal/parser"
	"github.com/geocine/blogdex/internal/utils"
)

// Failure records a post file that could not be read or parsed.
type Failure struct {
	File string
	Err  error
}

// PostLoader discovers and parses post files from a directory.
type PostLoader struct {
	postsDir string
}

// NewPostLoader creates a loader over the given posts directory.
func NewPostLoader(postsDir string) *PostLoader {
	return &PostLoader{postsDir: postsDir}
}

// Discover returns the names of the .txt post files in the posts directory,
// sorted so the batch is processed in a deterministic order.
func (pl *PostLoader) Discover() ([]string, error) {
	if !utils.DirExists(pl.postsDir) {
		return nil, fmt.Errorf("posts directory '%s' not found", pl.postsDir)
	}

	matches, err := filepath.Glob(filepath.Join(pl.postsDir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan '%s': %w", pl.postsDir, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)
	return names, nil
}

// LoadFile reads and parses a single post file by name.
func (pl *PostLoader) LoadFile(name string) (*models.Post, error) {
	content, err := utils.ReadToString(filepath.Join(pl.postsDir, name))
	if err != nil {
		return nil, err
	}
	return parser.Parse(content, name)
}

// Load parses every discovered post file, collecting successes and per-file
// failures. A file that fails never aborts the batch; it is recorded and
// the remaining files are still processed.
func (pl *PostLoader) Load() ([]*models.Post, []Failure, error) {
	names, err := pl.Discover()
	if err != nil {
		return nil, nil, err
	}

	posts := make([]*models.Post, 0, len(names))
	var failures []Failure
	for _, name := range names {
		post, err := pl.LoadFile(name)
		if err != nil {
			failures = append(failures, Failure{File: name, Err: err})
			continue
		}
		posts = append(posts, post)
	}
	return posts, failures, nil
}
