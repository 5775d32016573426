package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/geocine/blogdex/internal/cli"
	"github.com/geocine/blogdex/internal/config"
	"github.com/geocine/blogdex/internal/index"
	"github.com/geocine/blogdex/internal/loader"
	"github.com/geocine/blogdex/internal/models"
	"github.com/geocine/blogdex/internal/search"
	"github.com/geocine/blogdex/internal/utils"
)

const (
	chronoFile  = "chrono.json"
	catalogFile = "catalog.json"
	searchFile  = "search_index.json"
)

func main() {
	// Define subcommands
	buildCmd := flag.NewFlagSet("build", flag.ExitOnError)
	buildPostsDir := buildCmd.String("posts-dir", "", "Directory containing post files")
	buildOutDir := buildCmd.String("out-dir", "", "Destination directory for index files")
	buildSearch := buildCmd.Bool("search", false, "Also generate search_index.json")

	initCmd := flag.NewFlagSet("init", flag.ExitOnError)
	initName := initCmd.String("name", "", "Blog directory name (or pass as positional)")
	initTitle := initCmd.String("title", "", "Blog title (defaults to name)")
	initPostsDir := initCmd.String("posts-dir", "posts", "Posts directory")
	initOutDir := initCmd.String("out-dir", ".", "Index output directory")
	initSearch := initCmd.Bool("search", false, "Generate a search index on build")
	initYes := initCmd.Bool("yes", false, "Skip interactive prompts and use provided/default values")

	cleanCmd := flag.NewFlagSet("clean", flag.ExitOnError)
	cleanOutDir := cleanCmd.String("out-dir", "", "Directory containing index files to remove")

	if len(os.Args) < 2 {
		fmt.Println("Usage: blogdex [command]")
		fmt.Println("Commands:")
		fmt.Println("  build      Build the post indexes")
		fmt.Println("  init       Initialize a new blog")
		fmt.Println("  clean      Remove generated index files")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		buildCmd.Parse(os.Args[2:])
		handleBuild(*buildPostsDir, *buildOutDir, *buildSearch)

	case "init":
		initCmd.Parse(os.Args[2:])
		handleInit(initCmd, *initName, *initTitle, *initPostsDir, *initOutDir, *initSearch, *initYes)

	case "clean":
		cleanCmd.Parse(os.Args[2:])
		handleClean(*cleanOutDir)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func handleBuild(postsDirOverride, outDirOverride string, searchOverride bool) {
	// Load config
	cfg, err := config.LoadFromFile("blog.toml")
	if err != nil {
		log.Printf("Warning: could not load config file: %v. Using defaults.", err)
		cfg = config.NewDefaultConfig()
	}

	postsDir := postsDirOverride
	if postsDir == "" {
		postsDir = cfg.Blog.PostsDir
	}
	outDir := outDirOverride
	if outDir == "" {
		outDir = cfg.Build.OutDir
	}
	withSearch := cfg.Build.Search || searchOverride

	pl := loader.NewPostLoader(postsDir)
	names, err := pl.Discover()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Printf("Please create a '%s' directory and add your .txt files there.\n", postsDir)
		os.Exit(1)
	}
	if len(names) == 0 {
		fmt.Printf("No .txt files found in '%s' directory!\n", postsDir)
		os.Exit(1)
	}

	fmt.Printf("Found %d post file(s)\n", len(names))
	fmt.Println(strings.Repeat("-", 50))

	// Parse each post; a bad file is reported and skipped
	posts := make([]*models.Post, 0, len(names))
	for _, name := range names {
		fmt.Printf("Parsing %s...\n", name)
		post, err := pl.LoadFile(name)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}
		posts = append(posts, post)
		fmt.Printf("  ok: '%s'\n", post.Title)
	}

	if len(posts) == 0 {
		fmt.Println("\nNo posts were successfully parsed!")
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("Generating indexes...")

	chrono, catalog := index.Build(posts)

	chronoPath := filepath.Join(outDir, chronoFile)
	writeJSON(chronoPath, chrono)
	fmt.Printf("Created %s (%d date(s))\n", chronoPath, len(chrono))

	catalogPath := filepath.Join(outDir, catalogFile)
	writeJSON(catalogPath, catalog)
	fmt.Printf("Created %s (%d categor(ies))\n", catalogPath, catalog.Len())

	if withSearch {
		searchPath := filepath.Join(outDir, searchFile)
		writeJSON(searchPath, search.BuildPostIndex(posts).ToMap())
		fmt.Printf("Created %s (%d post(s))\n", searchPath, len(posts))
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("Done!")
}

func writeJSON(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode %s: %v", path, err)
	}
	if err := utils.WriteFile(path, append(data, '\n')); err != nil {
		log.Fatalf("Failed to write index: %v", err)
	}
}

func handleInit(initCmd *flag.FlagSet, name, title, postsDir, outDir string, searchEnabled, yes bool) {
	// Determine name: prefer positional arg if present, then --name, else default
	if name == "" {
		if initCmd.NArg() >= 1 {
			name = initCmd.Arg(0)
		} else {
			name = "my-blog"
		}
	}

	fmt.Printf("Initializing new blog: %s\n", name)

	opts := cli.InitOptions{
		Name:     name,
		Title:    title,
		PostsDir: postsDir,
		OutDir:   outDir,
		Search:   searchEnabled,
	}

	if !yes {
		cli.FillInitOptionsInteractive(&opts)
	}

	if err := cli.Init(opts); err != nil {
		log.Fatalf("Failed to initialize blog: %v", err)
	}

	fmt.Printf("\nSuccessfully created blog in '%s'\n", opts.Name)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", opts.Name)
	fmt.Println("  blogdex build    # generate chrono.json and catalog.json")
}

func handleClean(outDirOverride string) {
	// Load config
	cfg, err := config.LoadFromFile("blog.toml")
	if err != nil {
		log.Printf("Warning: could not load config file: %v. Using defaults.", err)
		cfg = config.NewDefaultConfig()
	}
	outDir := outDirOverride
	if outDir == "" {
		outDir = cfg.Build.OutDir
	}

	removed := 0
	for _, name := range []string{chronoFile, catalogFile, searchFile} {
		path := filepath.Join(outDir, name)
		if !utils.FileExists(path) {
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Fatalf("Failed to remove '%s': %v", path, err)
		}
		removed++
	}

	if removed == 0 {
		fmt.Printf("Nothing to clean in '%s'.\n", outDir)
		return
	}
	fmt.Printf("Removed %d index file(s) from '%s'.\n", removed, outDir)
}
