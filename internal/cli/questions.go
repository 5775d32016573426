package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FillInitOptionsInteractive prompts the user to confirm or override defaults.
// If stdin is not interactive, it will keep the provided defaults.
func FillInitOptionsInteractive(opts *InitOptions) {
	reader := bufio.NewReader(os.Stdin)

	// Name (directory)
	fmt.Printf("Directory name [%s]: ", opts.Name)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.Name = strings.TrimSpace(s)
	}

	// Title
	defTitle := opts.Title
	if defTitle == "" {
		defTitle = opts.Name
	}
	fmt.Printf("Blog title [%s]: ", defTitle)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.Title = strings.TrimSpace(s)
	} else if opts.Title == "" {
		opts.Title = defTitle
	}

	// PostsDir
	fmt.Printf("Posts directory [%s]: ", opts.PostsDir)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.PostsDir = strings.TrimSpace(s)
	}

	// OutDir
	fmt.Printf("Index output directory [%s]: ", opts.OutDir)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		opts.OutDir = strings.TrimSpace(s)
	}

	// Search
	defSearch := "n"
	if opts.Search {
		defSearch = "y"
	}
	fmt.Printf("Generate a search index on build? (y/N) [%s]: ", defSearch)
	if s, _ := reader.ReadString('\n'); strings.TrimSpace(s) != "" {
		v := strings.ToLower(strings.TrimSpace(s))
		opts.Search = v == "y" || v == "yes"
	}
}
