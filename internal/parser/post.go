// Package parser implements the section markup used by blog post files.
//
// A post is a sequence of named sections. A line consisting exactly of
// [Name] opens a section; every following line belongs to it until the next
// header or end of input. A leading backslash (\[Name]) escapes the bracket
// so the line is kept as literal section content.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/geocine/blogdex/internal/models"
)

// DateLayout is the month/day/year layout post dates must use.
const DateLayout = "01/02/2006"

const (
	excerptLimit = 150
	ellipsis     = "..."
)

var (
	// sectionRe matches a header line like [Title]. An escaped line (\[Title])
	// starts with a backslash and never matches because the pattern is
	// anchored at the bracket.
	sectionRe = regexp.MustCompile(`^\[(\w+)\]$`)
	imgTagRe  = regexp.MustCompile(`<img\s+"[^"]*">`)
	tagRe     = regexp.MustCompile(`<[^>]*>`)
)

// ValidationError reports a post that violates the required-field contract.
type ValidationError struct {
	File   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid post '%s': field '%s' %s", e.File, e.Field, e.Reason)
}

// Parse converts raw section-markup text into a Post. The filename becomes
// the post path ("posts/<filename>"). Parsing is a pure function: the same
// text and filename always produce the same Post.
func Parse(text, filename string) (*models.Post, error) {
	post := &models.Post{Path: "posts/" + filename}

	// Two states: outside any section (current == "") and accumulating
	// lines for the section named by current. Lines before the first
	// header are discarded.
	current := ""
	var lines []string

	flush := func() {
		// A repeated header with no body does not clear a stored value.
		if current == "" || len(lines) == 0 {
			return
		}
		setField(post, current, strings.TrimSpace(strings.Join(lines, "\n")))
	}

	for _, line := range strings.Split(text, "\n") {
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			flush()
			current = strings.ToLower(m[1])
			lines = nil
			continue
		}
		if current != "" {
			lines = append(lines, strings.ReplaceAll(line, `\[`, "["))
		}
	}
	flush()

	post.Excerpt = deriveExcerpt(post.Content)

	if err := validate(post, filename); err != nil {
		return nil, err
	}
	return post, nil
}

// setField stores a section body under its Post field. Section names are
// case-folded before this is called; unknown sections are discarded.
func setField(post *models.Post, name, value string) {
	switch name {
	case "title":
		post.Title = value
	case "thumbnail":
		post.Thumbnail = value
	case "content":
		post.Content = value
	case "date":
		post.Date = value
	case "category":
		post.Category = value
	}
}

// deriveExcerpt builds the preview text for a post. Image tags are removed
// from the full content before truncation so a tag straddling the cut point
// never leaves a fragment behind, and the ellipsis decision is made against
// the image-stripped length, not the final tag-stripped length.
func deriveExcerpt(content string) string {
	stripped := []rune(imgTagRe.ReplaceAllString(content, ""))

	truncated := stripped
	if len(stripped) > excerptLimit {
		truncated = stripped[:excerptLimit]
	}

	excerpt := strings.TrimSpace(tagRe.ReplaceAllString(string(truncated), ""))
	if len(stripped) > excerptLimit {
		excerpt += ellipsis
	}
	return excerpt
}

func validate(post *models.Post, filename string) error {
	required := []struct {
		field string
		value string
	}{
		{"title", post.Title},
		{"date", post.Date},
		{"category", post.Category},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{File: filename, Field: r.field, Reason: "is missing"}
		}
	}

	if _, err := time.Parse(DateLayout, post.Date); err != nil {
		return &ValidationError{
			File:   filename,
			Field:  "date",
			Reason: fmt.Sprintf("%q is not a valid MM/DD/YYYY date", post.Date),
		}
	}
	return nil
}
