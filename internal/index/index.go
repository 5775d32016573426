// Package index derives the chronological and category views over parsed
// posts.
package index

import (
	"sort"
	"time"

	"github.com/geocine/blogdex/internal/models"
	"github.com/geocine/blogdex/internal/parser"
)

type datedPost struct {
	post *models.Post
	date time.Time
}

// Build sorts posts newest-first and groups the one sorted sequence into
// the chronological index and the category catalog. Both views are derived
// from the same sort pass, so every input post appears exactly once in
// each. Posts sharing a date keep their relative input order (stable sort),
// which fixes the intra-group ordering of both views.
//
// Dates are assumed valid: the parser rejects any post whose Date does not
// parse before it can reach here.
func Build(posts []*models.Post) ([]models.ChronoEntry, *models.Catalog) {
	sorted := make([]datedPost, len(posts))
	for i, p := range posts {
		d, _ := time.Parse(parser.DateLayout, p.Date)
		sorted[i] = datedPost{post: p, date: d}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.After(sorted[j].date)
	})

	chrono := make([]models.ChronoEntry, 0)
	entryIdx := make(map[string]int)
	catalog := models.NewCatalog()

	for _, dp := range sorted {
		p := dp.post

		i, seen := entryIdx[p.Date]
		if !seen {
			i = len(chrono)
			entryIdx[p.Date] = i
			chrono = append(chrono, models.ChronoEntry{Date: p.Date})
		}
		chrono[i].Posts = append(chrono[i].Posts, models.ChronoPost{
			Path:      p.Path,
			Title:     p.Title,
			Excerpt:   p.Excerpt,
			Thumbnail: p.Thumbnail,
			Category:  p.Category,
		})

		catalog.Add(p.Category, models.CatalogPost{
			Path:      p.Path,
			Title:     p.Title,
			Excerpt:   p.Excerpt,
			Thumbnail: p.Thumbnail,
			Date:      p.Date,
		})
	}

	return chrono, catalog
}
