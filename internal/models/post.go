package models

// Post is a fully parsed blog post. A Post is built once by the parser and
// never mutated afterwards.
type Post struct {
	Path      string
	Title     string
	Thumbnail string
	Content   string
	Date      string
	Category  string
	Excerpt   string
}

// ChronoPost is the chronological-index projection of a Post. It carries the
// category instead of the date, which is the grouping key of its entry.
type ChronoPost struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
}

// ChronoEntry groups the posts published on one date.
type ChronoEntry struct {
	Date  string       `json:"date"`
	Posts []ChronoPost `json:"posts"`
}

// CatalogPost is the catalog projection of a Post. It carries the date
// instead of the category, which is the grouping key of its list.
type CatalogPost struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Thumbnail string `json:"thumbnail"`
	Date      string `json:"date"`
}
