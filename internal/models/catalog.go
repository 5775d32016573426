package models

import (
	"bytes"
	"encoding/json"
)

// Catalog maps categories to their posts while remembering the order in
// which categories were first seen. encoding/json sorts plain map keys
// alphabetically, so marshaling goes through a hand-built object instead.
type Catalog struct {
	categories []string
	posts      map[string][]CatalogPost
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		categories: make([]string, 0),
		posts:      make(map[string][]CatalogPost),
	}
}

// Add appends a post to a category, registering the category on first use.
func (c *Catalog) Add(category string, post CatalogPost) {
	if _, exists := c.posts[category]; !exists {
		c.categories = append(c.categories, category)
	}
	c.posts[category] = append(c.posts[category], post)
}

// Categories returns the category names in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Posts returns the posts filed under a category, in insertion order.
func (c *Catalog) Posts(category string) []CatalogPost {
	return c.posts[category]
}

// Len returns the number of distinct categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// MarshalJSON emits a JSON object whose keys appear in first-seen
// category order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range c.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.posts[category])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
