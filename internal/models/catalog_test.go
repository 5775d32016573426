package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAddAndAccessors(t *testing.T) {
	c := NewCatalog()
	c.Add("Go", CatalogPost{Path: "posts/a.txt", Title: "A"})
	c.Add("Life", CatalogPost{Path: "posts/b.txt", Title: "B"})
	c.Add("Go", CatalogPost{Path: "posts/c.txt", Title: "C"})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Go", "Life"}, c.Categories())

	goPosts := c.Posts("Go")
	require.Len(t, goPosts, 2)
	assert.Equal(t, "A", goPosts[0].Title)
	assert.Equal(t, "C", goPosts[1].Title)

	assert.Nil(t, c.Posts("Unknown"))
}

func TestCatalogMarshalPreservesInsertionOrder(t *testing.T) {
	// "zebra" is registered first and must appear first in the JSON even
	// though it sorts after "alpha".
	c := NewCatalog()
	c.Add("zebra", CatalogPost{Path: "posts/z.txt", Title: "Z", Date: "01/05/2024"})
	c.Add("alpha", CatalogPost{Path: "posts/a.txt", Title: "A", Date: "01/04/2024"})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	s := string(data)
	assert.Less(t, strings.Index(s, `"zebra"`), strings.Index(s, `"alpha"`))

	// Round-trip through a plain map to validate the object shape
	var decoded map[string][]CatalogPost
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Z", decoded["zebra"][0].Title)
	assert.Equal(t, "01/04/2024", decoded["alpha"][0].Date)
}

func TestCatalogMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewCatalog())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
