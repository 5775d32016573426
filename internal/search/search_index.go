// Package search implements full-text indexing of blog posts with an
// inverted index and stemming. The serialized index is compatible with the
// elasticlunr.js format consumed by static front-ends.
package search

import (
	"encoding/json"
	"math"
	"strings"
	"unicode"

	"github.com/geocine/blogdex/internal/models"
)

const (
	ElasticlunrVersion   = "0.9.5"
	maxWordLengthToIndex = 80
)

// postFields are the Post fields indexed for search; posts are referenced
// by their path.
var postFields = []string{"title", "body", "category"}

// TermFrequency represents the term frequency in the inverted index
type TermFrequency struct {
	TF float64 `json:"tf"`
}

// IndexItem is a node in the trie-like inverted index structure
type IndexItem struct {
	Docs     map[string]TermFrequency `json:"docs"`
	DF       int64                    `json:"df"`
	Children map[string]*IndexItem    `json:""`
}

// MarshalJSON flattens children to the same level as docs/df, which is the
// shape elasticlunr.js expects.
func (ii *IndexItem) MarshalJSON() ([]byte, error) {
	data := make(map[string]interface{})

	if len(ii.Docs) > 0 {
		data["docs"] = ii.Docs
	}
	if ii.DF > 0 {
		data["df"] = ii.DF
	}

	for key, child := range ii.Children {
		childData, err := child.MarshalJSON()
		if err != nil {
			return nil, err
		}
		var childMap map[string]interface{}
		if err := json.Unmarshal(childData, &childMap); err != nil {
			return nil, err
		}
		data[key] = childMap
	}

	return json.Marshal(data)
}

// InvertedIndex represents an inverted index for a field
type InvertedIndex struct {
	Root *IndexItem
}

// NewInvertedIndex creates a new inverted index
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		Root: &IndexItem{
			Docs:     make(map[string]TermFrequency),
			Children: make(map[string]*IndexItem),
		},
	}
}

// AddToken adds a token to the inverted index
func (ii *InvertedIndex) AddToken(docRef, token string, termFreq float64) {
	if len(token) == 0 {
		return
	}

	current := ii.Root
	for _, ch := range token {
		key := string(ch)
		if _, exists := current.Children[key]; !exists {
			current.Children[key] = &IndexItem{
				Docs:     make(map[string]TermFrequency),
				Children: make(map[string]*IndexItem),
			}
		}
		current = current.Children[key]
	}

	if _, exists := current.Docs[docRef]; !exists {
		current.DF++
	}
	current.Docs[docRef] = TermFrequency{TF: termFreq}
}

// GetNode retrieves a node for a given token
func (ii *InvertedIndex) GetNode(token string) *IndexItem {
	current := ii.Root
	for _, ch := range token {
		key := string(ch)
		if child, exists := current.Children[key]; exists {
			current = child
		} else {
			return nil
		}
	}
	return current
}

// HasToken checks if a token exists in the index
func (ii *InvertedIndex) HasToken(token string) bool {
	return ii.GetNode(token) != nil
}

// GetDocs returns the posts containing a token, keyed by post path
func (ii *InvertedIndex) GetDocs(token string) map[string]float64 {
	node := ii.GetNode(token)
	if node == nil {
		return nil
	}

	result := make(map[string]float64)
	for docRef, tf := range node.Docs {
		result[docRef] = tf.TF
	}
	return result
}

// GetDocFrequency returns the document frequency of a token
func (ii *InvertedIndex) GetDocFrequency(token string) int64 {
	node := ii.GetNode(token)
	if node == nil {
		return 0
	}
	return node.DF
}

// DocumentStore stores the indexed field values per post path
type DocumentStore struct {
	Save    bool                         `json:"save"`
	Docs    map[string]map[string]string `json:"docs"`
	DocInfo map[string]map[string]int    `json:"docInfo"`
	Length  int                          `json:"length"`
}

// NewDocumentStore creates a new document store
func NewDocumentStore(save bool) *DocumentStore {
	return &DocumentStore{
		Save:    save,
		Docs:    make(map[string]map[string]string),
		DocInfo: make(map[string]map[string]int),
		Length:  0,
	}
}

// AddDoc adds a document to the store
func (ds *DocumentStore) AddDoc(docRef string, doc map[string]string) {
	if _, exists := ds.Docs[docRef]; !exists {
		ds.Length++
	}

	if ds.Save {
		ds.Docs[docRef] = doc
	} else {
		ds.Docs[docRef] = make(map[string]string)
	}
}

// HasDoc checks if a document exists
func (ds *DocumentStore) HasDoc(docRef string) bool {
	_, exists := ds.Docs[docRef]
	return exists
}

// AddFieldLength records the token count of a field
func (ds *DocumentStore) AddFieldLength(docRef, field string, length int) {
	if _, exists := ds.DocInfo[docRef]; !exists {
		ds.DocInfo[docRef] = make(map[string]int)
	}
	ds.DocInfo[docRef][field] = length
}

// GetFieldLength retrieves the token count of a field
func (ds *DocumentStore) GetFieldLength(docRef, field string) int {
	if docInfo, exists := ds.DocInfo[docRef]; exists {
		if length, exists := docInfo[field]; exists {
			return length
		}
	}
	return 0
}

// Index is the full-text search index over posts
type Index struct {
	Fields        []string
	FieldIndexes  map[string]*InvertedIndex
	Ref           string
	Version       string
	Pipeline      []string
	Lang          string
	DocumentStore *DocumentStore
}

// NewPostIndex creates an empty index over the post fields
func NewPostIndex() *Index {
	fieldIndexes := make(map[string]*InvertedIndex)
	for _, field := range postFields {
		fieldIndexes[field] = NewInvertedIndex()
	}

	return &Index{
		Fields:        postFields,
		FieldIndexes:  fieldIndexes,
		Ref:           "path",
		Version:       ElasticlunrVersion,
		Pipeline:      []string{"trimmer", "stopWordFilter", "stemmer"},
		Lang:          "English",
		DocumentStore: NewDocumentStore(true),
	}
}

// BuildPostIndex indexes the title, body and category of every post, keyed
// by post path.
func BuildPostIndex(posts []*models.Post) *Index {
	idx := NewPostIndex()
	for _, p := range posts {
		idx.AddPost(p)
	}
	return idx
}

// AddPost adds one post to the index
func (idx *Index) AddPost(p *models.Post) {
	doc := map[string]string{
		"path":     p.Path,
		"title":    p.Title,
		"body":     p.Content,
		"category": p.Category,
	}
	idx.DocumentStore.AddDoc(p.Path, doc)

	for _, field := range idx.Fields {
		idx.addField(p.Path, field, doc[field])
	}
}

// addField tokenizes a field value, runs the pipeline and feeds the
// surviving tokens into the field's inverted index.
func (idx *Index) addField(docRef, field, value string) {
	tokens := tokenize(value)

	// Pipeline: trimmer (done in tokenize), stopWordFilter, stemmer
	processed := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if stopWords[token] {
			continue
		}
		if stemmed := stem(token); stemmed != "" {
			processed = append(processed, stemmed)
		}
	}

	// Field length counts unique stemmed tokens
	unique := make(map[string]bool)
	for _, token := range processed {
		unique[token] = true
	}
	idx.DocumentStore.AddFieldLength(docRef, field, len(unique))

	freq := make(map[string]int)
	for _, token := range processed {
		freq[token]++
	}
	for token, count := range freq {
		idx.FieldIndexes[field].AddToken(docRef, token, math.Sqrt(float64(count)))
	}
}

// ToMap converts the index to a map suitable for JSON serialization
func (idx *Index) ToMap() map[string]interface{} {
	nestedIndex := make(map[string]interface{})
	for fieldName, fieldIndex := range idx.FieldIndexes {
		// Wrap the root node in a "root" key to keep the elasticlunr shape
		nestedIndex[fieldName] = map[string]interface{}{
			"root": fieldIndex.Root,
		}
	}

	return map[string]interface{}{
		"documentStore": idx.DocumentStore,
		"index":         nestedIndex,
		"lang":          idx.Lang,
		"pipeline":      idx.Pipeline,
		"ref":           idx.Ref,
		"version":       idx.Version,
		"fields":        idx.Fields,
	}
}

// Tokenizer implementation
func tokenize(text string) []string {
	tokens := make([]string, 0)
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		token := strings.ToLower(strings.TrimSpace(word.String()))
		if token != "" && len(token) <= maxWordLengthToIndex {
			tokens = append(tokens, token)
		}
		word.Reset()
	}

	for _, r := range text {
		if unicode.IsSpace(r) || r == '-' {
			flush()
		} else {
			word.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// Stop word list
var stopWords = map[string]bool{
	"":        true,
	"a":       true,
	"able":    true,
	"about":   true,
	"across":  true,
	"after":   true,
	"all":     true,
	"almost":  true,
	"also":    true,
	"am":      true,
	"among":   true,
	"an":      true,
	"and":     true,
	"any":     true,
	"are":     true,
	"as":      true,
	"at":      true,
	"be":      true,
	"because": true,
	"been":    true,
	"but":     true,
	"by":      true,
	"can":     true,
	"cannot":  true,
	"could":   true,
	"dear":    true,
	"did":     true,
	"do":      true,
	"does":    true,
	"either":  true,
	"else":    true,
	"ever":    true,
	"every":   true,
	"for":     true,
	"from":    true,
	"get":     true,
	"got":     true,
	"had":     true,
	"has":     true,
	"have":    true,
	"he":      true,
	"her":     true,
	"hers":    true,
	"him":     true,
	"his":     true,
	"how":     true,
	"however": true,
	"i":       true,
	"if":      true,
	"in":      true,
	"into":    true,
	"is":      true,
	"it":      true,
	"its":     true,
	"just":    true,
	"least":   true,
	"let":     true,
	"like":    true,
	"likely":  true,
	"may":     true,
	"me":      true,
	"might":   true,
	"most":    true,
	"must":    true,
	"my":      true,
	"neither": true,
	"no":      true,
	"nor":     true,
	"not":     true,
	"of":      true,
	"off":     true,
	"often":   true,
	"on":      true,
	"only":    true,
	"or":      true,
	"other":   true,
	"our":     true,
	"own":     true,
	"rather":  true,
	"said":    true,
	"say":     true,
	"says":    true,
	"she":     true,
	"should":  true,
	"since":   true,
	"so":      true,
	"some":    true,
	"than":    true,
	"that":    true,
	"the":     true,
	"their":   true,
	"them":    true,
	"then":    true,
	"there":   true,
	"these":   true,
	"they":    true,
	"this":    true,
	"tis":     true,
	"to":      true,
	"too":     true,
	"twas":    true,
	"us":      true,
	"wants":   true,
	"was":     true,
	"we":      true,
	"were":    true,
	"what":    true,
	"when":    true,
	"where":   true,
	"which":   true,
	"while":   true,
	"who":     true,
	"whom":    true,
	"why":     true,
	"will":    true,
	"with":    true,
	"would":   true,
	"yet":     true,
	"you":     true,
	"your":    true,
}

// Simple Porter-like stemmer that removes common suffixes aggressively
func stem(word string) string {
	if len(word) <= 2 {
		return word
	}

	word = strings.ToLower(word)

	// Remove common plural and past tense suffixes
	// Try longest suffixes first to avoid over-stemming
	step1Suffixes := []struct {
		suffix string
		minLen int
	}{
		{"ies", 3},
		{"es", 2},
		{"s", 1},
	}

	for _, s := range step1Suffixes {
		if strings.HasSuffix(word, s.suffix) && len(word) > len(s.suffix)+s.minLen {
			word = word[:len(word)-len(s.suffix)]
			break
		}
	}

	// Remove -ed and -ing
	if strings.HasSuffix(word, "ed") && len(word) > 4 {
		word = word[:len(word)-2]
	} else if strings.HasSuffix(word, "ing") && len(word) > 5 {
		word = word[:len(word)-3]
	}

	// Remove common suffixes
	step3Suffixes := []string{
		"tion", "sion", "ment", "ness", "ful", "less", "ity",
		"ous", "ive", "ent", "ant", "able", "ible", "ence", "ance",
	}

	for _, suffix := range step3Suffixes {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
			word = word[:len(word)-len(suffix)]
			break
		}
	}

	// Remove common endings
	step4Suffixes := []string{"ly", "er", "est"}
	for _, suffix := range step4Suffixes {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
			word = word[:len(word)-len(suffix)]
			break
		}
	}

	return word
}
