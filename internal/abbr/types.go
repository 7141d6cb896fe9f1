package abbr

import (
	"sort"
	"unicode/utf8"
)

// Line is one line of a definition together with its nesting level.
type Line struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Document is the parsed definition of a single abbreviation. HTML holds the
// display-ready fragment that is carried in the marker's payload attribute.
type Document struct {
	Lines []Line `json:"lines"`
	HTML  string `json:"html"`
}

// Index maps abbreviation keys to their definitions. It is built once by
// Parse and must not be modified afterwards.
type Index struct {
	docs  map[string]Document
	order []string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{docs: make(map[string]Document)}
}

// set stores doc under key, replacing any earlier definition. The key keeps
// the position of its first definition.
func (idx *Index) set(key string, doc Document) {
	if _, ok := idx.docs[key]; !ok {
		idx.order = append(idx.order, key)
	}
	idx.docs[key] = doc
}

// Get returns the definition for key.
func (idx *Index) Get(key string) (Document, bool) {
	if idx == nil {
		return Document{}, false
	}
	doc, ok := idx.docs[key]
	return doc, ok
}

// Len returns the number of defined keys.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.docs)
}

// Keys returns the keys in definition order.
func (idx *Index) Keys() []string {
	if idx == nil {
		return nil
	}
	out := make([]string, len(idx.order))
	copy(out, idx.order)
	return out
}

// MatchOrder returns the keys longest first, ties broken lexically, which is
// the order the substitution engine tries them in.
func (idx *Index) MatchOrder() []string {
	keys := idx.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(keys[i]), utf8.RuneCountInString(keys[j])
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	return keys
}
