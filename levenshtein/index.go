// Package levenshtein provides an edit-distance based implementation of
// pokedex.SearchIndex for "did you mean" suggestions.
package levenshtein

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/fwojciec/pokedex"
)

// DefaultThreshold is the highest normalised distance still considered a
// match. 0 is an exact match, 1 shares nothing.
const DefaultThreshold = 0.4

// Ensure Index implements pokedex.SearchIndex at compile time.
var _ pokedex.SearchIndex = (*Index)(nil)

// Index scores every name against a query by normalised edit distance.
// It is immutable and safe for concurrent use.
type Index struct {
	names     []string
	threshold float64
}

// NewIndex creates an index over names. A threshold <= 0 selects
// DefaultThreshold.
func NewIndex(names []string, threshold float64) *Index {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}
	return &Index{names: lowered, threshold: threshold}
}

// Len returns the number of indexed names.
func (i *Index) Len() int {
	return len(i.names)
}

// Suggest returns the indexed name closest to query. Ties keep the name
// that was indexed first.
func (i *Index) Suggest(query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}

	best := ""
	bestScore := i.threshold
	found := false
	for _, name := range i.names {
		s := Score(query, name)
		if s > i.threshold {
			continue
		}
		if !found || s < bestScore {
			best, bestScore, found = name, s, true
		}
	}
	return best, found
}

// Score returns the normalised distance between query and name: the lower
// of the whole-name distance and the distance to the name's prefix of the
// same length as query.
func Score(query, name string) float64 {
	ql := utf8.RuneCountInString(query)
	nl := utf8.RuneCountInString(name)
	if ql == 0 {
		return 1
	}

	full := float64(levenshtein.ComputeDistance(query, name)) / float64(max(ql, nl))
	if nl <= ql {
		return full
	}

	prefix := string([]rune(name)[:ql])
	partial := float64(levenshtein.ComputeDistance(query, prefix)) / float64(ql)
	return min(full, partial)
}

// Ensure Indexer implements pokedex.Indexer at compile time.
var _ pokedex.Indexer = (*Indexer)(nil)

// Indexer builds an Index over catalog names.
type Indexer struct {
	Threshold float64
}

// NewIndexer creates an Indexer with the given threshold.
func NewIndexer(threshold float64) *Indexer {
	return &Indexer{Threshold: threshold}
}

// BuildIndex indexes every entry name in the catalog.
func (x *Indexer) BuildIndex(c *pokedex.Catalog) pokedex.SearchIndex {
	return NewIndex(c.Names(), x.Threshold)
}
