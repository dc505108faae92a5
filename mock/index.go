package mock

import "github.com/fwojciec/pokedex"

var _ pokedex.SearchIndex = (*SearchIndex)(nil)

// SearchIndex is a mock implementation of pokedex.SearchIndex.
type SearchIndex struct {
	SuggestFn func(query string) (string, bool)
}

func (i *SearchIndex) Suggest(query string) (string, bool) {
	return i.SuggestFn(query)
}

var _ pokedex.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of pokedex.Indexer.
type Indexer struct {
	BuildIndexFn func(c *pokedex.Catalog) pokedex.SearchIndex
}

func (i *Indexer) BuildIndex(c *pokedex.Catalog) pokedex.SearchIndex {
	return i.BuildIndexFn(c)
}
