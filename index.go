package pokedex

// SearchIndex suggests the closest catalog name for a misspelled query.
// An index reflects exactly the catalog it was built from and is never
// updated in place.
type SearchIndex interface {
	// Suggest returns the best matching name for the query.
	// The bool result is false if no name is close enough.
	Suggest(query string) (string, bool)
}

// Indexer builds a SearchIndex over a catalog's entry names.
type Indexer interface {
	BuildIndex(c *Catalog) SearchIndex
}
