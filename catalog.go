package pokedex

import (
	"slices"
	"strings"
)

// Entry is a lightweight catalog record for a single Pokémon form.
type Entry struct {
	Name  string   `json:"name"`
	URL   string   `json:"url"`
	Types []string `json:"types"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if e.URL == "" {
		return Errorf(EINVALID, "entry %q resource URL required", e.Name)
	}
	if len(e.Types) == 0 || len(e.Types) > MaxSelectedTypes {
		return Errorf(EINVALID, "entry %q must have 1 or 2 types, got %d", e.Name, len(e.Types))
	}
	return nil
}

// HasTypes reports whether the entry carries every one of the given types.
// An empty list matches every entry.
func (e *Entry) HasTypes(types []string) bool {
	for _, t := range types {
		if !slices.Contains(e.Types, t) {
			return false
		}
	}
	return true
}

// Catalog is the ordered, read-only list of every known Pokémon form.
// Names are unique within a catalog.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// NewCatalog validates entries and returns a catalog holding a private copy
// of them. Returns ECONFLICT if two entries share a name.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e.Name = strings.ToLower(e.Name)
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byName[e.Name]; ok {
			return nil, Errorf(ECONFLICT, "duplicate catalog entry %q", e.Name)
		}
		e.Types = normalizeTypes(e.Types)
		c.byName[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the catalog entries in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return slices.Clone(c.entries)
}

// Names returns entry names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Types returns the distinct types present in the catalog, in first-seen
// order.
func (c *Catalog) Types() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var types []string
	for _, e := range c.entries {
		for _, t := range e.Types {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				types = append(types, t)
			}
		}
	}
	return types
}

// Lookup returns the entry with the given name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func normalizeTypes(types []string) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = strings.ToLower(t)
	}
	return out
}
