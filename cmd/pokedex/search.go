package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pokedex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if len(c.Types) > pokedex.MaxSelectedTypes {
		fmt.Fprintf(deps.Stderr, "error: at most %d types can be selected\n", pokedex.MaxSelectedTypes)
		return pokedex.Errorf(pokedex.EINVALID, "at most %d types can be selected", pokedex.MaxSelectedTypes)
	}

	cat, idx, err := deps.loadCatalog(c.CatalogSource)
	if err != nil {
		return err
	}

	if len(c.Types) > 0 {
		known := deps.knownTypes(c.CatalogSource, cat)
		for _, t := range c.Types {
			if !isKnownType(known, t) {
				fmt.Fprintf(deps.Stderr, "error: unknown type %q (known: %s)\n", t, strings.Join(known, ", "))
				return pokedex.Errorf(pokedex.EINVALID, "unknown type %q", t)
			}
		}
	}

	var s pokedex.FilterState
	for _, t := range c.Types {
		s.ToggleType(t)
	}
	s.SetSearchTerm(c.Query)
	s.SetPage(c.Page)

	res := pokedex.Apply(cat, idx, s)
	renderPage(deps.Stdout, s, res, deps.cardsFor(c.CatalogSource, res.Entries))
	return nil
}
