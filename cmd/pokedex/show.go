package main

import (
	"fmt"
	"slices"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/detail"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Aggregator.AggregateByName(deps.Ctx, c.Name)
	if err != nil {
		if pokedex.ErrorCode(err) == pokedex.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: Pokémon %q not found\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		}
		return err
	}

	renderDetail(deps.Stdout, rec, c.Tab, miniaturesFor(deps, rec, c.Tab))
	return nil
}

// miniaturesFor resolves previews when the evolutions section is shown.
func miniaturesFor(deps *Dependencies, rec *pokedex.DetailRecord, tab string) []detail.Miniature {
	if tab != "all" && tab != string(pokedex.TabEvolutions) {
		return nil
	}
	if !rec.HasEvolutionsTab() {
		return nil
	}
	names := slices.Concat(rec.Evolutions, rec.Forms)
	return deps.Aggregator.Miniatures(deps.Ctx, names)
}
