package main

import (
	"fmt"

	"github.com/fwojciec/pokedex"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	b := deps.newBuilder(c.FetchFlags)
	b.SpeciesLimit = c.SpeciesLimit
	b.AllowPartial = c.Partial

	res, err := b.Build(deps.Ctx, progressPrinter(deps.Stderr))
	if err != nil {
		fmt.Fprintln(deps.Stderr, buildFailureMessage)
		return err
	}

	for _, f := range res.Failed {
		fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", f.URL, f.Err)
	}
	fmt.Fprintf(deps.Stdout, "Loaded %d Pokémon (%d failed, hash %s)\n",
		res.Catalog.Len(), len(res.Failed), res.ContentHash)

	if !c.Save {
		return nil
	}

	snap := &pokedex.Snapshot{
		ContentHash: res.ContentHash,
		Entries:     res.Catalog.Entries(),
	}
	if err := deps.Snapshots.SaveSnapshot(deps.Ctx, snap); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved snapshot %s\n", snap.ID)
	return nil
}
