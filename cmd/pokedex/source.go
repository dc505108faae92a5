package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/catalog"
	"github.com/fwojciec/pokedex/detail"
)

// newBuilder returns a catalog builder wired to the command dependencies.
func (d *Dependencies) newBuilder(f FetchFlags) *catalog.Builder {
	b := &catalog.Builder{
		API:         d.API,
		Indexer:     d.Indexer,
		Concurrency: f.Concurrency,
	}
	if f.RPS > 0 {
		b.RateLimiter = catalog.NewHostLimiter(f.RPS, 1)
	}
	return b
}

// loadCatalog builds the catalog from the API, or rebuilds it from the
// latest snapshot when offline. The index is always built fresh.
func (d *Dependencies) loadCatalog(src CatalogSource) (*pokedex.Catalog, pokedex.SearchIndex, error) {
	if src.Offline {
		snap, err := d.Snapshots.LatestSnapshot(d.Ctx)
		if err != nil {
			if pokedex.ErrorCode(err) == pokedex.ENOTFOUND {
				fmt.Fprintln(d.Stderr, "error: no saved snapshot. Run 'pokedex build --save' first.")
			} else {
				fmt.Fprintf(d.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
			}
			return nil, nil, err
		}
		c, err := snap.Catalog()
		if err != nil {
			fmt.Fprintf(d.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
			return nil, nil, err
		}
		return c, d.Indexer.BuildIndex(c), nil
	}

	res, err := d.newBuilder(src.FetchFlags).Build(d.Ctx, progressPrinter(d.Stderr))
	if err != nil {
		fmt.Fprintln(d.Stderr, buildFailureMessage)
		return nil, nil, err
	}
	return res.Catalog, res.Index, nil
}

// knownTypes returns the types a session may select. Online sessions ask
// the API once; offline sessions, or an API that cannot list types, fall
// back to the types present in the catalog.
func (d *Dependencies) knownTypes(src CatalogSource, cat *pokedex.Catalog) []string {
	if src.Offline {
		return cat.Types()
	}
	types, err := d.API.ListTypes(d.Ctx)
	if err != nil {
		d.logger().Warn("type list unavailable, using catalog types", "err", err)
		return cat.Types()
	}
	return types
}

// isKnownType reports whether t names one of the known types.
func isKnownType(known []string, t string) bool {
	return slices.Contains(known, strings.ToLower(strings.TrimSpace(t)))
}

// cardsFor resolves sprite and classification for the visible entries.
// Offline sessions make no API calls, so rows are printed without cards.
func (d *Dependencies) cardsFor(src CatalogSource, entries []pokedex.Entry) []detail.Card {
	if src.Offline || len(entries) == 0 {
		return nil
	}
	return d.Aggregator.Cards(d.Ctx, entries)
}

// buildFailureMessage is shown for any fatal build error.
const buildFailureMessage = "Failed to load Pokémon database. Please try refreshing."

// progressPrinter writes one status line per build phase.
func progressPrinter(w io.Writer) catalog.ProgressFunc {
	var last catalog.Phase
	return func(p catalog.Progress) {
		if p.Phase == last {
			return
		}
		last = p.Phase
		fmt.Fprintln(w, p.Label())
	}
}
