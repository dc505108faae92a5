// Package detail assembles the per-Pokémon detail view from the remote API.
package detail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/pokedex"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds concurrent miniature and card lookups.
const DefaultConcurrency = 8

// Aggregator fetches a Pokémon, its species and evolution chain and
// combines them into a DetailRecord. Records are never cached.
type Aggregator struct {
	API         pokedex.API
	Logger      *slog.Logger
	Concurrency int
}

// NewAggregator creates an Aggregator. A nil logger discards log output.
func NewAggregator(api pokedex.API, logger *slog.Logger) *Aggregator {
	return &Aggregator{API: api, Logger: logger}
}

// Aggregate builds the detail record for a catalog entry.
func (a *Aggregator) Aggregate(ctx context.Context, entry pokedex.Entry) (*pokedex.DetailRecord, error) {
	ref := entry.URL
	if ref == "" {
		ref = entry.Name
	}
	return a.aggregate(ctx, ref, &entry)
}

// AggregateByName builds the detail record for a Pokémon that is not
// necessarily in the catalog, such as a selected evolution or form.
func (a *Aggregator) AggregateByName(ctx context.Context, name string) (*pokedex.DetailRecord, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, pokedex.Errorf(pokedex.EINVALID, "pokemon name required")
	}
	return a.aggregate(ctx, name, nil)
}

func (a *Aggregator) aggregate(ctx context.Context, ref string, entry *pokedex.Entry) (*pokedex.DetailRecord, error) {
	p, err := a.API.FetchPokemon(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("fetch pokemon %s: %w", ref, err)
	}
	if p.SpeciesURL == "" {
		return nil, pokedex.Errorf(pokedex.EINVALID, "pokemon %q has no species", p.Name)
	}

	s, err := a.API.FetchSpecies(ctx, p.SpeciesURL)
	if err != nil {
		return nil, fmt.Errorf("fetch species %s: %w", p.SpeciesURL, err)
	}

	rec := &pokedex.DetailRecord{
		Pokemon:        p,
		Species:        s,
		Classification: pokedex.Classify(p.Name, s),
		Forms:          siblingForms(s, p.Name),
	}
	if entry != nil {
		rec.Entry = *entry
	} else {
		rec.Entry = pokedex.Entry{Name: p.Name, URL: ref, Types: p.Types}
	}

	if s.EvolutionChainURL != "" {
		chain, err := a.API.FetchEvolutionChain(ctx, s.EvolutionChainURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			a.logger().Warn("evolution chain unavailable",
				"pokemon", p.Name,
				"url", s.EvolutionChainURL,
				"err", err)
		} else {
			rec.Evolutions = chain.FirstBranch()
			rec.EvolutionTree = chain.Root
		}
	}

	return rec, nil
}

// siblingForms lists the species' variety names except self.
func siblingForms(s *pokedex.Species, self string) []string {
	var forms []string
	for _, v := range s.Varieties {
		if v.Name != self {
			forms = append(forms, v.Name)
		}
	}
	return forms
}

// Miniature is a small preview of an evolution or form.
type Miniature struct {
	Name   string `json:"name"`
	Sprite string `json:"sprite,omitempty"`

	// Resolved is false when the lookup failed.
	Resolved bool `json:"resolved"`
}

// Miniatures resolves sprite previews for names. Each lookup is independent:
// a failure is logged and leaves only that miniature unresolved.
// Results are returned in input order.
func (a *Aggregator) Miniatures(ctx context.Context, names []string) []Miniature {
	out := make([]Miniature, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())

	for i, name := range names {
		out[i].Name = name
		g.Go(func() error {
			p, err := a.API.FetchPokemon(gctx, name)
			if err != nil {
				a.logger().Warn("miniature unavailable", "pokemon", name, "err", err)
				return nil
			}
			out[i].Sprite = p.Sprite
			out[i].Resolved = true
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// Card is the summary shown for one row of a result page.
type Card struct {
	Name           string                 `json:"name"`
	Sprite         string                 `json:"sprite,omitempty"`
	Classification pokedex.Classification `json:"classification"`

	// Resolved is false when the lookup failed.
	Resolved bool `json:"resolved"`
}

// Cards looks up the sprite and classification of each entry. Like
// Miniatures, a failed lookup is logged and leaves only that card
// unresolved. Results are returned in input order.
func (a *Aggregator) Cards(ctx context.Context, entries []pokedex.Entry) []Card {
	out := make([]Card, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())

	for i, e := range entries {
		out[i].Name = e.Name
		g.Go(func() error {
			c, err := a.card(gctx, e)
			if err != nil {
				a.logger().Warn("card unavailable", "pokemon", e.Name, "err", err)
				return nil
			}
			out[i] = c
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (a *Aggregator) card(ctx context.Context, e pokedex.Entry) (Card, error) {
	ref := e.URL
	if ref == "" {
		ref = e.Name
	}
	p, err := a.API.FetchPokemon(ctx, ref)
	if err != nil {
		return Card{}, fmt.Errorf("fetch pokemon %s: %w", ref, err)
	}
	if p.SpeciesURL == "" {
		return Card{}, pokedex.Errorf(pokedex.EINVALID, "pokemon %q has no species", p.Name)
	}
	s, err := a.API.FetchSpecies(ctx, p.SpeciesURL)
	if err != nil {
		return Card{}, fmt.Errorf("fetch species %s: %w", p.SpeciesURL, err)
	}
	return Card{
		Name:           e.Name,
		Sprite:         p.Sprite,
		Classification: pokedex.Classify(p.Name, s),
		Resolved:       true,
	}, nil
}

func (a *Aggregator) concurrency() int {
	if a.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return a.Concurrency
}

func (a *Aggregator) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}
