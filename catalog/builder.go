// Package catalog builds the Pokémon catalog from the remote API.
// It coordinates species discovery, variety expansion and per-form detail
// fetching, then indexes the result for fuzzy search.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/pokedex"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds in-flight requests when Concurrency is unset.
const DefaultConcurrency = 16

// Builder turns the remote API into an immutable catalog and search index.
type Builder struct {
	API         pokedex.API
	Indexer     pokedex.Indexer
	RateLimiter pokedex.DomainLimiter

	// Concurrency bounds in-flight requests per batch.
	Concurrency int

	// SpeciesLimit is the number of species requested.
	// Defaults to pokedex.DefaultSpeciesLimit.
	SpeciesLimit int

	// AllowPartial publishes a catalog from the successful fetches instead
	// of failing the whole build on the first error.
	AllowPartial bool
}

// Result holds the outcome of a build.
type Result struct {
	Catalog     *pokedex.Catalog
	Index       pokedex.SearchIndex
	ContentHash string

	// Failed lists the fetches skipped in partial mode.
	Failed []Failure
}

// Failure records a single fetch that did not succeed.
type Failure struct {
	URL string
	Err error
}

// Phase identifies a stage of the build.
type Phase int

const (
	PhaseSpecies Phase = iota + 1
	PhaseVarieties
	PhaseDetails
	PhaseReady
)

// Progress reports the state of a build.
type Progress struct {
	Phase     Phase
	Completed int
	Total     int

	// Failed counts items of the phase skipped in partial mode. They are
	// included in Completed.
	Failed int

	// Forms is the number of distinct varieties, known from PhaseDetails on.
	Forms int
}

// Label returns the user-facing status line for the progress event.
func (p Progress) Label() string {
	switch p.Phase {
	case PhaseSpecies:
		return "Fetching species list (1/3)"
	case PhaseVarieties:
		return "Fetching all varieties (2/3)"
	case PhaseDetails:
		return fmt.Sprintf("Fetching details for %d Pokémon forms (3/3)", p.Forms)
	case PhaseReady:
		return fmt.Sprintf("Pokémon database ready (%d entries)", p.Total)
	default:
		return ""
	}
}

// ProgressFunc is a callback for reporting build progress.
// Calls are serialized.
type ProgressFunc func(Progress)

// Build fetches the species list, expands every species into its
// varieties and fetches each variety's types. Unless AllowPartial is set,
// any failure aborts the build with EUNAVAILABLE and no catalog.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) (*Result, error) {
	if b.API == nil {
		return nil, pokedex.Errorf(pokedex.EINVALID, "catalog builder requires an API")
	}
	r := &reporter{fn: progress}

	// Phase 1: species list. Always fatal.
	r.start(Progress{Phase: PhaseSpecies})
	limit := b.SpeciesLimit
	if limit <= 0 {
		limit = pokedex.DefaultSpeciesLimit
	}
	species, err := b.API.ListSpecies(ctx, limit)
	if err != nil {
		return nil, b.fail(ctx, fmt.Errorf("list species: %w", err))
	}

	var failed []Failure

	// Phase 2: varieties of every species, deduplicated in discovery order.
	r.start(Progress{Phase: PhaseVarieties, Total: len(species)})
	details, errs, err := fetchAll(ctx, b, species,
		func(ref pokedex.NamedResource) string { return ref.URL },
		func(ctx context.Context, ref pokedex.NamedResource) (*pokedex.Species, error) {
			return b.API.FetchSpecies(ctx, ref.URL)
		},
		r.step,
	)
	if err != nil {
		return nil, b.fail(ctx, err)
	}
	failed = appendFailures(failed, species, errs)

	varieties := uniqueVarieties(details)

	// Phase 3: per-form type data.
	r.start(Progress{Phase: PhaseDetails, Total: len(varieties), Forms: len(varieties)})
	pokemon, errs, err := fetchAll(ctx, b, varieties,
		func(v pokedex.NamedResource) string { return v.URL },
		func(ctx context.Context, v pokedex.NamedResource) (*pokedex.Pokemon, error) {
			return b.API.FetchPokemon(ctx, v.URL)
		},
		r.step,
	)
	if err != nil {
		return nil, b.fail(ctx, err)
	}
	failed = appendFailures(failed, varieties, errs)

	entries := make([]pokedex.Entry, 0, len(pokemon))
	for i, p := range pokemon {
		if errs[i] != nil || p == nil {
			continue
		}
		entries = append(entries, pokedex.Entry{
			Name:  p.Name,
			URL:   varieties[i].URL,
			Types: p.Types,
		})
	}

	c, err := pokedex.NewCatalog(entries)
	if err != nil {
		return nil, b.fail(ctx, err)
	}
	if c.Len() == 0 {
		return nil, b.fail(ctx, pokedex.Errorf(pokedex.EUNAVAILABLE, "no Pokémon could be loaded"))
	}

	res := &Result{
		Catalog:     c,
		ContentHash: ContentHash(c.Entries()),
		Failed:      failed,
	}
	if b.Indexer != nil {
		res.Index = b.Indexer.BuildIndex(c)
	}

	r.start(Progress{Phase: PhaseReady, Completed: c.Len(), Total: c.Len(), Forms: len(varieties)})
	return res, nil
}

// fail converts a build error into the single user-facing load failure.
// Cancellation by the caller is returned as is.
func (b *Builder) fail(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %w", pokedex.Errorf(pokedex.EUNAVAILABLE, "failed to load Pokémon database"), err)
}

func (b *Builder) concurrency() int {
	if b.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return b.Concurrency
}

func (b *Builder) wait(ctx context.Context, ref string) error {
	if b.RateLimiter == nil {
		return nil
	}
	return b.RateLimiter.Wait(ctx, hostOf(ref))
}

// fetchAll runs fetch for every item with bounded concurrency. Results and
// per-item errors are stored by position. In fail-closed mode the first
// error cancels the batch and is returned as the third value.
func fetchAll[T, R any](
	ctx context.Context,
	b *Builder,
	items []T,
	ref func(T) string,
	fetch func(context.Context, T) (R, error),
	done func(failed bool),
) ([]R, []error, error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency())

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := b.wait(gctx, ref(item)); err != nil {
				return err
			}
			r, err := fetch(gctx, item)
			if err != nil {
				if b.AllowPartial && ctx.Err() == nil {
					errs[i] = err
					done(true)
					return nil
				}
				return fmt.Errorf("fetch %s: %w", ref(item), err)
			}
			results[i] = r
			done(false)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, errs, nil
}

// uniqueVarieties flattens species varieties into an insertion-ordered set
// keyed by resource locator.
func uniqueVarieties(species []*pokedex.Species) []pokedex.NamedResource {
	seen := make(map[string]struct{})
	var out []pokedex.NamedResource
	for _, s := range species {
		if s == nil {
			continue
		}
		for _, v := range s.Varieties {
			if v.URL == "" {
				continue
			}
			if _, ok := seen[v.URL]; ok {
				continue
			}
			seen[v.URL] = struct{}{}
			out = append(out, pokedex.NamedResource{Name: v.Name, URL: v.URL})
		}
	}
	return out
}

func appendFailures(failed []Failure, refs []pokedex.NamedResource, errs []error) []Failure {
	for i, err := range errs {
		if err != nil {
			failed = append(failed, Failure{URL: refs[i].URL, Err: err})
		}
	}
	return failed
}

// reporter serializes progress callbacks from concurrent workers.
type reporter struct {
	mu      sync.Mutex
	fn      ProgressFunc
	current Progress
}

func (r *reporter) start(p Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = p
	if r.fn != nil {
		r.fn(p)
	}
}

func (r *reporter) step(failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current.Completed++
	if failed {
		r.current.Failed++
	}
	if r.fn != nil {
		r.fn(r.current)
	}
}
