package detail

import (
	"context"
	"errors"
	"sync"

	"github.com/fwojciec/pokedex"
)

// ErrStale is returned when a detail response arrives after a newer
// request has superseded it. The response is discarded.
var ErrStale = errors.New("detail: stale response discarded")

// Viewer tracks the detail record currently on display. Only the most
// recent Open may publish its record.
type Viewer struct {
	Aggregator *Aggregator

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    *pokedex.DetailRecord
}

// NewViewer returns a Viewer backed by agg.
func NewViewer(agg *Aggregator) *Viewer {
	return &Viewer{Aggregator: agg}
}

// Open loads and displays the record for entry, cancelling any request
// still in flight.
func (v *Viewer) Open(ctx context.Context, entry pokedex.Entry) (*pokedex.DetailRecord, error) {
	return v.open(ctx, func(ctx context.Context) (*pokedex.DetailRecord, error) {
		return v.Aggregator.Aggregate(ctx, entry)
	})
}

// OpenByName is like Open for a Pokémon selected by name.
func (v *Viewer) OpenByName(ctx context.Context, name string) (*pokedex.DetailRecord, error) {
	return v.open(ctx, func(ctx context.Context) (*pokedex.DetailRecord, error) {
		return v.Aggregator.AggregateByName(ctx, name)
	})
}

func (v *Viewer) open(ctx context.Context, load func(context.Context) (*pokedex.DetailRecord, error)) (*pokedex.DetailRecord, error) {
	ctx, cancel := context.WithCancel(ctx)

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	gen := v.generation
	v.cancel = cancel
	v.current = nil
	v.mu.Unlock()

	rec, err := load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		cancel()
		return nil, ErrStale
	}
	v.cancel = nil
	cancel()
	if err != nil {
		return nil, err
	}
	v.current = rec
	return rec, nil
}

// Close dismisses the current record and abandons any request in flight.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.generation++
	v.current = nil
}

// Current returns the record on display, or nil.
func (v *Viewer) Current() *pokedex.DetailRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}
