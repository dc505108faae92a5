package mock

import (
	"context"

	"github.com/fwojciec/pokedex"
)

var _ pokedex.API = (*API)(nil)

// API is a mock implementation of pokedex.API.
type API struct {
	ListSpeciesFn         func(ctx context.Context, limit int) ([]pokedex.NamedResource, error)
	FetchSpeciesFn        func(ctx context.Context, ref string) (*pokedex.Species, error)
	FetchPokemonFn        func(ctx context.Context, ref string) (*pokedex.Pokemon, error)
	FetchEvolutionChainFn func(ctx context.Context, ref string) (*pokedex.EvolutionChain, error)
	ListTypesFn           func(ctx context.Context) ([]string, error)
}

func (a *API) ListSpecies(ctx context.Context, limit int) ([]pokedex.NamedResource, error) {
	return a.ListSpeciesFn(ctx, limit)
}

func (a *API) FetchSpecies(ctx context.Context, ref string) (*pokedex.Species, error) {
	return a.FetchSpeciesFn(ctx, ref)
}

func (a *API) FetchPokemon(ctx context.Context, ref string) (*pokedex.Pokemon, error) {
	return a.FetchPokemonFn(ctx, ref)
}

func (a *API) FetchEvolutionChain(ctx context.Context, ref string) (*pokedex.EvolutionChain, error) {
	return a.FetchEvolutionChainFn(ctx, ref)
}

func (a *API) ListTypes(ctx context.Context) ([]string, error) {
	return a.ListTypesFn(ctx)
}
