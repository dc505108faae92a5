package main_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/pokedex"
	main "github.com/fwojciec/pokedex/cmd/pokedex"
	"github.com/fwojciec/pokedex/detail"
	"github.com/fwojciec/pokedex/levenshtein"
	"github.com/fwojciec/pokedex/mock"
)

const base = "https://pokeapi.co/api/v2"

// fixture describes a small API world: species name -> varieties.
var fixture = []struct {
	species string
	forms   []pokedex.Pokemon
}{
	{"charmander", []pokedex.Pokemon{{ID: 4, Name: "charmander", Types: []string{"fire"}}}},
	{"charizard", []pokedex.Pokemon{
		{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}},
		{ID: 10034, Name: "charizard-mega-x", Types: []string{"fire", "dragon"}},
	}},
	{"pikachu", []pokedex.Pokemon{{ID: 25, Name: "pikachu", Types: []string{"electric"}}}},
	{"dragonite", []pokedex.Pokemon{{ID: 149, Name: "dragonite", Types: []string{"dragon", "flying"}}}},
}

// fakeAPI serves the fixture through a mock API.
func fakeAPI() *mock.API {
	species := map[string]*pokedex.Species{}
	pokemon := map[string]*pokedex.Pokemon{}
	var refs []pokedex.NamedResource

	for _, f := range fixture {
		speciesURL := fmt.Sprintf("%s/pokemon-species/%s/", base, f.species)
		s := &pokedex.Species{Name: f.species, EvolutionChainURL: base + "/evolution-chain/2/"}
		for i, p := range f.forms {
			p.SpeciesURL = speciesURL
			p.Stats = []pokedex.Stat{{Name: "hp", Base: 78}, {Name: "special-attack", Base: 109}}
			p.Moves = []string{"mega-punch", "fire-punch"}
			p.Sprite = fmt.Sprintf("https://img/%d.png", p.ID)
			p.Height, p.Weight = 17, 905
			u := fmt.Sprintf("%s/pokemon/%d/", base, p.ID)
			s.Varieties = append(s.Varieties, pokedex.Variety{Name: p.Name, URL: u, IsDefault: i == 0})
			pokemon[u] = &p
			pokemon[p.Name] = &p
		}
		species[speciesURL] = s
		refs = append(refs, pokedex.NamedResource{Name: f.species, URL: speciesURL})
	}

	return &mock.API{
		ListSpeciesFn: func(context.Context, int) ([]pokedex.NamedResource, error) {
			return refs, nil
		},
		FetchSpeciesFn: func(_ context.Context, ref string) (*pokedex.Species, error) {
			if s, ok := species[ref]; ok {
				return s, nil
			}
			return nil, pokedex.Errorf(pokedex.ENOTFOUND, "species not found")
		},
		FetchPokemonFn: func(_ context.Context, ref string) (*pokedex.Pokemon, error) {
			if p, ok := pokemon[ref]; ok {
				return p, nil
			}
			return nil, pokedex.Errorf(pokedex.ENOTFOUND, "pokemon not found")
		},
		FetchEvolutionChainFn: func(context.Context, string) (*pokedex.EvolutionChain, error) {
			return &pokedex.EvolutionChain{Root: &pokedex.EvolutionNode{
				Species: "charmander",
				EvolvesTo: []*pokedex.EvolutionNode{{
					Species:   "charmeleon",
					EvolvesTo: []*pokedex.EvolutionNode{{Species: "charizard"}},
				}},
			}}, nil
		},
		ListTypesFn: func(context.Context) ([]string, error) {
			return []string{"normal", "fire", "water", "electric", "dragon", "flying"}, nil
		},
	}
}

// newDeps returns command dependencies over api and snapshots.
func newDeps(api pokedex.API, snapshots pokedex.SnapshotService, stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:        context.Background(),
		Stdin:      strings.NewReader(stdin),
		Stdout:     stdout,
		Stderr:     stderr,
		API:        api,
		Indexer:    levenshtein.NewIndexer(levenshtein.DefaultThreshold),
		Snapshots:  snapshots,
		Aggregator: detail.NewAggregator(api, nil),
	}, stdout, stderr
}

// failRepeatFetch makes every FetchPokemon call for ref after the first
// fail, so a catalog build succeeds and later lookups of ref do not.
func failRepeatFetch(api *mock.API, ref string) {
	var (
		mu    sync.Mutex
		calls int
	)
	fetch := api.FetchPokemonFn
	api.FetchPokemonFn = func(ctx context.Context, r string) (*pokedex.Pokemon, error) {
		if r == ref {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n > 1 {
				return nil, pokedex.Errorf(pokedex.EUNAVAILABLE, "HTTP 503")
			}
		}
		return fetch(ctx, r)
	}
}
