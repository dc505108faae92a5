package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/pokedex"
	pokedexhttp "github.com/fwojciec/pokedex/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const speciesListJSON = `{
  "count": 1025,
  "results": [
    {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"},
    {"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon-species/2/"}
  ]
}`

const speciesJSON = `{
  "name": "charizard",
  "is_legendary": false,
  "is_mythical": false,
  "evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/2/"},
  "varieties": [
    {"is_default": true, "pokemon": {"name": "charizard", "url": "https://pokeapi.co/api/v2/pokemon/6/"}},
    {"is_default": false, "pokemon": {"name": "charizard-mega-x", "url": "https://pokeapi.co/api/v2/pokemon/10034/"}}
  ]
}`

const pokemonJSON = `{
  "id": 6,
  "name": "charizard",
  "height": 17,
  "weight": 905,
  "species": {"name": "charizard", "url": "https://pokeapi.co/api/v2/pokemon-species/6/"},
  "types": [
    {"slot": 1, "type": {"name": "fire", "url": "https://pokeapi.co/api/v2/type/10/"}},
    {"slot": 2, "type": {"name": "flying", "url": "https://pokeapi.co/api/v2/type/3/"}}
  ],
  "stats": [
    {"base_stat": 78, "stat": {"name": "hp"}},
    {"base_stat": 109, "stat": {"name": "special-attack"}}
  ],
  "moves": [
    {"move": {"name": "mega-punch"}},
    {"move": {"name": "fire-punch"}}
  ],
  "sprites": {
    "front_default": "https://img/6.png",
    "other": {"official-artwork": {"front_default": "https://img/art/6.png"}}
  }
}`

const evolutionChainJSON = `{
  "id": 67,
  "chain": {
    "species": {"name": "eevee"},
    "evolves_to": [
      {"species": {"name": "vaporeon"}, "evolves_to": []},
      {"species": {"name": "jolteon"}, "evolves_to": []},
      {"species": {"name": "flareon"}, "evolves_to": []}
    ]
  }
}`

const typesJSON = `{
  "results": [
    {"name": "normal", "url": "u"},
    {"name": "fire", "url": "u"},
    {"name": "unknown", "url": "u"},
    {"name": "shadow", "url": "u"}
  ]
}`

// newAPIServer serves canned PokéAPI responses keyed by request path.
func newAPIServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_ListSpecies(t *testing.T) {
	t.Parallel()

	t.Run("returns species references", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("limit") != "2" {
				http.Error(w, "unexpected limit", http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(speciesListJSON))
		}))
		defer server.Close()

		client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

		refs, err := client.ListSpecies(context.Background(), 2)

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "bulbasaur", refs[0].Name)
		assert.Equal(t, "https://pokeapi.co/api/v2/pokemon-species/2/", refs[1].URL)
	})

	t.Run("uses default limit when not positive", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("limit") != "905" {
				http.Error(w, "unexpected limit", http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(`{"results": []}`))
		}))
		defer server.Close()

		client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

		refs, err := client.ListSpecies(context.Background(), 0)

		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}

func TestClient_FetchSpecies(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, map[string]string{
		"/pokemon-species/charizard/": speciesJSON,
	})
	client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

	t.Run("resolves bare names", func(t *testing.T) {
		t.Parallel()

		s, err := client.FetchSpecies(context.Background(), "Charizard")

		require.NoError(t, err)
		assert.Equal(t, "charizard", s.Name)
		assert.False(t, s.IsLegendary)
		assert.Equal(t, "https://pokeapi.co/api/v2/evolution-chain/2/", s.EvolutionChainURL)
		require.Len(t, s.Varieties, 2)
		assert.True(t, s.Varieties[0].IsDefault)
		assert.Equal(t, "charizard-mega-x", s.Varieties[1].Name)
	})

	t.Run("accepts absolute URLs", func(t *testing.T) {
		t.Parallel()

		s, err := client.FetchSpecies(context.Background(), server.URL+"/pokemon-species/charizard/")

		require.NoError(t, err)
		assert.Equal(t, "charizard", s.Name)
	})

	t.Run("maps 404 to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := client.FetchSpecies(context.Background(), "missingno")

		require.Error(t, err)
		assert.Equal(t, pokedex.ENOTFOUND, pokedex.ErrorCode(err))
	})
}

func TestClient_FetchPokemon(t *testing.T) {
	t.Parallel()

	t.Run("projects the record", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, map[string]string{"/pokemon/charizard/": pokemonJSON})
		client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

		p, err := client.FetchPokemon(context.Background(), "charizard")

		require.NoError(t, err)
		assert.Equal(t, 6, p.ID)
		assert.Equal(t, []string{"fire", "flying"}, p.Types)
		assert.Equal(t, "https://pokeapi.co/api/v2/pokemon-species/6/", p.SpeciesURL)
		assert.Equal(t, 17, p.Height)
		assert.Equal(t, 905, p.Weight)
		assert.Equal(t, []pokedex.Stat{{Name: "hp", Base: 78}, {Name: "special-attack", Base: 109}}, p.Stats)
		assert.Equal(t, []string{"mega-punch", "fire-punch"}, p.Moves)
		assert.Equal(t, "https://img/6.png", p.Sprite)
		assert.Equal(t, "https://img/art/6.png", p.Artwork)
	})

	t.Run("rejects records without types", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, map[string]string{"/pokemon/ghost/": `{"id": 1, "name": "ghost", "types": []}`})
		client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

		_, err := client.FetchPokemon(context.Background(), "ghost")

		require.Error(t, err)
		assert.Equal(t, pokedex.EINVALID, pokedex.ErrorCode(err))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, map[string]string{"/pokemon/broken/": `{"name": "broken",`})
		client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

		_, err := client.FetchPokemon(context.Background(), "broken")

		require.Error(t, err)
		assert.Equal(t, pokedex.EINVALID, pokedex.ErrorCode(err))
	})
}

func TestClient_FetchEvolutionChain(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, map[string]string{"/evolution-chain/67/": evolutionChainJSON})
	client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

	chain, err := client.FetchEvolutionChain(context.Background(), "67")

	require.NoError(t, err)
	assert.Equal(t, 67, chain.ID)
	assert.Equal(t, "eevee", chain.Root.Species)
	assert.Len(t, chain.Root.EvolvesTo, 3)
	assert.Equal(t, []string{"eevee", "vaporeon"}, chain.FirstBranch())
}

func TestClient_ListTypes(t *testing.T) {
	t.Parallel()

	server := newAPIServer(t, map[string]string{"/type": typesJSON})
	client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

	types, err := client.ListTypes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"normal", "fire"}, types)
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	t.Run("maps server errors to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

		_, err := client.ListTypes(context.Background())

		require.Error(t, err)
		assert.Equal(t, pokedex.EUNAVAILABLE, pokedex.ErrorCode(err))
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(typesJSON))
		}))
		defer server.Close()

		client := pokedexhttp.NewClient(
			pokedexhttp.WithBaseURL(server.URL),
			pokedexhttp.WithRetryMax(2),
		)

		types, err := client.ListTypes(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
		assert.Len(t, types, 2)
	})

	t.Run("does not retry by default", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

		_, err := client.ListTypes(context.Background())

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(typesJSON))
		}))
		defer server.Close()

		client := pokedexhttp.NewClient(
			pokedexhttp.WithBaseURL(server.URL),
			pokedexhttp.WithTimeout(10*time.Millisecond),
		)

		_, err := client.ListTypes(context.Background())

		require.Error(t, err)
		assert.Equal(t, pokedex.EUNAVAILABLE, pokedex.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, map[string]string{"/type": typesJSON})
		client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL(server.URL))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.ListTypes(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_BaseURL(t *testing.T) {
	t.Parallel()

	client := pokedexhttp.NewClient(pokedexhttp.WithBaseURL("http://localhost:8080/api/v2/"))

	assert.Equal(t, "http://localhost:8080/api/v2", client.BaseURL())
	assert.True(t, strings.HasPrefix(pokedexhttp.NewClient().BaseURL(), "https://pokeapi.co"))
}
