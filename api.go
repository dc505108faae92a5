package pokedex

import "context"

// DefaultSpeciesLimit is the number of species requested from the API.
const DefaultSpeciesLimit = 905

// NamedResource is a name and the URL that resolves it.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Variety is one form belonging to a species.
type Variety struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	IsDefault bool   `json:"isDefault"`
}

// Species is the projection of a species record.
type Species struct {
	Name              string    `json:"name"`
	IsLegendary       bool      `json:"isLegendary"`
	IsMythical        bool      `json:"isMythical"`
	EvolutionChainURL string    `json:"evolutionChainUrl"`
	Varieties         []Variety `json:"varieties"`
}

// Stat is a single base stat of a Pokémon.
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// Pokemon is the projection of a full Pokémon (form) record.
type Pokemon struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	SpeciesURL string   `json:"speciesUrl"`
	Height     int      `json:"height"`
	Weight     int      `json:"weight"`
	Stats      []Stat   `json:"stats"`
	Moves      []string `json:"moves"`
	Sprite     string   `json:"sprite"`
	Artwork    string   `json:"artwork"`
}

// EvolutionNode is one species in an evolution tree.
type EvolutionNode struct {
	Species   string           `json:"species"`
	EvolvesTo []*EvolutionNode `json:"evolvesTo"`
}

// EvolutionChain is the evolution tree rooted at the base species.
type EvolutionChain struct {
	ID   int            `json:"id"`
	Root *EvolutionNode `json:"root"`
}

// FirstBranch walks the chain from the root following only the first
// "evolves to" link at each step.
func (c *EvolutionChain) FirstBranch() []string {
	if c == nil {
		return nil
	}
	var names []string
	for n := c.Root; n != nil; {
		names = append(names, n.Species)
		if len(n.EvolvesTo) == 0 {
			break
		}
		n = n.EvolvesTo[0]
	}
	return names
}

// BranchCount returns the number of distinct root-to-leaf paths.
func (c *EvolutionChain) BranchCount() int {
	if c == nil || c.Root == nil {
		return 0
	}
	return countLeaves(c.Root)
}

func countLeaves(n *EvolutionNode) int {
	if len(n.EvolvesTo) == 0 {
		return 1
	}
	var total int
	for _, child := range n.EvolvesTo {
		total += countLeaves(child)
	}
	return total
}

// API reads records from the remote Pokémon data API.
// Every ref argument accepts either an absolute resource URL or, where the
// API supports it, a bare name.
type API interface {
	// ListSpecies returns the first limit species.
	ListSpecies(ctx context.Context, limit int) ([]NamedResource, error)

	// FetchSpecies retrieves a species record.
	// Returns ENOTFOUND if the species does not exist.
	FetchSpecies(ctx context.Context, ref string) (*Species, error)

	// FetchPokemon retrieves a full Pokémon record by URL or name.
	// Returns ENOTFOUND if the Pokémon does not exist.
	FetchPokemon(ctx context.Context, ref string) (*Pokemon, error)

	// FetchEvolutionChain retrieves an evolution chain.
	FetchEvolutionChain(ctx context.Context, ref string) (*EvolutionChain, error)

	// ListTypes returns the selectable elemental type names.
	ListTypes(ctx context.Context) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
