package http

import (
	"github.com/fwojciec/pokedex"
	"github.com/tidwall/gjson"
)

// decodeNamedResources projects an array of {name, url} objects.
func decodeNamedResources(arr gjson.Result) []pokedex.NamedResource {
	out := []pokedex.NamedResource{}
	arr.ForEach(func(_, v gjson.Result) bool {
		out = append(out, pokedex.NamedResource{
			Name: v.Get("name").String(),
			URL:  v.Get("url").String(),
		})
		return true
	})
	return out
}

func decodeSpecies(doc gjson.Result, u string) (*pokedex.Species, error) {
	name := doc.Get("name").String()
	if name == "" {
		return nil, pokedex.Errorf(pokedex.EINVALID, "species record missing name: %s", u)
	}

	s := &pokedex.Species{
		Name:              name,
		IsLegendary:       doc.Get("is_legendary").Bool(),
		IsMythical:        doc.Get("is_mythical").Bool(),
		EvolutionChainURL: doc.Get("evolution_chain.url").String(),
	}
	doc.Get("varieties").ForEach(func(_, v gjson.Result) bool {
		s.Varieties = append(s.Varieties, pokedex.Variety{
			Name:      v.Get("pokemon.name").String(),
			URL:       v.Get("pokemon.url").String(),
			IsDefault: v.Get("is_default").Bool(),
		})
		return true
	})
	return s, nil
}

func decodePokemon(doc gjson.Result, u string) (*pokedex.Pokemon, error) {
	name := doc.Get("name").String()
	if name == "" {
		return nil, pokedex.Errorf(pokedex.EINVALID, "pokemon record missing name: %s", u)
	}

	p := &pokedex.Pokemon{
		ID:         int(doc.Get("id").Int()),
		Name:       name,
		SpeciesURL: doc.Get("species.url").String(),
		Height:     int(doc.Get("height").Int()),
		Weight:     int(doc.Get("weight").Int()),
		Sprite:     doc.Get("sprites.front_default").String(),
		Artwork:    doc.Get(`sprites.other.official-artwork.front_default`).String(),
	}
	for _, t := range doc.Get("types.#.type.name").Array() {
		p.Types = append(p.Types, t.String())
	}
	if len(p.Types) == 0 {
		return nil, pokedex.Errorf(pokedex.EINVALID, "pokemon %q has no types: %s", name, u)
	}
	doc.Get("stats").ForEach(func(_, v gjson.Result) bool {
		p.Stats = append(p.Stats, pokedex.Stat{
			Name: v.Get("stat.name").String(),
			Base: int(v.Get("base_stat").Int()),
		})
		return true
	})
	for _, m := range doc.Get("moves.#.move.name").Array() {
		p.Moves = append(p.Moves, m.String())
	}
	return p, nil
}

func decodeEvolutionChain(doc gjson.Result, u string) (*pokedex.EvolutionChain, error) {
	root := doc.Get("chain")
	if !root.Exists() {
		return nil, pokedex.Errorf(pokedex.EINVALID, "evolution chain missing root: %s", u)
	}
	return &pokedex.EvolutionChain{
		ID:   int(doc.Get("id").Int()),
		Root: decodeEvolutionNode(root),
	}, nil
}

func decodeEvolutionNode(n gjson.Result) *pokedex.EvolutionNode {
	node := &pokedex.EvolutionNode{Species: n.Get("species.name").String()}
	n.Get("evolves_to").ForEach(func(_, child gjson.Result) bool {
		node.EvolvesTo = append(node.EvolvesTo, decodeEvolutionNode(child))
		return true
	})
	return node
}
