package pokedex

// Classification is the rarity tag derived for a Pokémon.
type Classification int

// Classifications, in no particular order. Precedence is defined by Classify.
const (
	Normal Classification = iota
	Legendary
	Mythical
	PseudoLegendary
)

// String returns the display label.
func (c Classification) String() string {
	switch c {
	case Legendary:
		return "Legendary"
	case Mythical:
		return "Mythical"
	case PseudoLegendary:
		return "Pseudo-Legendary"
	default:
		return "Normal"
	}
}

// pseudoLegendaries lists Pokémon with a 600 base stat total and a
// three-stage, slow-growing evolution line.
var pseudoLegendaries = map[string]struct{}{
	"dragonite":  {},
	"tyranitar":  {},
	"salamence":  {},
	"metagross":  {},
	"garchomp":   {},
	"hydreigon":  {},
	"goodra":     {},
	"kommo-o":    {},
	"dragapult":  {},
	"baxcalibur": {},
}

// IsPseudoLegendary reports whether the named Pokémon is pseudo-legendary.
func IsPseudoLegendary(name string) bool {
	_, ok := pseudoLegendaries[name]
	return ok
}

// Classify resolves a classification with precedence
// Legendary > Mythical > Pseudo-Legendary > Normal.
func Classify(pokemonName string, species *Species) Classification {
	switch {
	case species != nil && species.IsLegendary:
		return Legendary
	case species != nil && species.IsMythical:
		return Mythical
	case IsPseudoLegendary(pokemonName):
		return PseudoLegendary
	default:
		return Normal
	}
}
