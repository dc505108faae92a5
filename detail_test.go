package pokedex_test

import (
	"testing"

	"github.com/fwojciec/pokedex"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HP", pokedex.FormatStatName("hp"))
	assert.Equal(t, "Sp. Atk", pokedex.FormatStatName("special-attack"))
	assert.Equal(t, "Sp. Def", pokedex.FormatStatName("special-defense"))
	assert.Equal(t, "Attack", pokedex.FormatStatName("attack"))
	assert.Equal(t, "Some Other", pokedex.FormatStatName("some-other"))
}

func TestStatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50, pokedex.StatPercent(100))
	assert.Equal(t, 100, pokedex.StatPercent(255))
	assert.Equal(t, 0, pokedex.StatPercent(0))
}

func TestDisplayHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mr mime", pokedex.DisplayName("mr-mime"))
	assert.Equal(t, "Pikachu", pokedex.Title("pikachu"))
	assert.Equal(t, "", pokedex.Title(""))
	assert.Equal(t, "#025", pokedex.FormatID(25))
	assert.Equal(t, "#10080", pokedex.FormatID(10080))
}

func TestDetailRecord_Tabs(t *testing.T) {
	t.Parallel()

	t.Run("hides evolutions tab for single-stage species without forms", func(t *testing.T) {
		t.Parallel()

		d := &pokedex.DetailRecord{Evolutions: []string{"tauros"}}

		assert.Equal(t, []pokedex.Tab{pokedex.TabStats, pokedex.TabMoves}, d.Tabs())
	})

	t.Run("shows evolutions tab for chains", func(t *testing.T) {
		t.Parallel()

		d := &pokedex.DetailRecord{Evolutions: []string{"pichu", "pikachu", "raichu"}}

		assert.Contains(t, d.Tabs(), pokedex.TabEvolutions)
	})

	t.Run("shows evolutions tab for alternate forms", func(t *testing.T) {
		t.Parallel()

		d := &pokedex.DetailRecord{Forms: []string{"tauros-paldea-combat-breed"}}

		assert.True(t, d.HasEvolutionsTab())
	})
}

func TestEvolutionChain_FirstBranch(t *testing.T) {
	t.Parallel()

	chain := &pokedex.EvolutionChain{
		Root: &pokedex.EvolutionNode{
			Species: "eevee",
			EvolvesTo: []*pokedex.EvolutionNode{
				{Species: "vaporeon"},
				{Species: "jolteon"},
				{Species: "flareon"},
			},
		},
	}

	assert.Equal(t, []string{"eevee", "vaporeon"}, chain.FirstBranch())
	assert.Equal(t, 3, chain.BranchCount())
}

func TestEvolutionChain_Nil(t *testing.T) {
	t.Parallel()

	var chain *pokedex.EvolutionChain

	assert.Nil(t, chain.FirstBranch())
	assert.Equal(t, 0, chain.BranchCount())
}
