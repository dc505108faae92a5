package pokedex

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DetailRecord aggregates everything shown for a selected Pokémon.
// Records are built on demand and never cached.
type DetailRecord struct {
	Entry          Entry          `json:"entry"`
	Pokemon        *Pokemon       `json:"pokemon"`
	Species        *Species       `json:"species"`
	Classification Classification `json:"classification"`

	// Evolutions follows only the first branch of the evolution tree.
	Evolutions    []string       `json:"evolutions"`
	EvolutionTree *EvolutionNode `json:"evolutionTree,omitempty"`

	// Forms lists sibling variety names, excluding the Pokémon itself.
	Forms []string `json:"forms"`
}

// HasEvolutionsTab reports whether there is anything to show under the
// evolutions tab.
func (d *DetailRecord) HasEvolutionsTab() bool {
	return len(d.Evolutions) > 1 || len(d.Forms) > 0
}

// Tab identifies a section of the detail view.
type Tab string

// Tab constants for the detail view.
const (
	TabStats      Tab = "stats"
	TabMoves      Tab = "moves"
	TabEvolutions Tab = "evolutions"
)

// Tabs returns the tabs available for the record, in display order.
func (d *DetailRecord) Tabs() []Tab {
	tabs := []Tab{TabStats, TabMoves}
	if d.HasEvolutionsTab() {
		tabs = append(tabs, TabEvolutions)
	}
	return tabs
}

var statLabels = map[string]string{
	"hp":              "HP",
	"special-attack":  "Sp. Atk",
	"special-defense": "Sp. Def",
}

// FormatStatName returns the display label for an API stat name.
func FormatStatName(name string) string {
	if label, ok := statLabels[name]; ok {
		return label
	}
	words := strings.Split(name, "-")
	for i, w := range words {
		words[i] = Title(w)
	}
	return strings.Join(words, " ")
}

// MaxStatBase is the base stat value drawn as a full bar.
const MaxStatBase = 200

// StatPercent returns the bar fill for a base stat, capped at 100.
func StatPercent(base int) int {
	return min(base*100/MaxStatBase, 100)
}

// DisplayName replaces hyphens with spaces.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}

// Title upper-cases the first letter of s.
func Title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatID renders a national dex number as "#025".
func FormatID(id int) string {
	return fmt.Sprintf("#%03d", id)
}
