package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/detail"
)

// statBarWidth is the width of a full stat bar in characters.
const statBarWidth = 20

// renderPage prints one page of filter results. Cards, when given, hold
// one entry per row in the same order.
func renderPage(w io.Writer, s pokedex.FilterState, res pokedex.Result, cards []detail.Card) {
	if len(s.SelectedTypes) > 0 || s.SearchTerm != "" {
		var parts []string
		if len(s.SelectedTypes) > 0 {
			parts = append(parts, "Types: "+strings.Join(s.SelectedTypes, ", "))
		}
		if s.SearchTerm != "" {
			parts = append(parts, fmt.Sprintf("Search: %q", s.SearchTerm))
		}
		fmt.Fprintln(w, strings.Join(parts, "  |  "))
	}

	if res.Total == 0 {
		fmt.Fprintln(w, "No Pokémon found.")
		if res.Suggestion != "" {
			fmt.Fprintf(w, "Did you mean: %s?\n", res.Suggestion)
		}
		return
	}

	fmt.Fprintf(w, "Page %d of %d (%d results)\n", res.Page, res.TotalPages, res.Total)
	for i, e := range res.Entries {
		types := strings.Join(e.Types, " / ")
		if i >= len(cards) {
			fmt.Fprintf(w, "  %-28s %s\n", e.Name, types)
			continue
		}
		fmt.Fprintf(w, "  %-28s %-20s %s\n", e.Name, types, cardSummary(cards[i]))
	}
}

func cardSummary(c detail.Card) string {
	if !c.Resolved {
		return "(unavailable)"
	}
	sprite := c.Sprite
	if sprite == "" {
		sprite = "(no sprite)"
	}
	if c.Classification != pokedex.Normal {
		sprite += fmt.Sprintf("  [%s]", c.Classification)
	}
	return sprite
}

// renderDetail prints a detail record. Miniatures, when given, preview the
// evolutions and forms.
func renderDetail(w io.Writer, rec *pokedex.DetailRecord, tab string, minis []detail.Miniature) {
	p := rec.Pokemon

	header := fmt.Sprintf("%s %s", pokedex.FormatID(p.ID), pokedex.Title(pokedex.DisplayName(p.Name)))
	if rec.Classification != pokedex.Normal {
		header += fmt.Sprintf("  [%s]", rec.Classification)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "Types: %s\n", strings.Join(p.Types, " / "))
	fmt.Fprintf(w, "Height: %.1f m  Weight: %.1f kg\n", float64(p.Height)/10, float64(p.Weight)/10)
	if p.Artwork != "" {
		fmt.Fprintf(w, "Artwork: %s\n", p.Artwork)
	}

	show := func(t pokedex.Tab) bool { return tab == "all" || tab == string(t) }

	if show(pokedex.TabStats) {
		fmt.Fprintln(w, "\nStats")
		for _, s := range p.Stats {
			fill := pokedex.StatPercent(s.Base) * statBarWidth / 100
			bar := strings.Repeat("█", fill) + strings.Repeat("░", statBarWidth-fill)
			fmt.Fprintf(w, "  %-8s %3d  %s\n", pokedex.FormatStatName(s.Name), s.Base, bar)
		}
	}

	if show(pokedex.TabMoves) {
		fmt.Fprintf(w, "\nMoves (%d)\n", len(p.Moves))
		for _, m := range p.Moves {
			fmt.Fprintf(w, "  %s\n", pokedex.DisplayName(m))
		}
	}

	if show(pokedex.TabEvolutions) {
		if !rec.HasEvolutionsTab() {
			if tab != "all" {
				fmt.Fprintln(w, "\nNo evolutions or forms.")
			}
			return
		}
		sprites := make(map[string]string, len(minis))
		for _, m := range minis {
			if m.Resolved {
				sprites[m.Name] = m.Sprite
			}
		}
		if len(rec.Evolutions) > 1 {
			fmt.Fprintln(w, "\nEvolutions")
			fmt.Fprintf(w, "  %s\n", strings.Join(rec.Evolutions, " → "))
			renderMiniatures(w, rec.Evolutions, sprites)
		}
		if len(rec.Forms) > 0 {
			fmt.Fprintln(w, "\nForms")
			renderMiniatures(w, rec.Forms, sprites)
		}
	}
}

func renderMiniatures(w io.Writer, names []string, sprites map[string]string) {
	for _, n := range names {
		sprite, ok := sprites[n]
		if !ok {
			sprite = "(unavailable)"
		}
		fmt.Fprintf(w, "  %-28s %s\n", n, sprite)
	}
}
