// Package pokedex provides a terminal Pokémon browser backed by the public
// PokéAPI. It builds a flat catalog of every Pokémon form, filters it by
// elemental type and name, suggests corrections for misspelled searches,
// and aggregates per-Pokémon detail on demand.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, levenshtein/).
package pokedex
