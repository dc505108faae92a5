package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/detail"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	API        pokedex.API
	Indexer    pokedex.Indexer
	Snapshots  pokedex.SnapshotService
	Aggregator *detail.Aggregator
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug   bool          `help:"Log API requests and index lookups to stderr"`
	APIURL  string        `name:"api-url" env:"POKEDEX_API_URL" default:"https://pokeapi.co/api/v2" help:"PokéAPI base URL"`
	Timeout time.Duration `default:"10s" help:"Timeout for each HTTP request"`
	Retries int           `default:"0" help:"Retries for failed HTTP requests"`

	Types     TypesCmd     `cmd:"" help:"List the elemental types"`
	Build     BuildCmd     `cmd:"" help:"Build the Pokémon catalog from the API"`
	Search    SearchCmd    `cmd:"" help:"Search and filter the catalog"`
	Show      ShowCmd      `cmd:"" help:"Show details for a Pokémon"`
	Snapshots SnapshotsCmd `cmd:"" help:"List or delete saved catalog snapshots"`
	Browse    BrowseCmd    `cmd:"" help:"Browse the catalog interactively"`
}

// TypesCmd is the "types" subcommand.
type TypesCmd struct{}

// FetchFlags tune catalog builds against the API.
type FetchFlags struct {
	Concurrency int     `short:"c" default:"16" help:"Concurrent fetch limit"`
	RPS         float64 `name:"rps" default:"0" help:"Requests per second per host (0 = unlimited)"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	FetchFlags `embed:""`

	Partial      bool `help:"Publish a catalog even when some fetches fail"`
	SpeciesLimit int  `default:"905" help:"Number of species to load"`
	Save         bool `short:"s" help:"Save the built catalog as a snapshot"`
}

// CatalogSource selects where commands get the catalog from.
type CatalogSource struct {
	FetchFlags `embed:""`

	Offline bool `help:"Use the latest saved snapshot instead of the API"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	CatalogSource `embed:""`

	Query string   `arg:"" optional:"" help:"Name or part of a name"`
	Types []string `short:"t" name:"type" help:"Filter by type (repeatable, at most two)"`
	Page  int      `short:"p" default:"1" help:"Result page"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Pokémon name"`
	Tab  string `default:"all" enum:"stats,moves,evolutions,all" help:"Section to show (stats, moves, evolutions, all)"`
}

// SnapshotsCmd is the "snapshots" subcommand.
type SnapshotsCmd struct {
	Delete string `help:"Delete the snapshot with this ID"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	CatalogSource `embed:""`
}
