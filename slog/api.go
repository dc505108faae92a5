// Package slog provides logging decorators for pokedex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pokedex"
)

// Ensure LoggingAPI implements pokedex.API.
var _ pokedex.API = (*LoggingAPI)(nil)

// LoggingAPI wraps an API with debug logging of every request.
type LoggingAPI struct {
	next   pokedex.API
	logger *slog.Logger
}

// NewLoggingAPI creates a new LoggingAPI.
func NewLoggingAPI(next pokedex.API, logger *slog.Logger) *LoggingAPI {
	return &LoggingAPI{next: next, logger: logger}
}

// ListSpecies delegates to the wrapped API and logs the operation.
func (a *LoggingAPI) ListSpecies(ctx context.Context, limit int) (refs []pokedex.NamedResource, err error) {
	defer func(begin time.Time) {
		a.logger.Info("list species",
			"limit", limit,
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.ListSpecies(ctx, limit)
}

// FetchSpecies delegates to the wrapped API and logs the operation.
func (a *LoggingAPI) FetchSpecies(ctx context.Context, ref string) (s *pokedex.Species, err error) {
	defer func(begin time.Time) {
		var varieties int
		if s != nil {
			varieties = len(s.Varieties)
		}
		a.logger.Info("fetch species",
			"ref", ref,
			"varieties", varieties,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.FetchSpecies(ctx, ref)
}

// FetchPokemon delegates to the wrapped API and logs the operation.
func (a *LoggingAPI) FetchPokemon(ctx context.Context, ref string) (p *pokedex.Pokemon, err error) {
	defer func(begin time.Time) {
		a.logger.Info("fetch pokemon",
			"ref", ref,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.FetchPokemon(ctx, ref)
}

// FetchEvolutionChain delegates to the wrapped API and logs the operation.
func (a *LoggingAPI) FetchEvolutionChain(ctx context.Context, ref string) (c *pokedex.EvolutionChain, err error) {
	defer func(begin time.Time) {
		a.logger.Info("fetch evolution chain",
			"ref", ref,
			"branches", c.BranchCount(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.FetchEvolutionChain(ctx, ref)
}

// ListTypes delegates to the wrapped API and logs the operation.
func (a *LoggingAPI) ListTypes(ctx context.Context) (types []string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("list types",
			"count", len(types),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.ListTypes(ctx)
}
