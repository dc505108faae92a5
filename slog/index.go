package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pokedex"
)

var (
	_ pokedex.SearchIndex = (*LoggingIndex)(nil)
	_ pokedex.Indexer     = (*LoggingIndexer)(nil)
)

// LoggingIndex wraps a SearchIndex with debug logging of suggestions.
type LoggingIndex struct {
	next   pokedex.SearchIndex
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next pokedex.SearchIndex, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Suggest delegates to the wrapped index and logs the outcome.
func (i *LoggingIndex) Suggest(query string) (string, bool) {
	begin := time.Now()
	name, ok := i.next.Suggest(query)
	suggestion := name
	if !ok {
		suggestion = "(none)"
	}
	i.logger.Info("suggest",
		"query", query,
		"suggestion", suggestion,
		"duration", time.Since(begin),
	)
	return name, ok
}

// LoggingIndexer wraps an Indexer, logging each build and decorating the
// resulting index.
type LoggingIndexer struct {
	next   pokedex.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next pokedex.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// BuildIndex delegates to the wrapped indexer and logs the catalog size.
func (i *LoggingIndexer) BuildIndex(c *pokedex.Catalog) pokedex.SearchIndex {
	begin := time.Now()
	idx := i.next.BuildIndex(c)
	i.logger.Info("build index",
		"count", c.Len(),
		"duration", time.Since(begin),
	)
	return NewLoggingIndex(idx, i.logger)
}
