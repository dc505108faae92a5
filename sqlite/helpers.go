package sqlite

import (
	"fmt"
	"time"

	"github.com/fwojciec/pokedex"
)

// timeLayout is the stored form of timestamps. Values are UTC with second
// precision, so text order matches chronological order.
const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(timeLayout)
}

func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", column, value, err)
	}
	return t, nil
}

// pageClause returns the LIMIT/OFFSET tail for a snapshot filter.
// SQLite only accepts OFFSET after LIMIT, so an offset without a limit
// uses LIMIT -1 (no limit).
func pageClause(filter pokedex.SnapshotFilter) (string, []any) {
	switch {
	case filter.Limit > 0 && filter.Offset > 0:
		return " LIMIT ? OFFSET ?", []any{filter.Limit, filter.Offset}
	case filter.Limit > 0:
		return " LIMIT ?", []any{filter.Limit}
	case filter.Offset > 0:
		return " LIMIT -1 OFFSET ?", []any{filter.Offset}
	default:
		return "", nil
	}
}
