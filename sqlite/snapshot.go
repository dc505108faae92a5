package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pokedex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pokedex.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements pokedex.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// SaveSnapshot stores the snapshot and its entries in one transaction.
func (s *SnapshotService) SaveSnapshot(ctx context.Context, snap *pokedex.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.New().String()
	createdAt := time.Now().UTC().Truncate(time.Second)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, content_hash, entry_count, created_at)
		VALUES (?, ?, ?, ?)
	`, id, snap.ContentHash, len(snap.Entries), formatTime(createdAt)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_entries (snapshot_id, position, name, url, types)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range snap.Entries {
		if _, err := stmt.ExecContext(ctx, id, i, e.Name, e.URL, strings.Join(e.Types, ",")); err != nil {
			return fmt.Errorf("insert entry %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	snap.ID = id
	snap.CreatedAt = createdAt
	snap.EntryCount = len(snap.Entries)
	return nil
}

// FindSnapshotByID retrieves a snapshot and its entries.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*pokedex.Snapshot, error) {
	snaps, err := s.FindSnapshots(ctx, pokedex.SnapshotFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, pokedex.Errorf(pokedex.ENOTFOUND, "snapshot not found")
	}
	return s.withEntries(ctx, snaps[0])
}

// LatestSnapshot retrieves the most recently saved snapshot and its entries.
func (s *SnapshotService) LatestSnapshot(ctx context.Context) (*pokedex.Snapshot, error) {
	snaps, err := s.FindSnapshots(ctx, pokedex.SnapshotFilter{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, pokedex.Errorf(pokedex.ENOTFOUND, "no snapshot saved")
	}
	return s.withEntries(ctx, snaps[0])
}

// FindSnapshots retrieves snapshot metadata matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter pokedex.SnapshotFilter) ([]*pokedex.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, content_hash, entry_count, created_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	clause, pageArgs := pageClause(filter)
	query.WriteString(clause)
	args = append(args, pageArgs...)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*pokedex.Snapshot
	for rows.Next() {
		var snap pokedex.Snapshot
		var createdAt string

		if err := rows.Scan(&snap.ID, &snap.ContentHash, &snap.EntryCount, &createdAt); err != nil {
			return nil, err
		}
		if snap.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}

// DeleteSnapshot removes a snapshot. Entries are removed by cascade.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pokedex.Errorf(pokedex.ENOTFOUND, "snapshot not found")
	}

	return nil
}

// withEntries loads the entries of snap in their saved order.
func (s *SnapshotService) withEntries(ctx context.Context, snap *pokedex.Snapshot) (*pokedex.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, url, types
		FROM snapshot_entries
		WHERE snapshot_id = ?
		ORDER BY position
	`, snap.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap.Entries = make([]pokedex.Entry, 0, snap.EntryCount)
	for rows.Next() {
		var e pokedex.Entry
		var types string
		if err := rows.Scan(&e.Name, &e.URL, &types); err != nil {
			return nil, err
		}
		e.Types = splitTypes(types)
		snap.Entries = append(snap.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(snap.Entries) != snap.EntryCount {
		return nil, fmt.Errorf("snapshot %s: expected %d entries, found %d", snap.ID, snap.EntryCount, len(snap.Entries))
	}

	return snap, nil
}

func splitTypes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
