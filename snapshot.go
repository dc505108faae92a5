package pokedex

import (
	"context"
	"time"
)

// Snapshot is a persisted copy of a built catalog.
type Snapshot struct {
	ID          string    `json:"id"`
	ContentHash string    `json:"contentHash"`
	EntryCount  int       `json:"entryCount"`
	Entries     []Entry   `json:"entries,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if len(s.Entries) == 0 {
		return Errorf(EINVALID, "snapshot entries required")
	}
	for i := range s.Entries {
		if err := s.Entries[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Catalog rebuilds a catalog from the snapshot entries.
func (s *Snapshot) Catalog() (*Catalog, error) {
	return NewCatalog(s.Entries)
}

// SnapshotService represents a service for managing catalog snapshots.
type SnapshotService interface {
	// SaveSnapshot stores a new snapshot, assigning its ID and CreatedAt.
	SaveSnapshot(ctx context.Context, snap *Snapshot) error

	// FindSnapshotByID retrieves a snapshot including its entries.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// LatestSnapshot retrieves the most recent snapshot including its entries.
	// Returns ENOTFOUND if no snapshot has been saved.
	LatestSnapshot(ctx context.Context) (*Snapshot, error)

	// FindSnapshots retrieves snapshot metadata, newest first.
	// Entries are not loaded.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot and its entries.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
