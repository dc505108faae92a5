package mock

import (
	"context"

	"github.com/fwojciec/pokedex"
)

var _ pokedex.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of pokedex.SnapshotService.
type SnapshotService struct {
	SaveSnapshotFn     func(ctx context.Context, snap *pokedex.Snapshot) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*pokedex.Snapshot, error)
	LatestSnapshotFn   func(ctx context.Context) (*pokedex.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter pokedex.SnapshotFilter) ([]*pokedex.Snapshot, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) SaveSnapshot(ctx context.Context, snap *pokedex.Snapshot) error {
	return s.SaveSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*pokedex.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) LatestSnapshot(ctx context.Context) (*pokedex.Snapshot, error) {
	return s.LatestSnapshotFn(ctx)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter pokedex.SnapshotFilter) ([]*pokedex.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
