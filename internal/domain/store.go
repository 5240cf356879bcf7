package domain

import "context"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

// SnapshotStore keeps the last accepted search request of a validator instance.
type SnapshotStore interface {
	// Save replaces the stored snapshot with req.
	Save(ctx context.Context, req SearchRequest) error

	// Load returns the stored snapshot. ok is false when nothing has been saved yet.
	Load(ctx context.Context) (req SearchRequest, ok bool, err error)
}
