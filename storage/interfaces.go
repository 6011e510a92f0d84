package storage

import (
	"context"

	"github.com/poiesic/frontdesk/core"
)

// SnapshotRepository keeps the last good payload of every upstream feed.
type SnapshotRepository interface {
	// SaveSnapshot stores a snapshot, replacing any previous one for the same feed.
	SaveSnapshot(ctx context.Context, snapshot *core.FeedSnapshot) error

	// LoadSnapshot returns the snapshot for a feed.
	// Returns ErrNotFound if none was saved.
	LoadSnapshot(ctx context.Context, feed string) (*core.FeedSnapshot, error)

	// ListSnapshots returns every stored snapshot ordered by feed name.
	ListSnapshots(ctx context.Context) ([]*core.FeedSnapshot, error)

	// DeleteSnapshot removes the snapshot for a feed.
	// Returns ErrNotFound if none was saved.
	DeleteSnapshot(ctx context.Context, feed string) error
}

// VectorRepository stores embedding vectors by key so that unchanged FAQ
// questions are not re-embedded after a restart.
type VectorRepository interface {
	// SaveVectors stores vectors under their keys.
	SaveVectors(ctx context.Context, vectors map[core.ID][]float32) error

	// LoadVectors returns the stored vectors for the given keys.
	// Missing keys are omitted from the result, not reported as errors.
	LoadVectors(ctx context.Context, keys ...core.ID) (map[core.ID][]float32, error)
}
