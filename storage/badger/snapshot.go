// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/storage"
)

var errKeyNotFound = badger.ErrKeyNotFound

// SnapshotRepository implements storage.SnapshotRepository for BadgerDB.
type SnapshotRepository struct {
	backend *Backend
}

var _ storage.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(backend *Backend) (storage.SnapshotRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &SnapshotRepository{backend: backend}, nil
}

// SaveSnapshot persists the snapshot for a feed, stamping FetchedAt if unset.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *core.FeedSnapshot) error {
	if snapshot == nil || strings.TrimSpace(snapshot.Feed) == "" {
		return storage.ErrEmptyFeedName
	}
	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = time.Now().UTC()
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotKey(snapshot.Feed), storage.MarshalSnapshot(snapshot)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadSnapshot retrieves the snapshot for a feed.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context, feed string) (*core.FeedSnapshot, error) {
	var snapshot *core.FeedSnapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey(feed))
		if err != nil {
			if isNotFound(err) {
				return fmt.Errorf("%w: snapshot %q", storage.ErrNotFound, feed)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			snapshot, unmarshalErr = storage.UnmarshalSnapshot(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ListSnapshots returns all snapshots in key order, which is feed-name order.
func (r *SnapshotRepository) ListSnapshots(ctx context.Context) ([]*core.FeedSnapshot, error) {
	var out []*core.FeedSnapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(snapshotPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := iter.Item().Value(func(val []byte) error {
				snapshot, err := storage.UnmarshalSnapshot(val)
				if err != nil {
					return err
				}
				out = append(out, snapshot)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	return out, err
}

// DeleteSnapshot removes the snapshot for a feed.
func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, feed string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSnapshotKey(feed)
		if _, err := tx.Get(key); err != nil {
			if isNotFound(err) {
				return fmt.Errorf("%w: snapshot %q", storage.ErrNotFound, feed)
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
