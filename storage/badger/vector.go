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

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/storage"
)

// VectorRepository implements storage.VectorRepository for BadgerDB.
type VectorRepository struct {
	backend *Backend
}

var _ storage.VectorRepository = (*VectorRepository)(nil)

// NewVectorRepository creates a new VectorRepository.
func NewVectorRepository(backend *Backend) (storage.VectorRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &VectorRepository{backend: backend}, nil
}

// SaveVectors stores all vectors in one write transaction.
func (r *VectorRepository) SaveVectors(ctx context.Context, vectors map[core.ID][]float32) error {
	if len(vectors) == 0 {
		return nil
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for id, vec := range vectors {
			if err := tx.Set(makeVectorKey(id), storage.MarshalVector(vec)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// LoadVectors returns the stored vectors for the keys that exist.
func (r *VectorRepository) LoadVectors(ctx context.Context, keys ...core.ID) (map[core.ID][]float32, error) {
	out := make(map[core.ID][]float32, len(keys))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range keys {
			item, err := tx.Get(makeVectorKey(id))
			if err != nil {
				if isNotFound(err) {
					continue
				}
				return err
			}
			err = item.Value(func(val []byte) error {
				vec, err := storage.UnmarshalVector(val)
				if err != nil {
					return err
				}
				out[id] = vec
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return out, nil
}
