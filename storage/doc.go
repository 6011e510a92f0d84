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


// Package storage provides the storage abstraction layer for frontdesk.
//
// The working set (locations, job postings, FAQ pairs) lives in process memory.
// Storage backs it with two small repositories:
//
//   - SnapshotRepository: the last good raw payload of each upstream feed,
//     parsed again when a later fetch fails
//   - VectorRepository: FAQ question embeddings keyed by model and text
//
// # Constructor Return Type Pattern
//
// Public constructors return interface types:
//
//	repo, err := badger.NewSnapshotRepository(backend)  // returns storage.SnapshotRepository
//
// # Usage
//
//	backend, err := badger.OpenBackend("", true) // in-memory
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
