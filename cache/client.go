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


package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/fuzzy"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// AnswerPrefix namespaces cached answers so a reload can purge them.
const AnswerPrefix = "answer:"

// Client is a byte-oriented key/value cache with per-entry expiry.
type Client interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}

// AnswerKey derives the cache key for a question. Questions that normalize
// to the same text share an entry.
func AnswerKey(question string) string {
	id := core.IDFromContent(fuzzy.Normalize(question))
	return AnswerPrefix + strconv.FormatUint(uint64(id), 16)
}
