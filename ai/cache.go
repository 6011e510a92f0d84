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


package ai

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/poiesic/frontdesk/core"
)

// CachedEmbedder memoizes embeddings by content hash in an LRU cache.
// Questions repeat often in a chat front end, so the hit rate is high.
type CachedEmbedder struct {
	next   Embedder
	cache  *lru.Cache[core.ID, []float32]
	logger *slog.Logger
}

// NewCachedEmbedder wraps next with an LRU cache holding up to size vectors.
func NewCachedEmbedder(next Embedder, size int) (*CachedEmbedder, error) {
	if next == nil {
		return nil, ErrEmbedderRequired
	}
	if size <= 0 {
		size = DefaultConfig().CacheSize
	}
	cache, err := lru.New[core.ID, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding cache: %w", err)
	}
	return &CachedEmbedder{
		next:   next,
		cache:  cache,
		logger: slog.Default().With("component", "embedding-cache"),
	}, nil
}

// EmbedText returns a cached vector or embeds and caches text.
func (c *CachedEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	key := core.IDFromContent(text)
	if vec, ok := c.cache.Get(key); ok {
		return copyVector(vec), nil
	}
	vec, err := c.next.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, copyVector(vec))
	return vec, nil
}

// EmbedTexts embeds only the texts that are not cached, in one batch call.
func (c *CachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if vec, ok := c.cache.Get(core.IDFromContent(text)); ok {
			out[i] = copyVector(vec)
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}
	if len(missing) == 0 {
		return out, nil
	}

	c.logger.Debug("embedding cache miss", "requested", len(texts), "missing", len(missing))
	vecs, err := c.next.EmbedTexts(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(missing) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrEmbeddingCountMismatch, len(vecs), len(missing))
	}
	for j, vec := range vecs {
		out[missingIdx[j]] = vec
		c.cache.Add(core.IDFromContent(missing[j]), copyVector(vec))
	}
	return out, nil
}

// Len returns the number of cached vectors.
func (c *CachedEmbedder) Len() int {
	return c.cache.Len()
}

// Purge empties the cache.
func (c *CachedEmbedder) Purge() {
	c.cache.Purge()
}

func copyVector(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
