package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/frontdesk/ai"
)

// batchEmbedder embeds one batch of texts with retries.
type batchEmbedder struct {
	embedder    ai.Embedder
	maxAttempts int
	baseDelay   time.Duration
	logger      *slog.Logger
}

// embed returns one unit vector per text.
func (b *batchEmbedder) embed(ctx context.Context, texts []string) ([][]float32, error) {
	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		out, err := b.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return err
		}
		if len(out) != len(texts) {
			return fmt.Errorf("%w: expected %d, received %d", ai.ErrEmbeddingCountMismatch, len(texts), len(out))
		}
		vectors = out
		return nil
	}, b.maxAttempts, b.baseDelay)
	if err != nil {
		b.logger.Error("error generating faq embeddings", "texts", len(texts), "err", err)
		return nil, err
	}

	for _, v := range vectors {
		ai.NormalizeVector(v)
	}
	return vectors, nil
}
