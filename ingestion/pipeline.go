package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/frontdesk/ai"
	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/storage"
)

const (
	defaultBatchSize   = 32
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
)

// Pipeline turns FAQ pairs into an FAQ index.
type Pipeline struct {
	embedder    ai.Embedder
	vectors     storage.VectorRepository
	pool        *ants.Pool
	batchSize   int
	model       string
	maxAttempts int
	baseDelay   time.Duration
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many questions are sent per embedding request.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		p.batchSize = size
		return nil
	}
}

// WithRetry sets the attempts and base backoff delay per batch.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxAttempts = maxAttempts
		p.baseDelay = baseDelay
		return nil
	}
}

// WithVectorRepository enables reuse of previously computed vectors.
func WithVectorRepository(repo storage.VectorRepository) Option {
	return func(p *Pipeline) error {
		p.vectors = repo
		return nil
	}
}

// WithModel sets the model name that scopes stored vectors.
func WithModel(model string) Option {
	return func(p *Pipeline) error {
		p.model = model
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new FAQ index pipeline.
func NewPipeline(embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		embedder:    embedder,
		pool:        pool,
		batchSize:   defaultBatchSize,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		logger:      slog.Default().With("component", "faq-pipeline"),
	}
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	return p, nil
}

// BuildIndex embeds the questions of pairs and returns the index.
// Invalid pairs and repeated questions are dropped. Any batch that still
// fails after its retries fails the whole build.
func (p *Pipeline) BuildIndex(ctx context.Context, pairs []core.FAQPair) (*core.FAQIndex, error) {
	accepted := p.dedupe(pairs)
	index := &core.FAQIndex{
		Pairs:   accepted,
		Vectors: make([][]float32, len(accepted)),
	}
	if len(accepted) == 0 {
		return index, nil
	}

	keys := make([]core.ID, len(accepted))
	for i, pair := range accepted {
		keys[i] = core.VectorKey(p.model, pair.Question)
	}

	missing := p.reuseStored(ctx, keys, index.Vectors)
	if len(missing) > 0 {
		if err := p.embedMissing(ctx, accepted, missing, index.Vectors); err != nil {
			return nil, err
		}
		p.storeNew(ctx, keys, missing, index.Vectors)
	}

	if err := core.ValidateFAQIndex(index); err != nil {
		return nil, err
	}
	p.logger.Info("faq index built", "pairs", len(accepted), "embedded", len(missing), "reused", len(accepted)-len(missing))
	return index, nil
}

func (p *Pipeline) dedupe(pairs []core.FAQPair) []core.FAQPair {
	seen := make(map[core.ID]bool, len(pairs))
	out := make([]core.FAQPair, 0, len(pairs))
	for _, pair := range pairs {
		if err := core.ValidateFAQPair(pair); err != nil {
			p.logger.Warn("skipping faq pair", "question", pair.Question, "err", err)
			continue
		}
		if seen[pair.ID] {
			continue
		}
		seen[pair.ID] = true
		out = append(out, pair)
	}
	return out
}

// reuseStored fills vectors from the repository and returns the indexes
// that still need embedding.
func (p *Pipeline) reuseStored(ctx context.Context, keys []core.ID, vectors [][]float32) []int {
	var stored map[core.ID][]float32
	if p.vectors != nil {
		var err error
		stored, err = p.vectors.LoadVectors(ctx, keys...)
		if err != nil {
			p.logger.Warn("failed to load stored faq vectors", "err", err)
			stored = nil
		}
	}

	missing := make([]int, 0, len(keys))
	for i, key := range keys {
		if v, ok := stored[key]; ok && len(v) > 0 {
			vectors[i] = v
			continue
		}
		missing = append(missing, i)
	}
	return missing
}

func (p *Pipeline) embedMissing(ctx context.Context, pairs []core.FAQPair, missing []int, vectors [][]float32) error {
	be := &batchEmbedder{
		embedder:    p.embedder,
		maxAttempts: p.maxAttempts,
		baseDelay:   p.baseDelay,
		logger:      p.logger,
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(missing); start += p.batchSize {
		end := min(start+p.batchSize, len(missing))
		batch := missing[start:end]

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			texts := make([]string, len(batch))
			for i, idx := range batch {
				texts[i] = pairs[idx].Question
			}
			out, err := be.embed(ctx, texts)
			if err != nil {
				setErr(err)
				return
			}
			// Each batch owns distinct indexes.
			for i, idx := range batch {
				vectors[idx] = out[i]
			}
		})
		if err != nil {
			wg.Done()
			setErr(fmt.Errorf("failed to submit embedding batch: %w", err))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return fmt.Errorf("failed to embed faq questions: %w", firstErr)
	}
	return nil
}

func (p *Pipeline) storeNew(ctx context.Context, keys []core.ID, missing []int, vectors [][]float32) {
	if p.vectors == nil {
		return
	}
	fresh := make(map[core.ID][]float32, len(missing))
	for _, idx := range missing {
		fresh[keys[idx]] = vectors[idx]
	}
	if err := p.vectors.SaveVectors(ctx, fresh); err != nil {
		p.logger.Warn("failed to store faq vectors", "err", err)
	}
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
