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


package frontdesk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/frontdesk/ai"
	"github.com/poiesic/frontdesk/ai/openai"
	"github.com/poiesic/frontdesk/answer"
	"github.com/poiesic/frontdesk/cache"
	"github.com/poiesic/frontdesk/catalog"
	"github.com/poiesic/frontdesk/config"
	"github.com/poiesic/frontdesk/feed"
	"github.com/poiesic/frontdesk/ingestion"
	"github.com/poiesic/frontdesk/intent"
	"github.com/poiesic/frontdesk/search"
	"github.com/poiesic/frontdesk/storage/badger"
)

// Service answers questions over the location, job and FAQ records.
type Service struct {
	cfg        *config.Config
	backend    *badger.Backend
	provider   ai.AIProvider
	pipeline   *ingestion.Pipeline
	store      *catalog.Store
	classifier *intent.Classifier
	locations  *search.LocationMatcher
	jobs       *search.JobMatcher
	faq        *search.FAQMatcher
	router     *answer.Router
	cache      cache.Client
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	embedder ai.Embedder
	fetcher  feed.Fetcher
	cache    cache.Client
	noCache  bool
	logger   *slog.Logger
}

// WithEmbedder replaces the OpenAI-compatible embedder built from config.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(o *serviceOptions) {
		o.embedder = embedder
	}
}

// WithFetcher replaces the HTTP feed client built from config.
func WithFetcher(fetcher feed.Fetcher) Option {
	return func(o *serviceOptions) {
		o.fetcher = fetcher
	}
}

// WithCache replaces the answer cache built from config.
func WithCache(client cache.Client) Option {
	return func(o *serviceOptions) {
		o.cache = client
	}
}

// WithoutCache disables answer caching regardless of config.
func WithoutCache() Option {
	return func(o *serviceOptions) {
		o.noCache = true
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// NewFetcher builds the feed client described by cfg.
func NewFetcher(cfg config.FeedsConfig) *feed.HTTPClient {
	retry := feed.DefaultRetryConfig()
	if cfg.RetryAttempts > 0 {
		retry.MaxAttempts = cfg.RetryAttempts
	}
	if cfg.RetryBaseDelay > 0 {
		retry.BaseDelay = cfg.RetryBaseDelay
	}
	return feed.NewHTTPClient(
		feed.WithTimeout(cfg.Timeout),
		feed.WithUserAgent(cfg.UserAgent),
		feed.WithRetryConfig(retry),
	)
}

// New wires a Service from cfg. Records are not loaded until Reload is called.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options := &serviceOptions{}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = slog.Default().With("component", "frontdesk")
	}

	s := &Service{cfg: cfg, logger: logger}
	if err := s.wire(options); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Service) wire(options *serviceOptions) error {
	cfg := s.cfg

	backend, err := badger.OpenBackend(cfg.Storage.Path, cfg.Storage.InMemory())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	s.backend = backend
	snapshots, err := badger.NewSnapshotRepository(backend)
	if err != nil {
		return err
	}
	vectors, err := badger.NewVectorRepository(backend)
	if err != nil {
		return err
	}

	embedder := options.embedder
	if embedder == nil {
		aiCfg := ai.NewConfig(
			ai.WithEmbeddingHost(cfg.Embedding.Host),
			ai.WithEmbeddingModel(cfg.Embedding.Model),
			ai.WithAPIKey(cfg.Embedding.APIKey),
			ai.WithCacheSize(cfg.Embedding.CacheSize),
		)
		provider, err := openai.NewProvider(aiCfg)
		if err != nil {
			return fmt.Errorf("create embedding provider: %w", err)
		}
		s.provider = provider
		embedder = provider.Embedder()
	}
	if cfg.Embedding.CacheSize > 0 {
		cached, err := ai.NewCachedEmbedder(embedder, cfg.Embedding.CacheSize)
		if err != nil {
			return err
		}
		embedder = cached
	}

	fetcher := options.fetcher
	if fetcher == nil {
		fetcher = NewFetcher(cfg.Feeds)
	}
	locSource, err := feed.NewLocationSource(cfg.Feeds.LocationsURL, fetcher, snapshots)
	if err != nil {
		return err
	}
	jobSource, err := feed.NewJobSource(cfg.Feeds.JobsURL, fetcher, snapshots)
	if err != nil {
		return err
	}
	faqSource := feed.NewFAQDirectory(cfg.FAQ.Directory, nil)

	pipeOpts := []ingestion.Option{
		ingestion.WithVectorRepository(vectors),
		ingestion.WithModel(cfg.Embedding.Model),
		ingestion.WithBatchSize(cfg.Embedding.BatchSize),
		ingestion.WithRetry(cfg.Embedding.MaxAttempts, cfg.Embedding.BaseDelay),
	}
	if cfg.Embedding.PoolSize > 0 {
		pipeOpts = append(pipeOpts, ingestion.WithPoolSize(cfg.Embedding.PoolSize))
	}
	s.pipeline, err = ingestion.NewPipeline(embedder, pipeOpts...)
	if err != nil {
		return err
	}

	s.store, err = catalog.NewStore(locSource, jobSource, faqSource, s.pipeline,
		catalog.WithJobTTL(cfg.Feeds.JobTTL),
		catalog.WithJobRetryAfter(cfg.Feeds.JobRetryAfter),
		catalog.WithJobFetchLimit(cfg.Feeds.JobFetchLimit))
	if err != nil {
		return err
	}

	s.classifier = intent.NewClassifier(cfg.VocabularyOrDefault())
	m := cfg.Matching
	matchOpts := []search.Option{
		search.WithLocationScoring(m.Location),
		search.WithIgnoredAliases(m.IgnoredAliases...),
		search.WithLocalityThreshold(m.LocalityThreshold),
		search.WithDisplayLimit(m.DisplayLimit),
		search.WithFAQThreshold(m.FAQThreshold),
		search.WithGuardKeywords(m.GuardKeywords...),
	}
	if m.PoolSize > 0 {
		matchOpts = append(matchOpts, search.WithPoolSize(m.PoolSize))
	}
	if s.locations, err = search.NewLocationMatcher(s.store, s.classifier, matchOpts...); err != nil {
		return err
	}
	if s.jobs, err = search.NewJobMatcher(s.store, s.classifier, matchOpts...); err != nil {
		return err
	}
	if s.faq, err = search.NewFAQMatcher(s.store, embedder, matchOpts...); err != nil {
		return err
	}
	s.router, err = answer.NewRouter(s.classifier, s.locations, s.jobs, s.faq,
		answer.WithSuggestions(m.Suggestions, m.SuggestionMinScore))
	if err != nil {
		return err
	}

	switch {
	case options.noCache:
	case options.cache != nil:
		s.cache = options.cache
	default:
		s.cache, err = newCache(cfg.Cache)
		if err != nil {
			return err
		}
	}
	return nil
}

func newCache(cfg config.CacheConfig) (cache.Client, error) {
	switch cfg.Driver {
	case config.CacheRedis:
		client, err := cache.NewRedisClient(cache.RedisConfig{
			URL:      cfg.Redis.URL,
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("connect answer cache: %w", err)
		}
		return client, nil
	case config.CacheMemory:
		return cache.NewMemoryClient(cfg.MaxEntries, cfg.TTL), nil
	default:
		return nil, nil
	}
}

// Reload refreshes every collection and purges cached answers.
func (s *Service) Reload(ctx context.Context) error {
	if err := s.store.Refresh(ctx); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.DeleteByPrefix(ctx, cache.AnswerPrefix); err != nil {
			s.logger.Warn("failed to purge answer cache", "err", err)
		}
	}
	stats := s.store.Stats()
	s.logger.Info("records loaded",
		"locations", stats.Locations,
		"faq_pairs", stats.FAQPairs,
		"localities", stats.Localities,
		"job_postings", stats.JobPostings)
	return nil
}

// Ask answers question, serving repeated questions from the answer cache.
func (s *Service) Ask(ctx context.Context, question string) answer.Response {
	if s.cache == nil {
		return s.router.Route(ctx, question)
	}

	key := cache.AnswerKey(question)
	data, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var resp answer.Response
		if err := json.Unmarshal(data, &resp); err == nil {
			return resp
		}
		s.logger.Warn("discarding undecodable cached answer", "key", key)
	case !errors.Is(err, cache.ErrCacheMiss):
		s.logger.Warn("answer cache unavailable", "err", err)
	}

	resp := s.router.Route(ctx, question)
	if resp.Type == answer.TypeError || resp.Degraded || ctx.Err() != nil {
		return resp
	}
	data, err = json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to encode answer", "err", err)
		return resp
	}
	if err := s.cache.Set(ctx, key, data, s.cfg.Cache.TTL); err != nil {
		s.logger.Warn("failed to cache answer", "err", err)
	}
	return resp
}

// AskWithMonitor answers question without the cache, reporting routing
// decisions to routes and matcher scores to matches. Either may be nil.
func (s *Service) AskWithMonitor(ctx context.Context, question string, routes answer.RouteMonitor, matches search.MatchMonitor) answer.Response {
	if matches != nil {
		ctx = search.ContextWithMonitor(ctx, matches)
	}
	if routes == nil {
		return s.router.Route(ctx, question)
	}
	return s.router.RouteWithMonitor(ctx, question, routes)
}

// Stats reports the sizes of the loaded collections.
func (s *Service) Stats() catalog.Stats {
	return s.store.Stats()
}

// Config returns the configuration the service was built with.
func (s *Service) Config() *config.Config {
	return s.cfg
}

// Close releases worker pools, the cache, the embedding provider and storage.
func (s *Service) Close() error {
	if s.locations != nil {
		s.locations.Release()
	}
	if s.pipeline != nil {
		s.pipeline.Release()
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Error("error closing answer cache", "err", err)
		}
	}
	if s.provider != nil {
		if err := s.provider.Close(); err != nil {
			s.logger.Error("error closing AI provider", "err", err)
		}
	}
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			s.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}
