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


package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/poiesic/frontdesk/core"
)

const (
	// DefaultJobTTL is how long a fetched job-locality map is reused.
	DefaultJobTTL = 6 * time.Hour
	// DefaultJobRetryAfter is how long a failed job fetch is remembered
	// before the next caller tries upstream again.
	DefaultJobRetryAfter = time.Minute
	// DefaultJobFetchLimit bounds one shared job fetch.
	DefaultJobFetchLimit = 20 * time.Second
)

// snapshot is one published generation of locations and FAQ data.
type snapshot struct {
	locations []*core.Location
	faq       *core.FAQIndex
	loadedAt  time.Time
}

// jobEntry is the cached job-locality map. fetchedAt is the last successful
// fetch; expiresAt moves forward on failures too so an outage is retried at
// most once per retry interval.
type jobEntry struct {
	localities map[string][]string
	fetchedAt  time.Time
	expiresAt  time.Time
}

// Stats summarizes the published collections.
type Stats struct {
	Locations     int       `json:"locations"`
	FAQPairs      int       `json:"faq_pairs"`
	Localities    int       `json:"localities"`
	JobPostings   int       `json:"job_postings"`
	LoadedAt      time.Time `json:"loaded_at"`
	JobsFetchedAt time.Time `json:"jobs_fetched_at"`
}

// Store holds the in-memory collections the matchers read. Readers always
// see a complete generation; refreshes publish by pointer swap.
type Store struct {
	locationSource LocationSource
	jobSource      JobSource
	faqSource      FAQSource
	indexBuilder   IndexBuilder

	current atomic.Pointer[snapshot]
	jobs    atomic.Pointer[jobEntry]
	group   singleflight.Group

	jobTTL        time.Duration
	jobRetryAfter time.Duration
	jobFetchLimit time.Duration
	now           func() time.Time
	logger        *slog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithJobTTL sets how long the job-locality map is cached.
func WithJobTTL(ttl time.Duration) Option {
	return func(s *Store) error {
		if ttl > 0 {
			s.jobTTL = ttl
		}
		return nil
	}
}

// WithJobRetryAfter sets how long a failed job fetch is served from the
// previous map before upstream is tried again.
func WithJobRetryAfter(d time.Duration) Option {
	return func(s *Store) error {
		if d > 0 {
			s.jobRetryAfter = d
		}
		return nil
	}
}

// WithJobFetchLimit bounds a single shared job fetch.
func WithJobFetchLimit(d time.Duration) Option {
	return func(s *Store) error {
		if d > 0 {
			s.jobFetchLimit = d
		}
		return nil
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now != nil {
			s.now = now
		}
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// NewStore creates an empty store. Call Refresh to populate it.
func NewStore(locations LocationSource, jobs JobSource, faq FAQSource, builder IndexBuilder, opts ...Option) (*Store, error) {
	if locations == nil {
		return nil, ErrLocationSourceRequired
	}
	if jobs == nil {
		return nil, ErrJobSourceRequired
	}
	if faq == nil {
		return nil, ErrFAQSourceRequired
	}
	if builder == nil {
		return nil, ErrIndexBuilderRequired
	}

	s := &Store{
		locationSource: locations,
		jobSource:      jobs,
		faqSource:      faq,
		indexBuilder:   builder,
		jobTTL:         DefaultJobTTL,
		jobRetryAfter:  DefaultJobRetryAfter,
		jobFetchLimit:  DefaultJobFetchLimit,
		now:            time.Now,
		logger:         slog.Default().With("component", "catalog"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.current.Store(&snapshot{faq: &core.FAQIndex{}})
	return s, nil
}

// Locations returns the published locations. The slice must not be modified.
func (s *Store) Locations() []*core.Location {
	return s.current.Load().locations
}

// FAQIndex returns the published FAQ index; never nil.
func (s *Store) FAQIndex() *core.FAQIndex {
	return s.current.Load().faq
}

// JobLocalityMap returns locality -> posting URLs, refetching once the cached
// map is older than the TTL. Concurrent expired calls share one fetch. A
// failed fetch keeps serving the previous map until the retry interval ends.
func (s *Store) JobLocalityMap(ctx context.Context) map[string][]string {
	if entry := s.jobs.Load(); entry != nil && s.now().Before(entry.expiresAt) {
		return entry.localities
	}
	return s.refreshJobs(ctx)
}

// RefreshJobs refetches the job-locality map regardless of its age.
func (s *Store) RefreshJobs(ctx context.Context) map[string][]string {
	return s.refreshJobs(ctx)
}

// refreshJobs runs one shared fetch detached from the caller's cancellation.
// A caller whose context ends first gets the previous map and leaves the
// fetch running for the others.
func (s *Store) refreshJobs(ctx context.Context) map[string][]string {
	ch := s.group.DoChan("jobs", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.jobFetchLimit)
		defer cancel()
		return s.fetchJobs(fetchCtx), nil
	})
	select {
	case res := <-ch:
		return res.Val.(map[string][]string)
	case <-ctx.Done():
		return s.previousJobs()
	}
}

func (s *Store) fetchJobs(ctx context.Context) map[string][]string {
	localities, err := s.jobSource.LoadJobs(ctx)
	now := s.now()
	if err != nil {
		prev := s.jobs.Load()
		entry := &jobEntry{localities: map[string][]string{}, expiresAt: now.Add(s.jobRetryAfter)}
		if prev != nil {
			entry.localities, entry.fetchedAt = prev.localities, prev.fetchedAt
		}
		s.jobs.Store(entry)
		s.logger.Error("failed to refresh job postings, keeping previous map",
			"err", err, "localities", len(entry.localities), "retry_after", s.jobRetryAfter)
		return entry.localities
	}
	if localities == nil {
		localities = map[string][]string{}
	}
	s.jobs.Store(&jobEntry{localities: localities, fetchedAt: now, expiresAt: now.Add(s.jobTTL)})
	s.logger.Info("job postings refreshed", "localities", len(localities))
	return localities
}

func (s *Store) previousJobs() map[string][]string {
	if entry := s.jobs.Load(); entry != nil {
		return entry.localities
	}
	return map[string][]string{}
}

// Refresh reloads locations, FAQ pairs and job postings concurrently and
// publishes the result. A source that fails keeps its previous collection.
func (s *Store) Refresh(ctx context.Context) error {
	prev := s.current.Load()
	next := &snapshot{locations: prev.locations, faq: prev.faq}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		locations, err := s.locationSource.LoadLocations(gctx)
		if err != nil {
			s.logger.Error("failed to refresh locations, keeping previous set", "err", err, "count", len(prev.locations))
			return nil
		}
		next.locations = locations
		return nil
	})
	g.Go(func() error {
		pairs, err := s.faqSource.LoadFAQ(gctx)
		if err != nil {
			s.logger.Error("failed to load faq, keeping previous index", "err", err)
			return nil
		}
		index, err := s.indexBuilder.BuildIndex(gctx, pairs)
		if err != nil {
			s.logger.Error("failed to build faq index, keeping previous index", "err", err)
			return nil
		}
		if index == nil {
			index = &core.FAQIndex{}
		}
		next.faq = index
		return nil
	})
	g.Go(func() error {
		s.refreshJobs(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	next.loadedAt = s.now()
	s.current.Store(next)
	s.logger.Info("catalog refreshed", "locations", len(next.locations), "faq", next.faq.Len())
	return nil
}

// Stats reports the sizes of the published collections.
func (s *Store) Stats() Stats {
	cur := s.current.Load()
	stats := Stats{
		Locations: len(cur.locations),
		FAQPairs:  cur.faq.Len(),
		LoadedAt:  cur.loadedAt,
	}
	if entry := s.jobs.Load(); entry != nil {
		stats.Localities = len(entry.localities)
		stats.JobsFetchedAt = entry.fetchedAt
		for _, urls := range entry.localities {
			stats.JobPostings += len(urls)
		}
	}
	return stats
}
