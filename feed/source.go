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


package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/storage"
)

// Feed names used as snapshot keys.
const (
	LocationsFeed = "locations"
	JobsFeed      = "jobs"
)

// snapshotSource fetches a payload, validates it with parse, stores it as
// the feed's snapshot, and falls back to the stored snapshot on failure.
type snapshotSource struct {
	name      string
	url       string
	fetcher   Fetcher
	snapshots storage.SnapshotRepository
	logger    *slog.Logger
}

func (s *snapshotSource) load(ctx context.Context, parse func([]byte) error) error {
	data, err := s.fetcher.Fetch(ctx, s.url)
	if err == nil {
		if err = parse(data); err == nil {
			s.save(ctx, data)
			return nil
		}
	}
	s.logger.Warn("feed unavailable", "feed", s.name, "url", s.url, "err", err)

	if s.snapshots == nil {
		return err
	}
	snap, snapErr := s.snapshots.LoadSnapshot(ctx, s.name)
	if snapErr != nil {
		if errors.Is(snapErr, storage.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrNoSnapshot, err)
		}
		return fmt.Errorf("%w; snapshot: %w", err, snapErr)
	}
	if parseErr := parse(snap.Payload); parseErr != nil {
		return fmt.Errorf("%w; snapshot: %w", err, parseErr)
	}
	s.logger.Info("serving feed from snapshot", "feed", s.name, "fetchedAt", snap.FetchedAt)
	return nil
}

func (s *snapshotSource) save(ctx context.Context, data []byte) {
	if s.snapshots == nil {
		return
	}
	snap := &core.FeedSnapshot{Feed: s.name, URL: s.url, Payload: data, FetchedAt: time.Now().UTC()}
	if err := s.snapshots.SaveSnapshot(ctx, snap); err != nil {
		s.logger.Warn("failed to save feed snapshot", "feed", s.name, "err", err)
	}
}

// LocationSource loads the location feed.
type LocationSource struct {
	src snapshotSource
}

// NewLocationSource creates a location source. snapshots may be nil.
func NewLocationSource(url string, fetcher Fetcher, snapshots storage.SnapshotRepository) (*LocationSource, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if url == "" {
		return nil, ErrEmptyURL
	}
	return &LocationSource{src: snapshotSource{
		name:      LocationsFeed,
		url:       url,
		fetcher:   fetcher,
		snapshots: snapshots,
		logger:    slog.Default().With("component", "location-feed"),
	}}, nil
}

// LoadLocations fetches and parses the location feed.
func (s *LocationSource) LoadLocations(ctx context.Context) ([]*core.Location, error) {
	var locations []*core.Location
	err := s.src.load(ctx, func(data []byte) error {
		parsed, skipped, err := ParseLocations(data)
		if err != nil {
			return err
		}
		if skipped > 0 {
			s.src.logger.Warn("skipped malformed location entries", "count", skipped)
		}
		locations = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// JobSource loads the job sitemap and groups posting URLs by locality.
type JobSource struct {
	src snapshotSource
}

// NewJobSource creates a job source. snapshots may be nil.
func NewJobSource(url string, fetcher Fetcher, snapshots storage.SnapshotRepository) (*JobSource, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if url == "" {
		return nil, ErrEmptyURL
	}
	return &JobSource{src: snapshotSource{
		name:      JobsFeed,
		url:       url,
		fetcher:   fetcher,
		snapshots: snapshots,
		logger:    slog.Default().With("component", "job-feed"),
	}}, nil
}

// LoadJobs fetches the sitemap and returns locality -> URLs.
func (s *JobSource) LoadJobs(ctx context.Context) (map[string][]string, error) {
	var grouped map[string][]string
	err := s.src.load(ctx, func(data []byte) error {
		urls, err := ParseSitemap(data)
		if err != nil {
			return err
		}
		grouped = core.GroupJobURLs(urls)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grouped, nil
}
