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


package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/fuzzy"
	"github.com/poiesic/frontdesk/intent"
)

// JobProvider supplies the job-locality map.
type JobProvider interface {
	JobLocalityMap(ctx context.Context) map[string][]string
}

// JobMatch is the result of a job lookup.
type JobMatch struct {
	// Total counts every matching posting, including those past the limit.
	Total int
	// Postings holds at most the display limit of postings.
	Postings []core.JobPosting
	// Locality is set when the question resolved to one locality.
	Locality string
	// LocalityScore is the word-aligned partial ratio of the best locality.
	LocalityScore int
	// Roles lists the role keys mentioned in the question.
	Roles []string
}

// Empty reports whether no posting matched.
func (m JobMatch) Empty() bool {
	return m.Total == 0
}

// JobMatcher finds postings for a question.
type JobMatcher struct {
	jobs              JobProvider
	classifier        *intent.Classifier
	localityThreshold int
	displayLimit      int
	monitor           MatchMonitor
	logger            *slog.Logger
}

// NewJobMatcher creates a job matcher.
func NewJobMatcher(jobs JobProvider, classifier *intent.Classifier, opts ...Option) (*JobMatcher, error) {
	if jobs == nil {
		return nil, ErrJobProviderRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	s := defaultSettings("job-matcher")
	if err := applyOptions(s, opts); err != nil {
		return nil, err
	}
	return &JobMatcher{
		jobs:              jobs,
		classifier:        classifier,
		localityThreshold: s.localityThreshold,
		displayLimit:      s.displayLimit,
		monitor:           s.monitor,
		logger:            s.logger,
	}, nil
}

// Match resolves the question's locality and role filter and returns the
// matching postings.
func (m *JobMatcher) Match(ctx context.Context, question string) JobMatch {
	return m.MatchWithMonitor(ctx, question, pickMonitor(ctx, m.monitor))
}

// MatchWithMonitor is Match with an explicit monitor.
func (m *JobMatcher) MatchWithMonitor(ctx context.Context, question string, monitor MatchMonitor) JobMatch {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	grouped := m.jobs.JobLocalityMap(ctx)
	if len(grouped) == 0 {
		return JobMatch{}
	}
	q := fuzzy.Normalize(question)

	localities := make([]string, 0, len(grouped))
	for locality := range grouped {
		localities = append(localities, locality)
	}
	sort.Strings(localities)

	var result JobMatch
	var urls []string
	best, _ := fuzzy.ExtractOne(q, localities, nameScore)
	result.LocalityScore = best.Score
	if best.Score >= m.localityThreshold {
		result.Locality = best.Choice
		urls = grouped[best.Choice]
		monitor.LocalityResolved(best.Choice, best.Score, true)
	} else {
		urls = unionByScore(q, localities, grouped)
		monitor.LocalityResolved(best.Choice, best.Score, false)
	}

	result.Roles = m.classifier.MentionedRoles(question)
	if len(result.Roles) > 0 {
		filtered := filterBySynonyms(urls, m.classifier.RoleSynonyms(result.Roles))
		monitor.RolesFiltered(result.Roles, len(urls), len(filtered))
		// An empty filter result means the slugs did not spell the role;
		// the unfiltered list is returned instead.
		if len(filtered) > 0 {
			urls = filtered
		}
	}

	result.Total = len(urls)
	limit := min(len(urls), m.displayLimit)
	result.Postings = make([]core.JobPosting, limit)
	for i := 0; i < limit; i++ {
		result.Postings[i] = core.NewJobPosting(urls[i])
	}
	m.logger.Debug("job match", "locality", result.Locality, "score", result.LocalityScore, "roles", result.Roles, "total", result.Total)
	return result
}

// unionByScore concatenates all postings, localities ordered by score
// descending and then by name.
func unionByScore(q string, localities []string, grouped map[string][]string) []string {
	scores := make(map[string]int, len(localities))
	for _, l := range localities {
		scores[l] = nameScore(q, l)
	}
	ordered := append([]string(nil), localities...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})

	var urls []string
	for _, l := range ordered {
		urls = append(urls, grouped[l]...)
	}
	return urls
}

func filterBySynonyms(urls, synonyms []string) []string {
	var out []string
	for _, u := range urls {
		slug := fuzzy.Normalize(core.JobSlug(u))
		for _, syn := range synonyms {
			if intent.ContainsTerm(slug, syn) {
				out = append(out, u)
				break
			}
		}
	}
	return out
}
