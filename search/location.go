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
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/fuzzy"
	"github.com/poiesic/frontdesk/intent"
)

// LocationProvider supplies the current location collection.
type LocationProvider interface {
	Locations() []*core.Location
}

// LocationScore is the breakdown of one location's total.
type LocationScore struct {
	Location        *core.Location
	Base            int
	NameBoost       int
	AliasBoost      int
	ProfessionBoost int
	Total           int
}

// LocationMatcher picks the location a question refers to.
type LocationMatcher struct {
	locations      LocationProvider
	classifier     *intent.Classifier
	scoring        LocationScoring
	ignoredAliases map[string]bool
	pool           *ants.Pool
	poolSize       int
	monitor        MatchMonitor
	logger         *slog.Logger
}

// NewLocationMatcher creates a location matcher.
// Call Release when the matcher is no longer used.
func NewLocationMatcher(locations LocationProvider, classifier *intent.Classifier, opts ...Option) (*LocationMatcher, error) {
	if locations == nil {
		return nil, ErrLocationProviderRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	s := defaultSettings("location-matcher")
	if err := applyOptions(s, opts); err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring pool: %w", err)
	}

	ignored := make(map[string]bool, len(s.ignoredAliases))
	for _, a := range s.ignoredAliases {
		if n := fuzzy.Normalize(a); n != "" {
			ignored[n] = true
		}
	}

	return &LocationMatcher{
		locations:      locations,
		classifier:     classifier,
		scoring:        s.scoring,
		ignoredAliases: ignored,
		pool:           pool,
		poolSize:       s.poolSize,
		monitor:        s.monitor,
		logger:         s.logger,
	}, nil
}

// Match returns the best location whose total strictly exceeds the
// threshold. Among equal totals the earlier location wins.
func (m *LocationMatcher) Match(ctx context.Context, question string) (*core.Location, int, bool) {
	return m.MatchWithMonitor(ctx, question, pickMonitor(ctx, m.monitor))
}

// MatchWithMonitor is Match with an explicit monitor.
func (m *LocationMatcher) MatchWithMonitor(ctx context.Context, question string, monitor MatchMonitor) (*core.Location, int, bool) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	q := fuzzy.Normalize(question)
	locations := m.locations.Locations()
	if q == "" || len(locations) == 0 {
		return nil, 0, false
	}

	scores, err := m.scoreAll(ctx, q, locations)
	if err != nil {
		m.logger.Warn("location scoring aborted", "err", err)
		return nil, 0, false
	}

	candidates := make([]LocationScore, 0, 4)
	for _, sc := range scores {
		monitor.LocationScored(sc)
		if sc.Total > m.scoring.Threshold {
			candidates = append(candidates, sc)
		}
	}
	if len(candidates) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Total > candidates[j].Total
	})

	best := candidates[0]
	monitor.LocationSelected(best.Location, best.Total)
	m.logger.Debug("location matched", "title", best.Location.Title, "total", best.Total, "candidates", len(candidates))
	return best.Location, best.Total, true
}

// scoreAll scores every location on the pool. Results keep input order.
func (m *LocationMatcher) scoreAll(ctx context.Context, q string, locations []*core.Location) ([]LocationScore, error) {
	scores := make([]LocationScore, len(locations))
	chunk := (len(locations) + m.poolSize - 1) / m.poolSize

	var wg sync.WaitGroup
	for start := 0; start < len(locations); start += chunk {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		end := min(start+chunk, len(locations))
		wg.Add(1)
		task := func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				scores[i] = m.score(q, locations[i])
			}
		}
		if err := m.pool.Submit(task); err != nil {
			// Pool closed or overloaded: score inline.
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

// Score returns the score breakdown of one location for a question.
func (m *LocationMatcher) Score(question string, loc *core.Location) LocationScore {
	return m.score(fuzzy.Normalize(question), loc)
}

func (m *LocationMatcher) score(q string, loc *core.Location) LocationScore {
	composite := fuzzy.Normalize(loc.Composite())
	title := fuzzy.Normalize(loc.Title)

	sc := LocationScore{Location: loc}
	sc.Base = max(
		fuzzy.TokenSetRatio(q, composite),
		nameScore(q, fuzzy.Normalize(loc.MatchCity)),
		nameScore(q, title),
	)

	if containsAllQueryWords(title, q) {
		sc.NameBoost = m.scoring.NameBoost
	}

	for _, alias := range loc.Aliases {
		if m.ignoredAliases[alias] {
			continue
		}
		if intent.ContainsWord(q, alias) {
			sc.AliasBoost = m.scoring.AliasBoost
			break
		}
	}

	for _, kw := range m.classifier.ProfessionKeywords() {
		if strings.Contains(q, kw) && strings.Contains(composite, kw) {
			sc.ProfessionBoost += m.scoring.ProfessionBoost
		}
	}

	sc.Total = max(0, sc.Base+sc.NameBoost+sc.AliasBoost+sc.ProfessionBoost)
	return sc
}

// Release releases the scoring pool.
func (m *LocationMatcher) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}
