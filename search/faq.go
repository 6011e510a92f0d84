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
	"math"
	"sort"

	"github.com/poiesic/frontdesk/ai"
	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/fuzzy"
	"github.com/poiesic/frontdesk/intent"
)

// FAQProvider supplies the current FAQ index.
type FAQProvider interface {
	FAQIndex() *core.FAQIndex
}

// FAQMatch is an FAQ pair with its similarity to the question.
type FAQMatch struct {
	Pair  core.FAQPair
	Score float64
}

// FAQMatcher answers questions from the FAQ index by cosine similarity.
type FAQMatcher struct {
	index     FAQProvider
	embedder  ai.Embedder
	threshold float64
	guards    []string
	monitor   MatchMonitor
	logger    *slog.Logger
}

// NewFAQMatcher creates an FAQ matcher.
func NewFAQMatcher(index FAQProvider, embedder ai.Embedder, opts ...Option) (*FAQMatcher, error) {
	if index == nil {
		return nil, ErrFAQProviderRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	s := defaultSettings("faq-matcher")
	if err := applyOptions(s, opts); err != nil {
		return nil, err
	}
	guards := make([]string, 0, len(s.guardKeywords))
	for _, g := range s.guardKeywords {
		if n := fuzzy.Normalize(g); n != "" {
			guards = append(guards, n)
		}
	}
	return &FAQMatcher{
		index:     index,
		embedder:  embedder,
		threshold: s.faqThreshold,
		guards:    guards,
		monitor:   s.monitor,
		logger:    s.logger,
	}, nil
}

// Match returns the most similar FAQ pair when its rounded similarity
// strictly exceeds the threshold. An empty index never matches.
func (m *FAQMatcher) Match(ctx context.Context, question string) (FAQMatch, bool, error) {
	return m.MatchWithMonitor(ctx, question, pickMonitor(ctx, m.monitor))
}

// MatchWithMonitor is Match with an explicit monitor.
func (m *FAQMatcher) MatchWithMonitor(ctx context.Context, question string, monitor MatchMonitor) (FAQMatch, bool, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	ranked, err := m.rank(ctx, question)
	if err != nil || len(ranked) == 0 {
		return FAQMatch{}, false, err
	}

	best := ranked[0]
	accepted := best.Score > m.threshold && !m.guarded(question, best.Pair.Question)
	monitor.FAQScored(best.Pair, best.Score, accepted)
	if !accepted {
		return FAQMatch{}, false, nil
	}
	return best, true, nil
}

// Suggest returns the k most similar FAQ pairs regardless of threshold.
func (m *FAQMatcher) Suggest(ctx context.Context, question string, k int) ([]FAQMatch, error) {
	if k <= 0 {
		return nil, nil
	}
	ranked, err := m.rank(ctx, question)
	if err != nil {
		return nil, err
	}
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked, nil
}

// rank scores every pair and returns them by descending similarity;
// equal scores keep index order.
func (m *FAQMatcher) rank(ctx context.Context, question string) ([]FAQMatch, error) {
	index := m.index.FAQIndex()
	if index.Len() == 0 {
		return nil, nil
	}
	if err := core.ValidateFAQIndex(index); err != nil {
		return nil, err
	}

	vec, err := m.embedder.EmbedText(ctx, question)
	if err != nil {
		m.logger.Error("error generating embedding for question", "err", err)
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	ranked := make([]FAQMatch, len(index.Pairs))
	for i, pair := range index.Pairs {
		ranked[i] = FAQMatch{Pair: pair, Score: roundScore(ai.CosineSimilarity(vec, index.Vectors[i]))}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

// guarded reports whether the question carries a guard keyword that the
// FAQ question lacks.
func (m *FAQMatcher) guarded(question, faqQuestion string) bool {
	q := fuzzy.Normalize(question)
	fq := fuzzy.Normalize(faqQuestion)
	for _, g := range m.guards {
		if intent.ContainsTerm(q, g) && !intent.ContainsTerm(fq, g) {
			return true
		}
	}
	return false
}

func roundScore(s float64) float64 {
	return math.Round(s*1000) / 1000
}
