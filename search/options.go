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
	"log/slog"
	"runtime"
)

const (
	// DefaultLocalityThreshold is the name score a locality needs before
	// postings are restricted to it.
	DefaultLocalityThreshold = 80
	// DefaultDisplayLimit caps the postings returned by JobMatcher.
	DefaultDisplayLimit = 5
	// DefaultFAQThreshold is the cosine similarity an FAQ match must exceed.
	DefaultFAQThreshold = 0.6
)

// DefaultGuardKeywords reject an FAQ match when the question mentions one
// of them and the matched FAQ question does not.
var DefaultGuardKeywords = []string{"gehalt"}

// LocationScoring holds the tunable constants of the location heuristic.
type LocationScoring struct {
	// Threshold a total must strictly exceed.
	Threshold int `yaml:"threshold"`
	// NameBoost applies when every question token occurs in the title.
	NameBoost int `yaml:"name_boost"`
	// AliasBoost applies when any alias occurs in the question.
	AliasBoost int `yaml:"alias_boost"`
	// ProfessionBoost applies per profession keyword present on both sides.
	ProfessionBoost int `yaml:"profession_boost"`
}

// DefaultLocationScoring returns the standard location scoring.
func DefaultLocationScoring() LocationScoring {
	return LocationScoring{
		Threshold:       75,
		NameBoost:       20,
		AliasBoost:      15,
		ProfessionBoost: 10,
	}
}

// settings collects the knobs shared by all matchers. Each matcher reads
// the fields it needs.
type settings struct {
	logger            *slog.Logger
	monitor           MatchMonitor
	poolSize          int
	scoring           LocationScoring
	ignoredAliases    []string
	localityThreshold int
	displayLimit      int
	faqThreshold      float64
	guardKeywords     []string
}

func defaultSettings(component string) *settings {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	return &settings{
		logger:            slog.Default().With("component", component),
		poolSize:          poolSize,
		scoring:           DefaultLocationScoring(),
		localityThreshold: DefaultLocalityThreshold,
		displayLimit:      DefaultDisplayLimit,
		faqThreshold:      DefaultFAQThreshold,
		guardKeywords:     DefaultGuardKeywords,
	}
}

func applyOptions(s *settings, opts []Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	return nil
}

// Option configures a matcher.
type Option func(*settings) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMonitor sets the monitor used when the context carries none.
func WithMonitor(monitor MatchMonitor) Option {
	return func(s *settings) error {
		s.monitor = monitor
		return nil
	}
}

// WithPoolSize sets the worker pool size for location scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *settings) error {
		if size < 1 {
			size = 1
		}
		s.poolSize = size
		return nil
	}
}

// WithLocationScoring replaces the location threshold and boosts.
func WithLocationScoring(scoring LocationScoring) Option {
	return func(s *settings) error {
		if scoring.Threshold < 0 {
			return ErrInvalidThreshold
		}
		s.scoring = scoring
		return nil
	}
}

// WithIgnoredAliases excludes aliases shared by every location, such as the
// brand name, from the alias boost.
func WithIgnoredAliases(aliases ...string) Option {
	return func(s *settings) error {
		s.ignoredAliases = append(s.ignoredAliases, aliases...)
		return nil
	}
}

// WithLocalityThreshold sets the name score needed to restrict postings
// to one locality.
func WithLocalityThreshold(threshold int) Option {
	return func(s *settings) error {
		if threshold < 0 || threshold > 100 {
			return ErrInvalidThreshold
		}
		s.localityThreshold = threshold
		return nil
	}
}

// WithDisplayLimit caps the number of postings returned.
func WithDisplayLimit(limit int) Option {
	return func(s *settings) error {
		if limit < 1 {
			return ErrInvalidLimit
		}
		s.displayLimit = limit
		return nil
	}
}

// WithFAQThreshold sets the similarity an FAQ match must exceed.
func WithFAQThreshold(threshold float64) Option {
	return func(s *settings) error {
		if threshold < -1 || threshold > 1 {
			return ErrInvalidThreshold
		}
		s.faqThreshold = threshold
		return nil
	}
}

// WithGuardKeywords replaces the FAQ guard keywords.
func WithGuardKeywords(keywords ...string) Option {
	return func(s *settings) error {
		s.guardKeywords = keywords
		return nil
	}
}
