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


package answer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/intent"
	"github.com/poiesic/frontdesk/search"
)

// State is one step of the routing order.
type State int

const (
	StateHours State = iota + 1
	StateJob
	StateLocationIntent
	StateLocation
	StateJobRetry
	StateFAQ
	StateUnknown
)

func (s State) String() string {
	switch s {
	case StateHours:
		return "hours"
	case StateJob:
		return "job"
	case StateLocationIntent:
		return "location-intent"
	case StateLocation:
		return "location"
	case StateJobRetry:
		return "job-retry"
	case StateFAQ:
		return "faq"
	case StateUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Classifier is the lexical intent classifier used by the router.
type Classifier interface {
	Classify(question string) intent.Intent
	HasOpeningHoursIntent(question string) bool
	HasJobKeyword(question string) bool
	HasLocationKeyword(question string) bool
}

// LocationMatcher finds the location a question refers to.
type LocationMatcher interface {
	Match(ctx context.Context, question string) (*core.Location, int, bool)
}

// JobMatcher finds job postings for a question.
type JobMatcher interface {
	Match(ctx context.Context, question string) search.JobMatch
}

// FAQMatcher answers from the FAQ.
type FAQMatcher interface {
	Match(ctx context.Context, question string) (search.FAQMatch, bool, error)
	Suggest(ctx context.Context, question string, k int) ([]search.FAQMatch, error)
}

const (
	defaultSuggestions        = 3
	defaultMinSuggestionScore = 0.4
)

// Router composes one response per question.
type Router struct {
	classifier         Classifier
	locations          LocationMatcher
	jobs               JobMatcher
	faq                FAQMatcher
	suggestions        int
	minSuggestionScore float64
	monitor            RouteMonitor
	logger             *slog.Logger
}

// Option configures a Router.
type Option func(*Router) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMonitor sets the default route monitor.
func WithMonitor(monitor RouteMonitor) Option {
	return func(r *Router) error {
		r.monitor = monitor
		return nil
	}
}

// WithSuggestions sets how many FAQ questions an unknown response may
// suggest and the similarity each needs. k = 0 disables suggestions.
func WithSuggestions(k int, minScore float64) Option {
	return func(r *Router) error {
		if k < 0 {
			k = 0
		}
		r.suggestions = k
		r.minSuggestionScore = minScore
		return nil
	}
}

// NewRouter creates a router over the given classifier and matchers.
func NewRouter(classifier Classifier, locations LocationMatcher, jobs JobMatcher, faq FAQMatcher, opts ...Option) (*Router, error) {
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if locations == nil {
		return nil, ErrLocationMatcherRequired
	}
	if jobs == nil {
		return nil, ErrJobMatcherRequired
	}
	if faq == nil {
		return nil, ErrFAQMatcherRequired
	}

	r := &Router{
		classifier:         classifier,
		locations:          locations,
		jobs:               jobs,
		faq:                faq,
		suggestions:        defaultSuggestions,
		minSuggestionScore: defaultMinSuggestionScore,
		logger:             slog.Default().With("component", "router"),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Route answers a question. It always returns exactly one response.
func (r *Router) Route(ctx context.Context, question string) Response {
	return r.RouteWithMonitor(ctx, question, r.monitor)
}

// RouteWithMonitor is Route with an explicit monitor.
func (r *Router) RouteWithMonitor(ctx context.Context, question string, monitor RouteMonitor) (resp Response) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(question)
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("panic while routing question", "panic", rec, "question", question)
			resp = ErrorResponse(ErrorMessage)
		}
		monitor.Finish(resp)
	}()

	resp, err := r.route(ctx, strings.TrimSpace(question), monitor)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			r.logger.Warn("routing aborted", "err", err)
			return ErrorResponse(CanceledMessage)
		}
		r.logger.Error("routing failed", "err", err)
		return ErrorResponse(ErrorMessage)
	}
	return resp
}

// request memoizes matcher results across states.
type request struct {
	ctx      context.Context
	question string
	r        *Router

	locDone bool
	loc     *core.Location

	jobsDone bool
	jobs     search.JobMatch
}

func (q *request) location() *core.Location {
	if !q.locDone {
		q.locDone = true
		if loc, _, ok := q.r.locations.Match(q.ctx, q.question); ok {
			q.loc = loc
		}
	}
	return q.loc
}

func (q *request) jobMatch() search.JobMatch {
	if !q.jobsDone {
		q.jobsDone = true
		q.jobs = q.r.jobs.Match(q.ctx, q.question)
	}
	return q.jobs
}

func (r *Router) route(ctx context.Context, question string, monitor RouteMonitor) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if question == "" {
		monitor.State(StateUnknown, true)
		return UnknownResponse(nil), nil
	}

	req := &request{ctx: ctx, question: question, r: r}
	hours := r.classifier.HasOpeningHoursIntent(question)
	topic := r.classifier.Classify(question)
	monitor.Classified(topic, hours)

	// 1. opening hours
	if hours {
		loc := req.location()
		monitor.State(StateHours, loc != nil)
		if err := ctx.Err(); err != nil {
			return Response{}, err
		}
		if loc != nil {
			return HoursResponse(loc), nil
		}
		return HoursFallbackResponse(), nil
	}

	// 2. job topic
	if topic == intent.Job {
		match := req.jobMatch()
		monitor.State(StateJob, !match.Empty())
		if err := ctx.Err(); err != nil {
			return Response{}, err
		}
		if !match.Empty() {
			var loc *core.Location
			if r.classifier.HasLocationKeyword(question) {
				loc = req.location()
			}
			return JobResponse(match, loc), nil
		}
	}

	// 3. location topic
	if topic == intent.Location {
		loc := req.location()
		monitor.State(StateLocationIntent, loc != nil)
		if err := ctx.Err(); err != nil {
			return Response{}, err
		}
		if loc != nil {
			return LocationResponse(loc), nil
		}
	}

	// 4. any location
	if loc := req.location(); loc != nil {
		monitor.State(StateLocation, true)
		return LocationResponse(loc), nil
	}
	monitor.State(StateLocation, false)
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	// 5. job keyword
	if topic == intent.Job || r.classifier.HasJobKeyword(question) {
		match := req.jobMatch()
		monitor.State(StateJobRetry, !match.Empty())
		if !match.Empty() {
			return JobResponse(match, nil), nil
		}
	}

	// 6. FAQ
	match, ok, err := r.faq.Match(ctx, question)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Response{}, ctxErr
		}
		// The FAQ is the last resort; an unavailable embedding service
		// degrades to the unknown response.
		r.logger.Error("faq lookup failed", "err", err)
	}
	monitor.State(StateFAQ, ok)
	if ok {
		return FAQResponse(match), nil
	}

	// 7. unknown
	monitor.State(StateUnknown, true)
	resp := UnknownResponse(r.suggest(ctx, question))
	resp.Degraded = err != nil
	return resp, nil
}

func (r *Router) suggest(ctx context.Context, question string) []string {
	if r.suggestions == 0 {
		return nil
	}
	matches, err := r.faq.Suggest(ctx, question, r.suggestions)
	if err != nil {
		r.logger.Debug("no faq suggestions", "err", err)
		return nil
	}
	var out []string
	for _, m := range matches {
		if m.Score >= r.minSuggestionScore {
			out = append(out, m.Pair.Question)
		}
	}
	return out
}
