package answer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/intent"
	"github.com/poiesic/frontdesk/search"
)

type fakeLocations struct {
	loc   *core.Location
	calls int
	panic bool
}

func (f *fakeLocations) Match(context.Context, string) (*core.Location, int, bool) {
	f.calls++
	if f.panic {
		panic("index out of range")
	}
	if f.loc == nil {
		return nil, 0, false
	}
	return f.loc, 100, true
}

type fakeJobs struct {
	match search.JobMatch
	calls int
}

func (f *fakeJobs) Match(context.Context, string) search.JobMatch {
	f.calls++
	return f.match
}

type fakeFAQ struct {
	match       search.FAQMatch
	ok          bool
	err         error
	suggestions []search.FAQMatch
}

func (f *fakeFAQ) Match(context.Context, string) (search.FAQMatch, bool, error) {
	return f.match, f.ok, f.err
}

func (f *fakeFAQ) Suggest(_ context.Context, _ string, k int) ([]search.FAQMatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.suggestions) > k {
		return f.suggestions[:k], nil
	}
	return f.suggestions, nil
}

type stateRecorder struct {
	noopMonitor
	states   []State
	topic    intent.Intent
	finished *Response
}

func (s *stateRecorder) Classified(topic intent.Intent, _ bool) { s.topic = topic }
func (s *stateRecorder) State(state State, _ bool)              { s.states = append(s.states, state) }
func (s *stateRecorder) Finish(resp Response)                   { s.finished = &resp }

func berlinMitte() *core.Location {
	return core.NewLocation(core.LocationInput{
		Title:      "Berlin Mitte",
		City:       "Berlin Mitte",
		Street:     "Friedrichstraße 10",
		PostalCode: "10117",
		Hours:      []core.OpeningHours{{Weekday: "Monday", Opens: "08:00", Closes: "18:00"}},
	})
}

func hamburgJobs() search.JobMatch {
	return search.JobMatch{
		Total:    1,
		Locality: "hamburg",
		Postings: []core.JobPosting{core.NewJobPosting("https://example.com/jobs/physiotherapeut-hamburg-1234")},
	}
}

func newRouter(t *testing.T, loc *fakeLocations, jobs *fakeJobs, faq *fakeFAQ, opts ...Option) *Router {
	t.Helper()
	r, err := NewRouter(intent.NewClassifier(intent.DefaultVocabulary()), loc, jobs, faq, opts...)
	require.NoError(t, err)
	return r
}

func TestNewRouter_Validation(t *testing.T) {
	c := intent.NewClassifier(intent.DefaultVocabulary())
	_, err := NewRouter(nil, &fakeLocations{}, &fakeJobs{}, &fakeFAQ{})
	assert.ErrorIs(t, err, ErrClassifierRequired)
	_, err = NewRouter(c, nil, &fakeJobs{}, &fakeFAQ{})
	assert.ErrorIs(t, err, ErrLocationMatcherRequired)
	_, err = NewRouter(c, &fakeLocations{}, nil, &fakeFAQ{})
	assert.ErrorIs(t, err, ErrJobMatcherRequired)
	_, err = NewRouter(c, &fakeLocations{}, &fakeJobs{}, nil)
	assert.ErrorIs(t, err, ErrFAQMatcherRequired)
}

func TestRouter_Hours(t *testing.T) {
	r := newRouter(t, &fakeLocations{loc: berlinMitte()}, &fakeJobs{}, &fakeFAQ{})
	resp := r.Route(context.Background(), "Öffnungszeiten Berlin Mitte")

	assert.Equal(t, TypeHours, resp.Type)
	assert.Equal(t, "Berlin Mitte", resp.LocationName)
	assert.Equal(t, "Berlin Mitte", resp.City)
	assert.Equal(t, []HoursEntry{{Weekday: "Monday", Opens: "08:00", Closes: "18:00"}}, resp.Hours)
	assert.Equal(t, "Montag: 08:00–18:00", resp.HoursText)
}

func TestRouter_HoursFallback(t *testing.T) {
	jobs := &fakeJobs{match: hamburgJobs()}
	r := newRouter(t, &fakeLocations{}, jobs, &fakeFAQ{})
	resp := r.Route(context.Background(), "Wann habt ihr geöffnet?")

	assert.Equal(t, TypeFAQ, resp.Type)
	assert.Equal(t, HoursFallbackMessage, resp.Answer)
	assert.Equal(t, 1.0, resp.Score)
	assert.Equal(t, 0, jobs.calls)
}

func TestRouter_HoursBeatsJob(t *testing.T) {
	jobs := &fakeJobs{match: hamburgJobs()}
	r := newRouter(t, &fakeLocations{loc: berlinMitte()}, jobs, &fakeFAQ{})
	resp := r.Route(context.Background(), "Jobs und Öffnungszeiten Berlin Mitte")

	assert.Equal(t, TypeHours, resp.Type)
	assert.Equal(t, 0, jobs.calls)
}

func TestRouter_Job(t *testing.T) {
	locations := &fakeLocations{loc: berlinMitte()}
	r := newRouter(t, locations, &fakeJobs{match: hamburgJobs()}, &fakeFAQ{})
	resp := r.Route(context.Background(), "Physiotherapeut Jobs Hamburg")

	assert.Equal(t, TypeJob, resp.Type)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Postings, 1)
	assert.Equal(t, "https://example.com/jobs/physiotherapeut-hamburg-1234", resp.Postings[0].URL)
	assert.Equal(t, "Physiotherapeut", resp.Postings[0].Title)
	assert.Nil(t, resp.JobLocation)
	assert.Equal(t, 0, locations.calls)
}

func TestRouter_JobWithLocation(t *testing.T) {
	r := newRouter(t, &fakeLocations{loc: berlinMitte()}, &fakeJobs{match: hamburgJobs()}, &fakeFAQ{})
	resp := r.Route(context.Background(), "Jobs in der Praxis Berlin Mitte")

	assert.Equal(t, TypeJob, resp.Type)
	require.NotNil(t, resp.JobLocation)
	assert.Equal(t, "Berlin Mitte", resp.JobLocation.Title)
}

func TestRouter_LocationIntent(t *testing.T) {
	rec := &stateRecorder{}
	r := newRouter(t, &fakeLocations{loc: berlinMitte()}, &fakeJobs{}, &fakeFAQ{})
	resp := r.RouteWithMonitor(context.Background(), "Adresse Berlin", rec)

	assert.Equal(t, TypeLocation, resp.Type)
	require.NotNil(t, resp.Location)
	assert.Equal(t, "Friedrichstraße 10 10117", resp.Location.Address)
	assert.Equal(t, core.MapLink("Friedrichstraße 10 10117", "Berlin Mitte"), resp.Location.MapLink)
	assert.Equal(t, intent.Location, rec.topic)
	assert.Equal(t, []State{StateLocationIntent}, rec.states)
	require.NotNil(t, rec.finished)
	assert.Equal(t, TypeLocation, rec.finished.Type)
}

func TestRouter_LocationWithoutKeywords(t *testing.T) {
	rec := &stateRecorder{}
	r := newRouter(t, &fakeLocations{loc: berlinMitte()}, &fakeJobs{}, &fakeFAQ{})
	resp := r.RouteWithMonitor(context.Background(), "Berlin Mitte", rec)

	assert.Equal(t, TypeLocation, resp.Type)
	assert.Equal(t, intent.Undecided, rec.topic)
	assert.Equal(t, []State{StateLocation}, rec.states)
}

func TestRouter_JobRetry(t *testing.T) {
	rec := &stateRecorder{}
	r := newRouter(t, &fakeLocations{}, &fakeJobs{match: hamburgJobs()}, &fakeFAQ{})
	resp := r.RouteWithMonitor(context.Background(), "Adresse und Jobs", rec)

	assert.Equal(t, TypeJob, resp.Type)
	assert.Equal(t, []State{StateLocationIntent, StateLocation, StateJobRetry}, rec.states)
}

func TestRouter_JobMatcherConsultedOnce(t *testing.T) {
	locations := &fakeLocations{}
	jobs := &fakeJobs{}
	r := newRouter(t, locations, jobs, &fakeFAQ{})
	resp := r.Route(context.Background(), "Karriere bei euch")

	assert.Equal(t, TypeUnknown, resp.Type)
	assert.Equal(t, 1, jobs.calls)
	assert.Equal(t, 1, locations.calls)
}

func TestRouter_FAQ(t *testing.T) {
	pair := core.NewFAQPair("Wie oft kann ich zur Physiotherapie gehen?", "So oft wie verordnet.")
	faq := &fakeFAQ{match: search.FAQMatch{Pair: pair, Score: 0.82}, ok: true}
	r := newRouter(t, &fakeLocations{}, &fakeJobs{}, faq)
	resp := r.Route(context.Background(), "Wie oft kann ich zur Physiotherapie gehen?")

	assert.Equal(t, TypeFAQ, resp.Type)
	assert.Equal(t, 0.82, resp.Score)
	assert.Equal(t, "So oft wie verordnet.", resp.Answer)
}

func TestRouter_Unknown(t *testing.T) {
	faq := &fakeFAQ{suggestions: []search.FAQMatch{
		{Pair: core.NewFAQPair("Brauche ich ein Rezept?", "Ja."), Score: 0.55},
		{Pair: core.NewFAQPair("Gibt es Parkplätze?", "Ja."), Score: 0.45},
		{Pair: core.NewFAQPair("Wie lange dauert eine Behandlung?", "20 Minuten."), Score: 0.1},
	}}
	r := newRouter(t, &fakeLocations{}, &fakeJobs{}, faq)
	resp := r.Route(context.Background(), "asdkjasdkj")

	assert.Equal(t, TypeUnknown, resp.Type)
	assert.Equal(t, NoMatchMessage, resp.Message)
	assert.Equal(t, []string{"Brauche ich ein Rezept?", "Gibt es Parkplätze?"}, resp.Suggestions)

	quiet := newRouter(t, &fakeLocations{}, &fakeJobs{}, faq, WithSuggestions(0, 0))
	assert.Empty(t, quiet.Route(context.Background(), "asdkjasdkj").Suggestions)
}

func TestRouter_FAQErrorDegradesToUnknown(t *testing.T) {
	r := newRouter(t, &fakeLocations{}, &fakeJobs{}, &fakeFAQ{err: errors.New("embedding service down")})
	resp := r.Route(context.Background(), "Wie oft kann ich zur Physiotherapie gehen?")
	assert.Equal(t, TypeUnknown, resp.Type)
	assert.Empty(t, resp.Suggestions)
	assert.True(t, resp.Degraded)

	healthy := newRouter(t, &fakeLocations{}, &fakeJobs{}, &fakeFAQ{})
	assert.False(t, healthy.Route(context.Background(), "asdkjasdkj").Degraded)
}

func TestRouter_PanicBecomesErrorResponse(t *testing.T) {
	rec := &stateRecorder{}
	r := newRouter(t, &fakeLocations{panic: true}, &fakeJobs{}, &fakeFAQ{})
	resp := r.RouteWithMonitor(context.Background(), "Adresse Berlin", rec)

	assert.Equal(t, TypeError, resp.Type)
	assert.Equal(t, ErrorMessage, resp.Message)
	require.NotNil(t, rec.finished)
	assert.Equal(t, TypeError, rec.finished.Type)
}

func TestRouter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := newRouter(t, &fakeLocations{loc: berlinMitte()}, &fakeJobs{}, &fakeFAQ{})
	resp := r.Route(ctx, "Adresse Berlin")

	assert.Equal(t, TypeError, resp.Type)
	assert.Equal(t, CanceledMessage, resp.Message)
}

func TestRouter_AlwaysOneKnownShape(t *testing.T) {
	known := map[Type]bool{
		TypeLocation: true, TypeHours: true, TypeJob: true,
		TypeFAQ: true, TypeUnknown: true, TypeError: true,
	}
	routers := []*Router{
		newRouter(t, &fakeLocations{}, &fakeJobs{}, &fakeFAQ{}),
		newRouter(t, &fakeLocations{loc: berlinMitte()}, &fakeJobs{match: hamburgJobs()}, &fakeFAQ{}),
		newRouter(t, &fakeLocations{panic: true}, &fakeJobs{}, &fakeFAQ{err: errors.New("x")}),
	}
	questions := []string{
		"", "   ", "?", "Öffnungszeiten", "Jobs", "Adresse", "asdkjasdkj",
		"Physiotherapeut Jobs Hamburg", "Wie oft kann ich zur Physiotherapie gehen?",
		"ÄÖÜß ẞ --- ,,,", "mt",
	}
	for _, r := range routers {
		for _, q := range questions {
			resp := r.Route(context.Background(), q)
			assert.True(t, known[resp.Type], "%q produced %q", q, resp.Type)
		}
	}
}
