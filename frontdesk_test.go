package frontdesk

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/frontdesk/ai/mock"
	"github.com/poiesic/frontdesk/answer"
	"github.com/poiesic/frontdesk/cache"
	"github.com/poiesic/frontdesk/config"
	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/intent"
	"github.com/poiesic/frontdesk/search"
)

const standorteXML = `<?xml version="1.0" encoding="UTF-8"?>
<standorte>
  <standort>
    <title>Berlin Mitte</title>
    <stadt>Berlin Mitte</stadt>
    <strasse>Friedrichstraße 10</strasse>
    <postleitzahl>10117</postleitzahl>
    <openingHoursSpecification>
      <hours><dayOfWeek>https://schema.org/Monday</dayOfWeek><opens>08:00</opens><closes>18:00</closes></hours>
    </openingHoursSpecification>
  </standort>
  <standort>
    <title>Hamburg Altona</title>
    <stadt>Hamburg (Altona)</stadt>
    <strasse>Große Bergstraße 5</strasse>
    <postleitzahl>22767</postleitzahl>
    <primary_category>ergotherapie</primary_category>
  </standort>
</standorte>`

const jobSitemapXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/jobs/</loc></url>
  <url><loc>https://example.com/jobs/physiotherapeut-hamburg-1234</loc></url>
  <url><loc>https://example.com/jobs/rezeption-berlin-99</loc></url>
</urlset>`

const physioFAQ = "Wie oft kann ich zur Physiotherapie gehen?"

type fixture struct {
	svc      *Service
	embedder *mock.MockEmbedder
	cache    *cache.MemoryClient
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	locations := filepath.Join(dir, "standorte.xml")
	jobs := filepath.Join(dir, "jobs.xml")
	faqDir := filepath.Join(dir, "faq")
	require.NoError(t, os.WriteFile(locations, []byte(standorteXML), 0o644))
	require.NoError(t, os.WriteFile(jobs, []byte(jobSitemapXML), 0o644))
	require.NoError(t, os.MkdirAll(faqDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(faqDir, "rezept.txt"),
		[]byte("Frage: "+physioFAQ+"\nAntwort: So oft wie Ihr Rezept es vorsieht.\n"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Feeds.LocationsURL = locations
	cfg.Feeds.JobsURL = jobs
	cfg.FAQ.Directory = faqDir
	cfg.Embedding.CacheSize = 0

	embedder := mock.NewMockEmbedder().WithVectors(map[string][]float32{
		physioFAQ:    {1, 0},
		"asdkjasdkj": {0, 1},
	})
	answers := cache.NewMemoryClient(16, 0)

	svc, err := New(cfg, WithEmbedder(embedder), WithCache(answers))
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	require.NoError(t, svc.Reload(context.Background()))

	return &fixture{svc: svc, embedder: embedder, cache: answers}
}

func TestService_Reload(t *testing.T) {
	f := newFixture(t)

	stats := f.svc.Stats()
	assert.Equal(t, 2, stats.Locations)
	assert.Equal(t, 1, stats.FAQPairs)
	assert.Equal(t, 2, stats.Localities)
	assert.Equal(t, 2, stats.JobPostings)
	assert.False(t, stats.LoadedAt.IsZero())
}

func TestService_Ask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("hours", func(t *testing.T) {
		resp := f.svc.Ask(ctx, "Öffnungszeiten Berlin Mitte")
		require.Equal(t, answer.TypeHours, resp.Type)
		assert.Equal(t, "Berlin Mitte", resp.LocationName)
		assert.Equal(t, "Montag: 08:00–18:00", resp.HoursText)
	})

	t.Run("jobs", func(t *testing.T) {
		resp := f.svc.Ask(ctx, "Physiotherapeut Jobs Hamburg")
		require.Equal(t, answer.TypeJob, resp.Type)
		require.Len(t, resp.Postings, 1)
		assert.Equal(t, "https://example.com/jobs/physiotherapeut-hamburg-1234", resp.Postings[0].URL)
	})

	t.Run("faq", func(t *testing.T) {
		resp := f.svc.Ask(ctx, physioFAQ)
		require.Equal(t, answer.TypeFAQ, resp.Type)
		assert.Equal(t, "So oft wie Ihr Rezept es vorsieht.", resp.Answer)
		assert.InDelta(t, 1.0, resp.Score, 1e-9)
	})

	t.Run("unknown", func(t *testing.T) {
		resp := f.svc.Ask(ctx, "asdkjasdkj")
		assert.Equal(t, answer.TypeUnknown, resp.Type)
		assert.Equal(t, answer.NoMatchMessage, resp.Message)
	})
}

func TestService_AnswerCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.svc.Ask(ctx, physioFAQ)
	require.Equal(t, answer.TypeFAQ, first.Type)
	calls := f.embedder.CallCount()

	second := f.svc.Ask(ctx, "  wie oft kann ich zur physiotherapie gehen ")
	assert.Equal(t, first, second)
	assert.Equal(t, calls, f.embedder.CallCount(), "cached answers skip embedding")
	assert.Positive(t, f.cache.Len())

	require.NoError(t, f.svc.Reload(ctx))
	assert.Equal(t, 0, f.cache.Len(), "reload purges cached answers")
}

func TestService_DegradedNotCached(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	healthy := f.embedder.EmbedTextFunc
	f.embedder.WithEmbedTextFunc(func(context.Context, string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	})
	resp := f.svc.Ask(ctx, physioFAQ)
	assert.Equal(t, answer.TypeUnknown, resp.Type)
	assert.Equal(t, 0, f.cache.Len(), "answers from a failing embedder are not cached")

	f.embedder.WithEmbedTextFunc(healthy)
	resp = f.svc.Ask(ctx, physioFAQ)
	assert.Equal(t, answer.TypeFAQ, resp.Type)
	assert.Equal(t, 1, f.cache.Len())
}

func TestService_CanceledNotCached(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := f.svc.Ask(ctx, "Öffnungszeiten Berlin Mitte")
	assert.Equal(t, answer.TypeError, resp.Type)
	assert.Equal(t, answer.CanceledMessage, resp.Message)
	assert.Equal(t, 0, f.cache.Len())
}

type stateRecorder struct {
	states []answer.State
}

func (r *stateRecorder) Start(string)                   {}
func (r *stateRecorder) Classified(intent.Intent, bool) {}
func (r *stateRecorder) State(s answer.State, _ bool)   { r.states = append(r.states, s) }
func (r *stateRecorder) Finish(answer.Response)         {}

func TestService_AskWithMonitor(t *testing.T) {
	f := newFixture(t)
	routes := &stateRecorder{}
	matches := &scoreRecorder{}

	resp := f.svc.AskWithMonitor(context.Background(), physioFAQ, routes, matches)
	require.Equal(t, answer.TypeFAQ, resp.Type)
	assert.Equal(t, []answer.State{answer.StateLocation, answer.StateFAQ}, routes.states)
	assert.Equal(t, 2, matches.locations, "every location is scored")
	assert.Equal(t, 1, matches.faq)
	assert.Equal(t, 0, f.cache.Len(), "monitored answers bypass the cache")
}

type scoreRecorder struct {
	locations int
	faq       int
}

func (r *scoreRecorder) LocationScored(search.LocationScore)   { r.locations++ }
func (r *scoreRecorder) LocationSelected(*core.Location, int)  {}
func (r *scoreRecorder) LocalityResolved(string, int, bool)    {}
func (r *scoreRecorder) RolesFiltered([]string, int, int)      {}
func (r *scoreRecorder) FAQScored(core.FAQPair, float64, bool) { r.faq++ }
