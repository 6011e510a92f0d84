package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/frontdesk/core"
)

func newLocationMatcher(t *testing.T, locations []*core.Location, opts ...Option) *LocationMatcher {
	t.Helper()
	m, err := NewLocationMatcher(staticLocations(locations), testClassifier(), opts...)
	require.NoError(t, err)
	t.Cleanup(m.Release)
	return m
}

func TestNewLocationMatcher_Validation(t *testing.T) {
	_, err := NewLocationMatcher(nil, testClassifier())
	assert.ErrorIs(t, err, ErrLocationProviderRequired)

	_, err = NewLocationMatcher(staticLocations(nil), nil)
	assert.ErrorIs(t, err, ErrClassifierRequired)

	_, err = NewLocationMatcher(staticLocations(nil), testClassifier(), WithLocationScoring(LocationScoring{Threshold: -1}))
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestLocationMatcher_Match(t *testing.T) {
	berlin, hamburg, muenchen := berlinMitte(), hamburgAltona(), muenchenSchwabing()
	m := newLocationMatcher(t, []*core.Location{berlin, hamburg, muenchen})

	tests := []struct {
		question string
		want     *core.Location
	}{
		{"Öffnungszeiten Berlin Mitte", berlin},
		{"Wo ist das Zentrum in Hamburg?", hamburg},
		{"Adresse Muenchen", muenchen},
		{"Telefonnummer München Schwabing", muenchen},
		{"asdkjasdkj", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			loc, score, ok := m.Match(context.Background(), tt.question)
			if tt.want == nil {
				assert.False(t, ok)
				assert.Nil(t, loc)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want.Title, loc.Title)
			assert.Greater(t, score, DefaultLocationScoring().Threshold)
		})
	}
}

func TestLocationMatcher_EmptyCollection(t *testing.T) {
	m := newLocationMatcher(t, nil)
	_, _, ok := m.Match(context.Background(), "Öffnungszeiten Berlin Mitte")
	assert.False(t, ok)
}

func TestLocationMatcher_ThresholdIsStrict(t *testing.T) {
	berlin := berlinMitte()
	probe := newLocationMatcher(t, []*core.Location{berlin})
	total := probe.Score("Berlin Mitte", berlin).Total
	require.Positive(t, total)

	scoring := DefaultLocationScoring()
	scoring.Threshold = total
	atThreshold := newLocationMatcher(t, []*core.Location{berlin}, WithLocationScoring(scoring))
	_, _, ok := atThreshold.Match(context.Background(), "Berlin Mitte")
	assert.False(t, ok, "a total equal to the threshold must not match")

	scoring.Threshold = total - 1
	below := newLocationMatcher(t, []*core.Location{berlin}, WithLocationScoring(scoring))
	loc, score, ok := below.Match(context.Background(), "Berlin Mitte")
	require.True(t, ok)
	assert.Same(t, berlin, loc)
	assert.Equal(t, total, score)
}

func TestLocationMatcher_TieKeepsInputOrder(t *testing.T) {
	first := core.NewLocation(core.LocationInput{Title: "Berlin Mitte", City: "Berlin Mitte", Street: "Invalidenstraße 1"})
	second := core.NewLocation(core.LocationInput{Title: "Berlin Mitte", City: "Berlin Mitte", Street: "Torstraße 2"})
	m := newLocationMatcher(t, []*core.Location{first, second})

	require.Equal(t, m.Score("Berlin Mitte", first).Total, m.Score("Berlin Mitte", second).Total)
	loc, _, ok := m.Match(context.Background(), "Berlin Mitte")
	require.True(t, ok)
	assert.Same(t, first, loc)
}

func TestLocationMatcher_Boosts(t *testing.T) {
	berlin, hamburg := berlinMitte(), hamburgAltona()
	m := newLocationMatcher(t, []*core.Location{berlin, hamburg})

	t.Run("name boost needs every question word in the title", func(t *testing.T) {
		assert.Equal(t, 20, m.Score("Berlin-Mitte", berlin).NameBoost)
		assert.Equal(t, 0, m.Score("Öffnungszeiten Berlin Mitte", berlin).NameBoost)
	})

	t.Run("alias boost", func(t *testing.T) {
		assert.Equal(t, 15, m.Score("Ich suche Altona", hamburg).AliasBoost)
		assert.Equal(t, 0, m.Score("Ich suche Altona", berlin).AliasBoost)
	})

	t.Run("profession boost needs the keyword on both sides", func(t *testing.T) {
		assert.Equal(t, 10, m.Score("Physiotherapie in Berlin", berlin).ProfessionBoost)
		assert.Equal(t, 0, m.Score("Physiotherapie in Hamburg", hamburg).ProfessionBoost)
		assert.Equal(t, 10, m.Score("Ergotherapie in Hamburg", hamburg).ProfessionBoost)
	})

	t.Run("total is the sum", func(t *testing.T) {
		sc := m.Score("Physiotherapie Berlin Mitte", berlin)
		assert.Equal(t, sc.Base+sc.NameBoost+sc.AliasBoost+sc.ProfessionBoost, sc.Total)
	})
}

func TestLocationMatcher_AliasMonotonicity(t *testing.T) {
	input := core.LocationInput{Title: "Berlin", City: "Berlin", Category: "physiotherapie"}
	plain := core.NewLocation(input)
	input.URL = "https://example.com/standorte/berlin-kreuzberg/"
	withSlug := core.NewLocation(input)
	require.Greater(t, len(withSlug.Aliases), len(plain.Aliases))

	m := newLocationMatcher(t, []*core.Location{plain, withSlug})
	for _, q := range []string{"Kreuzberg", "Physio in Kreuzberg", "Berlin Kreuzberg Adresse", "Berlin"} {
		assert.GreaterOrEqual(t, m.Score(q, withSlug).Total, m.Score(q, plain).Total, q)
	}
}

func TestLocationMatcher_IgnoredAliases(t *testing.T) {
	loc := core.NewLocation(core.LocationInput{Title: "Novotergum Dortmund", City: "Dortmund"})
	plain := newLocationMatcher(t, []*core.Location{loc})
	ignoring := newLocationMatcher(t, []*core.Location{loc}, WithIgnoredAliases("NovoTergum"))

	q := "Was bietet novotergum an?"
	assert.Equal(t, 15, plain.Score(q, loc).AliasBoost)
	assert.Equal(t, 0, ignoring.Score(q, loc).AliasBoost)
}

func TestLocationMatcher_NamesInsideLongerWords(t *testing.T) {
	essen := core.NewLocation(core.LocationInput{Title: "Essen Rüttenscheid", City: "Essen", Category: "physiotherapie"})
	m := newLocationMatcher(t, []*core.Location{essen})

	sc := m.Score("Ich habe Interessen an Sport", essen)
	assert.Equal(t, 0, sc.AliasBoost)
	assert.LessOrEqual(t, sc.Total, DefaultLocationScoring().Threshold)
	_, _, ok := m.Match(context.Background(), "Ich habe Interessen an Sport")
	assert.False(t, ok)

	for _, q := range []string{"Praxis in Essen", "Öffnungszeiten Essen-Rüttenscheid"} {
		loc, _, ok := m.Match(context.Background(), q)
		require.True(t, ok, q)
		assert.Same(t, essen, loc)
	}
	assert.Equal(t, 15, m.Score("Praxis in Essen", essen).AliasBoost)
}

func TestLocationMatcher_ShortNamesNeedWholeWord(t *testing.T) {
	au := core.NewLocation(core.LocationInput{Title: "Au", City: "Au"})
	m := newLocationMatcher(t, []*core.Location{au})

	assert.Less(t, m.Score("Wie lange dauert eine Behandlung?", au).Base, 100)
	assert.Equal(t, 100, m.Score("Praxis in Au", au).Base)
}

func TestLocationMatcher_PoolSizeDoesNotChangeResult(t *testing.T) {
	var locations []*core.Location
	for i := 0; i < 40; i++ {
		locations = append(locations, core.NewLocation(core.LocationInput{
			Title: fmt.Sprintf("Standort %d", i),
			City:  fmt.Sprintf("Stadt%d", i),
		}))
	}
	locations = append(locations, berlinMitte())

	serial := newLocationMatcher(t, locations, WithPoolSize(1))
	parallel := newLocationMatcher(t, locations, WithPoolSize(8))

	for _, q := range []string{"Öffnungszeiten Berlin Mitte", "Stadt17", "nichts"} {
		locA, scoreA, okA := serial.Match(context.Background(), q)
		locB, scoreB, okB := parallel.Match(context.Background(), q)
		assert.Equal(t, okA, okB, q)
		assert.Equal(t, scoreA, scoreB, q)
		assert.Same(t, locA, locB, q)
	}
}

func TestLocationMatcher_Monitor(t *testing.T) {
	berlin, hamburg := berlinMitte(), hamburgAltona()
	m := newLocationMatcher(t, []*core.Location{berlin, hamburg})

	rec := &recordingMonitor{}
	ctx := ContextWithMonitor(context.Background(), rec)
	_, _, ok := m.Match(ctx, "Öffnungszeiten Berlin Mitte")
	require.True(t, ok)
	require.Len(t, rec.scored, 2)
	assert.Same(t, berlin, rec.scored[0].Location)
	assert.Same(t, berlin, rec.selected)
}

func TestLocationMatcher_CanceledContext(t *testing.T) {
	m := newLocationMatcher(t, []*core.Location{berlinMitte()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, ok := m.Match(ctx, "Berlin Mitte")
	assert.False(t, ok)
}
