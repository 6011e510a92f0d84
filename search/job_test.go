package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	physioHamburg    = "https://example.com/jobs/physiotherapeut-hamburg-1234"
	rezeptionHamburg = "https://example.com/jobs/rezeption-m-w-d-hamburg-55"
	ergoBerlin       = "https://example.com/jobs/ergotherapeut-berlin-7"
)

func testJobs() staticJobs {
	return staticJobs{
		"hamburg": {physioHamburg, rezeptionHamburg},
		"berlin":  {ergoBerlin},
	}
}

func newJobMatcher(t *testing.T, jobs staticJobs, opts ...Option) *JobMatcher {
	t.Helper()
	m, err := NewJobMatcher(jobs, testClassifier(), opts...)
	require.NoError(t, err)
	return m
}

func urlsOf(m JobMatch) []string {
	out := make([]string, len(m.Postings))
	for i, p := range m.Postings {
		out[i] = p.URL
	}
	return out
}

func TestNewJobMatcher_Validation(t *testing.T) {
	_, err := NewJobMatcher(nil, testClassifier())
	assert.ErrorIs(t, err, ErrJobProviderRequired)
	_, err = NewJobMatcher(testJobs(), nil)
	assert.ErrorIs(t, err, ErrClassifierRequired)
	_, err = NewJobMatcher(testJobs(), testClassifier(), WithDisplayLimit(0))
	assert.ErrorIs(t, err, ErrInvalidLimit)
	_, err = NewJobMatcher(testJobs(), testClassifier(), WithLocalityThreshold(101))
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestJobMatcher_RoleAndLocality(t *testing.T) {
	m := newJobMatcher(t, testJobs())
	match := m.Match(context.Background(), "Physiotherapeut Jobs Hamburg")

	assert.Equal(t, "hamburg", match.Locality)
	assert.Equal(t, 100, match.LocalityScore)
	assert.Equal(t, []string{"physiotherapie"}, match.Roles)
	require.Equal(t, 1, match.Total)
	require.Len(t, match.Postings, 1)
	assert.Equal(t, physioHamburg, match.Postings[0].URL)
	assert.Equal(t, "Physiotherapeut", match.Postings[0].Title)
	assert.Equal(t, "Hamburg", match.Postings[0].Place)
}

func TestJobMatcher_LocalityOnly(t *testing.T) {
	m := newJobMatcher(t, testJobs())
	match := m.Match(context.Background(), "Welche Stellen gibt es in Hamburg?")

	assert.Equal(t, "hamburg", match.Locality)
	assert.Equal(t, 2, match.Total)
	assert.Equal(t, []string{physioHamburg, rezeptionHamburg}, urlsOf(match))
}

func TestJobMatcher_NoLocalityFallsBackToUnion(t *testing.T) {
	m := newJobMatcher(t, testJobs())
	match := m.Match(context.Background(), "Welche Jobs habt ihr?")

	assert.Empty(t, match.Locality)
	assert.Less(t, match.LocalityScore, DefaultLocalityThreshold)
	assert.Equal(t, 3, match.Total)
	assert.ElementsMatch(t, []string{physioHamburg, rezeptionHamburg, ergoBerlin}, urlsOf(match))
}

func TestJobMatcher_RoleFilterNeverEmptiesResult(t *testing.T) {
	m := newJobMatcher(t, testJobs())
	match := m.Match(context.Background(), "Jobs als Logopäde in Hamburg")

	assert.Equal(t, []string{"logopaedie"}, match.Roles)
	assert.Equal(t, []string{physioHamburg, rezeptionHamburg}, urlsOf(match))
}

func TestJobMatcher_RoleFilterAcrossUnion(t *testing.T) {
	m := newJobMatcher(t, testJobs())
	match := m.Match(context.Background(), "Ergotherapeut gesucht?")

	assert.Equal(t, []string{ergoBerlin}, urlsOf(match))
}

func TestJobMatcher_DisplayLimit(t *testing.T) {
	var urls []string
	for i := 0; i < 7; i++ {
		urls = append(urls, fmt.Sprintf("https://example.com/jobs/physiotherapeut-essen-%d", i))
	}
	m := newJobMatcher(t, staticJobs{"essen": urls})

	match := m.Match(context.Background(), "Jobs Essen")
	assert.Equal(t, 7, match.Total)
	assert.Equal(t, urls[:DefaultDisplayLimit], urlsOf(match))

	limited := newJobMatcher(t, staticJobs{"essen": urls}, WithDisplayLimit(2))
	assert.Len(t, limited.Match(context.Background(), "Jobs Essen").Postings, 2)
}

func TestJobMatcher_SubsetProperty(t *testing.T) {
	jobs := testJobs()
	m := newJobMatcher(t, jobs)
	all := map[string]bool{}
	for _, urls := range jobs {
		for _, u := range urls {
			all[u] = true
		}
	}

	for _, q := range []string{"Jobs Hamburg", "Jobs in Berlin", "Rezeption", "Karriere", "Physio Hamburg"} {
		match := m.Match(context.Background(), q)
		allowed := all
		if match.LocalityScore >= DefaultLocalityThreshold {
			allowed = map[string]bool{}
			for _, u := range jobs[match.Locality] {
				allowed[u] = true
			}
		}
		for _, u := range urlsOf(match) {
			assert.True(t, allowed[u], "%q returned %s", q, u)
		}
	}
}

func TestJobMatcher_Empty(t *testing.T) {
	m := newJobMatcher(t, staticJobs{})
	match := m.Match(context.Background(), "Physiotherapeut Jobs Hamburg")
	assert.True(t, match.Empty())
	assert.Empty(t, match.Postings)
}

func TestJobMatcher_Monitor(t *testing.T) {
	m := newJobMatcher(t, testJobs())
	rec := &recordingMonitor{}
	m.MatchWithMonitor(context.Background(), "Jobs Hamburg", rec)
	assert.Equal(t, "hamburg", rec.locality)
	assert.True(t, rec.accepted)
}
