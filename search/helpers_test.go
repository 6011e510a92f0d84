package search

import (
	"context"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/intent"
)

type staticLocations []*core.Location

func (s staticLocations) Locations() []*core.Location { return s }

type staticJobs map[string][]string

func (s staticJobs) JobLocalityMap(context.Context) map[string][]string { return s }

type staticFAQ struct{ index *core.FAQIndex }

func (s staticFAQ) FAQIndex() *core.FAQIndex { return s.index }

func testClassifier() *intent.Classifier {
	return intent.NewClassifier(intent.DefaultVocabulary())
}

func berlinMitte() *core.Location {
	return core.NewLocation(core.LocationInput{
		Title:      "Berlin Mitte",
		City:       "Berlin Mitte",
		Street:     "Friedrichstraße 10",
		PostalCode: "10117",
		Category:   "physiotherapie",
		Hours:      []core.OpeningHours{{Weekday: "Monday", Opens: "08:00", Closes: "18:00"}},
	})
}

func hamburgAltona() *core.Location {
	return core.NewLocation(core.LocationInput{
		Title:      "Hamburg Altona",
		City:       "Hamburg (Altona)",
		Street:     "Große Bergstraße 5",
		PostalCode: "22767",
		Category:   "ergotherapie",
	})
}

func muenchenSchwabing() *core.Location {
	return core.NewLocation(core.LocationInput{
		Title:      "München Schwabing",
		City:       "München",
		Street:     "Leopoldstraße 20",
		PostalCode: "80802",
		Category:   "physiotherapie",
	})
}

// recordingMonitor captures matcher callbacks.
type recordingMonitor struct {
	noopMonitor
	scored   []LocationScore
	selected *core.Location
	locality string
	accepted bool
	faq      []float64
}

func (r *recordingMonitor) LocationScored(s LocationScore)              { r.scored = append(r.scored, s) }
func (r *recordingMonitor) LocationSelected(l *core.Location, _ int)    { r.selected = l }
func (r *recordingMonitor) LocalityResolved(l string, _ int, ok bool)   { r.locality, r.accepted = l, ok }
func (r *recordingMonitor) FAQScored(_ core.FAQPair, s float64, _ bool) { r.faq = append(r.faq, s) }
