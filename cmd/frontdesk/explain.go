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


package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/frontdesk/answer"
	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/intent"
	"github.com/poiesic/frontdesk/search"
)

// explainMonitor prints routing and matching decisions for ask --explain.
type explainMonitor struct {
	w io.Writer
}

var (
	_ answer.RouteMonitor = (*explainMonitor)(nil)
	_ search.MatchMonitor = (*explainMonitor)(nil)
)

func newExplainMonitor(w io.Writer) *explainMonitor {
	return &explainMonitor{w: w}
}

func (m *explainMonitor) Start(question string) {
	fmt.Fprintf(m.w, "question: %q\n", question)
}

func (m *explainMonitor) Classified(topic intent.Intent, hoursIntent bool) {
	fmt.Fprintf(m.w, "intent: %s (hours=%t)\n", topic, hoursIntent)
}

func (m *explainMonitor) State(state answer.State, matched bool) {
	fmt.Fprintf(m.w, "state %-12s matched=%t\n", state, matched)
}

func (m *explainMonitor) Finish(resp answer.Response) {
	fmt.Fprintf(m.w, "response: %s\n", resp.Type)
}

func (m *explainMonitor) LocationScored(sc search.LocationScore) {
	if sc.Total == 0 {
		return
	}
	fmt.Fprintf(m.w, "  location %-30s base=%3d name=%2d alias=%2d profession=%2d total=%3d\n",
		sc.Location.Title, sc.Base, sc.NameBoost, sc.AliasBoost, sc.ProfessionBoost, sc.Total)
}

func (m *explainMonitor) LocationSelected(loc *core.Location, total int) {
	fmt.Fprintf(m.w, "  selected %s (%d)\n", loc.Title, total)
}

func (m *explainMonitor) LocalityResolved(locality string, score int, accepted bool) {
	fmt.Fprintf(m.w, "  locality %q score=%d accepted=%t\n", locality, score, accepted)
}

func (m *explainMonitor) RolesFiltered(roles []string, before, after int) {
	fmt.Fprintf(m.w, "  roles [%s] %d -> %d postings\n", strings.Join(roles, ", "), before, after)
}

func (m *explainMonitor) FAQScored(pair core.FAQPair, similarity float64, accepted bool) {
	fmt.Fprintf(m.w, "  faq %q similarity=%.3f accepted=%t\n", pair.Question, similarity, accepted)
}
