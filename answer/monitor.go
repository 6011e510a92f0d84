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

import "github.com/poiesic/frontdesk/intent"

// RouteMonitor provides hooks to observe routing.
type RouteMonitor interface {
	Start(question string)
	Classified(topic intent.Intent, hoursIntent bool)
	State(state State, matched bool)
	Finish(resp Response)
}

// noopMonitor is a no-op implementation of RouteMonitor
type noopMonitor struct{}

var _ RouteMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                     {}
func (n *noopMonitor) Classified(_ intent.Intent, _ bool) {}
func (n *noopMonitor) State(_ State, _ bool)              {}
func (n *noopMonitor) Finish(_ Response)                  {}
