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


package core

import "time"

// FeedSnapshot is the last successfully parsed raw payload of an upstream feed.
type FeedSnapshot struct {
	Feed      string // feed name, e.g. "locations"
	URL       string
	Payload   []byte
	FetchedAt time.Time
}

// VectorKey identifies a stored embedding by model and text.
func VectorKey(model, text string) ID {
	return IDFromContent(model + "\x00" + text)
}
