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


package catalog

import (
	"context"

	"github.com/poiesic/frontdesk/core"
)

// LocationSource loads the current location collection.
type LocationSource interface {
	LoadLocations(ctx context.Context) ([]*core.Location, error)
}

// JobSource loads job posting URLs grouped by locality.
type JobSource interface {
	LoadJobs(ctx context.Context) (map[string][]string, error)
}

// FAQSource loads FAQ pairs.
type FAQSource interface {
	LoadFAQ(ctx context.Context) ([]core.FAQPair, error)
}

// IndexBuilder embeds FAQ pairs into an index.
type IndexBuilder interface {
	BuildIndex(ctx context.Context, pairs []core.FAQPair) (*core.FAQIndex, error)
}
