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


package feed

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyURL indicates a fetch without a URL.
	ErrEmptyURL = errors.New("feed url cannot be empty")

	// ErrFetcherRequired indicates a source built without a Fetcher.
	ErrFetcherRequired = errors.New("fetcher is required")

	// ErrMalformedFeed indicates a payload that is not the expected XML document.
	ErrMalformedFeed = errors.New("malformed feed")

	// ErrNoSnapshot indicates a failed fetch with no stored snapshot to fall back on.
	ErrNoSnapshot = errors.New("no snapshot available")
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed: %s returned http status %d", e.URL, e.StatusCode)
}
