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


package config

import "errors"

var (
	// ErrInvalidPort is returned when the server port is outside 1..65535.
	ErrInvalidPort = errors.New("invalid server port")

	// ErrFeedURLRequired is returned when a feed URL is empty.
	ErrFeedURLRequired = errors.New("locations_url and jobs_url are required")

	// ErrEmbeddingModelRequired is returned when no embedding model is set.
	ErrEmbeddingModelRequired = errors.New("embedding model is required")

	// ErrInvalidThreshold is returned for out-of-range matching thresholds.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrInvalidCacheDriver is returned for an unknown cache driver.
	ErrInvalidCacheDriver = errors.New("invalid cache driver")

	// ErrInvalidValue is returned for other out-of-range settings.
	ErrInvalidValue = errors.New("invalid config value")
)
