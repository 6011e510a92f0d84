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


package search

import "errors"

var (
	// ErrLocationProviderRequired is returned when no location provider is given.
	ErrLocationProviderRequired = errors.New("location provider required")

	// ErrJobProviderRequired is returned when no job provider is given.
	ErrJobProviderRequired = errors.New("job provider required")

	// ErrFAQProviderRequired is returned when no FAQ index provider is given.
	ErrFAQProviderRequired = errors.New("faq provider required")

	// ErrEmbedderRequired is returned when no embedder is given.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrClassifierRequired is returned when no intent classifier is given.
	ErrClassifierRequired = errors.New("classifier required")

	// ErrInvalidThreshold is returned for a threshold outside its scale.
	ErrInvalidThreshold = errors.New("threshold out of range")

	// ErrInvalidLimit is returned for a non-positive display limit.
	ErrInvalidLimit = errors.New("limit must be greater than 0")
)
