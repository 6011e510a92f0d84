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

import "errors"

var (
	// ErrLocationSourceRequired is returned when no location source is provided.
	ErrLocationSourceRequired = errors.New("location source required")

	// ErrJobSourceRequired is returned when no job source is provided.
	ErrJobSourceRequired = errors.New("job source required")

	// ErrFAQSourceRequired is returned when no FAQ source is provided.
	ErrFAQSourceRequired = errors.New("faq source required")

	// ErrIndexBuilderRequired is returned when no FAQ index builder is provided.
	ErrIndexBuilderRequired = errors.New("faq index builder required")
)
