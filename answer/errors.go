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

import "errors"

var (
	// ErrClassifierRequired is returned when no classifier is provided.
	ErrClassifierRequired = errors.New("classifier required")

	// ErrLocationMatcherRequired is returned when no location matcher is provided.
	ErrLocationMatcherRequired = errors.New("location matcher required")

	// ErrJobMatcherRequired is returned when no job matcher is provided.
	ErrJobMatcherRequired = errors.New("job matcher required")

	// ErrFAQMatcherRequired is returned when no FAQ matcher is provided.
	ErrFAQMatcherRequired = errors.New("faq matcher required")
)
