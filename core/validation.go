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

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateLocation validates a Location according to domain rules.
//
// Validation rules:
//   - Title or City must not be empty
//
// Everything else is optional; feeds routinely omit phone numbers and hours.
func ValidateLocation(loc *Location) error {
	if loc == nil {
		return fmt.Errorf("%w: location is nil", ErrInvalidLocation)
	}
	if strings.TrimSpace(loc.Title) == "" && strings.TrimSpace(loc.City) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLocation, ErrEmptyLocationName)
	}
	return nil
}

// ValidateFAQPair validates that both question and answer are present.
func ValidateFAQPair(pair FAQPair) error {
	if strings.TrimSpace(pair.Question) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFAQPair, ErrEmptyQuestion)
	}
	if strings.TrimSpace(pair.Answer) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFAQPair, ErrEmptyAnswer)
	}
	return nil
}

// ValidateFAQIndex checks that every pair has exactly one vector.
func ValidateFAQIndex(index *FAQIndex) error {
	if index == nil {
		return nil
	}
	if len(index.Pairs) != len(index.Vectors) {
		return fmt.Errorf("%w: %d pairs, %d vectors", ErrVectorCountMismatch, len(index.Pairs), len(index.Vectors))
	}
	return nil
}

// ValidateJobURL validates that a URL parses and yields a locality.
func ValidateJobURL(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJobURL, err)
	}
	if u.Path == "" || LocalityFromURL(rawURL) == "" {
		return fmt.Errorf("%w: %q has no locality", ErrInvalidJobURL, rawURL)
	}
	return nil
}
