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

import "errors"

// Domain validation errors
var (
	// ErrInvalidLocation indicates a Location failed validation.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrEmptyLocationName indicates a location has neither title nor city.
	ErrEmptyLocationName = errors.New("location needs a title or city")

	// ErrInvalidFAQPair indicates an FAQPair failed validation.
	ErrInvalidFAQPair = errors.New("invalid faq pair")

	// ErrEmptyQuestion indicates the Question field is empty.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrEmptyAnswer indicates the Answer field is empty.
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrInvalidJobURL indicates a job URL cannot be mapped to a locality.
	ErrInvalidJobURL = errors.New("invalid job url")

	// ErrVectorCountMismatch indicates an FAQ index whose vectors do not line up with its pairs.
	ErrVectorCountMismatch = errors.New("vector count does not match pair count")
)
