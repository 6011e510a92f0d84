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


// Package intent implements the lexical intent classifier.
//
// A question is classified as a location or a job question by whichever
// keyword set has the earliest match. The package also detects opening-hours
// questions and extracts the profession roles a question mentions. All
// keyword lists live in a single Vocabulary so they can be tuned from
// configuration.
package intent
