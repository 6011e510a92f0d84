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


// Package answer routes a question to the location, job or FAQ matcher and
// composes the single structured response.
//
// Router tries its states in a fixed order and the first one whose matcher
// produces a result answers:
//
//  1. opening-hours question: hours of the matched location, or a fallback
//  2. job topic with postings: job list
//  3. location topic with a matched location: location
//  4. any matched location: location
//  5. job topic or job keyword with postings: job list
//  6. accepted FAQ match: FAQ answer
//  7. unknown, with FAQ suggestions when available
//
// Panics and context errors inside a state become an error response.
package answer
