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


// Package search implements the three responders behind the router.
//
// LocationMatcher fuzzy-scores a question against every location's
// composite text and applies name, alias and profession boosts.
// JobMatcher resolves a locality from the question, narrows postings by
// mentioned roles, and derives display titles from posting URLs.
// FAQMatcher embeds the question and picks the most similar FAQ question by
// cosine similarity.
//
// Every matcher reports its intermediate results to a MatchMonitor, taken
// from the context when one was attached with ContextWithMonitor.
package search
