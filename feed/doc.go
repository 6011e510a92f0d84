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


// Package feed fetches and parses the upstream data sources: the location
// XML feed, the job sitemap, and the FAQ text directory.
//
// Every network fetch has a per-attempt timeout and bounded retries. Sources
// store each good payload in a storage.SnapshotRepository and parse the last
// snapshot when a later fetch fails. Malformed entries are skipped; only a
// document that cannot be decoded at all is reported as an error.
package feed
