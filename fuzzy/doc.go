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


// Package fuzzy provides text normalization and fuzzy string scoring used to
// match free-form questions against location and job data.
//
// All scorers return integers in [0, 100] and are pure functions, safe for
// concurrent use. Inputs should be passed through Normalize first so that
// "Köln", "koeln" and "KOELN" compare equal.
package fuzzy
