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


package fuzzy

// stopWords holds normalized German and English filler words that carry no
// matching signal. Entries are already in Normalize form.
var stopWords = map[string]bool{
	// German
	"der": true, "die": true, "das": true, "den": true, "dem": true, "des": true,
	"ein": true, "eine": true, "einen": true, "einem": true, "einer": true,
	"und": true, "oder": true, "aber": true, "in": true, "im": true, "am": true,
	"an": true, "auf": true, "aus": true, "bei": true, "mit": true, "nach": true,
	"von": true, "vom": true, "zu": true, "zum": true, "zur": true, "fuer": true,
	"ist": true, "sind": true, "bin": true, "hat": true, "habe": true, "haben": true,
	"ich": true, "du": true, "sie": true, "wir": true, "ihr": true, "es": true,
	"mein": true, "meine": true, "ihre": true, "euer": true,
	"wie": true, "was": true, "wo": true, "wann": true, "welche": true, "welcher": true,
	"gibt": true, "kann": true, "koennen": true, "man": true,
	"bitte": true, "auch": true, "noch": true, "nicht": true, "kein": true,
	"hallo": true, "danke": true, "st": true,
	// English
	"the": true, "a": true, "and": true, "or": true, "of": true,
	"to": true, "for": true, "with": true, "is": true, "are": true, "what": true,
	"where": true, "when": true, "how": true, "can": true, "i": true, "my": true,
}

// IsStopWord reports whether a normalized word is a stop word.
func IsStopWord(word string) bool {
	return stopWords[word]
}
