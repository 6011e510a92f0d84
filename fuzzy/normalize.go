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

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// germanFolds transliterates umlauts and sharp s the way German speakers type
// them on keyboards without the characters ("Köln" -> "koeln").
var germanFolds = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
	"ẞ", "ss",
)

// Normalize lowercases text, transliterates German umlauts, folds remaining
// diacritics, and replaces every rune that is not a letter or digit with a
// single space. It must be applied to both sides of every comparison.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(norm.NFC.String(text))
	s = germanFolds.Replace(s)
	s = foldDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}
	return b.String()
}

// foldDiacritics strips combining marks ("é" -> "e").
// A new transformer is built per call because chained transformers carry state.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Tokens splits normalized text into words.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// ContentTokens splits normalized text into words and drops stop words.
func ContentTokens(text string) []string {
	words := Tokens(text)
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if !IsStopWord(w) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
