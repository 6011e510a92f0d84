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
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scorer compares two strings and returns a similarity in [0, 100].
type Scorer func(a, b string) int

// Ratio is the edit-distance similarity of a and b scaled to [0, 100].
// Inputs are compared as given; callers normalize both sides first.
func Ratio(a, b string) int {
	if a == b {
		if a == "" {
			return 0
		}
		return 100
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := max(la, lb)
	if la == 0 || lb == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(d)/float64(longest))))
}

// PartialRatio is the best Ratio of the shorter string against every
// equally long window of the longer one.
func PartialRatio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	short, long := ra, rb
	if len(short) > len(long) {
		short, long = long, short
	}
	shortStr := string(short)
	if strings.Contains(string(long), shortStr) {
		return 100
	}

	best := 0
	for i := 0; i+len(short) <= len(long); i++ {
		score := Ratio(shortStr, string(long[i:i+len(short)]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// WordPartialRatio is PartialRatio with windows that start and end on word
// boundaries of the longer string. Windows span up to one word more than the
// shorter string has, which keeps split and joined spellings comparable.
func WordPartialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	short, long := a, b
	if len([]rune(short)) > len([]rune(long)) {
		short, long = long, short
	}
	words := strings.Fields(long)
	span := len(strings.Fields(short)) + 1

	best := 0
	for i := range words {
		for j := i + 1; j <= len(words) && j-i <= span; j++ {
			score := Ratio(short, strings.Join(words[i:j], " "))
			if score > best {
				best = score
				if best == 100 {
					return best
				}
			}
		}
	}
	return best
}

// TokenSetRatio compares the content-word sets of a and b, ignoring order,
// duplicates, and stop words. A query whose words are a subset of the
// other side scores 100.
func TokenSetRatio(a, b string) int {
	setA := uniqueSorted(ContentTokens(a))
	setB := uniqueSorted(ContentTokens(b))
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inB := make(map[string]bool, len(setB))
	for _, t := range setB {
		inB[t] = true
	}
	var common, onlyA, onlyB []string
	inA := make(map[string]bool, len(setA))
	for _, t := range setA {
		inA[t] = true
		if inB[t] {
			common = append(common, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for _, t := range setB {
		if !inA[t] {
			onlyB = append(onlyB, t)
		}
	}

	if len(common) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	base := strings.Join(common, " ")
	withA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := Ratio(withA, withB)
	if base != "" {
		best = max(best, Ratio(base, withA), Ratio(base, withB))
	}
	return best
}

func uniqueSorted(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// Match is the best candidate found by ExtractOne.
type Match struct {
	Choice string
	Index  int
	Score  int
}

// ExtractOne returns the highest scoring choice for query. Ties keep the
// earliest choice. ok is false when choices is empty.
func ExtractOne(query string, choices []string, scorer Scorer) (Match, bool) {
	if len(choices) == 0 {
		return Match{}, false
	}
	if scorer == nil {
		scorer = PartialRatio
	}
	best := Match{Index: -1, Score: -1}
	for i, c := range choices {
		if s := scorer(query, c); s > best.Score {
			best = Match{Choice: c, Index: i, Score: s}
		}
	}
	return best, true
}
