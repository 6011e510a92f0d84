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


package intent

import (
	"sort"
	"strings"

	"github.com/poiesic/frontdesk/fuzzy"
)

// Intent is the inferred topic of a question.
type Intent int

const (
	// Undecided means neither topic was mentioned first.
	Undecided Intent = iota
	// Location means the question is primarily about a center.
	Location
	// Job means the question is primarily about a job posting.
	Job
)

func (i Intent) String() string {
	switch i {
	case Location:
		return "location"
	case Job:
		return "job"
	default:
		return "undecided"
	}
}

// shortTermLength is the length below which a term must match a whole word,
// so "mt" does not fire inside "mitte".
const shortTermLength = 4

// Classifier decides which domain a question concerns using keyword
// positions. It is immutable and safe for concurrent use.
type Classifier struct {
	location   []string
	job        []string
	hours      []string
	roles      map[string][]string
	roleKeys   []string
	profession []string
}

// NewClassifier builds a Classifier with every keyword normalized.
func NewClassifier(v Vocabulary) *Classifier {
	c := &Classifier{
		location:   normalizeAll(v.LocationKeywords),
		job:        normalizeAll(v.JobKeywords),
		hours:      normalizeAll(v.HoursKeywords),
		roles:      make(map[string][]string, len(v.Roles)),
		profession: normalizeAll(v.ProfessionKeywords),
	}
	for key, synonyms := range v.Roles {
		c.roles[key] = normalizeAll(synonyms)
		c.roleKeys = append(c.roleKeys, key)
	}
	sort.Strings(c.roleKeys)
	return c
}

func normalizeAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if n := fuzzy.Normalize(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Classify returns the topic whose keyword occurs first in the question.
// Equal offsets, including no keywords at all, yield Undecided.
func (c *Classifier) Classify(question string) Intent {
	q := fuzzy.Normalize(question)
	loc := firstOffset(q, c.location)
	job := firstOffset(q, c.job)
	switch {
	case loc < job:
		return Location
	case job < loc:
		return Job
	default:
		return Undecided
	}
}

// HasOpeningHoursIntent reports whether the question asks about opening hours.
func (c *Classifier) HasOpeningHoursIntent(question string) bool {
	return containsAny(fuzzy.Normalize(question), c.hours)
}

// HasJobKeyword reports whether any job keyword occurs in the question.
func (c *Classifier) HasJobKeyword(question string) bool {
	return containsAny(fuzzy.Normalize(question), c.job)
}

// HasLocationKeyword reports whether any location keyword occurs in the question.
func (c *Classifier) HasLocationKeyword(question string) bool {
	return containsAny(fuzzy.Normalize(question), c.location)
}

// MentionedRoles returns the sorted role keys with at least one synonym in
// the question.
func (c *Classifier) MentionedRoles(question string) []string {
	q := fuzzy.Normalize(question)
	var keys []string
	for _, key := range c.roleKeys {
		if containsAny(q, c.roles[key]) {
			keys = append(keys, key)
		}
	}
	return keys
}

// RoleSynonyms returns the normalized synonyms of the given role keys.
func (c *Classifier) RoleSynonyms(keys []string) []string {
	var out []string
	for _, key := range keys {
		out = append(out, c.roles[key]...)
	}
	return out
}

// ProfessionKeywords returns the normalized profession keywords.
func (c *Classifier) ProfessionKeywords() []string {
	return c.profession
}

// ContainsTerm reports whether normalized text contains a normalized term.
// Terms shorter than four bytes must match a whole word.
func ContainsTerm(text, term string) bool {
	return IndexTerm(text, term) >= 0
}

// IndexTerm returns the byte offset of the first occurrence of term in
// text, or -1.
func IndexTerm(text, term string) int {
	if term == "" {
		return -1
	}
	if len(term) >= shortTermLength {
		return strings.Index(text, term)
	}
	return IndexWord(text, term)
}

// ContainsWord reports whether term occurs in normalized text on word
// boundaries at both ends.
func ContainsWord(text, term string) bool {
	return IndexWord(text, term) >= 0
}

// IndexWord returns the byte offset of the first occurrence of term that
// starts and ends on a word boundary, or -1.
func IndexWord(text, term string) int {
	if term == "" {
		return -1
	}
	for from := 0; from <= len(text)-len(term); {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return -1
		}
		start := from + i
		end := start + len(term)
		if (start == 0 || text[start-1] == ' ') && (end == len(text) || text[end] == ' ') {
			return start
		}
		from = start + 1
	}
	return -1
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if ContainsTerm(text, t) {
			return true
		}
	}
	return false
}

// notFound sorts after every real offset.
const notFound = int(^uint(0) >> 1)

func firstOffset(text string, terms []string) int {
	best := notFound
	for _, t := range terms {
		if i := IndexTerm(text, t); i >= 0 && i < best {
			best = i
		}
	}
	return best
}
