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

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poiesic/frontdesk/fuzzy"
)

// DefaultJobTitle is returned when a slug yields no usable words.
const DefaultJobTitle = "Stellenangebot"

// JobTitleSeparator joins the parts of a derived job title.
const JobTitleSeparator = " – "

// jobTitleBlacklist holds slug tokens that never appear in a derived title.
// Keys are normalized.
var jobTitleBlacklist = map[string]bool{
	"m": true, "w": true, "d": true, "in": true, "fuer": true, "der": true,
	"die": true, "und": true, "mit": true, "hausbesuche": true, "team": true,
	"std": true, "stunden": true, "woche": true, "monat": true, "jahr": true,
	"ab": true, "sofort": true, "nach": true, "vereinbarung": true, "job": true,
	"karriere": true, "bis": true, "zu": true, "haus": true, "heimbesuche": true,
	"oder": true, "vollzeit": true, "teilzeit": true,
}

// jobTitleDisplay maps normalized slug tokens to their canonical display form.
var jobTitleDisplay = map[string]string{
	"azubi":                 "(Azubi)",
	"auszubildender":        "(Azubi)",
	"leitung":               "Leitung",
	"fachliche":             "Fachliche Leitung",
	"empfang":               "Empfang",
	"rezeption":             "Rezeption",
	"rezeptionist":          "Rezeptionist",
	"rezeptionistin":        "Rezeptionistin",
	"physiotherapeut":       "Physiotherapeut",
	"physiotherapeutin":     "Physiotherapeutin",
	"kinderphysiotherapeut": "Kinderphysiotherapeut",
	"osteopath":             "Osteopath",
	"massagetherapeut":      "Massagetherapeut",
	"masseur":               "Masseur",
	"lymphdrainage":         "Lymphdrainage",
	"ergotherapeut":         "Ergotherapeut",
	"ergotherapeutin":       "Ergotherapeutin",
	"logopaede":             "Logopäde",
	"logopaedin":            "Logopädin",
	"logopaedie":            "Logopädie",
	"physiotherapie":        "Physiotherapie",
	"ergotherapie":          "Ergotherapie",
	"sportwissenschaftler":  "Sportwissenschaftler",
	"verwaltung":            "Verwaltung",
	"assistenz":             "Assistenz",
	"teamassistenz":         "Teamassistenz",
	"zentrumsmanager":       "Zentrumsmanager",
	"bereichsleitung":       "Bereichsleitung",
	"recruiting":            "Recruiting",
	"werkstudent":           "Werkstudent",
	"praktikum":             "Praktikum",
	"data":                  "Datenanalyse",
	"ki":                    "KI",
	"innovation":            "Innovation",
	"buchhaltung":           "Buchhaltung",
	"marketing":             "Marketing",
	"training":              "Training",
	"sport":                 "Sport",
	"controller":            "Controller",
	"pmi":                   "PMI Manager",
	"office":                "Office Management",
	"administration":        "Administration",
}

// JobSlug returns the last path segment of a job URL.
func JobSlug(rawURL string) string {
	return urlSlug(rawURL)
}

func urlSlug(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if u, err := url.Parse(s); err == nil && u.Path != "" {
		s = u.Path
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// LocalityFromURL returns the normalized locality of a job URL: the last
// hyphen separated slug segment that is not purely numeric. Returns "" when
// the slug has no such segment.
func LocalityFromURL(rawURL string) string {
	parts := strings.Split(JobSlug(rawURL), "-")
	for i := len(parts) - 1; i >= 0; i-- {
		tok := strings.ReplaceAll(fuzzy.Normalize(parts[i]), " ", "")
		if tok != "" && !isNumeric(tok) {
			return tok
		}
	}
	return ""
}

// DeriveJobTitle builds a human readable title and a place label from a job
// URL slug. Numeric and blacklisted tokens are dropped, known role tokens
// take their display form, other tokens mixing letters and digits are kept
// capitalized, and plain words are treated as place names.
func DeriveJobTitle(rawURL string) (title, place string) {
	var titleParts, placeParts []string
	seen := make(map[string]bool)

	for _, raw := range strings.Split(JobSlug(rawURL), "-") {
		tok := strings.ReplaceAll(fuzzy.Normalize(raw), " ", "")
		if tok == "" || isNumeric(tok) || jobTitleBlacklist[tok] {
			continue
		}
		if display, ok := jobTitleDisplay[tok]; ok {
			// "fachliche-leitung" already produced "Fachliche Leitung".
			if n := len(titleParts); n > 0 && strings.HasSuffix(titleParts[n-1], display) {
				continue
			}
			if !seen[display] {
				seen[display] = true
				titleParts = append(titleParts, display)
			}
			continue
		}
		if isPlainWord(tok) {
			placeParts = append(placeParts, capitalize(tok))
			continue
		}
		titleParts = append(titleParts, capitalize(tok))
	}

	place = strings.Join(placeParts, " ")
	if len(titleParts) > 0 {
		return strings.Join(titleParts, JobTitleSeparator), place
	}

	// No role words: fall back to the place words other than the locality.
	locality := LocalityFromURL(rawURL)
	var rest []string
	for _, p := range placeParts {
		if strings.ToLower(p) != locality {
			rest = append(rest, p)
		}
	}
	if len(rest) > 0 {
		return strings.Join(rest, JobTitleSeparator), place
	}
	return DefaultJobTitle, place
}

// GroupJobURLs groups job URLs by locality. URLs whose slug is "jobs" or
// that have no locality are skipped; duplicates are dropped.
func GroupJobURLs(urls []string) map[string][]string {
	grouped := make(map[string][]string)
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		if strings.EqualFold(JobSlug(u), "jobs") {
			continue
		}
		locality := LocalityFromURL(u)
		if locality == "" {
			continue
		}
		grouped[locality] = append(grouped[locality], u)
	}
	return grouped
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isPlainWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
