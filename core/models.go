package core

import (
	"encoding/binary"
	"regexp"
	"sort"
	"strings"

	"github.com/go-crypt/x/blake2b"

	"github.com/poiesic/frontdesk/fuzzy"
)

// ID is a content-derived identifier for catalog entities.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// HoursUnavailable is the display text used when a location publishes no opening hours.
const HoursUnavailable = "Nicht verfügbar"

// OpeningHours is one weekday entry of a location's schedule.
type OpeningHours struct {
	Weekday string // schema.org day, e.g. "Monday" or "https://schema.org/Monday"
	Opens   string
	Closes  string
}

// LocationInput carries the raw fields of one location feed entry.
type LocationInput struct {
	Title       string
	City        string
	Street      string
	PostalCode  string
	Phone       string
	Category    string
	Description string
	URL         string
	Status      string
	Region      string
	Hours       []OpeningHours
}

// Location is a single treatment center with its derived matching data.
type Location struct {
	ID          ID
	Title       string
	City        string // as published, may carry a parenthetical annotation
	MatchCity   string // City with annotations removed, used for matching
	Address     string
	Phone       string
	MapLink     string
	Category    string
	Description string
	URL         string
	Status      string
	Region      string
	Hours       []OpeningHours
	HoursText   string
	Aliases     []string // normalized tokens and phrases that name this location
}

var annotationPattern = regexp.MustCompile(`\s*\([^)]*\)`)

// StripAnnotations removes parenthetical annotations such as "(Zentrum)".
func StripAnnotations(s string) string {
	return strings.TrimSpace(annotationPattern.ReplaceAllString(s, ""))
}

// NewLocation builds a Location from feed fields, deriving the match city,
// address, map link, hours text and aliases.
func NewLocation(in LocationInput) *Location {
	title := strings.TrimSpace(in.Title)
	city := strings.TrimSpace(in.City)
	address := strings.TrimSpace(strings.TrimSpace(in.Street) + " " + strings.TrimSpace(in.PostalCode))

	loc := &Location{
		ID:          IDFromContent(title + "|" + city + "|" + address),
		Title:       title,
		City:        city,
		MatchCity:   StripAnnotations(city),
		Address:     address,
		Phone:       strings.TrimSpace(in.Phone),
		MapLink:     MapLink(address, city),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		URL:         strings.TrimSpace(in.URL),
		Status:      strings.TrimSpace(in.Status),
		Region:      strings.TrimSpace(in.Region),
		Hours:       in.Hours,
	}
	loc.HoursText = FormatHours(in.Hours)
	loc.Aliases = locationAliases(loc)
	return loc
}

// Composite is the text a location is matched against: city, address,
// title, description and category joined by spaces.
func (l *Location) Composite() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{l.MatchCity, l.Address, l.Title, l.Description, l.Category} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// minAliasLength keeps short tokens such as "st" or "am" from becoming aliases.
const minAliasLength = 4

// genericAliasStems mark words shared by most locations (professions, "praxis").
// They say nothing about which location is meant and never become aliases.
var genericAliasStems = []string{
	"physio", "ergo", "logo", "therap", "praxis", "zentrum", "standort",
	"gesundheit", "reha", "massage", "osteo", "training",
}

func isGenericAlias(word string) bool {
	for _, stem := range genericAliasStems {
		if strings.Contains(word, stem) {
			return true
		}
	}
	return false
}

func locationAliases(l *Location) []string {
	seen := make(map[string]bool)
	add := func(alias string) {
		if alias != "" && !seen[alias] {
			seen[alias] = true
		}
	}

	add(fuzzy.Normalize(l.MatchCity))
	add(fuzzy.Normalize(StripAnnotations(l.Title)))

	var words []string
	words = append(words, fuzzy.Tokens(l.MatchCity)...)
	words = append(words, fuzzy.Tokens(l.Title)...)
	if slug := urlSlug(l.URL); slug != "" {
		words = append(words, fuzzy.Tokens(slug)...)
	}
	for _, w := range words {
		if len(w) >= minAliasLength && !fuzzy.IsStopWord(w) && !isNumeric(w) && !isGenericAlias(w) {
			add(w)
		}
	}

	aliases := make([]string, 0, len(seen))
	for a := range seen {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	return aliases
}

// FAQPair is one question and its answer from the FAQ corpus.
type FAQPair struct {
	ID       ID
	Question string
	Answer   string
}

// NewFAQPair returns a trimmed pair with a content-derived ID.
func NewFAQPair(question, answer string) FAQPair {
	q := strings.TrimSpace(question)
	return FAQPair{
		ID:       IDFromContent(q),
		Question: q,
		Answer:   strings.TrimSpace(answer),
	}
}

// FAQIndex holds FAQ pairs with one embedding vector per question.
// Vectors[i] belongs to Pairs[i].
type FAQIndex struct {
	Pairs   []FAQPair
	Vectors [][]float32
}

// Len returns the number of indexed pairs.
func (x *FAQIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.Pairs)
}

// JobPosting is one job advertisement known only by its URL.
type JobPosting struct {
	URL      string
	Locality string // normalized locality token taken from the slug
	Title    string
	Place    string
}

// NewJobPosting derives locality, title and place label from a job URL.
func NewJobPosting(url string) JobPosting {
	title, place := DeriveJobTitle(url)
	return JobPosting{
		URL:      url,
		Locality: LocalityFromURL(url),
		Title:    title,
		Place:    place,
	}
}
