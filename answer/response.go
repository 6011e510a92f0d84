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


package answer

import (
	"encoding/json"

	"github.com/poiesic/frontdesk/core"
	"github.com/poiesic/frontdesk/search"
)

// Type discriminates response shapes.
type Type string

const (
	TypeLocation Type = "location"
	TypeHours    Type = "hours"
	TypeJob      Type = "job"
	TypeFAQ      Type = "faq"
	TypeUnknown  Type = "unknown"
	TypeError    Type = "error"
)

// Fixed messages.
const (
	NoMatchMessage       = "Ich konnte leider nichts Passendes finden."
	ErrorMessage         = "Es ist ein interner Fehler aufgetreten. Bitte versuche es später erneut."
	CanceledMessage      = "Die Anfrage wurde abgebrochen."
	HoursFallbackTitle   = "Öffnungszeiten"
	HoursFallbackMessage = "Die Öffnungszeiten variieren je nach Zentrum. Nenne mir bitte den Ort oder das Zentrum, dann sage ich dir die genauen Zeiten."
)

// Response is the single answer to a question. Only the fields of its Type
// are set.
type Response struct {
	Type Type `json:"type"`

	// location
	Location *LocationData `json:"data,omitempty"`

	// hours
	LocationName string       `json:"location_name,omitempty"`
	City         string       `json:"city,omitempty"`
	Hours        []HoursEntry `json:"hours,omitempty"`
	HoursText    string       `json:"hours_text,omitempty"`

	// job; JobLocation is set when the question also named a location
	Count       int           `json:"count,omitempty"`
	Postings    []JobPosting  `json:"postings,omitempty"`
	JobLocation *LocationData `json:"location,omitempty"`

	// faq
	Question string  `json:"question,omitempty"`
	Answer   string  `json:"answer,omitempty"`
	Score    float64 `json:"score,omitempty"`

	// unknown, error
	Message     string   `json:"message,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`

	// Degraded marks an answer produced while a backing service failed.
	// It is not part of the wire format.
	Degraded bool `json:"-"`
}

// hoursShape and jobShape keep the keys of those shapes present when the
// values are empty.
type hoursShape struct {
	Type         Type         `json:"type"`
	LocationName string       `json:"location_name"`
	City         string       `json:"city"`
	Hours        []HoursEntry `json:"hours"`
	HoursText    string       `json:"hours_text,omitempty"`
}

type jobShape struct {
	Type        Type          `json:"type"`
	Count       int           `json:"count"`
	Postings    []JobPosting  `json:"postings"`
	JobLocation *LocationData `json:"location,omitempty"`
}

// MarshalJSON encodes the shape selected by Type.
func (r Response) MarshalJSON() ([]byte, error) {
	switch r.Type {
	case TypeHours:
		hours := r.Hours
		if hours == nil {
			hours = []HoursEntry{}
		}
		return json.Marshal(hoursShape{
			Type:         r.Type,
			LocationName: r.LocationName,
			City:         r.City,
			Hours:        hours,
			HoursText:    r.HoursText,
		})
	case TypeJob:
		postings := r.Postings
		if postings == nil {
			postings = []JobPosting{}
		}
		return json.Marshal(jobShape{
			Type:        r.Type,
			Count:       r.Count,
			Postings:    postings,
			JobLocation: r.JobLocation,
		})
	}
	type plain Response
	return json.Marshal(plain(r))
}

// LocationData is the public view of a location.
type LocationData struct {
	Title       string       `json:"title"`
	City        string       `json:"city"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone,omitempty"`
	MapLink     string       `json:"map_link"`
	Category    string       `json:"category,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Status      string       `json:"status,omitempty"`
	HoursText   string       `json:"hours_text"`
	Hours       []HoursEntry `json:"hours,omitempty"`
}

// HoursEntry is one opening-hours triple as given by the feed.
type HoursEntry struct {
	Weekday string `json:"weekday"`
	Opens   string `json:"opens"`
	Closes  string `json:"closes"`
}

// JobPosting is a posting as shown to the user.
type JobPosting struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Place string `json:"place,omitempty"`
}

func hoursEntries(hours []core.OpeningHours) []HoursEntry {
	if len(hours) == 0 {
		return nil
	}
	out := make([]HoursEntry, len(hours))
	for i, h := range hours {
		out[i] = HoursEntry{Weekday: h.Weekday, Opens: h.Opens, Closes: h.Closes}
	}
	return out
}

func newLocationData(loc *core.Location) *LocationData {
	return &LocationData{
		Title:       loc.Title,
		City:        loc.City,
		Address:     loc.Address,
		Phone:       loc.Phone,
		MapLink:     loc.MapLink,
		Category:    loc.Category,
		Description: loc.Description,
		URL:         loc.URL,
		Status:      loc.Status,
		HoursText:   loc.HoursText,
		Hours:       hoursEntries(loc.Hours),
	}
}

// LocationResponse describes a location.
func LocationResponse(loc *core.Location) Response {
	return Response{Type: TypeLocation, Location: newLocationData(loc)}
}

// HoursResponse reports the opening hours of a location.
func HoursResponse(loc *core.Location) Response {
	name := loc.Title
	if name == "" {
		name = loc.MatchCity
	}
	return Response{
		Type:         TypeHours,
		LocationName: name,
		City:         loc.City,
		Hours:        hoursEntries(loc.Hours),
		HoursText:    loc.HoursText,
	}
}

// HoursFallbackResponse is the FAQ-shaped answer to an hours question that
// names no known location.
func HoursFallbackResponse() Response {
	return Response{
		Type:     TypeFAQ,
		Question: HoursFallbackTitle,
		Answer:   HoursFallbackMessage,
		Score:    1,
	}
}

// JobResponse lists postings. loc may be nil.
func JobResponse(match search.JobMatch, loc *core.Location) Response {
	postings := make([]JobPosting, len(match.Postings))
	for i, p := range match.Postings {
		postings[i] = JobPosting{URL: p.URL, Title: p.Title, Place: p.Place}
	}
	resp := Response{Type: TypeJob, Count: match.Total, Postings: postings}
	if loc != nil {
		resp.JobLocation = newLocationData(loc)
	}
	return resp
}

// FAQResponse answers from the FAQ.
func FAQResponse(match search.FAQMatch) Response {
	return Response{
		Type:     TypeFAQ,
		Question: match.Pair.Question,
		Answer:   match.Pair.Answer,
		Score:    match.Score,
	}
}

// UnknownResponse reports that nothing matched.
func UnknownResponse(suggestions []string) Response {
	return Response{Type: TypeUnknown, Message: NoMatchMessage, Suggestions: suggestions}
}

// ErrorResponse carries a message that is safe to show.
func ErrorResponse(message string) Response {
	return Response{Type: TypeError, Message: message}
}
