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


package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/poiesic/frontdesk/core"
)

type locationDocument struct {
	Entries []locationEntry `xml:"standort"`
}

type locationEntry struct {
	Title       string      `xml:"title"`
	City        string      `xml:"stadt"`
	Street      string      `xml:"strasse"`
	PostalCode  string      `xml:"postleitzahl"`
	Phone       string      `xml:"telefon"`
	Category    string      `xml:"primary_category"`
	Description string      `xml:"description"`
	URL         string      `xml:"standort_url"`
	Status      string      `xml:"opening_status"`
	Region      string      `xml:"region_code"`
	Hours       []hoursNode `xml:"openingHoursSpecification>hours"`
}

type hoursNode struct {
	DayOfWeek string `xml:"dayOfWeek"`
	Opens     string `xml:"opens"`
	Closes    string `xml:"closes"`
}

// ParseLocations decodes a location feed. Entries without title and city
// are skipped and counted; a document that is not XML is an error.
func ParseLocations(data []byte) ([]*core.Location, int, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, 0, fmt.Errorf("%w: empty location feed", ErrMalformedFeed)
	}
	var doc locationDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrMalformedFeed, err)
	}

	locations := make([]*core.Location, 0, len(doc.Entries))
	skipped := 0
	for _, e := range doc.Entries {
		hours := make([]core.OpeningHours, 0, len(e.Hours))
		for _, h := range e.Hours {
			hours = append(hours, core.OpeningHours{
				Weekday: strings.TrimSpace(h.DayOfWeek),
				Opens:   strings.TrimSpace(h.Opens),
				Closes:  strings.TrimSpace(h.Closes),
			})
		}
		loc := core.NewLocation(core.LocationInput{
			Title:       e.Title,
			City:        e.City,
			Street:      e.Street,
			PostalCode:  e.PostalCode,
			Phone:       e.Phone,
			Category:    strings.ToLower(strings.TrimSpace(e.Category)),
			Description: e.Description,
			URL:         e.URL,
			Status:      e.Status,
			Region:      e.Region,
			Hours:       hours,
		})
		if err := core.ValidateLocation(loc); err != nil {
			skipped++
			continue
		}
		locations = append(locations, loc)
	}
	return locations, skipped, nil
}
