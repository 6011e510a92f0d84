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


package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/frontdesk/answer"
)

// renderText prints a response the way a chat front end would show it.
func renderText(w io.Writer, resp answer.Response) error {
	var b strings.Builder
	switch resp.Type {
	case answer.TypeLocation:
		loc := resp.Location
		fmt.Fprintf(&b, "%s\n%s, %s\n", loc.Title, loc.Address, loc.City)
		if loc.Phone != "" {
			fmt.Fprintf(&b, "Telefon: %s\n", loc.Phone)
		}
		fmt.Fprintf(&b, "Öffnungszeiten: %s\n", loc.HoursText)
		fmt.Fprintf(&b, "Karte: %s\n", loc.MapLink)
	case answer.TypeHours:
		fmt.Fprintf(&b, "Öffnungszeiten %s (%s)\n%s\n", resp.LocationName, resp.City, resp.HoursText)
	case answer.TypeJob:
		fmt.Fprintf(&b, "%d passende Stellen", resp.Count)
		if resp.JobLocation != nil {
			fmt.Fprintf(&b, " bei %s", resp.JobLocation.Title)
		}
		b.WriteString(":\n")
		for _, p := range resp.Postings {
			if p.Place != "" {
				fmt.Fprintf(&b, "- %s (%s)\n  %s\n", p.Title, p.Place, p.URL)
				continue
			}
			fmt.Fprintf(&b, "- %s\n  %s\n", p.Title, p.URL)
		}
	case answer.TypeFAQ:
		fmt.Fprintf(&b, "%s\n%s\n", resp.Question, resp.Answer)
	default:
		fmt.Fprintln(&b, resp.Message)
		if len(resp.Suggestions) > 0 {
			b.WriteString("Meintest du vielleicht:\n")
			for _, s := range resp.Suggestions {
				fmt.Fprintf(&b, "- %s\n", s)
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
