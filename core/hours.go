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
	"strings"
)

var germanWeekdays = map[string]string{
	"monday":    "Montag",
	"tuesday":   "Dienstag",
	"wednesday": "Mittwoch",
	"thursday":  "Donnerstag",
	"friday":    "Freitag",
	"saturday":  "Samstag",
	"sunday":    "Sonntag",
}

// GermanWeekday translates a schema.org weekday ("Monday" or
// "https://schema.org/Monday") into German. Unknown values are returned as given.
func GermanWeekday(day string) string {
	d := strings.TrimSpace(day)
	if i := strings.LastIndex(d, "/"); i >= 0 {
		d = d[i+1:]
	}
	if de, ok := germanWeekdays[strings.ToLower(d)]; ok {
		return de
	}
	return d
}

// FormatHours renders a schedule as "Montag: 08:00–18:00 | Dienstag: ...".
// Entries missing the day or either time are left out.
func FormatHours(hours []OpeningHours) string {
	parts := make([]string, 0, len(hours))
	for _, h := range hours {
		day, opens, closes := strings.TrimSpace(h.Weekday), strings.TrimSpace(h.Opens), strings.TrimSpace(h.Closes)
		if day == "" || opens == "" || closes == "" {
			continue
		}
		parts = append(parts, GermanWeekday(day)+": "+opens+"–"+closes)
	}
	if len(parts) == 0 {
		return HoursUnavailable
	}
	return strings.Join(parts, " | ")
}
