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

// Vocabulary holds every keyword list the classifier and matchers use.
// Entries may be written with umlauts; they are normalized when a Classifier
// is built.
type Vocabulary struct {
	// LocationKeywords signal questions about addresses, contact data or hours.
	LocationKeywords []string `yaml:"location_keywords"`
	// JobKeywords signal questions about applications and careers.
	JobKeywords []string `yaml:"job_keywords"`
	// HoursKeywords is the narrower set for opening-hours questions.
	HoursKeywords []string `yaml:"hours_keywords"`
	// Roles maps a role key to its synonyms.
	Roles map[string][]string `yaml:"roles"`
	// ProfessionKeywords earn a location a boost when they appear in both
	// the question and the location text.
	ProfessionKeywords []string `yaml:"profession_keywords"`
}

// DefaultVocabulary returns the built-in German vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		LocationKeywords: []string{
			"adresse", "anschrift", "wo ist", "wo finde ich", "wo seid ihr", "standort",
			"zentrum", "praxis", "öffnungszeiten", "geöffnet", "telefon", "nummer",
			"kontakt", "anfahrt", "karte", "google maps", "maps", "termin",
			"sprechzeiten", "nähe", "in der nähe", "parken",
		},
		JobKeywords: []string{
			"job", "jobs", "jobangebot", "stelle", "stellen", "stellenangebot",
			"bewerbung", "bewerben", "karriere", "ausbildung", "praktikum", "gehalt",
			"ausschreibung", "azubi", "arbeiten bei", "einstellen", "vakanz",
		},
		HoursKeywords: []string{
			"öffnungszeiten", "geöffnet", "wann offen", "wie lange offen", "wann auf",
			"sprechzeiten", "öffnet", "schließt", "opening hours",
		},
		Roles: map[string][]string{
			"physiotherapie": {"physiotherapeut", "physiotherapeutin", "physiotherapie", "physio", "manuelle therapie", "mt", "kgg", "lymphdrainage"},
			"ergotherapie":   {"ergotherapeut", "ergotherapeutin", "ergotherapie", "ergo"},
			"logopaedie":     {"logopäde", "logopädin", "logopädie", "sprachtherapie", "sprachtherapeut"},
			"rezeption":      {"rezeption", "empfang", "rezeptionist", "rezeptionistin"},
			"medizin":        {"arzt", "ärztin", "mfa", "medizinische fachangestellte", "osteopath", "masseur"},
			"sport":          {"sport", "training", "trainer", "sportwissenschaftler"},
			"leitung":        {"leitung", "zentrumsmanager", "bereichsleitung", "fachleitung"},
			"verwaltung":     {"verwaltung", "admin", "administration", "assistenz", "buchhaltung", "office", "teamassistenz"},
			"kinder":         {"kinder", "kinderphysiotherapeut", "kinderphysiotherapeutin", "pädiatrie"},
		},
		ProfessionKeywords: []string{
			"physio", "ergo", "logo", "osteo", "massage", "lymph", "kinder", "sport", "reha",
		},
	}
}

// Merge returns v with every non-empty field of override replacing the
// corresponding default. Role maps are merged key by key.
func (v Vocabulary) Merge(override Vocabulary) Vocabulary {
	out := v
	if len(override.LocationKeywords) > 0 {
		out.LocationKeywords = override.LocationKeywords
	}
	if len(override.JobKeywords) > 0 {
		out.JobKeywords = override.JobKeywords
	}
	if len(override.HoursKeywords) > 0 {
		out.HoursKeywords = override.HoursKeywords
	}
	if len(override.ProfessionKeywords) > 0 {
		out.ProfessionKeywords = override.ProfessionKeywords
	}
	if len(override.Roles) > 0 {
		roles := make(map[string][]string, len(v.Roles)+len(override.Roles))
		for k, syn := range v.Roles {
			roles[k] = syn
		}
		for k, syn := range override.Roles {
			roles[k] = syn
		}
		out.Roles = roles
	}
	return out
}
