package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	tests := []struct {
		name     string
		question string
		want     Intent
	}{
		{"job only", "Physiotherapeut Jobs Hamburg", Job},
		{"location only", "Wie ist die Adresse in Köln?", Location},
		{"location first", "Adresse der Praxis und offene Stellen", Location},
		{"job first", "Bewerbung an welche Adresse?", Job},
		{"neither", "asdkjasdkj", Undecided},
		{"empty", "", Undecided},
		{"umlaut keyword", "ÖFFNUNGSZEITEN bitte", Location},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.question))
		})
	}
}

func TestClassify_EqualOffsetIsUndecided(t *testing.T) {
	c := NewClassifier(Vocabulary{
		LocationKeywords: []string{"praxis"},
		JobKeywords:      []string{"praxis"},
	})
	assert.Equal(t, Undecided, c.Classify("praxis hamburg"))
}

func TestHasOpeningHoursIntent(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())
	assert.True(t, c.HasOpeningHoursIntent("Öffnungszeiten Berlin Mitte"))
	assert.True(t, c.HasOpeningHoursIntent("Wann ist die Praxis geöffnet?"))
	assert.False(t, c.HasOpeningHoursIntent("Adresse in Berlin"))
	assert.False(t, c.HasOpeningHoursIntent("offene Stellen in Köln"))
}

func TestHasJobKeyword(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())
	assert.True(t, c.HasJobKeyword("Gibt es einen Job für mich?"))
	assert.False(t, c.HasJobKeyword("Jobcenter"), "short keyword must match a whole word")
	assert.False(t, c.HasJobKeyword("Wo ist die Praxis?"))
}

func TestMentionedRoles(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	assert.Equal(t, []string{"physiotherapie"}, c.MentionedRoles("Physiotherapeut Jobs Hamburg"))
	assert.Equal(t, []string{"ergotherapie", "rezeption"}, c.MentionedRoles("Ergo oder Empfang?"))
	assert.Equal(t, []string{"logopaedie"}, c.MentionedRoles("Stellen für Logopäden"))
	assert.Empty(t, c.MentionedRoles("Jobs in Berlin Mitte"), "mt must not match inside mitte")
	assert.Equal(t, []string{"physiotherapie"}, c.MentionedRoles("MT Stelle"))
}

func TestRoleSynonyms(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())
	syn := c.RoleSynonyms([]string{"logopaedie"})
	assert.Contains(t, syn, "logopaede")
	assert.Contains(t, syn, "sprachtherapie")
	assert.Empty(t, c.RoleSynonyms([]string{"unknown"}))
}

func TestIndexTerm(t *testing.T) {
	tests := []struct {
		text, term string
		want       int
	}{
		{"jobs in hamburg", "jobs", 0},
		{"jobs in hamburg", "in", 5},
		{"berlin mitte", "mt", -1},
		{"mt und kgg", "kgg", 7},
		{"wo ist das", "wo ist", 0},
		{"abc", "", -1},
		{"a", "ab", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IndexTerm(tt.text, tt.term), "IndexTerm(%q, %q)", tt.text, tt.term)
	}
}

func TestContainsWord(t *testing.T) {
	assert.True(t, ContainsWord("praxis in essen", "essen"))
	assert.True(t, ContainsWord("essen ruettenscheid", "essen ruettenscheid"))
	assert.False(t, ContainsWord("ich habe interessen", "essen"))
	assert.False(t, ContainsWord("essener strasse", "essen"))
	assert.False(t, ContainsWord("essen", ""))
	assert.Equal(t, 14, IndexWord("interessen in essen", "essen"))
}

func TestVocabularyMerge(t *testing.T) {
	def := DefaultVocabulary()
	merged := def.Merge(Vocabulary{
		JobKeywords: []string{"karriere"},
		Roles:       map[string][]string{"pflege": {"pflegekraft"}},
	})

	assert.Equal(t, []string{"karriere"}, merged.JobKeywords)
	assert.Equal(t, def.LocationKeywords, merged.LocationKeywords)
	assert.Contains(t, merged.Roles, "pflege")
	assert.Contains(t, merged.Roles, "physiotherapie")
	assert.NotContains(t, def.Roles, "pflege", "merge must not mutate the receiver")
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "location", Location.String())
	assert.Equal(t, "job", Job.String())
	assert.Equal(t, "undecided", Undecided.String())
}
