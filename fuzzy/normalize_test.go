package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"lowercase", "Berlin Mitte", "berlin mitte"},
		{"umlauts", "Öffnungszeiten Köln", "oeffnungszeiten koeln"},
		{"sharp s", "Straße", "strasse"},
		{"accents", "Café Séance", "cafe seance"},
		{"punctuation to spaces", "Hamburg-Altona, (Nord)!", "hamburg altona nord"},
		{"collapse whitespace", "  a \t  b\n", "a b"},
		{"digits kept", "Physiotherapeut-Hamburg-1234", "physiotherapeut hamburg 1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Symmetric(t *testing.T) {
	assert.Equal(t, Normalize("KÖLN"), Normalize("koeln"))
	// Decomposed umlaut must fold the same as the composed form.
	assert.Equal(t, "koeln", Normalize("Ko\u0308ln"))
}

func TestContentTokens(t *testing.T) {
	assert.Equal(t, []string{"oeffnungszeiten", "berlin"}, ContentTokens("Wie sind die Öffnungszeiten in Berlin?"))
	assert.Empty(t, ContentTokens("und oder der"))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("der"))
	assert.True(t, IsStopWord("fuer"))
	assert.False(t, IsStopWord("hamburg"))
}
