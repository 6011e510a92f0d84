package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 100, Ratio("hamburg", "hamburg"))
	assert.Equal(t, 0, Ratio("", ""))
	assert.Equal(t, 0, Ratio("abc", ""))
	assert.Equal(t, 86, Ratio("hamburg", "hamburk"))
	assert.Equal(t, 0, Ratio("abc", "xyz"))
}

func TestPartialRatio(t *testing.T) {
	t.Run("substring scores 100", func(t *testing.T) {
		assert.Equal(t, 100, PartialRatio("oeffnungszeiten berlin mitte", "berlin mitte"))
		assert.Equal(t, 100, PartialRatio("berlin", "oeffnungszeiten berlin mitte"))
	})

	t.Run("typo in window", func(t *testing.T) {
		score := PartialRatio("praxis in muenchen bitte", "muenchn")
		assert.Greater(t, score, 75)
		assert.Less(t, score, 100)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, PartialRatio("", "berlin"))
		assert.Equal(t, 0, PartialRatio("berlin", ""))
	})

	t.Run("unrelated", func(t *testing.T) {
		assert.Less(t, PartialRatio("wie oft kann ich zur physiotherapie gehen", "ulm"), 75)
	})
}

func TestWordPartialRatio(t *testing.T) {
	assert.Equal(t, 100, WordPartialRatio("praxis in essen", "essen"))
	assert.Equal(t, 100, WordPartialRatio("oeffnungszeiten berlin mitte", "berlin mitte"))
	assert.Equal(t, 88, WordPartialRatio("praxis in muenchn", "muenchen"))
	assert.Equal(t, 50, WordPartialRatio("ich habe interessen an sport", "essen"))
	assert.Equal(t, 100, PartialRatio("ich habe interessen an sport", "essen"))
	assert.Equal(t, 0, WordPartialRatio("", "essen"))
	assert.Equal(t, 0, WordPartialRatio("essen", ""))
}

func TestTokenSetRatio(t *testing.T) {
	t.Run("order independent", func(t *testing.T) {
		assert.Equal(t, 100, TokenSetRatio("mitte berlin", "berlin mitte"))
	})

	t.Run("subset scores 100", func(t *testing.T) {
		assert.Equal(t, 100, TokenSetRatio("berlin", "berlin mitte friedrichstrasse 10117"))
	})

	t.Run("stop words ignored", func(t *testing.T) {
		assert.Equal(t, 100, TokenSetRatio("die praxis in berlin", "praxis berlin"))
	})

	t.Run("only stop words", func(t *testing.T) {
		assert.Equal(t, 0, TokenSetRatio("und der", "berlin"))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Less(t, TokenSetRatio("hamburg", "muenchen"), 50)
	})
}

func TestExtractOne(t *testing.T) {
	choices := []string{"hamburg", "berlin", "muenchen"}

	m, ok := ExtractOne("jobs in berlin", choices, PartialRatio)
	require.True(t, ok)
	assert.Equal(t, "berlin", m.Choice)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, 100, m.Score)

	_, ok = ExtractOne("berlin", nil, PartialRatio)
	assert.False(t, ok)
}

func TestExtractOne_TiesKeepFirst(t *testing.T) {
	m, ok := ExtractOne("x", []string{"a", "b"}, func(string, string) int { return 10 })
	require.True(t, ok)
	assert.Equal(t, 0, m.Index)
}
