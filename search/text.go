package search

import (
	"strings"

	"github.com/poiesic/frontdesk/fuzzy"
	"github.com/poiesic/frontdesk/intent"
)

// minPartialLength is the shortest name or question fuzzy scoring is applied
// to. Shorter names ("Au", "Hof") only score when they occur as a whole word.
const minPartialLength = 4

// nameScore rates how well a normalized name occurs in a normalized question.
// Windows are word aligned, so "essen" inside "interessen" is not a hit.
func nameScore(question, name string) int {
	if name == "" || question == "" {
		return 0
	}
	if len(name) < minPartialLength || len(question) < minPartialLength {
		if intent.ContainsTerm(question, name) {
			return 100
		}
		return 0
	}
	return fuzzy.WordPartialRatio(question, name)
}

// containsAllQueryWords checks if all query words appear in the document.
// Both sides are normalized.
func containsAllQueryWords(document, query string) bool {
	queryWords := strings.Fields(query)
	if len(queryWords) == 0 {
		return false
	}

	docWords := strings.Fields(document)
	docWordSet := make(map[string]bool, len(docWords))
	for _, word := range docWords {
		docWordSet[word] = true
	}

	for _, qWord := range queryWords {
		if !docWordSet[qWord] {
			return false
		}
	}
	return true
}
