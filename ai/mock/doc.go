// Package mock provides test double implementations of AI service interfaces.
//
// The mocks allow tests to run without an embedding server and with
// controlled, deterministic vectors.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vec, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Fixed vectors for known texts
//	embedder := mock.NewMockEmbedder().WithVectors(map[string][]float32{
//	    "Wie oft kann ich kommen?": {1, 0, 0},
//	})
package mock
