package mock

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	m := NewMockEmbedder()
	ctx := context.Background()

	a, err := m.EmbedText(ctx, "hallo")
	require.NoError(t, err)
	b, err := m.EmbedText(ctx, "hallo")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, Dimension)
	assert.Equal(t, 2, m.CallCount())

	var sum float64
	for _, v := range a {
		sum += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-5)
}

func TestMockEmbedder_WithVectors(t *testing.T) {
	m := NewMockEmbedder().WithVectors(map[string][]float32{"a": {1, 0}})

	vecs, err := m.EmbedTexts(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0}, vecs[0])
	assert.Len(t, vecs[1], Dimension)
}

func TestMockEmbedder_Error(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockEmbedder().WithEmbedTextFunc(func(context.Context, string) ([]float32, error) {
		return nil, boom
	})

	_, err := m.EmbedTexts(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, boom)

	m.Reset()
	assert.Equal(t, 0, m.CallCount())
	_, err = m.EmbedText(context.Background(), "x")
	assert.NoError(t, err)
}

func TestMockProvider(t *testing.T) {
	p := NewMockProviderWithEmbedder(NewMockEmbedder())
	assert.NotNil(t, p.Embedder())
	assert.NoError(t, p.Close())
	assert.True(t, p.Closed())
}
