package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/frontdesk/core"
)

func TestVectorRepository(t *testing.T) {
	_, vectors, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()
	ctx := context.Background()

	k1 := core.VectorKey("model", "Frage eins")
	k2 := core.VectorKey("model", "Frage zwei")
	missing := core.VectorKey("other-model", "Frage eins")

	require.NoError(t, vectors.SaveVectors(ctx, map[core.ID][]float32{
		k1: {1, 0},
		k2: {0, 1},
	}))
	require.NoError(t, vectors.SaveVectors(ctx, nil))

	loaded, err := vectors.LoadVectors(ctx, k1, k2, missing)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, []float32{1, 0}, loaded[k1])
	assert.Equal(t, []float32{0, 1}, loaded[k2])
	assert.NotContains(t, loaded, missing)
}

func TestNewVectorRepository_RequiresBackend(t *testing.T) {
	_, err := NewVectorRepository(nil)
	assert.ErrorIs(t, err, ErrBackendRequired)
}
