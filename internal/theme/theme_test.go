package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-requisition-client/internal/storage"
)

func TestDefaultsToLight(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	p := Load(context.Background(), store)
	assert.Equal(t, Light, p.Mode())
}

func TestBadStoredValueDegradesToDefault(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyTheme, "neon"))

	p := Load(ctx, store)
	assert.Equal(t, Light, p.Mode())
}

func TestTogglePersists(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	p := Load(ctx, store)
	assert.Equal(t, Dark, p.Toggle(ctx))

	restored := Load(ctx, store)
	assert.Equal(t, Dark, restored.Mode())
}
