package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-requisition-client/internal/models"
	"inventory-requisition-client/internal/storage"
)

func newTestCart(t *testing.T) (*Cart, storage.Store) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return New(store), store
}

func itemRef(id, name string, available int) models.ItemRef {
	return models.ItemRef{ID: id, Name: name, SKU: "SKU-" + id, Quantity: available, Unit: "pcs", MinStockLevel: 1}
}

func TestAddMergesLinesForSameItem(t *testing.T) {
	c, _ := newTestCart(t)
	ctx := context.Background()

	c.Add(ctx, itemRef("a", "Bond paper", 50), 2, "pcs")
	c.Add(ctx, itemRef("b", "Stapler", 10), 1, "pcs")
	c.Add(ctx, itemRef("a", "Bond paper", 50), 3, "pcs")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].Item.ID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "b", lines[1].Item.ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c, _ := newTestCart(t)
	ctx := context.Background()

	c.Add(ctx, itemRef("a", "Bond paper", 50), 5, "pcs")
	c.Add(ctx, itemRef("b", "Stapler", 10), 1, "pcs")

	c.UpdateQuantity(ctx, "b", 0)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "a", lines[0].Item.ID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c, _ := newTestCart(t)
	ctx := context.Background()

	c.Add(ctx, itemRef("a", "Bond paper", 50), 5, "pcs")
	c.UpdateQuantity(ctx, "a", -3)

	assert.Equal(t, 0, c.Len())
}

func TestUpdateQuantityReplaces(t *testing.T) {
	c, _ := newTestCart(t)
	ctx := context.Background()

	c.Add(ctx, itemRef("a", "Bond paper", 50), 5, "pcs")
	c.UpdateQuantity(ctx, "a", 2)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestTotalSumsQuantities(t *testing.T) {
	c, _ := newTestCart(t)
	ctx := context.Background()

	assert.Equal(t, 0, c.Total())

	c.Add(ctx, itemRef("a", "Bond paper", 50), 2, "pcs")
	c.Add(ctx, itemRef("b", "Stapler", 10), 1, "pcs")
	c.Add(ctx, itemRef("a", "Bond paper", 50), 3, "pcs")
	assert.Equal(t, 6, c.Total())

	c.Clear(ctx)
	assert.Equal(t, 0, c.Total())
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	c, _ := newTestCart(t)
	ctx := context.Background()

	c.Add(ctx, itemRef("a", "Bond paper", 50), 2, "pcs")
	c.Remove(ctx, "missing")

	assert.Equal(t, 1, c.Len())
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	c := New(store)
	c.Add(ctx, itemRef("a", "Bond paper", 50), 2, "pcs")
	c.Add(ctx, itemRef("b", "Stapler", 10), 1, "pcs")

	restored := New(store)
	restored.Load(ctx)

	lines := restored.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].Item.ID)
	assert.Equal(t, "Bond paper", lines[0].Item.Name)
	assert.Equal(t, 3, restored.Total())
}

func TestClearErasesPersistedState(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	c := New(store)
	c.Add(ctx, itemRef("a", "Bond paper", 50), 2, "pcs")
	c.Clear(ctx)

	_, ok, _ := store.Get(ctx, storage.KeyCart)
	assert.False(t, ok)

	restored := New(store)
	restored.Load(ctx)
	assert.Equal(t, 0, restored.Len())
}

func TestCorruptPersistedCartLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyCart, "{not json"))

	c := New(store)
	c.Load(ctx)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Total())
}
