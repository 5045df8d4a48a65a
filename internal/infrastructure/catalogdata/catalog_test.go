package catalogdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalogSearch(t *testing.T) {
	catalog := NewStaticCatalog()
	ctx := context.Background()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		items, err := catalog.Search(ctx, "nintendo", 10)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "265893442181", items[0].ID)
	})

	t.Run("matches category", func(t *testing.T) {
		items, err := catalog.Search(ctx, "toys", 10)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("most recent first", func(t *testing.T) {
		items, err := catalog.Search(ctx, "toys", 10)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].SoldAt.After(items[1].SoldAt))
	})

	t.Run("respects limit", func(t *testing.T) {
		items, err := catalog.Search(ctx, "toys", 1)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("blank keyword returns nothing", func(t *testing.T) {
		items, err := catalog.Search(ctx, "   ", 10)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		items, err := catalog.Search(ctx, "submarine sandwich", 10)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := catalog.Search(cancelled, "nintendo", 10)
		assert.Error(t, err)
	})
}
