package filestore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consolekit/consoleauth/session/kv/filestore"
)

func TestFileStore_SetGetDelete(t *testing.T) {
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("missing key reads back absent", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "nothing")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "slot", []byte(`{"a":1}`)))

		value, ok, err := store.Get(ctx, "slot")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []byte(`{"a":1}`), value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "slot", []byte(`{"a":2}`)))

		value, ok, err := store.Get(ctx, "slot")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []byte(`{"a":2}`), value)
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "slot"))
		require.NoError(t, store.Delete(ctx, "slot"))

		_, ok, err := store.Get(ctx, "slot")
		require.NoError(t, err)
		require.False(t, ok)
	})
}
