package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consolekit/consoleauth/identity"
	"github.com/consolekit/consoleauth/session"
	"github.com/consolekit/consoleauth/session/kv/kvfakes"
)

var defaultIdentity = identity.Identity{
	ID:       "0",
	Name:     "Console Admin",
	Email:    "admin@example.com",
	Username: "admin",
}

func newResolver(t *testing.T) (*identity.Resolver, *session.Store) {
	t.Helper()
	store := session.New(kvfakes.NewFakeKVStore())
	return identity.NewResolver(store, defaultIdentity), store
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("no record returns the seeded default", func(t *testing.T) {
		resolver, _ := newResolver(t)
		require.Equal(t, defaultIdentity, resolver.Resolve(ctx))
	})

	t.Run("full name composed from first and last", func(t *testing.T) {
		resolver, store := newResolver(t)

		_, err := store.Store(ctx, session.LoginPayload{
			AccessToken: "tok-123",
			ID:          "user-1",
			Username:    "admin7",
			FirstName:   "Dana",
			LastName:    "Cohen",
			Mail:        "dana.cohen@example.com",
		})
		require.NoError(t, err)

		got := resolver.Resolve(ctx)
		require.Equal(t, identity.Identity{
			ID:       "user-1",
			Name:     "Dana Cohen",
			Email:    "dana.cohen@example.com",
			Username: "admin7",
		}, got)
	})

	t.Run("single name part is used without padding", func(t *testing.T) {
		resolver, store := newResolver(t)

		_, err := store.Store(ctx, session.LoginPayload{
			AccessToken: "tok-123",
			ID:          "user-1",
			Username:    "admin7",
			FirstName:   "Dana",
		})
		require.NoError(t, err)

		require.Equal(t, "Dana", resolver.Resolve(ctx).Name)
	})

	t.Run("blank names fall back to username", func(t *testing.T) {
		resolver, store := newResolver(t)

		_, err := store.Store(ctx, session.LoginPayload{
			AccessToken: "tok-123",
			ID:          "user-1",
			Username:    "admin7",
			FirstName:   "",
			LastName:    "",
		})
		require.NoError(t, err)

		require.Equal(t, "admin7", resolver.Resolve(ctx).Name)
	})

	t.Run("blank names and username fall back to the default name", func(t *testing.T) {
		resolver, store := newResolver(t)

		_, err := store.Store(ctx, session.LoginPayload{
			AccessToken: "tok-123",
			ID:          "user-1",
		})
		require.NoError(t, err)

		got := resolver.Resolve(ctx)
		require.Equal(t, defaultIdentity.Name, got.Name)
		// id still comes from the record, not the default
		require.Equal(t, "user-1", got.ID)
	})

	t.Run("empty mail falls back to the default email", func(t *testing.T) {
		resolver, store := newResolver(t)

		_, err := store.Store(ctx, session.LoginPayload{
			AccessToken: "tok-123",
			ID:          "user-1",
			Username:    "admin7",
		})
		require.NoError(t, err)

		require.Equal(t, defaultIdentity.Email, resolver.Resolve(ctx).Email)
	})

	t.Run("a non-active session still resolves", func(t *testing.T) {
		resolver, store := newResolver(t)

		// No role/status assigned: not usable as a login, still displayable
		_, err := store.Store(ctx, session.LoginPayload{
			AccessToken: "tok-123",
			ID:          "user-1",
			Username:    "admin7",
			FirstName:   "Dana",
			LastName:    "Cohen",
		})
		require.NoError(t, err)

		require.Equal(t, "Dana Cohen", resolver.Resolve(ctx).Name)
	})
}
