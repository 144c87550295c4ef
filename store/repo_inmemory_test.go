package store_test

import (
	"testing"

	"github.com/HLPFLCG/HLPFL-INC/store"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCartRepo(t *testing.T) {
	t.Run("upsert and get", func(t *testing.T) {
		repo := store.NewInMemoryCartRepo()
		cart := newCart()
		cart.AddItem(productA)

		require.NoError(t, repo.Upsert(cart.ID, cart))

		got, err := repo.Get(cart.ID)
		require.NoError(t, err)
		require.Equal(t, cart, got)
	})

	t.Run("get unknown cart", func(t *testing.T) {
		repo := store.NewInMemoryCartRepo()

		_, err := repo.Get("missing")
		require.ErrorIs(t, err, store.ErrCartNotFound)
	})

	t.Run("stored cart is isolated from caller mutation", func(t *testing.T) {
		repo := store.NewInMemoryCartRepo()
		cart := newCart()
		cart.AddItem(productA)
		require.NoError(t, repo.Upsert(cart.ID, cart))

		// Mutating the caller's copy must not reach the stored cart.
		cart.ChangeQuantity(productA.ID, 5)

		stored, err := repo.Get("cart-1")
		require.NoError(t, err)
		require.Equal(t, 1, stored.Items[0].Quantity)
	})

	t.Run("delete removes cart", func(t *testing.T) {
		repo := store.NewInMemoryCartRepo()
		cart := newCart()
		require.NoError(t, repo.Upsert(cart.ID, cart))

		require.NoError(t, repo.Delete(cart.ID))

		_, err := repo.Get(cart.ID)
		require.ErrorIs(t, err, store.ErrCartNotFound)
	})

	t.Run("empty cart ID rejected", func(t *testing.T) {
		repo := store.NewInMemoryCartRepo()
		require.Error(t, repo.Upsert("", store.Cart{}))
		_, err := repo.Get("")
		require.Error(t, err)
		require.Error(t, repo.Delete(""))
	})
}
