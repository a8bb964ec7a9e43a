package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	db := newTestDB(t)
	return NewCartService(rdb, db), db
}

func TestCartAddAndGet(t *testing.T) {
	svc, db := newCartService(t)

	customer := createCustomer(t, db, "cart@example.com")
	latte := createProduct(t, db, "Mocha Latte", 550, 10)
	espresso := createProduct(t, db, "Espresso", 700, 10)

	require.NoError(t, svc.AddItem(context.Background(), customer.ID, latte.ID, 2))
	require.NoError(t, svc.AddItem(context.Background(), customer.ID, espresso.ID, 1))
	// Re-adding replaces the quantity.
	require.NoError(t, svc.AddItem(context.Background(), customer.ID, latte.ID, 3))

	items, err := svc.GetCart(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, CartItem{ProductID: latte.ID, Quantity: 3}, items[0])
	assert.Equal(t, CartItem{ProductID: espresso.ID, Quantity: 1}, items[1])
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc, db := newCartService(t)

	customer := createCustomer(t, db, "ghost@example.com")

	err := svc.AddItem(context.Background(), customer.ID, 999, 1)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestCartRemoveAndClear(t *testing.T) {
	svc, db := newCartService(t)

	customer := createCustomer(t, db, "clear@example.com")
	latte := createProduct(t, db, "Mocha Latte", 550, 10)
	espresso := createProduct(t, db, "Espresso", 700, 10)

	require.NoError(t, svc.AddItem(context.Background(), customer.ID, latte.ID, 1))
	require.NoError(t, svc.AddItem(context.Background(), customer.ID, espresso.ID, 1))

	require.NoError(t, svc.RemoveItem(context.Background(), customer.ID, latte.ID))
	items, err := svc.GetCart(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, espresso.ID, items[0].ProductID)

	require.NoError(t, svc.ClearCart(context.Background(), customer.ID))
	items, err = svc.GetCart(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartsAreIsolatedPerCustomer(t *testing.T) {
	svc, db := newCartService(t)

	alice := createCustomer(t, db, "alice-cart@example.com")
	bob := createCustomer(t, db, "bob-cart@example.com")
	latte := createProduct(t, db, "Mocha Latte", 550, 10)

	require.NoError(t, svc.AddItem(context.Background(), alice.ID, latte.ID, 2))

	items, err := svc.GetCart(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
