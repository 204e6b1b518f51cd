package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetstore/sweetstore-api/models"
)

func TestCartLazyCreation(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()

	cart, err := svc.Cart(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Len(t, ms.carts, 1)

	again, err := svc.Cart(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, cart.CustomerID, again.CustomerID)
	assert.Len(t, ms.carts, 1)
}

func TestAddItemMergesQuantities(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Gummy Bears", "4.99", 100)

	_, err := svc.AddItem(ctx, 1, 1, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, 1, 1, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	decimalEqual(t, "4.99", cart.Items[0].UnitPrice)
}

func TestAddItemInsufficientStock(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Chocolate Truffles", "19.99", 5)

	_, err := svc.AddItem(ctx, 1, 1, 6)
	assert.ErrorIs(t, err, ErrProductUnavailable)

	cart, err := svc.Cart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestAddItemUnavailableProduct(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Chocolate Bar", "5.99", 75)
	p := ms.products[1]
	p.IsAvailable = false
	ms.products[1] = p

	_, err := svc.AddItem(ctx, 1, 1, 1)
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem(context.Background(), 1, 404, 1)
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Gummy Bears", "4.99", 100)
	seedProduct(ms, 2, "Lollipops", "3.99", 80)

	_, err := svc.AddItem(ctx, 1, 1, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, 2, 1)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, 1, 1, 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].ProductID)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Sugar Cookies", "6.99", 10)

	_, err := svc.AddItem(ctx, 1, 1, 2)
	require.NoError(t, err)

	// The overwrite is unconditional; no stock re-check happens here.
	cart, err := svc.UpdateQuantity(ctx, 1, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, cart.Items[0].Quantity)
}

func TestUpdateQuantityAbsentProductNoop(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Sugar Cookies", "6.99", 10)

	_, err := svc.AddItem(ctx, 1, 1, 2)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, 1, 99, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Gummy Bears", "4.99", 100)

	_, err := svc.AddItem(ctx, 1, 1, 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveItemAbsentProductNoop(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Gummy Bears", "4.99", 100)

	_, err := svc.AddItem(ctx, 1, 1, 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, 1, 99)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, models.CategoryCookies, cart.Items[0].Product.Category)
}
