package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetstore/sweetstore-api/models"
)

func TestUpdateOrderStatus(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Gummy Bears", "4.99", 100)
	seedCustomer(ms, 1, models.TierRegular, "0")

	_, err := svc.AddItem(ctx, 1, 1, 1)
	require.NoError(t, err)
	placed, err := svc.PlaceOrder(ctx, 1)
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(ctx, placed.OrderID, models.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	_, err = svc.UpdateOrderStatus(ctx, 999, models.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderLookupUnknown(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Order(context.Background(), 1)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
