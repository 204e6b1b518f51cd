package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetstore/sweetstore-api/models"
	"github.com/sweetstore/sweetstore-api/store"
)

func TestCreateProductAssignsNextID(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()

	p := &models.Product{Name: "Caramel Fudge", Price: decimal.RequireFromString("11.49"), Category: models.CategoryCandy, IsAvailable: true, StockQuantity: 10}
	require.NoError(t, svc.CreateProduct(ctx, p))
	assert.Equal(t, 1, p.ProductID)
	assert.Contains(t, ms.products, 1)

	q := &models.Product{Name: "Peanut Brittle", Price: decimal.RequireFromString("7.49"), Category: models.CategoryCandy, IsAvailable: true, StockQuantity: 10}
	require.NoError(t, svc.CreateProduct(ctx, q))
	assert.Equal(t, 2, q.ProductID)
}

func TestCreateProductIDsContinueAfterExisting(t *testing.T) {
	ms := newMemStore()
	seedProduct(ms, 5, "Existing", "1.99", 1)

	ids, err := store.NewCounters(context.Background(), ms)
	require.NoError(t, err)
	svc := New(ms, ids)

	p := &models.Product{Name: "New", Price: decimal.RequireFromString("2.99"), Category: models.CategoryCandy, IsAvailable: true}
	require.NoError(t, svc.CreateProduct(context.Background(), p))
	assert.Equal(t, 6, p.ProductID)
}

func TestUpdateProduct(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Sugar Cookies", "6.99", 60)

	updated := models.Product{ProductID: 1, Name: "Sugar Cookies", Price: decimal.RequireFromString("7.49"), Category: models.CategoryCookies, IsAvailable: true, StockQuantity: 55}
	require.NoError(t, svc.UpdateProduct(ctx, &updated))
	decimalEqual(t, "7.49", ms.products[1].Price)

	missing := models.Product{ProductID: 99, Name: "Ghost"}
	assert.ErrorIs(t, svc.UpdateProduct(ctx, &missing), ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Lollipops", "3.99", 80)

	require.NoError(t, svc.DeleteProduct(ctx, 1))
	assert.NotContains(t, ms.products, 1)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, 1), ErrProductNotFound)
}

func TestProductsByCategory(t *testing.T) {
	svc, ms := newTestService(t)
	ctx := context.Background()
	seedProduct(ms, 1, "Gummy Bears", "4.99", 100)
	seedProduct(ms, 2, "Lollipops", "3.99", 80)
	p := ms.products[2]
	p.Category = models.CategoryCandy
	ms.products[2] = p

	cookies, err := svc.ProductsByCategory(ctx, models.CategoryCookies)
	require.NoError(t, err)
	assert.Len(t, cookies, 1)

	candy, err := svc.ProductsByCategory(ctx, models.CategoryCandy)
	require.NoError(t, err)
	assert.Len(t, candy, 1)
}
