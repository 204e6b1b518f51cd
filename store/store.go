// Package store provides document-store access for the sweet store API.
//
// The Store interface is the full storage contract: per-collection insert,
// equality-filter queries, replace-by-business-key, delete-by-business-key
// and counts. No transactions are used anywhere; multi-step workflows in the
// service layer issue independent writes.
package store

import (
	"context"

	"github.com/sweetstore/sweetstore-api/models"
)

// Store is implemented by the Mongo-backed store and by test fakes.
// Point lookups return (nil, nil) when no document matches.
type Store interface {
	// Products
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error)
	GetProduct(ctx context.Context, productID int) (*models.Product, error)
	InsertProduct(ctx context.Context, p *models.Product) error
	ReplaceProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, productID int) (bool, error)
	CountProducts(ctx context.Context) (int64, error)
	MaxProductID(ctx context.Context) (int, error)

	// Customers
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, customerID int) (*models.Customer, error)
	InsertCustomer(ctx context.Context, c *models.Customer) error
	MaxCustomerID(ctx context.Context) (int, error)

	// Shopping carts
	GetCart(ctx context.Context, customerID int) (*models.ShoppingCart, error)
	InsertCart(ctx context.Context, c *models.ShoppingCart) error
	ReplaceCart(ctx context.Context, c *models.ShoppingCart) error

	// Orders
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID int) (*models.Order, error)
	InsertOrder(ctx context.Context, o *models.Order) error
	SetOrderStatus(ctx context.Context, orderID int, status models.OrderStatus) (bool, error)
	MaxOrderID(ctx context.Context) (int, error)
}
