package service

import (
	"context"

	"github.com/sweetstore/sweetstore-api/models"
)

// memStore is an in-memory store.Store used to exercise the workflows
// without a database.
type memStore struct {
	products  map[int]models.Product
	customers map[int]models.Customer
	carts     map[int]models.ShoppingCart
	orders    map[int]models.Order
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[int]models.Product),
		customers: make(map[int]models.Customer),
		carts:     make(map[int]models.ShoppingCart),
		orders:    make(map[int]models.Order),
	}
}

func (m *memStore) ListProducts(context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) ListProductsByCategory(_ context.Context, category models.Category) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) GetProduct(_ context.Context, productID int) (*models.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memStore) InsertProduct(_ context.Context, p *models.Product) error {
	m.products[p.ProductID] = *p
	return nil
}

func (m *memStore) ReplaceProduct(_ context.Context, p *models.Product) error {
	m.products[p.ProductID] = *p
	return nil
}

func (m *memStore) DeleteProduct(_ context.Context, productID int) (bool, error) {
	if _, ok := m.products[productID]; !ok {
		return false, nil
	}
	delete(m.products, productID)
	return true, nil
}

func (m *memStore) CountProducts(context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *memStore) MaxProductID(context.Context) (int, error) {
	max := 0
	for id := range m.products {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (m *memStore) ListCustomers(context.Context) ([]models.Customer, error) {
	out := []models.Customer{}
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out, nil
}

func (m *memStore) GetCustomer(_ context.Context, customerID int) (*models.Customer, error) {
	c, ok := m.customers[customerID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memStore) InsertCustomer(_ context.Context, c *models.Customer) error {
	m.customers[c.CustomerID] = *c
	return nil
}

func (m *memStore) MaxCustomerID(context.Context) (int, error) {
	max := 0
	for id := range m.customers {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (m *memStore) GetCart(_ context.Context, customerID int) (*models.ShoppingCart, error) {
	c, ok := m.carts[customerID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memStore) InsertCart(_ context.Context, c *models.ShoppingCart) error {
	m.carts[c.CustomerID] = *c
	return nil
}

func (m *memStore) ReplaceCart(_ context.Context, c *models.ShoppingCart) error {
	m.carts[c.CustomerID] = *c
	return nil
}

func (m *memStore) ListOrders(context.Context) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memStore) ListOrdersByCustomer(_ context.Context, customerID int) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memStore) GetOrder(_ context.Context, orderID int) (*models.Order, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *memStore) InsertOrder(_ context.Context, o *models.Order) error {
	m.orders[o.OrderID] = *o
	return nil
}

func (m *memStore) SetOrderStatus(_ context.Context, orderID int, status models.OrderStatus) (bool, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return false, nil
	}
	o.Status = status
	m.orders[orderID] = o
	return true, nil
}

func (m *memStore) MaxOrderID(context.Context) (int, error) {
	max := 0
	for id := range m.orders {
		if id > max {
			max = id
		}
	}
	return max, nil
}
