package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sweetstore/sweetstore-api/models"
)

var oneHundred = decimal.NewFromInt(100)

func FromProduct(p models.Product) Product {
	return Product{
		ID:            p.ProductID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      string(p.Category),
		ImageURL:      p.ImageURL,
		IsAvailable:   p.IsAvailable,
		StockQuantity: p.StockQuantity,
	}
}

// ToProduct is the inverse of FromProduct for create/update payloads. The
// category must already be validated.
func ToProduct(d Product) models.Product {
	return models.Product{
		ProductID:     d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		Category:      models.Category(d.Category),
		ImageURL:      d.ImageURL,
		IsAvailable:   d.IsAvailable,
		StockQuantity: d.StockQuantity,
	}
}

func FromProducts(products []models.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromCustomer(c models.Customer) Customer {
	return Customer{
		ID:                 c.CustomerID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Type:               string(c.Type),
		DiscountPercentage: c.DiscountPercentage,
	}
}

func FromCustomers(customers []models.Customer) []Customer {
	out := make([]Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}

func fromCartItem(i models.CartItem) CartItem {
	return CartItem{
		ProductID:   i.ProductID,
		ProductName: i.Product.Name,
		UnitPrice:   i.UnitPrice,
		Quantity:    i.Quantity,
		TotalPrice:  i.Total(),
		ImageURL:    i.Product.ImageURL,
	}
}

// FromCart renders the cart for its owner, including the discount the
// customer would currently receive on checkout.
func FromCart(cart models.ShoppingCart, customer models.Customer) Cart {
	items := make([]CartItem, 0, len(cart.Items))
	for _, i := range cart.Items {
		items = append(items, fromCartItem(i))
	}

	subtotal := cart.Subtotal()
	discount := subtotal.Mul(customer.DiscountPercentage.Div(oneHundred))
	return Cart{
		CustomerID:     cart.CustomerID,
		Items:          items,
		SubTotal:       subtotal,
		DiscountAmount: discount,
		TotalAmount:    subtotal.Sub(discount),
	}
}

func fromOrderItem(i models.OrderItem) OrderItem {
	return OrderItem{
		ProductID:   i.ProductID,
		ProductName: i.Product.Name,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		TotalPrice:  i.Total(),
	}
}

func FromOrder(o models.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, fromOrderItem(i))
	}
	return Order{
		ID:             o.OrderID,
		CustomerID:     o.CustomerID,
		CustomerName:   o.Customer.Name,
		OrderDate:      o.OrderDate,
		OrderItems:     items,
		SubTotal:       o.Subtotal(),
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.Total(),
		Status:         string(o.Status),
	}
}

func FromOrders(orders []models.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
