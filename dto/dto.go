// Package dto defines the wire representations served to the storefront and
// the pure mapping functions that produce them. Derived figures (line totals,
// subtotals, discounts) are computed at conversion time and never persisted.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"imageUrl"`
	IsAvailable   bool            `json:"isAvailable"`
	StockQuantity int             `json:"stockQuantity"`
}

type Customer struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	Type               string          `json:"type"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}

type CartItem struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	ImageURL    string          `json:"imageUrl"`
}

type Cart struct {
	CustomerID     int             `json:"customerId"`
	Items          []CartItem      `json:"items"`
	SubTotal       decimal.Decimal `json:"subTotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

type OrderItem struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type Order struct {
	ID             int             `json:"id"`
	CustomerID     int             `json:"customerId"`
	CustomerName   string          `json:"customerName"`
	OrderDate      time.Time       `json:"orderDate"`
	OrderItems     []OrderItem     `json:"orderItems"`
	SubTotal       decimal.Decimal `json:"subTotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         string          `json:"status"`
}
