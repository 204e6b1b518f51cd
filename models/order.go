package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus maps a payload value to an OrderStatus. Matching is
// case-insensitive.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case "pending":
		return OrderStatusPending, nil
	case "processing":
		return OrderStatusProcessing, nil
	case "completed":
		return OrderStatusCompleted, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// OrderItem is an independent copy of a cart item, frozen at checkout.
type OrderItem struct {
	OrderItemID int             `bson:"orderItemId"`
	ProductID   int             `bson:"productId"`
	Product     Product         `bson:"product"`
	Quantity    int             `bson:"quantity"`
	UnitPrice   decimal.Decimal `bson:"unitPrice"`
}

func (i OrderItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is immutable after creation except for status updates. Subtotal and
// Total are always derived from the items so they cannot drift from their
// components; only the discount amount is stored.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	OrderID        int                `bson:"orderId"`
	CustomerID     int                `bson:"customerId"`
	Customer       Customer           `bson:"customer"`
	OrderDate      time.Time          `bson:"orderDate"`
	Items          []OrderItem        `bson:"items"`
	DiscountAmount decimal.Decimal    `bson:"discountAmount"`
	Status         OrderStatus        `bson:"status"`
}

func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.Total())
	}
	return sum
}

func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Sub(o.DiscountAmount)
}
