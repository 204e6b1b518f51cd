package models

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem holds a product snapshot and the unit price captured when the item
// was added. Later catalog price changes do not affect it.
type CartItem struct {
	ProductID int             `bson:"productId"`
	Product   Product         `bson:"product"`
	Quantity  int             `bson:"quantity"`
	UnitPrice decimal.Decimal `bson:"unitPrice"`
}

func (i CartItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShoppingCart is keyed by customer id, one cart per customer, created lazily
// on first access and cleared (not deleted) after checkout.
type ShoppingCart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID int                `bson:"customerId"`
	Items      []CartItem         `bson:"items"`
}

func (c *ShoppingCart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.Total())
	}
	return sum
}

// ItemIndex returns the position of the item for productID, or -1.
func (c *ShoppingCart) ItemIndex(productID int) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
