package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryCookies  Category = "Cookies"
	CategoryIceCream Category = "IceCream"
	CategoryCandy    Category = "Candy"
)

// ParseCategory maps a route or payload value to a Category. Matching is
// case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "cookies":
		return CategoryCookies, nil
	case "icecream":
		return CategoryIceCream, nil
	case "candy":
		return CategoryCandy, nil
	default:
		return "", errors.New("invalid category")
	}
}

// Product is a catalog entry. ProductID is the business identifier handed out
// by the id allocator; the ObjectID is only the storage key.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ProductID     int                `bson:"productId"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	Price         decimal.Decimal    `bson:"price"`
	Category      Category           `bson:"category"`
	ImageURL      string             `bson:"imageUrl"`
	IsAvailable   bool               `bson:"isAvailable"`
	StockQuantity int                `bson:"stockQuantity"`
}
