package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Tier string

const (
	TierRegular Tier = "Regular"
	TierPremium Tier = "Premium"
	TierVIP     Tier = "VIP"
)

// ParseTier maps a payload value to a Tier. Matching is case-insensitive.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(s) {
	case "regular":
		return TierRegular, nil
	case "premium":
		return TierPremium, nil
	case "vip":
		return TierVIP, nil
	default:
		return "", errors.New("invalid customer tier")
	}
}

// DiscountPercentage returns the percentage granted to the tier at
// registration time. Unknown tiers get no discount.
func (t Tier) DiscountPercentage() decimal.Decimal {
	switch t {
	case TierPremium:
		return decimal.NewFromInt(10)
	case TierVIP:
		return decimal.NewFromInt(20)
	default:
		return decimal.Zero
	}
}

// Customer is immutable after registration. DiscountPercentage is fixed from
// the tier when the record is created and is never recomputed, even if the
// tier were to change later.
type Customer struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID         int                `bson:"customerId"`
	Name               string             `bson:"name"`
	Email              string             `bson:"email"`
	Phone              string             `bson:"phone"`
	Type               Tier               `bson:"type"`
	DiscountPercentage decimal.Decimal    `bson:"discountPercentage"`
}
