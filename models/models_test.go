package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, s := range []string{"cookies", "Cookies", "COOKIES"} {
		c, err := ParseCategory(s)
		require.NoError(t, err)
		assert.Equal(t, CategoryCookies, c)
	}

	c, err := ParseCategory("icecream")
	require.NoError(t, err)
	assert.Equal(t, CategoryIceCream, c)

	_, err = ParseCategory("cupcakes")
	assert.Error(t, err)
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("vip")
	require.NoError(t, err)
	assert.Equal(t, TierVIP, tier)

	_, err = ParseTier("platinum")
	assert.Error(t, err)
}

func TestTierDiscountPercentage(t *testing.T) {
	assert.True(t, TierRegular.DiscountPercentage().IsZero())
	assert.True(t, TierPremium.DiscountPercentage().Equal(decimal.NewFromInt(10)))
	assert.True(t, TierVIP.DiscountPercentage().Equal(decimal.NewFromInt(20)))
	assert.True(t, Tier("Unknown").DiscountPercentage().IsZero())
}

func TestParseOrderStatus(t *testing.T) {
	st, err := ParseOrderStatus("processing")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusProcessing, st)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)
}

func TestCartTotals(t *testing.T) {
	cart := ShoppingCart{Items: []CartItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("8.99")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("12.99")},
	}}
	assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("30.97")))
}

func TestOrderDerivedTotals(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("8.99")},
			{Quantity: 1, UnitPrice: decimal.RequireFromString("12.99")},
		},
		DiscountAmount: decimal.RequireFromString("3.097"),
	}
	assert.True(t, order.Subtotal().Equal(decimal.RequireFromString("30.97")))
	assert.True(t, order.Total().Equal(decimal.RequireFromString("27.873")))
}

func TestItemIndex(t *testing.T) {
	cart := ShoppingCart{Items: []CartItem{{ProductID: 1}, {ProductID: 4}}}
	assert.Equal(t, 1, cart.ItemIndex(4))
	assert.Equal(t, -1, cart.ItemIndex(9))
}
