package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sweetstore/sweetstore-api/models"
)

// Seed loads the demo catalog and customers on first start. It is a no-op
// when any product already exists.
func Seed(ctx context.Context, s Store, ids IDAllocator) error {
	count, err := s.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Chocolate Chip Cookies", Description: "Classic chocolate chip cookies", Price: price("8.99"), Category: models.CategoryCookies, ImageURL: "/images/chocolate-chip-cookies.jpg", StockQuantity: 50},
		{Name: "Oatmeal Raisin Cookies", Description: "Chewy oatmeal cookies with raisins", Price: price("7.99"), Category: models.CategoryCookies, ImageURL: "/images/oatmeal-raisin-cookies.jpg", StockQuantity: 40},
		{Name: "Sugar Cookies", Description: "Sweet and simple sugar cookies", Price: price("6.99"), Category: models.CategoryCookies, ImageURL: "/images/sugar-cookies.jpg", StockQuantity: 60},
		{Name: "Double Chocolate Cookies", Description: "Rich double chocolate fudge cookies", Price: price("9.99"), Category: models.CategoryCookies, ImageURL: "/images/double-chocolate-cookies.jpg", StockQuantity: 35},
		{Name: "Vanilla Ice Cream", Description: "Classic vanilla ice cream", Price: price("12.99"), Category: models.CategoryIceCream, ImageURL: "/images/vanilla-ice-cream.jpg", StockQuantity: 25},
		{Name: "Chocolate Ice Cream", Description: "Rich chocolate ice cream", Price: price("12.99"), Category: models.CategoryIceCream, ImageURL: "/images/chocolate-ice-cream.jpg", StockQuantity: 30},
		{Name: "Strawberry Ice Cream", Description: "Fresh strawberry ice cream", Price: price("13.99"), Category: models.CategoryIceCream, ImageURL: "/images/strawberry-ice-cream.jpg", StockQuantity: 20},
		{Name: "Mint Chocolate Chip Ice Cream", Description: "Refreshing mint with chocolate chips", Price: price("14.99"), Category: models.CategoryIceCream, ImageURL: "/images/mint-chocolate-chip.jpg", StockQuantity: 22},
		{Name: "Gummy Bears", Description: "Colorful fruit-flavored gummy bears", Price: price("4.99"), Category: models.CategoryCandy, ImageURL: "/images/gummy-bears.jpg", StockQuantity: 100},
		{Name: "Chocolate Truffles", Description: "Premium dark chocolate truffles", Price: price("19.99"), Category: models.CategoryCandy, ImageURL: "/images/chocolate-truffles.jpg", StockQuantity: 15},
		{Name: "Lollipops", Description: "Assorted fruit flavor lollipops", Price: price("3.99"), Category: models.CategoryCandy, ImageURL: "/images/lollipops.jpg", StockQuantity: 80},
		{Name: "Chocolate Bar", Description: "Swiss milk chocolate bar", Price: price("5.99"), Category: models.CategoryCandy, ImageURL: "/images/chocolate-bar.jpg", StockQuantity: 75},
	}
	for i := range products {
		products[i].ProductID = ids.NextProductID()
		products[i].IsAvailable = true
		if err := s.InsertProduct(ctx, &products[i]); err != nil {
			return err
		}
	}

	customers := []models.Customer{
		{Name: "John Doe", Email: "john@example.com", Phone: "555-0101", Type: models.TierRegular},
		{Name: "Jane Smith", Email: "jane@example.com", Phone: "555-0102", Type: models.TierPremium},
		{Name: "Bob Johnson", Email: "bob@example.com", Phone: "555-0103", Type: models.TierVIP},
	}
	for i := range customers {
		customers[i].CustomerID = ids.NextCustomerID()
		customers[i].DiscountPercentage = customers[i].Type.DiscountPercentage()
		if err := s.InsertCustomer(ctx, &customers[i]); err != nil {
			return err
		}
	}

	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
