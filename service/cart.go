package service

import (
	"context"

	"github.com/sweetstore/sweetstore-api/models"
)

// Cart returns the customer's cart, creating an empty one on first access.
func (s *Service) Cart(ctx context.Context, customerID int) (*models.ShoppingCart, error) {
	cart, err := s.store.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.ShoppingCart{CustomerID: customerID, Items: []models.CartItem{}}
		if err := s.store.InsertCart(ctx, cart); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

// AddItem puts quantity units of a product into the cart. The product must
// exist, be available and have at least quantity units in stock; only the
// incremental amount is checked, so merging onto an existing line never
// re-validates the combined total. New lines snapshot the product and its
// current price.
func (s *Service) AddItem(ctx context.Context, customerID, productID, quantity int) (*models.ShoppingCart, error) {
	cart, err := s.Cart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	product, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsAvailable || product.StockQuantity < quantity {
		return nil, ErrProductUnavailable
	}

	if i := cart.ItemIndex(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			Product:   *product,
			Quantity:  quantity,
			UnitPrice: product.Price,
		})
	}

	if err := s.store.ReplaceCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the product's line from the cart. Removing a product that
// is not in the cart is a no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, customerID, productID int) (*models.ShoppingCart, error) {
	cart, err := s.Cart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	i := cart.ItemIndex(productID)
	if i < 0 {
		return cart, nil
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.store.ReplaceCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity overwrites the quantity of an existing line. A quantity of
// zero or less removes the line; the new quantity is not checked against
// stock. When the product is not in the cart the call is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, customerID, productID, quantity int) (*models.ShoppingCart, error) {
	cart, err := s.Cart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	i := cart.ItemIndex(productID)
	if i < 0 {
		return cart, nil
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = quantity
	}

	if err := s.store.ReplaceCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
