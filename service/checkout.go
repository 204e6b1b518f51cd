package service

import (
	"context"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/sweetstore/sweetstore-api/models"
)

var oneHundred = decimal.NewFromInt(100)

// PlaceOrder converts the customer's cart into a persisted order:
//
//  1. look up the customer
//  2. look up (or lazily create) the cart; it must not be empty
//  3. copy each cart item into an independent order item, keeping the unit
//     price captured when the item was added
//  4. discount = subtotal x storedPercentage/100, from the percentage on the
//     customer record, never recomputed from the tier
//  5. decrement each product's stock by the ordered quantity, with no floor
//     check
//  6. persist the order (status Pending), then clear the cart
//
// The stock decrements, the order insert and the cart clear are independent
// writes with no rollback and no locking. A failure partway through can leave
// stock decremented without an order, and concurrent checkouts over the same
// product can drive stock negative. This mirrors the storage contract, which
// has no transactions; serializing stock updates per product id would be the
// minimal hardening if it were ever wanted.
func (s *Service) PlaceOrder(ctx context.Context, customerID int) (*models.Order, error) {
	customer, err := s.store.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	cart, err := s.Cart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, ci := range cart.Items {
		items = append(items, models.OrderItem{
			OrderItemID: s.ids.NextOrderItemID(),
			ProductID:   ci.ProductID,
			Product:     ci.Product,
			Quantity:    ci.Quantity,
			UnitPrice:   ci.UnitPrice,
		})
	}

	order := &models.Order{
		OrderID:    s.ids.NextOrderID(),
		CustomerID: customerID,
		Customer:   *customer,
		OrderDate:  s.now().UTC(),
		Items:      items,
		Status:     models.OrderStatusPending,
	}
	order.DiscountAmount = order.Subtotal().Mul(customer.DiscountPercentage.Div(oneHundred))

	for _, item := range order.Items {
		product, err := s.store.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		product.StockQuantity -= item.Quantity
		if err := s.store.ReplaceProduct(ctx, product); err != nil {
			return nil, err
		}
	}

	if err := s.store.InsertOrder(ctx, order); err != nil {
		return nil, err
	}

	cart.Items = cart.Items[:0]
	if err := s.store.ReplaceCart(ctx, cart); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id":    order.OrderID,
		"customer_id": customerID,
		"items":       len(order.Items),
		"total":       order.Total().String(),
	}).Info("order placed")

	return order, nil
}
