package service

import (
	"context"

	"github.com/sweetstore/sweetstore-api/models"
)

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.ListOrders(ctx)
}

func (s *Service) OrdersByCustomer(ctx context.Context, customerID int) ([]models.Order, error) {
	return s.store.ListOrdersByCustomer(ctx, customerID)
}

func (s *Service) Order(ctx context.Context, orderID int) (*models.Order, error) {
	o, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateOrderStatus sets the status of an existing order and returns the
// updated record. Transitions are not validated; status history is an admin
// concern.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID int, status models.OrderStatus) (*models.Order, error) {
	updated, err := s.store.SetOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrOrderNotFound
	}
	return s.Order(ctx, orderID)
}
