package service

import (
	"context"

	"github.com/sweetstore/sweetstore-api/models"
)

func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.store.ListCustomers(ctx)
}

func (s *Service) Customer(ctx context.Context, customerID int) (*models.Customer, error) {
	c, err := s.store.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// RegisterCustomer creates a customer with a fresh id and a discount
// percentage fixed from the tier. Email uniqueness is left to the store's
// unique index.
func (s *Service) RegisterCustomer(ctx context.Context, name, email, phone string, tier models.Tier) (*models.Customer, error) {
	customer := &models.Customer{
		CustomerID:         s.ids.NextCustomerID(),
		Name:               name,
		Email:              email,
		Phone:              phone,
		Type:               tier,
		DiscountPercentage: tier.DiscountPercentage(),
	}
	if err := s.store.InsertCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
