package service

import (
	"context"

	"github.com/sweetstore/sweetstore-api/models"
)

func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

func (s *Service) ProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	return s.store.ListProductsByCategory(ctx, category)
}

func (s *Service) Product(ctx context.Context, productID int) (*models.Product, error) {
	p, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// CreateProduct assigns a business id and persists the product.
func (s *Service) CreateProduct(ctx context.Context, p *models.Product) error {
	p.ProductID = s.ids.NextProductID()
	return s.store.InsertProduct(ctx, p)
}

// UpdateProduct replaces the stored product keyed by its business id. The
// surrogate storage key of the existing document is carried over.
func (s *Service) UpdateProduct(ctx context.Context, p *models.Product) error {
	existing, err := s.store.GetProduct(ctx, p.ProductID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	p.ID = existing.ID
	return s.store.ReplaceProduct(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, productID int) error {
	deleted, err := s.store.DeleteProduct(ctx, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}
