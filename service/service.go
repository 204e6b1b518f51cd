// Package service implements the storefront workflows on top of the document
// store: catalog access, customer registration, cart mutation and checkout.
package service

import (
	"errors"
	"time"

	"github.com/sweetstore/sweetstore-api/store"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")

	// ErrEmptyCart and ErrProductUnavailable are workflow violations; the
	// HTTP layer surfaces them as 400 with the message as-is.
	ErrEmptyCart          = errors.New("cart is empty")
	ErrProductUnavailable = errors.New("product not available or insufficient stock")
)

type Service struct {
	store store.Store
	ids   store.IDAllocator
	now   func() time.Time
}

func New(st store.Store, ids store.IDAllocator) *Service {
	return &Service{store: st, ids: ids, now: time.Now}
}
