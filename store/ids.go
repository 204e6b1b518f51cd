package store

import (
	"context"
	"sync/atomic"
)

// IDAllocator hands out business identifiers for new documents.
type IDAllocator interface {
	NextProductID() int
	NextCustomerID() int
	NextOrderID() int
	NextOrderItemID() int
}

// Counters implements IDAllocator with process-local atomic counters seeded
// from the current collection maxima at startup. Safe for concurrent handlers
// within one process; NOT safe across multiple instances, since two processes
// would seed from the same maximum and hand out colliding ids. Multi-instance
// deployments would need a store-native sequence instead.
type Counters struct {
	product   atomic.Int64
	customer  atomic.Int64
	order     atomic.Int64
	orderItem atomic.Int64
}

var _ IDAllocator = (*Counters)(nil)

// NewCounters seeds an allocator from the store's current maxima.
func NewCounters(ctx context.Context, s Store) (*Counters, error) {
	maxProduct, err := s.MaxProductID(ctx)
	if err != nil {
		return nil, err
	}
	maxCustomer, err := s.MaxCustomerID(ctx)
	if err != nil {
		return nil, err
	}
	maxOrder, err := s.MaxOrderID(ctx)
	if err != nil {
		return nil, err
	}
	return NewCountersFromMax(maxProduct, maxCustomer, maxOrder), nil
}

// NewCountersFromMax seeds an allocator from explicit maxima. Order item ids
// always restart at zero; they only need to be unique within a process run,
// matching how the original system numbered them.
func NewCountersFromMax(maxProduct, maxCustomer, maxOrder int) *Counters {
	c := &Counters{}
	c.product.Store(int64(maxProduct))
	c.customer.Store(int64(maxCustomer))
	c.order.Store(int64(maxOrder))
	return c
}

func (c *Counters) NextProductID() int   { return int(c.product.Add(1)) }
func (c *Counters) NextCustomerID() int  { return int(c.customer.Add(1)) }
func (c *Counters) NextOrderID() int     { return int(c.order.Add(1)) }
func (c *Counters) NextOrderItemID() int { return int(c.orderItem.Add(1)) }
