package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountersContinueFromMaxima(t *testing.T) {
	c := NewCountersFromMax(12, 3, 7)

	assert.Equal(t, 13, c.NextProductID())
	assert.Equal(t, 14, c.NextProductID())
	assert.Equal(t, 4, c.NextCustomerID())
	assert.Equal(t, 8, c.NextOrderID())
	assert.Equal(t, 1, c.NextOrderItemID())
}

func TestCountersConcurrentAllocation(t *testing.T) {
	c := NewCountersFromMax(0, 0, 0)

	const n = 100
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- c.NextOrderID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
