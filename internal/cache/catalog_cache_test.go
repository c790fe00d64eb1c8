package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rechtent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

// All tests run with a nil redis client: the dedupe and retry paths are
// the interesting logic, and they work the same with caching disabled.

func TestCatalogCache_FetchesOnMiss(t *testing.T) {
	c := NewCatalogCache(nil, Options{DedupeInterval: time.Second})

	products, err := c.GetProducts(context.Background(), ListingKey(1), func(ctx context.Context) ([]domain.Product, error) {
		return []domain.Product{{ID: 7, Name: "Sony A7 III"}}, nil
	})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogCache_RetriesFailedReads(t *testing.T) {
	c := NewCatalogCache(nil, Options{RetryCount: 2, RetryDelay: time.Millisecond})

	var attempts int32
	products, err := c.GetProducts(context.Background(), ListingKey(1), func(ctx context.Context) ([]domain.Product, error) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return nil, errors.New("transient")
		}
		return []domain.Product{{ID: 7}}, nil
	})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, int32(3), attempts)
}

func TestCatalogCache_GivesUpAfterRetryBudget(t *testing.T) {
	c := NewCatalogCache(nil, Options{RetryCount: 1, RetryDelay: time.Millisecond})

	var attempts int32
	_, err := c.GetProducts(context.Background(), ListingKey(1), func(ctx context.Context) ([]domain.Product, error) {
		atomic.AddInt32(&attempts, 1)
		return nil, errors.New("down")
	})
	assert.Error(t, err)
	assert.Equal(t, int32(2), attempts)
}

func TestCatalogCache_DedupesConcurrentMisses(t *testing.T) {
	c := NewCatalogCache(nil, Options{DedupeInterval: time.Second})

	var fetches int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) ([]domain.Product, error) {
		atomic.AddInt32(&fetches, 1)
		<-release
		return []domain.Product{{ID: 7}}, nil
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			products, err := c.GetProducts(context.Background(), ListingKey(1), fetch)
			assert.NoError(t, err)
			assert.Len(t, products, 1)
		}()
	}
	close(start)
	time.Sleep(50 * time.Millisecond) // let the first goroutine claim the fetch
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), fetches)
}

func TestListingKey(t *testing.T) {
	assert.Equal(t, "catalog:type:3", ListingKey(3))
}
