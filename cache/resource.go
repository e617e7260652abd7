package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"

	"github.com/veilpay/veilpay-signing/signdata"
)

const (
	ALLOCATION_TTL = time.Minute * 5
)

type AllocationClient interface {
	Allocation(ctx context.Context, id string) (*signdata.Allocation, error)
}

// ResourceCache mirrors backend allocation records. The backend push
// subscription keeps entries fresh through WatchUpdates, misses fall
// back to a direct backend fetch. Allocation state stays owned by the
// backend, the cache never mutates statuses locally.
type ResourceCache struct {
	allocations *ttlcache.Cache[string, *signdata.Allocation]

	client AllocationClient
}

func NewResourceCache(client AllocationClient) *ResourceCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *signdata.Allocation](ALLOCATION_TTL),
	)

	rc := &ResourceCache{
		allocations: cache,
		client:      client,
	}

	go cache.Start()
	return rc
}

func (c *ResourceCache) Store(a *signdata.Allocation) {
	c.allocations.Set(a.ID, a, ttlcache.DefaultTTL)
}

func (c *ResourceCache) Allocation(ctx context.Context, id string) (*signdata.Allocation, error) {
	a := c.allocations.Get(id)
	if a != nil {
		return a.Value(), nil
	}

	allocation, err := c.client.Allocation(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Store(allocation)
	return allocation, nil
}

// WatchUpdates consumes allocation updates from the backend subscription
// until the context is cancelled.
func (c *ResourceCache) WatchUpdates(ctx context.Context, updateChn chan *signdata.Allocation) {
	for {
		select {
		case a := <-updateChn:
			{
				log.Debug().Msgf("Received allocation update for ID: %s", a.ID)
				c.Store(a)
			}
		case <-ctx.Done():
			{
				c.allocations.Stop()
				return
			}
		}
	}
}
