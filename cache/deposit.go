package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/veilpay/veilpay-signing/chains/evm/calls/events"
	"github.com/veilpay/veilpay-signing/commitment"
)

const (
	DEPOSIT_TTL = time.Minute * 30
)

type DepositSource interface {
	FetchDeposit(ctx context.Context, depositID commitment.DepositID) (*events.Deposit, error)
}

// DepositCache keeps recently observed vault deposits so commitment
// requests do not need a log query per request. The vault listener fills
// it as blocks are indexed, misses fall back to an on-chain lookup by
// the indexed deposit ID.
type DepositCache struct {
	deposits *ttlcache.Cache[commitment.DepositID, *events.Deposit]

	source DepositSource
}

func NewDepositCache(source DepositSource) *DepositCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[commitment.DepositID, *events.Deposit](DEPOSIT_TTL),
	)

	dc := &DepositCache{
		deposits: cache,
		source:   source,
	}

	go cache.Start()
	return dc
}

func (c *DepositCache) Store(d *events.Deposit) {
	c.deposits.Set(d.DepositID, d, ttlcache.DefaultTTL)
}

func (c *DepositCache) Deposit(ctx context.Context, depositID commitment.DepositID) (*events.Deposit, error) {
	d := c.deposits.Get(depositID)
	if d != nil {
		return d.Value(), nil
	}

	deposit, err := c.source.FetchDeposit(ctx, depositID)
	if err != nil {
		return nil, err
	}

	c.Store(deposit)
	return deposit, nil
}
