package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/veilpay/veilpay-signing/protocol/checkbook"
	"github.com/veilpay/veilpay-signing/signdata"
)

type AllocationLister interface {
	Allocations(ctx context.Context, status signdata.AllocationStatus, page int) ([]checkbook.Check, *checkbook.Pagination, error)
}

type AllocationStore interface {
	Store(a *signdata.Allocation)
}

// StartAllocationSyncJob periodically mirrors spendable backend
// allocations into the store so withdrawal requests validate against
// warm state even when push updates were missed.
func StartAllocationSyncJob(
	ctx context.Context,
	interval time.Duration,
	lister AllocationLister,
	store AllocationStore,
) {
	syncAllocations(ctx, lister, store)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			syncAllocations(ctx, lister, store)
		}
	}
}

func syncAllocations(ctx context.Context, lister AllocationLister, store AllocationStore) {
	p := pool.New().WithContext(ctx)
	for _, status := range []signdata.AllocationStatus{signdata.StatusIdle, signdata.StatusPending} {
		p.Go(func(ctx context.Context) error {
			return syncStatus(ctx, lister, store, status)
		})
	}

	err := p.Wait()
	if err != nil {
		log.Warn().Msgf("Failed to sync allocations because of %s", err)
	}
}

func syncStatus(
	ctx context.Context,
	lister AllocationLister,
	store AllocationStore,
	status signdata.AllocationStatus,
) error {
	page := 1
	for {
		checks, pagination, err := lister.Allocations(ctx, status, page)
		if err != nil {
			return err
		}

		for _, c := range checks {
			store.Store(c.Allocation())
		}

		if pagination == nil || int64(page) >= pagination.Pages {
			return nil
		}
		page++
	}
}
