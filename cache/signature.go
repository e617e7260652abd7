package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"

	"github.com/veilpay/veilpay-signing/chains/message"
)

const (
	SIGNATURE_TTL = time.Minute * 10
)

type SignatureCache struct {
	results *ttlcache.Cache[string, *message.SigningResult]

	mu      sync.Mutex
	waiters map[string][]chan *message.SigningResult
}

func NewSignatureCache() *SignatureCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *message.SigningResult](SIGNATURE_TTL),
	)

	sc := &SignatureCache{
		results: cache,
		waiters: make(map[string][]chan *message.SigningResult),
	}

	go cache.Start()
	return sc
}

// Watch consumes signing results from the signature channel until the
// context is cancelled.
func (s *SignatureCache) Watch(ctx context.Context, sigChn chan any) {
	for {
		select {
		case sig := <-sigChn:
			{
				result := sig.(*message.SigningResult)
				log.Debug().Msgf("Received signing result for ID: %s", result.ID)
				s.set(result)
			}
		case <-ctx.Done():
			{
				s.results.Stop()
				return
			}
		}
	}
}

func (s *SignatureCache) Result(id string) (*message.SigningResult, error) {
	r := s.results.Get(id)
	if r == nil {
		return nil, fmt.Errorf("no signing result found with id %s", id)
	}

	return r.Value(), nil
}

// Subscribe delivers the result with the given ID to resultChn once it is
// available. Already cached results are delivered right away. resultChn
// has to be buffered, results for subscribers that fell behind are
// dropped. The subscription is released when ctx is cancelled.
func (s *SignatureCache) Subscribe(ctx context.Context, id string, resultChn chan *message.SigningResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.results.Get(id)
	if r != nil {
		result := r.Value()
		go func() {
			select {
			case resultChn <- result:
			case <-ctx.Done():
			}
		}()
		return
	}

	s.waiters[id] = append(s.waiters[id], resultChn)
	go func() {
		<-ctx.Done()
		s.removeWaiter(id, resultChn)
	}()
}

func (s *SignatureCache) set(result *message.SigningResult) {
	s.mu.Lock()
	s.results.Set(result.ID, result, ttlcache.DefaultTTL)
	waiters := s.waiters[result.ID]
	delete(s.waiters, result.ID)
	s.mu.Unlock()

	for _, w := range waiters {
		select {
		case w <- result:
		default:
		}
	}
}

func (s *SignatureCache) removeWaiter(id string, resultChn chan *message.SigningResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	waiters := s.waiters[id]
	for i, w := range waiters {
		if w == resultChn {
			s.waiters[id] = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}

	if len(s.waiters[id]) == 0 {
		delete(s.waiters, id)
	}
}
