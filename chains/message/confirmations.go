package message

import (
	"context"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/veilpay/veilpay-signing/config"
)

type TokenPricer interface {
	TokenPrice(symbol string) (float64, error)
}

type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	LatestBlock() (*big.Int, error)
}

type Watcher struct {
	client        ReceiptFetcher
	tokens        map[string]config.TokenConfig
	confirmations map[uint64]uint64
	blocktime     time.Duration
	tokenPricer   TokenPricer
}

func NewWatcher(
	client ReceiptFetcher,
	tokenPricer TokenPricer,
	tokens map[string]config.TokenConfig,
	confirmations map[uint64]uint64,
	blocktime time.Duration,
) *Watcher {
	return &Watcher{
		client:        client,
		tokenPricer:   tokenPricer,
		tokens:        tokens,
		confirmations: confirmations,
		blocktime:     blocktime,
	}
}

// WaitForConfirmations blocks until the transaction hash has enough on-chain confirmations.
func (w *Watcher) WaitForConfirmations(
	ctx context.Context,
	txHash common.Hash,
	symbol string,
	amount *big.Int,
) error {
	ctx, cancel := context.WithTimeout(ctx, TIMEOUT)
	defer cancel()

	requiredConfirmations, err := w.minimalConfirmations(symbol, amount)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for confirmations")
		default:
			txReceipt, err := w.client.TransactionReceipt(ctx, txHash)
			if err != nil {
				log.Warn().Msgf("Error fetching transaction receipt: %v\n", err)
				time.Sleep(w.blocktime)
				continue
			}

			if txReceipt == nil {
				time.Sleep(w.blocktime)
				continue
			}

			currentBlock, err := w.client.LatestBlock()
			if err != nil {
				log.Warn().Msgf("Error fetching current block: %v\n", err)
				time.Sleep(w.blocktime)
				continue
			}

			confirmations := new(big.Int).Sub(currentBlock, txReceipt.BlockNumber)
			if confirmations.Cmp(new(big.Int).SetUint64(requiredConfirmations)) != -1 {
				return nil
			}

			// nolint:gosec
			duration := time.Duration(uint64(w.blocktime) * (requiredConfirmations - confirmations.Uint64()))
			log.Debug().Msgf("Waiting for tx %s for %s", txHash, duration)
			time.Sleep(duration)
		}
	}
}

// minimalConfirmations calculates the minimal confirmations needed before a
// deposit may be committed based on its USD value
func (w *Watcher) minimalConfirmations(symbol string, amount *big.Int) (uint64, error) {
	c, ok := w.tokens[symbol]
	if !ok {
		return 0, fmt.Errorf("token %s not supported", symbol)
	}

	price, err := w.tokenPricer.TokenPrice(symbol)
	if err != nil {
		return 0, err
	}

	valueInt := new(big.Int)
	valueInt, _ = new(big.Float).Quo(
		new(big.Float).Mul(big.NewFloat(price), new(big.Float).SetInt(amount)),
		new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(c.Decimals)), nil)),
	).Int(valueInt)

	buckets := slices.Collect(maps.Keys(w.confirmations))
	slices.Sort(buckets)
	for _, bucket := range buckets {
		if valueInt.Cmp(new(big.Int).SetUint64(bucket)) < 0 {
			return w.confirmations[bucket], nil
		}
	}

	return 0, fmt.Errorf("deposit value %s exceeds confirmation buckets", valueInt)
}
