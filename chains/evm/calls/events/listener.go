// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/veilpay/veilpay-signing/chains/evm/calls/consts"
	"github.com/veilpay/veilpay-signing/commitment"
)

type ChainClient interface {
	FetchEventLogs(ctx context.Context, contractAddress common.Address, event string, startBlock *big.Int, endBlock *big.Int) ([]ethTypes.Log, error)
	LatestBlock() (*big.Int, error)
}

type Listener struct {
	client ChainClient
	abi    abi.ABI
}

func NewListener(client ChainClient) *Listener {
	return &Listener{
		client: client,
		abi:    consts.VaultABI,
	}
}

func (l *Listener) FetchDeposits(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]*Deposit, error) {
	logs, err := l.client.FetchEventLogs(ctx, contractAddress, string(DepositedSig), startBlock, endBlock)
	if err != nil {
		return nil, err
	}
	deposits := make([]*Deposit, 0)

	for _, dl := range logs {
		d, err := l.UnpackDeposit(l.abi, dl)
		if err != nil {
			log.Err(err).Msgf("failed unpacking deposit event log")
			continue
		}

		deposits = append(deposits, d)
	}

	return deposits, nil
}

func (l *Listener) UnpackDeposit(abi abi.ABI, dl ethTypes.Log) (*Deposit, error) {
	if len(dl.Topics) < 3 {
		return nil, fmt.Errorf("deposit log missing indexed topics")
	}

	var d Deposit
	err := abi.UnpackIntoInterface(&d, "Deposited", dl.Data)
	if err != nil {
		return nil, err
	}

	d.DepositID = commitment.DepositID(dl.Topics[1])
	d.Owner = common.BytesToAddress(dl.Topics[2].Bytes())
	d.TxHash = dl.TxHash
	d.BlockNumber = dl.BlockNumber
	return &d, nil
}
