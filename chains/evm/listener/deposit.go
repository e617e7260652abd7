// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package listener

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/veilpay/veilpay-signing/chains/evm/calls/events"
)

type EventListener interface {
	FetchDeposits(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]*events.Deposit, error)
}

type DepositStorer interface {
	Store(d *events.Deposit)
}

type DepositEventHandler struct {
	log           zerolog.Logger
	eventListener EventListener
	depositStore  DepositStorer
	vaultAddress  common.Address
}

func NewDepositEventHandler(
	logC zerolog.Context,
	eventListener EventListener,
	depositStore DepositStorer,
	vaultAddress common.Address,
) *DepositEventHandler {
	return &DepositEventHandler{
		log:           logC.Logger(),
		eventListener: eventListener,
		depositStore:  depositStore,
		vaultAddress:  vaultAddress,
	}
}

// HandleEvents indexes vault deposits from the block range so commitment
// requests can resolve them without a log query per request.
func (eh *DepositEventHandler) HandleEvents(
	startBlock *big.Int,
	endBlock *big.Int,
) error {
	deposits, err := eh.eventListener.FetchDeposits(
		context.Background(), eh.vaultAddress, startBlock, endBlock,
	)
	if err != nil {
		return fmt.Errorf("unable to fetch deposit events because of: %+v", err)
	}

	for _, d := range deposits {
		eh.depositStore.Store(d)
		eh.log.Debug().Msgf(
			"Indexed deposit %s from block %d", d.DepositID.Hex(), d.BlockNumber,
		)
	}
	return nil
}
