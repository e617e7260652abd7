// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/veilpay/veilpay-signing/chains/evm/calls/consts"
	"github.com/veilpay/veilpay-signing/chains/evm/calls/events"
	"github.com/veilpay/veilpay-signing/commitment"
)

type DepositReader interface {
	FetchDeposits(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]*events.Deposit, error)
}

type VaultContract struct {
	contracts.Contract
	address common.Address
	reader  DepositReader
}

func NewVaultContract(
	client client.Client,
	address common.Address,
	reader DepositReader,
) *VaultContract {
	return &VaultContract{
		Contract: contracts.NewContract(address, consts.VaultABI, nil, client, nil),
		address:  address,
		reader:   reader,
	}
}

// FetchDeposit recovers a deposit the listener has not indexed. The vault
// only stores the block a deposit was included in, the full event is read
// back from that block's logs.
func (c *VaultContract) FetchDeposit(ctx context.Context, depositID commitment.DepositID) (*events.Deposit, error) {
	res, err := c.CallContract("depositBlock", depositID)
	if err != nil {
		return nil, err
	}

	block := *abi.ConvertType(res[0], new(*big.Int)).(**big.Int)
	if block.Sign() == 0 {
		return nil, fmt.Errorf("deposit with id %s not found", depositID.Hex())
	}

	deposits, err := c.reader.FetchDeposits(ctx, c.address, block, block)
	if err != nil {
		return nil, err
	}

	for _, d := range deposits {
		if d.DepositID == depositID {
			return d, nil
		}
	}

	return nil, fmt.Errorf("deposit with id %s not found", depositID.Hex())
}
