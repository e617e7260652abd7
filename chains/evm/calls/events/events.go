// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/veilpay/veilpay-signing/commitment"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	DepositedSig EventSig = "Deposited(bytes32,address,address,uint256)"
)

// Deposit holds vault deposit event data together with its on-chain location
type Deposit struct {
	DepositID   commitment.DepositID
	Owner       common.Address
	Token       common.Address
	Amount      *big.Int
	TxHash      common.Hash
	BlockNumber uint64
}
