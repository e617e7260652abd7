// Package commitment implements the content-addressed deposit hashing
// primitives. Both hashes are pure functions over fixed-width encodings,
// equal inputs always produce equal digests across releases.
package commitment

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/amount"
)

// Allocation is one hashed allocation leg of a deposit.
type Allocation struct {
	Seq    uint8
	Amount *big.Int
}

// Commitment hashes a deposit into its canonical digest. Allocations are
// hashed in the given order, callers sort ascending by seq before
// calling.
//
// The preimage is depositID ‖ chainID(4,BE) ‖ keccak256(tokenKey) ‖
// owner.ChainID(4,BE) ‖ owner.Data ‖ keccak256(seq(1) ‖ amount(32,BE))
// per allocation.
func Commitment(depositID DepositID, chainID uint32, tokenKey string, owner address.UniversalAddress, allocations []Allocation) common.Hash {
	var chainIDBytes, ownerChainIDBytes [4]byte
	binary.BigEndian.PutUint32(chainIDBytes[:], chainID)
	binary.BigEndian.PutUint32(ownerChainIDBytes[:], owner.ChainID)

	segments := make([][]byte, 0, 5+len(allocations))
	segments = append(
		segments,
		depositID[:],
		chainIDBytes[:],
		crypto.Keccak256([]byte(tokenKey)),
		ownerChainIDBytes[:],
		owner.Data[:],
	)
	for _, a := range allocations {
		leaf := allocationLeaf(a)
		segments = append(segments, leaf[:])
	}

	return crypto.Keccak256Hash(segments...)
}

// Nullifier derives the spend tag for one allocation of a committed
// deposit as keccak256(commitment ‖ seq(1) ‖ amount(32,BE)).
func Nullifier(commitment common.Hash, seq uint8, amt *big.Int) common.Hash {
	encoded := amount.ToFixed32(amt)
	return crypto.Keccak256Hash(commitment[:], []byte{seq}, encoded[:])
}

func allocationLeaf(a Allocation) common.Hash {
	encoded := amount.ToFixed32(a.Amount)
	return crypto.Keccak256Hash([]byte{a.Seq}, encoded[:])
}
