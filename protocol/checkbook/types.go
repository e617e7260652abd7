package checkbook

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/veilpay/veilpay-signing/signdata"
)

// UniversalAddress is the backend representation of a chain qualified
// account. Data is the chain-native display address, not the canonical
// 32-byte form.
type UniversalAddress struct {
	ChainID uint32 `json:"slip44_chain_id"`
	Data    string `json:"data"`
}

// Checkbook is a deposit record tracked by the backend. Commitment stays
// nil until a signed commitment has been accepted for the deposit.
type Checkbook struct {
	ID                string           `json:"id"`
	ChainID           uint32           `json:"slip44_chain_id"`
	EVMChainID        *uint32          `json:"evm_chain_id,omitempty"`
	LocalDepositID    uint64           `json:"local_deposit_id"`
	DepositTxHash     string           `json:"deposit_transaction_hash"`
	UserAddress       UniversalAddress `json:"user_address"`
	TokenKey          string           `json:"token_key"`
	TokenAddress      string           `json:"token_address"`
	Amount            string           `json:"amount"`
	GrossAmount       string           `json:"gross_amount"`
	AllocatableAmount string           `json:"allocatable_amount"`
	FeeTotalLocked    string           `json:"fee_total_locked"`
	Status            string           `json:"status"`
	Commitment        *string          `json:"commitment,omitempty"`
	Signature         string           `json:"signature"`
}

// Check is a single allocation of a checkbook. The backend joins the
// parent checkbook commitment into allocation responses, so Commitment
// is filled on reads even though it lives on the checkbook.
type Check struct {
	ID                string                    `json:"id"`
	CheckbookID       string                    `json:"checkbook_id"`
	Seq               uint8                     `json:"seq"`
	Amount            string                    `json:"amount"`
	Status            signdata.AllocationStatus `json:"status"`
	Nullifier         string                    `json:"nullifier"`
	WithdrawRequestID *string                   `json:"withdraw_request_id,omitempty"`
	TokenID           uint16                    `json:"token_id,omitempty"`
	Commitment        string                    `json:"commitment,omitempty"`
}

// Allocation converts the wire record into the internal allocation
// representation.
func (c *Check) Allocation() *signdata.Allocation {
	a := &signdata.Allocation{
		ID:          c.ID,
		Seq:         c.Seq,
		Amount:      c.Amount,
		TokenID:     c.TokenID,
		CheckbookID: c.CheckbookID,
		Status:      c.Status,
	}
	if c.Commitment != "" {
		a.Commitment = common.HexToHash(c.Commitment)
	}

	return a
}
