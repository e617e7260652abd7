package message

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sygmaprotocol/sygma-core/relayer/message"

	"github.com/veilpay/veilpay-signing/commitment"
	"github.com/veilpay/veilpay-signing/signdata"
)

const (
	CommitmentMessage = "CommitmentMessage"
	WithdrawalMessage = "WithdrawalMessage"

	TIMEOUT = 10 * time.Minute
)

type CommitmentData struct {
	ErrChn chan error `json:"-"`

	SigID       string
	DepositID   commitment.DepositID
	TokenSymbol string
	Allocations []signdata.AllocationWithSeq
	Owner       string
	Lang        string
	Source      uint64
	Destination uint64
}

func NewCommitmentMessage(source, destination uint64, commitmentData *CommitmentData) *message.Message {
	return &message.Message{
		Source:      source,
		Destination: destination,
		Data:        commitmentData,
		Type:        CommitmentMessage,
		Timestamp:   time.Now(),
	}
}

type WithdrawalData struct {
	ErrChn chan error `json:"-"`

	SigID         string
	AllocationIDs []string
	Intent        signdata.Intent
	TokenSymbol   string
	Lang          string
	Source        uint64
	Destination   uint64
}

func NewWithdrawalMessage(source, destination uint64, withdrawalData *WithdrawalData) *message.Message {
	return &message.Message{
		Source:      source,
		Destination: destination,
		Data:        withdrawalData,
		Type:        WithdrawalMessage,
		Timestamp:   time.Now(),
	}
}

const (
	CommitmentResult = "commitment"
	WithdrawalResult = "withdrawal"
)

// SigningResult is the outcome of a handled signing request. It is pushed
// onto the signature channel and served to clients from the signature cache.
type SigningResult struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Message       string        `json:"message"`
	MessageHash   common.Hash   `json:"messageHash"`
	Signature     hexutil.Bytes `json:"signature"`
	SignerAddress string        `json:"signerAddress"`
	Commitment    *common.Hash  `json:"commitment,omitempty"`
	Nullifier     *common.Hash  `json:"nullifier,omitempty"`
	Nullifiers    []common.Hash `json:"nullifiers,omitempty"`
}
