package signdata

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/veilpay/veilpay-signing/amount"
	"github.com/veilpay/veilpay-signing/commitment"
	"github.com/veilpay/veilpay-signing/errs"
)

// WithdrawalInput carries everything needed to authorize a withdrawal.
// The target chain is the intent beneficiary's chain, ChainName
// overrides its registry name when set.
type WithdrawalInput struct {
	Allocations []Allocation
	Intent      Intent
	TokenSymbol string
	Lang        string
	ChainName   string
}

// WithdrawalSignData is the immutable withdrawal authorization bundle.
// Nullifier is the spend tag of the first allocation in canonical order,
// Nullifiers carries one per allocation for multi-allocation spends.
type WithdrawalSignData struct {
	AllocationIDs []string      `json:"allocationIds"`
	TargetChain   uint32        `json:"targetChain"`
	TargetAddress string        `json:"targetAddress"`
	Intent        Intent        `json:"intent"`
	TokenSymbol   string        `json:"tokenSymbol"`
	Lang          string        `json:"lang"`
	ChainName     string        `json:"chainName,omitempty"`
	Allocations   []Allocation  `json:"allocations"`
	Message       string        `json:"message"`
	MessageHash   common.Hash   `json:"messageHash"`
	Nullifier     common.Hash   `json:"nullifier"`
	Nullifiers    []common.Hash `json:"nullifiers"`
}

// PrepareWithdrawal validates and canonicalizes the input, derives the
// spend nullifiers and renders the localized authorization message.
// Withdrawal identity is by allocation id, allocations sort
// lexicographically regardless of their seq within the commitment.
func (f *Formatter) PrepareWithdrawal(in WithdrawalInput) (*WithdrawalSignData, error) {
	if len(in.Allocations) == 0 {
		return nil, errs.NewValidationError("allocations", "empty allocation list")
	}
	if in.TokenSymbol == "" {
		return nil, errs.NewValidationError("tokenSymbol", "empty token symbol")
	}
	if err := in.Intent.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]Allocation, len(in.Allocations))
	copy(sorted, in.Allocations)
	slices.SortFunc(sorted, func(a, b Allocation) int {
		return cmp.Compare(a.ID, b.ID)
	})

	total := new(big.Int)
	ids := make([]string, len(sorted))
	nullifiers := make([]common.Hash, len(sorted))
	for i, a := range sorted {
		v, err := amount.ParseDecimal(a.Amount)
		if err != nil {
			return nil, err
		}
		total.Add(total, v)
		ids[i] = a.ID

		if a.Commitment == (common.Hash{}) {
			return nil, errs.NewValidationError("allocations", "allocation %s has no commitment", a.ID)
		}
		nullifiers[i] = commitment.Nullifier(a.Commitment, a.Seq, v)
	}

	message, err := f.renderWithdrawalMessage(in, total)
	if err != nil {
		return nil, err
	}

	return &WithdrawalSignData{
		AllocationIDs: ids,
		TargetChain:   in.Intent.Beneficiary.ChainID,
		TargetAddress: in.Intent.Beneficiary.Address,
		Intent:        in.Intent,
		TokenSymbol:   in.TokenSymbol,
		Lang:          in.Lang,
		ChainName:     in.ChainName,
		Allocations:   sorted,
		Message:       message,
		MessageHash:   crypto.Keccak256Hash([]byte(message)),
		Nullifier:     nullifiers[0],
		Nullifiers:    nullifiers,
	}, nil
}

func (f *Formatter) renderWithdrawalMessage(in WithdrawalInput, total *big.Int) (string, error) {
	t := translations[MatchLanguage(in.Lang)]
	beneficiary := in.Intent.Beneficiary

	var tokenLine string
	switch in.Intent.Type {
	case IntentRawToken:
		contract, err := rawTokenContract(in.Intent.TokenContract)
		if err != nil {
			return "", err
		}
		tokenLine = fmt.Sprintf(t.contractLine, contract.Hex())
	case IntentAssetToken:
		tokenLine = fmt.Sprintf(t.assetLine, in.TokenSymbol, in.Intent.AssetID.AdapterID, in.Intent.AssetID.TokenID)
	default:
		return "", errs.NewValidationError("intent", "unknown intent type %d", in.Intent.Type)
	}

	lines := []string{
		t.withdrawalTitle,
		"",
		fmt.Sprintf(t.toLine, f.registry.Format(beneficiary, in.Lang)),
		fmt.Sprintf(t.networkLine, f.chainName(in.ChainName, beneficiary.ChainID), beneficiary.ChainID),
		tokenLine,
		fmt.Sprintf(t.amountLine, amount.FormatScaled(total, displayDecimals), in.TokenSymbol),
	}

	return strings.Join(lines, "\n"), nil
}
