package signdata

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/amount"
	"github.com/veilpay/veilpay-signing/commitment"
	"github.com/veilpay/veilpay-signing/errs"
)

// CommitmentInput carries everything needed to authorize a deposit
// commitment. ChainName overrides the registry name when set.
type CommitmentInput struct {
	Allocations []AllocationWithSeq
	DepositID   commitment.DepositID
	TokenID     uint16
	TokenSymbol string
	ChainID     uint32
	Owner       address.UniversalAddress
	Lang        string
	ChainName   string
}

// CommitmentSignData is the immutable commitment authorization bundle.
// Message and MessageHash are derivable from the remaining fields,
// VerifyCommitment checks they stayed consistent.
type CommitmentSignData struct {
	DepositID   commitment.DepositID     `json:"depositId"`
	Amounts     []string                 `json:"amounts"`
	TokenID     uint16                   `json:"tokenId"`
	TokenSymbol string                   `json:"tokenSymbol"`
	ChainID     uint32                   `json:"chainId"`
	Owner       address.UniversalAddress `json:"owner"`
	Lang        string                   `json:"lang"`
	ChainName   string                   `json:"chainName,omitempty"`
	Allocations []AllocationWithSeq      `json:"allocations"`
	Message     string                   `json:"message"`
	MessageHash common.Hash              `json:"messageHash"`
}

// PrepareCommitment validates and canonicalizes the input, renders the
// localized authorization message and hashes it. Two callers supplying
// the same logical allocation set in different orders get identical
// bundles.
func (f *Formatter) PrepareCommitment(in CommitmentInput) (*CommitmentSignData, error) {
	if len(in.Allocations) == 0 {
		return nil, errs.NewValidationError("allocations", "empty allocation list")
	}
	if in.TokenSymbol == "" {
		return nil, errs.NewValidationError("tokenSymbol", "empty token symbol")
	}

	sorted := make([]AllocationWithSeq, len(in.Allocations))
	copy(sorted, in.Allocations)
	slices.SortFunc(sorted, func(a, b AllocationWithSeq) int {
		return cmp.Compare(a.Seq, b.Seq)
	})

	amounts := make([]*big.Int, len(sorted))
	mirror := make([]string, len(sorted))
	for i, a := range sorted {
		if i > 0 && a.Seq == sorted[i-1].Seq {
			return nil, errs.NewValidationError("allocations", "duplicate seq %d", a.Seq)
		}

		v, err := amount.ParseDecimal(a.Amount)
		if err != nil {
			return nil, err
		}
		amounts[i] = v
		mirror[i] = a.Amount
	}

	message := f.renderCommitmentMessage(in, sorted, amounts)
	return &CommitmentSignData{
		DepositID:   in.DepositID,
		Amounts:     mirror,
		TokenID:     in.TokenID,
		TokenSymbol: in.TokenSymbol,
		ChainID:     in.ChainID,
		Owner:       in.Owner,
		Lang:        in.Lang,
		ChainName:   in.ChainName,
		Allocations: sorted,
		Message:     message,
		MessageHash: crypto.Keccak256Hash([]byte(message)),
	}, nil
}

// Commitment recomputes the binding hash over the bundle's canonical
// allocation order.
func (sd *CommitmentSignData) Commitment() (common.Hash, error) {
	allocations := make([]commitment.Allocation, len(sd.Allocations))
	for i, a := range sd.Allocations {
		v, err := amount.ParseDecimal(a.Amount)
		if err != nil {
			return common.Hash{}, err
		}

		allocations[i] = commitment.Allocation{
			Seq:    a.Seq,
			Amount: v,
		}
	}

	return commitment.Commitment(sd.DepositID, sd.ChainID, sd.TokenSymbol, sd.Owner, allocations), nil
}

func (f *Formatter) renderCommitmentMessage(in CommitmentInput, sorted []AllocationWithSeq, amounts []*big.Int) string {
	t := translations[MatchLanguage(in.Lang)]

	lines := make([]string, 0, len(sorted)+8)
	lines = append(lines,
		t.commitmentTitle,
		"",
		fmt.Sprintf(t.tokenLine, in.TokenSymbol, in.TokenID),
		t.allocationsHeader,
	)
	for i, a := range sorted {
		lines = append(lines, fmt.Sprintf(allocationLine, a.Seq, amount.FormatScaled(amounts[i], displayDecimals), in.TokenSymbol))
	}
	lines = append(lines,
		"",
		fmt.Sprintf(t.depositLine, in.DepositID.Number()),
		fmt.Sprintf(t.networkLine, f.chainName(in.ChainName, in.ChainID), in.ChainID),
		fmt.Sprintf(t.ownerLine, f.registry.Format(in.Owner, in.Lang)),
	)

	return strings.Join(lines, "\n")
}
