package message

import (
	"context"
	"fmt"

	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/relayer/proposal"

	"github.com/veilpay/veilpay-signing/config"
	"github.com/veilpay/veilpay-signing/signdata"
	"github.com/veilpay/veilpay-signing/signer"
)

type AllocationStore interface {
	Allocation(ctx context.Context, id string) (*signdata.Allocation, error)
}

type WithdrawalMessageHandler struct {
	chainID         uint64
	formatter       *signdata.Formatter
	tokenStore      config.TokenStore
	allocationStore AllocationStore
	signer          signer.Signer

	sigChn chan any
}

func NewWithdrawalMessageHandler(
	chainID uint64,
	formatter *signdata.Formatter,
	tokenStore config.TokenStore,
	allocationStore AllocationStore,
	signer signer.Signer,
	sigChn chan any,
) *WithdrawalMessageHandler {
	return &WithdrawalMessageHandler{
		chainID:         chainID,
		formatter:       formatter,
		tokenStore:      tokenStore,
		allocationStore: allocationStore,
		signer:          signer,
		sigChn:          sigChn,
	}
}

// HandleMessage resolves the requested allocations, derives their spend
// nullifiers and signs the localized withdrawal authorization. The result
// is delivered to the signature cache through the signature channel.
func (h *WithdrawalMessageHandler) HandleMessage(m *message.Message) (*proposal.Proposal, error) {
	data := m.Data.(*WithdrawalData)

	err := data.Intent.Validate()
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	if data.Intent.Beneficiary.ChainID != uint32(h.chainID) {
		err := fmt.Errorf("beneficiary chain %d does not match %d", data.Intent.Beneficiary.ChainID, h.chainID)
		data.ErrChn <- err
		return nil, err
	}

	allocations, err := h.allocations(data)
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	symbol := data.TokenSymbol
	if symbol == "" && data.Intent.Type == signdata.IntentAssetToken {
		symbol, err = h.tokenStore.SymbolByID(h.chainID, data.Intent.AssetID.TokenID)
		if err != nil {
			data.ErrChn <- err
			return nil, err
		}
	}

	sd, err := h.formatter.PrepareWithdrawal(signdata.WithdrawalInput{
		Allocations: allocations,
		Intent:      data.Intent,
		TokenSymbol: symbol,
		Lang:        data.Lang,
	})
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}
	data.ErrChn <- nil

	sig, err := h.signer.SignMessage(context.Background(), []byte(sd.Message))
	if err != nil {
		return nil, err
	}

	signerAddress, err := h.signer.Address()
	if err != nil {
		return nil, err
	}

	nullifier := sd.Nullifier
	h.sigChn <- &SigningResult{
		ID:            data.SigID,
		Type:          WithdrawalResult,
		Message:       sd.Message,
		MessageHash:   sd.MessageHash,
		Signature:     sig,
		SignerAddress: signerAddress,
		Nullifier:     &nullifier,
		Nullifiers:    sd.Nullifiers,
	}
	return nil, nil
}

// allocations resolves the requested allocation IDs and checks each one
// is still spendable and matches the intent token.
func (h *WithdrawalMessageHandler) allocations(data *WithdrawalData) ([]signdata.Allocation, error) {
	allocations := make([]signdata.Allocation, 0, len(data.AllocationIDs))
	for _, id := range data.AllocationIDs {
		a, err := h.allocationStore.Allocation(context.Background(), id)
		if err != nil {
			return nil, err
		}

		if a.Status != signdata.StatusIdle {
			return nil, fmt.Errorf("allocation %s is %s", id, a.Status)
		}

		if data.Intent.Type == signdata.IntentAssetToken && a.TokenID != data.Intent.AssetID.TokenID {
			return nil, fmt.Errorf("allocation %s token %d does not match asset token %d", id, a.TokenID, data.Intent.AssetID.TokenID)
		}

		allocations = append(allocations, *a)
	}

	return allocations, nil
}
