package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sygmaprotocol/sygma-core/relayer/message"

	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/asset"
	chainsMessage "github.com/veilpay/veilpay-signing/chains/message"
	"github.com/veilpay/veilpay-signing/commitment"
	"github.com/veilpay/veilpay-signing/signdata"
)

type RequestType string

const (
	CommitmentRequest RequestType = "commitment"
	WithdrawalRequest RequestType = "withdrawal"
)

type AddressBody struct {
	ChainId uint32 `json:"chainId"`
	Address string `json:"address"`
}

type IntentBody struct {
	Type          uint8       `json:"type"`
	TokenContract string      `json:"tokenContract"`
	AssetId       string      `json:"assetId"`
	Beneficiary   AddressBody `json:"beneficiary"`
}

type SigningBody struct {
	ChainId       uint64
	Type          RequestType                  `json:"type"`
	Lang          string                       `json:"lang"`
	TokenSymbol   string                       `json:"tokenSymbol"`
	DepositId     string                       `json:"depositId"`
	Owner         string                       `json:"owner"`
	Allocations   []signdata.AllocationWithSeq `json:"allocations"`
	AllocationIds []string                     `json:"allocationIds"`
	Intent        *IntentBody                  `json:"intent"`
}

type SigningResponse struct {
	Id string `json:"id"`
}

type SigningHandler struct {
	msgChan  chan []*message.Message
	registry *address.Registry
	chains   map[uint64]struct{}
}

func NewSigningHandler(
	msgChan chan []*message.Message,
	registry *address.Registry,
	chains map[uint64]struct{},
) *SigningHandler {
	return &SigningHandler{
		msgChan:  msgChan,
		registry: registry,
		chains:   chains,
	}
}

// HandleSigning sends a message to the matching message handler and returns
// status code 202 with the result ID if the request has been accepted for
// the signing process
func (h *SigningHandler) HandleSigning(w http.ResponseWriter, r *http.Request) {
	b := &SigningBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	err = h.validate(b, vars)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	errChn := make(chan error, 1)
	id := uuid.NewString()

	var m *message.Message
	switch b.Type {
	case CommitmentRequest:
		{
			depositId, err := parseDepositId(b.DepositId)
			if err != nil {
				JSONError(w, err, http.StatusBadRequest)
				return
			}

			m = chainsMessage.NewCommitmentMessage(0, b.ChainId, &chainsMessage.CommitmentData{
				ErrChn:      errChn,
				SigID:       id,
				DepositID:   depositId,
				TokenSymbol: b.TokenSymbol,
				Allocations: b.Allocations,
				Owner:       b.Owner,
				Lang:        b.Lang,
				Source:      0,
				Destination: b.ChainId,
			})
		}
	case WithdrawalRequest:
		{
			intent, err := h.intent(b.Intent)
			if err != nil {
				JSONError(w, err, http.StatusBadRequest)
				return
			}

			m = chainsMessage.NewWithdrawalMessage(0, b.ChainId, &chainsMessage.WithdrawalData{
				ErrChn:        errChn,
				SigID:         id,
				AllocationIDs: b.AllocationIds,
				Intent:        intent,
				TokenSymbol:   b.TokenSymbol,
				Lang:          b.Lang,
				Source:        0,
				Destination:   b.ChainId,
			})
		}
	default:
		JSONError(w, fmt.Errorf("invalid request type %s", b.Type), http.StatusBadRequest)
		return
	}
	h.msgChan <- []*message.Message{m}

	err = <-errChn
	if err != nil {
		JSONError(w, fmt.Errorf("signing failed: %s", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(SigningResponse{Id: id})
}

func (h *SigningHandler) validate(b *SigningBody, vars map[string]string) error {
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		return fmt.Errorf("field 'chainId' invalid")
	}
	b.ChainId = chainId.Uint64()

	if b.ChainId == 0 {
		return fmt.Errorf("missing field 'chainId'")
	}

	_, ok = h.chains[b.ChainId]
	if !ok {
		return fmt.Errorf("chain '%d' not supported", b.ChainId)
	}

	switch b.Type {
	case CommitmentRequest:
		if b.DepositId == "" {
			return fmt.Errorf("missing field 'depositId'")
		}

		if b.Owner == "" {
			return fmt.Errorf("missing field 'owner'")
		}

		if len(b.Allocations) == 0 {
			return fmt.Errorf("missing field 'allocations'")
		}
	case WithdrawalRequest:
		if len(b.AllocationIds) == 0 {
			return fmt.Errorf("missing field 'allocationIds'")
		}

		if b.Intent == nil {
			return fmt.Errorf("missing field 'intent'")
		}
	}

	return nil
}

// intent canonicalizes the request intent. The beneficiary arrives in its
// chain-native display form and is expanded through the address registry.
func (h *SigningHandler) intent(b *IntentBody) (signdata.Intent, error) {
	beneficiary, err := address.New(h.registry, b.Beneficiary.ChainId, b.Beneficiary.Address)
	if err != nil {
		return signdata.Intent{}, fmt.Errorf("field 'beneficiary' invalid: %s", err)
	}

	intent := signdata.Intent{
		Type:          signdata.IntentType(b.Type),
		TokenContract: b.TokenContract,
		Beneficiary:   beneficiary,
	}
	if b.AssetId != "" {
		assetId, err := asset.ParseHex(b.AssetId)
		if err != nil {
			return signdata.Intent{}, fmt.Errorf("field 'assetId' invalid: %s", err)
		}
		intent.AssetID = assetId
	}

	return intent, nil
}

// parseDepositId accepts either the full hex deposit ID or its decimal
// display number.
func parseDepositId(s string) (commitment.DepositID, error) {
	if strings.HasPrefix(s, "0x") {
		id, err := commitment.ParseDepositID(s)
		if err != nil {
			return commitment.DepositID{}, fmt.Errorf("field 'depositId' invalid: %s", err)
		}

		return id, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return commitment.DepositID{}, fmt.Errorf("field 'depositId' invalid: %s", err)
	}

	return commitment.DepositIDFromNumber(n), nil
}
