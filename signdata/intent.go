package signdata

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/asset"
	"github.com/veilpay/veilpay-signing/errs"
)

// IntentType discriminates the withdrawal payout variants.
type IntentType uint8

const (
	// IntentRawToken pays out to a token contract addressed directly.
	IntentRawToken IntentType = 0
	// IntentAssetToken routes the payout through a registered asset
	// adapter.
	IntentAssetToken IntentType = 1
)

// Intent describes where and how a withdrawal pays out. Type selects
// which variant fields are meaningful, rendering matches on it
// exhaustively.
type Intent struct {
	Type          IntentType               `json:"type"`
	TokenContract string                   `json:"tokenContract,omitempty"`
	AssetID       asset.ID                 `json:"assetId"`
	Beneficiary   address.UniversalAddress `json:"beneficiary"`
}

func (i Intent) Validate() error {
	if i.Beneficiary.IsZero() {
		return errs.NewValidationError("beneficiary", "missing beneficiary address")
	}

	switch i.Type {
	case IntentRawToken:
		_, err := rawTokenContract(i.TokenContract)
		return err
	case IntentAssetToken:
		return nil
	default:
		return errs.NewValidationError("intent", "unknown intent type %d", i.Type)
	}
}

// rawTokenContract extracts the 20-byte contract address from the wider
// stored field. Only the last 40 hex characters are position
// significant, leading words carry routing data some chains prepend.
func rawTokenContract(field string) (common.Address, error) {
	s := strings.TrimPrefix(field, "0x")
	if len(s) < common.AddressLength*2 {
		return common.Address{}, errs.NewValidationError("tokenContract", "%s is shorter than %d hex characters", field, common.AddressLength*2)
	}

	b, err := hex.DecodeString(s[len(s)-common.AddressLength*2:])
	if err != nil {
		return common.Address{}, errs.NewValidationError("tokenContract", "%s is not valid hex", field)
	}

	return common.BytesToAddress(b), nil
}
