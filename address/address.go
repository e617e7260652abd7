package address

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/veilpay/veilpay-signing/errs"
)

const (
	// CanonicalLength is the fixed width of the chain-agnostic address
	// encoding. Account bodies are right-aligned and zero-padded on the
	// left so hashing and comparison are chain-independent.
	CanonicalLength = 32

	bodyOffset = CanonicalLength - common.AddressLength
)

// UniversalAddress is the canonical cross-chain representation of an
// account. Values are immutable once constructed, a different chain id
// produces a new value.
type UniversalAddress struct {
	ChainID uint32
	Address string
	Data    [CanonicalLength]byte
}

// New canonicalizes a chain-native display address.
func New(r *Registry, chainID uint32, display string) (UniversalAddress, error) {
	data, err := r.ToCanonical(chainID, display)
	if err != nil {
		return UniversalAddress{}, err
	}

	return UniversalAddress{
		ChainID: chainID,
		Address: display,
		Data:    data,
	}, nil
}

// FromCanonical reconstructs the display form from a canonical value.
func FromCanonical(r *Registry, chainID uint32, data [CanonicalLength]byte) (UniversalAddress, error) {
	display, err := r.FromCanonical(chainID, data)
	if err != nil {
		return UniversalAddress{}, err
	}

	return UniversalAddress{
		ChainID: chainID,
		Address: display,
		Data:    data,
	}, nil
}

func (a UniversalAddress) Hex() string {
	return hexutil.Encode(a.Data[:])
}

func (a UniversalAddress) IsZero() bool {
	return a == UniversalAddress{}
}

type universalAddressJSON struct {
	ChainID uint32 `json:"chainId"`
	Address string `json:"address"`
	Data    string `json:"data"`
}

func (a UniversalAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(universalAddressJSON{
		ChainID: a.ChainID,
		Address: a.Address,
		Data:    a.Hex(),
	})
}

func (a *UniversalAddress) UnmarshalJSON(data []byte) error {
	var raw universalAddressJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b, err := hexutil.Decode(raw.Data)
	if err != nil {
		return errs.NewValidationError("address", "canonical data not valid hex: %s", err)
	}
	if len(b) != CanonicalLength {
		return errs.NewValidationError("address", "canonical data has %d bytes, expected %d", len(b), CanonicalLength)
	}

	a.ChainID = raw.ChainID
	a.Address = raw.Address
	copy(a.Data[:], b)
	return nil
}

// ToCanonical encodes a display address into the fixed-width canonical
// form for the chain family. Inputs whose decoded length does not match
// the native address width are rejected.
func (r *Registry) ToCanonical(chainID uint32, display string) ([CanonicalLength]byte, error) {
	var data [CanonicalLength]byte

	family, err := r.Family(chainID)
	if err != nil {
		return data, err
	}

	switch family {
	case FamilyEVM:
		if !common.IsHexAddress(display) {
			return data, errs.NewValidationError("address", "%s is not a valid EVM address", display)
		}
		addr := common.HexToAddress(display)
		copy(data[bodyOffset:], addr.Bytes())
	case FamilyTron:
		body, err := DecodeTron(display)
		if err != nil {
			return data, err
		}
		copy(data[bodyOffset:], body[:])
	default:
		return data, errs.NewValidationError("chainId", "unsupported chain family %s", family)
	}

	return data, nil
}

// FromCanonical decodes a canonical value back into the chain-native
// display form. Values with a non-zero padding region are rejected as
// malformed or adversarially crafted.
func (r *Registry) FromCanonical(chainID uint32, data [CanonicalLength]byte) (string, error) {
	family, err := r.Family(chainID)
	if err != nil {
		return "", err
	}

	for _, b := range data[:bodyOffset] {
		if b != 0 {
			return "", errs.NewValidationError("address", "canonical value has non-zero padding")
		}
	}

	var body [common.AddressLength]byte
	copy(body[:], data[bodyOffset:])

	switch family {
	case FamilyEVM:
		return common.BytesToAddress(body[:]).Hex(), nil
	case FamilyTron:
		return EncodeTron(body), nil
	default:
		return "", errs.NewValidationError("chainId", "unsupported chain family %s", family)
	}
}
