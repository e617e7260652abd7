// Package asset encodes the fixed-layout cross-chain asset identifier
// used by asset-routed withdrawals.
package asset

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/veilpay/veilpay-signing/errs"
)

// IDLength is the encoded identifier width.
const IDLength = 10

// ID identifies a token across chains. Bytes 0-3 carry the SLIP-44 chain
// id, bytes 4-7 the adapter id and bytes 8-9 the token id, all
// big-endian.
type ID struct {
	ChainID   uint32
	AdapterID uint32
	TokenID   uint16
}

// Encode serializes the identifier into its 10-byte wire form.
func (id ID) Encode() [IDLength]byte {
	var out [IDLength]byte
	binary.BigEndian.PutUint32(out[0:4], id.ChainID)
	binary.BigEndian.PutUint32(out[4:8], id.AdapterID)
	binary.BigEndian.PutUint16(out[8:10], id.TokenID)
	return out
}

// Decode parses the 10-byte wire form.
func Decode(b []byte) (ID, error) {
	if len(b) != IDLength {
		return ID{}, errs.NewValidationError("assetId", "%d bytes, expected %d", len(b), IDLength)
	}

	return ID{
		ChainID:   binary.BigEndian.Uint32(b[0:4]),
		AdapterID: binary.BigEndian.Uint32(b[4:8]),
		TokenID:   binary.BigEndian.Uint16(b[8:10]),
	}, nil
}

// ParseHex decodes a 0x-prefixed hex identifier.
func ParseHex(s string) (ID, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return ID{}, errs.NewValidationError("assetId", "%s is not valid hex: %s", s, err)
	}

	return Decode(b)
}

func (id ID) Hex() string {
	encoded := id.Encode()
	return hexutil.Encode(encoded[:])
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
