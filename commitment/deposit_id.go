package commitment

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/veilpay/veilpay-signing/errs"
)

// DepositIDLength is the fixed identifier width.
const DepositIDLength = 32

// DepositID is the on-chain deposit identifier. The display number shown
// to users lives in bytes [0:8] as a big-endian integer, the remaining
// bytes carry protocol entropy.
type DepositID [DepositIDLength]byte

// ParseDepositID parses a 0x-prefixed 32-byte hex identifier.
func ParseDepositID(s string) (DepositID, error) {
	var id DepositID

	b, err := hexutil.Decode(s)
	if err != nil {
		return id, errs.NewValidationError("depositId", "%s is not valid hex: %s", s, err)
	}
	if len(b) != DepositIDLength {
		return id, errs.NewValidationError("depositId", "%s has %d bytes, expected %d", s, len(b), DepositIDLength)
	}

	copy(id[:], b)
	return id, nil
}

// DepositIDFromNumber constructs an identifier carrying only the display
// number.
func DepositIDFromNumber(n uint64) DepositID {
	var id DepositID
	binary.BigEndian.PutUint64(id[:8], n)
	return id
}

// Number returns the human-readable deposit number.
func (d DepositID) Number() uint64 {
	return binary.BigEndian.Uint64(d[:8])
}

func (d DepositID) Hex() string {
	return hexutil.Encode(d[:])
}

func (d DepositID) MarshalText() ([]byte, error) {
	return []byte(d.Hex()), nil
}

func (d *DepositID) UnmarshalText(text []byte) error {
	id, err := ParseDepositID(string(text))
	if err != nil {
		return err
	}

	*d = id
	return nil
}
