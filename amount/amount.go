package amount

import (
	"math/big"
	"strings"

	"github.com/veilpay/veilpay-signing/errs"
)

const (
	// FixedLength is the width of the big-endian amount encoding used
	// inside hashing preimages.
	FixedLength = 32

	maxBits = FixedLength * 8
)

// ParseDecimal parses a non-negative base-10 amount in base units. Signs,
// radix prefixes and separators are rejected so the accepted grammar is
// exactly what ends up hashed.
func ParseDecimal(s string) (*big.Int, error) {
	if s == "" {
		return nil, errs.NewValidationError("amount", "empty amount")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, errs.NewValidationError("amount", "%s is not a base-10 amount", s)
		}
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errs.NewValidationError("amount", "%s is not a base-10 amount", s)
	}
	if v.BitLen() > maxBits {
		return nil, errs.NewValidationError("amount", "%s does not fit in %d bits", s, maxBits)
	}

	return v, nil
}

// ToFixed32 encodes an amount as a fixed-width big-endian value. Negative
// or >256-bit inputs are a programming error and panic, values accepted
// by ParseDecimal always fit.
func ToFixed32(v *big.Int) [FixedLength]byte {
	if v.Sign() < 0 {
		panic("amount: negative value")
	}

	var out [FixedLength]byte
	v.FillBytes(out[:])
	return out
}

// FormatScaled renders a base-unit amount as a human decimal string with
// the given number of decimals. Trailing fractional zeros are stripped
// and a zero fraction drops the decimal point entirely.
func FormatScaled(v *big.Int, decimals uint8) string {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(v, scale, new(big.Int))

	if frac.Sign() == 0 {
		return whole.String()
	}

	digits := frac.String()
	if pad := int(decimals) - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	return whole.String() + "." + strings.TrimRight(digits, "0")
}
