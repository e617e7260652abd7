package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/errs"
)

// tronMessagePrefix is the TIP-191 personal message header, the decimal
// message length follows it like in EIP-191.
const tronMessagePrefix = "\x19TRON Signed Message:\n"

// TronSigner signs with raw key material per the TIP-191 personal
// message scheme. TRON shares secp256k1 and keccak with the EVM family,
// only the prefix and the display address derivation differ.
type TronSigner struct {
	key *ecdsa.PrivateKey
}

func NewTronSigner(key *ecdsa.PrivateKey) *TronSigner {
	return &TronSigner{
		key: key,
	}
}

// NewTronSignerFromHex parses a hex-encoded private key, with or
// without the 0x prefix.
func NewTronSignerFromHex(hexKey string) (*TronSigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errs.NewSignerError("tron", err)
	}

	return NewTronSigner(key), nil
}

func (s *TronSigner) SignMessage(_ context.Context, msg []byte) ([]byte, error) {
	sig, err := crypto.Sign(tronTextHash(msg), s.key)
	if err != nil {
		return nil, errs.NewSignerError("tron", err)
	}

	sig[SignatureLength-1] += 27
	return sig, nil
}

func (s *TronSigner) Address() (string, error) {
	return address.EncodeTron(crypto.PubkeyToAddress(s.key.PublicKey)), nil
}

func tronTextHash(data []byte) []byte {
	msg := fmt.Sprintf("%s%d%s", tronMessagePrefix, len(data), data)
	return crypto.Keccak256([]byte(msg))
}
