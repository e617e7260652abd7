package signer

import (
	"context"
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/veilpay/veilpay-signing/errs"
)

// EVMSigner signs with raw key material per the EIP-191 personal
// message scheme.
type EVMSigner struct {
	key *ecdsa.PrivateKey
}

func NewEVMSigner(key *ecdsa.PrivateKey) *EVMSigner {
	return &EVMSigner{
		key: key,
	}
}

// NewEVMSignerFromHex parses a hex-encoded private key, with or without
// the 0x prefix.
func NewEVMSignerFromHex(hexKey string) (*EVMSigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errs.NewSignerError("evm", err)
	}

	return NewEVMSigner(key), nil
}

// SignMessage prefixes and hashes the raw text per EIP-191 and signs
// the digest. The recovery id is offset to the legacy 27/28 form
// on-chain verifiers expect.
func (s *EVMSigner) SignMessage(_ context.Context, msg []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(msg), s.key)
	if err != nil {
		return nil, errs.NewSignerError("evm", err)
	}

	sig[SignatureLength-1] += 27
	return sig, nil
}

func (s *EVMSigner) Address() (string, error) {
	return crypto.PubkeyToAddress(s.key.PublicKey).Hex(), nil
}
