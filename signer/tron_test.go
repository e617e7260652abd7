package signer_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/signer"
)

type TronSignerTestSuite struct {
	suite.Suite

	signer *signer.TronSigner
}

func TestRunTronSignerTestSuite(t *testing.T) {
	suite.Run(t, new(TronSignerTestSuite))
}

func (s *TronSignerTestSuite) SetupTest() {
	sg, err := signer.NewTronSignerFromHex(testKey)
	s.Nil(err)
	s.signer = sg
}

func (s *TronSignerTestSuite) Test_Address_Base58CheckEncoded() {
	addr, err := s.signer.Address()
	s.Nil(err)
	s.True(strings.HasPrefix(addr, "T"))

	key, err := crypto.HexToECDSA(testKey)
	s.Nil(err)

	body, err := address.DecodeTron(addr)
	s.Nil(err)
	s.Equal(crypto.PubkeyToAddress(key.PublicKey).Bytes(), body[:])
}

func (s *TronSignerTestSuite) Test_SignMessage_RecoversToSignerKey() {
	msg := []byte("提款授权")

	sig, err := s.signer.SignMessage(context.Background(), msg)
	s.Nil(err)
	s.Len(sig, signer.SignatureLength)
	s.True(sig[64] == 27 || sig[64] == 28)

	digest := crypto.Keccak256([]byte(fmt.Sprintf("\x19TRON Signed Message:\n%d%s", len(msg), msg)))

	recovery := make([]byte, len(sig))
	copy(recovery, sig)
	recovery[64] -= 27

	pub, err := crypto.SigToPub(digest, recovery)
	s.Nil(err)

	key, err := crypto.HexToECDSA(testKey)
	s.Nil(err)
	s.Equal(crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(*pub))
}
