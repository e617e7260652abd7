package signer_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"github.com/veilpay/veilpay-signing/signer"
)

const testKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

type EVMSignerTestSuite struct {
	suite.Suite

	signer *signer.EVMSigner
}

func TestRunEVMSignerTestSuite(t *testing.T) {
	suite.Run(t, new(EVMSignerTestSuite))
}

func (s *EVMSignerTestSuite) SetupTest() {
	sg, err := signer.NewEVMSignerFromHex(testKey)
	s.Nil(err)
	s.signer = sg
}

func (s *EVMSignerTestSuite) Test_NewEVMSignerFromHex_AcceptsPrefix() {
	prefixed, err := signer.NewEVMSignerFromHex("0x" + testKey)
	s.Nil(err)

	expected, err := s.signer.Address()
	s.Nil(err)
	addr, err := prefixed.Address()
	s.Nil(err)
	s.Equal(expected, addr)
}

func (s *EVMSignerTestSuite) Test_NewEVMSignerFromHex_InvalidKey() {
	_, err := signer.NewEVMSignerFromHex("not-a-key")
	s.NotNil(err)
}

func (s *EVMSignerTestSuite) Test_SignMessage_RecoversToSignerAddress() {
	msg := []byte("Deposit Commitment Authorization")

	sig, err := s.signer.SignMessage(context.Background(), msg)
	s.Nil(err)
	s.Len(sig, signer.SignatureLength)
	s.True(sig[64] == 27 || sig[64] == 28)

	recovery := make([]byte, len(sig))
	copy(recovery, sig)
	recovery[64] -= 27

	pub, err := crypto.SigToPub(accounts.TextHash(msg), recovery)
	s.Nil(err)

	addr, err := s.signer.Address()
	s.Nil(err)
	s.Equal(addr, crypto.PubkeyToAddress(*pub).Hex())
}

func (s *EVMSignerTestSuite) Test_SignMessage_Deterministic() {
	msg := []byte("message")

	first, err := s.signer.SignMessage(context.Background(), msg)
	s.Nil(err)
	second, err := s.signer.SignMessage(context.Background(), msg)
	s.Nil(err)

	s.Equal(first, second)
}
