package address_test

import (
	"crypto/sha256"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/suite"
	"github.com/veilpay/veilpay-signing/address"
)

type TronTestSuite struct {
	suite.Suite
}

func TestRunTronTestSuite(t *testing.T) {
	suite.Run(t, new(TronTestSuite))
}

func (s *TronTestSuite) Test_DecodeTron_KnownAddress() {
	body, err := address.DecodeTron(tronUSDT)
	s.Nil(err)
	s.Equal(common.Hex2Bytes("a614f803b6fd780986a42c78ec9c7f77e6ded13c"), body[:])
}

func (s *TronTestSuite) Test_EncodeTron_KnownAddress() {
	var body [20]byte
	copy(body[:], common.Hex2Bytes("a614f803b6fd780986a42c78ec9c7f77e6ded13c"))

	s.Equal(tronUSDT, address.EncodeTron(body))
}

func (s *TronTestSuite) Test_RoundTrip() {
	var body [20]byte
	for i := range body {
		body[i] = byte(i * 7)
	}

	decoded, err := address.DecodeTron(address.EncodeTron(body))
	s.Nil(err)
	s.Equal(body, decoded)
}

func (s *TronTestSuite) Test_DecodeTron_InvalidBase58() {
	_, err := address.DecodeTron("T0OIl")
	s.NotNil(err)
}

func (s *TronTestSuite) Test_DecodeTron_WrongLength() {
	_, err := address.DecodeTron(base58.Encode([]byte{0x41, 1, 2, 3}))
	s.NotNil(err)
}

func (s *TronTestSuite) Test_DecodeTron_WrongVersionByte() {
	payload := make([]byte, 0, 25)
	payload = append(payload, 0x42)
	payload = append(payload, make([]byte, 20)...)

	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	payload = append(payload, second[:4]...)

	_, err := address.DecodeTron(base58.Encode(payload))
	s.NotNil(err)
}

func (s *TronTestSuite) Test_DecodeTron_InvalidChecksum() {
	corrupted := tronUSDT[:len(tronUSDT)-1] + "u"

	_, err := address.DecodeTron(corrupted)
	s.NotNil(err)
}
