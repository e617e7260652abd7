package commitment_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/veilpay/veilpay-signing/commitment"
)

type DepositIDTestSuite struct {
	suite.Suite
}

func TestRunDepositIDTestSuite(t *testing.T) {
	suite.Run(t, new(DepositIDTestSuite))
}

func (s *DepositIDTestSuite) Test_ParseDepositID_RoundTrip() {
	hex := "0x0000000000000001000000000000000000000000000000000000000000000000"

	id, err := commitment.ParseDepositID(hex)
	s.Nil(err)
	s.Equal(hex, id.Hex())
	s.Equal(uint64(1), id.Number())
}

func (s *DepositIDTestSuite) Test_ParseDepositID_Invalid() {
	_, err := commitment.ParseDepositID("0x01")
	s.NotNil(err)

	_, err = commitment.ParseDepositID("not-hex")
	s.NotNil(err)
}

func (s *DepositIDTestSuite) Test_FromNumber() {
	id := commitment.DepositIDFromNumber(842)
	s.Equal(uint64(842), id.Number())

	var tail [24]byte
	s.Equal(tail[:], id[8:])
}

func (s *DepositIDTestSuite) Test_JSON_RoundTrip() {
	original := commitment.DepositIDFromNumber(7)

	b, err := json.Marshal(original)
	s.Nil(err)

	var decoded commitment.DepositID
	s.Nil(json.Unmarshal(b, &decoded))
	s.Equal(original, decoded)
}
