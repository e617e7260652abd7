package amount_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/veilpay/veilpay-signing/amount"
)

type AmountTestSuite struct {
	suite.Suite
}

func TestRunAmountTestSuite(t *testing.T) {
	suite.Run(t, new(AmountTestSuite))
}

func (s *AmountTestSuite) Test_ParseDecimal_ValidAmount() {
	v, err := amount.ParseDecimal("5000000000000000000")
	s.Nil(err)
	s.Equal("5000000000000000000", v.String())

	v, err = amount.ParseDecimal("0")
	s.Nil(err)
	s.Equal(int64(0), v.Int64())
}

func (s *AmountTestSuite) Test_ParseDecimal_MaxValue() {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	v, err := amount.ParseDecimal(max.String())
	s.Nil(err)
	s.Equal(max, v)

	over := new(big.Int).Add(max, big.NewInt(1))
	_, err = amount.ParseDecimal(over.String())
	s.NotNil(err)
}

func (s *AmountTestSuite) Test_ParseDecimal_InvalidAmount() {
	for _, input := range []string{"", "-5", "+5", " 5", "5 ", "0x10", "12a", "1.5", "1_000"} {
		_, err := amount.ParseDecimal(input)
		s.NotNil(err, input)
	}
}

func (s *AmountTestSuite) Test_ToFixed32() {
	encoded := amount.ToFixed32(big.NewInt(1))

	var expected [32]byte
	expected[31] = 1
	s.Equal(expected, encoded)
}

func (s *AmountTestSuite) Test_ToFixed32_PanicsOnInvalidValues() {
	s.Panics(func() {
		amount.ToFixed32(big.NewInt(-1))
	})
	s.Panics(func() {
		amount.ToFixed32(new(big.Int).Lsh(big.NewInt(1), 256))
	})
}

func (s *AmountTestSuite) Test_FormatScaled() {
	ten, _ := new(big.Int).SetString("10000000000000000000", 10)
	tenAndHalf, _ := new(big.Int).SetString("10500000000000000000", 10)
	five, _ := new(big.Int).SetString("5000000000000000000", 10)

	s.Equal("10", amount.FormatScaled(ten, 18))
	s.Equal("10.5", amount.FormatScaled(tenAndHalf, 18))
	s.Equal("5", amount.FormatScaled(five, 18))
	s.Equal("0", amount.FormatScaled(big.NewInt(0), 18))
	s.Equal("0.000000000000000001", amount.FormatScaled(big.NewInt(1), 18))
	s.Equal("123", amount.FormatScaled(big.NewInt(123), 0))
	s.Equal("12.3", amount.FormatScaled(big.NewInt(1230), 2))
}
