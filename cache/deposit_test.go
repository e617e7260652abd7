package cache_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/veilpay/veilpay-signing/cache"
	mock_cache "github.com/veilpay/veilpay-signing/cache/mock"
	"github.com/veilpay/veilpay-signing/chains/evm/calls/events"
	"github.com/veilpay/veilpay-signing/commitment"
)

type DepositCacheTestSuite struct {
	suite.Suite

	dc         *cache.DepositCache
	mockSource *mock_cache.MockDepositSource
}

func TestRunDepositCacheTestSuite(t *testing.T) {
	suite.Run(t, new(DepositCacheTestSuite))
}

func (s *DepositCacheTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockSource = mock_cache.NewMockDepositSource(ctrl)
	s.dc = cache.NewDepositCache(s.mockSource)
}

func (s *DepositCacheTestSuite) deposit(number uint64) *events.Deposit {
	return &events.Deposit{
		DepositID:   commitment.DepositIDFromNumber(number),
		Owner:       common.HexToAddress("0x01"),
		Token:       common.HexToAddress("0x02"),
		Amount:      big.NewInt(1000),
		TxHash:      common.HexToHash("0x03"),
		BlockNumber: 100,
	}
}

func (s *DepositCacheTestSuite) Test_Deposit_StoredDeposit() {
	expected := s.deposit(1)
	s.dc.Store(expected)

	d, err := s.dc.Deposit(context.Background(), expected.DepositID)

	s.Nil(err)
	s.Equal(expected, d)
}

func (s *DepositCacheTestSuite) Test_Deposit_FetchingFails() {
	depositID := commitment.DepositIDFromNumber(2)
	s.mockSource.EXPECT().FetchDeposit(gomock.Any(), depositID).Return(nil, fmt.Errorf("error"))

	_, err := s.dc.Deposit(context.Background(), depositID)

	s.NotNil(err)
}

func (s *DepositCacheTestSuite) Test_Deposit_FetchedDepositCached() {
	expected := s.deposit(3)
	s.mockSource.EXPECT().FetchDeposit(gomock.Any(), expected.DepositID).Return(expected, nil).Times(1)

	d, err := s.dc.Deposit(context.Background(), expected.DepositID)
	s.Nil(err)
	s.Equal(expected, d)

	d, err = s.dc.Deposit(context.Background(), expected.DepositID)
	s.Nil(err)
	s.Equal(expected, d)
}
