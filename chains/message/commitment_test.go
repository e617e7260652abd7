package message_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/suite"
	coreMessage "github.com/sygmaprotocol/sygma-core/relayer/message"
	"go.uber.org/mock/gomock"

	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/chains/evm/calls/events"
	"github.com/veilpay/veilpay-signing/chains/message"
	mock_message "github.com/veilpay/veilpay-signing/chains/message/mock"
	"github.com/veilpay/veilpay-signing/commitment"
	"github.com/veilpay/veilpay-signing/config"
	"github.com/veilpay/veilpay-signing/protocol/checkbook"
	"github.com/veilpay/veilpay-signing/signdata"
	mock_signer "github.com/veilpay/veilpay-signing/signer/mock"
)

const (
	ownerAddress     = "0x8731d54E9D02c286767d56ac03e8037C07e01e98"
	tokenAddress     = "0xdAC17F958D2ee523a2206206994597C13D831ec7"
	tronOwnerAddress = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
)

type CommitmentMessageHandlerTestSuite struct {
	suite.Suite

	mockDepositFetcher *mock_message.MockDepositFetcher
	mockWatcher        *mock_message.MockConfirmationWatcher
	mockSubmitter      *mock_message.MockCommitmentSubmitter
	mockSigner         *mock_signer.MockSigner

	registry *address.Registry
	deposit  *events.Deposit

	sigChn chan any

	handler *message.CommitmentMessageHandler
}

func TestRunCommitmentMessageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CommitmentMessageHandlerTestSuite))
}

func (s *CommitmentMessageHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.registry = address.NewRegistry()
	formatter := signdata.NewFormatter(s.registry)

	tokens := make(map[uint64]map[string]config.TokenConfig)
	tokens[714] = make(map[string]config.TokenConfig)
	tokens[714]["USDT"] = config.TokenConfig{
		Address:  common.HexToAddress(tokenAddress),
		Decimals: 18,
		ID:       3,
	}
	tokens[195] = make(map[string]config.TokenConfig)
	tokens[195]["USDT"] = config.TokenConfig{
		Address:  common.HexToAddress("0xa614f803B6FD780986A42c78Ec9c7f77e6DeD13C"),
		Decimals: 6,
		ID:       3,
	}
	tokenStore := config.TokenStore{
		Tokens: tokens,
	}

	s.deposit = &events.Deposit{
		DepositID:   commitment.DepositIDFromNumber(1),
		Owner:       common.HexToAddress(ownerAddress),
		Token:       common.HexToAddress(tokenAddress),
		Amount:      new(big.Int).Mul(big.NewInt(10), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)),
		TxHash:      common.HexToHash("0x01"),
		BlockNumber: 100,
	}

	s.mockDepositFetcher = mock_message.NewMockDepositFetcher(ctrl)
	s.mockWatcher = mock_message.NewMockConfirmationWatcher(ctrl)
	s.mockSubmitter = mock_message.NewMockCommitmentSubmitter(ctrl)
	s.mockSigner = mock_signer.NewMockSigner(ctrl)

	s.sigChn = make(chan any, 1)

	s.handler = message.NewCommitmentMessageHandler(
		714,
		s.registry,
		formatter,
		tokenStore,
		s.mockDepositFetcher,
		s.mockWatcher,
		s.mockSubmitter,
		s.mockSigner,
		s.sigChn,
	)
}

func (s *CommitmentMessageHandlerTestSuite) commitmentData() *message.CommitmentData {
	return &message.CommitmentData{
		ErrChn:    make(chan error, 1),
		SigID:     "sig-1",
		DepositID: commitment.DepositIDFromNumber(1),
		Allocations: []signdata.AllocationWithSeq{
			{Seq: 0, Amount: "5000000000000000000"},
			{Seq: 1, Amount: "5000000000000000000"},
		},
		TokenSymbol: "USDT",
		Owner:       ownerAddress,
		Lang:        "en",
		Source:      714,
		Destination: 714,
	}
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_InvalidOwner() {
	cd := s.commitmentData()
	cd.Owner = "not-an-address"

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.NotNil(err)

	err = <-cd.ErrChn
	s.NotNil(err)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_UnknownToken() {
	cd := s.commitmentData()
	cd.TokenSymbol = "DAI"

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.NotNil(err)

	err = <-cd.ErrChn
	s.NotNil(err)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_DepositFetchingFails() {
	cd := s.commitmentData()

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(nil, fmt.Errorf("error"))

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.NotNil(err)

	err = <-cd.ErrChn
	s.NotNil(err)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_DepositTokenMismatch() {
	cd := s.commitmentData()
	s.deposit.Token = common.HexToAddress("0x02")

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(s.deposit, nil)

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.NotNil(err)

	err = <-cd.ErrChn
	s.NotNil(err)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_DepositOwnerMismatch() {
	cd := s.commitmentData()
	s.deposit.Owner = common.HexToAddress("0x03")

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(s.deposit, nil)

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.NotNil(err)

	err = <-cd.ErrChn
	s.NotNil(err)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_AllocationTotalMismatch() {
	cd := s.commitmentData()
	cd.Allocations[1].Amount = "4000000000000000000"

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(s.deposit, nil)

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.NotNil(err)

	err = <-cd.ErrChn
	s.NotNil(err)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_ConfirmationsFail() {
	cd := s.commitmentData()

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(s.deposit, nil)
	s.mockWatcher.EXPECT().WaitForConfirmations(
		gomock.Any(), s.deposit.TxHash, "USDT", s.deposit.Amount,
	).Return(fmt.Errorf("error"))

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.NotNil(err)

	err = <-cd.ErrChn
	s.NotNil(err)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_SigningFails() {
	cd := s.commitmentData()

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(s.deposit, nil)
	s.mockWatcher.EXPECT().WaitForConfirmations(
		gomock.Any(), s.deposit.TxHash, "USDT", s.deposit.Amount,
	).Return(nil)
	s.mockSigner.EXPECT().SignMessage(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("error"))

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.NotNil(err)

	err = <-cd.ErrChn
	s.Nil(err)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_ValidCommitment() {
	cd := s.commitmentData()

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(s.deposit, nil)
	s.mockWatcher.EXPECT().WaitForConfirmations(
		gomock.Any(), s.deposit.TxHash, "USDT", s.deposit.Amount,
	).Return(nil)
	s.mockSigner.EXPECT().SignMessage(gomock.Any(), gomock.Any()).Return([]byte("signature"), nil)
	s.mockSigner.EXPECT().Address().Return(ownerAddress, nil)

	var submission *checkbook.CommitmentSubmission
	s.mockSubmitter.EXPECT().SubmitCommitment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, sub *checkbook.CommitmentSubmission) error {
			submission = sub
			return nil
		})

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.Nil(err)

	err = <-cd.ErrChn
	s.Nil(err)

	result := (<-s.sigChn).(*message.SigningResult)
	s.Equal("sig-1", result.ID)
	s.Equal(message.CommitmentResult, result.Type)
	s.Equal([]byte("signature"), []byte(result.Signature))
	s.Equal(ownerAddress, result.SignerAddress)
	s.NotEmpty(result.Message)

	owner, err := address.New(s.registry, 714, ownerAddress)
	s.Nil(err)

	five, _ := new(big.Int).SetString("5000000000000000000", 10)
	expectedCommitment := commitment.Commitment(
		cd.DepositID,
		714,
		"USDT",
		owner,
		[]commitment.Allocation{
			{Seq: 0, Amount: five},
			{Seq: 1, Amount: five},
		},
	)
	s.Equal(expectedCommitment, *result.Commitment)

	s.Equal("1", submission.DepositID)
	s.Equal(signdata.LangEnglish, submission.Lang)
	s.Equal("USDT", submission.TokenSymbol)
	s.Equal(uint8(18), submission.TokenDecimals)
	s.Equal(ownerAddress, submission.OwnerAddress.Data)
	s.Equal(uint32(714), submission.OwnerAddress.ChainID)
	s.Equal(hexutil.Encode([]byte("signature")), submission.Signature.SignatureData)
	s.Equal(expectedCommitment.Hex(), submission.Commitment)
	s.Len(submission.Allocations, 2)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_TronOwner() {
	cd := s.commitmentData()
	cd.Owner = tronOwnerAddress
	cd.Destination = 195
	s.deposit.Owner = common.HexToAddress("0xa614f803B6FD780986A42c78Ec9c7f77e6DeD13C")

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(s.deposit, nil)
	s.mockWatcher.EXPECT().WaitForConfirmations(
		gomock.Any(), s.deposit.TxHash, "USDT", s.deposit.Amount,
	).Return(nil)
	s.mockSigner.EXPECT().SignMessage(gomock.Any(), gomock.Any()).Return([]byte("signature"), nil)
	s.mockSigner.EXPECT().Address().Return(tronOwnerAddress, nil)

	var submission *checkbook.CommitmentSubmission
	s.mockSubmitter.EXPECT().SubmitCommitment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, sub *checkbook.CommitmentSubmission) error {
			submission = sub
			return nil
		})

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 195,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.Nil(err)

	err = <-cd.ErrChn
	s.Nil(err)

	result := (<-s.sigChn).(*message.SigningResult)
	s.Contains(result.Message, "TRON (195)")
	s.Contains(result.Message, tronOwnerAddress)

	s.Equal(uint32(195), submission.OwnerAddress.ChainID)
	s.Equal(tronOwnerAddress, submission.OwnerAddress.Data)
	s.Equal(uint8(18), submission.TokenDecimals)
}

func (s *CommitmentMessageHandlerTestSuite) Test_HandleMessage_SubmissionFailureStillDelivers() {
	cd := s.commitmentData()

	s.mockDepositFetcher.EXPECT().Deposit(gomock.Any(), cd.DepositID).Return(s.deposit, nil)
	s.mockWatcher.EXPECT().WaitForConfirmations(
		gomock.Any(), s.deposit.TxHash, "USDT", s.deposit.Amount,
	).Return(nil)
	s.mockSigner.EXPECT().SignMessage(gomock.Any(), gomock.Any()).Return([]byte("signature"), nil)
	s.mockSigner.EXPECT().Address().Return(ownerAddress, nil)
	s.mockSubmitter.EXPECT().SubmitCommitment(gomock.Any(), gomock.Any()).Return(fmt.Errorf("error"))

	m := &coreMessage.Message{
		Data:        cd,
		Source:      714,
		Destination: 714,
	}

	prop, err := s.handler.HandleMessage(m)

	s.Nil(prop)
	s.Nil(err)

	err = <-cd.ErrChn
	s.Nil(err)

	result := (<-s.sigChn).(*message.SigningResult)
	s.Equal("sig-1", result.ID)
}
