package message

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/relayer/proposal"

	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/amount"
	"github.com/veilpay/veilpay-signing/chains/evm/calls/events"
	"github.com/veilpay/veilpay-signing/commitment"
	"github.com/veilpay/veilpay-signing/config"
	"github.com/veilpay/veilpay-signing/protocol/checkbook"
	"github.com/veilpay/veilpay-signing/signdata"
	"github.com/veilpay/veilpay-signing/signer"
)

type DepositFetcher interface {
	Deposit(ctx context.Context, depositID commitment.DepositID) (*events.Deposit, error)
}

type ConfirmationWatcher interface {
	WaitForConfirmations(ctx context.Context, txHash common.Hash, symbol string, amount *big.Int) error
}

type CommitmentSubmitter interface {
	SubmitCommitment(ctx context.Context, submission *checkbook.CommitmentSubmission) error
}

type CommitmentMessageHandler struct {
	// vaultChainID is the chain holding the vault the deposits were made
	// on. Chains without a vault verify deposits against another chain.
	vaultChainID        uint64
	registry            *address.Registry
	formatter           *signdata.Formatter
	tokenStore          config.TokenStore
	depositFetcher      DepositFetcher
	confirmationWatcher ConfirmationWatcher
	submitter           CommitmentSubmitter
	signer              signer.Signer

	sigChn chan any
}

func NewCommitmentMessageHandler(
	vaultChainID uint64,
	registry *address.Registry,
	formatter *signdata.Formatter,
	tokenStore config.TokenStore,
	depositFetcher DepositFetcher,
	confirmationWatcher ConfirmationWatcher,
	submitter CommitmentSubmitter,
	signer signer.Signer,
	sigChn chan any,
) *CommitmentMessageHandler {
	return &CommitmentMessageHandler{
		vaultChainID:        vaultChainID,
		registry:            registry,
		formatter:           formatter,
		tokenStore:          tokenStore,
		depositFetcher:      depositFetcher,
		confirmationWatcher: confirmationWatcher,
		submitter:           submitter,
		signer:              signer,
		sigChn:              sigChn,
	}
}

// HandleMessage verifies the vault deposit behind the commitment request
// and signs the localized authorization message if the request matches it.
// The result is delivered to the signature cache through the signature
// channel.
func (h *CommitmentMessageHandler) HandleMessage(m *message.Message) (*proposal.Proposal, error) {
	data := m.Data.(*CommitmentData)

	owner, err := address.New(h.registry, uint32(data.Destination), data.Owner)
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	token, err := h.tokenStore.ConfigBySymbol(data.Destination, data.TokenSymbol)
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	sd, err := h.formatter.PrepareCommitment(signdata.CommitmentInput{
		Allocations: data.Allocations,
		DepositID:   data.DepositID,
		TokenID:     token.ID,
		TokenSymbol: data.TokenSymbol,
		ChainID:     uint32(data.Destination),
		Owner:       owner,
		Lang:        data.Lang,
	})
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	d, err := h.depositFetcher.Deposit(context.Background(), data.DepositID)
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	// the deposit was made on the vault chain so its token config, not
	// the destination one, has to match the on-chain event
	vaultToken, err := h.tokenStore.ConfigBySymbol(h.vaultChainID, data.TokenSymbol)
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	err = h.verifyDeposit(d, owner, vaultToken, sd.Amounts)
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	err = h.confirmationWatcher.WaitForConfirmations(
		context.Background(),
		d.TxHash,
		data.TokenSymbol,
		d.Amount)
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}
	data.ErrChn <- nil

	c, err := sd.Commitment()
	if err != nil {
		return nil, err
	}

	sig, err := h.signer.SignMessage(context.Background(), []byte(sd.Message))
	if err != nil {
		return nil, err
	}

	signerAddress, err := h.signer.Address()
	if err != nil {
		return nil, err
	}

	err = h.submitter.SubmitCommitment(context.Background(), &checkbook.CommitmentSubmission{
		DepositID:    strconv.FormatUint(data.DepositID.Number(), 10),
		Allocations:  sd.Allocations,
		OwnerAddress: checkbook.UniversalAddress{ChainID: owner.ChainID, Data: owner.Address},
		Signature: checkbook.Signature{
			ChainID:       uint32(data.Destination),
			SignatureData: hexutil.Encode(sig),
		},
		TokenSymbol:   data.TokenSymbol,
		TokenDecimals: vaultToken.Decimals,
		Lang:          signdata.MatchLanguage(data.Lang),
		Commitment:    c.Hex(),
	})
	if err != nil {
		log.Warn().Msgf("Failed to submit commitment %s because of %s", c.Hex(), err)
	}

	h.sigChn <- &SigningResult{
		ID:            data.SigID,
		Type:          CommitmentResult,
		Message:       sd.Message,
		MessageHash:   sd.MessageHash,
		Signature:     sig,
		SignerAddress: signerAddress,
		Commitment:    &c,
	}
	return nil, nil
}

// verifyDeposit checks that the on-chain deposit matches the requested
// commitment. The allocation total has to cover the deposited amount
// exactly so no value is left unbound.
func (h *CommitmentMessageHandler) verifyDeposit(
	d *events.Deposit,
	owner address.UniversalAddress,
	token config.TokenConfig,
	amounts []string,
) error {
	if d.Token != token.Address {
		return fmt.Errorf("deposit token %s does not match %s", d.Token.Hex(), token.Address.Hex())
	}

	if common.BytesToAddress(owner.Data[:]) != d.Owner {
		return fmt.Errorf("deposit owner %s does not match request owner", d.Owner.Hex())
	}

	total := new(big.Int)
	for _, a := range amounts {
		v, err := amount.ParseDecimal(a)
		if err != nil {
			return err
		}

		total.Add(total, v)
	}

	if total.Cmp(d.Amount) != 0 {
		return fmt.Errorf("allocation total %s does not match deposit amount %s", total, d.Amount)
	}

	return nil
}
