package tron

import (
	"context"

	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/relayer/proposal"
)

type MessageHandler interface {
	HandleMessage(m *message.Message) (*proposal.Proposal, error)
}

// TronChain serves signing requests for TRON owners. The vault lives on
// the EVM chains so there is nothing to poll here, deposits referenced
// by requests are verified against the vault chain.
type TronChain struct {
	messageHandler MessageHandler
	domainID       uint64
}

func NewTronChain(messageHandler MessageHandler, domainID uint64) *TronChain {
	return &TronChain{
		messageHandler: messageHandler,
		domainID:       domainID,
	}
}

func (c *TronChain) PollEvents(_ context.Context) {}

func (c *TronChain) ReceiveMessage(m *message.Message) (*proposal.Proposal, error) {
	return c.messageHandler.HandleMessage(m)
}

func (c *TronChain) Write(_ []*proposal.Proposal) error {
	return nil
}

func (c *TronChain) DomainID() uint64 {
	return c.domainID
}
