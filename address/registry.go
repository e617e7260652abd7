package address

import (
	"fmt"
	"slices"

	"github.com/veilpay/veilpay-signing/errs"
)

type Family string

const (
	FamilyEVM  Family = "evm"
	FamilyTron Family = "tron"
)

// Chain describes one supported network keyed by its SLIP-44 coin type.
type Chain struct {
	Name       string
	Family     Family
	EVMChainID uint32 // 0 for chains without an EVM chain id
}

// Registry holds the chain id mapping tables. Well-known networks are
// preconfigured, deployments may register more at startup.
type Registry struct {
	chains map[uint32]Chain
}

func NewRegistry() *Registry {
	return &Registry{
		chains: map[uint32]Chain{
			60:  {Name: "Ethereum", Family: FamilyEVM, EVMChainID: 1},
			714: {Name: "Binance Smart Chain", Family: FamilyEVM, EVMChainID: 56},
			966: {Name: "Polygon", Family: FamilyEVM, EVMChainID: 137},
			195: {Name: "TRON", Family: FamilyTron},
		},
	}
}

func (r *Registry) Register(chainID uint32, chain Chain) {
	r.chains[chainID] = chain
}

func (r *Registry) Chain(chainID uint32) (Chain, bool) {
	c, ok := r.chains[chainID]
	return c, ok
}

// Name returns the human readable chain name. Unknown ids render as a
// neutral Chain-<id> label.
func (r *Registry) Name(chainID uint32) string {
	c, ok := r.chains[chainID]
	if !ok {
		return fmt.Sprintf("Chain-%d", chainID)
	}

	return c.Name
}

func (r *Registry) Family(chainID uint32) (Family, error) {
	c, ok := r.chains[chainID]
	if !ok {
		return "", errs.NewValidationError("chainId", "chain %d not registered", chainID)
	}

	return c.Family, nil
}

func (r *Registry) EVMChainID(chainID uint32) (uint32, error) {
	c, ok := r.chains[chainID]
	if !ok || c.Family != FamilyEVM {
		return 0, errs.NewValidationError("chainId", "chain %d has no EVM chain id", chainID)
	}

	return c.EVMChainID, nil
}

func (r *Registry) FromEVM(evmChainID uint32) (uint32, error) {
	for id, c := range r.chains {
		if c.Family == FamilyEVM && c.EVMChainID == evmChainID {
			return id, nil
		}
	}

	return 0, errs.NewValidationError("chainId", "EVM chain %d not registered", evmChainID)
}

func (r *Registry) ChainIDs() []uint32 {
	ids := make([]uint32, 0, len(r.chains))
	for id := range r.chains {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
