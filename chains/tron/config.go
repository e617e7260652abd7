package tron

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/config"
	"github.com/veilpay/veilpay-signing/signer"
)

type TronConfig struct {
	Name string
	Id   *uint64
	// VaultChain is the EVM chain holding the vault TRON owners deposit
	// on. Commitment requests are only served when it is configured.
	VaultChain   *uint64
	SignerConfig config.RawSignerConfig
	Tokens       map[string]config.TokenConfig
}

type RawTronConfig struct {
	Name       string                           `mapstructure:"name"`
	Id         *uint64                          `mapstructure:"id"`
	VaultChain *uint64                          `mapstructure:"vaultChain"`
	Signer     config.RawSignerConfig           `mapstructure:"signer"`
	Tokens     map[string]config.RawTokenConfig `mapstructure:"tokens"`
}

func (c *RawTronConfig) Validate() error {
	if c.Id == nil {
		return fmt.Errorf("required field domain.Id empty for chain %v", c.Id)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	if err := c.Signer.Validate(); err != nil {
		return err
	}
	return nil
}

// NewTronConfig decodes and validates an instance of a TronConfig from
// raw chain config. Token addresses are expected in their Base58Check
// display form.
func NewTronConfig(chainConfig map[string]interface{}) (*TronConfig, error) {
	var c RawTronConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	ids := make(map[uint16]string)
	for symbol, t := range c.Tokens {
		if existing, ok := ids[t.Id]; ok {
			return nil, fmt.Errorf("tokens %s and %s share id %d", existing, symbol, t.Id)
		}
		ids[t.Id] = symbol

		body, err := address.DecodeTron(t.Address)
		if err != nil {
			return nil, err
		}

		tokens[symbol] = config.TokenConfig{
			Address:  common.BytesToAddress(body[:]),
			Decimals: t.Decimals,
			ID:       t.Id,
		}
	}

	return &TronConfig{
		Name:         c.Name,
		Id:           c.Id,
		VaultChain:   c.VaultChain,
		SignerConfig: c.Signer,
		Tokens:       tokens,
	}, nil
}

// Signer constructs the message signer this chain is configured with.
func (c *TronConfig) Signer() (signer.Signer, error) {
	if c.SignerConfig.Type == config.RemoteSignerType {
		return signer.NewRemoteSigner(c.SignerConfig.URL, c.SignerConfig.KeyID), nil
	}
	return signer.NewTronSignerFromHex(c.SignerConfig.Key)
}
