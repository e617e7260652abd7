// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/veilpay/veilpay-signing/config"
	"github.com/veilpay/veilpay-signing/config/chain"
	"github.com/veilpay/veilpay-signing/signer"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	Vault        string
	SignerConfig config.RawSignerConfig

	Tokens map[string]config.TokenConfig
	// usd bucket -> confirmations
	ConfirmationsByValue map[uint64]uint64

	StartBlock         *big.Int
	BlockInterval      *big.Int
	BlockRetryInterval time.Duration
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Vault                    string `mapstructure:"vault"`

	Signer        config.RawSignerConfig           `mapstructure:"signer"`
	Tokens        map[string]config.RawTokenConfig `mapstructure:"tokens"`
	Confirmations map[string]uint64                `mapstructure:"confirmations"`

	StartBlock         int64  `mapstructure:"startBlock"`
	BlockInterval      int64  `mapstructure:"blockInterval" default:"5"`
	BlockRetryInterval uint64 `mapstructure:"blockRetryInterval" default:"5"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.Vault == "" {
		return fmt.Errorf("required field chain.Vault empty for chain %v", *c.Id)
	}
	if err := c.Signer.Validate(); err != nil {
		return err
	}
	for bucket, confirmations := range c.Confirmations {
		if confirmations == 0 {
			return fmt.Errorf("confirmations for bucket %s have to be higher than zero", bucket)
		}
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
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

		tokens[symbol] = config.TokenConfig{
			Address:  common.HexToAddress(t.Address),
			Decimals: t.Decimals,
			ID:       t.Id,
		}
	}

	confirmations := make(map[uint64]uint64)
	for bucket, blocks := range c.Confirmations {
		maxAmountUSD, err := strconv.ParseUint(bucket, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid confirmation bucket %s: %w", bucket, err)
		}
		confirmations[maxAmountUSD] = blocks
	}

	c.ParseFlags()
	config := &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Vault:              c.Vault,
		SignerConfig:       c.Signer,

		StartBlock:    big.NewInt(c.StartBlock),
		BlockInterval: big.NewInt(c.BlockInterval),
		// nolint:gosec
		BlockRetryInterval: time.Duration(c.BlockRetryInterval) * time.Second,

		ConfirmationsByValue: confirmations,
		Tokens:               tokens,
	}

	return config, nil
}

// Signer constructs the message signer this chain is configured with.
func (c *EVMConfig) Signer() (signer.Signer, error) {
	if c.SignerConfig.Type == config.RemoteSignerType {
		return signer.NewRemoteSigner(c.SignerConfig.URL, c.SignerConfig.KeyID), nil
	}
	return signer.NewEVMSignerFromHex(c.SignerConfig.Key)
}
