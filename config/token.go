package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type TokenConfig struct {
	Address  common.Address
	Decimals uint8
	ID       uint16
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address" json:"address"`
	Decimals uint8  `mapstructure:"decimals" json:"decimals" default:"18"`
	Id       uint16 `mapstructure:"id" json:"id"`
}

type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
}

func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}

func (s *TokenStore) ConfigBySymbol(chainID uint64, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[symbol]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// SymbolByID resolves the numeric token identifier used inside asset IDs
// and commitments back to the configured symbol.
func (s *TokenStore) SymbolByID(chainID uint64, id uint16) (string, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.ID == id {
			return symbol, nil
		}
	}

	return "", fmt.Errorf("no symbol for token id %d", id)
}
