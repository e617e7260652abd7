package config

import (
	"fmt"
)

const (
	KeySignerType    = "key"
	RemoteSignerType = "remote"
)

// RawSignerConfig configures how a chain signs prepared messages.
// The key type signs locally with a raw private key, the remote type
// delegates to a signing service that holds the key.
type RawSignerConfig struct {
	Type  string `mapstructure:"type" json:"type" default:"key"`
	Key   string `mapstructure:"key" json:"key"`
	URL   string `mapstructure:"url" json:"url"`
	KeyID string `mapstructure:"keyId" json:"keyId"`
}

func (c RawSignerConfig) Validate() error {
	switch c.Type {
	case KeySignerType:
		if c.Key == "" {
			return fmt.Errorf("required field signer.Key empty for key signer")
		}
	case RemoteSignerType:
		if c.URL == "" {
			return fmt.Errorf("required field signer.URL empty for remote signer")
		}
	default:
		return fmt.Errorf("signer type '%s' not recognized", c.Type)
	}
	return nil
}
