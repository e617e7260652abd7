// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "VLP"

type Config struct {
	RelayerConfig RelayerConfig
	ChainConfigs  []map[string]interface{}
}

type RawConfig struct {
	RelayerConfig RawRelayerConfig         `mapstructure:"relayer" json:"relayer"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

type RelayerConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	Env                       string
	Id                        string
	HealthPort                uint16
	ApiAddr                   string
	CoinmarketcapConfig       CoinmarketcapConfig
	CheckbookConfig           CheckbookConfig
}

type RawRelayerConfig struct {
	OpenTelemetryCollectorURL string                 `mapstructure:"opentelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string                 `mapstructure:"logLevel" json:"logLevel" default:"info"`
	LogFile                   string                 `mapstructure:"logFile" json:"logFile" default:"out.log"`
	Env                       string                 `mapstructure:"env" json:"env"`
	Id                        string                 `mapstructure:"id" json:"id"`
	HealthPort                uint16                 `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	ApiAddr                   string                 `mapstructure:"apiAddr" json:"apiAddr" default:":5000"`
	CoinmarketcapConfig       RawCoinmarketcapConfig `mapstructure:"coinmarketcap" json:"coinmarketcap"`
	CheckbookConfig           RawCheckbookConfig     `mapstructure:"checkbook" json:"checkbook"`
}

type CoinmarketcapConfig struct {
	Url    string
	ApiKey string
}

type RawCoinmarketcapConfig struct {
	Url    string `mapstructure:"url" json:"url"`
	ApiKey string `mapstructure:"apiKey" json:"apiKey"`
}

// CheckbookConfig holds the connection details of the checkbook
// backend that stores deposits and their allocations. An empty
// Url disables the remote allocation source.
type CheckbookConfig struct {
	Url          string
	WsUrl        string
	SyncInterval time.Duration
}

type RawCheckbookConfig struct {
	Url          string `mapstructure:"url" json:"url"`
	WsUrl        string `mapstructure:"wsUrl" json:"wsUrl"`
	SyncInterval uint64 `mapstructure:"syncInterval" json:"syncInterval" default:"300"`
}

// GetConfigFromENV reads the configuration from ENV variables prefixed
// with VLP. Chain configurations are expected as a JSON array inside
// VLP_CHAINS.
func GetConfigFromENV(baseConfig *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return baseConfig, err
	}

	return processRawConfig(rawConfig, baseConfig)
}

// GetConfigFromFile reads the configuration from the JSON file at path.
// Values from baseConfig fill in fields the file omits.
func GetConfigFromFile(path string, baseConfig *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return baseConfig, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return baseConfig, err
	}

	return processRawConfig(rawConfig, baseConfig)
}

// GetSharedConfigFromNetwork fetches the shared configuration served at
// url and parses it. Local configuration is merged over it afterwards.
func GetSharedConfigFromNetwork(url string) (*Config, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching shared configuration failed with status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	rawConfig := RawConfig{}
	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig, nil)
}

func loadFromEnv() (RawConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	rawConfig := RawConfig{
		RelayerConfig: RawRelayerConfig{
			OpenTelemetryCollectorURL: v.GetString("RELAYER_OPENTELEMETRYCOLLECTORURL"),
			LogLevel:                  v.GetString("RELAYER_LOGLEVEL"),
			LogFile:                   v.GetString("RELAYER_LOGFILE"),
			Env:                       v.GetString("RELAYER_ENV"),
			Id:                        v.GetString("RELAYER_ID"),
			// nolint:gosec
			HealthPort: uint16(v.GetUint("RELAYER_HEALTHPORT")),
			ApiAddr:    v.GetString("RELAYER_APIADDR"),
			CoinmarketcapConfig: RawCoinmarketcapConfig{
				Url:    v.GetString("RELAYER_COINMARKETCAP_URL"),
				ApiKey: v.GetString("RELAYER_COINMARKETCAP_APIKEY"),
			},
			CheckbookConfig: RawCheckbookConfig{
				Url:          v.GetString("RELAYER_CHECKBOOK_URL"),
				WsUrl:        v.GetString("RELAYER_CHECKBOOK_WSURL"),
				SyncInterval: v.GetUint64("RELAYER_CHECKBOOK_SYNCINTERVAL"),
			},
		},
	}

	chains := v.GetString("CHAINS")
	if chains != "" {
		err := json.Unmarshal([]byte(chains), &rawConfig.ChainConfigs)
		if err != nil {
			return rawConfig, fmt.Errorf("unable to parse chain configuration from ENV: %w", err)
		}
	}

	return rawConfig, nil
}

func processRawConfig(rawConfig RawConfig, baseConfig *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return baseConfig, err
	}

	relayerConfig, err := parseRelayerConfig(rawConfig.RelayerConfig)
	if err != nil {
		return baseConfig, err
	}

	for _, chain := range rawConfig.ChainConfigs {
		if chain["type"] == "" || chain["type"] == nil {
			return baseConfig, fmt.Errorf("chain 'type' must be provided for every configured chain")
		}
	}

	config := &Config{
		RelayerConfig: relayerConfig,
		ChainConfigs:  rawConfig.ChainConfigs,
	}
	if baseConfig != nil {
		err := mergo.Merge(config, *baseConfig)
		if err != nil {
			return baseConfig, err
		}
	}

	return config, nil
}

func parseRelayerConfig(rawConfig RawRelayerConfig) (RelayerConfig, error) {
	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return RelayerConfig{}, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}

	return RelayerConfig{
		OpenTelemetryCollectorURL: rawConfig.OpenTelemetryCollectorURL,
		LogLevel:                  logLevel,
		LogFile:                   rawConfig.LogFile,
		Env:                       rawConfig.Env,
		Id:                        rawConfig.Id,
		HealthPort:                rawConfig.HealthPort,
		ApiAddr:                   rawConfig.ApiAddr,
		CoinmarketcapConfig: CoinmarketcapConfig{
			Url:    rawConfig.CoinmarketcapConfig.Url,
			ApiKey: rawConfig.CoinmarketcapConfig.ApiKey,
		},
		CheckbookConfig: CheckbookConfig{
			Url:          rawConfig.CheckbookConfig.Url,
			WsUrl:        rawConfig.CheckbookConfig.WsUrl,
			SyncInterval: time.Duration(rawConfig.CheckbookConfig.SyncInterval) * time.Second,
		},
	}, nil
}
