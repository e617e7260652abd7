// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/veilpay/veilpay-signing/config"
)

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) writeConfigFile(content string) string {
	f, err := os.CreateTemp(s.T().TempDir(), "config-*.json")
	s.Nil(err)

	_, err = f.WriteString(content)
	s.Nil(err)
	s.Nil(f.Close())

	return f.Name()
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidPath() {
	_, err := config.GetConfigFromFile("invalid", nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidLogLevel() {
	path := s.writeConfigFile(`{"relayer": {"logLevel": "invalid"}}`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_MissingChainType() {
	path := s.writeConfigFile(`{"relayer": {}, "chains": [{"id": 1}]}`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_Defaults() {
	path := s.writeConfigFile(`{"relayer": {}, "chains": [{"type": "evm", "id": 1}]}`)

	c, err := config.GetConfigFromFile(path, nil)

	s.Nil(err)
	s.Equal(zerolog.InfoLevel, c.RelayerConfig.LogLevel)
	s.Equal("out.log", c.RelayerConfig.LogFile)
	s.Equal(uint16(9001), c.RelayerConfig.HealthPort)
	s.Equal(":5000", c.RelayerConfig.ApiAddr)
	s.Equal(time.Duration(300)*time.Second, c.RelayerConfig.CheckbookConfig.SyncInterval)
	s.Equal(1, len(c.ChainConfigs))
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_MergesSharedConfig() {
	path := s.writeConfigFile(`{"relayer": {"id": "relayer-2", "checkbook": {"url": "http://localhost:8080"}}}`)
	baseConfig := &config.Config{
		RelayerConfig: config.RelayerConfig{
			Env: "TEST",
		},
		ChainConfigs: []map[string]interface{}{
			{"type": "evm", "id": 1},
		},
	}

	c, err := config.GetConfigFromFile(path, baseConfig)

	s.Nil(err)
	s.Equal("relayer-2", c.RelayerConfig.Id)
	s.Equal("TEST", c.RelayerConfig.Env)
	s.Equal("http://localhost:8080", c.RelayerConfig.CheckbookConfig.Url)
	s.Equal(1, len(c.ChainConfigs))
	s.Equal("evm", c.ChainConfigs[0]["type"])
}

func (s *GetConfigTestSuite) Test_GetSharedConfigFromNetwork_ErrorStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := config.GetSharedConfigFromNetwork(server.URL)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetSharedConfigFromNetwork_ValidConfig() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"relayer": {
				"logLevel": "debug",
				"id": "relayer-1",
				"checkbook": {"url": "http://localhost:8080", "syncInterval": 60}
			},
			"chains": [{"type": "evm", "id": 1}, {"type": "tron", "id": 195}]
		}`))
	}))
	defer server.Close()

	c, err := config.GetSharedConfigFromNetwork(server.URL)

	s.Nil(err)
	s.Equal(zerolog.DebugLevel, c.RelayerConfig.LogLevel)
	s.Equal("relayer-1", c.RelayerConfig.Id)
	s.Equal(time.Duration(60)*time.Second, c.RelayerConfig.CheckbookConfig.SyncInterval)
	s.Equal(2, len(c.ChainConfigs))
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV_ValidConfig() {
	s.T().Setenv("VLP_RELAYER_LOGLEVEL", "debug")
	s.T().Setenv("VLP_RELAYER_ID", "relayer-3")
	s.T().Setenv("VLP_CHAINS", `[{"type": "evm", "id": 1}]`)

	c, err := config.GetConfigFromENV(nil)

	s.Nil(err)
	s.Equal(zerolog.DebugLevel, c.RelayerConfig.LogLevel)
	s.Equal("relayer-3", c.RelayerConfig.Id)
	s.Equal(uint16(9001), c.RelayerConfig.HealthPort)
	s.Equal(1, len(c.ChainConfigs))
}
