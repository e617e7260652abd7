// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	coreEvm "github.com/sygmaprotocol/sygma-core/chains/evm"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	coreListener "github.com/sygmaprotocol/sygma-core/chains/evm/listener"
	"github.com/sygmaprotocol/sygma-core/observability"
	"github.com/sygmaprotocol/sygma-core/relayer"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/store"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"

	"github.com/veilpay/veilpay-signing/address"
	"github.com/veilpay/veilpay-signing/api"
	"github.com/veilpay/veilpay-signing/api/handlers"
	"github.com/veilpay/veilpay-signing/cache"
	"github.com/veilpay/veilpay-signing/chains/evm"
	"github.com/veilpay/veilpay-signing/chains/evm/calls/contracts"
	"github.com/veilpay/veilpay-signing/chains/evm/calls/events"
	evmListener "github.com/veilpay/veilpay-signing/chains/evm/listener"
	chainsMessage "github.com/veilpay/veilpay-signing/chains/message"
	"github.com/veilpay/veilpay-signing/chains/tron"
	"github.com/veilpay/veilpay-signing/config"
	"github.com/veilpay/veilpay-signing/health"
	"github.com/veilpay/veilpay-signing/jobs"
	"github.com/veilpay/veilpay-signing/metrics"
	"github.com/veilpay/veilpay-signing/price"
	"github.com/veilpay/veilpay-signing/protocol/checkbook"
	"github.com/veilpay/veilpay-signing/signdata"
)

var Version string

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString(config.ConfigURLFlagName)

	var configuration *config.Config
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logWriter := io.Writer(os.Stdout)
	if configuration.RelayerConfig.LogFile != "" {
		logFile, err := os.OpenFile(configuration.RelayerConfig.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		panicOnError(err)
		defer logFile.Close()

		logWriter = io.MultiWriter(os.Stdout, logFile)
	}
	observability.ConfigureLogger(configuration.RelayerConfig.LogLevel, logWriter)

	log.Info().Msg("Successfully loaded configuration")

	go health.StartHealthEndpoint(configuration.RelayerConfig.HealthPort)

	db, err := lvldb.NewLvlDB(viper.GetString(config.BlockstoreFlagName))
	panicOnError(err)
	blockstore := store.NewBlockStore(db)

	mp, err := observability.InitMetricProvider(context.Background(), configuration.RelayerConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signingMetrics, err := metrics.NewSigningMetrics(ctx, mp.Meter("signing-metric-provider"), configuration.RelayerConfig.Env, configuration.RelayerConfig.Id, Version)
	if err != nil {
		panic(err)
	}
	msgChan := make(chan []*message.Message)
	sigChn := make(chan interface{})

	priceAPI := price.NewCoinmarketcapAPI(
		configuration.RelayerConfig.CoinmarketcapConfig.Url,
		configuration.RelayerConfig.CoinmarketcapConfig.ApiKey)

	registry := address.NewRegistry()
	formatter := signdata.NewFormatter(registry)

	signatureCache := cache.NewSignatureCache()
	go signatureCache.Watch(ctx, sigChn)

	checkbookAPI := checkbook.NewCheckbookAPI(configuration.RelayerConfig.CheckbookConfig.Url)
	resourceCache := cache.NewResourceCache(checkbookAPI)
	if configuration.RelayerConfig.CheckbookConfig.WsUrl != "" {
		updateChn := make(chan *signdata.Allocation)
		subscription := checkbook.NewAllocationSubscription(
			log.With(),
			configuration.RelayerConfig.CheckbookConfig.WsUrl,
			checkbookAPI)
		go subscription.Subscribe(ctx, updateChn)
		go resourceCache.WatchUpdates(ctx, updateChn)
	}
	go jobs.StartAllocationSyncJob(
		ctx,
		configuration.RelayerConfig.CheckbookConfig.SyncInterval,
		checkbookAPI,
		resourceCache)

	supportedChains := make(map[uint64]struct{})
	confirmationsPerChain := make(map[uint64]map[uint64]uint64)
	domains := make(map[uint64]relayer.RelayedChain)

	tokenStore := config.TokenStore{
		Tokens: make(map[uint64]map[string]config.TokenConfig),
	}
	depositCaches := make(map[uint64]*cache.DepositCache)
	watchers := make(map[uint64]*chainsMessage.Watcher)

	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				config, err := evm.NewEVMConfig(chainConfig)
				panicOnError(err)

				chainID := *config.GeneralChainConfig.Id

				client, err := evmClient.NewEVMClient(config.GeneralChainConfig.Endpoint, nil)
				panicOnError(err)

				log.Info().Uint64("chain", chainID).Msgf("Registering EVM domain")

				l := log.With().Str("chain", fmt.Sprintf("%v", config.GeneralChainConfig.Name)).Uint64("domainID", chainID)

				chainSigner, err := config.Signer()
				panicOnError(err)

				vaultAddress := common.HexToAddress(config.Vault)
				eventListener := events.NewListener(client)
				vault := contracts.NewVaultContract(client, vaultAddress, eventListener)
				depositCache := cache.NewDepositCache(vault)

				watcher := chainsMessage.NewWatcher(
					client,
					priceAPI,
					config.Tokens,
					config.ConfirmationsByValue,
					// nolint:gosec
					time.Duration(config.GeneralChainConfig.Blocktime)*time.Second)

				tokenStore.Tokens[chainID] = config.Tokens
				depositCaches[chainID] = depositCache
				watchers[chainID] = watcher

				mh := message.NewMessageHandler()
				mh.RegisterMessageHandler(chainsMessage.CommitmentMessage, chainsMessage.NewCommitmentMessageHandler(
					chainID,
					registry,
					formatter,
					tokenStore,
					depositCache,
					watcher,
					checkbookAPI,
					chainSigner,
					sigChn))
				mh.RegisterMessageHandler(chainsMessage.WithdrawalMessage, chainsMessage.NewWithdrawalMessageHandler(
					chainID,
					formatter,
					tokenStore,
					resourceCache,
					chainSigner,
					sigChn))

				eventHandlers := make([]coreListener.EventHandler, 0)
				eventHandlers = append(eventHandlers, evmListener.NewDepositEventHandler(l, eventListener, depositCache, vaultAddress))
				listener := coreListener.NewEVMListener(client, eventHandlers, blockstore, signingMetrics, chainID, config.BlockRetryInterval, new(big.Int).SetUint64(config.GeneralChainConfig.BlockConfirmations), config.BlockInterval)

				startBlock := config.StartBlock
				if config.GeneralChainConfig.LatestBlock || startBlock.Sign() == 0 {
					head, err := client.LatestBlock()
					panicOnError(err)

					startBlock = head
				}

				chain := coreEvm.NewEVMChain(listener, mh, nil, chainID, startBlock)
				domains[chainID] = chain
				supportedChains[chainID] = struct{}{}
				confirmationsPerChain[chainID] = config.ConfirmationsByValue
			}
		case "tron":
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	// TRON owners deposit on an EVM vault chain so their domains are wired
	// after every vault chain is registered
	for _, chainConfig := range configuration.ChainConfigs {
		if chainConfig["type"] != "tron" {
			continue
		}

		config, err := tron.NewTronConfig(chainConfig)
		panicOnError(err)

		chainID := *config.Id

		log.Info().Uint64("chain", chainID).Msgf("Registering TRON domain")

		chainSigner, err := config.Signer()
		panicOnError(err)

		tokenStore.Tokens[chainID] = config.Tokens

		mh := message.NewMessageHandler()
		mh.RegisterMessageHandler(chainsMessage.WithdrawalMessage, chainsMessage.NewWithdrawalMessageHandler(
			chainID,
			formatter,
			tokenStore,
			resourceCache,
			chainSigner,
			sigChn))
		if config.VaultChain != nil {
			depositCache, ok := depositCaches[*config.VaultChain]
			if !ok {
				panic(fmt.Errorf("vault chain '%d' of chain %d not registered", *config.VaultChain, chainID))
			}

			mh.RegisterMessageHandler(chainsMessage.CommitmentMessage, chainsMessage.NewCommitmentMessageHandler(
				*config.VaultChain,
				registry,
				formatter,
				tokenStore,
				depositCache,
				watchers[*config.VaultChain],
				checkbookAPI,
				chainSigner,
				sigChn))
			confirmationsPerChain[chainID] = confirmationsPerChain[*config.VaultChain]
		}

		domains[chainID] = tron.NewTronChain(mh, chainID)
		supportedChains[chainID] = struct{}{}
	}

	r := relayer.NewRelayer(domains, signingMetrics)
	go r.Start(ctx, msgChan)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	relayerName := viper.GetString("name")
	log.Info().Msgf("Started relayer: %s. Version: v%s", relayerName, Version)

	chainsHandler := handlers.NewChainsHandler(registry, supportedChains)
	signingHandler := handlers.NewSigningHandler(msgChan, registry, supportedChains)
	statusHandler := handlers.NewStatusHandler(signatureCache, supportedChains)
	confirmationsHandler := handlers.NewConfirmationsHandler(confirmationsPerChain)
	go api.Serve(ctx, configuration.RelayerConfig.ApiAddr, chainsHandler, signingHandler, statusHandler, confirmationsHandler)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
