package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/klever-io/evm-wallet-checker/api/shared"
	"github.com/klever-io/evm-wallet-checker/config"
	"github.com/klever-io/evm-wallet-checker/confirmation"
	"github.com/klever-io/evm-wallet-checker/facade"
	gas "github.com/klever-io/evm-wallet-checker/gasStation"
	"github.com/klever-io/evm-wallet-checker/interactors/nonceHandler"
	"github.com/klever-io/evm-wallet-checker/metrics"
	"github.com/klever-io/evm-wallet-checker/provider"
	"github.com/klever-io/evm-wallet-checker/storage"
	"github.com/klever-io/evm-wallet-checker/tools/wallet"
	"github.com/klever-io/evm-wallet-checker/transfer"
	"github.com/klever-io/evm-wallet-checker/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type transferHandler interface {
	facade.TransferSender
	VerifySender(ctx context.Context, hash string) (*provider.TransactionInfo, error)
}

type confirmationHandler interface {
	Execute(ctx context.Context) error
	WaitForConfirmation(ctx context.Context, hash string, pollingInterval time.Duration) (*confirmation.Confirmation, error)
	IsInterfaceNil() bool
}

type walletCheckerComponents struct {
	closeProxy     func()
	journal        storage.TxJournal
	registry       *prometheus.Registry
	transferSender transferHandler
	tracker        confirmationHandler
	facade         shared.FacadeHandler
}

func createComponents(ctx context.Context, cfg config.WalletCheckerConfig, flagsConfig config.ContextFlagsConfig) (*walletCheckerComponents, error) {
	generalCfg := cfg.GeneralConfig
	if len(generalCfg.NetworkAddress) == 0 {
		return nil, fmt.Errorf("empty NetworkAddress in config file")
	}

	apiKey := os.Getenv(generalCfg.ApiKeyEnvVariable)
	client, err := provider.Dial(ctx, provider.BuildNetworkURL(generalCfg.NetworkAddress, apiKey))
	if err != nil {
		return nil, err
	}

	argsProxy := provider.ArgsProxy{
		Client:                  client,
		CacheExpirationTime:     time.Second * time.Duration(generalCfg.ProxyCacherExpirationSeconds),
		GasPriceCacheExpiration: time.Second * time.Duration(generalCfg.GasPriceCacheSeconds),
		MaxRetries:              generalCfg.ProxyMaxRetries,
		RetryInterval:           time.Millisecond * time.Duration(generalCfg.ProxyRetryIntervalMillis),
	}
	proxy, err := provider.NewProxy(argsProxy)
	if err != nil {
		client.Close()
		return nil, err
	}

	components, err := createProcessingComponents(cfg, flagsConfig, proxy)
	if err != nil {
		proxy.Close()
		return nil, err
	}

	return components, nil
}

type networkProxy interface {
	transfer.Proxy
	nonceHandler.Proxy
	gas.GasPriceProvider
	confirmation.Proxy
	facade.Proxy
	Close()
}

func createProcessingComponents(
	cfg config.WalletCheckerConfig,
	flagsConfig config.ContextFlagsConfig,
	proxy networkProxy,
) (*walletCheckerComponents, error) {
	generalCfg := cfg.GeneralConfig

	argsGasPriceService := gas.ArgsGasPriceService{
		Provider:    proxy,
		BumpPercent: generalCfg.GasPriceBumpPercent,
		MaxGasPrice: gas.GweiToWei(generalCfg.MaxGasPriceInGwei),
	}
	gasService, err := gas.NewGasPriceService(argsGasPriceService)
	if err != nil {
		return nil, err
	}

	argsNonceHandler := nonceHandler.ArgsNonceTransactionsHandler{
		Proxy:           proxy,
		GasPriceService: gasService,
	}
	txNonceHandler, err := nonceHandler.NewNonceTransactionHandler(argsNonceHandler)
	if err != nil {
		return nil, err
	}

	checkerWallet, err := wallet.NewWalletFromEnv(generalCfg.PrivateKeyEnvVariable)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsHandler, err := metrics.NewPrometheusMetrics(registry)
	if err != nil {
		return nil, err
	}

	journal, err := storage.CreateTxJournal(generalCfg.JournalPath)
	if err != nil {
		return nil, err
	}

	transactionValidator := validator.NewTransactionValidator()
	argsTransferSender := transfer.ArgsTransferSender{
		Proxy:           proxy,
		TxNonceHandler:  txNonceHandler,
		Wallet:          checkerWallet,
		Validator:       transactionValidator,
		Journal:         journal,
		Metrics:         metricsHandler,
		DefaultGasLimit: generalCfg.DefaultGasLimit,
	}
	transferSender, err := transfer.NewTransferSender(argsTransferSender)
	if err != nil {
		_ = journal.Close()
		return nil, err
	}

	argsTracker := confirmation.ArgsConfirmationTracker{
		Proxy:         proxy,
		Journal:       journal,
		Metrics:       metricsHandler,
		Notifee:       confirmation.NewLogNotifee(),
		SignerAddress: checkerWallet.Address(),
	}
	tracker, err := confirmation.NewConfirmationTracker(argsTracker)
	if err != nil {
		_ = journal.Close()
		return nil, err
	}

	argsFacade := facade.ArgsWalletFacade{
		TransferSender:   transferSender,
		Validator:        transactionValidator,
		Proxy:            proxy,
		GasPriceService:  gasService,
		Journal:          journal,
		Metrics:          metricsHandler,
		RestApiInterface: flagsConfig.RestApiInterface,
	}
	walletFacade, err := facade.NewWalletFacade(argsFacade)
	if err != nil {
		_ = journal.Close()
		return nil, err
	}

	return &walletCheckerComponents{
		closeProxy:     proxy.Close,
		journal:        journal,
		registry:       registry,
		transferSender: transferSender,
		tracker:        tracker,
		facade:         walletFacade,
	}, nil
}

// Close releases the journal file and the network connection
func (wcc *walletCheckerComponents) Close() {
	err := wcc.journal.Close()
	log.LogIfError(err)

	wcc.closeProxy()
}

func createTransferRequest(cfg config.TransferConfig) (validator.TransactionRequest, error) {
	value, err := transfer.ParseEther(cfg.ValueInEther)
	if err != nil {
		return nil, err
	}

	request := validator.TransactionRequest{
		validator.FieldTo:    strings.TrimSpace(cfg.To),
		validator.FieldValue: value,
	}
	if len(cfg.Data) > 0 {
		request[validator.FieldData] = hexutil.Encode([]byte(cfg.Data))
	}
	if cfg.GasLimit > 0 {
		request[validator.FieldGasLimit] = cfg.GasLimit
	}

	return request, nil
}
