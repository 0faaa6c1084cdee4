package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/klever-io/evm-wallet-checker/api/gin"
	"github.com/klever-io/evm-wallet-checker/config"
	"github.com/klever-io/evm-wallet-checker/tools/wallet"
	chainCore "github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	chainFactory "github.com/multiversx/mx-chain-go/cmd/node/factory"
	chainCommon "github.com/multiversx/mx-chain-go/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-logger-go/file"
	"github.com/multiversx/mx-sdk-go/core/polling"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath = "logs"
	logFilePrefix   = "evm-wallet-checker"
)

var log = logger.GetOrCreate("evm-wallet-checker/main")

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//
//	go build -i -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
//
// windows:
//
//	for /f %i in ('git describe --tags --long --dirty') do set VERS=%i
//	go build -i -v -ldflags="-X main.appVersion=%VERS%"
var appVersion = chainCommon.UnVersionedAppString

func main() {
	app := cli.NewApp()
	app.Name = "EVM wallet checker CLI app"
	app.Usage = "Wallet checker validates transaction requests against the signing wallet before they are signed" +
		" and submitted to an EVM network, and tracks the submitted transactions until they are mined"
	app.Flags = getFlags()
	machineID := chainCore.GetAnonymizedMachineID(app.Name)
	app.Version = fmt.Sprintf("%s/%s/%s-%s/%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH, machineID)
	app.Authors = []cli.Author{
		{
			Name:  "The Klever Blockchain Team",
			Email: "contact@klever.io",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "keys",
			Usage: "derives the public keys and the address of the configured private key and checks they agree",
			Action: func(c *cli.Context) error {
				return runCommand(c, app.Version, showKeys)
			},
		},
		{
			Name:  "send",
			Usage: "sends the transfer described in the config file and waits for it to be mined",
			Action: func(c *cli.Context) error {
				return runCommand(c, app.Version, sendTransfer)
			},
		},
		{
			Name:  "serve",
			Usage: "starts the REST API and the confirmation tracker",
			Action: func(c *cli.Context) error {
				return runCommand(c, app.Version, serve)
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

type commandHandler func(cfg config.WalletCheckerConfig, flagsConfig config.ContextFlagsConfig) error

func runCommand(ctx *cli.Context, version string, handler commandHandler) error {
	flagsConfig := getFlagsConfig(ctx)

	fileLogging, errLogger := attachFileLogger(log, flagsConfig)
	if errLogger != nil {
		return errLogger
	}

	log.Info("starting wallet checker", "version", version, "pid", os.Getpid(), "command", ctx.Command.Name)

	cfg, err := loadConfig(flagsConfig.ConfigurationFile)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		logsCfg := cfg.GeneralConfig.Logs
		timeLogLifeSpan := time.Second * time.Duration(logsCfg.LogFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logsCfg.LogFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
		defer func() {
			log.LogIfError(fileLogging.Close())
		}()
	}

	return handler(cfg, flagsConfig)
}

func showKeys(cfg config.WalletCheckerConfig, _ config.ContextFlagsConfig) error {
	checkerWallet, err := wallet.NewWalletFromEnv(cfg.GeneralConfig.PrivateKeyEnvVariable)
	if err != nil {
		return err
	}

	report, err := wallet.VerifyKeyConsistency(checkerWallet.PrivateKey())
	if report != nil {
		log.Info("public keys",
			"computed", report.PublicKey,
			"signing key", report.SigningKeyPublicKey,
			"compressed", report.CompressedPublicKey)
		log.Info("addresses",
			"from public key", report.Address.Hex(),
			"from private key", report.AddressFromPrivateKey.Hex())
	}

	return err
}

func sendTransfer(cfg config.WalletCheckerConfig, flagsConfig config.ContextFlagsConfig) error {
	request, err := createTransferRequest(cfg.Transfer)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*time.Duration(cfg.GeneralConfig.ConfirmationTimeoutInSeconds))
	defer cancel()

	components, err := createComponents(ctx, cfg, flagsConfig)
	if err != nil {
		return err
	}
	defer components.Close()

	hash, err := components.transferSender.SendTransfer(ctx, request)
	if err != nil {
		return err
	}

	info, err := components.transferSender.VerifySender(ctx, hash)
	if err != nil {
		return err
	}
	log.Info("transaction is sent by the signer", "from", info.From.Hex(), "signer", components.transferSender.SignerAddress().Hex())

	confirmation, err := components.tracker.WaitForConfirmation(ctx, hash, time.Second*time.Duration(cfg.GeneralConfig.PollIntervalInSeconds))
	if err != nil {
		return err
	}
	if !confirmation.Success {
		return fmt.Errorf("transaction %s reverted in block %d", hash, confirmation.BlockNumber)
	}

	return nil
}

func serve(cfg config.WalletCheckerConfig, flagsConfig config.ContextFlagsConfig) error {
	components, err := createComponents(context.Background(), cfg, flagsConfig)
	if err != nil {
		return err
	}
	defer components.Close()

	argsPollingHandler := polling.ArgsPollingHandler{
		Log:              log,
		Name:             "confirmation tracker polling handler",
		PollingInterval:  time.Second * time.Duration(cfg.GeneralConfig.PollIntervalInSeconds),
		PollingWhenError: time.Second * time.Duration(cfg.GeneralConfig.PollIntervalInSeconds),
		Executor:         components.tracker,
	}

	pollingHandler, err := polling.NewPollingHandler(argsPollingHandler)
	if err != nil {
		return err
	}

	argsWebServer := gin.ArgsNewWebServer{
		Facade:          components.facade,
		MetricsGatherer: components.registry,
		EnableLogRoute:  cfg.GeneralConfig.EnableLogRoute,
	}
	httpServerWrapper, err := gin.NewGinWebServerHandler(argsWebServer)
	if err != nil {
		return err
	}

	err = httpServerWrapper.StartHttpServer()
	if err != nil {
		return err
	}

	log.Info("wallet checker started", "signer", components.transferSender.SignerAddress().Hex())

	err = pollingHandler.StartProcessingLoop()
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs

	log.Info("application closing, closing polling handler...")

	err = pollingHandler.Close()
	log.LogIfError(err)

	return httpServerWrapper.Close()
}

func loadConfig(filepath string) (config.WalletCheckerConfig, error) {
	cfg := config.WalletCheckerConfig{}
	err := chainCore.LoadTomlFile(&cfg, filepath)
	if err != nil {
		return config.WalletCheckerConfig{}, err
	}

	return cfg, nil
}

func attachFileLogger(log logger.Logger, flagsConfig config.ContextFlagsConfig) (chainFactory.FileLoggingHandler, error) {
	var fileLogging chainFactory.FileLoggingHandler
	var err error
	if flagsConfig.SaveLogFile {
		args := file.ArgsFileLogging{
			WorkingDir:      flagsConfig.WorkingDir,
			DefaultLogsPath: defaultLogsPath,
			LogFilePrefix:   logFilePrefix,
		}
		fileLogging, err = file.NewFileLogging(args)
		if err != nil {
			return nil, fmt.Errorf("%w creating a log file", err)
		}
	}

	err = logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)
	logger.ToggleLoggerName(flagsConfig.EnableLogName)
	logLevelFlagValue := flagsConfig.LogLevel
	err = logger.SetLogLevel(logLevelFlagValue)
	if err != nil {
		return nil, err
	}

	if flagsConfig.DisableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			return nil, err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			return nil, err
		}
	}
	log.Trace("logger updated", "level", logLevelFlagValue, "disable ANSI color", flagsConfig.DisableAnsiColor)

	return fileLogging, nil
}
