package config

// WalletCheckerConfig is the wallet checker configuration struct
type WalletCheckerConfig struct {
	GeneralConfig GeneralConfig
	Transfer      TransferConfig
}

// GeneralConfig is the general configuration struct
type GeneralConfig struct {
	NetworkAddress               string
	PrivateKeyEnvVariable        string
	ApiKeyEnvVariable            string
	ProxyCacherExpirationSeconds uint64
	GasPriceCacheSeconds         uint64
	ProxyMaxRetries              uint64
	ProxyRetryIntervalMillis     uint64
	GasPriceBumpPercent          uint64
	MaxGasPriceInGwei            uint64
	DefaultGasLimit              uint64
	PollIntervalInSeconds        uint64
	ConfirmationTimeoutInSeconds uint64
	JournalPath                  string
	EnableLogRoute               bool
	Logs                         LogsConfig
}

// LogsConfig will hold settings related to the logging sub-system
type LogsConfig struct {
	LogFileLifeSpanInSec int
	LogFileLifeSpanInMB  int
}

// TransferConfig describes the transfer sent by the one-shot send command. Data is UTF-8 text
type TransferConfig struct {
	To           string
	ValueInEther string
	Data         string
	GasLimit     uint64
}

// ContextFlagsConfig the configuration for flags
type ContextFlagsConfig struct {
	WorkingDir        string
	LogLevel          string
	DisableAnsiColor  bool
	ConfigurationFile string
	SaveLogFile       bool
	EnableLogName     bool
	RestApiInterface  string
}
