package provider

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/patrickmn/go-cache"
)

const (
	minCacheExpiration = time.Second
	minGasPriceExpiry  = time.Millisecond
	cacheCleanup       = time.Minute
	chainIDCacheKey    = "chainID"
	gasPriceCacheKey   = "gasPrice"
)

var log = logger.GetOrCreate("evm-wallet-checker/provider")

// ArgsProxy is the DTO used to create a new proxy
type ArgsProxy struct {
	Client                  RPCClient
	CacheExpirationTime     time.Duration
	GasPriceCacheExpiration time.Duration
	MaxRetries              uint64
	RetryInterval           time.Duration
}

// TransactionInfo is a transaction as known by the network, together with its recovered sender
type TransactionInfo struct {
	Tx      *types.Transaction
	From    common.Address
	Pending bool
}

type proxy struct {
	client             RPCClient
	cacheStore         *cache.Cache
	gasPriceExpiration time.Duration
	maxRetries         uint64
	retryInterval      time.Duration
}

// NewProxy creates a new network provider over the RPC client
func NewProxy(args ArgsProxy) (*proxy, error) {
	err := checkArgsProxy(args)
	if err != nil {
		return nil, err
	}

	return &proxy{
		client:             args.Client,
		cacheStore:         cache.New(args.CacheExpirationTime, cacheCleanup),
		gasPriceExpiration: args.GasPriceCacheExpiration,
		maxRetries:         args.MaxRetries,
		retryInterval:      args.RetryInterval,
	}, nil
}

func checkArgsProxy(args ArgsProxy) error {
	if args.Client == nil {
		return errNilRPCClient
	}
	if args.CacheExpirationTime < minCacheExpiration {
		return fmt.Errorf("%w, minimum %v, got %v", errInvalidCacheExpirationInterval, minCacheExpiration, args.CacheExpirationTime)
	}
	if args.GasPriceCacheExpiration < minGasPriceExpiry {
		return fmt.Errorf("%w for the gas price, minimum %v, got %v", errInvalidCacheExpirationInterval, minGasPriceExpiry, args.GasPriceCacheExpiration)
	}
	if args.MaxRetries > 0 && args.RetryInterval <= 0 {
		return errInvalidRetryInterval
	}

	return nil
}

// Dial connects to the JSON-RPC endpoint
func Dial(ctx context.Context, url string) (*ethclient.Client, error) {
	if len(url) == 0 {
		return nil, errEmptyNetworkAddress
	}

	return ethclient.DialContext(ctx, url)
}

// BuildNetworkURL appends the access credential of a hosted provider to its base URL
func BuildNetworkURL(baseURL string, apiKey string) string {
	if len(apiKey) == 0 {
		return baseURL
	}

	return strings.TrimSuffix(baseURL, "/") + "/" + apiKey
}

// ChainID returns the chain ID of the network. The value is cached for the lifetime of the proxy
func (p *proxy) ChainID(ctx context.Context) (*big.Int, error) {
	cached, found := p.cacheStore.Get(chainIDCacheKey)
	if found {
		return new(big.Int).Set(cached.(*big.Int)), nil
	}

	chainID, err := withRetries(ctx, p, "ChainID", func() (*big.Int, error) {
		return p.client.ChainID(ctx)
	})
	if err != nil {
		return nil, err
	}

	p.cacheStore.Set(chainIDCacheKey, chainID, cache.NoExpiration)

	return new(big.Int).Set(chainID), nil
}

// GetTransactionCount returns the next nonce of the address, pending transactions included
func (p *proxy) GetTransactionCount(ctx context.Context, address common.Address) (uint64, error) {
	return withRetries(ctx, p, "GetTransactionCount", func() (uint64, error) {
		return p.client.PendingNonceAt(ctx, address)
	})
}

// GetGasPrice returns the gas price suggested by the network. The value is cached for the gas price expiration
func (p *proxy) GetGasPrice(ctx context.Context) (*big.Int, error) {
	cached, found := p.cacheStore.Get(gasPriceCacheKey)
	if found {
		return new(big.Int).Set(cached.(*big.Int)), nil
	}

	gasPrice, err := withRetries(ctx, p, "GetGasPrice", func() (*big.Int, error) {
		return p.client.SuggestGasPrice(ctx)
	})
	if err != nil {
		return nil, err
	}

	p.cacheStore.Set(gasPriceCacheKey, gasPrice, p.gasPriceExpiration)

	return new(big.Int).Set(gasPrice), nil
}

// GetBalance returns the latest balance of the address
func (p *proxy) GetBalance(ctx context.Context, address common.Address) (*big.Int, error) {
	return withRetries(ctx, p, "GetBalance", func() (*big.Int, error) {
		return p.client.BalanceAt(ctx, address, nil)
	})
}

// EstimateGas estimates the gas needed by the call. Fails with ErrInsufficientFunds if the sender can not afford it
func (p *proxy) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return withRetries(ctx, p, "EstimateGas", func() (uint64, error) {
		return p.client.EstimateGas(ctx, call)
	})
}

// SendTransaction submits the signed transaction and returns its hash. Sends are not retried
func (p *proxy) SendTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	if tx == nil {
		return "", ErrNilTransaction
	}

	err := p.client.SendTransaction(ctx, tx)
	if err != nil {
		return "", classifyError(err)
	}

	return tx.Hash().Hex(), nil
}

// GetTransaction fetches the transaction and recovers its sender
func (p *proxy) GetTransaction(ctx context.Context, hash string) (*TransactionInfo, error) {
	txHash, err := parseHash(hash)
	if err != nil {
		return nil, err
	}

	type fetched struct {
		tx      *types.Transaction
		pending bool
	}
	result, err := withRetries(ctx, p, "GetTransaction", func() (fetched, error) {
		tx, pending, errFetch := p.client.TransactionByHash(ctx, txHash)
		return fetched{tx: tx, pending: pending}, errFetch
	})
	if err != nil {
		return nil, err
	}

	from, err := types.Sender(types.LatestSignerForChainID(result.tx.ChainId()), result.tx)
	if err != nil {
		return nil, err
	}

	return &TransactionInfo{
		Tx:      result.tx,
		From:    from,
		Pending: result.pending,
	}, nil
}

// GetReceipt fetches the receipt of a mined transaction. Returns ErrTransactionNotFound while the transaction is pending
func (p *proxy) GetReceipt(ctx context.Context, hash string) (*types.Receipt, error) {
	txHash, err := parseHash(hash)
	if err != nil {
		return nil, err
	}

	return withRetries(ctx, p, "GetReceipt", func() (*types.Receipt, error) {
		return p.client.TransactionReceipt(ctx, txHash)
	})
}

// Close closes the underlying RPC client
func (p *proxy) Close() {
	p.client.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (p *proxy) IsInterfaceNil() bool {
	return p == nil
}

func withRetries[T any](ctx context.Context, p *proxy, name string, operation func() (T, error)) (T, error) {
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(p.retryInterval), p.maxRetries)
	policyContext := backoff.WithContext(policy, ctx)

	classified := func() (T, error) {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		err = classifyError(err)
		if isPermanent(err) {
			return result, backoff.Permanent(err)
		}

		return result, err
	}

	notify := func(err error, nextTry time.Duration) {
		log.Debug("provider call failed, retrying", "call", name, "next try", nextTry, "error", err)
	}

	return backoff.RetryNotifyWithData(classified, policyContext, notify)
}

func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ethereum.NotFound) {
		return fmt.Errorf("%w: %w", ErrTransactionNotFound, err)
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "insufficient funds"):
		return fmt.Errorf("%w: %w", ErrInsufficientFunds, err)
	case strings.Contains(message, "nonce too low"):
		return fmt.Errorf("%w: %w", ErrNonceTooLow, err)
	}

	return err
}

func isPermanent(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrNonceTooLow) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func parseHash(hash string) (common.Hash, error) {
	hashBytes, err := hexutil.Decode(hash)
	if err != nil || len(hashBytes) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrInvalidTransactionHash, hash)
	}

	return common.BytesToHash(hashBytes), nil
}
