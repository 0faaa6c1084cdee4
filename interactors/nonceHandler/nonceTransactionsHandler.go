package nonceHandler

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/klever-io/evm-wallet-checker/provider"
	"github.com/klever-io/evm-wallet-checker/validator"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("evm-wallet-checker/interactors/nonceHandler")

// ArgsNonceTransactionsHandler is the argument DTO for the NewNonceTransactionHandler function
type ArgsNonceTransactionsHandler struct {
	Proxy           Proxy
	GasPriceService GasPriceService
}

type nonceTransactionsHandler struct {
	proxy           Proxy
	gasPriceService GasPriceService
	mutNonces       sync.Mutex
	nonces          map[common.Address]uint64
}

// NewNonceTransactionHandler creates a component able to fill in nonces and gas prices. The first nonce of an
// address is fetched from the network, the following ones are tracked locally
func NewNonceTransactionHandler(args ArgsNonceTransactionsHandler) (*nonceTransactionsHandler, error) {
	if check.IfNil(args.Proxy) {
		return nil, errNilProxy
	}
	if check.IfNil(args.GasPriceService) {
		return nil, errNilGasPriceService
	}

	return &nonceTransactionsHandler{
		proxy:           args.Proxy,
		gasPriceService: args.GasPriceService,
		nonces:          make(map[common.Address]uint64),
	}, nil
}

// ApplyNonceAndGasPrice returns a copy of the request having the nonce and gas price filled in. Values already
// present in the request are kept. A filled in nonce stays reserved until DropNonce is called or a send fails
func (nth *nonceTransactionsHandler) ApplyNonceAndGasPrice(
	ctx context.Context,
	address common.Address,
	request validator.TransactionRequest,
) (validator.TransactionRequest, error) {
	result := request.Clone()

	// gas price first, a failure there must not leave a nonce reserved
	if !request.Has(validator.FieldGasPrice) {
		gasPrice, err := nth.gasPriceService.GetGasPrice(ctx)
		if err != nil {
			return nil, err
		}
		result[validator.FieldGasPrice] = gasPrice
	}

	if !request.Has(validator.FieldNonce) {
		nonce, err := nth.getNonce(ctx, address)
		if err != nil {
			return nil, err
		}
		result[validator.FieldNonce] = nonce
	}

	return result, nil
}

// getNonce hands out the next nonce of the address and reserves it, so concurrent requests never share one
func (nth *nonceTransactionsHandler) getNonce(ctx context.Context, address common.Address) (uint64, error) {
	nth.mutNonces.Lock()
	defer nth.mutNonces.Unlock()

	nonce, found := nth.nonces[address]
	if !found {
		var err error
		nonce, err = nth.proxy.GetTransactionCount(ctx, address)
		if err != nil {
			return 0, err
		}
		log.Debug("fetched account nonce", "address", address.Hex(), "nonce", nonce)
	}
	nth.nonces[address] = nonce + 1

	return nonce, nil
}

// SendTransaction sends the signed transaction and advances the local nonce of its sender
func (nth *nonceTransactionsHandler) SendTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	if tx == nil {
		return "", errNilTransaction
	}

	sender, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return "", err
	}

	hash, err := nth.proxy.SendTransaction(ctx, tx)
	if err != nil {
		if errors.Is(err, provider.ErrNonceTooLow) {
			log.Warn("nonce too low, dropping the local nonce", "address", sender.Hex(), "nonce", tx.Nonce())
		}
		// the reserved nonce was not consumed, the next request refetches it from the network
		nth.DropNonce(sender)
		return "", err
	}

	nth.mutNonces.Lock()
	if tx.Nonce()+1 > nth.nonces[sender] {
		nth.nonces[sender] = tx.Nonce() + 1
	}
	nth.mutNonces.Unlock()

	return hash, nil
}

// DropNonce forgets the local nonce of the address so the next request refetches it from the network
func (nth *nonceTransactionsHandler) DropNonce(address common.Address) {
	nth.mutNonces.Lock()
	delete(nth.nonces, address)
	nth.mutNonces.Unlock()
}

// IsInterfaceNil returns true if there is no value under the interface
func (nth *nonceTransactionsHandler) IsInterfaceNil() bool {
	return nth == nil
}
