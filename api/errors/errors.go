package errors

import "errors"

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrFacadeWrongTypeAssertion signals that a type conversion to a facade type failed
var ErrFacadeWrongTypeAssertion = errors.New("facade - wrong type assertion")

// ErrInvalidJSONRequest signals an error in json request formatting
var ErrInvalidJSONRequest = errors.New("invalid json request")

// ErrValidation signals an error in validation
var ErrValidation = errors.New("validation error")

// ErrTxGenerationFailed signals an error generating a transaction
var ErrTxGenerationFailed = errors.New("transaction generation failed")

// ErrGetTransaction signals an error happened trying to fetch a transaction
var ErrGetTransaction = errors.New("getting transaction failed")

// ErrGetWalletInfo signals an error happened trying to fetch the wallet details
var ErrGetWalletInfo = errors.New("getting wallet info failed")

// ErrGetGasPrice signals an error happened trying to fetch the gas price
var ErrGetGasPrice = errors.New("getting gas price failed")

// ErrGetPendingTransactions signals an error happened trying to read the pending transactions
var ErrGetPendingTransactions = errors.New("getting pending transactions failed")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")

// ErrCannotCreateGinWebServer signals that the gin web server could not be created
var ErrCannotCreateGinWebServer = errors.New("cannot create gin web server")
