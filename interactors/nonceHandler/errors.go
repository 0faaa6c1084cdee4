package nonceHandler

import "errors"

var (
	errNilProxy           = errors.New("nil proxy")
	errNilGasPriceService = errors.New("nil gas price service")
	errNilTransaction     = errors.New("nil transaction")
)
