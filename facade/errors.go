package facade

import "errors"

var (
	errNilTransferSender  = errors.New("nil transfer sender")
	errNilValidator       = errors.New("nil transaction validator")
	errNilProxy           = errors.New("nil proxy")
	errNilGasPriceService = errors.New("nil gas price service")
	errNilJournal         = errors.New("nil transaction journal")
	errNilMetrics         = errors.New("nil metrics handler")
)
