package confirmation

import "errors"

var (
	errNilProxy               = errors.New("nil proxy")
	errNilJournal             = errors.New("nil transaction journal")
	errNilMetrics             = errors.New("nil metrics handler")
	errNilNotifee             = errors.New("nil confirmation notifee")
	errInvalidPollingInterval = errors.New("invalid polling interval")
	errSenderMismatch         = errors.New("mined transaction sender is not the signer")
)
