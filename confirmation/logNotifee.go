package confirmation

import "context"

type logNotifee struct {
}

// NewLogNotifee creates a notifee that only logs the confirmations
func NewLogNotifee() *logNotifee {
	return &logNotifee{}
}

// TransactionConfirmed logs the mined transaction
func (ln *logNotifee) TransactionConfirmed(_ context.Context, confirmation *Confirmation) error {
	if !confirmation.Success {
		log.Warn("transaction reverted", "hash", confirmation.Hash, "block", confirmation.BlockNumber)
		return nil
	}

	log.Info("transaction confirmed", "hash", confirmation.Hash, "block", confirmation.BlockNumber,
		"gas used", confirmation.GasUsed, "from", confirmation.From.Hex())

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ln *logNotifee) IsInterfaceNil() bool {
	return ln == nil
}
