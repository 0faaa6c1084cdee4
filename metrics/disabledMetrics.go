package metrics

// DisabledMetrics is a Handler that records nothing
type DisabledMetrics struct {
}

// RecordValidation does nothing
func (dm *DisabledMetrics) RecordValidation(_ error) {
}

// RecordSent does nothing
func (dm *DisabledMetrics) RecordSent() {
}

// RecordFailure does nothing
func (dm *DisabledMetrics) RecordFailure(_ string) {
}

// RecordConfirmed does nothing
func (dm *DisabledMetrics) RecordConfirmed(_ bool) {
}

// IsInterfaceNil returns true if there is no value under the interface
func (dm *DisabledMetrics) IsInterfaceNil() bool {
	return dm == nil
}
