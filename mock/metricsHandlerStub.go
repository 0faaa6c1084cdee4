package mock

// MetricsHandlerStub -
type MetricsHandlerStub struct {
	RecordValidationCalled func(err error)
	RecordSentCalled       func()
	RecordFailureCalled    func(stage string)
	RecordConfirmedCalled  func(success bool)
}

// RecordValidation -
func (stub *MetricsHandlerStub) RecordValidation(err error) {
	if stub.RecordValidationCalled != nil {
		stub.RecordValidationCalled(err)
	}
}

// RecordSent -
func (stub *MetricsHandlerStub) RecordSent() {
	if stub.RecordSentCalled != nil {
		stub.RecordSentCalled()
	}
}

// RecordFailure -
func (stub *MetricsHandlerStub) RecordFailure(stage string) {
	if stub.RecordFailureCalled != nil {
		stub.RecordFailureCalled(stage)
	}
}

// RecordConfirmed -
func (stub *MetricsHandlerStub) RecordConfirmed(success bool) {
	if stub.RecordConfirmedCalled != nil {
		stub.RecordConfirmedCalled(success)
	}
}

// IsInterfaceNil -
func (stub *MetricsHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
