package metrics

// Handler records the outcome of every pipeline stage
type Handler interface {
	RecordValidation(err error)
	RecordSent()
	RecordFailure(stage string)
	RecordConfirmed(success bool)
	IsInterfaceNil() bool
}
