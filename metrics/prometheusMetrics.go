package metrics

import (
	"errors"
	"fmt"

	"github.com/klever-io/evm-wallet-checker/validator"
	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline stages used as the stage label of failed transactions
const (
	StageValidate = "validate"
	StagePopulate = "populate"
	StageSign     = "sign"
	StageSend     = "send"
	StageConfirm  = "confirm"
)

const (
	resultValid          = "valid"
	resultUnknownField   = "unknown_field"
	resultSenderMismatch = "sender_mismatch"
	resultOther          = "other"
)

type prometheusMetrics struct {
	validations           *prometheus.CounterVec
	transactionsSent      prometheus.Counter
	transactionsFailed    *prometheus.CounterVec
	transactionsConfirmed *prometheus.CounterVec
}

// NewPrometheusMetrics creates the wallet checker collectors and registers them on the provided registerer
func NewPrometheusMetrics(registerer prometheus.Registerer) (*prometheusMetrics, error) {
	if registerer == nil {
		return nil, errNilRegisterer
	}

	pm := &prometheusMetrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_checker_validations_total",
			Help: "Number of validated transaction requests by result",
		}, []string{"result"}),
		transactionsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallet_checker_transactions_sent_total",
			Help: "Number of transactions accepted by the provider",
		}),
		transactionsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_checker_transactions_failed_total",
			Help: "Number of transfers that failed by pipeline stage",
		}, []string{"stage"}),
		transactionsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_checker_transactions_confirmed_total",
			Help: "Number of mined transactions by receipt status",
		}, []string{"status"}),
	}

	collectors := []prometheus.Collector{pm.validations, pm.transactionsSent, pm.transactionsFailed, pm.transactionsConfirmed}
	for _, c := range collectors {
		err := registerer.Register(c)
		if err != nil {
			return nil, fmt.Errorf("failed to register stats collector: %w", err)
		}
	}

	return pm, nil
}

// RecordValidation counts a validation outcome
func (pm *prometheusMetrics) RecordValidation(err error) {
	pm.validations.WithLabelValues(validationResult(err)).Inc()
}

// RecordSent counts a transaction accepted by the provider
func (pm *prometheusMetrics) RecordSent() {
	pm.transactionsSent.Inc()
}

// RecordFailure counts a transfer that failed in the given stage
func (pm *prometheusMetrics) RecordFailure(stage string) {
	pm.transactionsFailed.WithLabelValues(stage).Inc()
}

// RecordConfirmed counts a mined transaction
func (pm *prometheusMetrics) RecordConfirmed(success bool) {
	status := "success"
	if !success {
		status = "reverted"
	}
	pm.transactionsConfirmed.WithLabelValues(status).Inc()
}

// IsInterfaceNil returns true if there is no value under the interface
func (pm *prometheusMetrics) IsInterfaceNil() bool {
	return pm == nil
}

func validationResult(err error) string {
	switch {
	case err == nil:
		return resultValid
	case errors.Is(err, validator.ErrUnknownField):
		return resultUnknownField
	case errors.Is(err, validator.ErrSenderMismatch):
		return resultSenderMismatch
	default:
		return resultOther
	}
}
