package usecase

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"crowdfund/internal/core/domain"
)

// Metrics counts engine operations by outcome.
type Metrics struct {
	operations *prometheus.CounterVec
	payouts    *prometheus.CounterVec

	registerOnce sync.Once
}

// Register registers the collectors with registry. A nil registry leaves
// metrics disabled. Subsequent calls are no-ops.
func (m *Metrics) Register(registry prometheus.Registerer) {
	if registry == nil {
		return
	}
	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.operations = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfund_operations_total",
			Help: "Total number of engine operations by operation and result code",
		}, []string{"operation", "result"})

		m.payouts = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfund_payouts_total",
			Help: "Total number of completed escrow releases by kind",
		}, []string{"kind"})
	})
}

func (m *Metrics) observe(operation string, err error) {
	if m == nil || m.operations == nil {
		return
	}
	m.operations.WithLabelValues(operation, resultLabel(err)).Inc()
}

func (m *Metrics) payout(kind domain.PayoutKind) {
	if m == nil || m.payouts == nil {
		return
	}
	m.payouts.WithLabelValues(string(kind)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return string(de.Code)
	}
	return "internal"
}
