package audit

import (
	"context"

	"github.com/MKhiriev/food-catalog/models"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsAuditor counts decisions by outcome ("granted"/"denied") and
// transport.
type MetricsAuditor struct {
	decisions *prometheus.CounterVec
}

func NewMetricsAuditor(decisions *prometheus.CounterVec) *MetricsAuditor {
	return &MetricsAuditor{decisions: decisions}
}

func (a *MetricsAuditor) Record(_ context.Context, event models.AccessEvent) {
	outcome := "denied"
	if event.Granted {
		outcome = "granted"
	}

	transport := event.Transport
	if transport == "" {
		transport = "unknown"
	}

	a.decisions.WithLabelValues(outcome, transport).Inc()
}
