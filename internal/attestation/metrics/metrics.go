// Package metrics holds the Prometheus instruments for the registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all registry metrics. Construct once at wiring time; callers
// that run without metrics (unit tests) pass nil and the service skips
// recording.
type Metrics struct {
	AttestationsCreated prometheus.Counter
	AttestationsRevoked prometheus.Counter
	ClaimChecks         *prometheus.CounterVec
	ClaimScanLength     prometheus.Histogram
}

// New creates and registers all registry metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		AttestationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trustlink_attestations_created_total",
			Help: "Total number of attestations created",
		}),
		AttestationsRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trustlink_attestations_revoked_total",
			Help: "Total number of attestations revoked",
		}),
		ClaimChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trustlink_claim_checks_total",
			Help: "Valid-claim checks by outcome",
		}, []string{"result"}),
		ClaimScanLength: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "trustlink_claim_scan_length",
			Help:    "Number of index entries scanned per valid-claim check",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}
}

// ObserveClaimCheck records one HasValidClaim evaluation.
func (m *Metrics) ObserveClaimCheck(valid bool, scanned int) {
	if m == nil {
		return
	}
	result := "miss"
	if valid {
		result = "hit"
	}
	m.ClaimChecks.WithLabelValues(result).Inc()
	m.ClaimScanLength.Observe(float64(scanned))
}

// IncrementCreated records one successful attestation creation.
func (m *Metrics) IncrementCreated() {
	if m == nil {
		return
	}
	m.AttestationsCreated.Inc()
}

// IncrementRevoked records one successful revocation.
func (m *Metrics) IncrementRevoked() {
	if m == nil {
		return
	}
	m.AttestationsRevoked.Inc()
}
