package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the identity module.
type Metrics struct {
	// Outcomes by operation and reason; reason "ok" marks success.
	Outcomes *prometheus.CounterVec

	// AgeMajority counts successful age calculations by majority flag.
	AgeMajority *prometheus.CounterVec
}

// New creates a new Metrics instance with the identity metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scrapingdarwin_identity_outcomes_total",
			Help: "Identity operation outcomes by operation and reason",
		}, []string{"operation", "reason"}), // operation: "verify_identification", "calculate_age"

		AgeMajority: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scrapingdarwin_identity_age_majority_total",
			Help: "Successful age calculations split by legal majority",
		}, []string{"adult"}),
	}
}

// IncrementOutcome records one operation outcome.
func (m *Metrics) IncrementOutcome(operation, reason string) {
	if m != nil {
		m.Outcomes.WithLabelValues(operation, reason).Inc()
	}
}

// IncrementMajority records whether a computed age is adult.
func (m *Metrics) IncrementMajority(adult bool) {
	if m == nil {
		return
	}
	label := "false"
	if adult {
		label = "true"
	}
	m.AgeMajority.WithLabelValues(label).Inc()
}
