package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Throttled   prometheus.Counter
	TrackedKeys prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		Throttled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scrapingdarwin_ratelimit_login_throttled_total",
			Help: "Total number of login attempts rejected by the rate limiter",
		}),
		TrackedKeys: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "scrapingdarwin_ratelimit_tracked_keys",
			Help: "Client addresses currently tracked by the login rate limiter",
		}),
	}
}

func (m *Metrics) IncrementThrottled() {
	if m != nil {
		m.Throttled.Inc()
	}
}

func (m *Metrics) SetTrackedKeys(count int) {
	if m != nil {
		m.TrackedKeys.Set(float64(count))
	}
}
