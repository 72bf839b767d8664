// SPDX-License-Identifier: MIT
// Package registry: Prometheus instrumentation.

package registry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "loadprofile"

type metrics struct {
	computed *prometheus.CounterVec
	points   *prometheus.GaugeVec
	duration prometheus.Histogram
}

// newMetrics registers the collectors on reg. Collectors already registered
// by an earlier Registry on the same reg are reused. A nil reg disables
// metrics.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}

	computed, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "profiles_computed_total",
		Help:      "Number of day profiles computed, per archetype.",
	}, []string{"archetype"}))
	if err != nil {
		return nil, err
	}
	points, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "profile_points",
		Help:      "Number of grid points in the latest profile, per archetype.",
	}, []string{"archetype"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "compute_duration_seconds",
		Help:      "Time spent computing one archetype profile.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	}))
	if err != nil {
		return nil, err
	}

	return &metrics{computed: computed, points: points, duration: duration}, nil
}

func (m *metrics) observe(archetype string, points int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.computed.WithLabelValues(archetype).Inc()
	m.points.WithLabelValues(archetype).Set(float64(points))
	m.duration.Observe(elapsed.Seconds())
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}
