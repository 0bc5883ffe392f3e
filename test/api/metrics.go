/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	requestsMetric = "petstore_client_requests_total"
	durationMetric = "petstore_client_request_duration_seconds"
)

// Metrics counts requests issued by the clients.  Each instance has its own
// registry so suites running in one process do not collide.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: requestsMetric,
			Help: "Total number of requests issued by route and status",
		},
		[]string{"method", "route", "code"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    durationMetric,
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	registry.MustRegister(
		requestsTotal,
		requestDuration,
	)

	return &Metrics{
		registry:        registry,
		RequestsTotal:   requestsTotal,
		RequestDuration: requestDuration,
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// observe records one exchange.  code is the status code or "error" for a
// transport failure.  A nil receiver records nothing.
func (m *Metrics) observe(method, route, code string, duration time.Duration) {
	if m == nil {
		return
	}

	m.RequestsTotal.WithLabelValues(method, route, code).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// WriteSummary prints one line per method, route and code with the number
// of requests, sorted for stable output.
func (m *Metrics) WriteSummary(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	var lines []string

	for _, family := range families {
		if family.GetName() != requestsMetric {
			continue
		}

		for _, metric := range family.GetMetric() {
			labels := map[string]string{}

			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}

			lines = append(lines, fmt.Sprintf("%s %s %s %.0f", labels["method"], labels["route"], labels["code"], metric.GetCounter().GetValue()))
		}
	}

	slices.Sort(lines)

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("writing metrics summary: %w", err)
	}

	return nil
}
