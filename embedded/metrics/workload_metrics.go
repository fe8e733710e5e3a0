/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ProgressTracker interface {
	Add(v float64)
}

type WorkloadMetrics interface {
	IncOperations(n int)
	IncDivergences()
	NewProgressTracker(maxValue float64) ProgressTracker
}

var (
	metricsWorkloadOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segdeque_workload_operations_total",
		Help: "Total number of operations replayed against the deque",
	}, []string{"scenario"})

	metricsWorkloadDivergences = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segdeque_workload_divergences_total",
		Help: "Total number of replayed operations whose result differed from the reference",
	}, []string{"scenario"})

	metricsWorkloadProgress = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "segdeque_workload_progress",
		Help: "Progress of the scenario replay, between 0 and 1",
	}, []string{"scenario"})
)

var (
	_ WorkloadMetrics = &prometheusWorkloadMetrics{}
	_ WorkloadMetrics = &nopWorkloadMetrics{}
)

type prometheusWorkloadMetrics struct {
	scenario string
}

func NewPrometheusWorkloadMetrics(scenario string) WorkloadMetrics {
	return &prometheusWorkloadMetrics{
		scenario: scenario,
	}
}

func (m *prometheusWorkloadMetrics) IncOperations(n int) {
	metricsWorkloadOperations.WithLabelValues(m.scenario).Add(float64(n))
}

func (m *prometheusWorkloadMetrics) IncDivergences() {
	metricsWorkloadDivergences.WithLabelValues(m.scenario).Inc()
}

func (m *prometheusWorkloadMetrics) NewProgressTracker(maxValue float64) ProgressTracker {
	return newPrometheusProgressTracker(maxValue, metricsWorkloadProgress.WithLabelValues(m.scenario))
}

type prometheusProgressTracker struct {
	progress  prometheus.Gauge
	currValue float64
	maxValue  float64
}

func newPrometheusProgressTracker(maxValue float64, gauge prometheus.Gauge) ProgressTracker {
	gauge.Set(0)

	return &prometheusProgressTracker{
		progress: gauge,
		maxValue: maxValue,
	}
}

func (p *prometheusProgressTracker) Add(v float64) {
	if p.maxValue <= 0 {
		return
	}
	p.currValue += v
	p.progress.Set(p.currValue / p.maxValue)
}

type nopWorkloadMetrics struct {
}

func NewNopWorkloadMetrics() WorkloadMetrics {
	return &nopWorkloadMetrics{}
}

func (m *nopWorkloadMetrics) IncOperations(n int) {
}

func (m *nopWorkloadMetrics) IncDivergences() {
}

func (m *nopWorkloadMetrics) NewProgressTracker(maxValue float64) ProgressTracker {
	return nopProgressTracker{}
}

type nopProgressTracker struct{}

func (nopProgressTracker) Add(v float64) {
}
