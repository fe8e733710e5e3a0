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

type DequeMetrics interface {
	AddBlocksAllocated(n int)
	AddBlocksReleased(n int)
	IncMapReallocations()
	IncAllocationFailures()
	SetMapBlocks(n int)
	SetLength(n int)
}

var (
	metricsDequeBlocksAllocated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segdeque_blocks_allocated_total",
		Help: "Total number of blocks obtained from the block provider",
	}, []string{"deque"})

	metricsDequeBlocksReleased = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segdeque_blocks_released_total",
		Help: "Total number of blocks returned to the block provider",
	}, []string{"deque"})

	metricsDequeMapReallocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segdeque_map_reallocations_total",
		Help: "Total number of block map reallocations",
	}, []string{"deque"})

	metricsDequeAllocationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segdeque_allocation_failures_total",
		Help: "Total number of growth operations rolled back because a block could not be allocated",
	}, []string{"deque"})

	metricsDequeMapBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "segdeque_map_blocks",
		Help: "Number of blocks referenced by the block map",
	}, []string{"deque"})

	metricsDequeLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "segdeque_length",
		Help: "Number of live elements, updated on block map changes",
	}, []string{"deque"})
)

var (
	_ DequeMetrics = &prometheusDequeMetrics{}
	_ DequeMetrics = &nopDequeMetrics{}
)

type prometheusDequeMetrics struct {
	deque string
}

func NewPrometheusDequeMetrics(deque string) DequeMetrics {
	return &prometheusDequeMetrics{
		deque: deque,
	}
}

func (m *prometheusDequeMetrics) AddBlocksAllocated(n int) {
	metricsDequeBlocksAllocated.WithLabelValues(m.deque).Add(float64(n))
}

func (m *prometheusDequeMetrics) AddBlocksReleased(n int) {
	metricsDequeBlocksReleased.WithLabelValues(m.deque).Add(float64(n))
}

func (m *prometheusDequeMetrics) IncMapReallocations() {
	metricsDequeMapReallocations.WithLabelValues(m.deque).Inc()
}

func (m *prometheusDequeMetrics) IncAllocationFailures() {
	metricsDequeAllocationFailures.WithLabelValues(m.deque).Inc()
}

func (m *prometheusDequeMetrics) SetMapBlocks(n int) {
	metricsDequeMapBlocks.WithLabelValues(m.deque).Set(float64(n))
}

func (m *prometheusDequeMetrics) SetLength(n int) {
	metricsDequeLength.WithLabelValues(m.deque).Set(float64(n))
}

type nopDequeMetrics struct {
}

func NewNopDequeMetrics() DequeMetrics {
	return &nopDequeMetrics{}
}

func (m *nopDequeMetrics) AddBlocksAllocated(n int) {
}

func (m *nopDequeMetrics) AddBlocksReleased(n int) {
}

func (m *nopDequeMetrics) IncMapReallocations() {
}

func (m *nopDequeMetrics) IncAllocationFailures() {
}

func (m *nopDequeMetrics) SetMapBlocks(n int) {
}

func (m *nopDequeMetrics) SetLength(n int) {
}
