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

package command

import (
	"io"
	"sort"
	"strconv"
	"strings"

	c "github.com/codenotary/segdeque/cmd/helper"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const metricsPrefix = "segdeque_"

type metricSummary struct {
	name   string
	kind   string
	series int
	total  float64
}

func summarizeMetrics(g prometheus.Gatherer) ([]metricSummary, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var summaries []metricSummary

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricsPrefix) {
			continue
		}

		s := metricSummary{
			name:   mf.GetName(),
			kind:   strings.ToLower(mf.GetType().String()),
			series: len(mf.GetMetric()),
		}

		for _, m := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.total += m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.total += m.GetGauge().GetValue()
			}
		}

		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].name < summaries[j].name
	})

	return summaries, nil
}

func printMetricsSummary(out io.Writer) error {
	summaries, err := summarizeMetrics(prometheus.DefaultGatherer)
	if err != nil {
		return err
	}

	io.WriteString(out, "\n")

	c.PrintTable(
		out,
		[]string{"Metric", "Type", "Series", "Total"},
		len(summaries),
		func(i int) []string {
			s := summaries[i]
			return []string{
				s.name,
				s.kind,
				strconv.Itoa(s.series),
				strconv.FormatFloat(s.total, 'f', -1, 64),
			}
		},
		"metrics summary",
	)

	return nil
}
