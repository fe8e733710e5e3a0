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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/codenotary/segdeque/cmd/version"
	"github.com/codenotary/segdeque/pkg/workload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const scenariosFile = "../../../pkg/workload/testdata/scenarios.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd, err := newCommand()
	require.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), err
}

func TestReplay(t *testing.T) {
	out, err := execute(t, "replay", "--progress=false", "--invariant-checks", scenariosFile)
	require.NoError(t, err)

	require.Contains(t, out, "2 scenario(s), 0 failed")
	require.Contains(t, out, "fifo")
	require.Contains(t, out, "lifo")
	require.Contains(t, out, "PASS")
	require.NotContains(t, out, "FAIL")
}

func TestReplaySmallBlocks(t *testing.T) {
	out, err := execute(t, "replay", "--progress=false", "--block-size", "1", "--pooled-blocks", "0", scenariosFile)
	require.NoError(t, err)
	require.Contains(t, out, "2 scenario(s), 0 failed")
}

func TestReplayArguments(t *testing.T) {
	_, err := execute(t, "replay")
	require.Error(t, err)

	_, err = execute(t, "replay", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReplayInvalidScenario(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("scenarios:\n  - name: bad\n    ops:\n      - {op: rotate}\n"), 0644))

	_, err := execute(t, "replay", "--progress=false", fn)
	require.ErrorIs(t, err, workload.ErrInvalidScenario)
}

func TestReplayInvalidOptions(t *testing.T) {
	_, err := execute(t, "replay", "--progress=false", "--parallel", "0", scenariosFile)
	require.Error(t, err)
}

func TestBenchSaveAndReplay(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "generated.yaml")

	out, err := execute(t, "bench",
		"--progress=false",
		"--scenarios", "3",
		"--ops", "200",
		"--seed", "42",
		"--iterations", "2000",
		"--save", fn,
	)
	require.NoError(t, err)
	require.Contains(t, out, "3 scenario(s), 0 failed")
	require.Contains(t, out, "random-000")
	require.Contains(t, out, "ops/sec")

	scenarios, err := workload.Load(fn)
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	out, err = execute(t, "replay", "--progress=false", fn)
	require.NoError(t, err)
	require.Contains(t, out, "3 scenario(s), 0 failed")
}

func TestBenchProgressAndMetrics(t *testing.T) {
	out, err := execute(t, "bench",
		"--scenarios", "2",
		"--ops", "100",
		"--iterations", "0",
		"--metrics",
	)
	require.NoError(t, err)
	require.Contains(t, out, "metrics summary")
	require.Contains(t, out, "segdeque_workload_operations_total")
	require.NotContains(t, out, "ops/sec")
}

func TestBenchNegativeCounts(t *testing.T) {
	_, err := execute(t, "bench", "--progress=false", "--ops", "-1")
	require.ErrorIs(t, err, workload.ErrInvalidScenario)
}

func TestBenchConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "segdeque.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("scenarios: 1\nops: 10\niterations: 0\nprogress: false\n"), 0644))

	out, err := execute(t, "bench", "--config", fn)
	require.NoError(t, err)
	require.Contains(t, out, "1 scenario(s), 0 failed")
}

func TestVersion(t *testing.T) {
	defer func(v string) { version.Version = v }(version.Version)
	version.Version = "1.0.0"

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "segdeque 1.0.0")
}

func TestSummarizeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "segdeque_test_total"}, []string{"deque"})
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "segdeque_test_blocks"})
	other := prometheus.NewCounter(prometheus.CounterOpts{Name: "other_total"})
	reg.MustRegister(counter, gauge, other)

	counter.WithLabelValues("a").Add(2)
	counter.WithLabelValues("b").Add(3)
	gauge.Set(7)
	other.Inc()

	summaries, err := summarizeMetrics(reg)
	require.NoError(t, err)
	require.Equal(t, []metricSummary{
		{name: "segdeque_test_blocks", kind: "gauge", series: 1, total: 7},
		{name: "segdeque_test_total", kind: "counter", series: 2, total: 5},
	}, summaries)
}
