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
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	c "github.com/codenotary/segdeque/cmd/helper"
	"github.com/codenotary/segdeque/pkg/workload"
	"github.com/schollz/progressbar/v2"
)

var ErrScenariosFailed = errors.New("one or more scenarios failed")

var resultColumns = []string{"Scenario", "Run ID", "Status", "Ops", "Length", "Blocks", "Reallocations", "Footprint", "Elapsed"}

// replayScenarios runs scenarios with the given options and prints one row
// per scenario. A progress bar is drawn on progress when it is not nil.
func replayScenarios(
	ctx context.Context,
	opts *cliOptions,
	scenarios []workload.Scenario,
	out io.Writer,
	progress io.Writer,
) error {
	if progress != nil {
		bar := progressbar.NewOptions(len(scenarios), progressbar.OptionSetWriter(progress))
		opts.workload.WithOnResult(func(*workload.Result) {
			bar.Add(1)
		})
		defer func() {
			bar.Finish()
			fmt.Fprintln(progress)
		}()
	}

	runner, err := workload.NewRunner(opts.workload)
	if err != nil {
		return err
	}

	results, runErr := runner.RunAll(ctx, scenarios)

	printResults(out, results)

	if runErr != nil {
		return runErr
	}

	failed := 0
	for _, res := range results {
		if res != nil && !res.Passed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScenariosFailed, failed, len(results))
	}

	return nil
}

func printResults(out io.Writer, results []*workload.Result) {
	var rows [][]string
	var failures []*workload.Result

	for _, res := range results {
		if res == nil {
			continue
		}
		rows = append(rows, []string{
			res.Scenario,
			res.RunID,
			c.Status(res.Passed()),
			c.FormatCount(res.Operations),
			c.FormatCount(res.Len),
			c.FormatCount(res.Stats.Blocks),
			c.FormatCount(res.Stats.Reallocations),
			c.FormatByteSize(res.FootprintBytes),
			res.Elapsed.Round(time.Microsecond).String(),
		})
		if !res.Passed() {
			failures = append(failures, res)
		}
	}

	c.PrintTable(
		out,
		resultColumns,
		len(rows),
		func(i int) []string { return rows[i] },
		fmt.Sprintf("%d scenario(s), %d failed", len(rows), len(failures)),
	)

	for _, res := range failures {
		c.Failed.Fprintf(out, "%s: ", res.Scenario)
		fmt.Fprintln(out, res.Err)
	}
}
