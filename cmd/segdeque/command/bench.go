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
	"fmt"
	"os"

	c "github.com/codenotary/segdeque/cmd/helper"
	"github.com/codenotary/segdeque/pkg/bm"
	"github.com/codenotary/segdeque/pkg/workload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func (cl *Commandline) newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Generate random scenarios, replay them and measure deque throughput",
		Example: `  segdeque bench --scenarios 32 --ops 50000 --seed 7
  segdeque bench --save generated.yaml --iterations 0`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.BindFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer opts.logger.Close()

			count := viper.GetInt("scenarios")
			ops := viper.GetInt("ops")
			if count < 0 || ops < 0 {
				return fmt.Errorf("%w: scenarios and ops must not be negative", workload.ErrInvalidScenario)
			}

			gen := workload.NewGenerator(viper.GetInt64("seed"))
			scenarios := gen.Scenarios("random", count, ops, viper.GetInt("block-size"))

			if path := viper.GetString("save"); path != "" {
				data, err := workload.Marshal(scenarios)
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, data, 0644); err != nil {
					return err
				}
				opts.logger.Infof("saved %d generated scenarios to %s", len(scenarios), path)
			}

			out := cmd.OutOrStdout()

			var progress = cmd.ErrOrStderr()
			if !viper.GetBool("progress") {
				progress = nil
			}

			err = replayScenarios(cmd.Context(), opts, scenarios, out, progress)
			if err != nil {
				return err
			}

			if iterations := viper.GetInt("iterations"); iterations > 0 {
				c.Notice.Fprintf(out, "\nthroughput (%s iterations)\n", c.FormatCount(iterations))

				for _, b := range bm.DequeBenchmarks(viper.GetInt("block-size"), iterations, viper.GetInt("parallel")) {
					res, err := b.Execute()
					if err != nil {
						return err
					}
					fmt.Fprintln(out, res)
				}
			}

			if opts.metrics {
				return printMetricsSummary(out)
			}

			return nil
		},
	}

	cmd.Flags().Int("scenarios", DefaultScenarios, "number of scenarios to generate")
	cmd.Flags().Int("ops", DefaultOperations, "operations per generated scenario")
	cmd.Flags().Int64("seed", DefaultSeed, "seed of the scenario generator")
	cmd.Flags().Int("iterations", DefaultIterations, "iterations per throughput benchmark (0 skips them)")
	cmd.Flags().String("save", "", "write the generated scenarios to this YAML file")
	cmd.Flags().Bool("progress", true, "draw a progress bar while scenarios run")

	return cmd
}
