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
	c "github.com/codenotary/segdeque/cmd/helper"
	"github.com/codenotary/segdeque/pkg/workload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func (cl *Commandline) newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <scenarios.yaml>",
		Short: "Replay the scenarios of a YAML file and check the deque against a slice",
		Example: `  segdeque replay scenarios.yaml
  segdeque replay --invariant-checks --block-size 4 scenarios.yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.BindFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := workload.Load(args[0])
			if err != nil {
				return err
			}

			opts, err := parseOptions(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer opts.logger.Close()

			var progress = cmd.ErrOrStderr()
			if !viper.GetBool("progress") {
				progress = nil
			}

			err = replayScenarios(cmd.Context(), opts, scenarios, cmd.OutOrStdout(), progress)

			if opts.metrics {
				if serr := printMetricsSummary(cmd.OutOrStdout()); serr != nil && err == nil {
					err = serr
				}
			}

			return err
		},
	}

	cmd.Flags().Bool("progress", true, "draw a progress bar while scenarios run")

	return cmd
}
