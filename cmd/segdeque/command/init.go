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
	"github.com/codenotary/segdeque/embedded/logger"
	"github.com/codenotary/segdeque/pkg/workload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultScenarios  = 16
	DefaultOperations = 10_000
	DefaultIterations = 1_000_000
	DefaultSeed       = 1
)

func (cl *Commandline) setupFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cl.config.CfgFn, "config", "", "config file (default path are configs, /etc/segdeque or $HOME. Default filename is segdeque.yaml)")
	cmd.PersistentFlags().Int("block-size", 0, "slots per block for scenarios that do not set one (0 sizes blocks from the element size)")
	cmd.PersistentFlags().Int("parallel", workload.DefaultParallelism, "number of scenarios replayed at the same time")
	cmd.PersistentFlags().Int("pooled-blocks", workload.DefaultPooledBlocks, "released blocks kept for reuse across scenarios (0 disables pooling)")
	cmd.PersistentFlags().Bool("invariant-checks", false, "verify the deque invariants after every operation")
	cmd.PersistentFlags().Bool("fail-fast", false, "stop at the first failing scenario")
	cmd.PersistentFlags().Bool("metrics", false, "collect Prometheus metrics and print a summary at the end")
	cmd.PersistentFlags().String("logfile", "", "log path with filename. E.g. /tmp/segdeque/segdeque.log")
	cmd.PersistentFlags().String("logformat", logger.LogFormatText, "log format, one of text or json")
	cmd.PersistentFlags().Int("log-max-size", logger.DefaultLogMaxSizeMB, "size in megabytes a log file can reach before it is rotated")
	cmd.PersistentFlags().Int("log-max-age", logger.DefaultLogMaxAgeDays, "days a rotated log file is kept")
	cmd.PersistentFlags().Int("log-max-backups", logger.DefaultLogMaxBackups, "number of rotated log files kept")
}

func setupDefaults() {
	viper.SetDefault("block-size", 0)
	viper.SetDefault("parallel", workload.DefaultParallelism)
	viper.SetDefault("pooled-blocks", workload.DefaultPooledBlocks)
	viper.SetDefault("invariant-checks", false)
	viper.SetDefault("fail-fast", false)
	viper.SetDefault("metrics", false)
	viper.SetDefault("logfile", "")
	viper.SetDefault("logformat", logger.LogFormatText)
	viper.SetDefault("log-max-size", logger.DefaultLogMaxSizeMB)
	viper.SetDefault("log-max-age", logger.DefaultLogMaxAgeDays)
	viper.SetDefault("log-max-backups", logger.DefaultLogMaxBackups)
	viper.SetDefault("scenarios", DefaultScenarios)
	viper.SetDefault("ops", DefaultOperations)
	viper.SetDefault("iterations", DefaultIterations)
	viper.SetDefault("seed", DefaultSeed)
	viper.SetDefault("save", "")
	viper.SetDefault("progress", true)
}
