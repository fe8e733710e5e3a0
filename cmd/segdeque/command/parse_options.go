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

	"github.com/codenotary/segdeque/embedded/logger"
	"github.com/codenotary/segdeque/pkg/workload"
	"github.com/spf13/viper"
)

type cliOptions struct {
	workload *workload.Options
	logger   logger.Logger
	metrics  bool
}

func parseOptions(stderr io.Writer) (*cliOptions, error) {
	log, err := logger.NewLogger(&logger.Options{
		Name:          "segdeque",
		Level:         logger.LogLevelFromEnvironment(),
		Output:        stderr,
		LogFormat:     viper.GetString("logformat"),
		LogFile:       viper.GetString("logfile"),
		LogMaxSizeMB:  viper.GetInt("log-max-size"),
		LogMaxAgeDays: viper.GetInt("log-max-age"),
		LogMaxBackups: viper.GetInt("log-max-backups"),
	})
	if err != nil {
		return nil, err
	}

	metricsEnabled := viper.GetBool("metrics")

	opts := workload.DefaultOptions().
		WithParallelism(viper.GetInt("parallel")).
		WithPooledBlocks(viper.GetInt("pooled-blocks")).
		WithInvariantChecks(viper.GetBool("invariant-checks")).
		WithFailFast(viper.GetBool("fail-fast")).
		WithPrometheus(metricsEnabled).
		WithLogger(log)

	if bs := viper.GetInt("block-size"); bs != 0 {
		opts.WithDefaultBlockSize(bs)
	}

	if err := opts.Validate(); err != nil {
		log.Close()
		return nil, err
	}

	return &cliOptions{
		workload: opts,
		logger:   log,
		metrics:  metricsEnabled,
	}, nil
}
