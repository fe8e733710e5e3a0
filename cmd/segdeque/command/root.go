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
	"github.com/spf13/cobra"
)

func (cl *Commandline) NewRootCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "segdeque",
		Short: "segdeque - replay and benchmark workloads against the segmented deque",
		Long: `segdeque - replay and benchmark workloads against the segmented deque.

Every scenario is replayed against a deque and a plain slice holding the
expected contents; any difference is reported as a failure.

Setting the logging level and other options through environment variables:
- Logging level: LOG_LEVEL={debug|info|warning|error}
- The environment variable names for other settings are derived by prefixing flag names with "SEGDEQUE_"
  e.g SEGDEQUE_BLOCK_SIZE=32 ./segdeque bench.
  Note: flags take precedence over environment variables.
`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cl.ConfigChain(nil),
	}

	cl.setupFlags(cmd)

	if err := c.BindFlags(cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	setupDefaults()

	return cmd, nil
}
