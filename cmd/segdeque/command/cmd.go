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
	"github.com/codenotary/segdeque/cmd/version"
	"github.com/spf13/cobra"
)

func Execute() {
	cmd, err := newCommand()
	if err != nil {
		c.QuitToStdErr(err)
	}

	if err := cmd.Execute(); err != nil {
		c.QuitToStdErr(err)
	}
}

func newCommand() (*cobra.Command, error) {
	version.App = "segdeque"

	cl := &Commandline{config: c.Config{Name: "segdeque"}}

	cmd, err := cl.NewRootCmd()
	if err != nil {
		return nil, err
	}

	cmd.AddCommand(cl.newBenchCmd())
	cmd.AddCommand(cl.newReplayCmd())
	cmd.AddCommand(version.VersionCmd())

	return cmd, nil
}
