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

package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newConfigCmd(c *Config) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&c.CfgFn, "config", "", "config file")
	return cmd
}

func TestConfigLoad(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	fn := filepath.Join(t.TempDir(), "segdeque.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("block-size: 12\nparallel: 3\n"), 0644))

	c := Config{}
	require.NoError(t, c.Init("segdeque"))

	cmd := newConfigCmd(&c)
	require.NoError(t, cmd.Flags().Set("config", fn))

	require.NoError(t, c.LoadConfig(cmd))
	require.Equal(t, fn, c.CfgFn)
	require.Equal(t, 12, viper.GetInt("block-size"))
	require.Equal(t, 3, viper.GetInt("parallel"))
}

func TestConfigEnvironment(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("SEGDEQUE_BLOCK_SIZE", "21")

	c := Config{}
	require.NoError(t, c.Init("segdeque"))
	require.Equal(t, "segdeque", c.Name)
	require.Equal(t, 21, viper.GetInt("block-size"))
}

func TestConfigLoadMissingExplicitFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c := Config{}
	require.NoError(t, c.Init("segdeque"))

	cmd := newConfigCmd(&c)
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")))

	require.Error(t, c.LoadConfig(cmd))
}

func TestConfigLoadWithoutFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c := Config{}
	require.NoError(t, c.Init("segdeque-test-without-file"))

	require.NoError(t, c.LoadConfig(newConfigCmd(&c)))
}

func TestConfigLoadWithoutFlag(t *testing.T) {
	c := Config{}
	require.Error(t, c.LoadConfig(&cobra.Command{}))
}

func TestBindFlags(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cmd := &cobra.Command{}
	cmd.Flags().Int("parallel", 4, "")
	cmd.PersistentFlags().Bool("metrics", false, "")

	require.NoError(t, BindFlags(cmd.Flags(), cmd.PersistentFlags()))
	require.Equal(t, 4, viper.GetInt("parallel"))

	require.NoError(t, cmd.Flags().Set("parallel", "9"))
	require.Equal(t, 9, viper.GetInt("parallel"))
	require.False(t, viper.GetBool("metrics"))
}
