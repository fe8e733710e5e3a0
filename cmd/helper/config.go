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
	"fmt"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config locates and loads the configuration file of a command. Settings
// come from flags, then NAME_* environment variables, then the file.
type Config struct {
	Name  string
	CfgFn string
}

// Init registers the config search path and environment bindings.
func (c *Config) Init(name string) error {
	c.Name = name

	if c.CfgFn != "" {
		viper.SetConfigFile(c.CfgFn)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath("configs")
		if runtime.GOOS != "windows" {
			viper.AddConfigPath("/etc/" + name)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(name)
	}

	viper.SetEnvPrefix(strings.ToUpper(name))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return nil
}

// LoadConfig reads the file named by the --config flag, or the first file
// found in the search path. A missing file is only an error when it was
// requested explicitly.
func (c *Config) LoadConfig(cmd *cobra.Command) error {
	cfgFn, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if cfgFn != "" {
		c.CfgFn = cfgFn
		viper.SetConfigFile(cfgFn)
	}

	err = viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && cfgFn == "" {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}

	c.CfgFn = viper.ConfigFileUsed()
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", c.CfgFn)

	return nil
}

// BindFlags binds every flag of the given sets to the viper key of the
// same name.
func BindFlags(sets ...*pflag.FlagSet) error {
	for _, fs := range sets {
		if err := viper.BindPFlags(fs); err != nil {
			return err
		}
	}
	return nil
}
