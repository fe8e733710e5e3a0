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

package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X".
var (
	App     string
	Version string
	Commit  string
	BuiltBy string
	// BuiltAt is a unix timestamp.
	BuiltAt string
)

// Info is the build information of the running binary.
type Info struct {
	App       string
	Version   string
	Commit    string
	BuiltBy   string
	BuiltAt   time.Time
	GoVersion string
}

// Current returns the build information. The second result is false when
// the binary was built without a version.
func Current() (Info, bool) {
	info := Info{
		App:       App,
		Version:   Version,
		Commit:    Commit,
		BuiltBy:   BuiltBy,
		GoVersion: runtime.Version(),
	}

	if secs, err := strconv.ParseInt(BuiltAt, 10, 64); err == nil {
		info.BuiltAt = time.Unix(secs, 0).UTC()
	}

	return info, App != "" && Version != ""
}

func (i Info) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s", i.App, i.Version)

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "\n%-8s: %s", label, value)
		}
	}

	field("Commit", i.Commit)
	field("Built by", i.BuiltBy)
	if !i.BuiltAt.IsZero() {
		field("Built at", i.BuiltAt.Format(time.RFC1123))
	}
	field("Go", i.GoVersion)

	return sb.String()
}

func VersionStr() string {
	info, ok := Current()
	if !ok {
		return "no version info available"
	}
	return info.String()
}

// VersionCmd returns the version command. With --short only the version
// number is printed.
func VersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if info, ok := Current(); ok && short {
				fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), VersionStr())
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print the version number only")

	return cmd
}
