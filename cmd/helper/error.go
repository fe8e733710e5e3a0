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
	"io"
	"os"
)

var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// QuitToStdErr prints msg on stderr in the failure color and exits with
// status 1.
func QuitToStdErr(msg interface{}) {
	Failed.Fprintln(stderr, msg)
	exit(1)
}

// OverrideQuitter replaces the function used to exit the process.
func OverrideQuitter(quitter func(int)) {
	exit = quitter
}
