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
	"github.com/fatih/color"
)

var (
	Passed = color.New(color.FgHiGreen)
	Failed = color.New(color.FgHiRed, color.Bold)
	Notice = color.New(color.FgHiYellow)
)

// Status renders a colored PASS/FAIL label.
func Status(ok bool) string {
	if ok {
		return Passed.Sprint("PASS")
	}
	return Failed.Sprint("FAIL")
}
