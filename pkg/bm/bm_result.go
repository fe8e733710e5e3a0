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

package bm

import (
	"fmt"
)

type BmResult struct {
	Bm         *Bm
	Time       float64
	Throughput float64
}

func (b BmResult) String() string {
	return fmt.Sprintf(
		`
Name:		%s
Concurrency:	%d
Iterations:	%d
Elapsed t.:	%.2f sec
Throughput:	%.0f ops/sec
`,
		b.Bm.Name, b.Bm.Concurrency, b.Bm.Iterations, b.Time, b.Throughput)
}
