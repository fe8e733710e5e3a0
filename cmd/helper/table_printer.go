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
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// PrintTable renders nbRows rows produced by getRow under cols, numbering
// them from 1. Short rows are padded. The caption is printed under the
// table and defaults to the row count. Nothing is printed without rows or
// columns.
func PrintTable(
	w io.Writer,
	cols []string,
	nbRows int,
	getRow func(int) []string,
	caption string,
) {
	if nbRows == 0 || len(cols) == 0 {
		return
	}

	if caption == "" {
		caption = fmt.Sprintf("%d row(s)", nbRows)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"#"}, cols...))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCaption(true, caption)

	for i := 0; i < nbRows; i++ {
		cells := make([]string, len(cols)+1)
		cells[0] = strconv.Itoa(i + 1)
		copy(cells[1:], getRow(i))

		table.Append(cells)
	}

	table.Render()
}
