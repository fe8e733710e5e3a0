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
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	elements := []string{"one", "two"}
	getRow := func(i int) []string { return []string{elements[i]} }

	var out bytes.Buffer
	PrintTable(&out, []string{"Scenario"}, len(elements), getRow, "")
	require.Contains(t, out.String(), "one")
	require.Contains(t, out.String(), "two")
	require.Contains(t, out.String(), "2 row(s)")
	require.Contains(t, out.String(), "Scenario")

	elements[1] = "three"
	out.Reset()
	PrintTable(&out, []string{"Scenario"}, len(elements), getRow, "2 scenarios")
	require.Contains(t, out.String(), "three")
	require.Contains(t, out.String(), "2 scenarios")
}

func TestPrintTableZeroElements(t *testing.T) {
	var out bytes.Buffer
	PrintTable(&out, []string{"Scenario"}, 0, nil, "")
	require.Empty(t, out.String())
}

func TestPrintTableZeroColumns(t *testing.T) {
	var out bytes.Buffer
	PrintTable(&out, nil, 2, func(int) []string { return []string{"x"} }, "")
	require.Empty(t, out.String())
}

func TestFormatByteSize(t *testing.T) {
	require.Equal(t, "0 B", FormatByteSize(0))
	require.Equal(t, "1.0 KiB", FormatByteSize(1024))
	require.Equal(t, "1.5 MiB", FormatByteSize(1536*1024))
	require.Equal(t, "1,234,567", FormatCount(1234567))
}

func TestStatus(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	require.Equal(t, "PASS", Status(true))
	require.Equal(t, "FAIL", Status(false))
}

func TestQuitToStdErr(t *testing.T) {
	var out bytes.Buffer
	stderr = &out
	defer func() { stderr = os.Stderr }()

	code := -1
	OverrideQuitter(func(c int) { code = c })
	defer OverrideQuitter(os.Exit)

	QuitToStdErr(errors.New("scenario file not found"))
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "scenario file not found")
}

func TestPrintTablePadsShortRows(t *testing.T) {
	var out bytes.Buffer
	PrintTable(&out, []string{"Scenario", "Status"}, 1, func(int) []string { return []string{"fifo"} }, "")
	require.Contains(t, out.String(), "fifo")
	require.Contains(t, out.String(), "Status")
	require.Contains(t, out.String(), "1 row(s)")
}
