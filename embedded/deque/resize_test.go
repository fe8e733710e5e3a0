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

package deque

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResizeRoundTrip(t *testing.T) {
	for _, n := range []int{17, 18, 40, 200} {
		original := sequence(0, 17)
		d := newTestDeque(t, 4, original...)

		require.NoError(t, d.Resize(n, -1))
		require.Equal(t, n, d.Len())

		for i := 17; i < n; i++ {
			require.Equal(t, -1, d.Get(i))
		}

		require.NoError(t, d.Resize(17, 0))
		require.Equal(t, original, d.ToSlice())
	}
}

func TestResizeShrinks(t *testing.T) {
	d, provider := newTrackedDeque(t, 4)
	for _, v := range sequence(0, 30) {
		require.NoError(t, d.PushBack(v))
	}

	require.NoError(t, d.Resize(7, 0))
	require.Equal(t, sequence(0, 7), d.ToSlice())
	require.Equal(t, 7, provider.Live())

	require.NoError(t, d.Resize(0, 0))
	require.True(t, d.Empty())
	require.Zero(t, provider.Live())
	requireNoViolations(t, provider)
}

func TestResizeNegative(t *testing.T) {
	d := newTestDeque(t, 4, 1)

	require.ErrorIs(t, d.Resize(-1, 0), ErrIllegalArguments)
	require.Equal(t, 1, d.Len())
}

func TestResizeCopyFailure(t *testing.T) {
	errBoom := errors.New("boom")
	copies := 0

	d, err := New(testOptions[int](4).WithCopyFunc(func(v int) (int, error) {
		copies++
		if copies == 10 {
			return 0, errBoom
		}
		return v, nil
	}))
	require.NoError(t, err)
	require.NoError(t, d.PushBack(1))

	err = d.Resize(50, 2)
	require.ErrorIs(t, err, ErrCopyFailed)
	require.Equal(t, []int{1}, d.ToSlice())
	require.NoError(t, d.Verify())
}

func TestClear(t *testing.T) {
	d, provider := newTrackedDeque(t, 4)
	for _, v := range sequence(0, 30) {
		require.NoError(t, d.PushFront(v))
	}

	blocks := d.Stats().Blocks

	d.Clear()
	require.True(t, d.Empty())
	require.Equal(t, blocks, d.Stats().Blocks)
	require.Zero(t, provider.Live())

	d.Clear()
	require.True(t, d.Empty())
	requireNoViolations(t, provider)
}
