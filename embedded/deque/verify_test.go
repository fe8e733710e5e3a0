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

func TestVerifyHealthyDeque(t *testing.T) {
	d := newTestDeque(t, 4, sequence(0, 50)...)
	require.NoError(t, d.Verify())

	d.Release()
	require.NoError(t, d.Verify())
}

func TestVerifyReportsEveryViolation(t *testing.T) {
	d, err := New(DefaultOptions[int]().WithBlockSize(4))
	require.NoError(t, err)

	require.NoError(t, d.PushBack(1))
	require.NoError(t, d.PushBack(2))

	d.size = 5
	d.blocks[0][0] = 42

	err = d.Verify()
	require.ErrorIs(t, err, ErrInvariantViolated)

	var violations *Violations
	require.True(t, errors.As(err, &violations))
	require.Len(t, violations.Errors(), 2)
}

func TestVerifyEmptyRangeOffCenter(t *testing.T) {
	d, err := New(DefaultOptions[int]().WithBlockSize(4))
	require.NoError(t, err)

	d.begin = position{block: 0, index: 1}
	d.end = d.begin

	require.ErrorIs(t, d.Verify(), ErrInvariantViolated)
}

func TestInvariantChecksPanic(t *testing.T) {
	d := newTestDeque(t, 4, 1, 2, 3)

	d.size = 10

	require.Panics(t, func() { _ = d.PushBack(4) })
}

func TestViolations(t *testing.T) {
	v := &Violations{}
	require.False(t, v.HasErrors())
	require.NoError(t, v.Reduce())

	v.Append(nil)
	require.False(t, v.HasErrors())

	v.Append(ErrIndexOutOfRange)
	require.True(t, v.HasErrors())
	require.ErrorIs(t, v.Reduce(), ErrIndexOutOfRange)
	require.False(t, errors.Is(v, ErrCopyFailed))
	require.Contains(t, v.Error(), "index out of range")
}
