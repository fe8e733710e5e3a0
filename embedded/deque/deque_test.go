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
	"fmt"
	"testing"

	"github.com/codenotary/segdeque/embedded/deque/dequetest"
	"github.com/codenotary/segdeque/embedded/logger"
	"github.com/stretchr/testify/require"
)

func testOptions[T any](blockSize int) *Options[T] {
	return DefaultOptions[T]().
		WithBlockSize(blockSize).
		WithLogger(logger.NewNopLogger()).
		WithInvariantChecks(true)
}

func newTestDeque(t *testing.T, blockSize int, values ...int) *Deque[int] {
	d, err := New(testOptions[int](blockSize))
	require.NoError(t, err)

	for _, v := range values {
		require.NoError(t, d.PushBack(v))
	}

	return d
}

func sequence(from, to int) []int {
	s := make([]int, 0, to-from)
	for v := from; v < to; v++ {
		s = append(s, v)
	}
	return s
}

func requireNoViolations[T any](t *testing.T, p *dequetest.TrackingProvider[T]) {
	t.Helper()
	require.Empty(t, p.Violations())
}

func TestNewEmptyDeque(t *testing.T) {
	d, err := New(testOptions[int](10))
	require.NoError(t, err)

	require.Zero(t, d.Len())
	require.True(t, d.Empty())
	require.True(t, d.Begin().Equal(d.End()))
	require.Equal(t, Stats{
		BlockSize:  10,
		Blocks:     DefaultInitialBlocks,
		FrontSlack: 25,
		BackSlack:  25,
	}, d.Stats())
	require.NoError(t, d.Verify())
}

func TestNewWithInvalidOptions(t *testing.T) {
	_, err := New[int](nil)
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = New(testOptions[int](0))
	require.ErrorIs(t, err, ErrInvalidOptions)
	require.ErrorIs(t, err, ErrIllegalArguments)

	_, err = NewFilled(-1, 0, testOptions[int](4))
	require.ErrorIs(t, err, ErrIllegalArguments)
}

func TestNewFilled(t *testing.T) {
	filled, err := NewFilled(100, 1, testOptions[int](10))
	require.NoError(t, err)
	require.Equal(t, 100, filled.Len())

	pushed := newTestDeque(t, 10)
	for i := 0; i < 100; i++ {
		require.NoError(t, pushed.PushBack(1))
	}

	require.True(t, Equal(filled, pushed))
	require.Equal(t, Stats{
		Len:        100,
		BlockSize:  10,
		Blocks:     13,
		FrontSlack: 15,
		BackSlack:  15,
	}, filled.Stats())
}

func TestNewFilledCentersOddCountsTowardsTheFront(t *testing.T) {
	d, err := NewFilled(3, "x", testOptions[string](10))
	require.NoError(t, err)

	stats := d.Stats()
	require.Equal(t, 5, stats.Blocks)
	require.Equal(t, 23, stats.FrontSlack)
	require.Equal(t, 24, stats.BackSlack)
}

func TestNewFilledEmpty(t *testing.T) {
	d, err := NewFilled(0, 7, testOptions[int](10))
	require.NoError(t, err)
	require.True(t, d.Empty())
	require.Equal(t, DefaultInitialBlocks, d.Stats().Blocks)
}

func TestNewFromSlice(t *testing.T) {
	values := sequence(0, 57)

	d, err := NewFromSlice(values, testOptions[int](8))
	require.NoError(t, err)
	require.Equal(t, values, d.ToSlice())

	values[0] = -1
	require.Zero(t, d.Front())
}

func TestNewFilledAllocationFailure(t *testing.T) {
	provider := dequetest.NewTrackingProvider[int]()
	provider.FailAfter(3)

	_, err := NewFilled(100, 1, testOptions[int](10).WithProvider(provider))
	require.ErrorIs(t, err, ErrAllocationFailed)
	require.ErrorIs(t, err, dequetest.ErrInjectedFailure)

	require.Zero(t, provider.Outstanding())
	requireNoViolations(t, provider)
}

func TestNewFilledCopyFailure(t *testing.T) {
	provider := dequetest.NewTrackingProvider[int]()
	errBoom := errors.New("boom")

	copies := 0
	opts := testOptions[int](10).
		WithProvider(provider).
		WithCopyFunc(func(v int) (int, error) {
			copies++
			if copies == 42 {
				return 0, errBoom
			}
			return v, nil
		})

	_, err := NewFilled(100, 1, opts)
	require.ErrorIs(t, err, ErrCopyFailed)
	require.ErrorIs(t, err, errBoom)

	require.Zero(t, provider.Outstanding())
	require.Zero(t, provider.Live())
	requireNoViolations(t, provider)
}

func TestAccess(t *testing.T) {
	d := newTestDeque(t, 4, sequence(0, 20)...)

	for i := 0; i < d.Len(); i++ {
		v, err := d.At(i)
		require.NoError(t, err)
		require.Equal(t, d.Get(i), v)
		require.Equal(t, i, v)
	}

	for _, i := range []int{-1, 20, 21, 100} {
		t.Run(fmt.Sprintf("at %d", i), func(t *testing.T) {
			_, err := d.At(i)
			require.ErrorIs(t, err, ErrIndexOutOfRange)

			err = d.SetAt(i, 0)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}

	require.Equal(t, 0, d.Front())
	require.Equal(t, 19, d.Back())

	d.Set(5, 50)
	require.NoError(t, d.SetAt(6, 60))
	require.Equal(t, 50, d.Get(5))
	require.Equal(t, 60, d.Get(6))
}

func TestFrontBackOnEmptyDeque(t *testing.T) {
	d := newTestDeque(t, 4)

	require.PanicsWithValue(t, "deque: Front on empty deque", func() { d.Front() })
	require.PanicsWithValue(t, "deque: Back on empty deque", func() { d.Back() })
}

func TestClone(t *testing.T) {
	src := newTestDeque(t, 10, sequence(1, 11)...)

	c, err := src.Clone()
	require.NoError(t, err)
	require.True(t, Equal(src, c))

	// exactly the span of the source, same alignment
	require.Equal(t, Stats{
		Len:        10,
		BlockSize:  10,
		Blocks:     2,
		FrontSlack: 5,
		BackSlack:  5,
	}, c.Stats())

	c.Set(0, 100)
	require.NoError(t, c.PushFront(-1))
	require.Equal(t, 1, src.Front())
	require.Equal(t, 10, src.Len())

	src.Set(9, 0)
	require.Equal(t, 10, c.Back())
}

func TestCloneEmpty(t *testing.T) {
	src := newTestDeque(t, 10)

	c, err := src.Clone()
	require.NoError(t, err)
	require.True(t, c.Empty())
	require.Equal(t, DefaultInitialBlocks, c.Stats().Blocks)
}

func TestCloneCopyFailureReleasesBlocks(t *testing.T) {
	provider := dequetest.NewTrackingProvider[int]()
	errBoom := errors.New("boom")

	failing := false
	copies := 0
	opts := testOptions[int](4).
		WithProvider(provider).
		WithCopyFunc(func(v int) (int, error) {
			if failing {
				copies++
				if copies == 7 {
					return 0, errBoom
				}
			}
			return v, nil
		})

	src, err := NewFromSlice(sequence(0, 30), opts)
	require.NoError(t, err)

	outstanding := provider.Outstanding()
	live := provider.Live()

	failing = true

	_, err = src.Clone()
	require.ErrorIs(t, err, ErrCopyFailed)
	require.Equal(t, outstanding, provider.Outstanding())
	require.Equal(t, live, provider.Live())
	requireNoViolations(t, provider)
}

func TestCopyFromReusesStorage(t *testing.T) {
	dst := newTestDeque(t, 10, 1, 2, 3)
	src := newTestDeque(t, 4, sequence(10, 17)...)

	require.NoError(t, dst.CopyFrom(src))
	require.True(t, Equal(dst, src))

	require.Equal(t, Stats{
		Len:        7,
		BlockSize:  10,
		Blocks:     5,
		FrontSlack: 21,
		BackSlack:  22,
	}, dst.Stats())

	dst.Set(0, -1)
	require.Equal(t, 10, src.Front())
}

func TestCopyFromReallocates(t *testing.T) {
	provider := dequetest.NewTrackingProvider[int]()

	dst, err := New(testOptions[int](4).WithProvider(provider).WithInitialBlocks(1))
	require.NoError(t, err)
	require.NoError(t, dst.PushBack(1))

	src := newTestDeque(t, 4, sequence(0, 10)...)

	require.NoError(t, dst.CopyFrom(src))
	require.True(t, Equal(dst, src))
	require.Equal(t, 1, dst.Stats().Reallocations)

	require.Equal(t, dst.Stats().Blocks, provider.Outstanding())
	require.Equal(t, 10, provider.Live())
	requireNoViolations(t, provider)
}

func TestCopyFromShrinking(t *testing.T) {
	provider := dequetest.NewTrackingProvider[int]()

	dst, err := NewFromSlice(sequence(0, 40), testOptions[int](4).WithProvider(provider))
	require.NoError(t, err)

	src := newTestDeque(t, 4, 7, 8)

	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, []int{7, 8}, dst.ToSlice())
	require.Equal(t, 2, provider.Live())
	requireNoViolations(t, provider)

	require.NoError(t, dst.CopyFrom(newTestDeque(t, 4)))
	require.True(t, dst.Empty())
	require.Zero(t, provider.Live())
	requireNoViolations(t, provider)
}

func TestCopyFromSelf(t *testing.T) {
	d := newTestDeque(t, 4, 1, 2, 3)

	require.NoError(t, d.CopyFrom(d))
	require.Equal(t, []int{1, 2, 3}, d.ToSlice())
}

func TestCopyFromCopyFailureLeavesTargetUnchanged(t *testing.T) {
	errBoom := errors.New("boom")

	for _, initialBlocks := range []int{1, DefaultInitialBlocks} {
		t.Run(fmt.Sprintf("initial blocks %d", initialBlocks), func(t *testing.T) {
			provider := dequetest.NewTrackingProvider[int]()

			copies := 0
			opts := testOptions[int](4).
				WithInitialBlocks(initialBlocks).
				WithProvider(provider).
				WithCopyFunc(func(v int) (int, error) {
					copies++
					if copies == 3 {
						return 0, errBoom
					}
					return v, nil
				})

			dst, err := New(opts)
			require.NoError(t, err)
			require.NoError(t, dst.PushBack(-1))
			require.NoError(t, dst.PushBack(-2))

			stats := dst.Stats()
			outstanding := provider.Outstanding()

			src := newTestDeque(t, 4, sequence(0, 6)...)

			err = dst.CopyFrom(src)
			require.ErrorIs(t, err, ErrCopyFailed)

			require.Equal(t, []int{-1, -2}, dst.ToSlice())
			require.Equal(t, stats, dst.Stats())
			require.Equal(t, outstanding, provider.Outstanding())
			requireNoViolations(t, provider)
		})
	}
}

func TestRelease(t *testing.T) {
	provider := dequetest.NewTrackingProvider[int]()

	d, err := NewFromSlice(sequence(0, 33), testOptions[int](4).WithProvider(provider))
	require.NoError(t, err)

	d.Release()
	require.Zero(t, provider.Outstanding())
	require.Zero(t, provider.Live())
	require.Zero(t, d.Len())
	require.Zero(t, d.Stats().Blocks)

	d.Release()
	require.Zero(t, provider.Outstanding())
	requireNoViolations(t, provider)

	require.NoError(t, d.PushBack(1))
	require.NoError(t, d.PushFront(0))
	require.Equal(t, []int{0, 1}, d.ToSlice())

	d.Release()
	require.Zero(t, provider.Outstanding())
	requireNoViolations(t, provider)
}

func TestReleaseEmpty(t *testing.T) {
	provider := dequetest.NewTrackingProvider[string]()

	d, err := New(testOptions[string](4).WithProvider(provider))
	require.NoError(t, err)
	require.Equal(t, DefaultInitialBlocks, provider.Outstanding())

	d.Release()
	require.Zero(t, provider.Outstanding())
	require.Equal(t, DefaultInitialBlocks, provider.Deallocations())
}

func TestSwap(t *testing.T) {
	a := newTestDeque(t, 4, 1, 2, 3)
	b := newTestDeque(t, 8, sequence(10, 30)...)

	aStats, bStats := a.Stats(), b.Stats()

	a.Swap(b)

	require.Equal(t, sequence(10, 30), a.ToSlice())
	require.Equal(t, []int{1, 2, 3}, b.ToSlice())
	require.Equal(t, bStats, a.Stats())
	require.Equal(t, aStats, b.Stats())

	require.NoError(t, a.PushBack(30))
	require.NoError(t, b.PushFront(0))
	require.Equal(t, 21, a.Len())
	require.Equal(t, []int{0, 1, 2, 3}, b.ToSlice())
}
