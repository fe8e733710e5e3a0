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
	"fmt"
)

// Deque is a double-ended sequence stored in fixed-size blocks referenced by
// a block map. Pushes and pops at either end are amortized O(1), indexing is
// O(1) and inserting or erasing in the middle moves the elements of the
// shorter side only.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	opts *Options[T]
	bs   int

	blocks [][]T

	begin position
	end   position
	size  int

	reallocations int
}

type Stats struct {
	Len           int
	BlockSize     int
	Blocks        int
	FrontSlack    int
	BackSlack     int
	Reallocations int
}

// New creates an empty deque with a block map of opts.InitialBlocks()
// blocks and the empty range in its middle.
func New[T any](opts *Options[T]) (*Deque[T], error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	d := &Deque[T]{
		opts: opts,
		bs:   opts.blockSize,
	}

	d.blocks, err = d.allocateBlocks(opts.initialBlocks)
	if err != nil {
		return nil, err
	}

	d.recenter()

	d.opts.metrics.SetMapBlocks(len(d.blocks))
	d.mutated()

	return d, nil
}

// NewFilled creates a deque holding count copies of v.
func NewFilled[T any](count int, v T, opts *Options[T]) (*Deque[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrIllegalArguments, count)
	}

	return newSized(count, func(int) T { return v }, opts)
}

// NewFromSlice creates a deque holding copies of values, in order.
func NewFromSlice[T any](values []T, opts *Options[T]) (*Deque[T], error) {
	return newSized(len(values), func(k int) T { return values[k] }, opts)
}

func newSized[T any](count int, valueAt func(int) T, opts *Options[T]) (*Deque[T], error) {
	if count == 0 {
		return New(opts)
	}

	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	d := &Deque[T]{
		opts: opts,
		bs:   opts.blockSize,
	}

	// live blocks, one more for a range straddling block boundaries and a
	// reserve block on each side
	mapLen := max(opts.initialBlocks, ceilDiv(count, d.bs)+3)

	blocks, err := d.allocateBlocks(mapLen)
	if err != nil {
		return nil, err
	}

	d.blocks = blocks
	d.begin = centeredBegin(mapLen, count, d.bs)

	err = d.constructCopies(d.begin, count, valueAt)
	if err != nil {
		d.releaseBlocks(d.blocks)
		return nil, err
	}

	d.end = d.begin.add(count, d.bs)
	d.size = count

	d.opts.metrics.SetMapBlocks(mapLen)
	d.opts.metrics.SetLength(count)
	d.mutated()

	return d, nil
}

func (d *Deque[T]) copyValue(v T) (T, error) {
	if d.opts.copyFn == nil {
		return v, nil
	}

	c, err := d.opts.copyFn(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}

	return c, nil
}

// constructCopies constructs n copies starting at from, taking the k-th
// source value from valueAt. If a copy fails, the slots constructed so far
// are destroyed in reverse order and the error is returned.
func (d *Deque[T]) constructCopies(from position, n int, valueAt func(int) T) error {
	p := from

	for k := 0; k < n; k++ {
		v, err := d.copyValue(valueAt(k))
		if err != nil {
			d.destroyRange(from, k)
			return err
		}

		d.opts.provider.Construct(d.blocks[p.block], p.index, v)
		p = p.next(d.bs)
	}

	return nil
}

// destroyRange destroys n slots starting at from, last slot first.
func (d *Deque[T]) destroyRange(from position, n int) {
	if n == 0 {
		return
	}

	p := from.add(n, d.bs)

	for k := 0; k < n; k++ {
		p = p.prev(d.bs)
		d.opts.provider.Destroy(d.blocks[p.block], p.index)
	}
}

func (d *Deque[T]) construct(p position, v T) {
	d.opts.provider.Construct(d.blocks[p.block], p.index, v)
}

func (d *Deque[T]) destroy(p position) {
	d.opts.provider.Destroy(d.blocks[p.block], p.index)
}

func (d *Deque[T]) slot(p position) *T {
	return &d.blocks[p.block][p.index]
}

func (d *Deque[T]) positionOf(i int) position {
	return d.begin.add(i, d.bs)
}

func (d *Deque[T]) mutated() {
	if !d.opts.invariantChecks {
		return
	}

	err := d.Verify()
	if err != nil {
		panic(err)
	}
}

// Clone returns an independent copy of d. The copy maps exactly the blocks
// spanned by d's elements, with the same in-block alignment.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	if d.size == 0 {
		return New(d.opts)
	}

	c := &Deque[T]{
		opts: d.opts,
		bs:   d.bs,
	}

	blocks, begin, err := c.buildCopy(d)
	if err != nil {
		return nil, err
	}

	c.blocks = blocks
	c.begin = begin
	c.end = begin.add(d.size, c.bs)
	c.size = d.size

	c.opts.metrics.SetMapBlocks(len(blocks))
	c.opts.metrics.SetLength(c.size)
	c.mutated()

	return c, nil
}

// buildCopy allocates storage from d's provider and copies src's elements
// into it, without touching d's current state.
func (d *Deque[T]) buildCopy(src *Deque[T]) ([][]T, position, error) {
	var begin position

	if src.bs == d.bs {
		begin.index = src.begin.index
	}

	blocks, err := d.allocateBlocks(ceilDiv(begin.index+src.size, d.bs))
	if err != nil {
		return nil, position{}, err
	}

	target := &Deque[T]{opts: d.opts, bs: d.bs, blocks: blocks}

	err = target.constructCopies(begin, src.size, src.Get)
	if err != nil {
		d.releaseBlocks(blocks)
		return nil, position{}, err
	}

	return blocks, begin, nil
}

// CopyFrom replaces the contents of d with copies of src's elements.
// Current storage is reused when it can hold src centered; otherwise a new
// map is built and the old storage released afterwards. On error d is left
// unchanged.
func (d *Deque[T]) CopyFrom(src *Deque[T]) error {
	if d == src {
		return nil
	}

	n := src.size

	if len(d.blocks) == 0 || !fitsCentered(len(d.blocks), n, d.bs) {
		blocks, begin, err := d.buildCopy(src)
		if err != nil {
			return err
		}

		d.releaseStorage()

		d.blocks = blocks
		d.begin = begin
		d.end = begin.add(n, d.bs)
		d.size = n

		if n == 0 {
			d.recenter()
		}

		d.reallocations++

		d.opts.metrics.IncMapReallocations()
		d.opts.metrics.SetMapBlocks(len(blocks))
		d.opts.metrics.SetLength(n)
		d.mutated()

		return nil
	}

	valueAt := src.Get

	if d.opts.copyFn != nil {
		staged := make([]T, n)

		for k := range staged {
			v, err := d.copyValue(src.Get(k))
			if err != nil {
				return err
			}
			staged[k] = v
		}

		valueAt = func(k int) T { return staged[k] }
	}

	newBegin := centeredBegin(len(d.blocks), n, d.bs)
	newEnd := newBegin.add(n, d.bs)

	// slots leaving the live range
	for p := d.begin; p.less(d.end); p = p.next(d.bs) {
		if p.less(newBegin) || !p.less(newEnd) {
			d.destroy(p)
		}
	}

	p := newBegin
	for k := 0; k < n; k++ {
		if !p.less(d.begin) && p.less(d.end) {
			*d.slot(p) = valueAt(k)
		} else {
			d.construct(p, valueAt(k))
		}
		p = p.next(d.bs)
	}

	d.begin = newBegin
	d.end = newEnd
	d.size = n

	d.mutated()

	return nil
}

// releaseStorage destroys every element and hands all blocks back to the
// provider.
func (d *Deque[T]) releaseStorage() {
	d.destroyRange(d.begin, d.size)
	d.releaseBlocks(d.blocks)

	d.blocks = nil
	d.begin = position{}
	d.end = position{}
	d.size = 0
}

// Release destroys all elements and returns every block to the provider.
// The deque stays usable: the next push allocates a new map. Calling
// Release more than once is harmless.
func (d *Deque[T]) Release() {
	if d.blocks == nil {
		return
	}

	d.releaseStorage()

	d.opts.metrics.SetMapBlocks(0)
	d.opts.metrics.SetLength(0)

	d.mutated()
}

// Swap exchanges the contents, storage and options of d and other.
func (d *Deque[T]) Swap(other *Deque[T]) {
	*d, *other = *other, *d
}

func (d *Deque[T]) Len() int {
	return d.size
}

func (d *Deque[T]) Empty() bool {
	return d.size == 0
}

// Get returns the element at logical index i. i must be in [0, Len()).
func (d *Deque[T]) Get(i int) T {
	return *d.slot(d.positionOf(i))
}

// At is the bounds-checked version of Get.
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.size {
		var zero T
		return zero, outOfRange(i, d.size)
	}

	return d.Get(i), nil
}

// Set overwrites the element at logical index i. i must be in [0, Len()).
func (d *Deque[T]) Set(i int, v T) {
	*d.slot(d.positionOf(i)) = v
}

func (d *Deque[T]) SetAt(i int, v T) error {
	if i < 0 || i >= d.size {
		return outOfRange(i, d.size)
	}

	d.Set(i, v)

	return nil
}

func (d *Deque[T]) Front() T {
	if d.size == 0 {
		panic(fmt.Sprintf(emptyDequeMsg, "Front"))
	}
	return *d.slot(d.begin)
}

func (d *Deque[T]) Back() T {
	if d.size == 0 {
		panic(fmt.Sprintf(emptyDequeMsg, "Back"))
	}
	return *d.slot(d.end.prev(d.bs))
}

func (d *Deque[T]) Stats() Stats {
	return Stats{
		Len:           d.size,
		BlockSize:     d.bs,
		Blocks:        len(d.blocks),
		FrontSlack:    d.frontSlack(),
		BackSlack:     d.backSlack(),
		Reallocations: d.reallocations,
	}
}
