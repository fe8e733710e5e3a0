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

// Iterator is a cursor over the slots of a deque. It is a plain value and
// owns nothing. Any operation that may move elements or reallocate the block
// map (growth, insertion, erasure, resize, assignment, shrink, release)
// invalidates it.
type Iterator[T any] struct {
	d   *Deque[T]
	pos position
}

// Begin returns an iterator at the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{d: d, pos: d.begin}
}

// End returns an iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{d: d, pos: d.end}
}

// IteratorAt returns an iterator at logical index i, which may be Len().
func (d *Deque[T]) IteratorAt(i int) Iterator[T] {
	return Iterator[T]{d: d, pos: d.positionOf(i)}
}

func (it Iterator[T]) Value() T {
	return *it.d.slot(it.pos)
}

func (it Iterator[T]) Set(v T) {
	*it.d.slot(it.pos) = v
}

func (it Iterator[T]) Next() Iterator[T] {
	it.pos = it.pos.next(it.d.bs)
	return it
}

func (it Iterator[T]) Prev() Iterator[T] {
	it.pos = it.pos.prev(it.d.bs)
	return it
}

// Add moves the iterator by n elements; n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos = it.pos.add(n, it.d.bs)
	return it
}

// Distance returns the number of elements from `from` to it.
func (it Iterator[T]) Distance(from Iterator[T]) int {
	return it.pos.distance(from.pos, it.d.bs)
}

// Index returns the logical index of the iterator in its deque.
func (it Iterator[T]) Index() int {
	return it.pos.distance(it.d.begin, it.d.bs)
}

func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.pos == o.pos
}

func (it Iterator[T]) Less(o Iterator[T]) bool {
	return it.pos.less(o.pos)
}

func (it Iterator[T]) Compare(o Iterator[T]) int {
	return it.pos.compare(o.pos)
}

// Valid reports whether the iterator points at a live element.
func (it Iterator[T]) Valid() bool {
	return it.d != nil && !it.pos.less(it.d.begin) && it.pos.less(it.d.end)
}
