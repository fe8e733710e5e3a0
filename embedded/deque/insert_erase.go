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

// InsertAt inserts v before logical index i, i in [0, Len()]. Elements on
// the side nearer to i are shifted by one to open the gap.
func (d *Deque[T]) InsertAt(i int, v T) error {
	if i < 0 || i > d.size {
		return outOfRange(i, d.size)
	}

	if i <= d.size-i {
		err := d.reserveFront(1)
		if err != nil {
			return err
		}

		nb := d.begin.prev(d.bs)

		if i == 0 {
			d.construct(nb, v)
		} else {
			d.construct(nb, *d.slot(d.begin))

			p := nb.next(d.bs)
			for k := 1; k < i; k++ {
				q := p.next(d.bs)
				*d.slot(p) = *d.slot(q)
				p = q
			}

			*d.slot(p) = v
		}

		d.begin = nb
	} else {
		err := d.reserveBack(1)
		if err != nil {
			return err
		}

		if i == d.size {
			d.construct(d.end, v)
		} else {
			last := d.end.prev(d.bs)
			d.construct(d.end, *d.slot(last))

			p := last
			for k := d.size - 1; k > i; k-- {
				q := p.prev(d.bs)
				*d.slot(p) = *d.slot(q)
				p = q
			}

			*d.slot(p) = v
		}

		d.end = d.end.next(d.bs)
	}

	d.size++

	d.mutated()

	return nil
}

// Insert inserts v before it and returns an iterator at the new element.
func (d *Deque[T]) Insert(it Iterator[T], v T) (Iterator[T], error) {
	i := it.Index()

	err := d.InsertAt(i, v)
	if err != nil {
		return Iterator[T]{}, err
	}

	return d.IteratorAt(i), nil
}

// EraseAt removes the element at logical index i, shifting the shorter side
// to close the gap.
func (d *Deque[T]) EraseAt(i int) error {
	if i < 0 || i >= d.size {
		return outOfRange(i, d.size)
	}

	d.eraseRange(i, i+1)

	return nil
}

// Erase removes the element at it and returns an iterator at the element
// that followed it. it must point at a live element.
func (d *Deque[T]) Erase(it Iterator[T]) Iterator[T] {
	i := it.Index()

	if i < 0 || i >= d.size {
		panic(fmt.Sprintf("deque: Erase: %v", outOfRange(i, d.size)))
	}

	d.eraseRange(i, i+1)

	return d.IteratorAt(i)
}

// EraseRange removes the elements in [first, last) and returns an iterator
// at the element that followed them.
func (d *Deque[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	f, l := first.Index(), last.Index()

	if f < 0 || l > d.size || f > l {
		panic(fmt.Sprintf("deque: EraseRange: %v: [%d, %d) with length %d", ErrIndexOutOfRange, f, l, d.size))
	}

	d.eraseRange(f, l)

	return d.IteratorAt(f)
}

func (d *Deque[T]) eraseRange(f, l int) {
	n := l - f
	if n == 0 {
		return
	}

	if f < d.size-l {
		// move [0, f) forward by n
		for k := f - 1; k >= 0; k-- {
			*d.slot(d.positionOf(k + n)) = *d.slot(d.positionOf(k))
		}

		d.destroyRange(d.begin, n)
		d.begin = d.begin.add(n, d.bs)
	} else {
		// move [l, size) back by n
		for k := l; k < d.size; k++ {
			*d.slot(d.positionOf(k - n)) = *d.slot(d.positionOf(k))
		}

		d.end = d.end.add(-n, d.bs)
		d.destroyRange(d.end, n)
	}

	d.size -= n

	d.retracted()
}
