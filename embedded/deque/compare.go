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
	"cmp"
	"iter"
)

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Deque[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func (d *Deque[T]) EqualFunc(o *Deque[T], eq func(T, T) bool) bool {
	if d.size != o.size {
		return false
	}

	for i, p, q := 0, d.begin, o.begin; i < d.size; i++ {
		if !eq(*d.slot(p), *o.slot(q)) {
			return false
		}
		p, q = p.next(d.bs), q.next(o.bs)
	}

	return true
}

// Compare orders a and b lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Deque[T]) int {
	return a.CompareFunc(b, cmp.Compare[T])
}

// Less reports whether a orders before b lexicographically.
func Less[T cmp.Ordered](a, b *Deque[T]) bool {
	return Compare(a, b) < 0
}

func (d *Deque[T]) CompareFunc(o *Deque[T], cmpFn func(T, T) int) int {
	n := min(d.size, o.size)

	for i, p, q := 0, d.begin, o.begin; i < n; i++ {
		if c := cmpFn(*d.slot(p), *o.slot(q)); c != 0 {
			return c
		}
		p, q = p.next(d.bs), q.next(o.bs)
	}

	return cmp.Compare(d.size, o.size)
}

// All iterates over index-value pairs from front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		p := d.begin
		for i := 0; i < d.size; i++ {
			if !yield(i, *d.slot(p)) {
				return
			}
			p = p.next(d.bs)
		}
	}
}

func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates over index-value pairs from back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		p := d.end
		for i := d.size - 1; i >= 0; i-- {
			p = p.prev(d.bs)
			if !yield(i, *d.slot(p)) {
				return
			}
		}
	}
}

func (d *Deque[T]) ToSlice() []T {
	s := make([]T, 0, d.size)
	for v := range d.Values() {
		s = append(s, v)
	}
	return s
}
