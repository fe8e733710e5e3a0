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

// PushBack appends v, growing the block map when the back has no room left.
func (d *Deque[T]) PushBack(v T) error {
	if d.end.block == len(d.blocks) {
		err := d.reserveBack(1)
		if err != nil {
			return err
		}
	}

	d.construct(d.end, v)
	d.end = d.end.next(d.bs)
	d.size++

	d.mutated()

	return nil
}

// PushFront prepends v, growing the block map when the front has no room
// left.
func (d *Deque[T]) PushFront(v T) error {
	if d.begin == (position{}) {
		err := d.reserveFront(1)
		if err != nil {
			return err
		}
	}

	d.begin = d.begin.prev(d.bs)
	d.construct(d.begin, v)
	d.size++

	d.mutated()

	return nil
}

// PopBack removes and returns the last element. It panics on an empty deque.
// The block map is never shrunk.
func (d *Deque[T]) PopBack() T {
	if d.size == 0 {
		panic(fmt.Sprintf(emptyDequeMsg, "PopBack"))
	}

	d.end = d.end.prev(d.bs)
	v := *d.slot(d.end)
	d.destroy(d.end)
	d.size--

	d.retracted()

	return v
}

// PopFront removes and returns the first element. It panics on an empty
// deque. The block map is never shrunk.
func (d *Deque[T]) PopFront() T {
	if d.size == 0 {
		panic(fmt.Sprintf(emptyDequeMsg, "PopFront"))
	}

	v := *d.slot(d.begin)
	d.destroy(d.begin)
	d.begin = d.begin.next(d.bs)
	d.size--

	d.retracted()

	return v
}

func (d *Deque[T]) retracted() {
	if d.size == 0 {
		d.recenter()
	}

	d.mutated()
}
