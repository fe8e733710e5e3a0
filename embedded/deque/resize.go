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

// Resize sets the length to n. Trailing elements are destroyed when
// shrinking; copies of v are appended when growing.
func (d *Deque[T]) Resize(n int, v T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrIllegalArguments, n)
	}

	if n <= d.size {
		d.truncate(n)
		return nil
	}

	extra := n - d.size

	err := d.reserveBack(extra)
	if err != nil {
		return err
	}

	err = d.constructCopies(d.end, extra, func(int) T { return v })
	if err != nil {
		return err
	}

	d.end = d.end.add(extra, d.bs)
	d.size = n

	d.mutated()

	return nil
}

// Clear destroys every element. Blocks are kept for reuse.
func (d *Deque[T]) Clear() {
	d.truncate(0)
}

func (d *Deque[T]) truncate(n int) {
	if n == d.size {
		return
	}

	cut := d.size - n

	d.end = d.end.add(-cut, d.bs)
	d.destroyRange(d.end, cut)
	d.size = n

	d.retracted()
}
