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
	"reflect"
)

// Violations collects every invariant violation found by Verify.
type Violations struct {
	errors []error
}

func (v *Violations) Append(err error) *Violations {
	if err != nil {
		v.errors = append(v.errors, err)
	}

	return v
}

func (v *Violations) appendf(format string, args ...interface{}) {
	v.Append(fmt.Errorf("%w: "+format, append([]interface{}{ErrInvariantViolated}, args...)...))
}

func (v *Violations) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *Violations) Errors() []error {
	return v.errors
}

func (v *Violations) Reduce() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *Violations) Is(target error) bool {
	for _, err := range v.errors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func (v *Violations) Error() string {
	return fmt.Sprintf("%v", v.errors)
}

// Verify checks the structural invariants of the deque and returns a
// *Violations listing all of them that do not hold, or nil.
func (d *Deque[T]) Verify() error {
	v := &Violations{}

	for _, p := range []struct {
		name string
		pos  position
	}{{"begin", d.begin}, {"end", d.end}} {
		if p.pos.index < 0 || p.pos.index >= d.bs {
			v.appendf("%s index %d outside [0, %d)", p.name, p.pos.index, d.bs)
		}
	}

	if d.end.less(d.begin) {
		v.appendf("end %v before begin %v", d.end, d.begin)
	}

	if n := d.end.distance(d.begin, d.bs); n != d.size {
		v.appendf("range spans %d slots but size is %d", n, d.size)
	}

	if d.size > 0 {
		if d.begin.block < 0 || d.begin.block >= len(d.blocks) {
			v.appendf("begin block %d outside map of %d blocks", d.begin.block, len(d.blocks))
		}

		if d.end.block > len(d.blocks) || (d.end.block == len(d.blocks) && d.end.index != 0) {
			v.appendf("end %v past map of %d blocks", d.end, len(d.blocks))
		}
	} else if c := centeredBegin(len(d.blocks), 0, d.bs); d.begin != c || d.end != c {
		v.appendf("empty range at %v, expected %v", d.begin, c)
	}

	for i, block := range d.blocks {
		if len(block) != d.bs {
			v.appendf("block %d holds %d slots, expected %d", i, len(block), d.bs)
			continue
		}

		for j := range block {
			p := position{block: i, index: j}

			if !p.less(d.begin) && p.less(d.end) {
				continue
			}

			if !reflect.ValueOf(&block[j]).Elem().IsZero() {
				v.appendf("slot %v outside the live range is not cleared", p)
			}
		}
	}

	return v.Reduce()
}
