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

// position addresses a slot as (block ordinal in the map, index in block).
// The index is always kept in [0, blockSize).
type position struct {
	block int
	index int
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func ceilDiv(a, b int) int {
	return floorDiv(a+b-1, b)
}

func (p position) next(bs int) position {
	p.index++
	if p.index == bs {
		p.block++
		p.index = 0
	}
	return p
}

func (p position) prev(bs int) position {
	if p.index == 0 {
		p.block--
		p.index = bs - 1
		return p
	}
	p.index--
	return p
}

// add moves p by d slots; d may be negative.
func (p position) add(d, bs int) position {
	idx := p.index + d
	p.block += floorDiv(idx, bs)
	p.index = floorMod(idx, bs)
	return p
}

// distance returns p - from, in slots.
func (p position) distance(from position, bs int) int {
	return (p.block-from.block)*bs + (p.index - from.index)
}

func (p position) less(o position) bool {
	if p.block != o.block {
		return p.block < o.block
	}
	return p.index < o.index
}

func (p position) compare(o position) int {
	switch {
	case p.less(o):
		return -1
	case o.less(p):
		return 1
	}
	return 0
}

// offset is the absolute slot number of p within the map.
func (p position) offset(bs int) int {
	return p.block*bs + p.index
}

func positionAt(offset, bs int) position {
	return position{block: floorDiv(offset, bs), index: floorMod(offset, bs)}
}
