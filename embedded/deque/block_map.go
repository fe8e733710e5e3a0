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

// centeredBegin returns where count slots start when centered in a map of
// mapLen blocks. On odd counts the extra slot sits in front of the center.
func centeredBegin(mapLen, count, bs int) position {
	total := mapLen * bs
	return positionAt(total/2-(count+1)/2, bs)
}

func fitsCentered(mapLen, count, bs int) bool {
	total := mapLen * bs
	first := total/2 - (count+1)/2
	return first >= 0 && first+count <= total
}

// allocateBlocks obtains n blocks from the provider. Either every block is
// returned or none is: on failure the blocks already obtained are handed
// back before the error is reported.
func (d *Deque[T]) allocateBlocks(n int) ([][]T, error) {
	if n == 0 {
		return nil, nil
	}

	blocks := make([][]T, 0, n)

	for len(blocks) < n {
		block, err := d.opts.provider.Allocate(d.bs)
		if err == nil && len(block) != d.bs {
			d.opts.provider.Deallocate(block)
			err = fmt.Errorf("%w: got %d slots, expected %d", ErrProviderMismatch, len(block), d.bs)
		}
		if err != nil {
			d.deallocateBlocks(blocks)

			d.opts.metrics.IncAllocationFailures()
			d.opts.logger.Warningf("%s: allocating %d blocks failed after %d: %v", d.opts.name, n, len(blocks), err)

			return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
		}

		blocks = append(blocks, block)
	}

	d.opts.metrics.AddBlocksAllocated(n)

	return blocks, nil
}

func (d *Deque[T]) deallocateBlocks(blocks [][]T) {
	for i, block := range blocks {
		d.opts.provider.Deallocate(block)
		blocks[i] = nil
	}
}

func (d *Deque[T]) releaseBlocks(blocks [][]T) {
	if len(blocks) == 0 {
		return
	}

	d.deallocateBlocks(blocks)
	d.opts.metrics.AddBlocksReleased(len(blocks))
}

// liveSpan returns the first map ordinal holding live elements and the
// number of blocks the live range touches.
func (d *Deque[T]) liveSpan() (first, count int) {
	if d.size == 0 {
		return 0, 0
	}

	last := d.end.prev(d.bs).block

	return d.begin.block, last - d.begin.block + 1
}

func (d *Deque[T]) frontSlack() int {
	return d.begin.offset(d.bs)
}

func (d *Deque[T]) backSlack() int {
	return len(d.blocks)*d.bs - d.end.offset(d.bs)
}

// reserveFront makes room for n more elements in front of begin.
func (d *Deque[T]) reserveFront(n int) error {
	if d.frontSlack() >= n {
		return nil
	}
	return d.grow(n, 0)
}

// reserveBack makes room for n more elements past end.
func (d *Deque[T]) reserveBack(n int) error {
	if d.backSlack() >= n {
		return nil
	}
	return d.grow(0, n)
}

// grow replaces the block map with one twice the size required to hold the
// live blocks plus the requested free slots on each side. Live blocks are
// moved by handle and centered, the odd slack block going to the back.
// Reserve slots reuse the old map's unused blocks before asking the
// provider for new ones. Nothing is modified unless every block needed was
// obtained.
func (d *Deque[T]) grow(needFront, needBack int) error {
	liveFirst, liveCount := d.liveSpan()

	var required int

	if liveCount == 0 {
		required = max(ceilDiv(needFront, d.bs), ceilDiv(needBack, d.bs), 1)
	} else {
		tailFree := (liveFirst+liveCount)*d.bs - d.end.offset(d.bs)

		extraFront := ceilDiv(max(needFront-d.begin.index, 0), d.bs)
		extraBack := ceilDiv(max(needBack-tailFree, 0), d.bs)

		required = liveCount + extraFront + extraBack
	}

	newLen := 2 * required
	spares := len(d.blocks) - liveCount
	reserveCount := newLen - liveCount

	fresh, err := d.allocateBlocks(max(reserveCount-spares, 0))
	if err != nil {
		return err
	}

	frontPad := (newLen - liveCount) / 2

	newBlocks := make([][]T, newLen)
	copy(newBlocks[frontPad:], d.blocks[liveFirst:liveFirst+liveCount])

	spareBlocks := make([][]T, 0, spares)
	spareBlocks = append(spareBlocks, d.blocks[:liveFirst]...)
	spareBlocks = append(spareBlocks, d.blocks[liveFirst+liveCount:]...)

	fill := func(i int) {
		if len(spareBlocks) > 0 {
			newBlocks[i] = spareBlocks[len(spareBlocks)-1]
			spareBlocks = spareBlocks[:len(spareBlocks)-1]
			return
		}
		newBlocks[i] = fresh[len(fresh)-1]
		fresh = fresh[:len(fresh)-1]
	}

	for i := 0; i < frontPad; i++ {
		fill(i)
	}
	for i := frontPad + liveCount; i < newLen; i++ {
		fill(i)
	}

	d.releaseBlocks(spareBlocks)

	oldLen := len(d.blocks)

	if liveCount == 0 {
		d.blocks = newBlocks
		d.recenter()
	} else {
		shift := frontPad - liveFirst
		d.blocks = newBlocks
		d.begin.block += shift
		d.end.block += shift
	}

	d.reallocations++

	d.opts.metrics.IncMapReallocations()
	d.opts.metrics.SetMapBlocks(newLen)
	d.opts.metrics.SetLength(d.size)

	d.opts.logger.Debugf("%s: block map reallocated from %d to %d blocks (length %d)", d.opts.name, oldLen, newLen, d.size)

	return nil
}

// recenter moves an empty range to the middle of the map.
func (d *Deque[T]) recenter() {
	d.begin = centeredBegin(len(d.blocks), 0, d.bs)
	d.end = d.begin
}

// ShrinkToFit returns every block not touched by the live range to the
// provider, keeping at most one reserve block on each side.
func (d *Deque[T]) ShrinkToFit() {
	liveFirst, liveCount := d.liveSpan()

	keepFront := min(liveFirst, 1)
	keepBack := min(len(d.blocks)-liveFirst-liveCount, 1)

	if liveCount == 0 {
		keepFront, keepBack = 0, 2
	}

	newLen := liveCount + keepFront + keepBack
	if newLen >= len(d.blocks) {
		return
	}

	first := liveFirst - keepFront

	newBlocks := make([][]T, newLen)
	copy(newBlocks, d.blocks[first:first+newLen])

	d.releaseBlocks(d.blocks[:first])
	d.releaseBlocks(d.blocks[first+newLen:])

	oldLen := len(d.blocks)

	d.blocks = newBlocks

	if liveCount == 0 {
		d.recenter()
	} else {
		d.begin.block -= first
		d.end.block -= first
	}

	d.opts.metrics.SetMapBlocks(newLen)
	d.opts.metrics.SetLength(d.size)
	d.opts.logger.Debugf("%s: block map shrunk from %d to %d blocks", d.opts.name, oldLen, newLen)

	d.mutated()
}
