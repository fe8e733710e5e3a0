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

package dequetest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrInjectedFailure      = errors.New("injected allocation failure")
	ErrUnknownBlock         = errors.New("block not allocated by this provider")
	ErrDoubleConstruct      = errors.New("slot constructed twice")
	ErrDestroyUnconstructed = errors.New("destroy of a slot that was not constructed")
	ErrLeakedSlots          = errors.New("block released with live slots")
)

// TrackingProvider is a block provider for tests. It records which slots of
// every outstanding block hold a constructed value, reports misuse as
// violations and can be told to fail allocations.
type TrackingProvider[T any] struct {
	mutex sync.Mutex

	blocks map[*T]*bitset.BitSet

	allocations   int
	deallocations int
	failAfter     int

	violations []error
}

func NewTrackingProvider[T any]() *TrackingProvider[T] {
	return &TrackingProvider[T]{
		blocks:    make(map[*T]*bitset.BitSet),
		failAfter: -1,
	}
}

// FailAfter lets the next n allocations succeed and fails every one after
// them. A negative n disables fault injection.
func (p *TrackingProvider[T]) FailAfter(n int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if n < 0 {
		p.failAfter = -1
		return
	}

	p.failAfter = p.allocations + n
}

func (p *TrackingProvider[T]) Allocate(slots int) ([]T, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.failAfter >= 0 && p.allocations >= p.failAfter {
		return nil, ErrInjectedFailure
	}

	block := make([]T, slots)

	p.blocks[&block[0]] = bitset.New(uint(slots))
	p.allocations++

	return block, nil
}

func (p *TrackingProvider[T]) Deallocate(block []T) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	live, ok := p.lookup(block)
	if !ok {
		return
	}

	if live.Any() {
		p.violations = append(p.violations, fmt.Errorf("%w: %d slots", ErrLeakedSlots, live.Count()))
	}

	delete(p.blocks, &block[0])
	p.deallocations++
}

func (p *TrackingProvider[T]) Construct(block []T, i int, v T) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	live, ok := p.lookup(block)
	if !ok {
		return
	}

	if live.Test(uint(i)) {
		p.violations = append(p.violations, fmt.Errorf("%w: slot %d", ErrDoubleConstruct, i))
	}

	live.Set(uint(i))
	block[i] = v
}

func (p *TrackingProvider[T]) Destroy(block []T, i int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	live, ok := p.lookup(block)
	if !ok {
		return
	}

	if !live.Test(uint(i)) {
		p.violations = append(p.violations, fmt.Errorf("%w: slot %d", ErrDestroyUnconstructed, i))
	}

	live.Clear(uint(i))

	var zero T
	block[i] = zero
}

func (p *TrackingProvider[T]) lookup(block []T) (*bitset.BitSet, bool) {
	if len(block) == 0 {
		p.violations = append(p.violations, fmt.Errorf("%w: empty block", ErrUnknownBlock))
		return nil, false
	}

	live, ok := p.blocks[&block[0]]
	if !ok {
		p.violations = append(p.violations, ErrUnknownBlock)
	}

	return live, ok
}

// Outstanding returns the number of blocks allocated and not yet released.
func (p *TrackingProvider[T]) Outstanding() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.blocks)
}

// Live returns the number of constructed slots across all blocks.
func (p *TrackingProvider[T]) Live() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var n uint
	for _, live := range p.blocks {
		n += live.Count()
	}

	return int(n)
}

func (p *TrackingProvider[T]) Allocations() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.allocations
}

func (p *TrackingProvider[T]) Deallocations() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.deallocations
}

func (p *TrackingProvider[T]) Violations() []error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return append([]error(nil), p.violations...)
}
