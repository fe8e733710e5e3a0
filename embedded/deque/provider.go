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
	"sync"
)

var ErrBlockLimitReached = errors.New("block limit reached")

// Provider supplies the storage blocks of a deque and the slot-level
// construct/destroy operations applied to them.
//
// Allocate must return a block of exactly slots elements, all holding the
// zero value. Deallocate receives blocks whose slots were all destroyed.
type Provider[T any] interface {
	Allocate(slots int) ([]T, error)
	Deallocate(block []T)
	Construct(block []T, i int, v T)
	Destroy(block []T, i int)
}

var _ Provider[int] = (*HeapProvider[int])(nil)
var _ Provider[int] = (*PooledProvider[int])(nil)
var _ Provider[int] = (*LimitedProvider[int])(nil)

// HeapProvider allocates blocks from the Go heap and leaves reclamation to
// the garbage collector.
type HeapProvider[T any] struct{}

func NewHeapProvider[T any]() *HeapProvider[T] {
	return &HeapProvider[T]{}
}

func (p *HeapProvider[T]) Allocate(slots int) ([]T, error) {
	return make([]T, slots), nil
}

func (p *HeapProvider[T]) Deallocate(block []T) {
}

func (p *HeapProvider[T]) Construct(block []T, i int, v T) {
	block[i] = v
}

func (p *HeapProvider[T]) Destroy(block []T, i int) {
	var zero T
	block[i] = zero
}

// PooledProvider keeps up to maxCached released blocks and hands them out
// again before falling back to the heap. It may be shared by several deques.
type PooledProvider[T any] struct {
	HeapProvider[T]

	mutex     sync.Mutex
	free      [][]T
	maxCached int

	hits   uint64
	misses uint64
}

func NewPooledProvider[T any](maxCached int) *PooledProvider[T] {
	return &PooledProvider[T]{
		maxCached: maxCached,
	}
}

func (p *PooledProvider[T]) Allocate(slots int) ([]T, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for n := len(p.free); n > 0; n = len(p.free) {
		block := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]

		if len(block) == slots {
			p.hits++
			return block, nil
		}
	}

	p.misses++
	return make([]T, slots), nil
}

func (p *PooledProvider[T]) Deallocate(block []T) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.free) >= p.maxCached {
		return
	}

	clear(block)
	p.free = append(p.free, block)
}

// Cached returns the number of blocks currently held for reuse.
func (p *PooledProvider[T]) Cached() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.free)
}

// HitRatio returns the fraction of allocations served from the pool.
func (p *PooledProvider[T]) HitRatio() float64 {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	total := p.hits + p.misses
	if total == 0 {
		return 0
	}
	return float64(p.hits) / float64(total)
}

// LimitedProvider caps the number of outstanding blocks of the wrapped
// provider. Allocations beyond the cap fail with ErrBlockLimitReached.
type LimitedProvider[T any] struct {
	Provider[T]

	mutex       sync.Mutex
	maxBlocks   int
	outstanding int
}

func NewLimitedProvider[T any](p Provider[T], maxBlocks int) *LimitedProvider[T] {
	return &LimitedProvider[T]{
		Provider:  p,
		maxBlocks: maxBlocks,
	}
}

func (p *LimitedProvider[T]) Allocate(slots int) ([]T, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.outstanding >= p.maxBlocks {
		return nil, ErrBlockLimitReached
	}

	block, err := p.Provider.Allocate(slots)
	if err != nil {
		return nil, err
	}

	p.outstanding++
	return block, nil
}

func (p *LimitedProvider[T]) Deallocate(block []T) {
	p.mutex.Lock()
	p.outstanding--
	p.mutex.Unlock()

	p.Provider.Deallocate(block)
}

func (p *LimitedProvider[T]) Outstanding() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.outstanding
}
