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

package bm

import (
	"fmt"

	"github.com/codenotary/segdeque/embedded/deque"
	"github.com/codenotary/segdeque/embedded/logger"
)

// DequeBenchmarks returns the standard set of deque throughput benchmarks.
// Every worker owns its deque; blocks come from a pool shared by all of
// them. A blockSize of zero or less selects the default for int.
func DequeBenchmarks(blockSize, iterations, concurrency int) []*Bm {
	if blockSize <= 0 {
		blockSize = deque.DefaultBlockSize[int]()
	}

	provider := deque.NewPooledProvider[int](1024)

	newDeque := func(name string) (*deque.Deque[int], error) {
		return deque.New(deque.DefaultOptions[int]().
			WithName(name).
			WithBlockSize(blockSize).
			WithProvider(provider).
			WithLogger(logger.NewNopLogger()))
	}

	bench := func(name string, work func(d *deque.Deque[int], start, end int) error) *Bm {
		return &Bm{
			Name:        name,
			Concurrency: concurrency,
			Iterations:  iterations,
			Work: func(b *Bm, start, end int) error {
				d, err := newDeque(b.Name)
				if err != nil {
					return err
				}
				defer d.Release()

				return work(d, start, end)
			},
		}
	}

	return []*Bm{
		bench("push_back/pop_front", func(d *deque.Deque[int], start, end int) error {
			for i := start; i < end; i++ {
				if err := d.PushBack(i); err != nil {
					return err
				}
			}
			for i := start; i < end; i++ {
				if v := d.PopFront(); v != i {
					return fmt.Errorf("popped %d, expected %d", v, i)
				}
			}
			return nil
		}),
		bench("push_front/pop_back", func(d *deque.Deque[int], start, end int) error {
			for i := start; i < end; i++ {
				if err := d.PushFront(i); err != nil {
					return err
				}
			}
			for i := start; i < end; i++ {
				if v := d.PopBack(); v != i {
					return fmt.Errorf("popped %d, expected %d", v, i)
				}
			}
			return nil
		}),
		bench("insert/erase middle", func(d *deque.Deque[int], start, end int) error {
			for i := 0; i < 1024; i++ {
				if err := d.PushBack(i); err != nil {
					return err
				}
			}
			for i := start; i < end; i++ {
				if err := d.InsertAt(d.Len()/2, i); err != nil {
					return err
				}
				if err := d.EraseAt(d.Len() / 2); err != nil {
					return err
				}
			}
			return nil
		}),
		bench("random access", func(d *deque.Deque[int], start, end int) error {
			for i := 0; i < 4096; i++ {
				if err := d.PushFront(i); err != nil {
					return err
				}
			}
			sum := 0
			for i := start; i < end; i++ {
				sum += d.Get((i * 7919) % d.Len())
			}
			if sum < 0 {
				return fmt.Errorf("unexpected sum %d", sum)
			}
			return nil
		}),
	}
}
