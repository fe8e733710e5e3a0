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

package workload

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
	"unsafe"

	"github.com/codenotary/segdeque/embedded/deque"
	"github.com/codenotary/segdeque/embedded/metrics"
	"github.com/rs/xid"
	"golang.org/x/sync/errgroup"
)

const ctxCheckInterval = 256

type Result struct {
	RunID      string
	Scenario   string
	Operations int
	Len        int
	Stats      deque.Stats

	// FootprintBytes is the size of the element storage held by the deque
	// when the scenario ended.
	FootprintBytes uint64
	Elapsed        time.Duration

	Err error
}

func (r *Result) Passed() bool {
	return r.Err == nil
}

type Runner struct {
	opts     *Options
	provider deque.Provider[string]
}

func NewRunner(opts *Options) (*Runner, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	var provider deque.Provider[string] = deque.NewHeapProvider[string]()
	if opts.pooledBlocks > 0 {
		provider = deque.NewPooledProvider[string](opts.pooledBlocks)
	}

	return &Runner{
		opts:     opts,
		provider: provider,
	}, nil
}

// RunAll replays every scenario, running up to the configured parallelism
// at once. Results keep the order of scenarios. The returned error is set
// when the context ends early, or on the first failure in fail-fast mode.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) ([]*Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.parallelism)

	results := make([]*Result, len(scenarios))

	for i := range scenarios {
		g.Go(func() error {
			res := r.Run(gctx, scenarios[i])
			results[i] = res

			if r.opts.onResult != nil {
				r.opts.onResult(res)
			}

			if res.Err != nil && (r.opts.failFast || errors.Is(res.Err, context.Canceled)) {
				return res.Err
			}

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	return results, err
}

// Run replays s against a deque and a slice holding the expected contents,
// stopping at the first difference.
func (r *Runner) Run(ctx context.Context, s Scenario) *Result {
	res := &Result{
		RunID:    xid.New().String(),
		Scenario: s.Name,
	}

	start := time.Now()

	res.Err = r.run(ctx, &s, res)
	res.Elapsed = time.Since(start)

	if res.Err != nil {
		r.opts.logger.Warningf("scenario %s (run %s) failed after %d operations: %v", s.Name, res.RunID, res.Operations, res.Err)
	} else {
		r.opts.logger.Infof("scenario %s (run %s) passed: %d operations in %s", s.Name, res.RunID, res.Operations, res.Elapsed)
	}

	return res
}

func (r *Runner) run(ctx context.Context, s *Scenario, res *Result) error {
	err := s.Validate()
	if err != nil {
		return err
	}

	wm := metrics.NewNopWorkloadMetrics()
	dm := metrics.NewNopDequeMetrics()

	if r.opts.prometheus {
		wm = metrics.NewPrometheusWorkloadMetrics(s.Name)
		dm = metrics.NewPrometheusDequeMetrics(s.Name)
	}

	blockSize := s.BlockSize
	if blockSize == 0 {
		blockSize = r.opts.defaultBlockSize
	}

	opts := deque.DefaultOptions[string]().
		WithName(s.Name).
		WithBlockSize(blockSize).
		WithProvider(r.provider).
		WithInvariantChecks(r.opts.invariantChecks).
		WithLogger(r.opts.logger).
		WithMetrics(dm)

	d, err := deque.NewFromSlice(s.Initial, opts)
	if err != nil {
		return err
	}
	defer d.Release()

	ref := slices.Clone(s.Initial)

	progress := wm.NewProgressTracker(float64(s.Operations()))

	for i, op := range s.Ops {
		for k := 0; k < op.Repeat(); k++ {
			if res.Operations%ctxCheckInterval == 0 && ctx.Err() != nil {
				return ctx.Err()
			}

			ref, err = apply(d, ref, op)
			if err != nil {
				if errors.Is(err, ErrDivergence) {
					wm.IncDivergences()
				}
				return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
			}

			res.Operations++
		}

		wm.IncOperations(op.Repeat())
		progress.Add(float64(op.Repeat()))
	}

	err = compare(d, ref)
	if err != nil {
		wm.IncDivergences()
		return err
	}

	res.Len = d.Len()
	res.Stats = d.Stats()
	res.FootprintBytes = uint64(res.Stats.Blocks) * uint64(res.Stats.BlockSize) * uint64(unsafe.Sizeof(""))

	return nil
}

// apply performs op once on both d and ref and checks the observable
// results agree.
func apply(d *deque.Deque[string], ref []string, op Op) ([]string, error) {
	var err error

	switch op.Op {
	case OpPushBack:
		err = d.PushBack(op.Value)
		ref = append(ref, op.Value)

	case OpPushFront:
		err = d.PushFront(op.Value)
		ref = slices.Insert(ref, 0, op.Value)

	case OpPopBack:
		if len(ref) == 0 {
			return ref, fmt.Errorf("%w: pop_back on empty deque", ErrInvalidScenario)
		}

		want := ref[len(ref)-1]
		ref = ref[:len(ref)-1]

		if got := d.PopBack(); got != want {
			return ref, fmt.Errorf("%w: popped %q from the back, expected %q", ErrDivergence, got, want)
		}

	case OpPopFront:
		if len(ref) == 0 {
			return ref, fmt.Errorf("%w: pop_front on empty deque", ErrInvalidScenario)
		}

		want := ref[0]
		ref = ref[1:]

		if got := d.PopFront(); got != want {
			return ref, fmt.Errorf("%w: popped %q from the front, expected %q", ErrDivergence, got, want)
		}

	case OpInsert:
		if op.Index > len(ref) {
			return ref, fmt.Errorf("%w: insert at %d with length %d", ErrInvalidScenario, op.Index, len(ref))
		}

		err = d.InsertAt(op.Index, op.Value)
		ref = slices.Insert(ref, op.Index, op.Value)

	case OpErase:
		if op.Index >= len(ref) {
			return ref, fmt.Errorf("%w: erase at %d with length %d", ErrInvalidScenario, op.Index, len(ref))
		}

		err = d.EraseAt(op.Index)
		ref = slices.Delete(ref, op.Index, op.Index+1)

	case OpResize:
		err = d.Resize(op.Size, op.Value)

		if op.Size <= len(ref) {
			ref = ref[:op.Size]
		} else {
			for len(ref) < op.Size {
				ref = append(ref, op.Value)
			}
		}

	case OpClear:
		d.Clear()
		ref = ref[:0]

	case OpShrink:
		d.ShrinkToFit()

	default:
		return ref, fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, op.Op)
	}

	if err != nil {
		return ref, err
	}

	if d.Len() != len(ref) {
		return ref, fmt.Errorf("%w: length %d, expected %d", ErrDivergence, d.Len(), len(ref))
	}

	if len(ref) > 0 && (d.Front() != ref[0] || d.Back() != ref[len(ref)-1]) {
		return ref, fmt.Errorf("%w: ends are (%q, %q), expected (%q, %q)", ErrDivergence, d.Front(), d.Back(), ref[0], ref[len(ref)-1])
	}

	return ref, nil
}

func compare(d *deque.Deque[string], ref []string) error {
	if d.Len() != len(ref) {
		return fmt.Errorf("%w: length %d, expected %d", ErrDivergence, d.Len(), len(ref))
	}

	for i, v := range d.All() {
		if v != ref[i] {
			return fmt.Errorf("%w: element %d is %q, expected %q", ErrDivergence, i, v, ref[i])
		}
	}

	return nil
}
