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
	"os"
	"unsafe"

	"github.com/codenotary/segdeque/embedded/logger"
	"github.com/codenotary/segdeque/embedded/metrics"
)

const DefaultInitialBlocks = 5
const DefaultBlockBytes = 512
const MinDefaultBlockSize = 16
const MaxDefaultBlockSize = 64

// CopyFunc produces the copy stored by fill and copy operations.
// A nil CopyFunc means plain assignment.
type CopyFunc[T any] func(T) (T, error)

type Options[T any] struct {
	name          string
	blockSize     int
	initialBlocks int

	provider Provider[T]
	copyFn   CopyFunc[T]

	invariantChecks bool

	logger  logger.Logger
	metrics metrics.DequeMetrics
}

func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		name:          "deque",
		blockSize:     DefaultBlockSize[T](),
		initialBlocks: DefaultInitialBlocks,
		provider:      NewHeapProvider[T](),
		logger:        logger.NewSimpleLogger("deque", os.Stderr),
		metrics:       metrics.NewNopDequeMetrics(),
	}
}

// DefaultBlockSize sizes a block to roughly DefaultBlockBytes, clamped to
// [MinDefaultBlockSize, MaxDefaultBlockSize] slots.
func DefaultBlockSize[T any]() int {
	var zero T

	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return MaxDefaultBlockSize
	}

	return min(max(DefaultBlockBytes/elemSize, MinDefaultBlockSize), MaxDefaultBlockSize)
}

func (opts *Options[T]) Validate() error {
	if opts == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidOptions)
	}

	if opts.blockSize <= 0 {
		return fmt.Errorf("%w: invalid blockSize", ErrInvalidOptions)
	}

	if opts.initialBlocks <= 0 {
		return fmt.Errorf("%w: invalid initialBlocks", ErrInvalidOptions)
	}

	if opts.provider == nil {
		return fmt.Errorf("%w: invalid provider", ErrInvalidOptions)
	}

	if opts.logger == nil {
		return fmt.Errorf("%w: invalid logger", ErrInvalidOptions)
	}

	if opts.metrics == nil {
		return fmt.Errorf("%w: invalid metrics", ErrInvalidOptions)
	}

	return nil
}

func (opts *Options[T]) WithName(name string) *Options[T] {
	opts.name = name
	return opts
}

func (opts *Options[T]) WithBlockSize(blockSize int) *Options[T] {
	opts.blockSize = blockSize
	return opts
}

func (opts *Options[T]) WithInitialBlocks(initialBlocks int) *Options[T] {
	opts.initialBlocks = initialBlocks
	return opts
}

func (opts *Options[T]) WithProvider(provider Provider[T]) *Options[T] {
	opts.provider = provider
	return opts
}

func (opts *Options[T]) WithCopyFunc(copyFn CopyFunc[T]) *Options[T] {
	opts.copyFn = copyFn
	return opts
}

// WithInvariantChecks makes every mutator verify the deque invariants and
// panic on the first violation. Meant for tests and debugging sessions.
func (opts *Options[T]) WithInvariantChecks(enabled bool) *Options[T] {
	opts.invariantChecks = enabled
	return opts
}

func (opts *Options[T]) WithLogger(logger logger.Logger) *Options[T] {
	opts.logger = logger
	return opts
}

func (opts *Options[T]) WithMetrics(metrics metrics.DequeMetrics) *Options[T] {
	opts.metrics = metrics
	return opts
}

func (opts *Options[T]) Name() string {
	return opts.name
}

func (opts *Options[T]) BlockSize() int {
	return opts.blockSize
}

func (opts *Options[T]) InitialBlocks() int {
	return opts.initialBlocks
}
