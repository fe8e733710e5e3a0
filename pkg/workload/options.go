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
	"fmt"
	"os"

	"github.com/codenotary/segdeque/embedded/deque"
	"github.com/codenotary/segdeque/embedded/logger"
)

const DefaultParallelism = 4
const DefaultPooledBlocks = 1024

type Options struct {
	parallelism      int
	defaultBlockSize int
	pooledBlocks     int
	prometheus       bool
	invariantChecks  bool
	failFast         bool

	logger   logger.Logger
	onResult func(*Result)
}

func DefaultOptions() *Options {
	return &Options{
		parallelism:      DefaultParallelism,
		defaultBlockSize: deque.DefaultBlockSize[string](),
		pooledBlocks:     DefaultPooledBlocks,
		logger:           logger.NewSimpleLogger("workload", os.Stderr),
	}
}

func (opts *Options) Validate() error {
	if opts == nil {
		return fmt.Errorf("%w: nil options", deque.ErrInvalidOptions)
	}

	if opts.parallelism <= 0 {
		return fmt.Errorf("%w: invalid parallelism", deque.ErrInvalidOptions)
	}

	if opts.defaultBlockSize <= 0 {
		return fmt.Errorf("%w: invalid defaultBlockSize", deque.ErrInvalidOptions)
	}

	if opts.pooledBlocks < 0 {
		return fmt.Errorf("%w: invalid pooledBlocks", deque.ErrInvalidOptions)
	}

	if opts.logger == nil {
		return fmt.Errorf("%w: invalid logger", deque.ErrInvalidOptions)
	}

	return nil
}

// WithParallelism sets how many scenarios run at the same time.
func (opts *Options) WithParallelism(parallelism int) *Options {
	opts.parallelism = parallelism
	return opts
}

// WithDefaultBlockSize sets the block size of scenarios that do not set one.
func (opts *Options) WithDefaultBlockSize(blockSize int) *Options {
	opts.defaultBlockSize = blockSize
	return opts
}

// WithPooledBlocks sets how many released blocks are kept for reuse across
// scenarios. Zero disables pooling.
func (opts *Options) WithPooledBlocks(pooledBlocks int) *Options {
	opts.pooledBlocks = pooledBlocks
	return opts
}

// WithPrometheus reports deque and workload metrics to the default
// Prometheus registry, labelled by scenario name.
func (opts *Options) WithPrometheus(enabled bool) *Options {
	opts.prometheus = enabled
	return opts
}

func (opts *Options) WithInvariantChecks(enabled bool) *Options {
	opts.invariantChecks = enabled
	return opts
}

// WithFailFast stops the remaining scenarios after the first failure.
func (opts *Options) WithFailFast(failFast bool) *Options {
	opts.failFast = failFast
	return opts
}

func (opts *Options) WithLogger(logger logger.Logger) *Options {
	opts.logger = logger
	return opts
}

// WithOnResult registers a callback invoked once per finished scenario. It
// may be called from several goroutines at once.
func (opts *Options) WithOnResult(onResult func(*Result)) *Options {
	opts.onResult = onResult
	return opts
}
