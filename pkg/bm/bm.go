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
	"time"

	"golang.org/x/sync/errgroup"
)

// Bm splits Iterations among Concurrency workers and measures the overall
// throughput.
type Bm struct {
	Name        string
	Concurrency int
	Iterations  int
	Before      func(bm *Bm)
	After       func(bm *Bm)
	Work        func(bm *Bm, start int, end int) error
}

func (b *Bm) Execute() (*BmResult, error) {
	concurrency := max(b.Concurrency, 1)
	chunkSize := b.Iterations / concurrency

	if b.Before != nil {
		b.Before(b)
	}

	var g errgroup.Group

	startTime := time.Now()

	for k := 0; k < concurrency; k++ {
		start := k * chunkSize
		end := (k + 1) * chunkSize
		if k == concurrency-1 {
			end = b.Iterations
		}

		g.Go(func() error {
			return b.Work(b, start, end)
		})
	}

	err := g.Wait()
	elapsed := time.Since(startTime)

	if b.After != nil {
		b.After(b)
	}

	if err != nil {
		return nil, err
	}

	return &BmResult{
		Bm:         b,
		Time:       elapsed.Seconds(),
		Throughput: float64(b.Iterations) / elapsed.Seconds(),
	}, nil
}
