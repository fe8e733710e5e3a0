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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	a := NewGenerator(42).Scenario("s", 200, 4)
	b := NewGenerator(42).Scenario("s", 200, 4)

	require.Equal(t, a, b)
	require.Len(t, a.Ops, 200)
	require.Equal(t, 4, a.BlockSize)
}

func TestGeneratedScenariosAreValid(t *testing.T) {
	g := NewGenerator(7)

	for _, s := range g.Scenarios("valid", 20, 300, 5) {
		require.NoError(t, s.Validate())

		size := len(s.Initial)
		for _, op := range s.Ops {
			switch op.Op {
			case OpPushBack, OpPushFront:
				size += op.Repeat()
			case OpPopBack, OpPopFront:
				require.LessOrEqual(t, op.Repeat(), size)
				size -= op.Repeat()
			case OpInsert:
				require.LessOrEqual(t, op.Index, size)
				size++
			case OpErase:
				require.Less(t, op.Index, size)
				size--
			case OpResize:
				size = op.Size
			case OpClear:
				size = 0
			}
		}
	}
}

func TestGeneratorUsesTheWholeMix(t *testing.T) {
	s := NewGenerator(3).Scenario("mix", 5000, 8)

	seen := make(map[OpKind]bool)
	for _, op := range s.Ops {
		seen[op.Op] = true
	}

	for _, w := range defaultMix {
		require.True(t, seen[w.op], "op %s never generated", w.op)
	}
}

func TestGeneratorIntnIsUniform(t *testing.T) {
	g := NewGenerator(7)

	require.Zero(t, g.intn(1))

	counts := make([]int, 4)
	for i := 0; i < 4000; i++ {
		v := g.intn(len(counts))
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, len(counts))
		counts[v]++
	}

	for v, c := range counts {
		require.InDelta(t, 1000, c, 200, "value %d", v)
	}
}
