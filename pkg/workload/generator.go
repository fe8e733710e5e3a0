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
	"math/rand"

	"github.com/jaswdr/faker"
)

type weightedOp struct {
	op     OpKind
	weight int
}

var defaultMix = []weightedOp{
	{OpPushBack, 30},
	{OpPushFront, 20},
	{OpPopFront, 15},
	{OpPopBack, 10},
	{OpInsert, 10},
	{OpErase, 8},
	{OpResize, 4},
	{OpShrink, 2},
	{OpClear, 1},
}

// Generator produces random scenarios whose operations are always valid
// for the length the deque has when they are replayed.
type Generator struct {
	fake faker.Faker
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
	}
}

// intn returns a value in [0, n).
func (g *Generator) intn(n int) int {
	if n <= 1 {
		return 0
	}
	return g.fake.IntBetween(0, n-1)
}

func (g *Generator) pick() OpKind {
	total := 0
	for _, w := range defaultMix {
		total += w.weight
	}

	r := g.intn(total)
	for _, w := range defaultMix {
		if r < w.weight {
			return w.op
		}
		r -= w.weight
	}

	return OpPushBack
}

// Scenario generates a scenario named name with ops steps.
func (g *Generator) Scenario(name string, ops, blockSize int) Scenario {
	s := Scenario{
		Name:      name,
		BlockSize: blockSize,
	}

	for i := g.intn(8); i > 0; i-- {
		s.Initial = append(s.Initial, g.fake.Lorem().Word())
	}

	size := len(s.Initial)

	for len(s.Ops) < ops {
		op := Op{Op: g.pick()}

		switch op.Op {
		case OpPushBack, OpPushFront:
			op.Value = g.fake.Lorem().Word()
			if g.intn(10) == 0 {
				op.Count = 2 + g.intn(32)
			}
			size += op.Repeat()
		case OpPopBack, OpPopFront:
			if size == 0 {
				continue
			}
			if size > 1 && g.intn(10) == 0 {
				op.Count = 1 + g.intn(size)
			}
			size -= op.Repeat()
		case OpInsert:
			op.Index = g.intn(size + 1)
			op.Value = g.fake.Lorem().Word()
			size++
		case OpErase:
			if size == 0 {
				continue
			}
			op.Index = g.intn(size)
			size--
		case OpResize:
			op.Size = g.intn(2*size + 16)
			op.Value = g.fake.Lorem().Word()
			size = op.Size
		case OpClear:
			size = 0
		}

		s.Ops = append(s.Ops, op)
	}

	return s
}

// Scenarios generates n scenarios named after prefix.
func (g *Generator) Scenarios(prefix string, n, ops, blockSize int) []Scenario {
	scenarios := make([]Scenario, n)
	for i := range scenarios {
		scenarios[i] = g.Scenario(fmt.Sprintf("%s-%03d", prefix, i), ops, blockSize)
	}
	return scenarios
}
