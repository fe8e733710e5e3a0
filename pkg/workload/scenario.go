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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrDivergence      = errors.New("deque diverged from reference")
)

type OpKind string

const (
	OpPushBack  OpKind = "push_back"
	OpPushFront OpKind = "push_front"
	OpPopBack   OpKind = "pop_back"
	OpPopFront  OpKind = "pop_front"
	OpInsert    OpKind = "insert"
	OpErase     OpKind = "erase"
	OpResize    OpKind = "resize"
	OpClear     OpKind = "clear"
	OpShrink    OpKind = "shrink"
)

// Op is a single step of a scenario. Count repeats the step, zero meaning
// once.
type Op struct {
	Op    OpKind `yaml:"op"`
	Value string `yaml:"value,omitempty"`
	Count int    `yaml:"count,omitempty"`
	Index int    `yaml:"index,omitempty"`
	Size  int    `yaml:"size,omitempty"`
}

func (op Op) Repeat() int {
	return max(op.Count, 1)
}

type Scenario struct {
	Name      string   `yaml:"name"`
	BlockSize int      `yaml:"block-size,omitempty"`
	Initial   []string `yaml:"initial,omitempty"`
	Ops       []Op     `yaml:"ops"`
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Operations returns the number of deque operations the scenario performs.
func (s *Scenario) Operations() int {
	n := 0
	for _, op := range s.Ops {
		n += op.Repeat()
	}
	return n
}

func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}

	if s.BlockSize < 0 {
		return fmt.Errorf("%w: scenario %q: negative block size", ErrInvalidScenario, s.Name)
	}

	for i, op := range s.Ops {
		if op.Count < 0 {
			return fmt.Errorf("%w: scenario %q, op %d: negative count", ErrInvalidScenario, s.Name, i)
		}

		switch op.Op {
		case OpPushBack, OpPushFront, OpPopBack, OpPopFront, OpClear, OpShrink:
		case OpInsert, OpErase:
			if op.Index < 0 {
				return fmt.Errorf("%w: scenario %q, op %d: negative index", ErrInvalidScenario, s.Name, i)
			}
		case OpResize:
			if op.Size < 0 {
				return fmt.Errorf("%w: scenario %q, op %d: negative size", ErrInvalidScenario, s.Name, i)
			}
		default:
			return fmt.Errorf("%w: scenario %q, op %d: unknown op %q", ErrInvalidScenario, s.Name, i, op.Op)
		}
	}

	return nil
}

// Parse decodes and validates a YAML scenario document.
func Parse(data []byte) ([]Scenario, error) {
	var f file

	err := yaml.UnmarshalStrict(data, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	names := make(map[string]struct{}, len(f.Scenarios))

	for i := range f.Scenarios {
		err = f.Scenarios[i].Validate()
		if err != nil {
			return nil, err
		}

		if _, ok := names[f.Scenarios[i].Name]; ok {
			return nil, fmt.Errorf("%w: duplicated scenario %q", ErrInvalidScenario, f.Scenarios[i].Name)
		}
		names[f.Scenarios[i].Name] = struct{}{}
	}

	return f.Scenarios, nil
}

func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

func Marshal(scenarios []Scenario) ([]byte, error) {
	return yaml.Marshal(&file{Scenarios: scenarios})
}
