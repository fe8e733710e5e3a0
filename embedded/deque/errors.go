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
	"fmt"
)

var (
	ErrIllegalArguments  = errors.New("illegal arguments")
	ErrInvalidOptions    = fmt.Errorf("%w: invalid options", ErrIllegalArguments)
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrAllocationFailed  = errors.New("block allocation failed")
	ErrCopyFailed        = errors.New("element copy failed")
	ErrInvariantViolated = errors.New("invariant violated")
	ErrProviderMismatch  = fmt.Errorf("%w: provider returned a block of unexpected size", ErrAllocationFailed)
)

const emptyDequeMsg = "deque: %s on empty deque"

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, n)
}
