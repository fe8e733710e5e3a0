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

package dequetest

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockProvider is a gomock mock of deque.Provider[int], written in the
// layout mockgen produces.
type MockProvider struct {
	ctrl     *gomock.Controller
	recorder *MockProviderMockRecorder
}

// MockProviderMockRecorder is the mock recorder for MockProvider.
type MockProviderMockRecorder struct {
	mock *MockProvider
}

// NewMockProvider creates a new mock instance.
func NewMockProvider(ctrl *gomock.Controller) *MockProvider {
	mock := &MockProvider{ctrl: ctrl}
	mock.recorder = &MockProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProvider) EXPECT() *MockProviderMockRecorder {
	return m.recorder
}

// Allocate mocks base method.
func (m *MockProvider) Allocate(slots int) ([]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allocate", slots)
	ret0, _ := ret[0].([]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Allocate indicates an expected call of Allocate.
func (mr *MockProviderMockRecorder) Allocate(slots interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allocate", reflect.TypeOf((*MockProvider)(nil).Allocate), slots)
}

// Construct mocks base method.
func (m *MockProvider) Construct(block []int, i, v int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Construct", block, i, v)
}

// Construct indicates an expected call of Construct.
func (mr *MockProviderMockRecorder) Construct(block, i, v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Construct", reflect.TypeOf((*MockProvider)(nil).Construct), block, i, v)
}

// Deallocate mocks base method.
func (m *MockProvider) Deallocate(block []int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Deallocate", block)
}

// Deallocate indicates an expected call of Deallocate.
func (mr *MockProviderMockRecorder) Deallocate(block interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deallocate", reflect.TypeOf((*MockProvider)(nil).Deallocate), block)
}

// Destroy mocks base method.
func (m *MockProvider) Destroy(block []int, i int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Destroy", block, i)
}

// Destroy indicates an expected call of Destroy.
func (mr *MockProviderMockRecorder) Destroy(block, i interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Destroy", reflect.TypeOf((*MockProvider)(nil).Destroy), block, i)
}
