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

package logger

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type MemoryEntry struct {
	Time    time.Time
	Level   LogLevel
	Message string
}

func (e MemoryEntry) String() string {
	return fmt.Sprintf("%s %s: %s", e.Time.Format(simpleTimeFormat), levelLabels[e.Level], e.Message)
}

// MemoryLogger records messages instead of writing them. Tests use it to
// assert on what a component logged.
type MemoryLogger struct {
	level LogLevel

	mutex   sync.Mutex
	entries []MemoryEntry
}

func NewMemoryLogger() *MemoryLogger {
	return NewMemoryLoggerWithLevel(LogLevelFromEnvironment())
}

func NewMemoryLoggerWithLevel(level LogLevel) *MemoryLogger {
	return &MemoryLogger{level: level}
}

func (l *MemoryLogger) Errorf(f string, args ...interface{}) {
	l.record(LogError, f, args)
}

func (l *MemoryLogger) Warningf(f string, args ...interface{}) {
	l.record(LogWarn, f, args)
}

func (l *MemoryLogger) Infof(f string, args ...interface{}) {
	l.record(LogInfo, f, args)
}

func (l *MemoryLogger) Debugf(f string, args ...interface{}) {
	l.record(LogDebug, f, args)
}

func (l *MemoryLogger) record(level LogLevel, f string, args []interface{}) {
	if level < l.level {
		return
	}

	e := MemoryEntry{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(f, args...),
	}

	l.mutex.Lock()
	l.entries = append(l.entries, e)
	l.mutex.Unlock()
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *MemoryLogger) Entries() []MemoryEntry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return append([]MemoryEntry(nil), l.entries...)
}

// Messages returns the recorded messages at level or above.
func (l *MemoryLogger) Messages(level LogLevel) []string {
	var msgs []string

	for _, e := range l.Entries() {
		if e.Level >= level {
			msgs = append(msgs, e.Message)
		}
	}

	return msgs
}

// Contains reports whether some recorded message contains substr.
func (l *MemoryLogger) Contains(substr string) bool {
	for _, e := range l.Entries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func (l *MemoryLogger) Close() error {
	return nil
}
