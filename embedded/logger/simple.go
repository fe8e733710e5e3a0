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
	"io"
	"strings"
	"sync"
	"time"
)

const simpleTimeFormat = "2006/01/02 15:04:05"

var levelLabels = map[LogLevel]string{
	LogDebug: "DEBUG",
	LogInfo:  "INFO",
	LogWarn:  "WARNING",
	LogError: "ERROR",
}

// SimpleLogger writes one text line per message:
//
//	2024/05/01 10:00:00 deque WARNING: allocating 4 blocks failed
type SimpleLogger struct {
	name  string
	level LogLevel
	now   TimeFunc

	mutex sync.Mutex
	out   io.Writer
}

// NewSimpleLogger creates a text logger whose level comes from LOG_LEVEL.
func NewSimpleLogger(name string, out io.Writer) Logger {
	return NewSimpleLoggerWithLevel(name, out, LogLevelFromEnvironment())
}

func NewSimpleLoggerWithLevel(name string, out io.Writer, level LogLevel) Logger {
	return &SimpleLogger{
		name:  name,
		level: level,
		now:   time.Now,
		out:   out,
	}
}

func (l *SimpleLogger) Name() string {
	return l.name
}

func (l *SimpleLogger) Errorf(f string, v ...interface{}) {
	l.write(LogError, f, v)
}

func (l *SimpleLogger) Warningf(f string, v ...interface{}) {
	l.write(LogWarn, f, v)
}

func (l *SimpleLogger) Infof(f string, v ...interface{}) {
	l.write(LogInfo, f, v)
}

func (l *SimpleLogger) Debugf(f string, v ...interface{}) {
	l.write(LogDebug, f, v)
}

func (l *SimpleLogger) write(level LogLevel, f string, v []interface{}) {
	if level < l.level {
		return
	}

	msg := strings.TrimRight(fmt.Sprintf(f, v...), "\n")

	l.mutex.Lock()
	defer l.mutex.Unlock()

	fmt.Fprintf(l.out, "%s %s %s: %s\n", l.now().Format(simpleTimeFormat), l.name, levelLabels[level], msg)
}

func (l *SimpleLogger) Close() error {
	return closeOutput(l.out)
}

type nopLogger struct{}

// NewNopLogger returns a logger discarding every message.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Close() error                    { return nil }
