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
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultTimeFormat is the timestamp layout of JSON entries.
const DefaultTimeFormat = "2006-01-02T15:04:05.000000Z07:00"

var _ Logger = (*JSONLogger)(nil)

type jsonEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Logger    string `json:"logger,omitempty"`
	Message   string `json:"message"`
}

// JSONLogger writes one JSON object per message.
type JSONLogger struct {
	name       string
	level      LogLevel
	timeFormat string
	now        TimeFunc

	mutex sync.Mutex
	enc   *json.Encoder
	out   io.Writer
}

func NewJSONLogger(opts *Options) (*JSONLogger, error) {
	if opts == nil {
		opts = &Options{Level: LogLevelFromEnvironment()}
	}

	out := opts.writer()

	l := &JSONLogger{
		name:       opts.Name,
		level:      opts.Level,
		timeFormat: opts.TimeFormat,
		now:        opts.TimeFnc,
		enc:        json.NewEncoder(out),
		out:        out,
	}

	if l.timeFormat == "" {
		l.timeFormat = DefaultTimeFormat
	}
	if l.now == nil {
		l.now = time.Now
	}

	return l, nil
}

func (l *JSONLogger) Name() string {
	return l.name
}

func (l *JSONLogger) Errorf(f string, args ...interface{}) {
	l.write(LogError, f, args)
}

func (l *JSONLogger) Warningf(f string, args ...interface{}) {
	l.write(LogWarn, f, args)
}

func (l *JSONLogger) Infof(f string, args ...interface{}) {
	l.write(LogInfo, f, args)
}

func (l *JSONLogger) Debugf(f string, args ...interface{}) {
	l.write(LogDebug, f, args)
}

func (l *JSONLogger) write(level LogLevel, f string, args []interface{}) {
	if level < l.level {
		return
	}

	e := jsonEntry{
		Timestamp: l.now().Format(l.timeFormat),
		Level:     level.String(),
		Logger:    l.name,
		Message:   fmt.Sprintf(f, args...),
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	// an entry of plain strings always encodes
	_ = l.enc.Encode(&e)
}

func (l *JSONLogger) Close() error {
	return closeOutput(l.out)
}
