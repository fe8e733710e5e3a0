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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	ErrInvalidLoggerType = errors.New("invalid logger type")
	ErrInvalidLogLevel   = errors.New("invalid log level")

	levelToString = map[LogLevel]string{
		LogDebug: "debug",
		LogInfo:  "info",
		LogWarn:  "warn",
		LogError: "error",
	}
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"

	DefaultLogMaxSizeMB  = 100
	DefaultLogMaxAgeDays = 7
	DefaultLogMaxBackups = 7
)

// LogLevel orders messages by severity; a logger drops messages below its
// level.
type LogLevel int8

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	if s, ok := levelToString[l]; ok {
		return s
	}
	return "all"
}

// Logger is the logging interface used throughout segdeque.
type Logger interface {
	Errorf(string, ...interface{})
	Warningf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	Close() error
}

// ParseLogLevel accepts the level names used by LOG_LEVEL and the CLI flags.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogError, nil
	case "warn", "warning":
		return LogWarn, nil
	case "info", "":
		return LogInfo, nil
	case "debug":
		return LogDebug, nil
	}
	return LogInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}

func LogLevelFromEnvironment() LogLevel {
	logLevel, _ := os.LookupEnv("LOG_LEVEL")
	level, err := ParseLogLevel(logLevel)
	if err != nil {
		return LogInfo
	}
	return level
}

type TimeFunc = func() time.Time

// Options configures the logger built by NewLogger.
type Options struct {
	Name  string
	Level LogLevel

	// Output defaults to os.Stderr. Ignored when LogFile is set.
	Output io.Writer

	// TimeFormat and TimeFnc override the timestamp of JSON entries.
	TimeFormat string
	TimeFnc    TimeFunc

	// LogFormat is LogFormatText (default) or LogFormatJSON.
	LogFormat string

	// LogFile enables file output rotated by size and age.
	LogFile       string
	LogMaxSizeMB  int
	LogMaxAgeDays int
	LogMaxBackups int
}

// NewLogger builds a text or JSON logger writing to the file, the writer
// or stderr named by opts, in that order of preference.
func NewLogger(opts *Options) (Logger, error) {
	if opts == nil {
		opts = &Options{Level: LogLevelFromEnvironment()}
	}

	resolved := *opts
	resolved.Output = opts.writer()
	resolved.LogFile = ""

	switch resolved.LogFormat {
	case LogFormatText, "":
		return NewSimpleLoggerWithLevel(resolved.Name, resolved.Output, resolved.Level), nil
	case LogFormatJSON:
		return NewJSONLogger(&resolved)
	}

	closeOutput(resolved.Output)

	return nil, fmt.Errorf("%w: %q", ErrInvalidLoggerType, opts.LogFormat)
}

func (opts *Options) writer() io.Writer {
	switch {
	case opts.LogFile != "":
		return newRotatingWriter(opts)
	case opts.Output != nil:
		return opts.Output
	}
	return os.Stderr
}

func newRotatingWriter(opts *Options) *lumberjack.Logger {
	maxSize := opts.LogMaxSizeMB
	if maxSize <= 0 {
		maxSize = DefaultLogMaxSizeMB
	}
	maxAge := opts.LogMaxAgeDays
	if maxAge <= 0 {
		maxAge = DefaultLogMaxAgeDays
	}
	maxBackups := opts.LogMaxBackups
	if maxBackups <= 0 {
		maxBackups = DefaultLogMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    maxSize,
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
		LocalTime:  true,
	}
}

func closeOutput(out io.Writer) error {
	if out == os.Stderr || out == os.Stdout {
		return nil
	}
	if c, ok := out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
