/* Copyright 2026 Lectern Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package log writes structured logs as JSON lines on stderr
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	// LevelDebug represents debug log level
	LevelDebug = "debug"
	// LevelInfo represents info log level
	LevelInfo = "info"
	// LevelWarn represents warn log level
	LevelWarn = "warn"
	// LevelError represents error log level
	LevelError = "error"
)

var (
	mu           sync.Mutex
	currentLevel = LevelInfo
	output       io.Writer = os.Stderr
)

// SetLevel sets the minimum level that gets written
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

// SetOutput redirects log output. Used in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func priority(level string) int {
	switch level {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	}
	return 1
}

// Fields is a set of additional information attached to a log line
type Fields map[string]interface{}

// Entry is a log line under construction
type Entry struct {
	fields Fields
}

// WithFields returns an entry carrying the given fields
func WithFields(fields Fields) Entry {
	return Entry{fields: fields}
}

func (e Entry) write(level, msg string) {
	mu.Lock()
	defer mu.Unlock()

	if priority(level) < priority(currentLevel) {
		return
	}

	line := make(map[string]interface{}, len(e.fields)+3)
	line["level"] = level
	line["msg"] = msg
	line["ts"] = time.Now().UTC().Format(time.RFC3339)

	for k, v := range e.fields {
		if err, ok := v.(error); ok {
			line[k] = err.Error()
			continue
		}
		line[k] = v
	}

	b, err := json.Marshal(line)
	if err != nil {
		fmt.Fprintf(output, "marshaling log line: %v\n", err)
		return
	}

	fmt.Fprintln(output, string(b))
}

// Debug logs the entry at the debug level
func (e Entry) Debug(msg string) {
	e.write(LevelDebug, msg)
}

// Info logs the entry at the info level
func (e Entry) Info(msg string) {
	e.write(LevelInfo, msg)
}

// Warn logs the entry at the warn level
func (e Entry) Warn(msg string) {
	e.write(LevelWarn, msg)
}

// Error logs the entry at the error level
func (e Entry) Error(msg string) {
	e.write(LevelError, msg)
}

// ErrorWrap logs the error annotated with the given message
func (e Entry) ErrorWrap(err error, msg string) {
	e.Error(fmt.Sprintf("%s: %v", msg, err))
}

// Debug logs a message at the debug level without fields
func Debug(msg string) {
	Entry{}.Debug(msg)
}

// Info logs a message at the info level without fields
func Info(msg string) {
	Entry{}.Info(msg)
}

// Error logs a message at the error level without fields
func Error(msg string) {
	Entry{}.Error(msg)
}

// ErrorWrap logs the error annotated with the given message, without fields
func ErrorWrap(err error, msg string) {
	Entry{}.ErrorWrap(err, msg)
}
