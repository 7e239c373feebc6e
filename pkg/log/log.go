// Copyright 2025 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides a key-value logger and JSON formatter.
//
// Note: DefaultStdout, DefaultStderr, DefaultPrettyPrint and DefaultLevel
// should be configured during initialization and not modified concurrently.
//
// Example:
//
//	log.Info(
//	    "message", "token generated",
//	    "token.length", 32,
//	).Print()
package log

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jlsalvador/enriched-utilities/pkg/cli/term"
)

const (
	LevelDebug = "debug" // Output msg to [os.Stderr].
	LevelInfo  = "info"  // Output msg to [os.Stderr].
	LevelWarn  = "warn"  // Output msg to [os.Stderr].
	LevelError = "error" // Output msg to [os.Stderr].
)

const (
	FieldTimestamp    = "@timestamp"
	FieldLevel        = "log.level"
	FieldMessage      = "message"
	FieldErrorMessage = "error.message"
)

var ErrInvalidLevel = errors.New("invalid log level")

// Severity of every level. Entries below DefaultLevel are discarded.
var severity = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var (
	// The commands print their results to stdout, so every level goes to
	// stderr by default.
	DefaultStderr      io.Writer = os.Stderr // Sets output for LevelWarn and LevelError.
	DefaultStdout      io.Writer = os.Stderr // Sets output for LevelDebug and LevelInfo.
	DefaultPrettyPrint           = false     // Indent output as multiline JSON.
	DefaultLevel                 = LevelInfo // Minimum level printed.
)

// For testing mockups.
var (
	isTerminalFn = term.IsTerminal
)

// ParseLevel returns the level named s, ignoring case and surrounding
// spaces.
func ParseLevel(s string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(s))
	if _, ok := severity[level]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}

// Enabled reports whether entries of level are printed.
func Enabled(level string) bool {
	threshold, ok := severity[DefaultLevel]
	if !ok {
		threshold = severity[LevelInfo]
	}
	return severity[level] >= threshold
}

// Entry represents a log entry.
//
// Please, use Debug(), Info(), Warn(), and Error().
type Entry struct {
	Stderr      io.Writer
	Stdout      io.Writer
	PrettyPrint bool
	fields      map[string]any
}

func jsonMarshal(kv map[string]any, pretty bool) string {
	var b []byte
	var err error

	if pretty {
		b, err = json.MarshalIndent(kv, "", "  ")
	} else {
		b, err = json.Marshal(kv)
	}

	if err != nil {
		return Error(FieldErrorMessage, err.Error()).JSON()
	}

	return string(b)
}

func (e *Entry) JSON() string       { return jsonMarshal(e.fields, false) }
func (e *Entry) JSONIndent() string { return jsonMarshal(e.fields, true) }

// With adds key-value pairs to the logger.
func (e *Entry) With(kv ...any) *Entry {
	if e.fields == nil {
		e.Stderr = DefaultStderr
		e.Stdout = DefaultStdout
		e.PrettyPrint = DefaultPrettyPrint
		e.fields = map[string]any{
			FieldTimestamp: time.Now().Format(time.RFC3339),
			FieldLevel:     LevelInfo,
		}
	}

	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e.fields[key] = kv[i+1]
	}

	return e
}

// Err adds err under [FieldErrorMessage]. A nil err is ignored.
func (e *Entry) Err(err error) *Entry {
	if err == nil {
		return e.With()
	}
	return e.With(FieldErrorMessage, err.Error())
}

// Print outputs the logger to stdout or stderr based on the log level.
// Entries below [DefaultLevel] are discarded.
func (e *Entry) Print() {
	if e.fields == nil {
		e.With()
	}

	out := e.Stdout

	level, ok := e.fields[FieldLevel].(string)
	if !ok {
		Error(FieldErrorMessage, "log level must be a string").Print()
		return
	}

	if !Enabled(level) {
		return
	}

	if level == LevelWarn || level == LevelError {
		out = e.Stderr
	}

	jsonStr := jsonMarshal(e.fields, e.PrettyPrint)

	if _, noColor := os.LookupEnv("NO_COLOR"); !noColor && isTerminalFn(out) {
		jsonStr = enhanceJSONForTerminal(jsonStr, level)
	}

	fmt.Fprintf(out, "%s\n", jsonStr)
}

func Debug(kv ...any) *Entry { return (&Entry{}).With(FieldLevel, LevelDebug).With(kv...) }
func Info(kv ...any) *Entry  { return (&Entry{}).With(FieldLevel, LevelInfo).With(kv...) }
func Warn(kv ...any) *Entry  { return (&Entry{}).With(FieldLevel, LevelWarn).With(kv...) }
func Error(kv ...any) *Entry { return (&Entry{}).With(FieldLevel, LevelError).With(kv...) }
