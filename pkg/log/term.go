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

package log

import (
	"regexp"
	"strings"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiFaint  = "\033[2m"
	ansiNormal = "\033[22m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiGrey   = "\033[90m"
)

// BoldFields are the fields whose values stand out on a terminal: what
// happened, to which input, and how long it took.
var BoldFields = []string{
	FieldMessage,
	FieldErrorMessage,
	"command",
	"event.duration",
	"file.path",
	"uuid",
	"token.length",
	"token.count",
}

var (
	RegexKeys      = regexp.MustCompile(`("[^"]+"\s*:)`)
	RegexBold      = valueRegexp(BoldFields...)
	RegexTimestamp = valueRegexp(FieldTimestamp)
)

// valueRegexp matches any of fields followed by its string or integer
// value, captured as $1 and $2.
func valueRegexp(fields ...string) *regexp.Regexp {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}
	return regexp.MustCompile(`("(?:` + strings.Join(quoted, "|") + `)"\s*:\s*)("(?:\\.|[^"\\])*"|\d+)`)
}

// enhanceJSONForTerminal applies ANSI escape codes to make the log output
// more readable in a terminal.
func enhanceJSONForTerminal(jsonStr string, level string) string {
	var lineColor string

	switch level {
	case LevelError:
		lineColor = ansiRed
	case LevelWarn:
		lineColor = ansiYellow
	case LevelDebug:
		lineColor = ansiGrey
	}

	// Values first, the key regexps need the keys unmodified.
	enhanced := RegexBold.ReplaceAllString(jsonStr, "$1"+ansiBold+"$2"+ansiNormal)
	enhanced = RegexTimestamp.ReplaceAllString(enhanced, "$1"+ansiFaint+"$2"+ansiNormal)
	enhanced = RegexKeys.ReplaceAllString(enhanced, ansiFaint+"$1"+ansiNormal)

	if lineColor != "" {
		// ansiNormal resets the colour on some terminals.
		enhanced = lineColor + strings.ReplaceAll(enhanced, ansiNormal, ansiNormal+lineColor) + ansiReset
	}

	return enhanced
}
