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

package config

import (
	"github.com/jlsalvador/enriched-utilities/pkg/enum"
	"github.com/jlsalvador/enriched-utilities/pkg/random"
)

// UUIDFormat is how the uuid command prints an identifier.
type UUIDFormat int

const (
	FormatCanonical UUIDFormat = iota
	FormatBytes
	FormatPlatform
	FormatParts
	FormatGUID
)

var UUIDFormats = enum.MustNew(
	enum.Member[UUIDFormat]{Name: "canonical", Value: FormatCanonical, Description: "Uppercase hyphenated text"},
	enum.Member[UUIDFormat]{Name: "bytes", Value: FormatBytes, Description: "Canonical big-endian bytes, in hex"},
	enum.Member[UUIDFormat]{Name: "platform", Value: FormatPlatform, Description: "Mixed-endian platform bytes, in hex"},
	enum.Member[UUIDFormat]{Name: "parts", Value: FormatParts, Description: "Most and least significant 64-bit halves, in hex"},
	enum.Member[UUIDFormat]{Name: "guid", Value: FormatGUID, Description: "Platform struct fields Data1, Data2, Data3 and Data4"},
)

func (f UUIDFormat) String() string {
	if m, ok := UUIDFormats.Member(f); ok {
		return m.Name
	}
	return "unknown"
}

// BuiltinAlphabets are available to every configuration by name.
var BuiltinAlphabets = enum.MustNew(
	enum.Member[string]{Name: "default", Value: random.DefaultAlphabet, Description: "Letters, digits and underscore"},
	enum.Member[string]{Name: "alphanumeric", Value: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"},
	enum.Member[string]{Name: "hex", Value: "0123456789abcdef", Description: "Lowercase hexadecimal digits"},
	enum.Member[string]{Name: "numeric", Value: "0123456789", Description: "Decimal digits"},
	enum.Member[string]{Name: "base32", Value: "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", Description: "RFC 4648 base32 alphabet"},
)
