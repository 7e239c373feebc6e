// Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
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

package uuid

import (
	"fmt"
	"strings"

	guuid "github.com/google/uuid"
)

// Parse decodes s into a UUID.
//
// Hexadecimal digits may be in any case. Hyphens are ignored as long as 32
// digits remain, so both "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" and
// "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx" are accepted. The braced
// "{xxxxxxxx-...}" and "urn:uuid:xxxxxxxx-..." forms are accepted too.
func Parse(s string) (UUID, error) {
	in := s
	if compact := strings.ReplaceAll(s, "-", ""); len(compact) == 32 {
		in = compact
	}

	// google/uuid strips the first and last characters of any 38 character
	// input without looking at them.
	if len(in) == 38 && (in[0] != '{' || in[37] != '}') {
		return Nil, fmt.Errorf("%w %q: missing braces", ErrMalformed, s)
	}

	g, err := guuid.Parse(in)
	if err != nil {
		return Nil, fmt.Errorf("%w %q: %w", ErrMalformed, s, err)
	}
	return FromUUID(g), nil
}

// TryParse is like [Parse] but reports failure with ok instead of an error.
// On failure it returns [Nil].
func TryParse(s string) (u UUID, ok bool) {
	u, err := Parse(s)
	if err != nil {
		return Nil, false
	}
	return u, true
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromUUID converts a [guuid.UUID], which is already in canonical layout.
func FromUUID(g guuid.UUID) UUID {
	return fromCanonical((*[Size]byte)(&g))
}

// UUID returns u as a [guuid.UUID].
func (u UUID) UUID() guuid.UUID {
	return guuid.UUID(u.Bytes())
}
