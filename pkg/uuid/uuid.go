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

// Package uuid provides a 128-bit identifier that converts losslessly
// between two byte layouts:
//
//   - the canonical layout, big-endian and in the same order as the textual
//     form "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx";
//   - the platform (mixed-endian) layout used by Windows and UEFI GUIDs,
//     where the first three groups are stored little-endian.
//
// The most significant 64 bits are kept split in the platform fields
// (Data1, Data2, Data3), so [UUID.GUID] and [FromGUID] never permute bytes.
// Only the 16-byte platform encoding does.
//
// Example:
//
//	id := uuid.MustParse("00112233-4455-6677-8899-AABBCCDDEEFF")
//	id.Bytes()         // 00 11 22 33 44 55 66 77 88 99 AA BB CC DD EE FF
//	id.PlatformBytes() // 33 22 11 00 55 44 77 66 88 99 AA BB CC DD EE FF
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

// Size is the length in bytes of both binary layouts.
const Size = 16

var (
	ErrInvalidLength = errors.New("invalid uuid length")
	ErrMalformed     = errors.New("malformed uuid")
)

// RandRead is the function used to read random bytes.
// It can be replaced for testing purposes.
var RandRead = rand.Read

// UUID is an immutable 128-bit identifier.
//
// msb holds the first three textual groups as
// Data1<<32 | Data2<<16 | Data3, lsb holds the last two groups. Two values
// are equal when both halves are equal, so UUID is usable with == and as a
// map key.
type UUID struct {
	msb uint64
	lsb uint64
}

// Nil is the empty identifier, 00000000-0000-0000-0000-000000000000.
var Nil UUID

// FromParts returns the identifier made of the given halves, verbatim.
func FromParts(mostSignificantBits, leastSignificantBits uint64) UUID {
	return UUID{msb: mostSignificantBits, lsb: leastSignificantBits}
}

// FromBytes reads b in canonical (big-endian) layout.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	return fromCanonical((*[Size]byte)(b)), nil
}

// MustFromBytes is like [FromBytes] but panics on error.
func MustFromBytes(b []byte) UUID {
	u, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return u
}

func fromCanonical(b *[Size]byte) UUID {
	return UUID{
		msb: binary.BigEndian.Uint64(b[0:8]),
		lsb: binary.BigEndian.Uint64(b[8:16]),
	}
}

// New generates a new UUID from [Size] random bytes.
//
// No version or variant bits are set: all 128 bits come from [RandRead].
func New() (UUID, error) {
	var b [Size]byte
	if _, err := RandRead(b[:]); err != nil {
		return Nil, err
	}
	return fromCanonical(&b), nil
}

// MustNew generates a UUID and panics on error.
func MustNew() UUID {
	u, err := New()
	if err != nil {
		panic(err)
	}
	return u
}

func (u UUID) MostSignificantBits() uint64  { return u.msb }
func (u UUID) LeastSignificantBits() uint64 { return u.lsb }

// IsNil reports whether u is the empty identifier.
func (u UUID) IsNil() bool { return u == Nil }

// Bytes returns u in canonical (big-endian) layout.
func (u UUID) Bytes() (b [Size]byte) {
	binary.BigEndian.PutUint64(b[0:8], u.msb)
	binary.BigEndian.PutUint64(b[8:16], u.lsb)
	return b
}

// String returns the uppercase form XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX.
func (u UUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%04X-%012X",
		u.msb>>32,
		u.msb>>16&0xffff,
		u.msb&0xffff,
		u.lsb>>48,
		u.lsb&0xffffffffffff)
}
