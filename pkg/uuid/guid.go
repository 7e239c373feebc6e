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
	"encoding/binary"
	"fmt"
)

// GUID is the platform identifier value, with the same fields as the
// Windows and UEFI GUID struct. Its 16-byte encoding is the platform
// (mixed-endian) layout.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// GUID returns u as a platform value.
func (u UUID) GUID() GUID {
	if u == Nil {
		return GUID{}
	}
	g := GUID{
		Data1: uint32(u.msb >> 32),
		Data2: uint16(u.msb >> 16),
		Data3: uint16(u.msb),
	}
	binary.BigEndian.PutUint64(g.Data4[:], u.lsb)
	return g
}

// FromGUID returns the UUID holding the same value as g.
func FromGUID(g GUID) UUID {
	if g == (GUID{}) {
		return Nil
	}
	return UUID{
		msb: uint64(g.Data1)<<32 | uint64(g.Data2)<<16 | uint64(g.Data3),
		lsb: binary.BigEndian.Uint64(g.Data4[:]),
	}
}

// Bytes returns the in-memory representation of g: Data1, Data2 and Data3
// little-endian, Data4 as is.
func (g GUID) Bytes() (b [Size]byte) {
	binary.LittleEndian.PutUint32(b[0:4], g.Data1)
	binary.LittleEndian.PutUint16(b[4:6], g.Data2)
	binary.LittleEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:], g.Data4[:])
	return b
}

// GUIDFromBytes reads the in-memory representation of a GUID.
func GUIDFromBytes(b []byte) (GUID, error) {
	if len(b) != Size {
		return GUID{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	g := GUID{
		Data1: binary.LittleEndian.Uint32(b[0:4]),
		Data2: binary.LittleEndian.Uint16(b[4:6]),
		Data3: binary.LittleEndian.Uint16(b[6:8]),
	}
	copy(g.Data4[:], b[8:])
	return g, nil
}

func (g GUID) String() string { return FromGUID(g).String() }
