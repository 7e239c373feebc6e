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

import "fmt"

// canonicalToMixed[i] is the canonical index of the byte stored at
// platform index i.
//
// Only time-low (4 bytes), time-mid (2) and time-hi (2) are reversed.
// Clock sequence and node (bytes 8..15) keep their order.
var canonicalToMixed = [Size]int{
	3, 2, 1, 0,
	5, 4,
	7, 6,
	8, 9, 10, 11, 12, 13, 14, 15,
}

// mixedToCanonical[i] is the platform index of the byte stored at
// canonical index i.
var mixedToCanonical = [Size]int{
	3, 2, 1, 0,
	5, 4,
	7, 6,
	8, 9, 10, 11, 12, 13, 14, 15,
}

func transpose(in *[Size]byte, table *[Size]int) (out [Size]byte) {
	for dst, src := range table {
		out[dst] = in[src]
	}
	return out
}

// PlatformBytes returns u in platform (mixed-endian) layout, the in-memory
// representation of a Windows or UEFI GUID.
func (u UUID) PlatformBytes() [Size]byte {
	if u == Nil {
		return [Size]byte{}
	}
	b := u.Bytes()
	return transpose(&b, &canonicalToMixed)
}

// FromPlatformBytes reads b in platform (mixed-endian) layout.
func FromPlatformBytes(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	in := (*[Size]byte)(b)
	if *in == [Size]byte{} {
		return Nil, nil
	}
	c := transpose(in, &mixedToCanonical)
	return fromCanonical(&c), nil
}
