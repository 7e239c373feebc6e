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

package uuid_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"regexp"
	"testing"

	u "github.com/jlsalvador/enriched-utilities/pkg/uuid"
)

func TestNew(t *testing.T) {
	uuid, err := u.New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if uuid.IsNil() {
		t.Error("New() returned the Nil UUID")
	}
}

func TestNew_Uniqueness(t *testing.T) {
	uuid1, err := u.New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	uuid2, err := u.New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if uuid1 == uuid2 {
		t.Error("Two consecutive UUIDs should not be equal")
	}
}

func TestNew_UsesEveryRandomBit(t *testing.T) {
	oldReader := u.RandRead
	defer func() { u.RandRead = oldReader }()

	u.RandRead = func(p []byte) (int, error) {
		for i := range p {
			p[i] = 0xff
		}
		return len(p), nil
	}

	uuid := u.MustNew()
	want := u.FromParts(0xffffffffffffffff, 0xffffffffffffffff)
	if uuid != want {
		t.Errorf("New() = %s, want %s (no version or variant bits)", uuid, want)
	}
}

func TestNew_Error(t *testing.T) {
	oldReader := u.RandRead
	defer func() { u.RandRead = oldReader }()

	u.RandRead = failingReader

	uuid, err := u.New()
	if err == nil {
		t.Error("New() should return error when rand.Read fails")
	}
	if !uuid.IsNil() {
		t.Errorf("New() = %s on error, want Nil", uuid)
	}
}

func TestMustNew_Panic(t *testing.T) {
	oldReader := u.RandRead
	defer func() { u.RandRead = oldReader }()

	u.RandRead = failingReader

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustNew() should panic when New() returns error")
		}
	}()

	u.MustNew()
}

func TestFromParts(t *testing.T) {
	uuid := u.FromParts(0x0123456789abcdef, 0xfedcba9876543210)

	if got := uuid.MostSignificantBits(); got != 0x0123456789abcdef {
		t.Errorf("MostSignificantBits() = %#x", got)
	}
	if got := uuid.LeastSignificantBits(); got != 0xfedcba9876543210 {
		t.Errorf("LeastSignificantBits() = %#x", got)
	}
}

func TestUUID_String(t *testing.T) {
	tests := []struct {
		name string
		uuid u.UUID
		want string
	}{
		{
			name: "Nil",
			uuid: u.Nil,
			want: "00000000-0000-0000-0000-000000000000",
		},
		{
			name: "Nibble windows",
			uuid: u.FromParts(0x0123456789abcdef, 0xfedcba9876543210),
			want: "01234567-89AB-CDEF-FEDC-BA9876543210",
		},
		{
			name: "Leading zeros are kept",
			uuid: u.FromParts(0x00000001_0002_0003, 0x0004_000000000005),
			want: "00000001-0002-0003-0004-000000000005",
		},
		{
			name: "All bits set",
			uuid: u.FromParts(0xffffffffffffffff, 0xffffffffffffffff),
			want: "FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.uuid.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUUID_String_Format(t *testing.T) {
	uuid := u.MustNew()

	str := uuid.String()

	pattern := `^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`
	matched, err := regexp.MatchString(pattern, str)
	if err != nil {
		t.Fatalf("regexp.MatchString() error: %v", err)
	}

	if !matched {
		t.Errorf("UUID string format = %q, want format matching %q", str, pattern)
	}
}

func TestFromBytes(t *testing.T) {
	b := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}

	uuid, err := u.FromBytes(b)
	if err != nil {
		t.Fatalf("FromBytes() returned error: %v", err)
	}

	if got, want := uuid.String(), "00112233-4455-6677-8899-AABBCCDDEEFF"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := uuid.Bytes(); !bytes.Equal(got[:], b) {
		t.Errorf("Bytes() = % x, want % x", got, b)
	}
}

func TestFromBytes_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 15, 17, 32} {
		uuid, err := u.FromBytes(make([]byte, n))
		if !errors.Is(err, u.ErrInvalidLength) {
			t.Errorf("FromBytes(%d bytes) error = %v, want ErrInvalidLength", n, err)
		}
		if !uuid.IsNil() {
			t.Errorf("FromBytes(%d bytes) = %s, want Nil", n, uuid)
		}
	}

	if _, err := u.FromBytes(nil); !errors.Is(err, u.ErrInvalidLength) {
		t.Errorf("FromBytes(nil) error = %v, want ErrInvalidLength", err)
	}
}

func TestMustFromBytes_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromBytes() should panic on a 15 bytes buffer")
		}
	}()

	u.MustFromBytes(make([]byte, 15))
}

func TestBytes_RoundTrip(t *testing.T) {
	for range 1000 {
		b := make([]byte, u.Size)
		if _, err := rand.Read(b); err != nil {
			t.Fatal(err)
		}

		uuid := u.MustFromBytes(b)
		if got := uuid.Bytes(); !bytes.Equal(got[:], b) {
			t.Fatalf("Bytes(FromBytes(% x)) = % x", b, got)
		}
	}
}

func TestNil(t *testing.T) {
	if !u.Nil.IsNil() {
		t.Error("Nil.IsNil() = false")
	}
	if u.FromParts(0, 0) != u.Nil {
		t.Error("FromParts(0, 0) != Nil")
	}
	if u.FromParts(0, 1).IsNil() {
		t.Error("FromParts(0, 1).IsNil() = true")
	}

	zero := make([]byte, u.Size)

	if got := u.Nil.Bytes(); !bytes.Equal(got[:], zero) {
		t.Errorf("Nil.Bytes() = % x", got)
	}
	if got := u.Nil.PlatformBytes(); !bytes.Equal(got[:], zero) {
		t.Errorf("Nil.PlatformBytes() = % x", got)
	}
	if got := u.MustFromBytes(zero); got != u.Nil {
		t.Errorf("FromBytes(zero) = %s", got)
	}
	if got, err := u.FromPlatformBytes(zero); err != nil || got != u.Nil {
		t.Errorf("FromPlatformBytes(zero) = %s, %v", got, err)
	}
	if got := u.Nil.GUID(); got != (u.GUID{}) {
		t.Errorf("Nil.GUID() = %+v", got)
	}
	if got := u.FromGUID(u.GUID{}); got != u.Nil {
		t.Errorf("FromGUID(zero) = %s", got)
	}
	if got := u.FromUUID(u.Nil.UUID()); got != u.Nil {
		t.Errorf("FromUUID(Nil.UUID()) = %s", got)
	}
	if got := u.MustParse(u.Nil.String()); got != u.Nil {
		t.Errorf("Parse(Nil.String()) = %s", got)
	}
}

// failingReader is a reader that always returns an error
func failingReader(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func BenchmarkNew(b *testing.B) {
	for b.Loop() {
		_, _ = u.New()
	}
}

func BenchmarkString(b *testing.B) {
	uuid := u.MustNew()

	for b.Loop() {
		_ = uuid.String()
	}
}

func BenchmarkPlatformBytes(b *testing.B) {
	uuid := u.MustNew()

	for b.Loop() {
		_ = uuid.PlatformBytes()
	}
}
