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

// Package random generates random strings over an arbitrary alphabet,
// suitable for unguessable tokens.
//
// Every character is drawn from a cryptographically strong source with
// rejection sampling, so each character of the alphabet is equally likely
// whatever the size of the alphabet.
//
// Example:
//
//	token, err := random.String(32, random.DefaultAlphabet)
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultAlphabet is used when no alphabet is given.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890_"

// MaxAlphabetSize is the largest alphabet a single random byte can index.
const MaxAlphabetSize = math.MaxUint8 + 1

// MaxRejections bounds the consecutive rejected bytes for a single
// character. At most half of the byte values are ever rejected, so hitting
// it means the random source is broken.
const MaxRejections = 1024

var (
	ErrInvalidLength         = errors.New("length must be greater than zero")
	ErrInvalidAlphabet       = fmt.Errorf("alphabet must have between 1 and %d characters", MaxAlphabetSize)
	ErrRandomSourceExhausted = errors.New("random source exhausted")
)

// RandRead is the function used to read random bytes.
// It can be replaced for testing purposes.
var RandRead = rand.Read

// Sampler draws characters uniformly from an alphabet.
//
// A Sampler holds no mutable state and is safe for concurrent use. Use
// [NewSampler]: the zero value has no alphabet and always fails.
type Sampler struct {
	alphabet []rune
	// Bytes above maxAcceptable belong to the incomplete last residue class
	// modulo len(alphabet) and are rejected.
	maxAcceptable byte
}

// NewSampler returns a [Sampler] over the characters of alphabet, or over
// [DefaultAlphabet] if alphabet is empty. Characters may repeat, which
// weights them accordingly.
func NewSampler(alphabet string) (*Sampler, error) {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}

	runes := []rune(alphabet)
	if len(runes) > MaxAlphabetSize {
		return nil, ErrInvalidAlphabet
	}

	return &Sampler{
		alphabet:      runes,
		maxAcceptable: MaxAcceptable(len(runes)),
	}, nil
}

// MaxAcceptable returns the largest random byte accepted for an alphabet
// of n characters, 255 - (256 % n). n must be in [1, MaxAlphabetSize].
func MaxAcceptable(n int) byte {
	return byte(math.MaxUint8 - ((math.MaxUint8 + 1) % n))
}

// Alphabet returns the characters the sampler draws from.
func (s *Sampler) Alphabet() string { return string(s.alphabet) }

// String returns length random characters of the alphabet.
func (s *Sampler) String(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	if len(s.alphabet) == 0 {
		return "", ErrInvalidAlphabet
	}

	data := make([]byte, length)
	if err := read(data); err != nil {
		return "", err
	}

	n := len(s.alphabet)

	var sb strings.Builder
	sb.Grow(length)

	var one [1]byte
	for _, b := range data {
		for rejected := 0; b > s.maxAcceptable; rejected++ {
			if rejected == MaxRejections {
				return "", fmt.Errorf("%w: %d consecutive bytes rejected", ErrRandomSourceExhausted, rejected)
			}
			if err := read(one[:]); err != nil {
				return "", err
			}
			b = one[0]
		}
		sb.WriteRune(s.alphabet[int(b)%n])
	}

	return sb.String(), nil
}

func read(p []byte) error {
	n, err := RandRead(p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRandomSourceExhausted, err)
	}
	if n != len(p) {
		return fmt.Errorf("%w: read %d of %d bytes", ErrRandomSourceExhausted, n, len(p))
	}
	return nil
}

// String returns length random characters of alphabet, or of
// [DefaultAlphabet] if alphabet is empty.
func String(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	s, err := NewSampler(alphabet)
	if err != nil {
		return "", err
	}
	return s.String(length)
}

// MustString is like [String] but panics on error.
func MustString(length int, alphabet string) string {
	s, err := String(length, alphabet)
	if err != nil {
		panic(err)
	}
	return s
}
