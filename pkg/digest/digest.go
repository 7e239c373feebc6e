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

// Package digest computes and checks fingerprints written as
// "<algorithm>:<lowercase hex>", such as "sha256:64ec88ca...".
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/jlsalvador/enriched-utilities/pkg/enum"
)

var (
	ErrInvalidDigestFormat  = errors.New("invalid digest format")
	ErrEmptyAlgorithm       = errors.New("empty algorithm")
	ErrEmptyHash            = errors.New("empty hash")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrMismatch             = errors.New("digest mismatch")
)

const (
	SHA256 = "sha256"
	SHA512 = "sha512"
)

// Algorithms are the supported algorithm names.
var Algorithms = enum.MustNew(
	enum.Member[string]{Name: SHA256, Value: SHA256, Description: "SHA-256"},
	enum.Member[string]{Name: SHA512, Value: SHA512, Description: "SHA-512"},
)

var hashes = map[string]func() hash.Hash{
	SHA256: sha256.New,
	SHA512: sha512.New,
}

func Parse(digest string) (algo, hex string, err error) {
	algo, hex, ok := strings.Cut(digest, ":")
	if !ok {
		return "", "", ErrInvalidDigestFormat
	}

	if algo == "" {
		return "", "", ErrEmptyAlgorithm
	}
	if hex == "" {
		return "", "", ErrEmptyHash
	}

	return algo, hex, nil
}

// NewHash returns a new hash.Hash computing algo.
func NewHash(algo string) (hash.Hash, error) {
	newHash, ok := hashes[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algo)
	}
	return newHash(), nil
}

// Of returns the digest of data computed with algo.
func Of(algo string, data []byte) (string, error) {
	h, err := NewHash(algo)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return algo + ":" + hex.EncodeToString(h.Sum(nil)), nil
}

// Verify checks that digest is the fingerprint of data. The comparison
// takes constant time.
func Verify(digest string, data []byte) error {
	algo, _, err := Parse(digest)
	if err != nil {
		return err
	}

	want, err := Of(algo, data)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(strings.ToLower(digest)), []byte(want)) != 1 {
		return ErrMismatch
	}
	return nil
}
