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

// Package config holds the settings of the enriched command.
//
// Settings are resolved in this order, the last one winning: defaults,
// YAML manifests, ENRICHED_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"maps"

	"github.com/jlsalvador/enriched-utilities/pkg/log"
	"github.com/jlsalvador/enriched-utilities/pkg/random"
)

const EnvPrefix = "ENRICHED_"

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownAlphabet = errors.New("unknown alphabet")
)

type Token struct {
	Length       int
	Count        int
	Alphabet     string // Literal characters, takes precedence over AlphabetName.
	AlphabetName string // A custom or builtin alphabet.
}

type UUID struct {
	Count  int
	Format string // One of UUIDFormats names.
}

type Log struct {
	Level  string
	Pretty bool
}

// Alphabet is a named set of characters for tokens.
type Alphabet struct {
	Characters  string
	Description string
}

type Config struct {
	Token Token
	UUID  UUID
	Log   Log

	// Alphabets declared by the configuration files, by name. They hide the
	// builtin alphabets of the same name.
	Alphabets map[string]Alphabet
}

func Default() *Config {
	return &Config{
		Token: Token{
			Length: 32,
			Count:  1,
		},
		UUID: UUID{
			Count:  1,
			Format: FormatCanonical.String(),
		},
		Log: Log{
			Level: log.LevelInfo,
		},
		Alphabets: map[string]Alphabet{},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Alphabets = maps.Clone(c.Alphabets)
	return &clone
}

// TokenAlphabet returns the characters tokens are drawn from. An empty
// result means [random.DefaultAlphabet].
func (c *Config) TokenAlphabet() (string, error) {
	if c.Token.Alphabet != "" {
		return c.Token.Alphabet, nil
	}
	if c.Token.AlphabetName == "" {
		return "", nil
	}
	return c.LookupAlphabet(c.Token.AlphabetName)
}

// LookupAlphabet returns the characters of the custom or builtin alphabet
// called name.
func (c *Config) LookupAlphabet(name string) (string, error) {
	if a, ok := c.Alphabets[name]; ok {
		return a.Characters, nil
	}
	if m, ok := BuiltinAlphabets.Lookup(name); ok {
		return m.Value, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
}

// Validate checks every setting, returning all the problems found.
func (c *Config) Validate() error {
	var errs []error

	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Token.Length <= 0 {
		invalid("token.length must be greater than zero, got %d", c.Token.Length)
	}
	if c.Token.Count <= 0 {
		invalid("token.count must be greater than zero, got %d", c.Token.Count)
	}
	if alphabet, err := c.TokenAlphabet(); err != nil {
		errs = append(errs, err)
	} else if _, err := random.NewSampler(alphabet); err != nil {
		errs = append(errs, fmt.Errorf("token alphabet: %w", err))
	}

	for name, a := range c.Alphabets {
		if a.Characters == "" {
			invalid("alphabet %q has no characters", name)
		} else if _, err := random.NewSampler(a.Characters); err != nil {
			errs = append(errs, fmt.Errorf("alphabet %q: %w", name, err))
		}
	}

	if c.UUID.Count <= 0 {
		invalid("uuid.count must be greater than zero, got %d", c.UUID.Count)
	}
	if !UUIDFormats.IsDefined(c.UUID.Format) {
		invalid("uuid.format must be one of %v, got %q", UUIDFormats.Names(), c.UUID.Format)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// UUIDFormat returns the configured output format of identifiers.
// The configuration must be valid.
func (c *Config) UUIDFormat() UUIDFormat {
	m, ok := UUIDFormats.Lookup(c.UUID.Format)
	if !ok {
		return FormatCanonical
	}
	return m.Value
}
