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

package token

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/jlsalvador/enriched-utilities/internal/cmd"
	"github.com/jlsalvador/enriched-utilities/internal/config"
	"github.com/jlsalvador/enriched-utilities/pkg/digest"
	"github.com/jlsalvador/enriched-utilities/pkg/enum"
	"github.com/jlsalvador/enriched-utilities/pkg/iter"
	"github.com/jlsalvador/enriched-utilities/pkg/log"
	"github.com/jlsalvador/enriched-utilities/pkg/mapset"
	"github.com/jlsalvador/enriched-utilities/pkg/random"

	"golang.org/x/crypto/bcrypt"
)

const CmdName = "token"
const CmdHelp = "Generate random tokens, optionally with their digest or bcrypt hash"

// MaxDuplicates bounds the consecutive duplicated tokens drawn with
// -unique before giving up.
const MaxDuplicates = 1000

var ErrTooFewTokens = errors.New("not enough distinct tokens")

func CmdFn(ctx context.Context, args []string) error {
	cfg, flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.ListAlphabets {
		return listAlphabets(cfg)
	}

	alphabet, err := cfg.TokenAlphabet()
	if err != nil {
		return err
	}
	sampler, err := random.NewSampler(alphabet)
	if err != nil {
		return err
	}

	log.Debug(
		"message", "generating tokens",
		"token.length", cfg.Token.Length,
		"token.count", cfg.Token.Count,
		"token.alphabet.size", len([]rune(sampler.Alphabet())),
	).Print()

	tokens, err := generate(ctx, sampler, cfg.Token.Length, cfg.Token.Count, flags.Unique)
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(tokens))
	for _, token := range tokens {
		fields := []string{token}

		if flags.Digest != "" {
			d, err := digest.Of(flags.Digest, []byte(token))
			if err != nil {
				return err
			}
			fields = append(fields, d)
		}

		if flags.Hash {
			hash, err := bcrypt.GenerateFromPassword([]byte(token), flags.HashCost)
			if err != nil {
				return fmt.Errorf("failed to hash token: %w", err)
			}
			fields = append(fields, string(hash))
		}

		lines = append(lines, strings.Join(fields, "\t"))
	}

	return cmd.Lines(lines...)
}

func generate(ctx context.Context, sampler *random.Sampler, length, count int, unique bool) ([]string, error) {
	if unique {
		// Distinct tokens available: size^length.
		size := float64(len([]rune(sampler.Alphabet())))
		if math.Pow(size, float64(length)) < float64(count) {
			return nil, fmt.Errorf("%w: %d tokens of %d characters over %v characters", ErrTooFewTokens, count, length, size)
		}
	}

	seen := mapset.NewMapSet[string]()
	tokens := make([]string, 0, count)
	duplicates := 0

	for len(tokens) < count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := sampler.String(length)
		if err != nil {
			return nil, err
		}

		if unique && !seen.TryAdd(token) {
			duplicates++
			if duplicates >= MaxDuplicates {
				return nil, fmt.Errorf("%w: %d duplicates in a row", ErrTooFewTokens, duplicates)
			}
			continue
		}
		duplicates = 0

		tokens = append(tokens, token)
	}

	return tokens, nil
}

type namedAlphabet struct {
	name, characters, description string
}

func listAlphabets(cfg *config.Config) error {
	custom := iter.Map(slices.Values(slices.Sorted(maps.Keys(cfg.Alphabets))), func(name string) namedAlphabet {
		a := cfg.Alphabets[name]
		return namedAlphabet{name, a.Characters, a.Description}
	})

	builtin := iter.Map(
		iter.Filter(slices.Values(config.BuiltinAlphabets.Info(nil)), func(m enum.Member[string]) bool {
			_, hidden := cfg.Alphabets[m.Name]
			return !hidden
		}),
		func(m enum.Member[string]) namedAlphabet {
			description, _ := config.BuiltinAlphabets.Description(m.Value, true)
			return namedAlphabet{m.Name, m.Value, description}
		},
	)

	lines := []string{}
	for a := range iter.Concat(custom, builtin) {
		lines = append(lines, a.name+"\t"+a.characters+"\t"+a.description)
	}

	return cmd.Lines(lines...)
}
