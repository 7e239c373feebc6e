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
	"fmt"
	"strings"

	"github.com/jlsalvador/enriched-utilities/internal/cmd"
	"github.com/jlsalvador/enriched-utilities/internal/config"
	cliFlag "github.com/jlsalvador/enriched-utilities/pkg/cli/flag"
	"github.com/jlsalvador/enriched-utilities/pkg/digest"

	"golang.org/x/crypto/bcrypt"
)

type Flags struct {
	CfgPath cliFlag.StringSlice

	Length       int
	Count        int
	Alphabet     string
	AlphabetName string

	Unique        bool
	Digest        string
	Hash          bool
	HashCost      int
	ListAlphabets bool
}

func parseFlags(args []string) (cfg *config.Config, flags Flags, err error) {
	defaults := config.Default()

	flagSet := cmd.NewFlagSet(CmdName)

	flagSet.Var(&flags.CfgPath, "config", "YAML configuration file or directory\nCould be specified multiple times or comma separated\nEnv: "+cmd.ENV_PREFIX+config.EnvConfig)
	flagSet.IntVar(&flags.Length, "length", defaults.Token.Length, "Characters per token\nEnv: "+cmd.ENV_PREFIX+config.EnvTokenLength)
	flagSet.IntVar(&flags.Count, "count", defaults.Token.Count, "Number of tokens\nEnv: "+cmd.ENV_PREFIX+config.EnvTokenCount)
	flagSet.StringVar(&flags.Alphabet, "alphabet", "", "Characters to draw from, at most 256\nTakes precedence over -alphabet-name\nEnv: "+cmd.ENV_PREFIX+config.EnvTokenAlphabet)
	flagSet.StringVar(&flags.AlphabetName, "alphabet-name", "", "Named alphabet to draw from, see -list-alphabets\nEnv: "+cmd.ENV_PREFIX+config.EnvTokenAlphabetName)
	flagSet.BoolVar(&flags.Unique, "unique", false, "Never print the same token twice")
	flagSet.StringVar(&flags.Digest, "digest", "", "Print the digest of every token after it: "+strings.Join(digest.Algorithms.Names(), ", "))
	flagSet.BoolVar(&flags.Hash, "hash", false, "Print the bcrypt hash of every token after it")
	flagSet.IntVar(&flags.HashCost, "hash-cost", bcrypt.DefaultCost, "bcrypt cost of -hash")
	flagSet.BoolVar(&flags.ListAlphabets, "list-alphabets", false, "Print the named alphabets and exit")

	if err = flagSet.Parse(args); err != nil {
		return
	}

	cfg, err = cmd.LoadConfig(flags.CfgPath)
	if err != nil {
		return
	}

	visited := cmd.Visited(flagSet)
	if visited["length"] {
		cfg.Token.Length = flags.Length
	}
	if visited["count"] {
		cfg.Token.Count = flags.Count
	}
	if visited["alphabet"] {
		cfg.Token.Alphabet = flags.Alphabet
	}
	if visited["alphabet-name"] {
		// An explicit name wins over a literal alphabet set elsewhere.
		cfg.Token.AlphabetName = flags.AlphabetName
		if !visited["alphabet"] {
			cfg.Token.Alphabet = ""
		}
	}

	if flags.Digest != "" && !digest.Algorithms.IsDefined(flags.Digest) {
		err = fmt.Errorf("%w: %q", digest.ErrUnsupportedAlgorithm, flags.Digest)
		return
	}

	err = cmd.Apply(cfg)
	return
}
