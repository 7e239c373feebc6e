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

package generatehash

import (
	"context"
	"errors"
	"fmt"

	"github.com/jlsalvador/enriched-utilities/internal/cmd"
	"github.com/jlsalvador/enriched-utilities/pkg/cli/term"
	"github.com/jlsalvador/enriched-utilities/pkg/log"

	"golang.org/x/crypto/bcrypt"
)

const CmdName = "hash"
const CmdHelp = "Generate a bcrypt hash for the token read from stdin, or verify it"

var ErrMismatch = errors.New("token does not match the hash")

type Flags struct {
	Cost   int
	Verify string
}

func parseFlags(args []string) (flags Flags, err error) {
	flagSet := cmd.NewFlagSet(CmdName)
	flagSet.IntVar(&flags.Cost, "cost", bcrypt.DefaultCost, fmt.Sprintf("bcrypt cost, between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	flagSet.StringVar(&flags.Verify, "verify", "", "Compare the token with this hash instead of printing a new one")

	if err = flagSet.Parse(args); err != nil {
		return
	}
	if flagSet.NArg() > 0 {
		err = fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}
	return
}

func readToken() ([]byte, error) {
	isTTY := term.IsTerminal(cmd.Stdin)
	if isTTY {
		fmt.Fprint(cmd.Stderr, "Enter token (no echo): ")
	}

	token, err := term.ReadSecret(cmd.Stdin)

	if isTTY {
		fmt.Fprint(cmd.Stderr, "\n")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return token, nil
}

func CmdFn(_ context.Context, args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	token, err := readToken()
	if err != nil {
		return err
	}

	if flags.Verify != "" {
		err := bcrypt.CompareHashAndPassword([]byte(flags.Verify), token)
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		if err != nil {
			return err
		}
		log.Info("message", "token matches the hash").Print()
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword(token, flags.Cost)
	if err != nil {
		return err
	}

	return cmd.Lines(string(hash))
}
