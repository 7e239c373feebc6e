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

// Package cmd dispatches the subcommands of the enriched command.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jlsalvador/enriched-utilities/internal/config"
	"github.com/jlsalvador/enriched-utilities/internal/version"
	"github.com/jlsalvador/enriched-utilities/pkg/async"
	"github.com/jlsalvador/enriched-utilities/pkg/log"
	"github.com/jlsalvador/enriched-utilities/pkg/stopwatch"
)

const ENV_PREFIX = config.EnvPrefix

var ErrUnknownCommand = errors.New("unknown command")

// Standard streams of the commands. Replaced by tests.
var (
	Stdin  *os.File  = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Command is a subcommand. Fn receives the arguments after the command
// name.
type Command struct {
	Name string
	Help string
	Fn   func(ctx context.Context, args []string) error
}

func isHelp(arg string) bool {
	return arg == "help" || arg == "-h" || arg == "-help" || arg == "--help"
}

// Usage prints the available commands to w.
func Usage(w io.Writer, cmds []Command) {
	fmt.Fprintf(w, "%s v%s\n", version.AppName, version.AppVersion)
	fmt.Fprintf(w, "Random tokens and dual layout identifiers.\n\n")
	fmt.Fprintf(w, "Usage:\n  %s <command> [options]\n\nCommands:\n", version.AppName)

	width := len("help")
	for _, c := range cmds {
		width = max(width, len(c.Name))
	}
	for _, c := range cmds {
		fmt.Fprintf(w, "  %-*s  %s\n", width, c.Name, c.Help)
	}
	fmt.Fprintf(w, "  %-*s  %s\n", width, "help", "Print this help and exit")

	fmt.Fprintf(w, "\nRun '%s <command> -h' for the options of a command.\n", version.AppName)
	fmt.Fprintf(w, "Environment variables are prefixed with %s.\n", ENV_PREFIX)
}

// Run runs the command named by args[0].
func Run(ctx context.Context, cmds []Command, args []string) error {
	if len(args) == 0 || isHelp(args[0]) {
		Usage(Stdout, cmds)
		return nil
	}

	name := args[0]
	i := slices.IndexFunc(cmds, func(c Command) bool { return c.Name == name })
	if i < 0 {
		Usage(Stderr, cmds)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	c := cmds[i]

	elapsed, err := stopwatch.MeasureErr(func() error {
		return async.Run(ctx, func(ctx context.Context) error {
			return c.Fn(ctx, args[1:])
		})
	})

	log.Debug(
		"message", "command finished",
		"command", c.Name,
		"event.duration", elapsed.Nanoseconds(),
	).Print()

	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

// NewFlagSet returns a flag set that reports errors instead of exiting.
func NewFlagSet(name string) *flag.FlagSet {
	flagSet := flag.NewFlagSet(version.AppName+" "+name, flag.ContinueOnError)
	flagSet.SetOutput(Stderr)
	return flagSet
}

// LoadConfig loads the configuration from paths, or from the paths listed
// in ENRICHED_CONFIG if there are none.
func LoadConfig(paths []string) (*config.Config, error) {
	if len(paths) == 0 {
		paths = config.Paths()
	}
	return config.Load(paths)
}

// Apply validates cfg and configures the logger with it.
func Apply(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log.DefaultLevel = level
	log.DefaultPrettyPrint = cfg.Log.Pretty

	return nil
}

// Visited returns the names of the flags set on the command line.
func Visited(flagSet *flag.FlagSet) map[string]bool {
	visited := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { visited[f.Name] = true })
	return visited
}

// Lines writes every item to Stdout, one per line.
func Lines(items ...string) error {
	if len(items) == 0 {
		return nil
	}
	_, err := io.WriteString(Stdout, strings.Join(items, "\n")+"\n")
	return err
}
