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

package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/jlsalvador/enriched-utilities/internal/cmd"
	"github.com/jlsalvador/enriched-utilities/internal/config"
	"github.com/jlsalvador/enriched-utilities/pkg/async"
	"github.com/jlsalvador/enriched-utilities/pkg/log"
)

func capture(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()

	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	orgStdout, orgStderr := cmd.Stdout, cmd.Stderr
	cmd.Stdout, cmd.Stderr = stdout, stderr
	t.Cleanup(func() { cmd.Stdout, cmd.Stderr = orgStdout, orgStderr })

	return stdout, stderr
}

func TestRun(t *testing.T) {
	var gotArgs []string
	cmds := []cmd.Command{
		{Name: "echo", Help: "Echo the arguments", Fn: func(_ context.Context, args []string) error {
			gotArgs = args
			return nil
		}},
		{Name: "fail", Help: "Always fails", Fn: func(context.Context, []string) error {
			return errors.New("boom")
		}},
		{Name: "flags", Help: "Asks for help", Fn: func(context.Context, []string) error {
			return flag.ErrHelp
		}},
		{Name: "panic", Help: "Panics", Fn: func(context.Context, []string) error {
			panic("oops")
		}},
	}

	t.Run("dispatch", func(t *testing.T) {
		capture(t)
		if err := cmd.Run(t.Context(), cmds, []string{"echo", "a", "-b"}); err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}
		if strings.Join(gotArgs, " ") != "a -b" {
			t.Errorf("command got %v", gotArgs)
		}
	})

	t.Run("error", func(t *testing.T) {
		capture(t)
		if err := cmd.Run(t.Context(), cmds, []string{"fail"}); err == nil || err.Error() != "boom" {
			t.Errorf("Run() error = %v, want boom", err)
		}
	})

	t.Run("help requested by the command", func(t *testing.T) {
		capture(t)
		if err := cmd.Run(t.Context(), cmds, []string{"flags", "-h"}); err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	})

	t.Run("panic", func(t *testing.T) {
		capture(t)
		var panicErr *async.PanicError
		if err := cmd.Run(t.Context(), cmds, []string{"panic"}); !errors.As(err, &panicErr) {
			t.Errorf("Run() error = %v, want *async.PanicError", err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, stderr := capture(t)
		err := cmd.Run(t.Context(), cmds, []string{"nope"})
		if !errors.Is(err, cmd.ErrUnknownCommand) {
			t.Errorf("Run() error = %v, want ErrUnknownCommand", err)
		}
		if !strings.Contains(stderr.String(), "echo") {
			t.Error("usage should be printed to stderr")
		}
	})

	for _, args := range [][]string{nil, {"help"}, {"-h"}, {"--help"}} {
		t.Run("usage "+strings.Join(args, ""), func(t *testing.T) {
			stdout, _ := capture(t)
			if err := cmd.Run(t.Context(), cmds, args); err != nil {
				t.Fatalf("Run() returned error: %v", err)
			}
			for _, want := range []string{"echo", "Echo the arguments", "fail", "help", cmd.ENV_PREFIX} {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("usage does not contain %q:\n%s", want, stdout)
				}
			}
		})
	}
}

func TestApply(t *testing.T) {
	orgLevel, orgPretty := log.DefaultLevel, log.DefaultPrettyPrint
	defer func() { log.DefaultLevel, log.DefaultPrettyPrint = orgLevel, orgPretty }()

	cfg := config.Default()
	cfg.Log.Level = "WARN"
	cfg.Log.Pretty = true

	if err := cmd.Apply(cfg); err != nil {
		t.Fatalf("Apply() returned error: %v", err)
	}
	if log.DefaultLevel != log.LevelWarn || !log.DefaultPrettyPrint {
		t.Errorf("logger not configured: level=%s pretty=%v", log.DefaultLevel, log.DefaultPrettyPrint)
	}

	cfg.Token.Length = 0
	if err := cmd.Apply(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Apply() error = %v, want ErrInvalidConfig", err)
	}
}

func TestVisited(t *testing.T) {
	flagSet := cmd.NewFlagSet("test")
	flagSet.Int("a", 1, "")
	flagSet.Int("b", 2, "")

	if err := flagSet.Parse([]string{"-b", "3"}); err != nil {
		t.Fatal(err)
	}

	visited := cmd.Visited(flagSet)
	if visited["a"] || !visited["b"] {
		t.Errorf("Visited() = %v", visited)
	}
}

func TestLines(t *testing.T) {
	stdout, _ := capture(t)

	if err := cmd.Lines(); err != nil || stdout.Len() != 0 {
		t.Errorf("Lines() wrote %q, %v", stdout, err)
	}
	if err := cmd.Lines("a", "b"); err != nil || stdout.String() != "a\nb\n" {
		t.Errorf("Lines(a, b) wrote %q, %v", stdout, err)
	}
}
