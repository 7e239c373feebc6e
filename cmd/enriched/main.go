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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlsalvador/enriched-utilities/internal/cmd"
	generatehash "github.com/jlsalvador/enriched-utilities/internal/cmd/generate_hash"
	"github.com/jlsalvador/enriched-utilities/internal/cmd/token"
	"github.com/jlsalvador/enriched-utilities/internal/cmd/uuid"
	"github.com/jlsalvador/enriched-utilities/internal/cmd/version"
	"github.com/jlsalvador/enriched-utilities/internal/config"
	"github.com/jlsalvador/enriched-utilities/pkg/common"
	"github.com/jlsalvador/enriched-utilities/pkg/log"
)

var commands = []cmd.Command{
	{Name: uuid.CmdName, Help: uuid.CmdHelp, Fn: uuid.CmdFn},
	{Name: token.CmdName, Help: token.CmdHelp, Fn: token.CmdFn},
	{Name: generatehash.CmdName, Help: generatehash.CmdHelp, Fn: generatehash.CmdFn},
	{Name: version.CmdName, Help: version.CmdHelp, Fn: version.CmdFn},
}

func main() {
	// Commands reconfigure the logger once their configuration is loaded.
	if level, err := log.ParseLevel(common.GetEnv(cmd.ENV_PREFIX+config.EnvLogLevel, log.LevelInfo)); err == nil {
		log.DefaultLevel = level
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Run(ctx, commands, os.Args[1:])
	stop()

	if err != nil {
		log.Error(
			"message", "command failed",
		).Err(err).Print()
		os.Exit(1)
	}
}
