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

package uuid

import (
	"strings"

	"github.com/jlsalvador/enriched-utilities/internal/cmd"
	"github.com/jlsalvador/enriched-utilities/internal/config"
	cliFlag "github.com/jlsalvador/enriched-utilities/pkg/cli/flag"
)

type Flags struct {
	CfgPath cliFlag.StringSlice

	Count       int
	Format      string
	Parse       cliFlag.StringSlice
	SkipInvalid bool
}

func parseFlags(args []string) (cfg *config.Config, flags Flags, err error) {
	defaults := config.Default()

	flagSet := cmd.NewFlagSet(CmdName)

	flagSet.Var(&flags.CfgPath, "config", "YAML configuration file or directory\nCould be specified multiple times or comma separated\nEnv: "+cmd.ENV_PREFIX+config.EnvConfig)
	flagSet.IntVar(&flags.Count, "count", defaults.UUID.Count, "Number of identifiers to generate\nEnv: "+cmd.ENV_PREFIX+config.EnvUUIDCount)
	flagSet.StringVar(&flags.Format, "format", defaults.UUID.Format, "Output format: "+formatsHelp()+"\nEnv: "+cmd.ENV_PREFIX+config.EnvUUIDFormat)
	flagSet.Var(&flags.Parse, "parse", "Parse this identifier instead of generating one\nCould be specified multiple times or comma separated")
	flagSet.BoolVar(&flags.SkipInvalid, "skip-invalid", false, "Log and skip the -parse values that are not identifiers")

	if err = flagSet.Parse(args); err != nil {
		return
	}
	// Positional arguments are parsed too.
	flags.Parse = append(flags.Parse, flagSet.Args()...)

	cfg, err = cmd.LoadConfig(flags.CfgPath)
	if err != nil {
		return
	}

	visited := cmd.Visited(flagSet)
	if visited["count"] {
		cfg.UUID.Count = flags.Count
	}
	if visited["format"] {
		cfg.UUID.Format = flags.Format
	}

	err = cmd.Apply(cfg)
	return
}

func formatsHelp() string {
	return strings.Join(config.UUIDFormats.Names(), ", ")
}
