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
	"context"
	"fmt"

	"github.com/jlsalvador/enriched-utilities/internal/cmd"
	"github.com/jlsalvador/enriched-utilities/internal/config"
	"github.com/jlsalvador/enriched-utilities/pkg/log"
	identifier "github.com/jlsalvador/enriched-utilities/pkg/uuid"
)

const CmdName = "uuid"
const CmdHelp = "Generate or parse identifiers and print them in several layouts"

func CmdFn(ctx context.Context, args []string) error {
	cfg, flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	format := cfg.UUIDFormat()

	if len(flags.Parse) > 0 {
		return parse(ctx, flags.Parse, format, flags.SkipInvalid)
	}
	return generate(ctx, cfg.UUID.Count, format)
}

func generate(ctx context.Context, count int, format config.UUIDFormat) error {
	lines := make([]string, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return err
		}

		u, err := identifier.New()
		if err != nil {
			return err
		}
		lines = append(lines, Format(u, format))
	}

	return cmd.Lines(lines...)
}

func parse(ctx context.Context, values []string, format config.UUIDFormat, skipInvalid bool) error {
	lines := make([]string, 0, len(values))
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return err
		}

		if skipInvalid {
			u, ok := identifier.TryParse(v)
			if !ok {
				log.Warn(
					"message", "skipping invalid identifier",
					"uuid", v,
				).Print()
				continue
			}
			lines = append(lines, Format(u, format))
			continue
		}

		u, err := identifier.Parse(v)
		if err != nil {
			return err
		}
		lines = append(lines, Format(u, format))
	}

	return cmd.Lines(lines...)
}

// Format renders u in format.
func Format(u identifier.UUID, format config.UUIDFormat) string {
	switch format {
	case config.FormatBytes:
		b := u.Bytes()
		return fmt.Sprintf("%X", b[:])
	case config.FormatPlatform:
		b := u.PlatformBytes()
		return fmt.Sprintf("%X", b[:])
	case config.FormatParts:
		return fmt.Sprintf("%016X %016X", u.MostSignificantBits(), u.LeastSignificantBits())
	case config.FormatGUID:
		g := u.GUID()
		return fmt.Sprintf("%08X %04X %04X %X", g.Data1, g.Data2, g.Data3, g.Data4[:])
	default:
		return u.String()
	}
}
