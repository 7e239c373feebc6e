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

package config

import (
	"fmt"

	"github.com/jlsalvador/enriched-utilities/pkg/yamlscheme"
)

const ApiVersion = "enriched-utilities.jlsalvador.online/v1"

// Scheme decodes the manifests of the configuration files.
var Scheme = yamlscheme.NewScheme()

// SettingsManifest overrides the settings it names. Absent fields keep
// their previous value.
type SettingsManifest struct {
	yamlscheme.CommonManifest `json:",inline" yaml:",inline"`

	Metadata struct {
		Name string `json:"name" yaml:"name"`
	} `json:"metadata" yaml:"metadata"`
	Spec struct {
		Token struct {
			Length       *int    `json:"length,omitempty" yaml:"length,omitempty"`
			Count        *int    `json:"count,omitempty" yaml:"count,omitempty"`
			Alphabet     *string `json:"alphabet,omitempty" yaml:"alphabet,omitempty"`         // Literal characters.
			AlphabetName *string `json:"alphabetName,omitempty" yaml:"alphabetName,omitempty"` // Name of an Alphabet manifest or a builtin alphabet.
		} `json:"token" yaml:"token"`
		UUID struct {
			Count  *int    `json:"count,omitempty" yaml:"count,omitempty"`
			Format *string `json:"format,omitempty" yaml:"format,omitempty"` // "canonical", "bytes", "platform", "parts" or "guid".
		} `json:"uuid" yaml:"uuid"`
		Log struct {
			Level  *string `json:"level,omitempty" yaml:"level,omitempty"` // "debug", "info", "warn" or "error".
			Pretty *bool   `json:"pretty,omitempty" yaml:"pretty,omitempty"`
		} `json:"log" yaml:"log"`
	} `json:"spec" yaml:"spec"`
}

type AlphabetManifest struct {
	yamlscheme.CommonManifest `json:",inline" yaml:",inline"`

	Metadata struct {
		Name string `json:"name" yaml:"name"`
	} `json:"metadata" yaml:"metadata"`
	Spec struct {
		Characters  string `json:"characters" yaml:"characters"`
		Description string `json:"description,omitempty" yaml:"description,omitempty"`
	} `json:"spec" yaml:"spec"`
}

func init() {
	yamlscheme.Register[SettingsManifest](Scheme, ApiVersion, "Settings")
	yamlscheme.Register[AlphabetManifest](Scheme, ApiVersion, "Alphabet")
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ApplyManifests applies the manifests to c, in order.
func (c *Config) ApplyManifests(manifests []any) error {
	for _, manifest := range manifests {
		switch m := manifest.(type) {

		case *SettingsManifest:
			set(&c.Token.Length, m.Spec.Token.Length)
			set(&c.Token.Count, m.Spec.Token.Count)
			set(&c.Token.Alphabet, m.Spec.Token.Alphabet)
			set(&c.Token.AlphabetName, m.Spec.Token.AlphabetName)
			set(&c.UUID.Count, m.Spec.UUID.Count)
			set(&c.UUID.Format, m.Spec.UUID.Format)
			set(&c.Log.Level, m.Spec.Log.Level)
			set(&c.Log.Pretty, m.Spec.Log.Pretty)

		case *AlphabetManifest:
			if m.Metadata.Name == "" {
				return fmt.Errorf("%w: alphabet without metadata.name", ErrInvalidConfig)
			}
			if c.Alphabets == nil {
				c.Alphabets = map[string]Alphabet{}
			}
			c.Alphabets[m.Metadata.Name] = Alphabet{
				Characters:  m.Spec.Characters,
				Description: m.Spec.Description,
			}

		default:
			return fmt.Errorf("%w: unexpected manifest %T", ErrInvalidConfig, manifest)
		}
	}

	return nil
}
