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
	"errors"
	"os"

	"github.com/jlsalvador/enriched-utilities/pkg/common"
)

// Environment variables, without EnvPrefix.
const (
	EnvConfig            = "CONFIG" // Comma separated list of files or directories.
	EnvTokenLength       = "TOKEN_LENGTH"
	EnvTokenCount        = "TOKEN_COUNT"
	EnvTokenAlphabet     = "TOKEN_ALPHABET"
	EnvTokenAlphabetName = "TOKEN_ALPHABET_NAME"
	EnvUUIDCount         = "UUID_COUNT"
	EnvUUIDFormat        = "UUID_FORMAT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogPretty         = "LOG_PRETTY"
)

// Paths returns the configuration paths listed in the environment.
func Paths() []string {
	return common.SplitList(common.GetEnv(EnvPrefix+EnvConfig, ""))
}

// ApplyEnv overrides c with the ENRICHED_* environment variables that are
// set.
func (c *Config) ApplyEnv() error {
	var errs []error

	getInt := func(key string, dst *int) {
		v, err := common.GetInt(EnvPrefix+key, *dst)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = v
	}

	getInt(EnvTokenLength, &c.Token.Length)
	getInt(EnvTokenCount, &c.Token.Count)
	getInt(EnvUUIDCount, &c.UUID.Count)

	c.Token.Alphabet = common.GetEnv(EnvPrefix+EnvTokenAlphabet, c.Token.Alphabet)
	c.Token.AlphabetName = common.GetEnv(EnvPrefix+EnvTokenAlphabetName, c.Token.AlphabetName)
	c.UUID.Format = common.GetEnv(EnvPrefix+EnvUUIDFormat, c.UUID.Format)
	c.Log.Level = common.GetEnv(EnvPrefix+EnvLogLevel, c.Log.Level)

	if v, ok := os.LookupEnv(EnvPrefix + EnvLogPretty); ok {
		c.Log.Pretty = common.GetBool(v)
	}

	return errors.Join(errs...)
}
