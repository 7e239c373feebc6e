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

package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetBool parses a string value as a boolean.
// If the parsing fails, it returns false.
func GetBool(val string) bool {
	val = strings.TrimSpace(val)
	val = strings.ToLower(val)
	if val, err := strconv.ParseBool(val); err != nil {
		return false
	} else {
		return val
	}
}

// GetInt returns the integer stored in the environment variable key, or
// fallback if it is not set. A value that is not an integer is an error.
func GetInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

// SplitList splits a comma separated value, trimming spaces and dropping
// empty items.
func SplitList(val string) []string {
	items := []string{}
	for item := range strings.SplitSeq(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
