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

// Package flag adds list flags to the standard flag package.
//
// A [StringSlice] flag may be repeated and each occurrence may carry a
// comma separated list, the same format the ENRICHED_CONFIG environment
// variable uses:
//
//	// enriched uuid -parse 01234567-89AB-CDEF-FEDC-BA9876543210,{...} -parse ...
//	var parse flag.StringSlice
//	flagSet.Var(&parse, "parse", "Could be specified multiple times")
package flag

import (
	"errors"
	"strings"

	"github.com/jlsalvador/enriched-utilities/pkg/common"
)

var ErrEmptyValue = errors.New("empty value")

type StringSlice []string

func (s *StringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

// Set appends the comma separated items of value, trimmed. A value without
// any item is rejected.
func (s *StringSlice) Set(value string) error {
	items := common.SplitList(value)
	if len(items) == 0 {
		return ErrEmptyValue
	}
	*s = append(*s, items...)
	return nil
}
