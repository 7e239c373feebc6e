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

package flag_test

import (
	"errors"
	goflag "flag"
	"io"
	"slices"
	"testing"

	"github.com/jlsalvador/enriched-utilities/pkg/cli/flag"
)

const (
	id1 = "01234567-89AB-CDEF-FEDC-BA9876543210"
	id2 = "{00112233-4455-6677-8899-AABBCCDDEEFF}"
)

func TestStringSlice_Set(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"single identifier", []string{id1}, []string{id1}},
		{"repeated", []string{id1, id2}, []string{id1, id2}},
		{"comma separated", []string{id1 + "," + id2}, []string{id1, id2}},
		{"spaces and empty items", []string{" " + id1 + " ,, " + id2}, []string{id1, id2}},
		{"config paths", []string{"/etc/enriched", "./local.yaml"}, []string{"/etc/enriched", "./local.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s flag.StringSlice
			for _, v := range tt.values {
				if err := s.Set(v); err != nil {
					t.Fatalf("Set(%q) returned error: %v", v, err)
				}
			}
			if !slices.Equal(s, tt.want) {
				t.Errorf("got %v, want %v", s, tt.want)
			}
		})
	}
}

func TestStringSlice_Set_Empty(t *testing.T) {
	for _, v := range []string{"", " ", ",", " , "} {
		var s flag.StringSlice
		if err := s.Set(v); !errors.Is(err, flag.ErrEmptyValue) {
			t.Errorf("Set(%q) error = %v, want ErrEmptyValue", v, err)
		}
		if len(s) != 0 {
			t.Errorf("Set(%q) appended %v", v, s)
		}
	}
}

func TestStringSlice_String(t *testing.T) {
	tests := []struct {
		name  string
		slice flag.StringSlice
		want  string
	}{
		{"nil", nil, ""},
		{"empty", flag.StringSlice{}, ""},
		{"single", flag.StringSlice{id1}, id1},
		{"multiple", flag.StringSlice{id1, id2}, id1 + "," + id2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slice.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	// The flag package calls String on a zero value to print defaults.
	var nilPtr *flag.StringSlice
	if got := nilPtr.String(); got != "" {
		t.Errorf("String() on nil = %q", got)
	}
}

func TestStringSlice_FlagSet(t *testing.T) {
	var parse flag.StringSlice

	fs := goflag.NewFlagSet("uuid", goflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&parse, "parse", "identifier to parse")

	if err := fs.Parse([]string{"-parse", id1 + "," + id2, "-parse", id1}); err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if want := []string{id1, id2, id1}; !slices.Equal(parse, want) {
		t.Errorf("parse = %v, want %v", parse, want)
	}

	if err := fs.Parse([]string{"-parse", ""}); err == nil {
		t.Error("Parse() accepted an empty -parse value")
	}
}
