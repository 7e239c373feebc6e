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

// Package yamlscheme decodes streams of YAML manifests, each one
// identified by its "apiVersion" and "kind" fields, into the Go types
// registered for them in a [Scheme].
package yamlscheme

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-yaml"
)

var (
	ErrMissingTypeMeta  = errors.New("missing apiVersion or kind")
	ErrUnregisteredType = errors.New("unregistered type")
)

// Mock.
var (
	yamlMarshal   = yaml.Marshal
	yamlUnmarshal = yaml.Unmarshal
)

// CommonManifest represents a YAML manifest with the required fields.
type CommonManifest struct {
	ApiVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
}

func (c CommonManifest) String() string { return c.ApiVersion + "/" + c.Kind }

// Scheme maps manifest types to Go types.
//
// A Scheme must be fully registered before DecodeAll is called
// concurrently.
type Scheme struct {
	types map[CommonManifest]func() any
}

func NewScheme() *Scheme {
	return &Scheme{types: map[CommonManifest]func() any{}}
}

// Register registers T to be used when decoding manifests of the given
// apiVersion and kind. Registering the same type twice panics.
func Register[T any](s *Scheme, apiVersion, kind string) {
	k := CommonManifest{apiVersion, kind}
	if _, exists := s.types[k]; exists {
		panic(fmt.Sprintf("type already registered: %s", k))
	}

	s.types[k] = func() any {
		var zero T
		return &zero
	}
}

// Kinds returns the registered manifest types, sorted.
func (s *Scheme) Kinds() []CommonManifest {
	kinds := make([]CommonManifest, 0, len(s.types))
	for k := range s.types {
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, func(a, b CommonManifest) int {
		return cmp.Or(
			cmp.Compare(a.ApiVersion, b.ApiVersion),
			cmp.Compare(a.Kind, b.Kind),
		)
	})
	return kinds
}

func (s *Scheme) newObject(k CommonManifest) (any, bool) {
	f, ok := s.types[k]
	if !ok {
		return nil, false
	}
	return f(), true
}

// DecodeAll decodes every manifest from r, in order. Empty documents are
// skipped. Each result is a pointer to the registered type.
func (s *Scheme) DecodeAll(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)

	var result []any

	for doc := 0; ; doc++ {
		var raw any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if raw == nil {
			continue
		}

		obj, err := s.decode(raw)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}

		result = append(result, obj)
	}

	return result, nil
}

func (s *Scheme) decode(raw any) (any, error) {
	data, err := yamlMarshal(raw)
	if err != nil {
		return nil, err
	}

	var m CommonManifest
	if err := yamlUnmarshal(data, &m); err != nil {
		return nil, err
	}

	if m.ApiVersion == "" || m.Kind == "" {
		return nil, ErrMissingTypeMeta
	}

	obj, ok := s.newObject(m)
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnregisteredType, m)
	}

	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(obj); err != nil {
		return nil, err
	}

	return obj, nil
}
