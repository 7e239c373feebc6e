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

// Package enum attaches names and descriptions to a closed set of values
// and answers lookups over them.
//
// Example:
//
//	type Color int
//
//	colors := enum.MustNew(
//	    enum.Member[Color]{Name: "Red", Value: 1, Description: "Warm"},
//	    enum.Member[Color]{Name: "Blue", Value: 2},
//	)
//	colors.Names()                 // [Red Blue]
//	colors.Description(2, true)    // "Blue", true
package enum

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyName     = errors.New("empty enum name")
	ErrDuplicateName = errors.New("duplicate enum name")
)

// Member is one value of an [Enum].
type Member[T comparable] struct {
	Name        string
	Value       T
	Description string
}

// Enum is an ordered, immutable set of members.
type Enum[T comparable] struct {
	members []Member[T]
	byName  map[string]int
}

// New returns an [Enum] with the given members, in order. Names must be
// unique and not empty. Values may repeat, as aliases.
func New[T comparable](members ...Member[T]) (*Enum[T], error) {
	e := &Enum[T]{
		members: slices.Clone(members),
		byName:  make(map[string]int, len(members)),
	}

	for i, m := range members {
		if m.Name == "" {
			return nil, fmt.Errorf("%w at index %d", ErrEmptyName, i)
		}
		if _, exists := e.byName[m.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, m.Name)
		}
		e.byName[m.Name] = i
	}

	return e, nil
}

// MustNew is like [New] but panics on error.
func MustNew[T comparable](members ...Member[T]) *Enum[T] {
	e, err := New(members...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Enum[T]) Names() []string {
	r := make([]string, len(e.members))
	for i, m := range e.members {
		r[i] = m.Name
	}
	return r
}

func (e *Enum[T]) Values() []T {
	r := make([]T, len(e.members))
	for i, m := range e.members {
		r[i] = m.Value
	}
	return r
}

// ValuesAsString returns the values formatted with [fmt.Sprint].
func (e *Enum[T]) ValuesAsString() []string {
	r := make([]string, len(e.members))
	for i, m := range e.members {
		r[i] = fmt.Sprint(m.Value)
	}
	return r
}

// Descriptions returns the description of every member. Members without
// one are skipped, or reported by name if replaceEmptyWithName is set.
func (e *Enum[T]) Descriptions(replaceEmptyWithName bool) []string {
	r := make([]string, 0, len(e.members))
	for _, m := range e.members {
		if d, ok := description(m, replaceEmptyWithName); ok {
			r = append(r, d)
		}
	}
	return r
}

// Description returns the description of the first member holding v.
func (e *Enum[T]) Description(v T, replaceEmptyWithName bool) (string, bool) {
	m, ok := e.Member(v)
	if !ok {
		return "", false
	}
	return description(m, replaceEmptyWithName)
}

func description[T comparable](m Member[T], replaceEmptyWithName bool) (string, bool) {
	if m.Description != "" {
		return m.Description, true
	}
	if replaceEmptyWithName {
		return m.Name, true
	}
	return "", false
}

// Lookup returns the member called name.
func (e *Enum[T]) Lookup(name string) (Member[T], bool) {
	i, ok := e.byName[name]
	if !ok {
		return Member[T]{}, false
	}
	return e.members[i], true
}

// Member returns the first member holding v.
func (e *Enum[T]) Member(v T) (Member[T], bool) {
	for _, m := range e.members {
		if m.Value == v {
			return m, true
		}
	}
	return Member[T]{}, false
}

// IsDefined reports whether a member is called exactly name.
func (e *Enum[T]) IsDefined(name string) bool {
	_, ok := e.byName[name]
	return ok
}

// ContainsValue reports whether a member holds v.
func (e *Enum[T]) ContainsValue(v T) bool {
	_, ok := e.Member(v)
	return ok
}

// ContainsName reports whether substr is part of any name.
func (e *Enum[T]) ContainsName(substr string, ignoreCase bool) bool {
	return containsAny(e.Names(), substr, ignoreCase)
}

// ContainsValueString reports whether substr is part of any value
// formatted with [fmt.Sprint].
func (e *Enum[T]) ContainsValueString(substr string, ignoreCase bool) bool {
	return containsAny(e.ValuesAsString(), substr, ignoreCase)
}

// IsInDescriptions reports whether s equals a description, or a name for
// members without description.
func (e *Enum[T]) IsInDescriptions(s string, ignoreCase bool) bool {
	return slices.ContainsFunc(e.Descriptions(true), func(d string) bool {
		return equal(d, s, ignoreCase)
	})
}

// Info returns a copy of the members accepted by filter, or all of them if
// filter is nil.
func (e *Enum[T]) Info(filter func(Member[T]) bool) []Member[T] {
	if filter == nil {
		return slices.Clone(e.members)
	}

	r := []Member[T]{}
	for _, m := range e.members {
		if filter(m) {
			r = append(r, m)
		}
	}
	return r
}

func containsAny(items []string, substr string, ignoreCase bool) bool {
	if ignoreCase {
		substr = strings.ToLower(substr)
	}
	for _, item := range items {
		if ignoreCase {
			item = strings.ToLower(item)
		}
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}

func equal(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
