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

// Package iter extends the functionality of Go's standard library package
// [iter].
package iter

import "iter"

// Concat takes a sequence of sequences and returns a new sequence that yields
// elements from all the input sequences in order.
func Concat[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, seq := range seqs {
			for e := range seq {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Filter returns the elements of seq accepted by keep.
func Filter[V any](seq iter.Seq[V], keep func(V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range seq {
			if keep(e) && !yield(e) {
				return
			}
		}
	}
}

// Map returns the result of fn on every element of seq.
func Map[V, R any](seq iter.Seq[V], fn func(V) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for e := range seq {
			if !yield(fn(e)) {
				return
			}
		}
	}
}
