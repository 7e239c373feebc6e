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

// Package stopwatch measures how long a function takes to run.
package stopwatch

import "time"

// NowFunc returns the current time. Override in tests for determinism.
var NowFunc = time.Now

// Measure calls fn and returns the elapsed time.
func Measure(fn func()) time.Duration {
	start := NowFunc()
	fn()
	return NowFunc().Sub(start)
}

// MeasureErr calls fn and returns the elapsed time together with the error
// returned by fn.
func MeasureErr(fn func() error) (time.Duration, error) {
	start := NowFunc()
	err := fn()
	return NowFunc().Sub(start), err
}
