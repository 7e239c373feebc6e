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

package random

import (
	mrand "math/rand/v2"
	"time"
)

// MaxYears bounds the span of [TimeWithin].
const MaxYears = 10000

// NowFunc returns the current time. Override in tests for determinism.
var NowFunc = time.Now

// Time returns a time in [start, end) with second precision. The bounds may
// be given in any order.
//
// It is not suitable for cryptographic uses.
func Time(start, end time.Time) time.Time {
	if end.Before(start) {
		start, end = end, start
	}

	// Whole seconds, time.Duration saturates past 292 years.
	seconds := end.Unix() - start.Unix()
	if seconds <= 0 {
		return start
	}
	offset := mrand.Int64N(seconds)
	return time.Unix(start.Unix()+offset, int64(start.Nanosecond())).In(start.Location())
}

// TimeWithin returns a time between now and a random point up to years in
// the past or in the future. years is clamped to [MaxYears].
//
// It is not suitable for cryptographic uses.
func TimeWithin(years int) time.Time {
	now := NowFunc()
	if years < 0 {
		years = -years
	}
	if years < 0 || years > MaxYears {
		years = MaxYears
	}

	offset := mrand.IntN(2*years+1) - years
	return Time(now.AddDate(offset, 0, 0), now)
}
