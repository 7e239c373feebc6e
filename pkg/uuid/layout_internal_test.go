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

package uuid

import "testing"

func TestLayoutTables_AreInverse(t *testing.T) {
	for i := range Size {
		if got := mixedToCanonical[canonicalToMixed[i]]; got != i {
			t.Errorf("mixedToCanonical[canonicalToMixed[%d]] = %d", i, got)
		}
		if got := canonicalToMixed[mixedToCanonical[i]]; got != i {
			t.Errorf("canonicalToMixed[mixedToCanonical[%d]] = %d", i, got)
		}
	}

	for i := 8; i < Size; i++ {
		if canonicalToMixed[i] != i {
			t.Errorf("canonicalToMixed[%d] = %d, clock sequence and node must not move", i, canonicalToMixed[i])
		}
	}
}
