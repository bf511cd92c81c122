// Copyright 2025 Robert Snedegar
//
// Licensed under the Apache License, Version 2.0 (the License);
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an AS IS BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vebtree

import "fmt"

func newInt(v int) *int { return &v }

// Insert adds x to t. Inserting a value already present is a no-op and
// leaves t bit-for-bit identical to its prior state.
//
// Insert panics if x < 0 or x >= t.Universe(): that is a programming error,
// not a runtime condition callers are expected to recover from.
func (t *Tree) Insert(x int) {
	if x < 0 || x >= t.universe {
		panic(fmt.Sprintf("vebtree: Insert(%d): out of range [0, %d)", x, t.universe))
	}
	t.insert(x)
}

func (t *Tree) insert(x int) {
	if t.IsEmpty() {
		t.min = newInt(x)
		t.max = newInt(x)
		return
	}

	// Already present: min and max are the only two values a caller can
	// check for membership without recursing, so checking both here keeps
	// insert idempotent without the cost of a full Contains call.
	if x == *t.min || x == *t.max {
		return
	}

	if x < *t.min {
		// The old minimum becomes the element to place into the children;
		// the new x stays outside them, per the min-outside-children
		// invariant that makes insertion into a fresh child O(1).
		x, *t.min = *t.min, x
	}

	if t.universe > 2 {
		i := t.high(x)
		low := t.low(x)
		if t.children[i] == nil {
			// A brand new cluster: build it pre-populated with its sole
			// element directly, instead of constructing empty and
			// recursing, so this branch is O(1) regardless of universe
			// size. This is the step that collapses the recurrence to
			// O(log log U).
			child, err := newTree(t.sqrtUniverse)
			if err != nil {
				// Unreachable: t.sqrtUniverse already passed the same
				// validation when t itself was constructed.
				panic(err)
			}
			child.min = newInt(low)
			child.max = newInt(low)
			t.children[i] = child
			t.summary.insert(i)
		} else {
			t.children[i].insert(low)
		}
	}

	if x > *t.max {
		*t.max = x
	}
}
