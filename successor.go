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

import "math"

// Contains reports whether x is an element of t. Out-of-range x (x < 0 or
// x >= t.Universe()) is not an error; it simply reports false. O(log log U).
func (t *Tree) Contains(x int) bool {
	if t.IsEmpty() || x < 0 || x >= t.universe {
		return false
	}
	if x == *t.min || x == *t.max {
		return true
	}
	if t.universe == 2 {
		return false
	}
	child := t.children[t.high(x)]
	if child == nil {
		return false
	}
	return child.Contains(t.low(x))
}

// FindNext returns the smallest element of t that is >= x, and whether one
// exists. x need not be an element of t, and may be negative or exceed
// Universe(); both are treated as having no matching successor below the
// tree's minimum or above its maximum respectively. O(log log U).
func (t *Tree) FindNext(x int) (int, bool) {
	if t.IsEmpty() {
		return 0, false
	}
	if x <= *t.min {
		return *t.min, true
	}
	if x > *t.max {
		return 0, false
	}
	// min < x <= max. For universe == 2 the only two possible elements are
	// 0 and 1, and both guards above already dispose of every case except
	// min == 0, max == 1, x == 1, whose answer is max.
	if t.universe == 2 {
		return *t.max, true
	}

	i := t.high(x)
	low := t.low(x)
	if child := t.children[i]; child != nil {
		if childMax, _ := child.Maximum(); low <= childMax {
			next, _ := child.FindNext(low)
			return t.index(i, next), true
		}
	}

	j, ok := t.summary.FindNext(i + 1)
	if !ok {
		return 0, false
	}
	childMin, _ := t.children[j].Minimum()
	return t.index(j, childMin), true
}

// FindNextStrict returns the smallest element of t that is strictly greater
// than x, and whether one exists. It is the successor operation a caller
// walking the set with repeated calls should use, since FindNext(x) returns
// x itself when x is already a member.
func (t *Tree) FindNextStrict(x int) (int, bool) {
	if x == math.MaxInt {
		return 0, false
	}
	return t.FindNext(x + 1)
}
