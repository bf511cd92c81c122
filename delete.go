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

// Delete removes x from t, reporting whether it was present. Deleting an
// absent or out-of-range x is a no-op that returns false; it never
// corrupts t's state.
func (t *Tree) Delete(x int) bool {
	if x < 0 || x >= t.universe {
		return false
	}
	return t.delete(x)
}

func (t *Tree) delete(x int) bool {
	if t.IsEmpty() {
		return false
	}

	if *t.min == *t.max {
		if x != *t.min {
			return false
		}
		t.min = nil
		t.max = nil
		return true
	}

	if t.universe == 2 {
		// min != max here, so both 0 and 1 are present.
		if x != 0 && x != 1 {
			return false
		}
		remaining := 1 - x
		t.min = newInt(remaining)
		t.max = newInt(remaining)
		return true
	}

	if x == *t.min {
		if t.summary.IsEmpty() {
			// No child holds an element to promote, so once min is gone
			// max is the only element left and becomes min as well.
			*t.min = *t.max
			return true
		}
		j, _ := t.summary.Minimum()
		childMin, _ := t.children[j].Minimum()
		newMin := t.index(j, childMin)
		*t.min = newMin
		x = newMin
	}

	i := t.high(x)
	low := t.low(x)
	if t.children[i] == nil {
		return false
	}

	present := t.children[i].delete(low)

	if t.children[i].IsEmpty() {
		t.children[i] = nil
		t.summary.delete(i)
		if x == *t.max {
			if t.summary.IsEmpty() {
				*t.max = *t.min
			} else {
				k, _ := t.summary.Maximum()
				childMax, _ := t.children[k].Maximum()
				*t.max = t.index(k, childMax)
			}
		}
	} else if x == *t.max {
		childMax, _ := t.children[i].Maximum()
		*t.max = t.index(i, childMax)
	}

	return present
}
