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

import (
	"github.com/google/go-cmp/cmp"
)

// snapshot walks every key of a universe-sized tree and returns the ones
// currently present, in ascending order. Used by tests to capture "the
// tree observably contains exactly these elements" before/after an
// operation expected to be a no-op.
func snapshot(t *Tree, universe int) []int {
	var out []int
	for x := 0; x < universe; x++ {
		if t.Contains(x) {
			out = append(out, x)
		}
	}
	return out
}

// diffSlices reports a human-readable difference between two int slices,
// or "" if they're equal.
func diffSlices(got, want []int) string {
	if cmp.Equal(got, want) {
		return ""
	}
	return cmp.Diff(want, got)
}

// deepEqual reports whether two trees are structurally identical,
// comparing every field including unexported ones, down through children
// and summary. Used to verify idempotence at the representation level,
// not just the observable element set.
func deepEqual(a, b *Tree) bool {
	return cmp.Equal(a, b, cmp.AllowUnexported(Tree{}))
}

// cloneTree returns a deep, independent copy of t, so a caller can mutate
// t and still compare against the pre-mutation shape with deepEqual.
func cloneTree(t *Tree) *Tree {
	if t == nil {
		return nil
	}
	cp := &Tree{
		universe:     t.universe,
		sqrtUniverse: t.sqrtUniverse,
		shift:        t.shift,
		lowMask:      t.lowMask,
		summary:      cloneTree(t.summary),
	}
	if t.min != nil {
		cp.min = newInt(*t.min)
	}
	if t.max != nil {
		cp.max = newInt(*t.max)
	}
	if t.children != nil {
		cp.children = make([]*Tree, len(t.children))
		for i, c := range t.children {
			cp.children[i] = cloneTree(c)
		}
	}
	return cp
}
