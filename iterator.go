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

// Iterator walks the elements of a Tree in ascending order, driven entirely
// by successor queries. It does not hold a traversal stack and so costs no
// more than O(log log U) per step; it is restartable via Seek.
//
// An Iterator must not be used to mutate the tree it walks. If the tree is
// mutated while an Iterator over it is live, the iterator may skip,
// repeat, or miss elements until Seek is called to resynchronize it; this
// is deliberately unspecified behavior, not a guaranteed one.
type Iterator struct {
	t     *Tree
	cur   int
	valid bool
}

// Iter returns an Iterator positioned at the smallest element of t, or an
// already-exhausted Iterator if t is empty.
func (t *Tree) Iter() *Iterator {
	it := &Iterator{t: t}
	if m, ok := t.Minimum(); ok {
		it.cur = m
		it.valid = true
	}
	return it
}

// IsValid reports whether the iterator currently holds an element.
func (it *Iterator) IsValid() bool { return it.valid }

// Value returns the element the iterator currently holds. It panics if
// !IsValid().
func (it *Iterator) Value() int {
	if !it.valid {
		panic("vebtree: Iterator.Value called on an exhausted iterator")
	}
	return it.cur
}

// Next advances the iterator to the next element in ascending order. It is
// a no-op once the iterator is exhausted.
func (it *Iterator) Next() {
	if !it.valid {
		return
	}
	next, ok := it.t.FindNextStrict(it.cur)
	it.cur = next
	it.valid = ok
}

// Seek repositions the iterator to the smallest element >= x, or exhausts
// it if none exists. Use Seek to resynchronize an iterator after the
// underlying tree has been mutated.
func (it *Iterator) Seek(x int) {
	next, ok := it.t.FindNext(x)
	it.cur = next
	it.valid = ok
}
