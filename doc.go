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

// Package vebtree implements a van Emde Boas tree: an ordered set of
// non-negative integers drawn from a fixed universe [0, U) that supports
// membership, insertion, deletion, minimum, maximum, and successor queries
// in O(log log U) time, independent of how many elements are stored.
//
// The structure gets its speed from recursive universe decomposition: a
// tree over universe U holds S child trees, each over universe S, where S
// is √U rounded up to a power of two, plus a summary tree that tracks
// which children are non-empty. The
// recurrence T(U) = T(√U) + O(1) collapses to O(log log U) because the
// minimum of every (sub)tree is held outside of its children, so attaching
// a brand new, previously-empty child is a constant-time operation.
//
// Example:
//
//	t, err := vebtree.New(1 << 20)
//	if err != nil {
//		log.Fatal(err)
//	}
//	t.Insert(4)
//	t.Insert(6)
//	t.Minimum() // 4, true
//	t.FindNext(5) // 6, true
//
// Squaring the universe adds only one level of recursion: a tree over a
// universe of 2^62 is one level deeper than one over 2^31, which is what
// makes the successor query practical on sparse keys drawn from a very
// large universe.
package vebtree
