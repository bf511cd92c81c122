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

import "errors"

var (
	// ErrInvalidUniverse is returned by New when universe < 2. A vEB tree
	// needs at least two keys (0 and 1) to have a non-trivial base case.
	ErrInvalidUniverse = errors.New("vebtree: universe must be >= 2")

	// ErrUniverseTooLarge is returned by New when the rounded-up square
	// root of universe would not fit in a platform int, since it bounds
	// the length of the children slice.
	ErrUniverseTooLarge = errors.New("vebtree: universe too large for this platform")
)
