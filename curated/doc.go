// This file is part of edakit.
//
// edakit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// edakit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with edakit.  If not, see <https://www.gnu.org/licenses/>.

// Package curated provides the error values used throughout edakit.
//
// A curated error is created with Errorf(), which takes a pattern and a list
// of values in the same way as fmt.Errorf(). The pattern is remembered and is
// what identifies the error later on. Packages that create errors export
// their patterns as string constants:
//
//	const AllocationOverlap = "memory: allocation overlaps chunk at %#x"
//
//	err := curated.Errorf(AllocationOverlap, base)
//	if curated.Is(err, AllocationOverlap) {
//		...
//	}
//
// Has() is like Is() but looks for the pattern anywhere in the chain of
// wrapped curated errors. A curated error wraps another error by having that
// error as one of its values:
//
//	err = curated.Errorf("loader: %v", err)
//	curated.Has(err, AllocationOverlap) // true
//	curated.Is(err, AllocationOverlap)  // false
//
// The message returned by Error() is normalised so that adjacent duplicate
// parts of the chain are removed. The chain is made of parts separated by
// ": ". So the above would print as "loader: memory: ..." and wrapping it a
// second time with "loader: %v" would not repeat the "loader" part.
package curated
