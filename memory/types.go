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

package memory

// Address is a location in the target's address space. It is wide enough for
// 64-bit targets.
type Address uint64

// Data is the value stored in a cell. It is the width of one load unit.
type Data uint32

// UnitSize is the number of bytes in one load unit ie. the width of Data.
const UnitSize = 4

// Changelist identifies a point in the history of the analysis session. Cell
// values are recorded against a changelist.
type Changelist uint32

// MaxChunkLength is the largest number of cells in a single chunk.
const MaxChunkLength = 1 << 28

// list of error patterns returned by the memory package.
const (
	AllocationOverlap  = "memory: allocation of %#x-%#x overlaps chunk at %#x-%#x"
	AllocationEmpty    = "memory: allocation of zero length at %#x"
	AllocationWraps    = "memory: allocation of %d cells at %#x wraps the address space"
	AllocationTooLarge = "memory: allocation of %d cells at %#x is larger than %d cells"
)
