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

// Package memory models the address space of a target binary. The Memory
// type is sparse and randomly addressable.
//
// Storage is made up of two parts. Chunks are contiguous regions created with
// Allocate(), usually by a loader. Chunks never overlap and are never
// resized or removed. Addresses that are not in any chunk are served by the
// undefined store, which creates a cell for an address the first time it is
// accessed.
//
// Every address is backed by a Cell. A cell records the history of its value
// over the analysis session. Each value is recorded against a changelist
// number and a cell can be asked for its value as of any changelist.
//
// Note that the Access() function may create storage. A caller that only
// wants to inspect memory should use Lookup() or Exists(), neither of which
// alter the Memory.
//
// Memory is not safe for concurrent use. Because Access() can create storage,
// even callers that only read must hold the same lock as writers.
package memory
