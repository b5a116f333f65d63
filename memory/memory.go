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

import (
	"github.com/edakit/edakit/curated"
	"github.com/edakit/edakit/logger"
)

// Memory is the address space of the target. It owns every chunk and every
// entry in the undefined store. The zero value is an empty Memory ready to
// use.
type Memory struct {
	chunks    chunks
	undefined undefined
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		undefined: newUndefined(),
	}
}

// Access returns the cell for address. If the address is inside a chunk the
// chunk's cell is returned, otherwise the cell in the undefined store is
// returned.
//
// Access never fails but it may allocate: if the address is outside every
// chunk and has never been accessed then a cell is created for it in the
// undefined store. The bool return value is true when that happens. Use
// Lookup() to inspect memory without creating storage.
func (mem *Memory) Access(address Address) (*Cell, bool) {
	if c := mem.chunks.resolve(address); c != nil {
		return c, false
	}
	return mem.undefined.materialise(address)
}

// Lookup returns the cell for address without creating one. The bool return
// value is false if no storage exists for the address.
func (mem *Memory) Lookup(address Address) (*Cell, bool) {
	if c := mem.chunks.resolve(address); c != nil {
		return c, true
	}
	return mem.undefined.get(address)
}

// Exists returns true if the address is inside a chunk or if the address has
// an entry in the undefined store.
func (mem *Memory) Exists(address Address) bool {
	_, ok := mem.Lookup(address)
	return ok
}

// GetChunk returns the chunk with the specified base address. Addresses that
// fall inside a chunk but are not its base address are not found.
func (mem *Memory) GetChunk(base Address) (*Chunk, bool) {
	return mem.chunks.exact(base)
}

// Allocate creates a new chunk of length cells at base. Every cell reads as
// zero until it is set.
//
// An error is returned, and the Memory is left unchanged, if the new chunk
// would overlap an existing chunk, if length is zero or if the chunk would
// extend beyond the top of the address space. A chunk can not be longer than
// MaxChunkLength.
//
// Entries in the undefined store that fall inside the new chunk are kept but
// are shadowed by the chunk's cells.
func (mem *Memory) Allocate(base Address, length uint64) error {
	if length == 0 {
		return curated.Errorf(AllocationEmpty, base)
	}

	if length > MaxChunkLength {
		return curated.Errorf(AllocationTooLarge, length, base, MaxChunkLength)
	}

	end := base + Address(length)
	if end <= base {
		return curated.Errorf(AllocationWraps, length, base)
	}

	if c := mem.chunks.overlaps(base, end); c != nil {
		return curated.Errorf(AllocationOverlap, base, end, c.Base, c.End())
	}

	mem.chunks.insert(&Chunk{
		Base:  base,
		cells: make([]Cell, length),
	})

	logger.Logf(logger.Allow, "memory", "allocated region %#x - %#x", base, end)

	return nil
}

// Chunks returns the extent of every chunk in address order.
func (mem *Memory) Chunks() []Region {
	return mem.chunks.regions()
}

// NumUndefined returns the number of entries in the undefined store.
func (mem *Memory) NumUndefined() int {
	return mem.undefined.len()
}
