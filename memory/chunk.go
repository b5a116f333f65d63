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
	"fmt"
	"slices"
	"sort"
)

// Chunk is a contiguous region of cells beginning at a base address.
type Chunk struct {
	Base  Address
	cells []Cell
}

// Len returns the number of cells in the chunk.
func (c *Chunk) Len() int {
	return len(c.cells)
}

// End returns the first address after the chunk.
func (c *Chunk) End() Address {
	return c.Base + Address(len(c.cells))
}

// Cell returns the cell at offset from the base of the chunk. Returns nil if
// offset is out of range.
func (c *Chunk) Cell(offset int) *Cell {
	if offset < 0 || offset >= len(c.cells) {
		return nil
	}
	return &c.cells[offset]
}

// Region describes the extent of a chunk.
type Region struct {
	Base   Address
	Length int
}

func (r Region) String() string {
	return fmt.Sprintf("%#x - %#x", r.Base, r.Base+Address(r.Length))
}

// chunks is an ordered list of non-overlapping chunks.
type chunks struct {
	// sorted by base address
	sorted []*Chunk
}

// nearest returns the chunk with the greatest base address not greater than
// address. Returns nil if every chunk begins after address.
func (s *chunks) nearest(address Address) *Chunk {
	i := sort.Search(len(s.sorted), func(i int) bool {
		return s.sorted[i].Base > address
	})
	if i == 0 {
		return nil
	}
	return s.sorted[i-1]
}

// resolve returns the chunk cell for address. Returns nil if address is not
// inside a chunk.
func (s *chunks) resolve(address Address) *Cell {
	c := s.nearest(address)
	if c == nil || address >= c.End() {
		return nil
	}
	return &c.cells[address-c.Base]
}

// exact returns the chunk whose base address is exactly base.
func (s *chunks) exact(base Address) (*Chunk, bool) {
	i := sort.Search(len(s.sorted), func(i int) bool {
		return s.sorted[i].Base >= base
	})
	if i < len(s.sorted) && s.sorted[i].Base == base {
		return s.sorted[i], true
	}
	return nil, false
}

// overlaps returns the chunk that intersects the range [base, end). Returns
// nil if no chunk does.
//
// chunks never overlap one another so it is enough to inspect the chunk with
// the greatest base below end. any other chunk that begins below end must
// also end before that chunk begins, which is at or before base if the nearest
// chunk does not intersect.
func (s *chunks) overlaps(base Address, end Address) *Chunk {
	i := sort.Search(len(s.sorted), func(i int) bool {
		return s.sorted[i].Base >= end
	})
	if i == 0 {
		return nil
	}
	c := s.sorted[i-1]
	if c.End() > base {
		return c
	}
	return nil
}

// insert chunk into list. the chunk must not overlap any existing chunk.
func (s *chunks) insert(c *Chunk) {
	i := sort.Search(len(s.sorted), func(i int) bool {
		return s.sorted[i].Base > c.Base
	})
	s.sorted = slices.Insert(s.sorted, i, c)
}

func (s *chunks) regions() []Region {
	r := make([]Region, len(s.sorted))
	for i, c := range s.sorted {
		r[i] = Region{Base: c.Base, Length: c.Len()}
	}
	return r
}
