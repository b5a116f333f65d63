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

package symbols

import (
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/edakit/edakit/logger"
	"github.com/edakit/edakit/memory"
)

// DefaultPrefix is prepended to the hexadecimal address of an unnamed
// address.
const DefaultPrefix = "loc_"

// Table maps addresses to names and names to addresses.
type Table struct {
	byAddr map[memory.Address]string
	byName map[string]memory.Address

	// sorted keys of the byAddr map
	sortedIdx []memory.Address

	// the number of times a name has been taken from one address and given
	// to another
	collisions int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		byAddr:    make(map[memory.Address]string),
		byName:    make(map[string]memory.Address),
		sortedIdx: make([]memory.Address, 0),
	}
}

// SetName gives address the specified name, replacing any existing name for
// that address.
//
// If the name already belongs to another address the reverse entry is moved
// to this address. The other address keeps its forward entry.
func (tbl *Table) SetName(address memory.Address, name string) {
	if old, ok := tbl.byAddr[address]; ok {
		// the old name only loses its reverse entry if it still points here
		if a, ok := tbl.byName[old]; ok && a == address {
			delete(tbl.byName, old)
		}
	} else {
		i := sort.Search(len(tbl.sortedIdx), func(i int) bool {
			return tbl.sortedIdx[i] >= address
		})
		tbl.sortedIdx = slices.Insert(tbl.sortedIdx, i, address)
	}

	if a, ok := tbl.byName[name]; ok && a != address {
		tbl.collisions++
		logger.Logf(logger.Allow, "symbols", "%s moved from %#x to %#x", name, a, address)
	}

	tbl.byAddr[address] = name
	tbl.byName[name] = address
}

// GetName returns the name of the address. If no name has been set then a
// default name is returned.
func (tbl *Table) GetName(address memory.Address) string {
	if s, ok := tbl.byAddr[address]; ok {
		return s
	}
	return fmt.Sprintf("%s%x", DefaultPrefix, uint64(address))
}

// IsNameSet returns true if a name has been set for address.
func (tbl *Table) IsNameSet(address memory.Address) bool {
	_, ok := tbl.byAddr[address]
	return ok
}

// LookupName returns the address that currently owns name.
func (tbl *Table) LookupName(name string) (memory.Address, bool) {
	a, ok := tbl.byName[name]
	return a, ok
}

// Len returns the number of addresses with a name.
func (tbl *Table) Len() int {
	return len(tbl.byAddr)
}

// Collisions returns the number of times a name has moved from one address
// to another.
func (tbl *Table) Collisions() int {
	return tbl.collisions
}

// List writes every named address, in address order.
func (tbl *Table) List(output io.Writer) {
	for _, a := range tbl.sortedIdx {
		io.WriteString(output, fmt.Sprintf("%#08x -> %s\n", uint64(a), tbl.byAddr[a]))
	}
}
