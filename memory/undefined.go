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

// undefined is the sparse store for addresses outside of any chunk. entries
// are never removed.
type undefined struct {
	cells map[Address]*Cell
}

func newUndefined() undefined {
	return undefined{
		cells: make(map[Address]*Cell),
	}
}

func (u *undefined) get(address Address) (*Cell, bool) {
	c, ok := u.cells[address]
	return c, ok
}

// materialise returns the cell for address, creating it if necessary. the
// bool is true if the cell was created by this call.
func (u *undefined) materialise(address Address) (*Cell, bool) {
	if c, ok := u.cells[address]; ok {
		return c, false
	}
	if u.cells == nil {
		u.cells = make(map[Address]*Cell)
	}
	c := &Cell{}
	u.cells[address] = c
	return c, true
}

func (u *undefined) len() int {
	return len(u.cells)
}
