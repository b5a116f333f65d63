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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// number of words on each line of ConsoleDump() output.
const dumpColumns = 4

// ConsoleDump writes length bytes of memory from address, one word in every
// UnitSize bytes, as it was at changelist. Output stops at the first address
// that does not exist or at the top of the address space. Returns the number
// of words written.
//
// ConsoleDump never creates storage.
func (mem *Memory) ConsoleDump(output io.Writer, address Address, length int, changelist Changelist) int {
	var words int

	for offset := 0; offset < length; offset += UnitSize {
		a := address + Address(offset)
		if a < address {
			break // for loop
		}

		c, ok := mem.Lookup(a)
		if !ok {
			if words%dumpColumns != 0 {
				io.WriteString(output, "\n")
			}
			io.WriteString(output, fmt.Sprintf("memory doesn't exist (%#x)\n", a))
			return words
		}

		if words%dumpColumns == 0 {
			io.WriteString(output, fmt.Sprintf("%08x:", a))
		}
		io.WriteString(output, fmt.Sprintf(" %08x", c.Get(changelist)))

		words++
		if words%dumpColumns == 0 {
			io.WriteString(output, "\n")
		}
	}

	if words%dumpColumns != 0 {
		io.WriteString(output, "\n")
	}

	return words
}

// DebugPrint lists every chunk and the number of entries in the undefined
// store.
func (mem *Memory) DebugPrint(output io.Writer) {
	for _, c := range mem.chunks.sorted {
		io.WriteString(output, fmt.Sprintf("Region: %#x - %#x\n", c.Base, c.End()))
	}
	io.WriteString(output, fmt.Sprintf("plus %d undefineds\n", mem.undefined.len()))
}

// Visualise writes a graphviz (dot) representation of the Memory structure.
// Large chunks will produce very large graphs.
func (mem *Memory) Visualise(output io.Writer) {
	memviz.Map(output, mem)
}
