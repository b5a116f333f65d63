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

package statsview

import (
	"fmt"

	"github.com/edakit/edakit/memory"
)

// Memory is the part of memory.Memory reported by the stats server.
type Memory interface {
	Chunks() []memory.Region
	NumUndefined() int
}

// Summarise describes the layout of memory in one line.
func Summarise(mem Memory) string {
	var cells int
	regions := mem.Chunks()
	for _, r := range regions {
		cells += r.Length
	}
	return fmt.Sprintf("%d chunks (%#x cells), %d undefineds", len(regions), cells, mem.NumUndefined())
}
