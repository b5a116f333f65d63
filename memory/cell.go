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
	"slices"
	"sort"
)

type revision struct {
	changelist Changelist
	value      Data
}

// Cell is the smallest addressable unit of storage. It holds the history of
// values that have been set for the address it backs. The zero value is a
// cell with no history, which reads as zero for every changelist.
type Cell struct {
	// sorted by changelist. no two revisions share a changelist
	revisions []revision
}

// Set records value as the state of the cell from changelist onwards.
//
// Setting a changelist that already has a revision overwrites that revision.
// Setting a changelist older than the newest revision inserts the value into
// the history; revisions for later changelists are left untouched.
func (c *Cell) Set(changelist Changelist, value Data) {
	n := len(c.revisions)

	// the common case is a new, later changelist
	if n == 0 || c.revisions[n-1].changelist < changelist {
		c.revisions = append(c.revisions, revision{changelist: changelist, value: value})
		return
	}

	i := sort.Search(n, func(i int) bool {
		return c.revisions[i].changelist >= changelist
	})
	if c.revisions[i].changelist == changelist {
		c.revisions[i].value = value
		return
	}
	c.revisions = slices.Insert(c.revisions, i, revision{changelist: changelist, value: value})
}

// Get returns the value of the cell as of changelist. That is the value of
// the latest revision no later than changelist. Returns zero if there is no
// such revision.
func (c *Cell) Get(changelist Changelist) Data {
	i := sort.Search(len(c.revisions), func(i int) bool {
		return c.revisions[i].changelist > changelist
	})
	if i == 0 {
		return 0
	}
	return c.revisions[i-1].value
}

// Latest returns the most recent revision of the cell. The bool is false if
// the cell has never been set.
func (c *Cell) Latest() (Changelist, Data, bool) {
	if len(c.revisions) == 0 {
		return 0, 0, false
	}
	r := c.revisions[len(c.revisions)-1]
	return r.changelist, r.value, true
}

// NumRevisions returns the number of changelists recorded for the cell.
func (c *Cell) NumRevisions() int {
	return len(c.revisions)
}
