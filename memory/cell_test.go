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

package memory_test

import (
	"testing"

	"github.com/edakit/edakit/memory"
	"github.com/edakit/edakit/test"
)

func TestEmptyCell(t *testing.T) {
	var c memory.Cell
	test.ExpectEquality(t, c.Get(0), 0)
	test.ExpectEquality(t, c.Get(100), 0)
	test.ExpectEquality(t, c.NumRevisions(), 0)

	_, _, ok := c.Latest()
	test.ExpectFailure(t, ok)
}

func TestCellHistory(t *testing.T) {
	var c memory.Cell
	c.Set(2, 0xaa)
	c.Set(5, 0xbb)
	c.Set(9, 0xcc)

	// before the first revision the cell reads as zero
	test.ExpectEquality(t, c.Get(0), 0)
	test.ExpectEquality(t, c.Get(1), 0)

	test.ExpectEquality(t, c.Get(2), 0xaa)
	test.ExpectEquality(t, c.Get(4), 0xaa)
	test.ExpectEquality(t, c.Get(5), 0xbb)
	test.ExpectEquality(t, c.Get(8), 0xbb)
	test.ExpectEquality(t, c.Get(9), 0xcc)
	test.ExpectEquality(t, c.Get(1000), 0xcc)

	cl, v, ok := c.Latest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cl, 9)
	test.ExpectEquality(t, v, 0xcc)
}

func TestCellOverwrite(t *testing.T) {
	var c memory.Cell
	c.Set(0, 1)
	c.Set(3, 2)

	// same changelist overwrites the existing revision
	c.Set(3, 20)
	test.ExpectEquality(t, c.NumRevisions(), 2)
	test.ExpectEquality(t, c.Get(3), 20)
	test.ExpectEquality(t, c.Get(2), 1)

	c.Set(0, 10)
	test.ExpectEquality(t, c.NumRevisions(), 2)
	test.ExpectEquality(t, c.Get(0), 10)
}

func TestCellOutOfOrder(t *testing.T) {
	var c memory.Cell
	c.Set(10, 0x10)
	c.Set(2, 0x02)
	c.Set(6, 0x06)

	// older changelists are inserted into the history and later revisions
	// are untouched
	test.ExpectEquality(t, c.NumRevisions(), 3)
	test.ExpectEquality(t, c.Get(1), 0)
	test.ExpectEquality(t, c.Get(2), 0x02)
	test.ExpectEquality(t, c.Get(7), 0x06)
	test.ExpectEquality(t, c.Get(10), 0x10)

	cl, _, _ := c.Latest()
	test.ExpectEquality(t, cl, 10)
}
