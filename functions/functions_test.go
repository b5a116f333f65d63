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

package functions_test

import (
	"testing"

	"github.com/edakit/edakit/functions"
	"github.com/edakit/edakit/memory"
	"github.com/edakit/edakit/symbols"
	"github.com/edakit/edakit/test"
)

func TestAddFunction(t *testing.T) {
	tbl := symbols.NewTable()
	idx := functions.NewIndex(tbl)

	f := idx.AddFunction(0x1000)
	test.ExpectEquality(t, f.Start, 0x1000)
	test.ExpectEquality(t, tbl.GetName(0x1000), "sub_1000")

	a, ok := tbl.LookupName("sub_1000")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0x1000)

	// rename the function. adding it again must return the same function and
	// must not restore the default name
	tbl.SetName(0x1000, "main")
	g := idx.AddFunction(0x1000)
	test.ExpectEquality(t, g, f)
	test.ExpectEquality(t, tbl.GetName(0x1000), "main")
	test.ExpectEquality(t, idx.Len(), 1)
	test.ExpectEquality(t, tbl.Len(), 1)
}

func TestAddFunctionNamed(t *testing.T) {
	tbl := symbols.NewTable()
	idx := functions.NewIndex(tbl)

	tbl.SetName(0x2000, "reset")
	idx.AddFunction(0x2000)
	test.ExpectEquality(t, tbl.GetName(0x2000), "reset")

	_, ok := tbl.LookupName("sub_2000")
	test.ExpectFailure(t, ok)
}

func TestInFunction(t *testing.T) {
	tbl := symbols.NewTable()
	idx := functions.NewIndex(tbl)

	f := idx.AddFunction(0x1000)

	g, ok := idx.InFunction(0x1000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, g, f)

	// only the start address is known
	_, ok = idx.InFunction(0x1004)
	test.ExpectFailure(t, ok)
	_, ok = idx.InFunction(0x0ffc)
	test.ExpectFailure(t, ok)
}

func TestFunctionsOrder(t *testing.T) {
	tbl := symbols.NewTable()
	idx := functions.NewIndex(tbl)

	for _, a := range []memory.Address{0x3000, 0x1000, 0x2000, 0x1000} {
		idx.AddFunction(a)
	}

	fs := idx.Functions()
	test.DemandEquality(t, len(fs), 3)
	test.ExpectEquality(t, fs[0].Start, 0x1000)
	test.ExpectEquality(t, fs[1].Start, 0x2000)
	test.ExpectEquality(t, fs[2].Start, 0x3000)
}
