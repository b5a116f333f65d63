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

// Package functions keeps track of the functions discovered during analysis.
// Functions are identified by their start address and nothing else.
package functions

import (
	"fmt"
	"slices"
	"sort"

	"github.com/edakit/edakit/logger"
	"github.com/edakit/edakit/memory"
	"github.com/edakit/edakit/symbols"
)

// DefaultPrefix is prepended to the hexadecimal start address of a function
// that has no name when it is added.
const DefaultPrefix = "sub_"

// Function is a discovered function. The analysis layer decides what else a
// function is; the Index only cares about where it starts.
type Function struct {
	Start memory.Address
}

func (f *Function) String() string {
	return fmt.Sprintf("function at %#x", uint64(f.Start))
}

// Index maps start addresses to functions.
type Index struct {
	symbols   *symbols.Table
	functions map[memory.Address]*Function

	// sorted keys of the functions map
	sortedIdx []memory.Address
}

// NewIndex is the preferred method of initialisation for the Index type.
// Default function names are added to the symbols table.
func NewIndex(tbl *symbols.Table) *Index {
	return &Index{
		symbols:   tbl,
		functions: make(map[memory.Address]*Function),
	}
}

// AddFunction registers a function starting at start. If the start address
// has no name it is given the default function name.
//
// Adding a function that already exists returns the existing function.
func (idx *Index) AddFunction(start memory.Address) *Function {
	if !idx.symbols.IsNameSet(start) {
		idx.symbols.SetName(start, fmt.Sprintf("%s%x", DefaultPrefix, uint64(start)))
	}

	if f, ok := idx.functions[start]; ok {
		return f
	}

	f := &Function{Start: start}
	idx.functions[start] = f

	i := sort.Search(len(idx.sortedIdx), func(i int) bool {
		return idx.sortedIdx[i] >= start
	})
	idx.sortedIdx = slices.Insert(idx.sortedIdx, i, start)

	logger.Logf(logger.Allow, "functions", "added %s (%s)", f, idx.symbols.GetName(start))

	return f
}

// InFunction returns the function for address.
//
// Functions do not record where they end so only the start address of a
// function will find it. Any other address inside the body of a function
// is not found.
func (idx *Index) InFunction(address memory.Address) (*Function, bool) {
	f, ok := idx.functions[address]
	return f, ok
}

// Functions returns every function in start address order.
func (idx *Index) Functions() []*Function {
	fs := make([]*Function, len(idx.sortedIdx))
	for i, a := range idx.sortedIdx {
		fs[i] = idx.functions[a]
	}
	return fs
}

// Len returns the number of functions in the index.
func (idx *Index) Len() int {
	return len(idx.functions)
}
