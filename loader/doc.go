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

// Package loader puts data from files into the memory model.
//
// The Loader type loads a raw binary into a new chunk of memory. The binary
// has no header. It is read in words of memory.UnitSize bytes and memory is
// byte addressed, so the word at file offset N is stored in the cell at
// address Base+N. The cells in between are allocated but not set. All words
// are written at changelist zero. Trailing bytes that do not make up a whole
// word are allocated but not set.
//
// ImportIDC() reads the names from an IDC script. Only the MakeName directive
// is recognised. For example:
//
//	\tMakeName\t(0X8000, "start");
//
// Directive lines that can not be understood are skipped and counted. All
// other lines are ignored.
package loader
