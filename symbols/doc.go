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

// Package symbols keeps track of the names given to addresses. The Table type
// maps addresses to names and names back to addresses.
//
// An address without a name still has a printable name. GetName() returns a
// default of the form "loc_" followed by the address in hexadecimal.
//
// A name belongs to at most one address for the purposes of reverse lookup.
// If a name is given to a second address then the name moves to that address
// and the collision is logged. The first address keeps the name in the
// forward direction, so GetName() for both addresses returns the same string,
// but LookupName() will only find the second.
package symbols
