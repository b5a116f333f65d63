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

// Package statsview runs a local HTTP server offering runtime statistics.
// It is only functional when built with the statsview build tag:
//
//	go build -tags statsview
//
// Useful for watching the runtime cost of sessions with very large binaries.
// Launch() is given the session's Memory and reports its layout, from
// Summarise(), alongside the address of the server. Graphs are viewable at:
//
//	localhost:12700/debug/statsview
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
package statsview
