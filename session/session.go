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

// Package session ties together the parts of the memory model used by one
// analysis session. Each session has its own Memory, symbols Table and
// functions Index; nothing is shared between sessions.
//
// A Session is not safe for concurrent use. Callers that share a session
// between goroutines must hold a single lock around every call, including
// reads of memory.
package session

import (
	"github.com/edakit/edakit/functions"
	"github.com/edakit/edakit/loader"
	"github.com/edakit/edakit/memory"
	"github.com/edakit/edakit/symbols"
)

// Session is the memory model for one analysis session.
type Session struct {
	Mem       *memory.Memory
	Symbols   *symbols.Table
	Functions *functions.Index

	// the binaries loaded with LoadBinary(), in the order they were loaded
	Loaded []loader.Loader
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession() *Session {
	tbl := symbols.NewTable()
	return &Session{
		Mem:       memory.NewMemory(),
		Symbols:   tbl,
		Functions: functions.NewIndex(tbl),
	}
}

// LoadBinary loads the named binary into memory at the base address.
func (s *Session) LoadBinary(filename string, base memory.Address) error {
	ld := loader.NewLoader(filename, base)
	return s.Load(ld)
}

// Load uses the supplied loader to put a binary into memory. This allows the
// caller to specify the byte order or expected hash.
func (s *Session) Load(ld loader.Loader) error {
	err := ld.Load(s.Mem)
	if err != nil {
		return err
	}
	s.Loaded = append(s.Loaded, ld)
	return nil
}

// ImportNames reads the MakeName directives from the named IDC script into
// the session's symbols table.
func (s *Session) ImportNames(filename string) (loader.ImportResult, error) {
	return loader.ImportIDCFile(filename, s.Symbols)
}
