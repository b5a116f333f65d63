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

package loader

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edakit/edakit/curated"
	"github.com/edakit/edakit/logger"
	"github.com/edakit/edakit/memory"
	"github.com/edakit/edakit/symbols"
)

// MakeNameMarker begins every line that ImportIDC() will try to read.
const MakeNameMarker = "\tMakeName\t"

// MaxIDCLine is the longest line, in bytes, that ImportIDC() will read a
// directive from.
const MaxIDCLine = 0x10000

// ImportResult summarises a call to ImportIDC().
type ImportResult struct {
	// the number of names set in the symbols table
	Named int

	// the number of MakeName lines that could not be read
	Skipped int
}

// ImportIDCFile opens the named file and calls ImportIDC().
func ImportIDCFile(filename string, tbl *symbols.Table) (ImportResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return ImportResult{}, curated.Errorf(FileError, filename, err)
	}
	defer f.Close()
	return ImportIDC(f, tbl)
}

// ImportIDC reads MakeName directives and sets the names in the symbols
// table. Malformed directives are skipped, as are directives on lines longer
// than MaxIDCLine bytes.
func ImportIDC(r io.Reader, tbl *symbols.Table) (ImportResult, error) {
	var res ImportResult

	br := bufio.NewReaderSize(r, MaxIDCLine)
	line := 0
	for {
		s, long, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return res, curated.Errorf(IDCReadError, err)
		}
		if s == "" && err != nil {
			break // for loop
		}
		line++

		if strings.HasPrefix(s, MakeNameMarker) {
			if long {
				res.Skipped++
				logger.Logf(logger.Allow, "idc", "skipping overlong MakeName on line %d", line)
			} else if address, name, ok := parseMakeName(s[len(MakeNameMarker):]); ok {
				tbl.SetName(address, name)
				res.Named++
			} else {
				res.Skipped++
				logger.Logf(logger.Allow, "idc", "skipping malformed MakeName on line %d", line)
			}
		}

		// final line has no line ending
		if err != nil {
			break // for loop
		}
	}

	logger.Logf(logger.Allow, "idc", "set %d names (%d skipped)", res.Named, res.Skipped)

	return res, nil
}

// readLine returns the next line without the line ending. if the line does
// not fit in the reader's buffer then the start of the line is returned, the
// rest of the line is discarded and long is true.
func readLine(br *bufio.Reader) (s string, long bool, err error) {
	b, err := br.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		long = true
		s = string(b)
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = br.ReadSlice('\n')
		}
		return s, long, err
	}
	return strings.TrimRight(string(b), "\r\n"), false, err
}

// parseMakeName extracts the address and name from what follows the
// MakeName marker. the address is the hex value after the first X (or x) up
// to the next comma. the name is the text between the first pair of double
// quotes.
func parseMakeName(s string) (memory.Address, string, bool) {
	x := strings.IndexAny(s, "Xx")
	if x == -1 {
		return 0, "", false
	}
	s = s[x+1:]

	comma := strings.IndexByte(s, ',')
	if comma == -1 {
		return 0, "", false
	}

	a, err := strconv.ParseUint(strings.TrimSpace(s[:comma]), 16, 64)
	if err != nil {
		return 0, "", false
	}
	s = s[comma+1:]

	open := strings.IndexByte(s, '"')
	if open == -1 {
		return 0, "", false
	}
	s = s[open+1:]

	end := strings.IndexByte(s, '"')
	if end <= 0 {
		return 0, "", false
	}

	return memory.Address(a), s[:end], true
}
