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
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/edakit/edakit/curated"
	"github.com/edakit/edakit/logger"
	"github.com/edakit/edakit/memory"
)

// list of error patterns returned by the loader package.
const (
	FileError         = "loader: cannot open %s: %v"
	ReadError         = "loader: error reading %s: %v"
	IDCReadError      = "loader: error reading IDC script: %v"
	AllocationError   = "loader: cannot load %s: %v"
	HashMismatch      = "loader: unexpected hash value for %s"
	UnsupportedScheme = "loader: unsupported URL scheme (%s)"
)

// number of words read from the file at a time.
const blockWords = 0x200

// Loader is used to specify a binary to load into memory.
type Loader struct {
	// filename of the binary. can also be a http or https URL
	Filename string

	// address of the first byte of the binary
	Base memory.Address

	// byte order of words in the binary
	ByteOrder binary.ByteOrder

	// expected SHA-1 hash of the binary. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// number of words set by the most recent call to Load()
	Words int
}

// NewLoader is the preferred method of initialisation for the Loader type.
// Words are little-endian unless the ByteOrder field is changed.
func NewLoader(filename string, base memory.Address) Loader {
	return Loader{
		Filename:  filename,
		Base:      base,
		ByteOrder: binary.LittleEndian,
	}
}

// ShortName returns the filename of the binary without path or extension.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(s))
}

// open returns a reader for the binary data and its size in bytes.
func (ld *Loader) open() (io.ReadCloser, int64, error) {
	scheme := ""
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return nil, 0, curated.Errorf(FileError, ld.Filename, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, 0, curated.Errorf(FileError, ld.Filename, resp.Status)
		}

		// the size of the allocation must be known before reading so the
		// response is read in full
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, 0, curated.Errorf(ReadError, ld.Filename, err)
		}
		return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil

	case "file", "":
		f, err := os.Open(ld.Filename)
		if err != nil {
			return nil, 0, curated.Errorf(FileError, ld.Filename, err)
		}
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, 0, curated.Errorf(FileError, ld.Filename, err)
		}
		return f, fi.Size(), nil
	}

	return nil, 0, curated.Errorf(UnsupportedScheme, scheme)
}

// Load the binary into a new chunk of memory at the Base address. The chunk
// is the size of the binary in bytes.
//
// If a read error occurs after the chunk has been allocated the chunk is not
// removed. Any words read before the error will have been set.
func (ld *Loader) Load(mem *memory.Memory) error {
	ld.Words = 0

	r, size, err := ld.open()
	if err != nil {
		return err
	}
	defer r.Close()

	return ld.load(mem, r, size)
}

// load size bytes from r into a new chunk. data in r beyond size is not read.
func (ld *Loader) load(mem *memory.Memory, r io.Reader, size int64) error {
	err := mem.Allocate(ld.Base, uint64(size))
	if err != nil {
		return curated.Errorf(AllocationError, ld.Filename, err)
	}

	chunk, ok := mem.GetChunk(ld.Base)
	if !ok {
		return curated.Errorf(AllocationError, ld.Filename, fmt.Sprintf("no chunk at %#x", uint64(ld.Base)))
	}

	order := ld.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}

	hash := sha1.New()
	tr := io.TeeReader(io.LimitReader(r, size), hash)
	buffer := make([]byte, blockWords*memory.UnitSize)

	var offset int
	for {
		n, err := io.ReadFull(tr, buffer)

		for i := 0; i+memory.UnitSize <= n; i += memory.UnitSize {
			chunk.Cell(offset).Set(0, memory.Data(order.Uint32(buffer[i:])))
			offset += memory.UnitSize
			ld.Words++
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break // for loop
		}
		if err != nil {
			return curated.Errorf(ReadError, ld.Filename, err)
		}
	}

	if trailing := size % memory.UnitSize; trailing != 0 {
		logger.Logf(logger.Allow, "loader", "%s: ignoring %d trailing bytes", ld.ShortName(), trailing)
	}

	h := fmt.Sprintf("%x", hash.Sum(nil))
	if ld.Hash != "" && ld.Hash != h {
		return curated.Errorf(HashMismatch, ld.Filename)
	}
	ld.Hash = h

	logger.Logf(logger.Allow, "loader", "loaded %d words from %s at %#x", ld.Words, ld.ShortName(), uint64(ld.Base))

	return nil
}
