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

package session_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edakit/edakit/curated"
	"github.com/edakit/edakit/loader"
	"github.com/edakit/edakit/memory"
	"github.com/edakit/edakit/session"
	"github.com/edakit/edakit/test"
)

func writeFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	var data []byte
	for i := uint32(0); i < 16; i++ {
		data = binary.LittleEndian.AppendUint32(data, 0x1000+i)
	}
	bin := filepath.Join(dir, "firmware.bin")
	test.DemandSuccess(t, os.WriteFile(bin, data, 0o644))

	idc := filepath.Join(dir, "firmware.idc")
	script := "static main(void) {\n" +
		"\tMakeName\t(0X100, \"entry\");\n" +
		"\tMakeName\t(0X120, \"helper\");\n" +
		"}\n"
	test.DemandSuccess(t, os.WriteFile(idc, []byte(script), 0o644))

	return bin, idc
}

func TestSession(t *testing.T) {
	bin, idc := writeFiles(t)

	s := session.NewSession()
	test.DemandSuccess(t, s.LoadBinary(bin, 0x100))

	res, err := s.ImportNames(idc)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res, loader.ImportResult{Named: 2})

	// functions pick up names from the imported script or get a default
	s.Functions.AddFunction(0x100)
	s.Functions.AddFunction(0x130)
	test.ExpectEquality(t, s.Symbols.GetName(0x100), "entry")
	test.ExpectEquality(t, s.Symbols.GetName(0x130), "sub_130")
	test.ExpectEquality(t, s.Symbols.GetName(0x134), "loc_134")

	c, created := s.Mem.Access(0x120)
	test.ExpectFailure(t, created)
	test.ExpectEquality(t, c.Get(0), 0x1008)

	// a later changelist does not change the view of an earlier one
	c.Set(1, 0xffff)
	test.ExpectEquality(t, c.Get(0), 0x1008)
	test.ExpectEquality(t, c.Get(1), 0xffff)

	expected := []memory.Region{{Base: 0x100, Length: 0x40}}
	if diff := cmp.Diff(expected, s.Mem.Chunks()); diff != "" {
		t.Errorf("unexpected chunks (-want +got):\n%s", diff)
	}
	test.DemandEquality(t, len(s.Loaded), 1)
	test.ExpectEquality(t, s.Loaded[0].ShortName(), "firmware")
}

func TestSessionsAreIndependent(t *testing.T) {
	bin, _ := writeFiles(t)

	a := session.NewSession()
	b := session.NewSession()
	test.DemandSuccess(t, a.LoadBinary(bin, 0x100))
	test.DemandSuccess(t, b.LoadBinary(bin, 0x100))

	a.Symbols.SetName(0x100, "only_in_a")
	test.ExpectFailure(t, b.Symbols.IsNameSet(0x100))

	a.Functions.AddFunction(0x104)
	_, ok := b.Functions.InFunction(0x104)
	test.ExpectFailure(t, ok)

	// loading twice into the same session fails
	err := a.LoadBinary(bin, 0x120)
	test.ExpectSuccess(t, curated.Has(err, memory.AllocationOverlap))
	test.ExpectEquality(t, len(a.Loaded), 1)
}
