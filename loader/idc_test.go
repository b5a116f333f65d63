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

package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/edakit/edakit/curated"
	"github.com/edakit/edakit/loader"
	"github.com/edakit/edakit/memory"
	"github.com/edakit/edakit/symbols"
	"github.com/edakit/edakit/test"
)

const testIDC = `#include <idc.idc>

static main(void) {
	MakeName	(0X8000,	"start");
	MakeName	(0X8010,	"reset_handler");
	MakeName	(0x8abc, "lower_case_hex");
	MakeCode	(0X8000);
// MakeName	(0X9000, "commented out");
    MakeName	(0X9004, "spaces not tabs");
	MakeName	(0X9008 "missing comma");
	MakeName	(0X900c, missing quotes);
	MakeName	(0X9010, "unterminated);
	MakeName	(0XZZZZ, "bad hex");
	MakeName	(0X9014, "");
	MakeName	(9018, "no x");
	MakeName	(0X8000,	"renamed_start");
}
`

func TestImportIDC(t *testing.T) {
	tbl := symbols.NewTable()

	res, err := loader.ImportIDC(strings.NewReader(testIDC), tbl)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Named, 4)
	test.ExpectEquality(t, res.Skipped, 6)

	test.ExpectEquality(t, tbl.GetName(0x8000), "renamed_start")
	test.ExpectEquality(t, tbl.GetName(0x8010), "reset_handler")
	test.ExpectEquality(t, tbl.GetName(0x8abc), "lower_case_hex")
	test.ExpectEquality(t, tbl.Len(), 3)

	_, ok := tbl.LookupName("start")
	test.ExpectFailure(t, ok)

	a, ok := tbl.LookupName("renamed_start")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0x8000)

	// lines without the exact marker are ignored
	test.ExpectFailure(t, tbl.IsNameSet(0x9000))
	test.ExpectFailure(t, tbl.IsNameSet(0x9004))

	// malformed lines are skipped
	for _, a := range []memory.Address{0x9008, 0x900c, 0x9010, 0x9014, 0x9018} {
		test.ExpectFailure(t, tbl.IsNameSet(a), a)
	}
}

func TestImportIDCFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.idc")
	test.DemandSuccess(t, os.WriteFile(filename, []byte("\tMakeName\t(0X100, \"foo\");\n"), 0o644))

	tbl := symbols.NewTable()
	res, err := loader.ImportIDCFile(filename, tbl)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Named, 1)
	test.ExpectEquality(t, tbl.GetName(0x100), "foo")

	_, err = loader.ImportIDCFile(filepath.Join(t.TempDir(), "missing.idc"), tbl)
	test.ExpectSuccess(t, curated.Is(err, loader.FileError))
}

func TestImportIDCLongLines(t *testing.T) {
	script := "// " + strings.Repeat("x", loader.MaxIDCLine*2) + "\n" +
		"\tMakeName\t(0X10, \"after_comment\");\n" +
		"\tMakeName\t(0X20, \"" + strings.Repeat("y", loader.MaxIDCLine) + "\");\n" +
		"\tMakeName\t(0X30, \"after_long_name\");"

	tbl := symbols.NewTable()
	res, err := loader.ImportIDC(strings.NewReader(script), tbl)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res, loader.ImportResult{Named: 2, Skipped: 1})

	test.ExpectEquality(t, tbl.GetName(0x10), "after_comment")
	test.ExpectFailure(t, tbl.IsNameSet(0x20))

	// the last line has no line ending
	test.ExpectEquality(t, tbl.GetName(0x30), "after_long_name")
}

func TestImportIDCReadError(t *testing.T) {
	tbl := symbols.NewTable()
	_, err := loader.ImportIDC(iotest.ErrReader(errors.New("disk on fire")), tbl)
	test.ExpectSuccess(t, curated.Is(err, loader.IDCReadError))
	test.ExpectEquality(t, err.Error(), "loader: error reading IDC script: disk on fire")
}
