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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/edakit/edakit/logger"
	"github.com/edakit/edakit/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "memory", "allocating")
	log.Log(logger.Allow, "memory", "allocating")
	log.Log(logger.Allow, "memory", "allocating")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "memory: allocating (repeat x3)\n")
	test.ExpectEquality(t, len(log.Entries()), 1)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibitLogging struct{}

func (_ prohibitLogging) AllowLogging() bool {
	return false
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{}, "tag", "detail")
	log.Logf(prohibitLogging{}, "tag", "detail %d", 10)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "error", errors.New("test error"))
	log.Log(logger.Allow, "stringer", stringerTest{})
	log.Log(logger.Allow, "int", 100)
	log.Logf(logger.Allow, "format", "%#x", 0x100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "error: test error\nstringer: stringer test\nint: 100\nformat: 0x100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}

	log.SetEcho(echo)
	log.Log(logger.Allow, "echo", "line\nbreak")
	test.ExpectSuccess(t, echo.Compare("echo: linebreak\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "silent")
	test.ExpectSuccess(t, echo.Compare("echo: linebreak\n"))
}
