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

// Package test contains helper functions to remove common boilerplate from
// tests in the standard go test harness.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and should be used when
// later parts of the test rely on the value being correct. For example,
// checking the length of a slice before indexing it.
//
// Success and failure are judged according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Note that untyped nil is treated as success. This is how errors usually
// work and ExpectSuccess(t, err) reads naturally for an error value that
// might be nil.
//
// The CompareWriter type implements io.Writer and is useful for capturing
// output and comparing it to an expected string.
package test
