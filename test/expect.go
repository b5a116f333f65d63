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

package test

import (
	"fmt"
	"strings"
	"testing"
)

// id builds a prefix for failure messages from the optional tags.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := make([]string, len(tags))
	for i := range tags {
		s[i] = fmt.Sprintf("%v", tags[i])
	}
	return fmt.Sprintf("%s: ", strings.Join(s, " "))
}

// success decides whether v is a 'success' value for its type. the second
// return value is false if the type is not supported.
func success(v any) (bool, bool) {
	switch v := v.(type) {
	case nil:
		return true, true
	case bool:
		return v, true
	case error:
		return v == nil, true
	}
	return false, false
}

// ExpectSuccess tests that v is a success value for its type. Returns the
// result of the test.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
		return false
	}
	if !ok {
		t.Errorf("%sexpected success (%T: %v)", id(tags...), v, v)
	}
	return ok
}

// ExpectFailure tests that v is a failure value for its type. Returns the
// result of the test.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
		return false
	}
	if ok {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
	}
	return !ok
}

// ExpectEquality tests that v is equal to the expected value.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality tests that v is not equal to the unexpected value.
func ExpectInequality[T comparable](t *testing.T, v T, unexpectedValue T, tags ...any) bool {
	t.Helper()
	if v == unexpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' equals '%v'", id(tags...), v, v, unexpectedValue)
		return false
	}
	return true
}

// DemandEquality is like ExpectEquality but failure is fatal to the test.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess is like ExpectSuccess but failure is fatal to the test.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}
	if !ok {
		t.Fatalf("%sa success value is demanded (%T: %v)", id(tags...), v, v)
	}
}

// DemandFailure is like ExpectFailure but failure is fatal to the test.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	ok, supported := success(v)
	if !supported {
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}
	if ok {
		t.Fatalf("%sa failure value is demanded (%T)", id(tags...), v)
	}
}
