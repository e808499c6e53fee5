// Package stubtest provides assertion helpers for tests that use stubs built
// with package stub.
package stubtest

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schmitthub/stubkit/pkg/stub"
)

// AssertUnstubbed fails the test unless fn panics with an *stub.UnstubbedError
// naming member.
func AssertUnstubbed(t testing.TB, member string, fn func()) {
	t.Helper()
	err := stub.Catch(fn)
	if err == nil {
		t.Errorf("expected unstubbed invocation of %s, but the call returned normally", member)
		return
	}
	var ue *stub.UnstubbedError
	if !errors.As(err, &ue) {
		t.Errorf("expected *stub.UnstubbedError, got %T: %v", err, err)
		return
	}
	if ue.Member != member {
		t.Errorf("expected unstubbed invocation of %s, got %s", member, ue.Member)
	}
}

// AssertStubbed fails the test if fn hits an unstubbed slot.
func AssertStubbed(t testing.TB, fn func()) {
	t.Helper()
	if err := stub.Catch(fn); err != nil {
		t.Errorf("unexpected unstubbed invocation: %v", err)
	}
}

// AssertCalled fails the test if method was not recorded.
func AssertCalled(t testing.TB, rec *stub.Recorder, method string) {
	t.Helper()
	methods := rec.Methods()
	if !slices.Contains(methods, method) {
		t.Errorf("expected %s to be called, but it was not; calls: %v", method, methods)
	}
}

// AssertNotCalled fails the test if method was recorded.
func AssertNotCalled(t testing.TB, rec *stub.Recorder, method string) {
	t.Helper()
	methods := rec.Methods()
	if slices.Contains(methods, method) {
		t.Errorf("expected %s to NOT be called, but it was; calls: %v", method, methods)
	}
}

// AssertCalledN fails the test if method was not recorded exactly n times.
func AssertCalledN(t testing.TB, rec *stub.Recorder, method string, n int) {
	t.Helper()
	if count := rec.CallCount(method); count != n {
		t.Errorf("expected %s to be called %d times, but was called %d times; calls: %v",
			method, n, count, rec.Methods())
	}
}

// AssertCalledWith fails the test unless some recorded call to method has
// the given arguments. Arguments are compared with assert.ObjectsAreEqual, so
// slices and maps compare by content.
func AssertCalledWith(t testing.TB, rec *stub.Recorder, method string, args ...any) {
	t.Helper()
	for _, c := range rec.Calls() {
		if c.Method == method && argsEqual(c.Args, args) {
			return
		}
	}
	t.Errorf("expected %s to be called with %v; calls: %v", method, args, rec.Calls())
}

func argsEqual(got, want []any) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !assert.ObjectsAreEqual(got[i], want[i]) {
			return false
		}
	}
	return true
}
