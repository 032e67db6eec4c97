package test

import "testing"

// DemandEquality is the same as ExpectEquality except that the test will stop
// immediately on failure
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess is the same as ExpectSuccess except that the test will stop
// immediately on failure
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Fatalf("%sa success value is demanded for type %T (%v)", id(tags...), v, v)
	}
}

// DemandFailure is the same as ExpectFailure except that the test will stop
// immediately on failure
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		t.Fatalf("%sa failure value is demanded for type %T", id(tags...), v)
	}
}

// DemandInequality is the same as ExpectInequality except that the test will
// stop immediately on failure
func DemandInequality[T comparable](t *testing.T, v T, otherValue T, tags ...any) {
	t.Helper()
	if v == otherValue {
		t.Fatalf("%sinequality test of type %T failed: '%v' equals '%v'", id(tags...), v, v, otherValue)
	}
}
