// Package testutil provides shared test utilities for the chess-core-go
// project: assertion helpers built on go-cmp, coordinate fixtures, and a
// minimal reference board for exercising the Board contract.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// cmpOptions lets cmp look inside the core value types, whose packed
// representations are deliberately unexported.
var cmpOptions = []cmp.Option{
	cmp.AllowUnexported(chess.Piece{}, chess.Coordinate{}),
}

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the
// assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpOptions...); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

// AssertMovesEqual compares two move sequences ignoring order, since
// Board.Moves ordering is implementation-defined.
func AssertMovesEqual(t *testing.T, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	opts := append([]cmp.Option{
		cmpopts.SortSlices(func(a, b chess.Move) bool {
			if a.Origin.Index() != b.Origin.Index() {
				return a.Origin.Index() < b.Origin.Index()
			}
			if a.Target.Index() != b.Target.Index() {
				return a.Target.Index() < b.Target.Index()
			}
			return a.Kind < b.Kind
		}),
		cmpopts.EquateEmpty(),
	}, cmpOptions...)
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: moves mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("moves mismatch (-want +got):\n%s", diff)
		}
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: unexpected error: %v", msg, err)
		} else {
			t.Errorf("unexpected error: %v", err)
		}
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: expected error but got nil", msg)
		} else {
			t.Error("expected error but got nil")
		}
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: expected true but got false", msg)
		} else {
			t.Error("expected true but got false")
		}
	}
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
