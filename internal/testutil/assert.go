package testutil

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// AssertEqual reports a cmp.Diff between want and got.
// msgAndArgs is an optional format string and its arguments.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected an error, got nil")
	}
}

// AssertContains fails if got does not contain substr.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q not found in %q", substr, got)
	}
}

// AssertNotContains fails if got contains substr.
func AssertNotContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q unexpectedly found in %q", substr, got)
	}
}

// AssertTrue fails if cond is false.
func AssertTrue(t *testing.T, cond bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !cond {
		fail(t, msgAndArgs, "condition is false")
	}
}

// AssertNil fails unless got is nil. A typed nil pointer counts as nil.
func AssertNil(t *testing.T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(got) {
		fail(t, msgAndArgs, "expected nil, got %v", got)
	}
}

// AssertPosition checks the game's full FEN and ending together, which is
// what most rules tests care about after playing a line.
func AssertPosition(t *testing.T, g *engine.Game, wantFEN string, wantEnding engine.Ending) {
	t.Helper()
	if got := g.FullFEN(); got != wantFEN {
		t.Errorf("FEN after %d plies:\n got %s\nwant %s", g.PlyCount(), got, wantFEN)
	}
	if got := g.Ending(); got != wantEnding {
		t.Errorf("ending after %d plies = %v, want %v", g.PlyCount(), got, wantEnding)
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func fail(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if prefix := formatMessage(msgAndArgs...); prefix != "" {
		text = prefix + ": " + text
	}
	t.Error(text)
}

// formatMessage renders the optional msgAndArgs of an assertion. A leading
// string is treated as a format for the rest.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs[0])
	}
	if len(msgAndArgs) == 1 {
		return format
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}
