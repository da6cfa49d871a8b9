package collection

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestCursorDrain(t *testing.T) {
	values := []int{1, 2, 3}
	index := 0
	cursor := NewCursor(func() (int, bool) {
		if index >= len(values) {
			return 0, false
		}
		v := values[index]
		index++
		return v, true
	})

	got := Drain(cursor)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("drained %v", got)
	}
}

func TestCursorExhausted(t *testing.T) {
	cursor := NewCursor(func() (int, bool) { return 0, false })
	if cursor.Next() {
		t.Fatalf("expected exhausted cursor")
	}
	if cursor.Next() {
		t.Fatalf("cursor restarted after exhaustion")
	}
}

func TestZeroCursor(t *testing.T) {
	var cursor Cursor[string]
	if cursor.Next() {
		t.Fatalf("zero cursor yielded a value")
	}
}

func TestErrorClassification(t *testing.T) {
	wrapped := errors.Wrapf(ErrOutOfBounds, "somewhere: index 9 of 3")
	if !errors.Is(wrapped, ErrOutOfBounds) {
		t.Fatalf("wrap lost sentinel")
	}
	if errors.Is(wrapped, ErrEmpty) {
		t.Fatalf("sentinels overlap")
	}
}
