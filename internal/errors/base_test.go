package errors

import "testing"

func TestWrap(t *testing.T) {
	err := Wrap(errWrapped, "Hello, Wrapped!")
	if err.Error() != "Hello, Wrapped!, err: wrapped error" {
		t.Fatalf("error mismatch: %+v", err)
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errWrapped, "field %q index %d", "bid", 2)
	if err.Error() != `field "bid" index 2, err: wrapped error` {
		t.Fatalf("error mismatch: %+v", err)
	}

	if !Is(err, errWrapped) {
		t.Fatalf("wrapped sentinel should match: %+v", err)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Fatalf("wrap nil should be nil, got %+v", err)
	}

	if err := Wrapf(nil, "ignored %d", 1); err != nil {
		t.Fatalf("wrapf nil should be nil, got %+v", err)
	}
}
