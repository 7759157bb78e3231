package mfcam

import (
	"testing"

	"go.uber.org/zap"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if logger() == nil {
		t.Fatal("default logger should be non-nil")
	}

	l := zap.NewNop()
	SetLogger(l)
	if logger() != l {
		t.Fatal("SetLogger did not install the logger")
	}

	// nil resets to the no-op logger instead of panicking later.
	SetLogger(nil)
	if logger() == nil {
		t.Fatal("logger should stay non-nil after SetLogger(nil)")
	}
}
