//go:build windows

package bindings

import "testing"

func TestCallBeforeLoad(t *testing.T) {
	if IsLoaded() {
		t.Skip("libraries already loaded by another test")
	}
	if err := MFStartup(0x20070, 0x1); err != ErrNotLoaded {
		t.Fatalf("MFStartup before Load = %v, want ErrNotLoaded", err)
	}
	if _, err := MFCreateMediaType(); err != ErrNotLoaded {
		t.Fatalf("MFCreateMediaType before Load = %v, want ErrNotLoaded", err)
	}
}

// Integration test - the Media Foundation DLLs ship with Windows, so Load
// should always succeed here.
func TestLoad(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !IsLoaded() {
		t.Fatal("IsLoaded should be true after successful Load")
	}

	// Load is sticky; a second call is a no-op.
	if err := Load(); err != nil {
		t.Fatalf("second Load: %v", err)
	}
}
