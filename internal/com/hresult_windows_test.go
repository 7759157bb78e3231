//go:build windows

package com

import (
	"errors"
	"testing"
)

func TestHRESULTFailed(t *testing.T) {
	tests := []struct {
		hr     HRESULT
		failed bool
	}{
		{0x00000000, false}, // S_OK
		{0x00000001, false}, // S_FALSE
		{0x80004005, true},  // E_FAIL
		{0xC00D36B2, true},  // MF_E_INVALIDREQUEST
	}
	for _, tt := range tests {
		if got := tt.hr.Failed(); got != tt.failed {
			t.Errorf("HRESULT(%#x).Failed() = %t, want %t", uint32(tt.hr), got, tt.failed)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := Check("MFStartup", 0); err != nil {
		t.Fatalf("Check on success = %v", err)
	}

	err := Check("MFStartup", 0x80004005)
	if err == nil {
		t.Fatal("Check on failure should return an error")
	}
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("Check error = %T, want *Error", err)
	}
	if ce.Op != "MFStartup" || ce.Code != 0x80004005 {
		t.Fatalf("unexpected error contents: %+v", ce)
	}
	if want := "MFStartup: HRESULT 0x80004005"; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
