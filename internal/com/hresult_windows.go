//go:build windows

// Package com wraps the Media Foundation COM interfaces this module calls
// through raw vtable dispatch. Every wrapper owns exactly one interface
// pointer and must be released explicitly; none of them rely on COM
// reference counting beyond the single reference they hold.
package com

import "fmt"

// HRESULT is a Windows result code.
type HRESULT uint32

// Failed reports whether the code is a failure (severity bit set).
func (hr HRESULT) Failed() bool {
	return hr&0x80000000 != 0
}

// Error is a failed COM or Media Foundation call. Op names the native
// call; Code is the raw HRESULT.
type Error struct {
	Op   string
	Code HRESULT
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: HRESULT 0x%08X", e.Op, uint32(e.Code))
}

// Check converts a raw HRESULT into an error, or nil on success.
func Check(op string, hr uint32) error {
	if code := HRESULT(hr); code.Failed() {
		return &Error{Op: op, Code: code}
	}
	return nil
}

// check converts a raw syscall return value into an error, or nil on
// success.
func check(op string, r uintptr) error {
	return Check(op, uint32(r))
}
