//go:build !windows

package mfcam

// Media Foundation only exists on Windows. On every other platform the
// package compiles, exposes the same API, and fails at runtime with
// NotImplementedError.

func platformStartup() error {
	return &NotImplementedError{Operation: "initialize " + Backend}
}

func platformShutdown() error {
	return &NotImplementedError{Operation: "shutdown " + Backend}
}
