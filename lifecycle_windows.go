//go:build windows

package mfcam

import (
	"github.com/openmediakit/mfcam/internal/bindings"
	"github.com/openmediakit/mfcam/internal/com"
)

// platformStartup loads the Media Foundation libraries, enters a COM
// apartment, and starts the platform pipeline.
func platformStartup() error {
	if err := bindings.Load(); err != nil {
		return &InitializeError{Backend: Backend, Err: err}
	}
	if err := bindings.CoInitialize(); err != nil {
		return &InitializeError{Backend: Backend, Err: err}
	}
	if err := bindings.MFStartup(com.MF_VERSION, com.MFSTARTUP_NOSOCKET); err != nil {
		bindings.CoUninitialize()
		return &InitializeError{Backend: Backend, Err: err}
	}
	return nil
}

// platformShutdown stops the platform pipeline and leaves the COM
// apartment. The apartment is left even if MFShutdown fails, so the two
// startup steps always unwind together.
func platformShutdown() error {
	err := bindings.MFShutdown()
	bindings.CoUninitialize()
	if err != nil {
		return &ShutdownError{Backend: Backend, Err: err}
	}
	return nil
}
