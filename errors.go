package mfcam

import (
	"errors"
	"fmt"
)

// Inner errors for conditions detected by this package rather than
// reported by a platform call.
var (
	// ErrNullString is wrapped by a GetPropertyError when the platform
	// hands back a null string pointer instead of an empty string.
	ErrNullString = errors.New("null string pointer")

	// ErrNoDevice is wrapped by an OpenDeviceError when the requested
	// device does not exist.
	ErrNoDevice = errors.New("no such device")

	// ErrDeviceClosed is returned from operations on a closed Device.
	ErrDeviceClosed = errors.New("device is closed")

	// ErrNotStreaming is returned from ReadFrame when the stream has not
	// been started.
	ErrNotStreaming = errors.New("stream is not started")
)

// InitializeError reports a failure to bring the platform media subsystem
// up.
type InitializeError struct {
	Backend string
	Err     error
}

func (e *InitializeError) Error() string {
	return fmt.Sprintf("mfcam: initialize %s: %v", e.Backend, e.Err)
}

func (e *InitializeError) Unwrap() error { return e.Err }

// ShutdownError reports a failure to tear the platform media subsystem
// down.
type ShutdownError struct {
	Backend string
	Err     error
}

func (e *ShutdownError) Error() string {
	return fmt.Sprintf("mfcam: shutdown %s: %v", e.Backend, e.Err)
}

func (e *ShutdownError) Unwrap() error { return e.Err }

// OpenDeviceError reports that a device could not be resolved or
// activated. Device carries the identifier the caller asked for, either
// an ordinal index or a symbolic link.
type OpenDeviceError struct {
	Device string
	Err    error
}

func (e *OpenDeviceError) Error() string {
	return fmt.Sprintf("mfcam: open device %q: %v", e.Device, e.Err)
}

func (e *OpenDeviceError) Unwrap() error { return e.Err }

// GetPropertyError reports that reading a named attribute or control from
// the platform failed.
type GetPropertyError struct {
	Property string
	Err      error
}

func (e *GetPropertyError) Error() string {
	return fmt.Sprintf("mfcam: get property %s: %v", e.Property, e.Err)
}

func (e *GetPropertyError) Unwrap() error { return e.Err }

// SetPropertyError reports that writing a named attribute or control to
// the platform failed. Value is the rendering of the value that was being
// written.
type SetPropertyError struct {
	Property string
	Value    string
	Err      error
}

func (e *SetPropertyError) Error() string {
	return fmt.Sprintf("mfcam: set property %s = %s: %v", e.Property, e.Value, e.Err)
}

func (e *SetPropertyError) Unwrap() error { return e.Err }

// StructureError reports that a platform object could not be constructed
// or cast, or that an invalid value type was supplied to a setter.
type StructureError struct {
	Structure string
	Err       error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("mfcam: structure %s: %v", e.Structure, e.Err)
}

func (e *StructureError) Unwrap() error { return e.Err }

// ReadFrameError reports that frame acquisition or buffer access failed.
type ReadFrameError struct {
	Err error
}

func (e *ReadFrameError) Error() string {
	return fmt.Sprintf("mfcam: read frame: %v", e.Err)
}

func (e *ReadFrameError) Unwrap() error { return e.Err }

// NotImplementedError reports an operation invoked on a platform without a
// backing implementation.
type NotImplementedError struct {
	Operation string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("mfcam: %s: not implemented on this platform", e.Operation)
}
