// Package mfcam provides camera capture on Windows through Media Foundation
// without CGO. It enumerates video capture devices, negotiates capture
// formats, reads and writes hardware controls (brightness, exposure, zoom,
// and so on), and streams raw frame buffers.
//
// The high-level entry points are ListDevices, OpenDevice, and
// OpenDeviceBySymbolicLink. On every platform other than Windows the same
// API is present but operations return NotImplementedError.
//
// Frames are returned exactly as the hardware produced them; no color-space
// conversion is performed.
package mfcam

// Backend identifies the platform media subsystem behind this package.
const Backend = "MediaFoundation"

// Startup brings the media subsystem into a ready state. It is called
// lazily by ListDevices and the Open functions; calling it explicitly is
// only useful to surface initialization errors early. Safe to call multiple
// times.
func Startup() error {
	return subsystem.initialize()
}

// Shutdown tears the media subsystem down if it is initialized. It is
// called automatically when the last open device is closed; calling it
// while devices are open will break them. Safe to call multiple times and
// safe to call if no device was ever opened.
func Shutdown() error {
	return subsystem.deinitialize()
}

// IsInitialized reports whether the media subsystem is currently up.
func IsInitialized() bool {
	return subsystem.ready()
}
