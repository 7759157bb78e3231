//go:build !windows

package mfcam

// Device is an open capture session on one camera. On this platform no
// Device can be constructed; every operation fails with
// NotImplementedError.
type Device struct {
	info   DeviceDescriptor
	format CameraFormat
}

// ListDevices enumerates the attached video capture devices.
func ListDevices() ([]DeviceDescriptor, error) {
	return nil, &NotImplementedError{Operation: "ListDevices"}
}

// OpenDevice opens the capture device at the given enumeration index.
func OpenDevice(index int) (*Device, error) {
	return nil, &NotImplementedError{Operation: "OpenDevice"}
}

// OpenDeviceBySymbolicLink re-enumerates the attached devices and opens
// the one whose symbolic link matches exactly.
func OpenDeviceBySymbolicLink(link string) (*Device, error) {
	return nil, &NotImplementedError{Operation: "OpenDeviceBySymbolicLink"}
}

// Index returns the enumeration ordinal the device was opened under.
func (d *Device) Index() int { return d.info.Index }

// Name returns the device's friendly display name.
func (d *Device) Name() string { return d.info.HumanName }

// SymbolicLink returns the stable platform identity of the device.
func (d *Device) SymbolicLink() string { return d.info.SymbolicLink }

// Descriptor returns the descriptor the device was opened from.
func (d *Device) Descriptor() DeviceDescriptor { return d.info }

// IsStreaming reports whether the capture stream has been started.
func (d *Device) IsStreaming() bool { return false }

// StartStream selects the first video stream for delivery.
func (d *Device) StartStream() error {
	return &NotImplementedError{Operation: "StartStream"}
}

// StopStream marks the stream stopped.
func (d *Device) StopStream() {}

// ReadFrame blocks until the device delivers a frame.
func (d *Device) ReadFrame() ([]byte, error) {
	return nil, &NotImplementedError{Operation: "ReadFrame"}
}

// CompatibleFormats walks the device's native media types.
func (d *Device) CompatibleFormats() ([]CameraFormat, error) {
	return nil, &NotImplementedError{Operation: "CompatibleFormats"}
}

// SetFormat asks the device to switch to the given capture format.
func (d *Device) SetFormat(f CameraFormat) error {
	return &NotImplementedError{Operation: "SetFormat"}
}

// RefreshFormat re-reads the device's current media type into the cached
// format.
func (d *Device) RefreshFormat() error {
	return &NotImplementedError{Operation: "RefreshFormat"}
}

// Format returns the last capture format read from the device.
func (d *Device) Format() CameraFormat { return d.format }

// Control reads the full current state of one hardware control.
func (d *Device) Control(id ControlID) (ControlDescriptor, error) {
	return ControlDescriptor{}, &NotImplementedError{Operation: "Control"}
}

// Controls reads every control the backend knows about.
func (d *Device) Controls() ([]ControlDescriptor, error) {
	return nil, &NotImplementedError{Operation: "Controls"}
}

// SetControl writes one hardware control.
func (d *Device) SetControl(id ControlID, value ControlValue) error {
	return &NotImplementedError{Operation: "SetControl"}
}

// Close tears the session down.
func (d *Device) Close() error { return nil }
