//go:build windows

package mfcam

import (
	"errors"
	"strconv"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/openmediakit/mfcam/internal/bindings"
	"github.com/openmediakit/mfcam/internal/com"
)

// Device is an open capture session on one camera. A Device is safe for
// use from multiple goroutines; all operations serialize on an internal
// mutex because the underlying source reader is single-threaded.
type Device struct {
	mu sync.Mutex

	info      DeviceDescriptor
	source    *com.IMFMediaSource
	reader    *com.IMFSourceReader
	format    CameraFormat
	streaming bool
	closed    bool
}

// OpenDevice opens the capture device at the given enumeration index.
func OpenDevice(index int) (*Device, error) {
	if index < 0 {
		return nil, &OpenDeviceError{Device: strconv.Itoa(index), Err: ErrNoDevice}
	}
	activates, release, err := queryActivates()
	if err != nil {
		return nil, err
	}
	defer release()

	if index >= len(activates) {
		return nil, &OpenDeviceError{Device: strconv.Itoa(index), Err: ErrNoDevice}
	}
	desc, err := activateToDescriptor(index, activates[index])
	if err != nil {
		return nil, err
	}
	return openActivate(desc, activates[index])
}

// OpenDeviceBySymbolicLink re-enumerates the attached devices and opens
// the one whose symbolic link matches exactly.
func OpenDeviceBySymbolicLink(link string) (*Device, error) {
	activates, release, err := queryActivates()
	if err != nil {
		return nil, err
	}
	defer release()

	for i, a := range activates {
		desc, err := activateToDescriptor(i, a)
		if err != nil {
			return nil, err
		}
		if desc.SymbolicLink == link {
			return openActivate(desc, a)
		}
	}
	return nil, &OpenDeviceError{Device: link, Err: ErrNoDevice}
}

// openActivate turns an activation handle into a live Device: activates
// the media source, wraps it in a source reader with format converters
// disabled, and registers the session with the subsystem.
//
// Converters stay disabled so the reader only ever hands back frames in
// the device's own native encodings.
func openActivate(desc DeviceDescriptor, activate *com.IMFActivate) (*Device, error) {
	source, err := activate.ActivateMediaSource()
	if err != nil {
		return nil, &OpenDeviceError{Device: desc.SymbolicLink, Err: err}
	}

	attrs, err := bindings.MFCreateAttributes(1)
	if err != nil {
		source.Release()
		return nil, &StructureError{Structure: "IMFAttributes", Err: err}
	}
	if err := attrs.SetUINT32(&com.MF_READWRITE_DISABLE_CONVERTERS, 1); err != nil {
		attrs.Release()
		source.Release()
		return nil, &SetPropertyError{Property: "MF_READWRITE_DISABLE_CONVERTERS", Value: "1", Err: err}
	}

	reader, err := bindings.MFCreateSourceReaderFromMediaSource(source, attrs)
	attrs.Release()
	if err != nil {
		source.Release()
		return nil, &StructureError{Structure: "IMFSourceReader", Err: err}
	}

	d := &Device{info: desc, source: source, reader: reader}
	subsystem.sessionOpened()
	logger().Debug("device opened",
		zap.String("name", desc.HumanName),
		zap.String("symbolic_link", desc.SymbolicLink))
	return d, nil
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
func (d *Device) IsStreaming() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.streaming
}

// StartStream selects the first video stream for delivery. Calling it on
// a device that is already streaming is a no-op.
func (d *Device) StartStream() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDeviceClosed
	}
	if d.streaming {
		return nil
	}
	if err := d.reader.SetStreamSelection(com.MF_SOURCE_READER_FIRST_VIDEO_STREAM, true); err != nil {
		return &SetPropertyError{Property: "StreamSelection", Value: "selected", Err: err}
	}
	d.streaming = true
	return nil
}

// StopStream marks the stream stopped. The device stays open; StartStream
// may be called again.
func (d *Device) StopStream() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.streaming = false
}

// ReadFrame blocks until the device delivers a frame and returns a copy of
// its raw bytes, exactly as produced in the current capture format. The
// stream must have been started.
func (d *Device) ReadFrame() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, &ReadFrameError{Err: ErrDeviceClosed}
	}
	if !d.streaming {
		return nil, &ReadFrameError{Err: ErrNotStreaming}
	}

	// The reader is synchronous but a read may legitimately complete
	// without a sample (stream tick, gap); poll until one arrives.
	var sample *com.IMFSample
	for sample == nil {
		s, _, err := d.reader.ReadSample(com.MF_SOURCE_READER_FIRST_VIDEO_STREAM)
		if err != nil {
			return nil, &ReadFrameError{Err: err}
		}
		sample = s
	}
	defer sample.Release()

	buffer, err := sample.ConvertToContiguousBuffer()
	if err != nil {
		return nil, &ReadFrameError{Err: err}
	}
	defer buffer.Release()

	ptr, length, err := buffer.Lock()
	if err != nil {
		return nil, &ReadFrameError{Err: err}
	}
	defer buffer.Unlock()

	if ptr == nil || length == 0 {
		return nil, &ReadFrameError{Err: errors.New("empty frame buffer")}
	}
	frame := make([]byte, length)
	copy(frame, unsafe.Slice(ptr, length))
	return frame, nil
}

// Close tears the session down. Idempotent. The reader is flushed best
// effort before release; flush failures are logged and do not stop the
// teardown. Closing the last open device shuts the subsystem down.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	d.streaming = false

	if err := d.reader.Flush(com.MF_SOURCE_READER_FIRST_VIDEO_STREAM); err != nil {
		logger().Warn("source reader flush failed during close",
			zap.String("name", d.info.HumanName), zap.Error(err))
	}
	d.reader.Release()
	d.reader = nil
	d.source.Release()
	d.source = nil

	subsystem.sessionClosed()
	logger().Debug("device closed", zap.String("name", d.info.HumanName))
	return nil
}
