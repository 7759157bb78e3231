//go:build windows

package mfcam

import (
	"errors"

	"golang.org/x/sys/windows"

	"github.com/openmediakit/mfcam/internal/bindings"
	"github.com/openmediakit/mfcam/internal/com"
)

// subtypeToFormat maps a media subtype GUID to a pixel encoding. Unknown
// subtypes are skipped during enumeration and rejected on refresh.
func subtypeToFormat(subtype windows.GUID) (FrameFormat, bool) {
	switch subtype {
	case com.MFVideoFormat_MJPG:
		return FormatMJPEG, true
	case com.MFVideoFormat_YUY2:
		return FormatYUYV, true
	case com.MFVideoFormat_Y800:
		return FormatGray, true
	default:
		return FormatUnknown, false
	}
}

// formatToSubtype maps a pixel encoding back to its media subtype GUID.
func formatToSubtype(f FrameFormat) (*windows.GUID, bool) {
	switch f {
	case FormatMJPEG:
		return &com.MFVideoFormat_MJPG, true
	case FormatYUYV:
		return &com.MFVideoFormat_YUY2, true
	case FormatGray:
		return &com.MFVideoFormat_Y800, true
	default:
		return nil, false
	}
}

// CompatibleFormats walks the device's native media types and returns
// every capture format this package can deliver. Each native type yields
// up to three entries, one per distinct minimum, nominal, and maximum
// frame rate. Types with unrecognized pixel encodings are skipped, not
// errors. The walk stops at the first index the platform rejects, which
// is how the capability list reports its end.
func (d *Device) CompatibleFormats() ([]CameraFormat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDeviceClosed
	}

	var formats []CameraFormat
	for index := uint32(0); ; index++ {
		mt, err := d.reader.GetNativeMediaType(com.MF_SOURCE_READER_FIRST_VIDEO_STREAM, index)
		if err != nil {
			break
		}
		attrs := mt.AsAttributes()

		subtype, err := attrs.GetGUID(&com.MF_MT_SUBTYPE)
		if err != nil {
			mt.Release()
			return nil, &GetPropertyError{Property: "MF_MT_SUBTYPE", Err: err}
		}
		format, ok := subtypeToFormat(subtype)
		if !ok {
			mt.Release()
			continue
		}

		size, err := attrs.GetUINT64(&com.MF_MT_FRAME_SIZE)
		if err != nil {
			mt.Release()
			return nil, &GetPropertyError{Property: "MF_MT_FRAME_SIZE", Err: err}
		}
		nominal, err := attrs.GetUINT64(&com.MF_MT_FRAME_RATE)
		if err != nil {
			mt.Release()
			return nil, &GetPropertyError{Property: "MF_MT_FRAME_RATE", Err: err}
		}
		minRate, err := attrs.GetUINT64(&com.MF_MT_FRAME_RATE_RANGE_MIN)
		if err != nil {
			mt.Release()
			return nil, &GetPropertyError{Property: "MF_MT_FRAME_RATE_RANGE_MIN", Err: err}
		}
		maxRate, err := attrs.GetUINT64(&com.MF_MT_FRAME_RATE_RANGE_MAX)
		if err != nil {
			mt.Release()
			return nil, &GetPropertyError{Property: "MF_MT_FRAME_RATE_RANGE_MAX", Err: err}
		}
		mt.Release()

		formats = appendRateEntries(formats,
			frameSizeFromPacked(size), format,
			frameRateFromPacked(minRate),
			frameRateFromPacked(nominal),
			frameRateFromPacked(maxRate))
	}
	return formats, nil
}

// SetFormat asks the device to switch to the given capture format. The
// requested frame rate is written as a whole-number fraction into the
// nominal rate and both range bounds. After the platform accepts the
// type, the cached format is refreshed from the device, so Format always
// reflects what the hardware actually granted rather than what was asked.
func (d *Device) SetFormat(f CameraFormat) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDeviceClosed
	}

	subtype, ok := formatToSubtype(f.Format)
	if !ok {
		return &SetPropertyError{
			Property: "MF_MT_SUBTYPE",
			Value:    f.Format.String(),
			Err:      errors.New("unsupported frame format"),
		}
	}

	mt, err := bindings.MFCreateMediaType()
	if err != nil {
		return &StructureError{Structure: "IMFMediaType", Err: err}
	}
	defer mt.Release()
	attrs := mt.AsAttributes()

	if err := attrs.SetGUID(&com.MF_MT_MAJOR_TYPE, &com.MFMediaType_Video); err != nil {
		return &SetPropertyError{Property: "MF_MT_MAJOR_TYPE", Value: "MFMediaType_Video", Err: err}
	}
	if err := attrs.SetGUID(&com.MF_MT_SUBTYPE, subtype); err != nil {
		return &SetPropertyError{Property: "MF_MT_SUBTYPE", Value: f.Format.String(), Err: err}
	}
	if err := attrs.SetUINT64(&com.MF_MT_FRAME_SIZE, packFrameSize(f.Resolution)); err != nil {
		return &SetPropertyError{Property: "MF_MT_FRAME_SIZE", Value: f.Resolution.String(), Err: err}
	}
	rate := packFrameRate(f.FrameRate)
	if err := attrs.SetUINT64(&com.MF_MT_FRAME_RATE, rate); err != nil {
		return &SetPropertyError{Property: "MF_MT_FRAME_RATE", Value: f.String(), Err: err}
	}
	if err := attrs.SetUINT64(&com.MF_MT_FRAME_RATE_RANGE_MIN, rate); err != nil {
		return &SetPropertyError{Property: "MF_MT_FRAME_RATE_RANGE_MIN", Value: f.String(), Err: err}
	}
	if err := attrs.SetUINT64(&com.MF_MT_FRAME_RATE_RANGE_MAX, rate); err != nil {
		return &SetPropertyError{Property: "MF_MT_FRAME_RATE_RANGE_MAX", Value: f.String(), Err: err}
	}

	if err := d.reader.SetCurrentMediaType(com.MF_SOURCE_READER_FIRST_VIDEO_STREAM, mt); err != nil {
		return &SetPropertyError{Property: "CurrentMediaType", Value: f.String(), Err: err}
	}
	return d.refreshFormatLocked()
}

// RefreshFormat re-reads the device's current media type into the cached
// format.
func (d *Device) RefreshFormat() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDeviceClosed
	}
	return d.refreshFormatLocked()
}

func (d *Device) refreshFormatLocked() error {
	mt, err := d.reader.GetCurrentMediaType(com.MF_SOURCE_READER_FIRST_VIDEO_STREAM)
	if err != nil {
		return &GetPropertyError{Property: "CurrentMediaType", Err: err}
	}
	defer mt.Release()
	attrs := mt.AsAttributes()

	subtype, err := attrs.GetGUID(&com.MF_MT_SUBTYPE)
	if err != nil {
		return &GetPropertyError{Property: "MF_MT_SUBTYPE", Err: err}
	}
	format, ok := subtypeToFormat(subtype)
	if !ok {
		// The current type should always be one this package set or one
		// of the native types it recognizes.
		return &GetPropertyError{Property: "MF_MT_SUBTYPE", Err: errors.New("unrecognized media subtype")}
	}
	size, err := attrs.GetUINT64(&com.MF_MT_FRAME_SIZE)
	if err != nil {
		return &GetPropertyError{Property: "MF_MT_FRAME_SIZE", Err: err}
	}
	rate, err := attrs.GetUINT64(&com.MF_MT_FRAME_RATE)
	if err != nil {
		return &GetPropertyError{Property: "MF_MT_FRAME_RATE", Err: err}
	}

	d.format = CameraFormat{
		Resolution: frameSizeFromPacked(size),
		Format:     format,
		FrameRate:  frameRateFromPacked(rate),
	}
	return nil
}

// Format returns the last capture format read from the device. It is
// populated by SetFormat and RefreshFormat; before either runs it is the
// zero CameraFormat.
func (d *Device) Format() CameraFormat {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.format
}
