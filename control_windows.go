//go:build windows

package mfcam

import (
	"errors"
	"fmt"

	"github.com/openmediakit/mfcam/internal/com"
)

// controlSource borrows the reader's underlying media source for control
// calls. Fresh interfaces are acquired on every control operation; nothing
// is cached, so controls keep working across format changes.
func (d *Device) controlSource() (*com.IMFMediaSource, error) {
	obj, err := d.reader.GetServiceForStream(com.MF_SOURCE_READER_FIRST_VIDEO_STREAM,
		&com.MF_MEDIASOURCE_SERVICE, &com.IID_IMFMediaSource)
	if err != nil {
		return nil, &StructureError{Structure: "MF_MEDIASOURCE_SERVICE", Err: err}
	}
	return (*com.IMFMediaSource)(obj), nil
}

func (d *Device) procAmp() (*com.IAMVideoProcAmp, error) {
	source, err := d.controlSource()
	if err != nil {
		return nil, err
	}
	defer source.Release()

	obj, err := source.QueryInterface(&com.IID_IAMVideoProcAmp)
	if err != nil {
		return nil, &StructureError{Structure: "IAMVideoProcAmp", Err: err}
	}
	return (*com.IAMVideoProcAmp)(obj), nil
}

func (d *Device) cameraControl() (*com.IAMCameraControl, error) {
	source, err := d.controlSource()
	if err != nil {
		return nil, err
	}
	defer source.Release()

	obj, err := source.QueryInterface(&com.IID_IAMCameraControl)
	if err != nil {
		return nil, &StructureError{Structure: "IAMCameraControl", Err: err}
	}
	return (*com.IAMCameraControl)(obj), nil
}

// readControl fetches the range and current state of one platform control
// through whichever interface its kind lives on.
func (d *Device) readControl(id ControlID, pc platformControl) (com.PropertyRange, int32, int32, error) {
	var (
		pr           com.PropertyRange
		value, flags int32
		err          error
	)
	switch pc.kind {
	case procAmpBoolean, procAmpRange:
		amp, aerr := d.procAmp()
		if aerr != nil {
			return pr, 0, 0, aerr
		}
		defer amp.Release()
		pr, err = amp.GetRange(pc.property)
		if err != nil {
			return pr, 0, 0, &GetPropertyError{Property: fmt.Sprintf("%s - Range", id), Err: err}
		}
		value, flags, err = amp.Get(pc.property)
	default:
		ctrl, cerr := d.cameraControl()
		if cerr != nil {
			return pr, 0, 0, cerr
		}
		defer ctrl.Release()
		pr, err = ctrl.GetRange(pc.property)
		if err != nil {
			return pr, 0, 0, &GetPropertyError{Property: fmt.Sprintf("%s - Range", id), Err: err}
		}
		value, flags, err = ctrl.Get(pc.property)
	}
	if err != nil {
		return pr, 0, 0, &GetPropertyError{Property: fmt.Sprintf("%s - Value", id), Err: err}
	}
	return pr, value, flags, nil
}

// Control reads the full current state of one hardware control. The
// descriptor is built fresh from the device on every call.
func (d *Device) Control(id ControlID) (ControlDescriptor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ControlDescriptor{}, ErrDeviceClosed
	}
	pc, ok := resolveControl(id)
	if !ok {
		return ControlDescriptor{}, &GetPropertyError{
			Property: id.String(),
			Err:      errors.New("control does not exist"),
		}
	}

	pr, value, flags, err := d.readControl(id, pc)
	if err != nil {
		return ControlDescriptor{}, err
	}

	var description ControlDescription
	switch pc.kind {
	case procAmpBoolean:
		description = BooleanDescription{Value: value != 0, Default: pr.Default != 0}
	case cameraControlValue:
		description = IntegerDescription{
			Value:   int64(value),
			Default: int64(pr.Default),
			Step:    int64(pr.Step),
		}
	default:
		description = IntegerRangeDescription{
			Min:     int64(pr.Min),
			Max:     int64(pr.Max),
			Value:   int64(value),
			Step:    int64(pr.Step),
			Default: int64(pr.Default),
		}
	}

	flag := FlagAutomatic
	if flags == ctrlFlagManual {
		flag = FlagManual
	}
	return ControlDescriptor{
		ID:          id,
		Name:        id.String(),
		Description: description,
		Flag:        flag,
		Active:      true,
	}, nil
}

// Controls reads every control the backend knows about, skipping the ones
// this device does not implement.
func (d *Device) Controls() ([]ControlDescriptor, error) {
	known := []ControlID{
		ControlBrightness, ControlContrast, ControlHue, ControlSaturation,
		ControlSharpness, ControlGamma, ControlWhiteBalance,
		ControlBacklightComp, ControlGain, ControlPan, ControlTilt,
		ControlZoom, ControlExposure, ControlIris, ControlFocus,
	}
	controls := make([]ControlDescriptor, 0, len(known))
	for _, id := range known {
		desc, err := d.Control(id)
		if err != nil {
			// Devices routinely implement only a subset; a control the
			// hardware rejects is skipped, but a closed device is not.
			if errors.Is(err, ErrDeviceClosed) {
				return nil, err
			}
			continue
		}
		controls = append(controls, desc)
	}
	return controls, nil
}

// SetControl writes one hardware control. The control's current
// Manual/Automatic flag is read first and written back unchanged, so
// setting a value never silently flips the operating mode. The value is
// validated before any platform call is made.
func (d *Device) SetControl(id ControlID, value ControlValue) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDeviceClosed
	}
	pc, ok := resolveControl(id)
	if !ok {
		return &SetPropertyError{
			Property: id.String(),
			Value:    controlValueString(value),
			Err:      errors.New("control does not exist"),
		}
	}
	native, err := nativeControlValue(value)
	if err != nil {
		return err
	}

	switch pc.kind {
	case procAmpBoolean, procAmpRange:
		amp, err := d.procAmp()
		if err != nil {
			return err
		}
		defer amp.Release()
		_, flags, err := amp.Get(pc.property)
		if err != nil {
			return &GetPropertyError{Property: fmt.Sprintf("%s - Value", id), Err: err}
		}
		if err := amp.Set(pc.property, native, flags); err != nil {
			return &SetPropertyError{Property: id.String(), Value: controlValueString(value), Err: err}
		}
	default:
		ctrl, err := d.cameraControl()
		if err != nil {
			return err
		}
		defer ctrl.Release()
		_, flags, err := ctrl.Get(pc.property)
		if err != nil {
			return &GetPropertyError{Property: fmt.Sprintf("%s - Value", id), Err: err}
		}
		if err := ctrl.Set(pc.property, native, flags); err != nil {
			return &SetPropertyError{Property: id.String(), Value: controlValueString(value), Err: err}
		}
	}
	return nil
}

func controlValueString(v ControlValue) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
