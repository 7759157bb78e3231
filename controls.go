package mfcam

import (
	"errors"
	"fmt"
)

// ControlID names an abstract hardware control.
type ControlID int64

// The known control set. Proc-amp controls adjust the video processing
// amplifier; camera controls drive mechanics and optics.
const (
	ControlBrightness ControlID = iota
	ControlContrast
	ControlHue
	ControlSaturation
	ControlSharpness
	ControlGamma
	ControlWhiteBalance
	ControlBacklightComp
	ControlGain
	ControlPan
	ControlTilt
	ControlZoom
	ControlExposure
	ControlIris
	ControlFocus
)

// vendorControlBase offsets vendor-specific control ids above the known
// set so the two ranges cannot collide.
const vendorControlBase ControlID = 1 << 32

// VendorControl builds a ControlID carrying a raw platform property
// number. Vendor controls resolve only if the backend recognizes the
// number; everything else is treated as unsupported.
func VendorControl(raw int64) ControlID {
	return vendorControlBase + ControlID(raw)
}

// vendorRaw returns the raw property number of a vendor control.
func (c ControlID) vendorRaw() (int64, bool) {
	if c < vendorControlBase {
		return 0, false
	}
	return int64(c - vendorControlBase), true
}

// String returns the control's conventional name.
func (c ControlID) String() string {
	if raw, ok := c.vendorRaw(); ok {
		return fmt.Sprintf("Vendor(%d)", raw)
	}
	switch c {
	case ControlBrightness:
		return "Brightness"
	case ControlContrast:
		return "Contrast"
	case ControlHue:
		return "Hue"
	case ControlSaturation:
		return "Saturation"
	case ControlSharpness:
		return "Sharpness"
	case ControlGamma:
		return "Gamma"
	case ControlWhiteBalance:
		return "WhiteBalance"
	case ControlBacklightComp:
		return "BacklightComp"
	case ControlGain:
		return "Gain"
	case ControlPan:
		return "Pan"
	case ControlTilt:
		return "Tilt"
	case ControlZoom:
		return "Zoom"
	case ControlExposure:
		return "Exposure"
	case ControlIris:
		return "Iris"
	case ControlFocus:
		return "Focus"
	default:
		return fmt.Sprintf("ControlID(%d)", int64(c))
	}
}

// VideoProcAmp property numbers, from strmif.h.
const (
	procAmpBrightness         int32 = 0
	procAmpContrast           int32 = 1
	procAmpHue                int32 = 2
	procAmpSaturation         int32 = 3
	procAmpSharpness          int32 = 4
	procAmpGamma              int32 = 5
	procAmpColorEnable        int32 = 6
	procAmpWhiteBalance       int32 = 7
	procAmpBacklightComp      int32 = 8
	procAmpGain               int32 = 9
	procAmpDigitalMultiplier  int32 = 10
	procAmpDigitalMultLimit   int32 = 11
	procAmpWhiteBalanceComp   int32 = 12
	procAmpPowerLineFrequency int32 = 13
)

// CameraControl property numbers, from strmif.h.
const (
	camCtrlPan      int32 = 0
	camCtrlTilt     int32 = 1
	camCtrlRoll     int32 = 2
	camCtrlZoom     int32 = 3
	camCtrlExposure int32 = 4
	camCtrlIris     int32 = 5
	camCtrlFocus    int32 = 6
)

// Control operating-mode flags shared by IAMVideoProcAmp and
// IAMCameraControl.
const (
	ctrlFlagAuto   int32 = 0x0001
	ctrlFlagManual int32 = 0x0002
)

// controlKind selects which platform interface and which get/set shape a
// control uses. The set is fixed and exhaustive.
type controlKind int

const (
	procAmpBoolean controlKind = iota
	procAmpRange
	cameraControlValue
	cameraControlRange
)

func (k controlKind) String() string {
	switch k {
	case procAmpBoolean:
		return "ProcAmpBoolean"
	case procAmpRange:
		return "ProcAmpRange"
	case cameraControlValue:
		return "CameraControlValue"
	default:
		return "CameraControlRange"
	}
}

// platformControl pairs a control category with the platform property
// number it addresses.
type platformControl struct {
	kind     controlKind
	property int32
}

// resolveControl maps an abstract control to its platform category and
// property number. It is a static, side-effect-free lookup; an unresolved
// control means "unsupported on this backend", not an error. Vendor
// controls resolve only for the ColorEnable proc-amp property.
func resolveControl(id ControlID) (platformControl, bool) {
	if raw, ok := id.vendorRaw(); ok {
		if raw == int64(procAmpColorEnable) {
			return platformControl{procAmpRange, int32(raw)}, true
		}
		return platformControl{}, false
	}

	switch id {
	case ControlBrightness:
		return platformControl{procAmpRange, procAmpBrightness}, true
	case ControlContrast:
		return platformControl{procAmpRange, procAmpContrast}, true
	case ControlHue:
		return platformControl{procAmpRange, procAmpHue}, true
	case ControlSaturation:
		return platformControl{procAmpRange, procAmpSaturation}, true
	case ControlSharpness:
		return platformControl{procAmpRange, procAmpSharpness}, true
	case ControlGamma:
		return platformControl{procAmpRange, procAmpGamma}, true
	case ControlWhiteBalance:
		return platformControl{procAmpRange, procAmpWhiteBalance}, true
	case ControlBacklightComp:
		return platformControl{procAmpBoolean, procAmpBacklightComp}, true
	case ControlGain:
		return platformControl{procAmpRange, procAmpGain}, true
	case ControlPan:
		return platformControl{cameraControlRange, camCtrlPan}, true
	case ControlTilt:
		return platformControl{cameraControlRange, camCtrlTilt}, true
	case ControlZoom:
		return platformControl{cameraControlRange, camCtrlZoom}, true
	case ControlExposure:
		return platformControl{cameraControlValue, camCtrlExposure}, true
	case ControlIris:
		return platformControl{cameraControlValue, camCtrlIris}, true
	case ControlFocus:
		return platformControl{cameraControlValue, camCtrlFocus}, true
	default:
		return platformControl{}, false
	}
}

// nativeControlValue coerces a ControlValue into the int32 the platform
// setters take. Only IntegerValue and BooleanValue are valid; anything
// else is a StructureError and must never reach a native call.
func nativeControlValue(v ControlValue) (int32, error) {
	switch v := v.(type) {
	case IntegerValue:
		return int32(v), nil
	case BooleanValue:
		if v {
			return 1, nil
		}
		return 0, nil
	case nil:
		return 0, &StructureError{
			Structure: "ControlValue <nil>",
			Err:       errors.New("invalid value type"),
		}
	default:
		return 0, &StructureError{
			Structure: fmt.Sprintf("ControlValue %s", v),
			Err:       errors.New("invalid value type"),
		}
	}
}
