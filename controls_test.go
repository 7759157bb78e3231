package mfcam

import (
	"errors"
	"testing"
)

func TestResolveControl(t *testing.T) {
	tests := []struct {
		id       ControlID
		kind     controlKind
		property int32
	}{
		{ControlBrightness, procAmpRange, procAmpBrightness},
		{ControlContrast, procAmpRange, procAmpContrast},
		{ControlHue, procAmpRange, procAmpHue},
		{ControlSaturation, procAmpRange, procAmpSaturation},
		{ControlSharpness, procAmpRange, procAmpSharpness},
		{ControlGamma, procAmpRange, procAmpGamma},
		{ControlWhiteBalance, procAmpRange, procAmpWhiteBalance},
		{ControlBacklightComp, procAmpBoolean, procAmpBacklightComp},
		{ControlGain, procAmpRange, procAmpGain},
		{ControlPan, cameraControlRange, camCtrlPan},
		{ControlTilt, cameraControlRange, camCtrlTilt},
		{ControlZoom, cameraControlRange, camCtrlZoom},
		{ControlExposure, cameraControlValue, camCtrlExposure},
		{ControlIris, cameraControlValue, camCtrlIris},
		{ControlFocus, cameraControlValue, camCtrlFocus},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			pc, ok := resolveControl(tt.id)
			if !ok {
				t.Fatalf("resolveControl(%s) not resolved", tt.id)
			}
			if pc.kind != tt.kind || pc.property != tt.property {
				t.Fatalf("resolveControl(%s) = {%s, %d}, want {%s, %d}",
					tt.id, pc.kind, pc.property, tt.kind, tt.property)
			}
		})
	}
}

func TestResolveControlVendor(t *testing.T) {
	// The only vendor escape recognized is the ColorEnable proc-amp
	// property.
	pc, ok := resolveControl(VendorControl(6))
	if !ok {
		t.Fatal("VendorControl(6) should resolve")
	}
	if pc.kind != procAmpRange || pc.property != 6 {
		t.Fatalf("VendorControl(6) = {%s, %d}, want {ProcAmpRange, 6}", pc.kind, pc.property)
	}

	for _, raw := range []int64{0, 2, 7, 13, 100} {
		if _, ok := resolveControl(VendorControl(raw)); ok {
			t.Errorf("VendorControl(%d) should not resolve", raw)
		}
	}
}

func TestResolveControlUnknown(t *testing.T) {
	if _, ok := resolveControl(ControlID(999)); ok {
		t.Fatal("ControlID(999) should not resolve")
	}
}

func TestVendorControlDoesNotCollide(t *testing.T) {
	// A vendor control with a small raw number must never alias one of
	// the named controls.
	if VendorControl(0) == ControlBrightness {
		t.Fatal("VendorControl(0) collides with ControlBrightness")
	}
	if _, ok := VendorControl(3).vendorRaw(); !ok {
		t.Fatal("VendorControl(3) lost its vendor marker")
	}
	if _, ok := ControlZoom.vendorRaw(); ok {
		t.Fatal("ControlZoom should not read as a vendor control")
	}
}

func TestNativeControlValue(t *testing.T) {
	tests := []struct {
		name  string
		value ControlValue
		want  int32
	}{
		{"positive integer", IntegerValue(128), 128},
		{"negative integer", IntegerValue(-5), -5},
		{"boolean true", BooleanValue(true), 1},
		{"boolean false", BooleanValue(false), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nativeControlValue(tt.value)
			if err != nil {
				t.Fatalf("nativeControlValue(%s): %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("nativeControlValue(%s) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestNativeControlValueRejectsInvalid(t *testing.T) {
	for _, value := range []ControlValue{EnumValue(1), nil} {
		_, err := nativeControlValue(value)
		if err == nil {
			t.Fatalf("nativeControlValue(%v) should fail", value)
		}
		var se *StructureError
		if !errors.As(err, &se) {
			t.Fatalf("nativeControlValue(%v) error = %T, want *StructureError", value, err)
		}
	}
}

func TestControlIDString(t *testing.T) {
	tests := []struct {
		id   ControlID
		want string
	}{
		{ControlBrightness, "Brightness"},
		{ControlWhiteBalance, "WhiteBalance"},
		{ControlFocus, "Focus"},
		{VendorControl(6), "Vendor(6)"},
		{ControlID(999), "ControlID(999)"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("ControlID.String() = %q, want %q", got, tt.want)
		}
	}
}
