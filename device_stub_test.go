//go:build !windows

package mfcam

import (
	"errors"
	"testing"
)

func TestStubOperationsReturnNotImplemented(t *testing.T) {
	var nie *NotImplementedError

	if _, err := ListDevices(); !errors.As(err, &nie) {
		t.Fatalf("ListDevices error = %v, want NotImplementedError", err)
	}
	if _, err := OpenDevice(0); !errors.As(err, &nie) {
		t.Fatalf("OpenDevice error = %v, want NotImplementedError", err)
	}
	if _, err := OpenDeviceBySymbolicLink("x"); !errors.As(err, &nie) {
		t.Fatalf("OpenDeviceBySymbolicLink error = %v, want NotImplementedError", err)
	}
}

func TestStubDeviceMethods(t *testing.T) {
	var nie *NotImplementedError
	d := &Device{}

	if err := d.StartStream(); !errors.As(err, &nie) {
		t.Fatalf("StartStream error = %v, want NotImplementedError", err)
	}
	if _, err := d.ReadFrame(); !errors.As(err, &nie) {
		t.Fatalf("ReadFrame error = %v, want NotImplementedError", err)
	}
	if _, err := d.CompatibleFormats(); !errors.As(err, &nie) {
		t.Fatalf("CompatibleFormats error = %v, want NotImplementedError", err)
	}
	if err := d.SetFormat(CameraFormat{}); !errors.As(err, &nie) {
		t.Fatalf("SetFormat error = %v, want NotImplementedError", err)
	}
	if _, err := d.Control(ControlBrightness); !errors.As(err, &nie) {
		t.Fatalf("Control error = %v, want NotImplementedError", err)
	}
	if err := d.SetControl(ControlBrightness, IntegerValue(1)); !errors.As(err, &nie) {
		t.Fatalf("SetControl error = %v, want NotImplementedError", err)
	}

	if d.IsStreaming() {
		t.Fatal("stub device should never report streaming")
	}
	d.StopStream()
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := d.Format(); got != (CameraFormat{}) {
		t.Fatalf("Format() = %v, want zero value", got)
	}
}

func TestStubStartup(t *testing.T) {
	var nie *NotImplementedError
	if err := Startup(); !errors.As(err, &nie) {
		t.Fatalf("Startup error = %v, want NotImplementedError", err)
	}
	if IsInitialized() {
		t.Fatal("subsystem must not report initialized after failed startup")
	}
	if err := Shutdown(); err != nil {
		t.Fatalf("Shutdown on never-started subsystem: %v", err)
	}
}
