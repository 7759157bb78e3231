package mfcam

import "testing"

func TestStringRenderings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"resolution", Resolution{Width: 1280, Height: 720}.String(), "1280x720"},
		{"format mjpeg", FormatMJPEG.String(), "MJPEG"},
		{"format yuyv", FormatYUYV.String(), "YUYV"},
		{"format gray", FormatGray.String(), "GRAY"},
		{"format unknown", FormatUnknown.String(), "UNKNOWN"},
		{
			"camera format",
			CameraFormat{Resolution: Resolution{Width: 640, Height: 480}, Format: FormatYUYV, FrameRate: 30}.String(),
			"640x480 YUYV@30",
		},
		{
			"descriptor",
			DeviceDescriptor{Index: 2, HumanName: "Integrated Camera"}.String(),
			"Integrated Camera (index 2)",
		},
		{"flag manual", FlagManual.String(), "Manual"},
		{"flag automatic", FlagAutomatic.String(), "Automatic"},
		{"integer value", IntegerValue(-7).String(), "Integer(-7)"},
		{"boolean value", BooleanValue(true).String(), "Boolean(true)"},
		{"enum value", EnumValue(3).String(), "Enum(3)"},
		{
			"boolean description",
			BooleanDescription{Value: true, Default: false}.String(),
			"Boolean{value: true, default: false}",
		},
		{
			"integer description",
			IntegerDescription{Value: 10, Default: 0, Step: 1}.String(),
			"Integer{value: 10, default: 0, step: 1}",
		},
		{
			"range description",
			IntegerRangeDescription{Min: -64, Max: 64, Value: 0, Step: 1, Default: 0}.String(),
			"IntegerRange{min: -64, max: 64, value: 0, step: 1, default: 0}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestCameraFormatEquality(t *testing.T) {
	a := CameraFormat{Resolution: Resolution{Width: 640, Height: 480}, Format: FormatMJPEG, FrameRate: 30}
	b := CameraFormat{Resolution: Resolution{Width: 640, Height: 480}, Format: FormatMJPEG, FrameRate: 30}
	if a != b {
		t.Fatal("identical formats should compare equal")
	}
	b.FrameRate = 29
	if a == b {
		t.Fatal("formats differing in rate should not compare equal")
	}
}

func TestControlDescriptorString(t *testing.T) {
	d := ControlDescriptor{
		ID:          ControlBrightness,
		Name:        "Brightness",
		Description: IntegerRangeDescription{Min: 0, Max: 255, Value: 128, Step: 1, Default: 128},
		Flag:        FlagManual,
		Active:      true,
	}
	want := "Brightness: IntegerRange{min: 0, max: 255, value: 128, step: 1, default: 128} [Manual]"
	if got := d.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
