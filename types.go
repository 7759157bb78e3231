package mfcam

import "fmt"

// Resolution is a frame size in pixels.
type Resolution struct {
	Width  uint32
	Height uint32
}

// String returns the resolution as "WxH".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// FrameFormat is the pixel encoding of a capture format.
type FrameFormat int

// Pixel encodings this package can surface. Native media types with any
// other encoding are skipped during format enumeration.
const (
	FormatUnknown FrameFormat = iota
	FormatMJPEG               // Motion-JPEG compressed frames
	FormatYUYV                // YUY2 packed 4:2:2
	FormatGray                // Y800 8-bit grayscale
)

// String returns the conventional name of the pixel encoding.
func (f FrameFormat) String() string {
	switch f {
	case FormatMJPEG:
		return "MJPEG"
	case FormatYUYV:
		return "YUYV"
	case FormatGray:
		return "GRAY"
	default:
		return "UNKNOWN"
	}
}

// CameraFormat describes one capture configuration: resolution, pixel
// encoding, and frame rate. Frame rates are whole frames per second; a
// native rate with a fractional denominator is reported as 0 (unknown).
// CameraFormat is a value type compared by field equality.
type CameraFormat struct {
	Resolution Resolution
	Format     FrameFormat
	FrameRate  uint32
}

// String returns the format as "WxH FORMAT@RATE".
func (c CameraFormat) String() string {
	return fmt.Sprintf("%s %s@%d", c.Resolution, c.Format, c.FrameRate)
}

// DeviceDescriptor identifies one enumerated capture device. Descriptors
// are regenerated on every enumeration; the only stable identity across
// enumerations is SymbolicLink equality.
type DeviceDescriptor struct {
	// Index is the ordinal position of the device in the enumeration
	// that produced this descriptor.
	Index int

	// HumanName is the device's friendly display name.
	HumanName string

	// SymbolicLink is the opaque platform locator used to re-open this
	// exact device.
	SymbolicLink string

	// Backend tags the platform subsystem the descriptor came from.
	Backend string
}

// String returns "name (index N)".
func (d DeviceDescriptor) String() string {
	return fmt.Sprintf("%s (index %d)", d.HumanName, d.Index)
}

// ControlFlag is the operating mode of a hardware control.
type ControlFlag int

const (
	// FlagManual means the value is held where the caller set it.
	FlagManual ControlFlag = iota
	// FlagAutomatic means the device adjusts the value on its own.
	FlagAutomatic
)

// String returns "Manual" or "Automatic".
func (f ControlFlag) String() string {
	if f == FlagManual {
		return "Manual"
	}
	return "Automatic"
}

// ControlValue is a value supplied to Device.SetControl. Only IntegerValue
// and BooleanValue are accepted by the hardware-control path; any other
// implementation is rejected with a StructureError before the device is
// touched.
type ControlValue interface {
	isControlValue()
	String() string
}

// IntegerValue sets an integer-valued control.
type IntegerValue int64

func (IntegerValue) isControlValue() {}

func (v IntegerValue) String() string { return fmt.Sprintf("Integer(%d)", int64(v)) }

// BooleanValue sets a boolean-valued control.
type BooleanValue bool

func (BooleanValue) isControlValue() {}

func (v BooleanValue) String() string { return fmt.Sprintf("Boolean(%t)", bool(v)) }

// EnumValue selects one option of an enumerated control. No Media
// Foundation control accepts it; it exists so callers sharing control
// plumbing across backends have a place to put option selections.
type EnumValue int64

func (EnumValue) isControlValue() {}

func (v EnumValue) String() string { return fmt.Sprintf("Enum(%d)", int64(v)) }

// ControlDescription is the classified value state of a control: exactly
// one of BooleanDescription, IntegerDescription, or
// IntegerRangeDescription.
type ControlDescription interface {
	isControlDescription()
	String() string
}

// BooleanDescription is an on/off control.
type BooleanDescription struct {
	Value   bool
	Default bool
}

func (BooleanDescription) isControlDescription() {}

func (d BooleanDescription) String() string {
	return fmt.Sprintf("Boolean{value: %t, default: %t}", d.Value, d.Default)
}

// IntegerDescription is a single integer value with a default and step.
type IntegerDescription struct {
	Value   int64
	Default int64
	Step    int64
}

func (IntegerDescription) isControlDescription() {}

func (d IntegerDescription) String() string {
	return fmt.Sprintf("Integer{value: %d, default: %d, step: %d}", d.Value, d.Default, d.Step)
}

// IntegerRangeDescription is an integer value constrained to [Min, Max]
// in increments of Step.
type IntegerRangeDescription struct {
	Min     int64
	Max     int64
	Value   int64
	Step    int64
	Default int64
}

func (IntegerRangeDescription) isControlDescription() {}

func (d IntegerRangeDescription) String() string {
	return fmt.Sprintf("IntegerRange{min: %d, max: %d, value: %d, step: %d, default: %d}",
		d.Min, d.Max, d.Value, d.Step, d.Default)
}

// ControlDescriptor is the full state of one hardware control as read from
// the device. Descriptors are produced fresh on every query and never
// cached.
type ControlDescriptor struct {
	ID          ControlID
	Name        string
	Description ControlDescription
	Flag        ControlFlag
	Active      bool
}

// String returns a readable one-line summary of the control state.
func (c ControlDescriptor) String() string {
	return fmt.Sprintf("%s: %s [%s]", c.Name, c.Description, c.Flag)
}
