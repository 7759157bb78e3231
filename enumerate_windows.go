//go:build windows

package mfcam

import (
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/openmediakit/mfcam/internal/bindings"
	"github.com/openmediakit/mfcam/internal/com"
)

// queryActivates enumerates the video capture devices currently attached
// and returns their activation handles in platform order. The returned
// release function releases every handle and frees the platform-owned
// array; callers must invoke it exactly once.
//
// The subsystem is brought up lazily here, so plain enumeration works
// without an explicit Startup call.
func queryActivates() ([]*com.IMFActivate, func(), error) {
	if err := subsystem.initialize(); err != nil {
		return nil, nil, err
	}

	filter, err := bindings.MFCreateAttributes(1)
	if err != nil {
		return nil, nil, &StructureError{Structure: "IMFAttributes", Err: err}
	}
	defer filter.Release()

	if err := filter.SetGUID(&com.MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE, &com.MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP_GUID); err != nil {
		return nil, nil, &SetPropertyError{
			Property: "MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE",
			Value:    "MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP_GUID",
			Err:      err,
		}
	}

	array, count, err := bindings.MFEnumDeviceSources(filter)
	if err != nil {
		return nil, nil, &StructureError{Structure: "MFEnumDeviceSources", Err: err}
	}

	activates := make([]*com.IMFActivate, 0, count)
	if count > 0 {
		activates = append(activates, unsafe.Slice(array, count)...)
	}
	release := func() {
		for _, a := range activates {
			a.Release()
		}
		bindings.CoTaskMemFree(unsafe.Pointer(array))
	}
	return activates, release, nil
}

// readStringAttribute reads one string attribute and copies it into Go
// memory. A null pointer from the platform is surfaced as ErrNullString;
// it is distinct from an empty string.
func readStringAttribute(attrs *com.IMFAttributes, name string, key *windows.GUID) (string, error) {
	pwstr, _, err := attrs.GetAllocatedString(key)
	if err != nil {
		return "", &GetPropertyError{Property: name, Err: err}
	}
	if pwstr == nil {
		return "", &GetPropertyError{Property: name, Err: ErrNullString}
	}
	s := windows.UTF16PtrToString(pwstr)
	bindings.CoTaskMemFree(unsafe.Pointer(pwstr))
	return s, nil
}

// activateToDescriptor reads the identifying attributes of one activation
// handle.
func activateToDescriptor(index int, a *com.IMFActivate) (DeviceDescriptor, error) {
	attrs := a.AsAttributes()

	name, err := readStringAttribute(attrs, "MF_DEVSOURCE_ATTRIBUTE_FRIENDLY_NAME", &com.MF_DEVSOURCE_ATTRIBUTE_FRIENDLY_NAME)
	if err != nil {
		return DeviceDescriptor{}, err
	}
	link, err := readStringAttribute(attrs, "MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP_SYMBOLIC_LINK", &com.MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP_SYMBOLIC_LINK)
	if err != nil {
		return DeviceDescriptor{}, err
	}

	return DeviceDescriptor{
		Index:        index,
		HumanName:    name,
		SymbolicLink: link,
		Backend:      Backend,
	}, nil
}

// ListDevices enumerates the attached video capture devices. Enumeration
// is all or nothing: if any device's attributes cannot be read, the whole
// call fails. Indexes are ordinals within this enumeration and shift when
// devices come and go; SymbolicLink is the stable identity.
func ListDevices() ([]DeviceDescriptor, error) {
	activates, release, err := queryActivates()
	if err != nil {
		return nil, err
	}
	defer release()

	devices := make([]DeviceDescriptor, 0, len(activates))
	for i, a := range activates {
		desc, err := activateToDescriptor(i, a)
		if err != nil {
			return nil, err
		}
		devices = append(devices, desc)
	}
	logger().Debug("enumerated capture devices", zap.Int("count", len(devices)))
	return devices, nil
}
