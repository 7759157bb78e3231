//go:build windows

package com

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// IMFAttributesVtbl is the vtable shared by every attribute-store
// interface (IMFAttributes, IMFActivate, IMFMediaType).
type IMFAttributesVtbl struct {
	QueryInterface     uintptr
	AddRef             uintptr
	Release            uintptr
	GetItem            uintptr
	GetItemType        uintptr
	CompareItem        uintptr
	Compare            uintptr
	GetUINT32          uintptr
	GetUINT64          uintptr
	GetDouble          uintptr
	GetGUID            uintptr
	GetStringLength    uintptr
	GetString          uintptr
	GetAllocatedString uintptr
	GetBlobSize        uintptr
	GetBlob            uintptr
	GetAllocatedBlob   uintptr
	GetUnknown         uintptr
	SetItem            uintptr
	DeleteItem         uintptr
	DeleteAllItems     uintptr
	SetUINT32          uintptr
	SetUINT64          uintptr
	SetDouble          uintptr
	SetGUID            uintptr
	SetString          uintptr
	SetBlob            uintptr
	SetUnknown         uintptr
	LockStore          uintptr
	UnlockStore        uintptr
	GetCount           uintptr
	GetItemByIndex     uintptr
	CopyAllItems       uintptr
}

// IMFAttributes is an opaque attribute dictionary keyed by GUID.
type IMFAttributes struct {
	vtbl *IMFAttributesVtbl
}

func (a *IMFAttributes) Release() {
	if a != nil && a.vtbl != nil {
		syscall.SyscallN(a.vtbl.Release, uintptr(unsafe.Pointer(a)))
	}
}

func (a *IMFAttributes) SetGUID(key, value *windows.GUID) error {
	r, _, _ := syscall.SyscallN(a.vtbl.SetGUID,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(value)))
	return check("IMFAttributes::SetGUID", r)
}

func (a *IMFAttributes) GetGUID(key *windows.GUID) (windows.GUID, error) {
	var guid windows.GUID
	r, _, _ := syscall.SyscallN(a.vtbl.GetGUID,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(&guid)))
	return guid, check("IMFAttributes::GetGUID", r)
}

func (a *IMFAttributes) SetUINT32(key *windows.GUID, value uint32) error {
	r, _, _ := syscall.SyscallN(a.vtbl.SetUINT32,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(value))
	return check("IMFAttributes::SetUINT32", r)
}

func (a *IMFAttributes) GetUINT32(key *windows.GUID) (uint32, error) {
	var value uint32
	r, _, _ := syscall.SyscallN(a.vtbl.GetUINT32,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(&value)))
	return value, check("IMFAttributes::GetUINT32", r)
}

func (a *IMFAttributes) SetUINT64(key *windows.GUID, value uint64) error {
	r, _, _ := syscall.SyscallN(a.vtbl.SetUINT64,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(value))
	return check("IMFAttributes::SetUINT64", r)
}

func (a *IMFAttributes) GetUINT64(key *windows.GUID) (uint64, error) {
	var value uint64
	r, _, _ := syscall.SyscallN(a.vtbl.GetUINT64,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(&value)))
	return value, check("IMFAttributes::GetUINT64", r)
}

// GetAllocatedString reads a string attribute into memory the platform
// allocates. The caller owns the returned pointer and must free it with
// CoTaskMemFree. A nil pointer with a nil error is possible and
// is the caller's edge case to handle.
func (a *IMFAttributes) GetAllocatedString(key *windows.GUID) (*uint16, uint32, error) {
	var pwstr *uint16
	var length uint32
	r, _, _ := syscall.SyscallN(a.vtbl.GetAllocatedString,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(&pwstr)),
		uintptr(unsafe.Pointer(&length)))
	if err := check("IMFAttributes::GetAllocatedString", r); err != nil {
		return nil, 0, err
	}
	return pwstr, length, nil
}

// IMFActivateVtbl extends the attribute vtable with activation entries.
type IMFActivateVtbl struct {
	IMFAttributesVtbl
	ActivateObject uintptr
	ShutdownObject uintptr
	DetachObject   uintptr
}

// IMFActivate is a deferred device-activation handle produced by
// enumeration.
type IMFActivate struct {
	vtbl *IMFActivateVtbl
}

// AsAttributes reinterprets the activation handle as its attribute store.
func (a *IMFActivate) AsAttributes() *IMFAttributes {
	return (*IMFAttributes)(unsafe.Pointer(a))
}

func (a *IMFActivate) Release() {
	if a != nil && a.vtbl != nil {
		syscall.SyscallN(a.vtbl.Release, uintptr(unsafe.Pointer(a)))
	}
}

// ActivateMediaSource activates the device into a live IMFMediaSource.
func (a *IMFActivate) ActivateMediaSource() (*IMFMediaSource, error) {
	var src *IMFMediaSource
	r, _, _ := syscall.SyscallN(a.vtbl.ActivateObject,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(&IID_IMFMediaSource)),
		uintptr(unsafe.Pointer(&src)))
	if err := check("IMFActivate::ActivateObject", r); err != nil {
		return nil, err
	}
	return src, nil
}

// IMFMediaTypeVtbl extends the attribute vtable with media-type entries.
type IMFMediaTypeVtbl struct {
	IMFAttributesVtbl
	GetMajorType       uintptr
	IsCompressedFormat uintptr
	IsEqual            uintptr
	GetRepresentation  uintptr
	FreeRepresentation uintptr
}

// IMFMediaType is one native capture-format descriptor.
type IMFMediaType struct {
	vtbl *IMFMediaTypeVtbl
}

// AsAttributes reinterprets the media type as its attribute store, which
// is where the format fields (subtype, frame size, frame rate) live.
func (t *IMFMediaType) AsAttributes() *IMFAttributes {
	return (*IMFAttributes)(unsafe.Pointer(t))
}

func (t *IMFMediaType) Release() {
	if t != nil && t.vtbl != nil {
		syscall.SyscallN(t.vtbl.Release, uintptr(unsafe.Pointer(t)))
	}
}
