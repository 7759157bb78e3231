//go:build windows

package com

import (
	"syscall"
	"unsafe"
)

// propertyVtbl is the shared vtable shape of IAMVideoProcAmp and
// IAMCameraControl: both expose GetRange, Set, and Get in that order.
type propertyVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	GetRange       uintptr
	Set            uintptr
	Get            uintptr
}

// PropertyRange is the result of a GetRange call on either control
// interface.
type PropertyRange struct {
	Min     int32
	Max     int32
	Step    int32
	Default int32
	Flags   int32
}

// IAMVideoProcAmp adjusts video-processing-amplifier properties
// (brightness, contrast, gain, ...).
type IAMVideoProcAmp struct {
	vtbl *propertyVtbl
}

func (v *IAMVideoProcAmp) Release() {
	if v != nil && v.vtbl != nil {
		syscall.SyscallN(v.vtbl.Release, uintptr(unsafe.Pointer(v)))
	}
}

func (v *IAMVideoProcAmp) GetRange(property int32) (PropertyRange, error) {
	return propertyGetRange("IAMVideoProcAmp::GetRange", v.vtbl, unsafe.Pointer(v), property)
}

func (v *IAMVideoProcAmp) Get(property int32) (value, flags int32, err error) {
	return propertyGet("IAMVideoProcAmp::Get", v.vtbl, unsafe.Pointer(v), property)
}

func (v *IAMVideoProcAmp) Set(property, value, flags int32) error {
	return propertySet("IAMVideoProcAmp::Set", v.vtbl, unsafe.Pointer(v), property, value, flags)
}

// IAMCameraControl drives mechanical and optical properties (pan, tilt,
// zoom, exposure, focus, iris).
type IAMCameraControl struct {
	vtbl *propertyVtbl
}

func (c *IAMCameraControl) Release() {
	if c != nil && c.vtbl != nil {
		syscall.SyscallN(c.vtbl.Release, uintptr(unsafe.Pointer(c)))
	}
}

func (c *IAMCameraControl) GetRange(property int32) (PropertyRange, error) {
	return propertyGetRange("IAMCameraControl::GetRange", c.vtbl, unsafe.Pointer(c), property)
}

func (c *IAMCameraControl) Get(property int32) (value, flags int32, err error) {
	return propertyGet("IAMCameraControl::Get", c.vtbl, unsafe.Pointer(c), property)
}

func (c *IAMCameraControl) Set(property, value, flags int32) error {
	return propertySet("IAMCameraControl::Set", c.vtbl, unsafe.Pointer(c), property, value, flags)
}

func propertyGetRange(op string, vtbl *propertyVtbl, self unsafe.Pointer, property int32) (PropertyRange, error) {
	var pr PropertyRange
	r, _, _ := syscall.SyscallN(vtbl.GetRange,
		uintptr(self),
		uintptr(property),
		uintptr(unsafe.Pointer(&pr.Min)),
		uintptr(unsafe.Pointer(&pr.Max)),
		uintptr(unsafe.Pointer(&pr.Step)),
		uintptr(unsafe.Pointer(&pr.Default)),
		uintptr(unsafe.Pointer(&pr.Flags)))
	return pr, check(op, r)
}

func propertyGet(op string, vtbl *propertyVtbl, self unsafe.Pointer, property int32) (value, flags int32, err error) {
	r, _, _ := syscall.SyscallN(vtbl.Get,
		uintptr(self),
		uintptr(property),
		uintptr(unsafe.Pointer(&value)),
		uintptr(unsafe.Pointer(&flags)))
	return value, flags, check(op, r)
}

func propertySet(op string, vtbl *propertyVtbl, self unsafe.Pointer, property, value, flags int32) error {
	r, _, _ := syscall.SyscallN(vtbl.Set,
		uintptr(self),
		uintptr(property),
		uintptr(value),
		uintptr(flags))
	return check(op, r)
}
