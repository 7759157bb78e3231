//go:build windows

package com

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// IMFMediaSourceVtbl is the vtable of an activated capture device.
type IMFMediaSourceVtbl struct {
	QueryInterface               uintptr
	AddRef                       uintptr
	Release                      uintptr
	GetEvent                     uintptr
	BeginGetEvent                uintptr
	EndGetEvent                  uintptr
	QueueEvent                   uintptr
	GetCharacteristics           uintptr
	CreatePresentationDescriptor uintptr
	Start                        uintptr
	Stop                         uintptr
	Pause                        uintptr
	Shutdown                     uintptr
}

// IMFMediaSource is a live capture device.
type IMFMediaSource struct {
	vtbl *IMFMediaSourceVtbl
}

func (s *IMFMediaSource) Release() {
	if s != nil && s.vtbl != nil {
		syscall.SyscallN(s.vtbl.Release, uintptr(unsafe.Pointer(s)))
	}
}

// QueryInterface asks the source for another interface by IID and returns
// the raw pointer; the caller casts and owns the new reference.
func (s *IMFMediaSource) QueryInterface(iid *windows.GUID) (unsafe.Pointer, error) {
	var obj unsafe.Pointer
	r, _, _ := syscall.SyscallN(s.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&obj)))
	if err := check("IMFMediaSource::QueryInterface", r); err != nil {
		return nil, err
	}
	return obj, nil
}

// IMFSourceReaderVtbl is the vtable of a source reader.
type IMFSourceReaderVtbl struct {
	QueryInterface           uintptr
	AddRef                   uintptr
	Release                  uintptr
	GetStreamSelection       uintptr
	SetStreamSelection       uintptr
	GetNativeMediaType       uintptr
	GetCurrentMediaType      uintptr
	SetCurrentMediaType      uintptr
	SetCurrentPosition       uintptr
	ReadSample               uintptr
	Flush                    uintptr
	GetServiceForStream      uintptr
	GetPresentationAttribute uintptr
}

// IMFSourceReader pulls samples from a media source.
type IMFSourceReader struct {
	vtbl *IMFSourceReaderVtbl
}

func (r *IMFSourceReader) Release() {
	if r != nil && r.vtbl != nil {
		syscall.SyscallN(r.vtbl.Release, uintptr(unsafe.Pointer(r)))
	}
}

func (r *IMFSourceReader) SetStreamSelection(stream uint32, selected bool) error {
	var sel uintptr
	if selected {
		sel = 1
	}
	ret, _, _ := syscall.SyscallN(r.vtbl.SetStreamSelection,
		uintptr(unsafe.Pointer(r)),
		uintptr(stream),
		sel)
	return check("IMFSourceReader::SetStreamSelection", ret)
}

// GetNativeMediaType returns the device's native media type at the given
// index, or an error once the index runs past the capability list.
func (r *IMFSourceReader) GetNativeMediaType(stream, index uint32) (*IMFMediaType, error) {
	var mt *IMFMediaType
	ret, _, _ := syscall.SyscallN(r.vtbl.GetNativeMediaType,
		uintptr(unsafe.Pointer(r)),
		uintptr(stream),
		uintptr(index),
		uintptr(unsafe.Pointer(&mt)))
	if err := check("IMFSourceReader::GetNativeMediaType", ret); err != nil {
		return nil, err
	}
	return mt, nil
}

func (r *IMFSourceReader) GetCurrentMediaType(stream uint32) (*IMFMediaType, error) {
	var mt *IMFMediaType
	ret, _, _ := syscall.SyscallN(r.vtbl.GetCurrentMediaType,
		uintptr(unsafe.Pointer(r)),
		uintptr(stream),
		uintptr(unsafe.Pointer(&mt)))
	if err := check("IMFSourceReader::GetCurrentMediaType", ret); err != nil {
		return nil, err
	}
	return mt, nil
}

func (r *IMFSourceReader) SetCurrentMediaType(stream uint32, mt *IMFMediaType) error {
	ret, _, _ := syscall.SyscallN(r.vtbl.SetCurrentMediaType,
		uintptr(unsafe.Pointer(r)),
		uintptr(stream),
		0, // reserved
		uintptr(unsafe.Pointer(mt)))
	return check("IMFSourceReader::SetCurrentMediaType", ret)
}

// ReadSample performs one synchronous read attempt. A nil sample with a
// nil error means the device produced nothing yet; callers poll again.
func (r *IMFSourceReader) ReadSample(stream uint32) (*IMFSample, uint32, error) {
	var flags uint32
	var sample *IMFSample
	ret, _, _ := syscall.SyscallN(r.vtbl.ReadSample,
		uintptr(unsafe.Pointer(r)),
		uintptr(stream),
		0, // control flags
		0, // actual stream index (unused)
		uintptr(unsafe.Pointer(&flags)),
		0, // timestamp (unused)
		uintptr(unsafe.Pointer(&sample)))
	if err := check("IMFSourceReader::ReadSample", ret); err != nil {
		return nil, flags, err
	}
	return sample, flags, nil
}

func (r *IMFSourceReader) Flush(stream uint32) error {
	ret, _, _ := syscall.SyscallN(r.vtbl.Flush,
		uintptr(unsafe.Pointer(r)),
		uintptr(stream))
	return check("IMFSourceReader::Flush", ret)
}

// GetServiceForStream retrieves a service interface for a stream; used to
// get the underlying media source back from the reader for control calls.
func (r *IMFSourceReader) GetServiceForStream(stream uint32, service, iid *windows.GUID) (unsafe.Pointer, error) {
	var obj unsafe.Pointer
	ret, _, _ := syscall.SyscallN(r.vtbl.GetServiceForStream,
		uintptr(unsafe.Pointer(r)),
		uintptr(stream),
		uintptr(unsafe.Pointer(service)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&obj)))
	if err := check("IMFSourceReader::GetServiceForStream", ret); err != nil {
		return nil, err
	}
	return obj, nil
}

// IMFSampleVtbl is the vtable of a media sample. IMFSample extends
// IMFAttributes, so the attribute entries come first.
type IMFSampleVtbl struct {
	IMFAttributesVtbl
	GetSampleFlags            uintptr
	SetSampleFlags            uintptr
	GetSampleTime             uintptr
	SetSampleTime             uintptr
	GetSampleDuration         uintptr
	SetSampleDuration         uintptr
	GetBufferCount            uintptr
	GetBufferByIndex          uintptr
	ConvertToContiguousBuffer uintptr
	AddBuffer                 uintptr
	RemoveBufferByIndex       uintptr
	RemoveAllBuffers          uintptr
	GetTotalLength            uintptr
	CopyToBuffer              uintptr
}

// IMFSample is one captured sample, possibly spread over several buffers.
type IMFSample struct {
	vtbl *IMFSampleVtbl
}

func (s *IMFSample) Release() {
	if s != nil && s.vtbl != nil {
		syscall.SyscallN(s.vtbl.Release, uintptr(unsafe.Pointer(s)))
	}
}

// ConvertToContiguousBuffer coalesces the sample into a single buffer.
func (s *IMFSample) ConvertToContiguousBuffer() (*IMFMediaBuffer, error) {
	var buf *IMFMediaBuffer
	r, _, _ := syscall.SyscallN(s.vtbl.ConvertToContiguousBuffer,
		uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(&buf)))
	if err := check("IMFSample::ConvertToContiguousBuffer", r); err != nil {
		return nil, err
	}
	return buf, nil
}

// IMFMediaBufferVtbl is the vtable of a media buffer.
type IMFMediaBufferVtbl struct {
	QueryInterface   uintptr
	AddRef           uintptr
	Release          uintptr
	Lock             uintptr
	Unlock           uintptr
	GetCurrentLength uintptr
	SetCurrentLength uintptr
	GetMaxLength     uintptr
}

// IMFMediaBuffer is a lockable byte buffer owned by the platform.
type IMFMediaBuffer struct {
	vtbl *IMFMediaBufferVtbl
}

func (b *IMFMediaBuffer) Release() {
	if b != nil && b.vtbl != nil {
		syscall.SyscallN(b.vtbl.Release, uintptr(unsafe.Pointer(b)))
	}
}

// Lock pins the buffer and returns its start address and valid length.
// The pointer is only usable until Unlock; callers copy the bytes out
// before releasing the lock.
func (b *IMFMediaBuffer) Lock() (*byte, uint32, error) {
	var ptr *byte
	var current uint32
	r, _, _ := syscall.SyscallN(b.vtbl.Lock,
		uintptr(unsafe.Pointer(b)),
		uintptr(unsafe.Pointer(&ptr)),
		0, // max length (unused)
		uintptr(unsafe.Pointer(&current)))
	if err := check("IMFMediaBuffer::Lock", r); err != nil {
		return nil, 0, err
	}
	return ptr, current, nil
}

// Unlock releases a previous Lock. Errors are ignored; Unlock runs on
// teardown paths where failure must not block release.
func (b *IMFMediaBuffer) Unlock() {
	syscall.SyscallN(b.vtbl.Unlock, uintptr(unsafe.Pointer(b)))
}
