//go:build windows

// Package bindings handles loading the Media Foundation system libraries
// and registering function bindings using purego.
package bindings

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"

	"github.com/openmediakit/mfcam/internal/com"
)

// ErrNotLoaded is returned when Media Foundation functions are called
// before Load().
var ErrNotLoaded = errors.New("mfcam: Media Foundation libraries not loaded; call mfcam.Startup() first")

// Library handles
var (
	libMFPlat      *windows.LazyDLL
	libMF          *windows.LazyDLL
	libMFReadWrite *windows.LazyDLL
	libOle32       *windows.LazyDLL

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Flat API bindings
var (
	mfStartup                           func(version uint32, flags uint32) uint32
	mfShutdown                          func() uint32
	mfCreateAttributes                  func(attributes **com.IMFAttributes, initialSize uint32) uint32
	mfCreateMediaType                   func(mediaType **com.IMFMediaType) uint32
	mfEnumDeviceSources                 func(attributes *com.IMFAttributes, sources ***com.IMFActivate, count *uint32) uint32
	mfCreateSourceReaderFromMediaSource func(source *com.IMFMediaSource, attributes *com.IMFAttributes, reader **com.IMFSourceReader) uint32
	coInitializeEx                      func(reserved uintptr, coInit uint32) uint32
	coUninitialize                      func()
	coTaskMemFree                       func(ptr unsafe.Pointer)
)

// IsLoaded returns true if the Media Foundation libraries have been
// successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load loads the Media Foundation libraries and registers all function
// bindings. It is safe to call multiple times; subsequent calls are
// no-ops. Returns an error if libraries cannot be found or loaded.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	libMFPlat = windows.NewLazySystemDLL("mfplat.dll")
	libMF = windows.NewLazySystemDLL("mf.dll")
	libMFReadWrite = windows.NewLazySystemDLL("mfreadwrite.dll")
	libOle32 = windows.NewLazySystemDLL("ole32.dll")

	if err := registerFunc(libMFPlat, "MFStartup", &mfStartup); err != nil {
		return err
	}
	if err := registerFunc(libMFPlat, "MFShutdown", &mfShutdown); err != nil {
		return err
	}
	if err := registerFunc(libMFPlat, "MFCreateAttributes", &mfCreateAttributes); err != nil {
		return err
	}
	if err := registerFunc(libMFPlat, "MFCreateMediaType", &mfCreateMediaType); err != nil {
		return err
	}
	if err := registerFunc(libMF, "MFEnumDeviceSources", &mfEnumDeviceSources); err != nil {
		return err
	}
	if err := registerFunc(libMFReadWrite, "MFCreateSourceReaderFromMediaSource", &mfCreateSourceReaderFromMediaSource); err != nil {
		return err
	}
	if err := registerFunc(libOle32, "CoInitializeEx", &coInitializeEx); err != nil {
		return err
	}
	if err := registerFunc(libOle32, "CoUninitialize", &coUninitialize); err != nil {
		return err
	}
	if err := registerFunc(libOle32, "CoTaskMemFree", &coTaskMemFree); err != nil {
		return err
	}
	return nil
}

// registerFunc resolves name in lib and registers fptr as a typed binding.
func registerFunc(lib *windows.LazyDLL, name string, fptr any) error {
	proc := lib.NewProc(name)
	if err := proc.Find(); err != nil {
		return fmt.Errorf("resolving %s in %s: %w", name, lib.Name, err)
	}
	purego.RegisterFunc(fptr, proc.Addr())
	return nil
}

// MFStartup initializes the Media Foundation platform.
func MFStartup(version, flags uint32) error {
	if !loaded {
		return ErrNotLoaded
	}
	return com.Check("MFStartup", mfStartup(version, flags))
}

// MFShutdown shuts down the Media Foundation platform.
func MFShutdown() error {
	if !loaded {
		return ErrNotLoaded
	}
	return com.Check("MFShutdown", mfShutdown())
}

// MFCreateAttributes creates an empty attribute store with room for
// initialSize entries.
func MFCreateAttributes(initialSize uint32) (*com.IMFAttributes, error) {
	if !loaded {
		return nil, ErrNotLoaded
	}
	var attrs *com.IMFAttributes
	if err := com.Check("MFCreateAttributes", mfCreateAttributes(&attrs, initialSize)); err != nil {
		return nil, err
	}
	return attrs, nil
}

// MFCreateMediaType creates an empty media type.
func MFCreateMediaType() (*com.IMFMediaType, error) {
	if !loaded {
		return nil, ErrNotLoaded
	}
	var mt *com.IMFMediaType
	if err := com.Check("MFCreateMediaType", mfCreateMediaType(&mt)); err != nil {
		return nil, err
	}
	return mt, nil
}

// MFEnumDeviceSources enumerates capture devices matching the attribute
// filter. The returned array is allocated by the platform; the caller
// releases every activation handle and frees the array with CoTaskMemFree.
func MFEnumDeviceSources(filter *com.IMFAttributes) (**com.IMFActivate, uint32, error) {
	if !loaded {
		return nil, 0, ErrNotLoaded
	}
	var sources **com.IMFActivate
	var count uint32
	if err := com.Check("MFEnumDeviceSources", mfEnumDeviceSources(filter, &sources, &count)); err != nil {
		return nil, 0, err
	}
	return sources, count, nil
}

// MFCreateSourceReaderFromMediaSource wraps a media source in a source
// reader configured by the given attributes.
func MFCreateSourceReaderFromMediaSource(source *com.IMFMediaSource, attrs *com.IMFAttributes) (*com.IMFSourceReader, error) {
	if !loaded {
		return nil, ErrNotLoaded
	}
	var reader *com.IMFSourceReader
	if err := com.Check("MFCreateSourceReaderFromMediaSource", mfCreateSourceReaderFromMediaSource(source, attrs, &reader)); err != nil {
		return nil, err
	}
	return reader, nil
}

// COM apartment init codes tolerated by CoInitialize.
const (
	coinitApartmentThreaded = 0x2
	coinitDisableOLE1DDE    = 0x4

	sFalse          = 0x00000001
	rpcEChangedMode = 0x80010106
)

// CoInitialize enters an apartment-threaded COM apartment for the calling
// thread. Already-initialized apartments (S_FALSE, RPC_E_CHANGED_MODE)
// are treated as success.
func CoInitialize() error {
	if !loaded {
		return ErrNotLoaded
	}
	hr := coInitializeEx(0, coinitApartmentThreaded|coinitDisableOLE1DDE)
	if hr == sFalse || hr == rpcEChangedMode {
		return nil
	}
	return com.Check("CoInitializeEx", hr)
}

// CoUninitialize leaves the COM apartment entered by CoInitialize.
func CoUninitialize() {
	if loaded {
		coUninitialize()
	}
}

// CoTaskMemFree frees memory allocated by the platform, such as strings
// from GetAllocatedString and arrays from MFEnumDeviceSources.
func CoTaskMemFree(ptr unsafe.Pointer) {
	if loaded && ptr != nil {
		coTaskMemFree(ptr)
	}
}
