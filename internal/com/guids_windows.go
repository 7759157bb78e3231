//go:build windows

package com

import "golang.org/x/sys/windows"

// Media Foundation attribute and format GUIDs, named as in the Windows
// SDK headers.
var (
	MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE                      = windows.GUID{Data1: 0xc60ac5fe, Data2: 0x252a, Data3: 0x478f, Data4: [8]byte{0xa0, 0xef, 0xbc, 0x8f, 0xa5, 0xf7, 0xca, 0xd3}}
	MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP_GUID          = windows.GUID{Data1: 0x8ac3587a, Data2: 0x4ae7, Data3: 0x42d8, Data4: [8]byte{0x99, 0xe0, 0x0a, 0x60, 0x13, 0xee, 0xf9, 0x0f}}
	MF_DEVSOURCE_ATTRIBUTE_FRIENDLY_NAME                    = windows.GUID{Data1: 0x60d0e559, Data2: 0x52f8, Data3: 0x4fa2, Data4: [8]byte{0xbb, 0xce, 0xac, 0xdb, 0x34, 0xa8, 0xec, 0x01}}
	MF_DEVSOURCE_ATTRIBUTE_SOURCE_TYPE_VIDCAP_SYMBOLIC_LINK = windows.GUID{Data1: 0x58f0aad8, Data2: 0x22bf, Data3: 0x4f8a, Data4: [8]byte{0xbb, 0x3d, 0xd2, 0xc4, 0x97, 0x8c, 0x6e, 0x2f}}

	MF_MT_MAJOR_TYPE           = windows.GUID{Data1: 0x48eba18e, Data2: 0xf8c9, Data3: 0x4687, Data4: [8]byte{0xbf, 0x11, 0x0a, 0x74, 0xc9, 0xf9, 0x6a, 0x8f}}
	MF_MT_SUBTYPE              = windows.GUID{Data1: 0xf7e34c9a, Data2: 0x42e8, Data3: 0x4714, Data4: [8]byte{0xb7, 0x4b, 0xcb, 0x29, 0xd7, 0x2c, 0x35, 0xe5}}
	MF_MT_FRAME_SIZE           = windows.GUID{Data1: 0x1652c33d, Data2: 0xd6b2, Data3: 0x4012, Data4: [8]byte{0xb8, 0x34, 0x72, 0x03, 0x08, 0x49, 0xa3, 0x7d}}
	MF_MT_FRAME_RATE           = windows.GUID{Data1: 0xc459a2e8, Data2: 0x3d2c, Data3: 0x4e44, Data4: [8]byte{0xb1, 0x32, 0xfe, 0xe5, 0x15, 0x6c, 0x7b, 0xb0}}
	MF_MT_FRAME_RATE_RANGE_MIN = windows.GUID{Data1: 0xd2e7558c, Data2: 0xdc1f, Data3: 0x403f, Data4: [8]byte{0x9a, 0x72, 0xd2, 0x8b, 0xb1, 0xeb, 0x3b, 0x5e}}
	MF_MT_FRAME_RATE_RANGE_MAX = windows.GUID{Data1: 0xe3371d41, Data2: 0xb4cf, Data3: 0x4a05, Data4: [8]byte{0xbd, 0x4e, 0x20, 0xb8, 0x8b, 0xb2, 0xc4, 0xd6}}

	MF_READWRITE_DISABLE_CONVERTERS = windows.GUID{Data1: 0x98d5b065, Data2: 0x1374, Data3: 0x4847, Data4: [8]byte{0x8d, 0x5d, 0x31, 0x52, 0x0f, 0xee, 0x71, 0x56}}
	MF_MEDIASOURCE_SERVICE          = windows.GUID{Data1: 0xf09992f7, Data2: 0x9fba, Data3: 0x4c4a, Data4: [8]byte{0xa3, 0x7f, 0x8c, 0x47, 0xb4, 0xe1, 0xdf, 0xe7}}

	MFMediaType_Video = windows.GUID{Data1: 0x73646976, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}

	// FOURCC-derived video subtypes: the first dword is the FOURCC, the
	// rest is the fixed base GUID.
	MFVideoFormat_MJPG = windows.GUID{Data1: 0x47504a4d, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}
	MFVideoFormat_YUY2 = windows.GUID{Data1: 0x32595559, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}
	MFVideoFormat_Y800 = windows.GUID{Data1: 0x30303859, Data2: 0x0000, Data3: 0x0010, Data4: [8]byte{0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}}

	IID_IMFMediaSource   = windows.GUID{Data1: 0x279a808d, Data2: 0xaec7, Data3: 0x40c8, Data4: [8]byte{0x9c, 0x6b, 0xa6, 0xfa, 0x4d, 0x32, 0xa7, 0xf3}}
	IID_IAMCameraControl = windows.GUID{Data1: 0xc6e13370, Data2: 0x30ac, Data3: 0x11d0, Data4: [8]byte{0xa1, 0x8c, 0x00, 0xa0, 0xc9, 0x11, 0x89, 0x56}}
	IID_IAMVideoProcAmp  = windows.GUID{Data1: 0xc6e13360, Data2: 0x30ac, Data3: 0x11d0, Data4: [8]byte{0xa1, 0x8c, 0x00, 0xa0, 0xc9, 0x11, 0x89, 0x56}}
)

// Media Foundation constants.
const (
	// MF_SOURCE_READER_FIRST_VIDEO_STREAM addresses the first video
	// stream in source-reader calls.
	MF_SOURCE_READER_FIRST_VIDEO_STREAM uint32 = 0xFFFFFFFC

	// MF_VERSION is the Media Foundation API version passed to MFStartup.
	MF_VERSION uint32 = 0x00020070

	// MFSTARTUP_NOSOCKET skips the network features of the pipeline.
	MFSTARTUP_NOSOCKET uint32 = 0x1
)
