package mfcam

// Media Foundation packs two 32-bit halves into the 64-bit attribute
// values used for frame sizes (width high, height low) and frame rates
// (numerator high, denominator low).

func packUint64(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

func splitUint64(v uint64) (hi, lo uint32) {
	return uint32(v >> 32), uint32(v)
}

// frameSizeFromPacked decodes a packed MF_MT_FRAME_SIZE value.
func frameSizeFromPacked(v uint64) Resolution {
	w, h := splitUint64(v)
	return Resolution{Width: w, Height: h}
}

// packFrameSize encodes a resolution for MF_MT_FRAME_SIZE.
func packFrameSize(r Resolution) uint64 {
	return packUint64(r.Width, r.Height)
}

// frameRateFromPacked decodes a packed frame-rate fraction. Rates are
// surfaced as whole frames per second only: a denominator other than 1
// makes the rate unknown and it decodes to 0.
func frameRateFromPacked(v uint64) uint32 {
	num, den := splitUint64(v)
	if den != 1 {
		return 0
	}
	return num
}

// packFrameRate encodes a whole frame rate as a fraction with denominator
// fixed to 1. Fractional rates cannot be requested through this package.
func packFrameRate(rate uint32) uint64 {
	return packUint64(rate, 1)
}

// appendRateEntries emits up to three formats for one native media type,
// at its minimum, nominal, and maximum rates. Zero rates are dropped, and
// a rate equal to the previously emitted one for this type is suppressed
// so coinciding rates never produce adjacent duplicates, even when the
// rate between them decoded to unknown.
func appendRateEntries(list []CameraFormat, res Resolution, format FrameFormat, minRate, nominal, maxRate uint32) []CameraFormat {
	var prev uint32
	for _, rate := range [3]uint32{minRate, nominal, maxRate} {
		if rate == 0 || rate == prev {
			continue
		}
		list = append(list, CameraFormat{Resolution: res, Format: format, FrameRate: rate})
		prev = rate
	}
	return list
}
