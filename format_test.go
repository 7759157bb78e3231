package mfcam

import "testing"

func TestPackFrameSizeRoundTrip(t *testing.T) {
	res := Resolution{Width: 1920, Height: 1080}
	packed := packFrameSize(res)
	if packed != 1920<<32|1080 {
		t.Fatalf("packFrameSize = %#x, want %#x", packed, uint64(1920<<32|1080))
	}
	if got := frameSizeFromPacked(packed); got != res {
		t.Fatalf("frameSizeFromPacked = %v, want %v", got, res)
	}
}

func TestFrameRateFromPacked(t *testing.T) {
	tests := []struct {
		name string
		num  uint32
		den  uint32
		want uint32
	}{
		{"whole rate", 30, 1, 30},
		{"high whole rate", 120, 1, 120},
		{"fractional rate is unknown", 30000, 1001, 0},
		{"zero denominator is unknown", 30, 0, 0},
		{"zero numerator", 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := packUint64(tt.num, tt.den)
			if got := frameRateFromPacked(packed); got != tt.want {
				t.Fatalf("frameRateFromPacked(%d/%d) = %d, want %d", tt.num, tt.den, got, tt.want)
			}
		})
	}
}

func TestPackFrameRate(t *testing.T) {
	// Rates are always written as numerator over a denominator of 1.
	if got := packFrameRate(30); got != 30<<32|1 {
		t.Fatalf("packFrameRate(30) = %#x, want %#x", got, uint64(30<<32|1))
	}
	// NTSC-style 29.97 cannot be expressed; 29 and 30 are distinct whole
	// rates and survive a pack/decode round trip unchanged.
	for _, rate := range []uint32{29, 30} {
		if got := frameRateFromPacked(packFrameRate(rate)); got != rate {
			t.Fatalf("round trip of rate %d = %d", rate, got)
		}
	}
}

func TestAppendRateEntries(t *testing.T) {
	res := Resolution{Width: 640, Height: 480}

	tests := []struct {
		name      string
		min       uint32
		nominal   uint32
		max       uint32
		wantRates []uint32
	}{
		{"distinct rates", 10, 20, 30, []uint32{10, 20, 30}},
		{"all equal", 30, 30, 30, []uint32{30}},
		{"min unknown", 0, 30, 60, []uint32{30, 60}},
		{"nominal equals min", 30, 30, 60, []uint32{30, 60}},
		{"max equals nominal", 15, 30, 30, []uint32{15, 30}},
		{"nominal unknown between equal bounds", 30, 0, 30, []uint32{30}},
		{"nominal unknown between distinct bounds", 15, 0, 30, []uint32{15, 30}},
		{"all unknown", 0, 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendRateEntries(nil, res, FormatMJPEG, tt.min, tt.nominal, tt.max)
			if len(got) != len(tt.wantRates) {
				t.Fatalf("got %d entries, want %d: %v", len(got), len(tt.wantRates), got)
			}
			for i, f := range got {
				if f.FrameRate != tt.wantRates[i] {
					t.Errorf("entry %d rate = %d, want %d", i, f.FrameRate, tt.wantRates[i])
				}
				if f.Resolution != res || f.Format != FormatMJPEG {
					t.Errorf("entry %d carries wrong resolution or format: %v", i, f)
				}
			}
		})
	}
}

func TestAppendRateEntriesAppends(t *testing.T) {
	res := Resolution{Width: 1280, Height: 720}
	list := appendRateEntries(nil, res, FormatYUYV, 15, 30, 30)
	list = appendRateEntries(list, Resolution{Width: 640, Height: 480}, FormatYUYV, 30, 30, 30)
	if len(list) != 3 {
		t.Fatalf("got %d entries, want 3: %v", len(list), list)
	}
	// Duplicate suppression is per native type, not global.
	if list[1].FrameRate != 30 || list[2].FrameRate != 30 {
		t.Fatalf("expected 30 fps entries from both types: %v", list)
	}
}
