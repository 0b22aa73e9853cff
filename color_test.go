package quiver

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "opaque red",
			c:     Red,
			wantR: 65535, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     RGBA{0, 0, 0, 0},
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			name:  "50% alpha red",
			c:     RGBA{1, 0, 0, 0.5},
			wantR: 32767, wantG: 0, wantB: 0, wantA: 32767,
		},
		{
			name:  "out of range clamps",
			c:     RGBA{2, -1, 0.5, 1},
			wantR: 65535, wantG: 0, wantB: 32767, wantA: 65535,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			// Allow ±1 tolerance for floating point
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestRGBA_NRGBA(t *testing.T) {
	tests := []struct {
		name   string
		c      RGBA
		expect color.NRGBA
	}{
		{"black", Black, color.NRGBA{0, 0, 0, 255}},
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"half alpha blue", RGBA{0, 0, 1, 0.5}, color.NRGBA{0, 0, 255, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.expect {
				t.Errorf("NRGBA() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestRGBA_FromColor(t *testing.T) {
	got := FromColor(color.NRGBA64{R: 65535, G: 0, B: 0, A: 65535})
	if absDiff(got.R, 1) > 0.001 || absDiff(got.G, 0) > 0.001 || absDiff(got.A, 1) > 0.001 {
		t.Errorf("FromColor = %v, want opaque red", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		expect RGBA
	}{
		{"short rgb", "#fff", White},
		{"short rgb no hash", "f00", Red},
		{"long rgb", "#ff0000", Red},
		{"long rgba", "#0000ffff", Blue},
		{"short rgba", "#00ff", Blue},
		{"invalid length is black", "#12345", Black},
		{"empty is black", "", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if absDiff(got.R, tt.expect.R) > 0.001 ||
				absDiff(got.G, tt.expect.G) > 0.001 ||
				absDiff(got.B, tt.expect.B) > 0.001 ||
				absDiff(got.A, tt.expect.A) > 0.001 {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.expect)
			}
		})
	}
}

func TestHex_Alpha(t *testing.T) {
	got := Hex("#ff000080")
	if absDiff(got.A, 128.0/255) > 0.001 {
		t.Errorf("alpha = %v, want ~0.5", got.A)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if absDiff(got.R, 0.5) > 0.001 || absDiff(got.G, 0.5) > 0.001 || absDiff(got.B, 0.5) > 0.001 {
		t.Errorf("Lerp midpoint = %v, want gray", got)
	}

	if got := Red.Lerp(Blue, 0); got != Red {
		t.Errorf("Lerp(0) = %v, want Red", got)
	}
	if got := Red.Lerp(Blue, 1); got != Blue {
		t.Errorf("Lerp(1) = %v, want Blue", got)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		expect  RGBA
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 120, 1, 0.5, Green},
		{"blue", 240, 1, 0.5, Blue},
		{"white", 0, 0, 1, White},
		{"black", 0, 0, 0, Black},
		{"negative hue wraps", -120, 1, 0.5, Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if absDiff(got.R, tt.expect.R) > 0.001 ||
				absDiff(got.G, tt.expect.G) > 0.001 ||
				absDiff(got.B, tt.expect.B) > 0.001 {
				t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.expect)
			}
		})
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
