package quiver

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); !pointsEqual(got, Pt(4, 6), epsilon) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := p.Sub(q); !pointsEqual(got, Pt(2, 2), epsilon) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := p.Mul(2); !pointsEqual(got, Pt(6, 8), epsilon) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
}

func TestPoint_DotCross(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Dot(q); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := p.Cross(q); got != 2 {
		t.Errorf("Cross = %v, want 2", got)
	}
}

func TestPoint_Length(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Length(); math.Abs(got-5) > epsilon {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
	if got := p.Distance(Pt(0, 0)); math.Abs(got-5) > epsilon {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		expect Point
	}{
		{"unit x", Pt(10, 0), Pt(1, 0)},
		{"unit y", Pt(0, -3), Pt(0, -1)},
		{"diagonal", Pt(3, 4), Pt(0.6, 0.8)},
		{"zero stays zero", Pt(0, 0), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Normalize()
			if !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Normalize() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestPoint_Perp(t *testing.T) {
	p := Pt(1, 0)
	got := p.Perp()
	if !pointsEqual(got, Pt(0, 1), epsilon) {
		t.Errorf("Perp() = %v, want (0, 1)", got)
	}
	// Perp is a quarter turn, so applying it twice negates.
	if got2 := got.Perp(); !pointsEqual(got2, Pt(-1, 0), epsilon) {
		t.Errorf("Perp().Perp() = %v, want (-1, 0)", got2)
	}
}

func TestPoint_Angle(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		expect float64
	}{
		{"east", Pt(1, 0), 0},
		{"north", Pt(0, 1), math.Pi / 2},
		{"west", Pt(-1, 0), math.Pi},
		{"south", Pt(0, -1), -math.Pi / 2},
		{"zero vector", Pt(0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Angle()
			if math.Abs(got-tt.expect) > epsilon {
				t.Errorf("Angle() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestPoint_Lerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(10, 20)},
		{"t=0.5", 0.5, Pt(5, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Lerp(q, tt.t)
			if !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}
