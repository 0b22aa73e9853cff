package quiver

import "testing"

func TestPoint_IsAnchor(t *testing.T) {
	var a Anchor = Pt(3, 4)
	x, y := a.XY()
	if x != 3 || y != 4 {
		t.Errorf("XY() = (%v, %v), want (3, 4)", x, y)
	}
}

func TestShift(t *testing.T) {
	base := Pt(10, 20)
	a := Shift(base, 5, -5)

	x, y := a.XY()
	if x != 15 || y != 15 {
		t.Errorf("shifted XY() = (%v, %v), want (15, 15)", x, y)
	}
}

func TestShift_TracksBase(t *testing.T) {
	// A shifted anchor over a live anchor follows the base's moves.
	var base movableAnchor
	base.set(0, 0)
	a := Shift(&base, 10, 0)

	if x, _ := a.XY(); x != 10 {
		t.Errorf("XY().x = %v, want 10", x)
	}

	base.set(100, 50)
	x, y := a.XY()
	if x != 110 || y != 50 {
		t.Errorf("XY() after move = (%v, %v), want (110, 50)", x, y)
	}
}

func TestShift_Nested(t *testing.T) {
	a := Shift(Shift(Pt(1, 1), 2, 0), 0, 3)
	x, y := a.XY()
	if x != 3 || y != 4 {
		t.Errorf("nested shift XY() = (%v, %v), want (3, 4)", x, y)
	}
}

// movableAnchor is a test anchor whose position can change between
// calls, standing in for a widget that moves during layout.
type movableAnchor struct {
	x, y float64
}

func (m *movableAnchor) set(x, y float64) {
	m.x, m.y = x, y
}

func (m *movableAnchor) XY() (float64, float64) {
	return m.x, m.y
}
