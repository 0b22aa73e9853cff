package quiver

// Step is one hop of a connector route. It receives the point the
// route has reached so far and returns the next waypoint. Steps are
// plain closures, so routes can depend on runtime state.
type Step func(from Point) Point

// Plan folds steps over an origin: each step is invoked with the
// previous step's output, the first with the origin itself. The
// returned sequence holds exactly one point per step; the origin is
// not included. Zero steps yield nil.
//
// Plan is agnostic to what the steps do. Ordering is the only contract.
func Plan(origin Point, steps []Step) []Point {
	if len(steps) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(steps))
	cur := origin
	for _, s := range steps {
		cur = s(cur)
		pts = append(pts, cur)
	}
	return pts
}

// StepTo returns a step that jumps to an absolute position.
func StepTo(x, y float64) Step {
	return func(Point) Point { return Pt(x, y) }
}

// StepBy returns a step that moves by a relative offset.
func StepBy(dx, dy float64) Step {
	return func(from Point) Point { return Pt(from.X+dx, from.Y+dy) }
}

// StepToX returns a step that moves horizontally to the given x.
func StepToX(x float64) Step {
	return func(from Point) Point { return Pt(x, from.Y) }
}

// StepToY returns a step that moves vertically to the given y.
func StepToY(y float64) Step {
	return func(from Point) Point { return Pt(from.X, y) }
}

// Router expands an endpoint pair into the steps of a route. Arrows
// call their router on every draw, so a route always reflects current
// anchor positions.
type Router func(from, to Point) []Step

// Direct routes straight to the target in a single step.
func Direct(_, to Point) []Step {
	return []Step{StepTo(to.X, to.Y)}
}

// ElbowHV routes with one right-angle bend, horizontal first.
func ElbowHV(_, to Point) []Step {
	return []Step{StepToX(to.X), StepToY(to.Y)}
}

// ElbowVH routes with one right-angle bend, vertical first.
func ElbowVH(_, to Point) []Step {
	return []Step{StepToY(to.Y), StepToX(to.X)}
}

// MidpointH routes through the horizontal midpoint: half way across,
// down or up to the target's row, then across. The classic
// tree-diagram connector.
func MidpointH(from, to Point) []Step {
	mid := (from.X + to.X) / 2
	return []Step{StepToX(mid), StepToY(to.Y), StepToX(to.X)}
}

// MidpointV routes through the vertical midpoint.
func MidpointV(from, to Point) []Step {
	mid := (from.Y + to.Y) / 2
	return []Step{StepToY(mid), StepToX(to.X), StepToY(to.Y)}
}
