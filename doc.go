// Package quiver plans and renders connector arrows for 2D canvases.
//
// # Overview
//
// quiver turns an abstract "connection between two points" into
// immediate-mode canvas commands: a polyline with smoothly rounded
// corners and a chevron arrowhead at its end. It does not own a widget
// tree, an event loop, or endpoint layout; the host supplies anchor
// positions and a Canvas, quiver supplies the geometry.
//
// # Quick Start
//
//	import "github.com/gogpu/quiver"
//
//	keys := quiver.NewKeySource()
//	arrow := quiver.NewArrow(quiver.Pt(20, 20), quiver.WithKey(keys.Next())).
//		To(quiver.Pt(200, 140))
//
//	rec := quiver.NewRecorder()
//	if err := arrow.Draw(rec); err != nil {
//		// handle error
//	}
//	// rec.Ops() now holds the canvas commands.
//
// # Pipeline
//
// Anchors resolve to points, a Router expands the pair into Steps,
// Plan folds the Steps into a waypoint sequence, and Trace converts the
// waypoints into a Path of move/line/quadratic commands plus the
// arrowhead. Arrow ties the stages together and replays the result onto
// any Canvas implementation.
//
// # Backends
//
// The library core is backend-agnostic. Subpackages provide concrete
// canvases:
//   - raster: CPU rasterization onto an image.RGBA (PNG output)
//   - pdf: vector output into a PDF document
//
// The in-package Recorder captures raw commands for hosts with their
// own drawing surface and for tests.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
package quiver

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
