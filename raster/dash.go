package raster

import (
	"math"

	"github.com/gogpu/quiver"
)

// effectivePattern normalizes a dash pattern: entries become absolute
// values, odd-length patterns are doubled so on/off pairs alternate
// evenly, and patterns without a positive entry collapse to nil
// (solid).
func effectivePattern(pattern []float64) []float64 {
	hasPositive := false
	for _, d := range pattern {
		if d != 0 {
			hasPositive = true
			break
		}
	}
	if !hasPositive {
		return nil
	}

	n := len(pattern)
	if n%2 != 0 {
		n *= 2
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Abs(pattern[i%len(pattern)])
	}
	return out
}

// splitDash cuts a polyline into the "on" runs of a dash pattern.
// The offset phases into the pattern; negative offsets wrap. A nil or
// all-zero pattern returns the polyline unchanged as a single run.
func splitDash(poly []quiver.Point, pattern []float64, offset float64) [][]quiver.Point {
	pat := effectivePattern(pattern)
	if pat == nil || len(poly) < 2 {
		return [][]quiver.Point{poly}
	}

	total := 0.0
	for _, d := range pat {
		total += d
	}

	off := math.Mod(offset, total)
	if off < 0 {
		off += total
	}

	// Advance the pattern cursor past the offset. Zero-length entries
	// are stepped over; total > 0 guarantees progress.
	idx := 0
	rem := pat[0]
	for off >= rem {
		off -= rem
		idx = (idx + 1) % len(pat)
		rem = pat[idx]
	}
	rem -= off

	on := idx%2 == 0
	var runs [][]quiver.Point
	var run []quiver.Point
	if on {
		run = append(run, poly[0])
	}

	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}

		pos := 0.0
		for segLen-pos > rem {
			pos += rem
			cut := a.Lerp(b, pos/segLen)
			if on {
				run = append(run, cut)
				if len(run) >= 2 {
					runs = append(runs, run)
				}
				run = nil
			} else {
				run = []quiver.Point{cut}
			}
			on = !on
			idx = (idx + 1) % len(pat)
			rem = pat[idx]
		}
		rem -= segLen - pos
		if on {
			run = append(run, b)
		}
	}

	if on && len(run) >= 2 {
		runs = append(runs, run)
	}
	return runs
}
