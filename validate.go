package rounded

import "math"

// Validate clamps every geometric parameter of p to the range allowed by e
// and returns the result. It never fails.
//
// With a degenerate extent (see Extent.Degenerate) p is returned as is.
// Otherwise, with m the shorter side of e:
//
//	softness            in [0, m]
//	stroke, outline     in [0, m/2]
//	each corner radius  in [0, m/2]
//
// NaN values clamp to 0. Validate is idempotent, and shrinking e can only
// tighten the result.
func Validate(p Params, e Extent) Params {
	if e.Degenerate() {
		return p
	}

	maxSize := e.Min()
	halfMax := maxSize / 2

	p.Softness = Clamp(p.Softness, 0, maxSize)
	p.Stroke.Width = Clamp(p.Stroke.Width, 0, halfMax)
	p.Outline.Width = Clamp(p.Outline.Width, 0, halfMax)
	p.Radii.TopLeft = Clamp(p.Radii.TopLeft, 0, halfMax)
	p.Radii.TopRight = Clamp(p.Radii.TopRight, 0, halfMax)
	p.Radii.BottomLeft = Clamp(p.Radii.BottomLeft, 0, halfMax)
	p.Radii.BottomRight = Clamp(p.Radii.BottomRight, 0, halfMax)
	return p
}

// Clamp restricts v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// geometryEqual reports whether a and b agree on every clamped field.
func geometryEqual(a, b Params) bool {
	return a.Softness == b.Softness &&
		a.Stroke.Width == b.Stroke.Width &&
		a.Outline.Width == b.Outline.Width &&
		a.Radii.TopLeft == b.Radii.TopLeft &&
		a.Radii.TopRight == b.Radii.TopRight &&
		a.Radii.BottomLeft == b.Radii.BottomLeft &&
		a.Radii.BottomRight == b.Radii.BottomRight
}
