package rounded

import "math"

// Epsilon is the smallest extent side for which clamping is applied.
// Below it the element is considered degenerate (for example before its
// first layout pass) and stored values pass through unchanged.
const Epsilon = 0.001

// Extent is the width and height of the host element in layout units.
type Extent struct {
	Width, Height float64
}

// Min returns the shorter side.
func (e Extent) Min() float64 {
	return math.Min(e.Width, e.Height)
}

// Degenerate reports whether either side is below Epsilon or NaN.
func (e Extent) Degenerate() bool {
	return !(e.Width >= Epsilon && e.Height >= Epsilon)
}
