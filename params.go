package rounded

import "github.com/gogpu/gg-rounded/material"

// Corner identifies one corner of the rectangle.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Valid reports whether c names one of the four corners.
func (c Corner) Valid() bool { return c <= BottomRight }

// String returns the corner name.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Mode is the radius mode of a RadiusSet.
type Mode uint8

const (
	// ModeUnified renders TopLeft on all four corners.
	ModeUnified Mode = iota
	// ModePerCorner renders each corner with its own radius.
	ModePerCorner
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeUnified {
		return "unified"
	}
	return "per-corner"
}

// RadiusSet holds the four corner radii.
//
// When Unified is set only TopLeft is rendered; the other three are kept
// so that switching back to per-corner mode restores them.
type RadiusSet struct {
	TopLeft     float64
	TopRight    float64
	BottomLeft  float64
	BottomRight float64
	Unified     bool
}

// Get returns the stored radius of c, or 0 for an invalid corner.
func (r RadiusSet) Get(c Corner) float64 {
	switch c {
	case TopLeft:
		return r.TopLeft
	case TopRight:
		return r.TopRight
	case BottomLeft:
		return r.BottomLeft
	case BottomRight:
		return r.BottomRight
	}
	return 0
}

// Set stores v as the radius of c. Invalid corners are ignored.
func (r *RadiusSet) Set(c Corner, v float64) {
	switch c {
	case TopLeft:
		r.TopLeft = v
	case TopRight:
		r.TopRight = v
	case BottomLeft:
		r.BottomLeft = v
	case BottomRight:
		r.BottomRight = v
	}
}

// SetAll stores v on every corner.
func (r *RadiusSet) SetAll(v float64) {
	r.TopLeft, r.TopRight, r.BottomLeft, r.BottomRight = v, v, v, v
}

// Mode returns the current radius mode.
func (r RadiusSet) Mode() Mode {
	if r.Unified {
		return ModeUnified
	}
	return ModePerCorner
}

// Effective returns the radii used for rendering, indexed by Corner.
func (r RadiusSet) Effective() [4]float64 {
	if r.Unified {
		return [4]float64{r.TopLeft, r.TopLeft, r.TopLeft, r.TopLeft}
	}
	return [4]float64{r.TopLeft, r.TopRight, r.BottomLeft, r.BottomRight}
}

// StrokeSpec is a uniform border thickness independent of the outline.
type StrokeSpec struct {
	Width float64
}

// OutlineSpec describes the optional, possibly textured, outline.
type OutlineSpec struct {
	Enabled bool
	Width   float64
	Color   RGBA
	Sprite  *Sprite
}

// FillSpec describes the interior. A disabled fill renders transparent.
type FillSpec struct {
	Enabled bool
	Color   RGBA
	Sprite  *Sprite
}

// TintSpec is multiplied with the base element color by variants that
// carry a separate tint channel.
type TintSpec struct {
	Color RGBA
}

// Sprite is a named texture reference. The name is what gets persisted;
// the texture is whatever handle the host renders with.
type Sprite struct {
	Name    string
	Texture material.Texture
}

// Handle returns the sprite's texture, or nil for a nil sprite.
func (s *Sprite) Handle() material.Texture {
	if s == nil {
		return nil
	}
	return s.Texture
}

// Params is the complete parameter set of a rounded element.
type Params struct {
	Radii    RadiusSet
	Stroke   StrokeSpec
	Outline  OutlineSpec
	Fill     FillSpec
	Softness float64
	Tint     TintSpec
}

// Default parameter values.
const (
	DefaultSoftness     = 0.5
	DefaultOutlineWidth = 4.0
)

// DefaultParams returns the parameters of a freshly created element:
// unified zero radii, softness 0.5, no stroke, outline disabled, fill
// enabled, white colors.
func DefaultParams() Params {
	return Params{
		Radii:    RadiusSet{Unified: true},
		Outline:  OutlineSpec{Width: DefaultOutlineWidth, Color: White},
		Fill:     FillSpec{Enabled: true, Color: White},
		Softness: DefaultSoftness,
		Tint:     TintSpec{Color: White},
	}
}
