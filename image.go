package rounded

import (
	"errors"
	"log/slog"

	"github.com/gogpu/gg-rounded/material"
)

// Construction errors.
var (
	// ErrNilSurface is returned by New when no surface is given.
	ErrNilSurface = errors.New("rounded: surface is nil")

	// ErrNilSink is returned by New when no material sink is given.
	ErrNilSink = errors.New("rounded: material sink is nil")
)

// Image is a rounded-rectangle element: the parameter store of one host
// surface plus the validation and sync pipeline that keeps its material
// up to date.
//
// Every setter runs to completion before returning. Setters that change
// geometry (radii, softness, stroke, outline width) clamp and then sync;
// the others only sync. Each call produces exactly one sync pass.
//
// Image is not safe for concurrent use; callers editing several images
// serialize their edits per image.
type Image struct {
	surface Surface
	sink    material.Sink
	variant Variant
	params  Params
	logger  *slog.Logger
	cancel  func()
}

// New creates an Image bound to surface and sink, validates the initial
// parameters and performs the first sync. If surface implements
// ExtentNotifier, the image re-validates and syncs on every extent change
// until Close is called.
func New(surface Surface, sink material.Sink, opts ...Option) (*Image, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Image{
		surface: surface,
		sink:    sink,
		variant: o.variant,
		params:  o.params,
		logger:  o.logger,
	}
	propagateLogger(sink, m.log())

	if n, ok := surface.(ExtentNotifier); ok {
		m.cancel = n.NotifyExtent(func(Extent) { m.ExtentChanged() })
	}

	m.validateAndSync()
	return m, nil
}

// Close stops listening for extent changes. The image stays usable.
func (m *Image) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Image) log() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}
	return Logger()
}

// Variant returns the shader contract the image writes to.
func (m *Image) Variant() Variant { return m.variant }

// SetVariant switches the shader contract and syncs.
func (m *Image) SetVariant(v Variant) {
	m.variant = v
	m.sync()
}

// Extent returns the current surface extent.
func (m *Image) Extent() Extent { return m.surface.Extent() }

// ExtentChanged re-validates against the current surface extent and syncs.
// It is called automatically for surfaces implementing ExtentNotifier.
func (m *Image) ExtentChanged() {
	m.validateAndSync()
}

// Refresh re-sends the current state to the sink without clamping, for
// example after the surface's base color or texture changed.
func (m *Image) Refresh() {
	m.sync()
}

// Uniforms returns the writes the next sync would produce.
func (m *Image) Uniforms() []material.Uniform {
	return Sync(m.params, m.surface.Extent(), m.base(), m.variant)
}

func (m *Image) base() Base {
	return Base{Color: m.surface.Color(), Texture: m.surface.MainTexture()}
}

func (m *Image) validateAndSync() {
	e := m.surface.Extent()
	if e.Degenerate() {
		m.log().Debug("rounded: degenerate extent, clamping suspended",
			"width", e.Width, "height", e.Height)
	} else {
		clamped := Validate(m.params, e)
		if !geometryEqual(clamped, m.params) {
			m.log().Debug("rounded: parameters clamped",
				"width", e.Width, "height", e.Height,
				"softness", clamped.Softness, "stroke", clamped.Stroke.Width,
				"outline", clamped.Outline.Width)
		}
		m.params = clamped
	}
	m.syncExtent(e)
}

func (m *Image) sync() {
	m.syncExtent(m.surface.Extent())
}

func (m *Image) syncExtent(e Extent) {
	material.Apply(m.sink, Sync(m.params, e, m.base(), m.variant))
}

// Params returns a copy of the current parameters.
func (m *Image) Params() Params { return m.params }

// SetParams replaces all parameters in one validate and sync pass.
func (m *Image) SetParams(p Params) {
	m.params = p
	m.validateAndSync()
}

// Update applies fn to the parameters and then validates and syncs once.
// It is the batch form of the individual setters.
func (m *Image) Update(fn func(p *Params)) {
	fn(&m.params)
	m.validateAndSync()
}

// Mode returns the radius mode.
func (m *Image) Mode() Mode { return m.params.Radii.Mode() }

// Unified reports whether TopLeft is broadcast to all corners.
func (m *Image) Unified() bool { return m.params.Radii.Unified }

// SetUnified switches the radius mode. Stored per-corner values are kept.
func (m *Image) SetUnified(v bool) {
	m.params.Radii.Unified = v
	m.sync()
}

// Radius returns the top-left radius, which is the rendered radius of
// every corner in unified mode.
func (m *Image) Radius() float64 { return m.params.Radii.TopLeft }

// SetAllRadii sets all four corners to v in a single validate and sync
// pass, so the sink never observes a partially applied state.
func (m *Image) SetAllRadii(v float64) {
	m.params.Radii.SetAll(v)
	m.validateAndSync()
}

// CornerRadius returns the stored radius of c.
func (m *Image) CornerRadius(c Corner) float64 { return m.params.Radii.Get(c) }

// SetCornerRadius sets the radius of c. Invalid corners are ignored and
// nothing is synced.
func (m *Image) SetCornerRadius(c Corner, v float64) {
	if !c.Valid() {
		return
	}
	m.params.Radii.Set(c, v)
	m.validateAndSync()
}

// TopLeftRadius returns the top-left radius.
func (m *Image) TopLeftRadius() float64 { return m.params.Radii.TopLeft }

// SetTopLeftRadius sets the top-left radius.
func (m *Image) SetTopLeftRadius(v float64) { m.SetCornerRadius(TopLeft, v) }

// TopRightRadius returns the top-right radius.
func (m *Image) TopRightRadius() float64 { return m.params.Radii.TopRight }

// SetTopRightRadius sets the top-right radius.
func (m *Image) SetTopRightRadius(v float64) { m.SetCornerRadius(TopRight, v) }

// BottomLeftRadius returns the bottom-left radius.
func (m *Image) BottomLeftRadius() float64 { return m.params.Radii.BottomLeft }

// SetBottomLeftRadius sets the bottom-left radius.
func (m *Image) SetBottomLeftRadius(v float64) { m.SetCornerRadius(BottomLeft, v) }

// BottomRightRadius returns the bottom-right radius.
func (m *Image) BottomRightRadius() float64 { return m.params.Radii.BottomRight }

// SetBottomRightRadius sets the bottom-right radius.
func (m *Image) SetBottomRightRadius(v float64) { m.SetCornerRadius(BottomRight, v) }

// Softness returns the edge anti-aliasing falloff width.
func (m *Image) Softness() float64 { return m.params.Softness }

// SetSoftness sets the falloff width.
func (m *Image) SetSoftness(v float64) {
	m.params.Softness = v
	m.validateAndSync()
}

// Stroke returns the plain border width.
func (m *Image) Stroke() float64 { return m.params.Stroke.Width }

// SetStroke sets the plain border width.
func (m *Image) SetStroke(v float64) {
	m.params.Stroke.Width = v
	m.validateAndSync()
}

// OutlineEnabled reports whether the outline is drawn.
func (m *Image) OutlineEnabled() bool { return m.params.Outline.Enabled }

// SetOutlineEnabled toggles the outline.
func (m *Image) SetOutlineEnabled(v bool) {
	m.params.Outline.Enabled = v
	m.sync()
}

// OutlineWidth returns the outline width.
func (m *Image) OutlineWidth() float64 { return m.params.Outline.Width }

// SetOutlineWidth sets the outline width.
func (m *Image) SetOutlineWidth(v float64) {
	m.params.Outline.Width = v
	m.validateAndSync()
}

// OutlineColor returns the outline color.
func (m *Image) OutlineColor() RGBA { return m.params.Outline.Color }

// SetOutlineColor sets the outline color.
func (m *Image) SetOutlineColor(c RGBA) {
	m.params.Outline.Color = c
	m.sync()
}

// OutlineSprite returns the outline texture reference, or nil.
func (m *Image) OutlineSprite() *Sprite { return m.params.Outline.Sprite }

// SetOutlineSprite sets the outline texture reference. nil removes it.
func (m *Image) SetOutlineSprite(s *Sprite) {
	m.params.Outline.Sprite = s
	m.sync()
}

// FillEnabled reports whether the interior is drawn.
func (m *Image) FillEnabled() bool { return m.params.Fill.Enabled }

// SetFillEnabled toggles the fill. A disabled fill is sent as transparent.
func (m *Image) SetFillEnabled(v bool) {
	m.params.Fill.Enabled = v
	m.sync()
}

// FillColor returns the stored fill color, regardless of FillEnabled.
func (m *Image) FillColor() RGBA { return m.params.Fill.Color }

// SetFillColor sets the fill color.
func (m *Image) SetFillColor(c RGBA) {
	m.params.Fill.Color = c
	m.sync()
}

// FillSprite returns the fill texture reference, or nil.
func (m *Image) FillSprite() *Sprite { return m.params.Fill.Sprite }

// SetFillSprite sets the fill texture reference. With nil the surface's
// main texture is used.
func (m *Image) SetFillSprite(s *Sprite) {
	m.params.Fill.Sprite = s
	m.sync()
}

// Tint returns the tint color.
func (m *Image) Tint() RGBA { return m.params.Tint.Color }

// SetTint sets the tint color.
func (m *Image) SetTint(c RGBA) {
	m.params.Tint.Color = c
	m.sync()
}
