package rounded

import (
	"errors"
	"fmt"
	"image/color"
)

// Property errors.
var (
	// ErrUnknownProperty is returned for a Property or name outside the table.
	ErrUnknownProperty = errors.New("rounded: unknown property")

	// ErrPropertyType is returned when a value cannot be converted to the
	// property's type.
	ErrPropertyType = errors.New("rounded: wrong property value type")
)

// Property names one editable field of an Image.
type Property uint8

// Editable properties. Their names are also the persisted state keys.
const (
	PropUnified Property = iota
	PropTopLeftRadius
	PropTopRightRadius
	PropBottomLeftRadius
	PropBottomRightRadius
	PropFillEnabled
	PropFillColor
	PropFillSprite
	PropOutlineEnabled
	PropOutline
	PropOutlineColor
	PropOutlineSprite
	PropStroke
	PropSoftness
	PropTint
	propCount
)

var propertyNames = [propCount]string{
	PropUnified:           "unified",
	PropTopLeftRadius:     "tlRadius",
	PropTopRightRadius:    "trRadius",
	PropBottomLeftRadius:  "blRadius",
	PropBottomRightRadius: "brRadius",
	PropFillEnabled:       "fillEnabled",
	PropFillColor:         "fillColor",
	PropFillSprite:        "fillSprite",
	PropOutlineEnabled:    "outlineEnabled",
	PropOutline:           "outline",
	PropOutlineColor:      "outlineColor",
	PropOutlineSprite:     "outlineSprite",
	PropStroke:            "stroke",
	PropSoftness:          "softness",
	PropTint:              "tintColor",
}

// String returns the stable property name.
func (p Property) String() string {
	if p < propCount {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// Geometric reports whether setting p triggers clamping.
func (p Property) Geometric() bool {
	switch p {
	case PropTopLeftRadius, PropTopRightRadius, PropBottomLeftRadius,
		PropBottomRightRadius, PropOutline, PropStroke, PropSoftness:
		return true
	}
	return false
}

// Properties returns every property in declaration order.
func Properties() []Property {
	out := make([]Property, propCount)
	for i := range out {
		out[i] = Property(i)
	}
	return out
}

// PropertyByName looks up a property by its stable name.
func PropertyByName(name string) (Property, error) {
	for i, n := range propertyNames {
		if n == name {
			return Property(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// Get returns the value of p: bool, float64, RGBA or *Sprite.
func (m *Image) Get(p Property) (any, error) {
	r := &m.params
	switch p {
	case PropUnified:
		return r.Radii.Unified, nil
	case PropTopLeftRadius:
		return r.Radii.TopLeft, nil
	case PropTopRightRadius:
		return r.Radii.TopRight, nil
	case PropBottomLeftRadius:
		return r.Radii.BottomLeft, nil
	case PropBottomRightRadius:
		return r.Radii.BottomRight, nil
	case PropFillEnabled:
		return r.Fill.Enabled, nil
	case PropFillColor:
		return r.Fill.Color, nil
	case PropFillSprite:
		return r.Fill.Sprite, nil
	case PropOutlineEnabled:
		return r.Outline.Enabled, nil
	case PropOutline:
		return r.Outline.Width, nil
	case PropOutlineColor:
		return r.Outline.Color, nil
	case PropOutlineSprite:
		return r.Outline.Sprite, nil
	case PropStroke:
		return r.Stroke.Width, nil
	case PropSoftness:
		return r.Softness, nil
	case PropTint:
		return r.Tint.Color, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownProperty, p)
}

// Set converts v to the type of p and applies it through the matching
// setter. Nothing changes when an error is returned.
func (m *Image) Set(p Property, v any) error {
	nv, err := normalize(p, v)
	if err != nil {
		return err
	}
	m.set(p, nv)
	return nil
}

// set stores an already normalized value and runs one pass: validate and
// sync for geometric properties, sync only for the rest.
func (m *Image) set(p Property, v any) {
	r := &m.params
	switch p {
	case PropUnified:
		r.Radii.Unified = v.(bool)
	case PropTopLeftRadius:
		r.Radii.TopLeft = v.(float64)
	case PropTopRightRadius:
		r.Radii.TopRight = v.(float64)
	case PropBottomLeftRadius:
		r.Radii.BottomLeft = v.(float64)
	case PropBottomRightRadius:
		r.Radii.BottomRight = v.(float64)
	case PropFillEnabled:
		r.Fill.Enabled = v.(bool)
	case PropFillColor:
		r.Fill.Color = v.(RGBA)
	case PropFillSprite:
		r.Fill.Sprite = v.(*Sprite)
	case PropOutlineEnabled:
		r.Outline.Enabled = v.(bool)
	case PropOutline:
		r.Outline.Width = v.(float64)
	case PropOutlineColor:
		r.Outline.Color = v.(RGBA)
	case PropOutlineSprite:
		r.Outline.Sprite = v.(*Sprite)
	case PropStroke:
		r.Stroke.Width = v.(float64)
	case PropSoftness:
		r.Softness = v.(float64)
	case PropTint:
		r.Tint.Color = v.(RGBA)
	default:
		return
	}
	if p.Geometric() {
		m.validateAndSync()
	} else {
		m.sync()
	}
}

// normalize converts v to the canonical Go type of p.
func normalize(p Property, v any) (any, error) {
	switch p {
	case PropUnified, PropFillEnabled, PropOutlineEnabled:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case PropTopLeftRadius, PropTopRightRadius, PropBottomLeftRadius,
		PropBottomRightRadius, PropOutline, PropStroke, PropSoftness:
		if f, ok := toFloat(v); ok {
			return f, nil
		}
	case PropFillColor, PropOutlineColor, PropTint:
		switch c := v.(type) {
		case RGBA:
			return c, nil
		case string:
			parsed, err := ParseColor(c)
			if err != nil {
				return nil, fmt.Errorf("%w: %v: %w", ErrPropertyType, p, err)
			}
			return parsed, nil
		case color.Color:
			return FromColor(c), nil
		}
	case PropFillSprite, PropOutlineSprite:
		switch s := v.(type) {
		case nil:
			return (*Sprite)(nil), nil
		case *Sprite:
			return s, nil
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownProperty, p)
	}
	return nil, fmt.Errorf("%w: %v got %T", ErrPropertyType, p, v)
}

// toFloat converts any Go numeric kind, or a numeric value such as
// json.Number that reports itself through Float64, to float64.
func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	case int8:
		return float64(f), true
	case int16:
		return float64(f), true
	case int32:
		return float64(f), true
	case int64:
		return float64(f), true
	case uint:
		return float64(f), true
	case uint8:
		return float64(f), true
	case uint16:
		return float64(f), true
	case uint32:
		return float64(f), true
	case uint64:
		return float64(f), true
	case interface{ Float64() (float64, error) }:
		n, err := f.Float64()
		return n, err == nil
	}
	return 0, false
}

// Group is a multi-object selection, as edited by an inspector showing
// several elements at once.
type Group []*Image

// Mixed reports whether the members disagree on p (the editor's
// "multiple different values" state).
func (g Group) Mixed(p Property) bool {
	_, ok := g.Value(p)
	return !ok && len(g) > 1
}

// Value returns the shared value of p. ok is false when the group is
// empty, p is unknown, or the members disagree.
func (g Group) Value(p Property) (v any, ok bool) {
	if len(g) == 0 {
		return nil, false
	}
	first, err := g[0].Get(p)
	if err != nil {
		return nil, false
	}
	for _, m := range g[1:] {
		other, _ := m.Get(p)
		if other != first {
			return nil, false
		}
	}
	return first, true
}

// Set applies one value to every member. Each member validates and syncs
// once, in order. A mixed state always resolves to v.
func (g Group) Set(p Property, v any) error {
	nv, err := normalize(p, v)
	if err != nil {
		return err
	}
	for _, m := range g {
		m.set(p, nv)
	}
	return nil
}

// SetAllRadii sets all four corners of every member to v.
func (g Group) SetAllRadii(v float64) {
	for _, m := range g {
		m.SetAllRadii(v)
	}
}
