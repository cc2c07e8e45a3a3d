package rounded

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg-rounded/material"
)

// ErrUnknownVariant is returned by VariantByName for unregistered names.
var ErrUnknownVariant = errors.New("rounded: unknown variant")

// Capability is a set of optional uniform groups a shader variant reads.
type Capability uint32

const (
	// CapFill writes _FillColor and _MainTex.
	CapFill Capability = 1 << iota
	// CapOutline writes _Outline (outline width, 0 when disabled),
	// _OutlineColor and _OutlineTexture. The outline fully replaces stroke.
	CapOutline
	// CapStroke writes _Stroke. Without CapOutlineFlag an enabled outline
	// supersedes the plain stroke width.
	CapStroke
	// CapOutlineFlag writes _OutlineEnabled, _OutlineWidth, _OutlineColor
	// and _OutlineTexture in parallel with the plain _Stroke. It takes
	// precedence over CapOutline.
	CapOutlineFlag
	// CapTint writes _Tint.
	CapTint
)

// Has reports whether all bits of o are set in c.
func (c Capability) Has(o Capability) bool { return c&o == o }

// CornerOrder is the packing of the four radii into the _Radii vector.
type CornerOrder uint8

const (
	// CornersBLTLBRTR packs (bottom-left, top-left, bottom-right, top-right).
	// This is the frozen order of the rounded-image shader contract.
	CornersBLTLBRTR CornerOrder = iota
	// CornersBLTLTRBR packs (bottom-left, top-left, top-right, bottom-right).
	// None of the built-in variants use it; it serves custom variants whose
	// shader reads that layout. material.Block and gpu expect CornersBLTLBRTR.
	CornersBLTLTRBR
)

// Pack arranges radii indexed by Corner into the shader vector.
func (o CornerOrder) Pack(r [4]float64) material.Vec4 {
	bl, tl := float32(r[BottomLeft]), float32(r[TopLeft])
	tr, br := float32(r[TopRight]), float32(r[BottomRight])
	if o == CornersBLTLTRBR {
		return material.Vec4{bl, tl, tr, br}
	}
	return material.Vec4{bl, tl, br, tr}
}

// String returns the order as corner initials.
func (o CornerOrder) String() string {
	if o == CornersBLTLTRBR {
		return "bl,tl,tr,br"
	}
	return "bl,tl,br,tr"
}

// Variant describes one shader contract: which uniforms it reads and how
// it packs the corner radii.
type Variant struct {
	Name    string
	Corners CornerOrder
	Caps    Capability
}

// Built-in variants.
var (
	// ImageVariant is the rounded image shader: fill plus an outline that
	// replaces the stroke.
	ImageVariant = Variant{Name: "rounded-image", Corners: CornersBLTLBRTR, Caps: CapFill | CapOutline}

	// StrokeVariant draws a tinted border only; it never writes _FillColor,
	// so the interior stays at the sink's default. An enabled outline
	// overrides the stroke width.
	StrokeVariant = Variant{Name: "rounded-stroke", Corners: CornersBLTLBRTR, Caps: CapStroke | CapTint}

	// LayeredVariant exposes fill, plain stroke, tint and a flagged
	// outline side by side.
	LayeredVariant = Variant{
		Name:    "rounded-layered",
		Corners: CornersBLTLBRTR,
		Caps:    CapFill | CapStroke | CapOutlineFlag | CapTint,
	}
)

// Variants returns the built-in variants.
func Variants() []Variant {
	return []Variant{ImageVariant, StrokeVariant, LayeredVariant}
}

// VariantByName returns the built-in variant with the given name.
func VariantByName(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
