package rounded

import "github.com/gogpu/gg-rounded/material"

// Base is what the host surface contributes to every sync: its own color
// and primary texture.
type Base struct {
	Color   RGBA
	Texture material.Texture
}

// Sync translates validated parameters into the ordered uniform writes of
// variant v. The order is fixed per variant:
//
//	_Radii
//	_FillColor, _MainTex                          (CapFill)
//	_Outline, _OutlineColor, _OutlineTexture      (CapOutline)
//	_Stroke                                       (CapStroke)
//	_OutlineEnabled, _OutlineWidth,
//	_OutlineColor, _OutlineTexture                (CapOutlineFlag)
//	_Tint                                         (CapTint)
//	_Size, _Softness, _Color
//
// Sync does not clamp; callers pass the output of Validate.
func Sync(p Params, e Extent, base Base, v Variant) []material.Uniform {
	out := make([]material.Uniform, 0, 12)

	out = append(out, material.VectorUniform(material.Radii, v.Corners.Pack(p.Radii.Effective())))

	if v.Caps.Has(CapFill) {
		fill := Transparent
		if p.Fill.Enabled {
			fill = p.Fill.Color
		}
		tex := p.Fill.Sprite.Handle()
		if tex == nil {
			tex = base.Texture
		}
		out = append(out,
			material.ColorUniform(material.FillColor, fill.material()),
			material.TextureUniform(material.FillTexture, tex),
		)
	}

	outlineFlag := v.Caps.Has(CapOutlineFlag)
	if v.Caps.Has(CapOutline) && !outlineFlag {
		var width float64
		if p.Outline.Enabled {
			width = p.Outline.Width
		}
		out = append(out,
			material.FloatUniform(material.Outline, float32(width)),
			material.ColorUniform(material.OutlineColor, p.Outline.Color.material()),
			material.TextureUniform(material.OutlineTexture, p.Outline.Sprite.Handle()),
		)
	}

	if v.Caps.Has(CapStroke) {
		width := p.Stroke.Width
		if p.Outline.Enabled && !outlineFlag {
			width = p.Outline.Width
		}
		out = append(out, material.FloatUniform(material.Stroke, float32(width)))
	}

	if outlineFlag {
		var enabled float32
		if p.Outline.Enabled {
			enabled = 1
		}
		out = append(out,
			material.FloatUniform(material.OutlineEnabled, enabled),
			material.FloatUniform(material.OutlineWidth, float32(p.Outline.Width)),
			material.ColorUniform(material.OutlineColor, p.Outline.Color.material()),
			material.TextureUniform(material.OutlineTexture, p.Outline.Sprite.Handle()),
		)
	}

	if v.Caps.Has(CapTint) {
		out = append(out, material.ColorUniform(material.Tint, p.Tint.Color.material()))
	}

	out = append(out,
		material.VectorUniform(material.Size, material.Vec4{float32(e.Width), float32(e.Height)}),
		material.FloatUniform(material.Softness, float32(p.Softness)),
		material.ColorUniform(material.BaseColor, base.Color.material()),
	)
	return out
}
