package material

// Uniform names understood by the rounded shaders.
const (
	Radii          = "_Radii"
	Size           = "_Size"
	Softness       = "_Softness"
	BaseColor      = "_Color"
	FillColor      = "_FillColor"
	FillTexture    = "_MainTex"
	Outline        = "_Outline"
	OutlineColor   = "_OutlineColor"
	OutlineTexture = "_OutlineTexture"
	Stroke         = "_Stroke"
	OutlineEnabled = "_OutlineEnabled"
	OutlineWidth   = "_OutlineWidth"
	Tint           = "_Tint"
)
