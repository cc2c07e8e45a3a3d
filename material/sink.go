package material

// Texture is an opaque texture handle. The material package never looks
// inside it; a GPU host typically stores a hal.TextureView or a
// gpucontext.Texture here. A nil Texture means "no texture bound".
type Texture any

// Vec4 is a four-component float vector as seen by the shader.
type Vec4 [4]float32

// Color is a straight-alpha color with float32 components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Clear is fully transparent black.
var Clear = Color{}

// Sink receives named uniform writes.
//
// Implementations must no-op on names they do not support.
type Sink interface {
	SetVector(name string, v Vec4)
	SetFloat(name string, v float32)
	SetColor(name string, c Color)
	SetTexture(name string, t Texture)
}

// Kind identifies the value type carried by a Uniform.
type Kind uint8

const (
	// KindVector is a Vec4 value.
	KindVector Kind = iota
	// KindFloat is a scalar value.
	KindFloat
	// KindColor is a Color value.
	KindColor
	// KindTexture is a Texture handle.
	KindTexture
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindFloat:
		return "float"
	case KindColor:
		return "color"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// Uniform is one named write. Only the field matching Kind is meaningful.
type Uniform struct {
	Name    string
	Kind    Kind
	Vector  Vec4
	Float   float32
	Color   Color
	Texture Texture
}

// VectorUniform returns a vector write.
func VectorUniform(name string, v Vec4) Uniform {
	return Uniform{Name: name, Kind: KindVector, Vector: v}
}

// FloatUniform returns a scalar write.
func FloatUniform(name string, v float32) Uniform {
	return Uniform{Name: name, Kind: KindFloat, Float: v}
}

// ColorUniform returns a color write.
func ColorUniform(name string, c Color) Uniform {
	return Uniform{Name: name, Kind: KindColor, Color: c}
}

// TextureUniform returns a texture write. t may be nil.
func TextureUniform(name string, t Texture) Uniform {
	return Uniform{Name: name, Kind: KindTexture, Texture: t}
}

// Apply writes every uniform to s in order.
func Apply(s Sink, uniforms []Uniform) {
	for i := range uniforms {
		u := &uniforms[i]
		switch u.Kind {
		case KindVector:
			s.SetVector(u.Name, u.Vector)
		case KindFloat:
			s.SetFloat(u.Name, u.Float)
		case KindColor:
			s.SetColor(u.Name, u.Color)
		case KindTexture:
			s.SetTexture(u.Name, u.Texture)
		}
	}
}

// Multi fans every write out to each of its sinks, in order.
type Multi []Sink

// SetVector implements Sink.
func (m Multi) SetVector(name string, v Vec4) {
	for _, s := range m {
		s.SetVector(name, v)
	}
}

// SetFloat implements Sink.
func (m Multi) SetFloat(name string, v float32) {
	for _, s := range m {
		s.SetFloat(name, v)
	}
}

// SetColor implements Sink.
func (m Multi) SetColor(name string, c Color) {
	for _, s := range m {
		s.SetColor(name, c)
	}
}

// SetTexture implements Sink.
func (m Multi) SetTexture(name string, t Texture) {
	for _, s := range m {
		s.SetTexture(name, t)
	}
}
