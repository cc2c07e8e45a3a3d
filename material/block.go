package material

import (
	"encoding/binary"
	"math"
)

// BlockSize is the byte size of the packed uniform block.
//
// WGSL layout (std140-compatible):
//
//	radii               vec4<f32>  offset   0
//	size                vec2<f32>  offset  16
//	softness            f32        offset  24
//	outline             f32        offset  28  (_Outline or _Stroke)
//	color               vec4<f32>  offset  32
//	fill_color          vec4<f32>  offset  48
//	outline_color       vec4<f32>  offset  64
//	tint                vec4<f32>  offset  80
//	outline_width       f32        offset  96
//	outline_enabled     f32        offset 100
//	has_fill_texture    f32        offset 104
//	has_outline_texture f32        offset 108
const BlockSize = 112

// Field describes where a named uniform lives inside the block.
type Field struct {
	Name string
	Kind Kind
	// Offset is the byte offset of the value. For KindTexture fields it
	// is the offset of the f32 "has texture" flag.
	Offset int
	// Components is the number of f32 values stored (1-4).
	Components int
}

// Layout is the frozen field table of the block.
var Layout = []Field{
	{Name: Radii, Kind: KindVector, Offset: 0, Components: 4},
	{Name: Size, Kind: KindVector, Offset: 16, Components: 2},
	{Name: Softness, Kind: KindFloat, Offset: 24, Components: 1},
	{Name: Outline, Kind: KindFloat, Offset: 28, Components: 1},
	{Name: Stroke, Kind: KindFloat, Offset: 28, Components: 1},
	{Name: BaseColor, Kind: KindColor, Offset: 32, Components: 4},
	{Name: FillColor, Kind: KindColor, Offset: 48, Components: 4},
	{Name: OutlineColor, Kind: KindColor, Offset: 64, Components: 4},
	{Name: Tint, Kind: KindColor, Offset: 80, Components: 4},
	{Name: OutlineWidth, Kind: KindFloat, Offset: 96, Components: 1},
	{Name: OutlineEnabled, Kind: KindFloat, Offset: 100, Components: 1},
	{Name: FillTexture, Kind: KindTexture, Offset: 104, Components: 1},
	{Name: OutlineTexture, Kind: KindTexture, Offset: 108, Components: 1},
}

// LookupField returns the layout entry for name.
func LookupField(name string) (Field, bool) {
	for _, f := range Layout {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Block is a Sink that packs writes into the uniform block byte layout.
// Texture handles are kept alongside the bytes; only their presence flag
// is part of the block.
//
// Block is not safe for concurrent use.
type Block struct {
	data     [BlockSize]byte
	textures map[string]Texture
	dirty    bool
}

// NewBlock returns a block whose outline and tint colors are opaque white
// and whose fill is transparent, so variants that never write the fill
// draw a hollow border and variants that never write the tint render
// untinted.
func NewBlock() *Block {
	b := &Block{textures: make(map[string]Texture, 2)}
	white := Color{R: 1, G: 1, B: 1, A: 1}
	b.SetColor(OutlineColor, white)
	b.SetColor(Tint, white)
	b.dirty = true
	return b
}

// SetVector implements Sink.
func (b *Block) SetVector(name string, v Vec4) {
	f, ok := LookupField(name)
	if !ok || f.Kind != KindVector {
		return
	}
	for i := 0; i < f.Components; i++ {
		b.putFloat(f.Offset+4*i, v[i])
	}
}

// SetFloat implements Sink.
func (b *Block) SetFloat(name string, v float32) {
	f, ok := LookupField(name)
	if !ok || f.Kind != KindFloat {
		return
	}
	b.putFloat(f.Offset, v)
}

// SetColor implements Sink.
func (b *Block) SetColor(name string, c Color) {
	f, ok := LookupField(name)
	if !ok || f.Kind != KindColor {
		return
	}
	b.putFloat(f.Offset, c.R)
	b.putFloat(f.Offset+4, c.G)
	b.putFloat(f.Offset+8, c.B)
	b.putFloat(f.Offset+12, c.A)
}

// SetTexture implements Sink.
func (b *Block) SetTexture(name string, t Texture) {
	f, ok := LookupField(name)
	if !ok || f.Kind != KindTexture {
		return
	}
	if b.textures == nil {
		b.textures = make(map[string]Texture, 2)
	}
	if t == nil {
		delete(b.textures, name)
		b.putFloat(f.Offset, 0)
		return
	}
	b.textures[name] = t
	b.putFloat(f.Offset, 1)
}

func (b *Block) putFloat(offset int, v float32) {
	bits := math.Float32bits(v)
	if binary.LittleEndian.Uint32(b.data[offset:]) == bits {
		return
	}
	binary.LittleEndian.PutUint32(b.data[offset:], bits)
	b.dirty = true
}

// Float reads the f32 stored at the given byte offset.
func (b *Block) Float(offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.data[offset:]))
}

// Texture returns the texture bound to name, or nil.
func (b *Block) Texture(name string) Texture {
	return b.textures[name]
}

// Bytes returns a copy of the packed block.
func (b *Block) Bytes() []byte {
	out := make([]byte, BlockSize)
	copy(out, b.data[:])
	return out
}

// Dirty reports whether the bytes changed since the last ClearDirty.
func (b *Block) Dirty() bool { return b.dirty }

// ClearDirty marks the current bytes as uploaded.
func (b *Block) ClearDirty() { b.dirty = false }
