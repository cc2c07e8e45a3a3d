package rounded

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gg-rounded/material"
)

func newTestImage(t *testing.T, w, h float64, opts ...Option) (*Image, *BasicSurface, *material.Recorder) {
	t.Helper()
	surface := NewBasicSurface(w, h)
	rec := &material.Recorder{}
	img, err := New(surface, rec, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return img, surface, rec
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, &material.Recorder{}); !errors.Is(err, ErrNilSurface) {
		t.Errorf("New(nil surface) error = %v, want ErrNilSurface", err)
	}
	if _, err := New(NewBasicSurface(1, 1), nil); !errors.Is(err, ErrNilSink) {
		t.Errorf("New(nil sink) error = %v, want ErrNilSink", err)
	}
}

func TestNewSyncsOnce(t *testing.T) {
	img, _, rec := newTestImage(t, 100, 50)
	if rec.Count(material.Radii) != 1 {
		t.Errorf("_Radii written %d times, want 1", rec.Count(material.Radii))
	}
	if !reflect.DeepEqual(rec.Writes(), img.Uniforms()) {
		t.Error("initial sync should match Uniforms()")
	}
	size, ok := rec.Last(material.Size)
	if !ok || size.Vector != (material.Vec4{100, 50, 0, 0}) {
		t.Errorf("_Size = %v, want (100, 50)", size.Vector)
	}
}

func TestImageClampExample(t *testing.T) {
	img, _, rec := newTestImage(t, 100, 40)
	img.SetUnified(false)

	img.SetTopLeftRadius(999)
	if got := img.TopLeftRadius(); got != 20 {
		t.Errorf("TopLeftRadius() = %v, want 20", got)
	}
	img.SetSoftness(500)
	if got := img.Softness(); got != 40 {
		t.Errorf("Softness() = %v, want 40", got)
	}
	img.SetStroke(25)
	if got := img.Stroke(); got != 20 {
		t.Errorf("Stroke() = %v, want 20", got)
	}
	img.SetOutlineWidth(-3)
	if got := img.OutlineWidth(); got != 0 {
		t.Errorf("OutlineWidth() = %v, want 0", got)
	}

	soft, _ := rec.Last(material.Softness)
	if soft.Float != 40 {
		t.Errorf("_Softness = %v, want 40", soft.Float)
	}
}

func TestImageDegenerateExtent(t *testing.T) {
	img, surface, rec := newTestImage(t, 0, 0)
	img.SetUnified(false)

	img.SetTopLeftRadius(50)
	if got := img.TopLeftRadius(); got != 50 {
		t.Fatalf("TopLeftRadius() = %v, want 50 (unclamped)", got)
	}

	surface.Resize(100, 100)
	if got := img.TopLeftRadius(); got != 50 {
		t.Errorf("after resize to 100x100 TopLeftRadius() = %v, want 50", got)
	}

	surface.Resize(60, 60)
	if got := img.TopLeftRadius(); got != 30 {
		t.Errorf("after resize to 60x60 TopLeftRadius() = %v, want 30", got)
	}

	radii, _ := rec.Last(material.Radii)
	if radii.Vector[1] != 30 {
		t.Errorf("_Radii top-left = %v, want 30", radii.Vector[1])
	}
	size, _ := rec.Last(material.Size)
	if size.Vector != (material.Vec4{60, 60, 0, 0}) {
		t.Errorf("_Size = %v, want (60, 60)", size.Vector)
	}
}

func TestSetAllRadiiSinglePass(t *testing.T) {
	img, _, rec := newTestImage(t, 200, 200)
	img.SetUnified(false)
	rec.Reset()

	img.SetAllRadii(12)

	for _, c := range []Corner{TopLeft, TopRight, BottomLeft, BottomRight} {
		if got := img.CornerRadius(c); got != 12 {
			t.Errorf("CornerRadius(%v) = %v, want 12", c, got)
		}
	}
	if n := rec.Count(material.Radii); n != 1 {
		t.Fatalf("_Radii written %d times, want 1", n)
	}
	radii, _ := rec.Last(material.Radii)
	if radii.Vector != (material.Vec4{12, 12, 12, 12}) {
		t.Errorf("_Radii = %v, want all 12", radii.Vector)
	}
}

func TestUnifiedRoundTrip(t *testing.T) {
	img, _, rec := newTestImage(t, 200, 200)
	img.SetUnified(false)
	img.SetTopLeftRadius(1)
	img.SetTopRightRadius(2)
	img.SetBottomLeftRadius(3)
	img.SetBottomRightRadius(4)

	img.SetUnified(true)
	if img.Mode() != ModeUnified {
		t.Errorf("Mode() = %v, want unified", img.Mode())
	}
	radii, _ := rec.Last(material.Radii)
	if radii.Vector != (material.Vec4{1, 1, 1, 1}) {
		t.Errorf("unified _Radii = %v, want top-left broadcast", radii.Vector)
	}

	img.SetUnified(false)
	want := []float64{1, 2, 3, 4}
	got := []float64{img.TopLeftRadius(), img.TopRightRadius(), img.BottomLeftRadius(), img.BottomRightRadius()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("per-corner radii = %v, want %v", got, want)
	}
	radii, _ = rec.Last(material.Radii)
	if radii.Vector != (material.Vec4{3, 1, 4, 2}) {
		t.Errorf("per-corner _Radii = %v, want (bl, tl, br, tr) = (3, 1, 4, 2)", radii.Vector)
	}
}

func TestFillDisabledSendsTransparent(t *testing.T) {
	img, _, rec := newTestImage(t, 50, 50)
	img.SetFillColor(Red)
	img.SetFillEnabled(false)

	fill, _ := rec.Last(material.FillColor)
	if fill.Color != material.Clear {
		t.Errorf("_FillColor = %v, want transparent", fill.Color)
	}
	if img.FillColor() != Red {
		t.Errorf("FillColor() = %v, want stored red", img.FillColor())
	}

	img.SetFillEnabled(true)
	fill, _ = rec.Last(material.FillColor)
	if fill.Color != (material.Color{R: 1, A: 1}) {
		t.Errorf("_FillColor = %v, want red", fill.Color)
	}
}

func TestExtentChangeMatchesSetterPath(t *testing.T) {
	// Both mutation paths run the same validate and sync pipeline.
	a, surfaceA, recA := newTestImage(t, 80, 80)
	b, _, recB := newTestImage(t, 40, 40)

	a.SetAllRadii(30)
	b.SetAllRadii(30)
	recA.Reset()
	recB.Reset()

	surfaceA.Resize(40, 40)
	b.Refresh()

	if a.Params() != b.Params() {
		t.Errorf("params differ: %+v vs %+v", a.Params(), b.Params())
	}
	if !reflect.DeepEqual(recA.Writes(), recB.Writes()) {
		t.Errorf("writes differ:\n%v\n%v", recA.Names(), recB.Names())
	}
}

func TestEverySetterSyncsOnce(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Image)
	}{
		{"SetUnified", func(m *Image) { m.SetUnified(false) }},
		{"SetAllRadii", func(m *Image) { m.SetAllRadii(5) }},
		{"SetTopLeftRadius", func(m *Image) { m.SetTopLeftRadius(5) }},
		{"SetTopRightRadius", func(m *Image) { m.SetTopRightRadius(5) }},
		{"SetBottomLeftRadius", func(m *Image) { m.SetBottomLeftRadius(5) }},
		{"SetBottomRightRadius", func(m *Image) { m.SetBottomRightRadius(5) }},
		{"SetSoftness", func(m *Image) { m.SetSoftness(2) }},
		{"SetStroke", func(m *Image) { m.SetStroke(2) }},
		{"SetOutlineEnabled", func(m *Image) { m.SetOutlineEnabled(true) }},
		{"SetOutlineWidth", func(m *Image) { m.SetOutlineWidth(2) }},
		{"SetOutlineColor", func(m *Image) { m.SetOutlineColor(Blue) }},
		{"SetOutlineSprite", func(m *Image) { m.SetOutlineSprite(&Sprite{Name: "o"}) }},
		{"SetFillEnabled", func(m *Image) { m.SetFillEnabled(false) }},
		{"SetFillColor", func(m *Image) { m.SetFillColor(Green) }},
		{"SetFillSprite", func(m *Image) { m.SetFillSprite(&Sprite{Name: "f"}) }},
		{"SetTint", func(m *Image) { m.SetTint(Red) }},
		{"SetVariant", func(m *Image) { m.SetVariant(LayeredVariant) }},
		{"SetParams", func(m *Image) { m.SetParams(DefaultParams()) }},
		{"Update", func(m *Image) { m.Update(func(p *Params) { p.Softness = 1; p.Stroke.Width = 2 }) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _, rec := newTestImage(t, 100, 100)
			rec.Reset()
			tt.set(img)
			if n := rec.Count(material.Radii); n != 1 {
				t.Errorf("_Radii written %d times, want 1", n)
			}
			if n := rec.Count(material.Size); n != 1 {
				t.Errorf("_Size written %d times, want 1", n)
			}
		})
	}
}

func TestSurfaceBaseReachesSink(t *testing.T) {
	img, surface, rec := newTestImage(t, 10, 10)
	surface.SetColor(Blue)
	surface.SetMainTexture("main")
	img.Refresh()

	base, _ := rec.Last(material.BaseColor)
	if base.Color != (material.Color{B: 1, A: 1}) {
		t.Errorf("_Color = %v, want blue", base.Color)
	}
	tex, _ := rec.Last(material.FillTexture)
	if tex.Texture != "main" {
		t.Errorf("_MainTex = %v, want surface texture", tex.Texture)
	}

	img.SetFillSprite(&Sprite{Name: "sprite", Texture: "sprite-tex"})
	tex, _ = rec.Last(material.FillTexture)
	if tex.Texture != "sprite-tex" {
		t.Errorf("_MainTex = %v, want fill sprite texture", tex.Texture)
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	img, surface, rec := newTestImage(t, 100, 100)
	if surface.Listeners() != 1 {
		t.Fatalf("Listeners() = %d, want 1", surface.Listeners())
	}
	img.Close()
	img.Close()
	if surface.Listeners() != 0 {
		t.Errorf("Listeners() = %d after Close, want 0", surface.Listeners())
	}

	rec.Reset()
	surface.Resize(10, 10)
	if rec.Len() != 0 {
		t.Errorf("closed image wrote %d uniforms on resize", rec.Len())
	}

	// The image stays usable and picks up the new extent on demand.
	img.ExtentChanged()
	if got := img.Extent(); got != (Extent{Width: 10, Height: 10}) {
		t.Errorf("Extent() = %v, want 10x10", got)
	}
	if rec.Count(material.Radii) != 1 {
		t.Error("ExtentChanged should sync once")
	}
}

// staticSurface does not implement ExtentNotifier.
type staticSurface struct{ e Extent }

func (s staticSurface) Extent() Extent                { return s.e }
func (s staticSurface) Color() RGBA                   { return White }
func (s staticSurface) MainTexture() material.Texture { return nil }

func TestStaticSurface(t *testing.T) {
	rec := &material.Recorder{}
	img, err := New(staticSurface{e: Extent{Width: 20, Height: 20}}, rec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	img.Close()
	img.SetAllRadii(50)
	if got := img.Radius(); got != 10 {
		t.Errorf("Radius() = %v, want 10", got)
	}
}

func TestImageWithMultiSink(t *testing.T) {
	a, b := &material.Recorder{}, &material.Recorder{}
	img, err := New(NewBasicSurface(30, 30), material.Multi{a, b})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	img.SetTint(Red)
	if !reflect.DeepEqual(a.Writes(), b.Writes()) {
		t.Error("Multi sinks should observe identical writes")
	}
}

func TestSetCornerRadiusInvalidCorner(t *testing.T) {
	img, _, rec := newTestImage(t, 100, 100)
	img.SetUnified(false)
	img.SetAllRadii(7)
	before := img.Params()
	rec.Reset()

	img.SetCornerRadius(Corner(9), 40)

	if img.Params() != before {
		t.Errorf("params changed: %+v, want %+v", img.Params(), before)
	}
	if rec.Len() != 0 {
		t.Errorf("invalid corner synced %d writes, want 0", rec.Len())
	}
	if got := img.CornerRadius(Corner(9)); got != 0 {
		t.Errorf("CornerRadius(9) = %v, want 0", got)
	}
	if Corner(9).Valid() || !BottomRight.Valid() {
		t.Error("Valid should accept exactly the four corners")
	}

	var r RadiusSet
	r.Set(Corner(4), 3)
	if r != (RadiusSet{}) {
		t.Errorf("RadiusSet.Set(invalid) changed the set: %+v", r)
	}
}
