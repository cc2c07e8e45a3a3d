package rounded

import (
	"testing"

	"github.com/gogpu/gg-rounded/material"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.variant != ImageVariant {
		t.Errorf("default variant = %v, want %v", o.variant.Name, ImageVariant.Name)
	}
	if o.params != DefaultParams() {
		t.Errorf("default params = %+v, want DefaultParams()", o.params)
	}
	if o.logger != nil {
		t.Error("default logger should be nil (package logger)")
	}
}

func TestWithVariant(t *testing.T) {
	rec := &material.Recorder{}
	img, err := New(NewBasicSurface(100, 100), rec, WithVariant(StrokeVariant))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if img.Variant() != StrokeVariant {
		t.Errorf("Variant() = %v, want %v", img.Variant().Name, StrokeVariant.Name)
	}
	if rec.Count(material.Stroke) != 1 {
		t.Error("stroke variant should write _Stroke")
	}
	if rec.Count(material.FillColor) != 0 {
		t.Error("stroke variant should not write _FillColor")
	}
}

func TestWithParams(t *testing.T) {
	p := DefaultParams()
	p.Radii.SetAll(80)
	p.Softness = 3

	img, err := New(NewBasicSurface(100, 60), &material.Recorder{}, WithParams(p))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Initial params are validated against the surface before the first sync.
	if got := img.Radius(); got != 30 {
		t.Errorf("Radius() = %v, want 30", got)
	}
	if got := img.Softness(); got != 3 {
		t.Errorf("Softness() = %v, want 3", got)
	}
}

func TestOptionsLastWins(t *testing.T) {
	img, err := New(NewBasicSurface(10, 10), &material.Recorder{},
		WithVariant(StrokeVariant),
		WithVariant(LayeredVariant),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if img.Variant() != LayeredVariant {
		t.Errorf("Variant() = %v, want %v", img.Variant().Name, LayeredVariant.Name)
	}
}
