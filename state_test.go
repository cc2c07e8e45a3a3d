package rounded

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStateRoundTrip(t *testing.T) {
	p := DefaultParams()
	p.Radii = RadiusSet{TopLeft: 1, TopRight: 2, BottomLeft: 3, BottomRight: 4}
	p.Fill.Color = Hex("#336699")
	p.Fill.Sprite = &Sprite{Name: "panel"}
	p.Outline = OutlineSpec{Enabled: true, Width: 2.5, Color: Hex("#ff000080"), Sprite: &Sprite{Name: "frame"}}
	p.Stroke.Width = 1.25
	p.Softness = 0.75
	p.Tint.Color = Hex("#00ff00")

	data, err := MarshalState(StateFromParams(p))
	if err != nil {
		t.Fatalf("MarshalState failed: %v", err)
	}
	s, err := UnmarshalState(data)
	if err != nil {
		t.Fatalf("UnmarshalState failed: %v\n%s", err, data)
	}
	if s.Version != StateVersion {
		t.Errorf("Version = %d, want %d", s.Version, StateVersion)
	}

	got := s.Params(nil)
	if got.Fill.Sprite == nil || got.Fill.Sprite.Name != "panel" {
		t.Errorf("fill sprite = %v, want panel", got.Fill.Sprite)
	}
	if got.Outline.Sprite == nil || got.Outline.Sprite.Name != "frame" {
		t.Errorf("outline sprite = %v, want frame", got.Outline.Sprite)
	}
	got.Fill.Sprite, got.Outline.Sprite = p.Fill.Sprite, p.Outline.Sprite
	if got != p {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, p)
	}
}

func TestMarshalStateKeys(t *testing.T) {
	data, err := MarshalState(State{})
	if err != nil {
		t.Fatalf("MarshalState failed: %v", err)
	}
	text := string(data)
	for _, p := range Properties() {
		if p == PropFillSprite || p == PropOutlineSprite {
			continue
		}
		if !strings.Contains(text, p.String()+":") {
			t.Errorf("missing key %q in:\n%s", p.String(), text)
		}
	}
	if !strings.Contains(text, "version: 1") {
		t.Errorf("missing version in:\n%s", text)
	}
	if strings.Contains(text, "fillSprite") {
		t.Error("empty sprite should be omitted")
	}
}

func TestUnmarshalStateDefaults(t *testing.T) {
	for _, doc := range []string{"", "version: 1\n", "softness: 0.5\n"} {
		s, err := UnmarshalState([]byte(doc))
		if err != nil {
			t.Fatalf("UnmarshalState(%q) failed: %v", doc, err)
		}
		if got := s.Params(nil); got != DefaultParams() {
			t.Errorf("UnmarshalState(%q) = %+v, want defaults", doc, got)
		}
	}
}

func TestUnmarshalStateLegacy(t *testing.T) {
	doc := `
unified: false
tlRadius: 8
tint: "#ff0000"
outline: true
outlineSize: 6
`
	s, err := UnmarshalState([]byte(doc))
	if err != nil {
		t.Fatalf("UnmarshalState failed: %v", err)
	}
	if s.FillColor != Red {
		t.Errorf("FillColor = %v, want red (migrated from tint)", s.FillColor)
	}
	if !s.OutlineEnabled {
		t.Error("OutlineEnabled should be migrated from outline")
	}
	if s.Outline != 6 {
		t.Errorf("Outline = %v, want 6 (migrated from outlineSize)", s.Outline)
	}
	if s.TopLeft != 8 || s.Unified {
		t.Errorf("radii = %v unified=%v, want 8 per-corner", s.TopLeft, s.Unified)
	}
	if s.Tint != White {
		t.Errorf("Tint = %v, want default white", s.Tint)
	}
}

func TestUnmarshalStateLegacyNewNameWins(t *testing.T) {
	doc := `
tint: "#ff0000"
fillColor: "#0000ff"
`
	s, err := UnmarshalState([]byte(doc))
	if err != nil {
		t.Fatalf("UnmarshalState failed: %v", err)
	}
	if s.FillColor != Blue {
		t.Errorf("FillColor = %v, want blue", s.FillColor)
	}
}

func TestUnmarshalStateCurrentNotMigrated(t *testing.T) {
	doc := `
version: 1
outline: 3
outlineEnabled: false
`
	s, err := UnmarshalState([]byte(doc))
	if err != nil {
		t.Fatalf("UnmarshalState failed: %v", err)
	}
	if s.Outline != 3 || s.OutlineEnabled {
		t.Errorf("outline = %v enabled=%v, want 3 disabled", s.Outline, s.OutlineEnabled)
	}
}

func TestUnmarshalStateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"sequence", "- 1\n- 2\n", ErrInvalidState},
		{"scalar", "hello\n", ErrInvalidState},
		{"bad version", "version: x\n", ErrInvalidState},
		{"bad color", "fillColor: nope\n", ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalState([]byte(tt.doc)); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := UnmarshalState([]byte("a: [")); err == nil {
		t.Error("expected syntax error")
	}
}

func TestColorYAML(t *testing.T) {
	tests := []struct {
		doc  string
		want RGBA
	}{
		{`"#ff0000"`, Red},
		{`blue`, Blue},
		{`transparent`, Transparent},
		{`[0, 1, 0]`, Green},
		{`[1, 1, 1, 0.5]`, RGBA2(1, 1, 1, 0.5)},
	}
	for _, tt := range tests {
		var c RGBA
		if err := yaml.Unmarshal([]byte(tt.doc), &c); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", tt.doc, err)
		}
		if c != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.doc, c, tt.want)
		}
	}

	var c RGBA
	if err := yaml.Unmarshal([]byte(`[1, 2]`), &c); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("two components error = %v, want ErrInvalidColor", err)
	}

	out, err := yaml.Marshal(Hex("#11223344"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(out), "#11223344") {
		t.Errorf("Marshal = %s, want #11223344", out)
	}
	var back RGBA
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal(%s) failed: %v", out, err)
	}
	if back != Hex("#11223344") {
		t.Errorf("round trip = %v, want #11223344", back)
	}
}

func TestImageApplyState(t *testing.T) {
	img, _, rec := newTestImage(t, 40, 40)
	s := StateFromParams(DefaultParams())
	s.Unified = false
	s.TopRight = 100
	s.FillSprite = "known"
	s.OutlineSprite = "missing"
	rec.Reset()

	resolve := func(name string) *Sprite {
		if name == "known" {
			return &Sprite{Name: name, Texture: "tex"}
		}
		return nil
	}
	img.ApplyState(s, resolve)

	if got := img.TopRightRadius(); got != 20 {
		t.Errorf("TopRightRadius() = %v, want 20 (clamped)", got)
	}
	if sp := img.FillSprite(); sp == nil || sp.Texture != "tex" {
		t.Errorf("FillSprite() = %v, want resolved sprite", sp)
	}
	if sp := img.OutlineSprite(); sp == nil || sp.Name != "missing" || sp.Texture != nil {
		t.Errorf("OutlineSprite() = %v, want unresolved named sprite", sp)
	}
	if rec.Count("_Radii") != 1 {
		t.Error("ApplyState should sync once")
	}

	if got := img.State(); got.TopRight != 20 || got.FillSprite != "known" {
		t.Errorf("State() = %+v", got)
	}
}

func TestMigrationsCopy(t *testing.T) {
	m := Migrations()
	if len(m) != 3 {
		t.Fatalf("len(Migrations()) = %d, want 3", len(m))
	}
	m[0].From = "changed"
	if Migrations()[0].From != "tint" {
		t.Error("Migrations() should return a copy")
	}
}
