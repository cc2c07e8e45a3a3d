package rounded

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StateVersion is the persisted state format written by MarshalState.
// Documents with a lower (or missing) version go through Migrations.
const StateVersion = 1

// ErrInvalidState is returned for documents that are not a YAML mapping.
var ErrInvalidState = errors.New("rounded: invalid state document")

// State is the persisted form of Params. Every field is stored as its
// primitive type under the stable property name; sprites are stored by
// name.
type State struct {
	Version        int     `yaml:"version"`
	Unified        bool    `yaml:"unified"`
	TopLeft        float64 `yaml:"tlRadius"`
	TopRight       float64 `yaml:"trRadius"`
	BottomLeft     float64 `yaml:"blRadius"`
	BottomRight    float64 `yaml:"brRadius"`
	FillEnabled    bool    `yaml:"fillEnabled"`
	FillColor      RGBA    `yaml:"fillColor"`
	FillSprite     string  `yaml:"fillSprite,omitempty"`
	OutlineEnabled bool    `yaml:"outlineEnabled"`
	Outline        float64 `yaml:"outline"`
	OutlineColor   RGBA    `yaml:"outlineColor"`
	OutlineSprite  string  `yaml:"outlineSprite,omitempty"`
	Stroke         float64 `yaml:"stroke"`
	Softness       float64 `yaml:"softness"`
	Tint           RGBA    `yaml:"tintColor"`
}

// Migration renames one persisted field.
type Migration struct {
	From, To string
}

// migrations is applied in order, so a name freed by one step can be
// reused by a later one.
var migrations = []Migration{
	{From: "tint", To: "fillColor"},
	{From: "outline", To: "outlineEnabled"},
	{From: "outlineSize", To: "outline"},
}

// Migrations returns the field rename table applied to legacy documents.
func Migrations() []Migration {
	out := make([]Migration, len(migrations))
	copy(out, migrations)
	return out
}

// SpriteResolver maps a persisted sprite name to a sprite with a texture.
// Returning nil keeps an unresolved sprite carrying only the name.
type SpriteResolver func(name string) *Sprite

// StateFromParams captures p for persistence.
func StateFromParams(p Params) State {
	return State{
		Version:        StateVersion,
		Unified:        p.Radii.Unified,
		TopLeft:        p.Radii.TopLeft,
		TopRight:       p.Radii.TopRight,
		BottomLeft:     p.Radii.BottomLeft,
		BottomRight:    p.Radii.BottomRight,
		FillEnabled:    p.Fill.Enabled,
		FillColor:      p.Fill.Color,
		FillSprite:     spriteName(p.Fill.Sprite),
		OutlineEnabled: p.Outline.Enabled,
		Outline:        p.Outline.Width,
		OutlineColor:   p.Outline.Color,
		OutlineSprite:  spriteName(p.Outline.Sprite),
		Stroke:         p.Stroke.Width,
		Softness:       p.Softness,
		Tint:           p.Tint.Color,
	}
}

// Params converts the state back to parameters, resolving sprite names
// through resolve (which may be nil).
func (s State) Params(resolve SpriteResolver) Params {
	return Params{
		Radii: RadiusSet{
			TopLeft:     s.TopLeft,
			TopRight:    s.TopRight,
			BottomLeft:  s.BottomLeft,
			BottomRight: s.BottomRight,
			Unified:     s.Unified,
		},
		Stroke:   StrokeSpec{Width: s.Stroke},
		Outline:  OutlineSpec{Enabled: s.OutlineEnabled, Width: s.Outline, Color: s.OutlineColor, Sprite: resolveSprite(s.OutlineSprite, resolve)},
		Fill:     FillSpec{Enabled: s.FillEnabled, Color: s.FillColor, Sprite: resolveSprite(s.FillSprite, resolve)},
		Softness: s.Softness,
		Tint:     TintSpec{Color: s.Tint},
	}
}

func spriteName(s *Sprite) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func resolveSprite(name string, resolve SpriteResolver) *Sprite {
	if name == "" {
		return nil
	}
	if resolve != nil {
		if s := resolve(name); s != nil {
			return s
		}
	}
	return &Sprite{Name: name}
}

// State returns the persisted form of the image's parameters.
func (m *Image) State() State { return StateFromParams(m.params) }

// ApplyState replaces the parameters from s in one validate and sync pass.
func (m *Image) ApplyState(s State, resolve SpriteResolver) {
	m.SetParams(s.Params(resolve))
}

// MarshalState encodes s as YAML, stamping the current StateVersion.
func MarshalState(s State) ([]byte, error) {
	s.Version = StateVersion
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("rounded: marshal state: %w", err)
	}
	return data, nil
}

// UnmarshalState decodes a YAML state document. Fields missing from the
// document keep their DefaultParams values. Legacy documents are migrated
// first: for each rename, in order, the old value is copied to the new
// name (unless the new name is already present) and the old field is
// dropped.
func UnmarshalState(data []byte) (State, error) {
	s := StateFromParams(DefaultParams())

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return s, fmt.Errorf("rounded: unmarshal state: %w", err)
	}
	if doc.Kind == 0 {
		return s, nil // empty document
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return s, ErrInvalidState
	}
	root := doc.Content[0]

	version := 0
	if v := mappingValue(root, "version"); v != nil {
		n, err := strconv.Atoi(v.Value)
		if err != nil {
			return s, fmt.Errorf("%w: version %q", ErrInvalidState, v.Value)
		}
		version = n
	}
	if version < StateVersion {
		migrate(root)
	}

	if err := root.Decode(&s); err != nil {
		return s, fmt.Errorf("rounded: decode state: %w", err)
	}
	s.Version = StateVersion
	return s, nil
}

// migrate applies the rename table to a mapping node in place.
func migrate(root *yaml.Node) {
	for _, mg := range migrations {
		idx := mappingIndex(root, mg.From)
		if idx < 0 {
			continue
		}
		if mappingIndex(root, mg.To) < 0 {
			// Rename the key node; the value stays where it is.
			root.Content[idx].Value = mg.To
			continue
		}
		root.Content = append(root.Content[:idx], root.Content[idx+2:]...)
	}
}

// mappingIndex returns the index of key's key node in a mapping, or -1.
func mappingIndex(m *yaml.Node, key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i
		}
	}
	return -1
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if i := mappingIndex(m, key); i >= 0 {
		return m.Content[i+1]
	}
	return nil
}

// MarshalYAML encodes the color as "#rrggbbaa".
func (c RGBA) MarshalYAML() (any, error) {
	return c.HexString(), nil
}

// UnmarshalYAML accepts a hex string, a color name, or a sequence of
// three or four components in [0, 1].
func (c *RGBA) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseColor(n.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var comps []float64
		if err := n.Decode(&comps); err != nil {
			return err
		}
		switch len(comps) {
		case 3:
			*c = RGB(comps[0], comps[1], comps[2])
			return nil
		case 4:
			*c = RGBA2(comps[0], comps[1], comps[2], comps[3])
			return nil
		}
		return fmt.Errorf("%w: %d components", ErrInvalidColor, len(comps))
	}
	return fmt.Errorf("%w: yaml node kind %d", ErrInvalidColor, n.Kind)
}
