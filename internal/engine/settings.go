package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/inamate/pattern-engine/internal/geom"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings controls how a drawing pass colors and filters the pattern, and
// carries the parameters of the in-progress highlight gesture.
type Settings struct {
	DefaultColor   Color           `json:"default_color"`
	HighlightColor Color           `json:"highlight_color"`
	LayerColors    map[int32]Color `json:"layer_colors"`
	DisabledLayers []int32         `json:"disabled_layers"`
	PointThreshold float32         `json:"point_threshold"` // selection padding in model space
	CrossSize      float32         `json:"cross_size"`      // half-width of point crosses
	View           string          `json:"view"`            // "Model" or "Block=>NAME"

	// Highlight gesture
	HighlightOffset           geom.Vertex `json:"highlight_offset"`
	HighlightScale            geom.Vertex `json:"highlight_scale"`
	HighlightFlip             [2]bool     `json:"highlight_flip"`
	HighlightAnchor           geom.Vertex `json:"highlight_anchor"`
	HighlightRotationCenter   geom.Vertex `json:"highlight_rotation_center"`
	HighlightRotationAngle    float32     `json:"highlight_rotation_angle"` // radians
	HighlightSelectedEntities uint32      `json:"highlight_nr_selected_entities"`
}

// DefaultSettings returns black geometry, blue highlights and the model view.
func DefaultSettings() Settings {
	return Settings{
		DefaultColor:   RGBA8(0, 0, 0, 255),
		HighlightColor: RGBA8(0, 0, 255, 255),
		LayerColors:    map[int32]Color{},
		DisabledLayers: []int32{},
		PointThreshold: 4,
		CrossSize:      0.3,
		View:           ModelViewName,
		HighlightScale: geom.V(1, 1),
	}
}

// ParseSettings decodes a settings payload on top of DefaultSettings, so
// omitted fields keep their defaults.
func ParseSettings(data []byte) (Settings, error) {
	return DefaultSettings().Overlay(data)
}

// Overlay decodes a settings payload on top of s. Omitted fields keep the
// values of s; on error s is returned unchanged.
func (s Settings) Overlay(data []byte) (Settings, error) {
	out := s
	out.LayerColors = maps.Clone(s.LayerColors)
	out.DisabledLayers = slices.Clone(s.DisabledLayers)
	if err := json.Unmarshal(data, &out); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if out.LayerColors == nil {
		out.LayerColors = map[int32]Color{}
	}
	return out, nil
}

// pair is a vertex encoded as a [x, y] array. It also decodes {"x", "y"}.
type pair geom.Vertex

func (p pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float32{p.X, p.Y})
}

func (p *pair) UnmarshalJSON(data []byte) error {
	var xy [2]float32
	if err := json.Unmarshal(data, &xy); err == nil {
		*p = pair{X: xy[0], Y: xy[1]}
		return nil
	}
	var v geom.Vertex
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("want [x, y] or {\"x\", \"y\"}: %w", err)
	}
	*p = pair(v)
	return nil
}

// MarshalJSON writes the gesture vertices as [x, y] pairs.
func (s Settings) MarshalJSON() ([]byte, error) {
	type Alias Settings
	return json.Marshal(struct {
		Alias
		HighlightOffset         pair `json:"highlight_offset"`
		HighlightScale          pair `json:"highlight_scale"`
		HighlightAnchor         pair `json:"highlight_anchor"`
		HighlightRotationCenter pair `json:"highlight_rotation_center"`
	}{
		Alias:                   Alias(s),
		HighlightOffset:         pair(s.HighlightOffset),
		HighlightScale:          pair(s.HighlightScale),
		HighlightAnchor:         pair(s.HighlightAnchor),
		HighlightRotationCenter: pair(s.HighlightRotationCenter),
	})
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	type Alias Settings
	aux := struct {
		*Alias
		HighlightOffset         pair `json:"highlight_offset"`
		HighlightScale          pair `json:"highlight_scale"`
		HighlightAnchor         pair `json:"highlight_anchor"`
		HighlightRotationCenter pair `json:"highlight_rotation_center"`
	}{
		Alias:                   (*Alias)(s),
		HighlightOffset:         pair(s.HighlightOffset),
		HighlightScale:          pair(s.HighlightScale),
		HighlightAnchor:         pair(s.HighlightAnchor),
		HighlightRotationCenter: pair(s.HighlightRotationCenter),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.HighlightOffset = geom.Vertex(aux.HighlightOffset)
	s.HighlightScale = geom.Vertex(aux.HighlightScale)
	s.HighlightAnchor = geom.Vertex(aux.HighlightAnchor)
	s.HighlightRotationCenter = geom.Vertex(aux.HighlightRotationCenter)
	return nil
}

// LayerColor returns the override color for layer, if any.
func (s Settings) LayerColor(layer int32) (Color, bool) {
	c, ok := s.LayerColors[layer]
	return c, ok
}

// SetLayerColor installs an override color for layer.
func (s *Settings) SetLayerColor(layer int32, c Color) {
	if s.LayerColors == nil {
		s.LayerColors = map[int32]Color{}
	}
	s.LayerColors[layer] = c
}

func (s Settings) LayerDisabled(layer int32) bool {
	return slices.Contains(s.DisabledLayers, layer)
}

func (s *Settings) DisableLayer(layer int32) {
	if !s.LayerDisabled(layer) {
		s.DisabledLayers = append(s.DisabledLayers, layer)
	}
}

func (s *Settings) EnableLayer(layer int32) {
	s.DisabledLayers = slices.DeleteFunc(s.DisabledLayers, func(l int32) bool { return l == layer })
}

// ParsedView returns the view named by s.View.
func (s Settings) ParsedView() View {
	return ParseView(s.View)
}

// ScaleFactor returns the gesture scale with flips folded in as negative
// components.
func (s Settings) ScaleFactor() geom.Vertex {
	f := s.HighlightScale
	if s.HighlightFlip[0] {
		f.X = -f.X
	}
	if s.HighlightFlip[1] {
		f.Y = -f.Y
	}
	return f
}

// RotationMatrix returns the gesture rotation.
func (s Settings) RotationMatrix() geom.Rotation {
	return geom.NewRotation(s.HighlightRotationAngle)
}

// Gesture returns the transform applied to highlighted entities while
// drawing, before the gesture is committed to the model.
func (s Settings) Gesture() HighlightTransform {
	return HighlightTransform{
		Offset:   s.HighlightOffset,
		Scale:    s.ScaleFactor(),
		Anchor:   s.HighlightAnchor,
		Rotation: s.RotationMatrix(),
		Center:   s.HighlightRotationCenter,
	}
}

func (s *Settings) resetOffset() {
	s.HighlightOffset = geom.Vertex{}
}

func (s *Settings) resetScale() {
	s.HighlightScale = geom.V(1, 1)
	s.HighlightFlip = [2]bool{}
	s.HighlightAnchor = geom.Vertex{}
}

func (s *Settings) resetRotation() {
	s.HighlightRotationAngle = 0
}

// HighlightTransform is an uncommitted offset, scale-about-anchor and
// rotate-about-center, applied in that order.
type HighlightTransform struct {
	Offset   geom.Vertex
	Scale    geom.Vertex
	Anchor   geom.Vertex
	Rotation geom.Rotation
	Center   geom.Vertex
}

// IdentityTransform leaves vertices unchanged.
func IdentityTransform() HighlightTransform {
	return HighlightTransform{Scale: geom.V(1, 1), Rotation: geom.IdentityRotation()}
}

// Apply transforms a world-space vertex.
func (h HighlightTransform) Apply(v geom.Vertex) geom.Vertex {
	v = v.Add(h.Offset)
	v = v.ScaleAbout(h.Scale, h.Anchor)
	return h.Rotation.RotateAbout(v, h.Center)
}
