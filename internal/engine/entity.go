package engine

import (
	"github.com/inamate/pattern-engine/internal/entityid"
	"github.com/inamate/pattern-engine/internal/geom"
)

// Entity is a single drawable primitive. Its bounding box is kept equal to
// geom.Compute(vertices) across every mutation.
type Entity struct {
	Kind       EntityKind
	Layer      int32
	Closed     bool // polylines only
	TextHeight float32
	Text       string
	ID         entityid.Token

	vertices    []geom.Vertex
	box         geom.BoundingBox
	highlighted bool
}

// NewEntity builds an entity from already-validated fields.
func NewEntity(kind EntityKind, layer int32, closed bool, vertices []geom.Vertex, textHeight float32, text string, id entityid.Token) *Entity {
	return &Entity{
		Kind:       kind,
		Layer:      layer,
		Closed:     closed,
		TextHeight: textHeight,
		Text:       text,
		ID:         id,
		vertices:   vertices,
		box:        geom.Compute(vertices),
	}
}

// Vertices returns the block-local vertices. The slice must not be modified.
func (e *Entity) Vertices() []geom.Vertex {
	return e.vertices
}

func (e *Entity) BoundingBox() geom.BoundingBox {
	return e.box
}

func (e *Entity) Highlighted() bool {
	return e.highlighted
}

// ResolveColor picks the highlight color, then the layer override, then
// fallback, in that order.
func (e *Entity) ResolveColor(s *Settings, fallback Color) Color {
	if e.highlighted {
		return s.HighlightColor
	}
	if c, ok := s.LayerColor(e.Layer); ok {
		return c
	}
	return fallback
}

// Offset translates the entity by d.
func (e *Entity) Offset(d geom.Vertex) {
	for i := range e.vertices {
		e.vertices[i] = e.vertices[i].Add(d)
	}
	e.box = e.box.Offset(d)
}

// Scale applies (v - anchor) * factor + anchor to every vertex.
func (e *Entity) Scale(factor, anchor geom.Vertex) {
	for i := range e.vertices {
		e.vertices[i] = e.vertices[i].ScaleAbout(factor, anchor)
	}
	e.box = e.box.Scale(factor, anchor)
}

// Rotate applies center + (v - center)·r to every vertex. The box is
// recomputed since rotation changes which vertices are extremal.
func (e *Entity) Rotate(r geom.Rotation, center geom.Vertex) {
	for i := range e.vertices {
		e.vertices[i] = r.RotateAbout(e.vertices[i], center)
	}
	e.box = geom.Compute(e.vertices)
}

func (e *Entity) setHighlight(status bool) {
	e.highlighted = status
}
