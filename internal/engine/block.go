package engine

import (
	"slices"

	"github.com/inamate/pattern-engine/internal/entityid"
	"github.com/inamate/pattern-engine/internal/geom"
)

// Block is a named, reusable group of entities in block-local space. It owns
// its entities and caches the union of their bounding boxes.
type Block struct {
	Name     string
	Layer    int32
	Centroid geom.Vertex

	entities    []*Entity
	box         geom.BoundingBox
	highlighted bool
}

func NewBlock(name string, layer int32, centroid geom.Vertex) *Block {
	return &Block{
		Name:     name,
		Layer:    layer,
		Centroid: centroid,
	}
}

// --- Construction ---
// Fields are validated by the caller; nothing is re-checked here.

func (b *Block) AddPoint(layer int32, position geom.Vertex, id entityid.Token) {
	b.add(NewEntity(KindPoint, layer, false, []geom.Vertex{position}, 0, "", id))
}

// AddLine uses the first two vertices.
func (b *Block) AddLine(layer int32, vertices []geom.Vertex, id entityid.Token) {
	b.add(NewEntity(KindLine, layer, false, []geom.Vertex{vertices[0], vertices[1]}, 0, "", id))
}

func (b *Block) AddPolyline(layer int32, closed bool, id entityid.Token, vertices []geom.Vertex) {
	b.add(NewEntity(KindPolyline, layer, closed, slices.Clone(vertices), 0, "", id))
}

func (b *Block) AddText(layer int32, position geom.Vertex, id entityid.Token, textHeight float32, text string) {
	b.add(NewEntity(KindText, layer, false, []geom.Vertex{position}, textHeight, text, id))
}

func (b *Block) add(e *Entity) {
	e.setHighlight(b.highlighted)
	if len(b.entities) == 0 {
		b.box = e.box
	} else {
		b.box = b.box.Union(e.box)
	}
	b.entities = append(b.entities, e)
}

// --- Queries ---

func (b *Block) Entities() []*Entity {
	return b.entities
}

func (b *Block) NumEntities() int {
	return len(b.entities)
}

func (b *Block) BoundingBox() geom.BoundingBox {
	return b.box
}

func (b *Block) Highlighted() bool {
	return b.highlighted
}

// PointInBoundingBox is a coarse hit test against the block box only; it
// does not look at individual entities.
func (b *Block) PointInBoundingBox(p geom.Vertex, padding float32) bool {
	return b.box.ContainsPoint(p, padding)
}

// AllLayers appends the block layer and each entity layer to acc in
// first-seen order, skipping layers already present.
func (b *Block) AllLayers(acc []int32) []int32 {
	if !slices.Contains(acc, b.Layer) {
		acc = append(acc, b.Layer)
	}
	for _, e := range b.entities {
		if !slices.Contains(acc, e.Layer) {
			acc = append(acc, e.Layer)
		}
	}
	return acc
}

// ResolveColor is the fallback color handed to the block's entities:
// highlight, then the block layer override, then the default color.
func (b *Block) ResolveColor(s *Settings) Color {
	if b.highlighted {
		return s.HighlightColor
	}
	if c, ok := s.LayerColor(b.Layer); ok {
		return c
	}
	return s.DefaultColor
}

// --- Selection ---

func (b *Block) Highlight() {
	b.setHighlight(true)
}

func (b *Block) RemoveHighlight() {
	b.setHighlight(false)
}

func (b *Block) setHighlight(status bool) {
	b.highlighted = status
	for _, e := range b.entities {
		e.setHighlight(status)
	}
}

// --- Transforms ---

func (b *Block) OffsetEntities(d geom.Vertex) {
	for _, e := range b.entities {
		e.Offset(d)
	}
	b.UpdateBoundingBox()
}

func (b *Block) ScaleEntities(factor, anchor geom.Vertex) {
	for _, e := range b.entities {
		e.Scale(factor, anchor)
	}
	b.UpdateBoundingBox()
}

func (b *Block) RotateEntities(r geom.Rotation, center geom.Vertex) {
	for _, e := range b.entities {
		e.Rotate(r, center)
	}
	b.UpdateBoundingBox()
}

// UpdateBoundingBox recomputes the block box from its entity boxes.
func (b *Block) UpdateBoundingBox() {
	b.box = geom.BoundingBox{}
	for i, e := range b.entities {
		if i == 0 {
			b.box = e.box
			continue
		}
		b.box = b.box.Union(e.box)
	}
}
