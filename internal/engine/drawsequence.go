package engine

import (
	"github.com/inamate/pattern-engine/internal/geom"
)

// PrimitiveRestart marks the end of a primitive in the index buffer, so one
// buffer carries many independent lines and crosses.
const PrimitiveRestart uint32 = 0xFFFFFFFF

// VertexStride is the number of floats per vertex record: x, y, r, g, b, a.
const VertexStride = 6

// crossShade perturbs the RGB of one cross diagonal so the X stays visible.
const crossShade = 0.05

// DrawBuffers holds the flat vertex and index sequences handed to the
// renderer. They are truncated and refilled in place across frames.
type DrawBuffers struct {
	Vertices []float32
	Indices  []uint32
}

// Reset empties both buffers, keeping their backing arrays.
func (b *DrawBuffers) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// NumVertices returns the number of vertex records.
func (b *DrawBuffers) NumVertices() int {
	return len(b.Vertices) / VertexStride
}

// DrawStats summarizes a drawing pass.
type DrawStats struct {
	Entities    uint32           `json:"entities"`
	Highlighted uint32           `json:"highlighted"`
	Extent      geom.BoundingBox `json:"extent"` // world space, zero if nothing drawn
}

// DrawSequenceBuilder flattens blocks into DrawBuffers. It only reads the
// pattern. The running index is shared by every block added to one builder.
type DrawSequenceBuilder struct {
	settings *Settings
	gesture  HighlightTransform
	disabled map[int32]struct{}
	buf      *DrawBuffers
	next     uint32
	stats    DrawStats
}

// NewDrawSequenceBuilder resets buf and prepares a pass under s.
func NewDrawSequenceBuilder(s *Settings, buf *DrawBuffers) *DrawSequenceBuilder {
	buf.Reset()
	disabled := make(map[int32]struct{}, len(s.DisabledLayers))
	for _, l := range s.DisabledLayers {
		disabled[l] = struct{}{}
	}
	return &DrawSequenceBuilder{
		settings: s,
		gesture:  s.Gesture(),
		disabled: disabled,
		buf:      buf,
	}
}

// AddBlock emits every visible entity of b placed at offset.
func (d *DrawSequenceBuilder) AddBlock(b *Block, offset geom.Vertex) {
	fallback := b.ResolveColor(d.settings)
	for _, e := range b.Entities() {
		d.AddEntity(e, fallback, offset)
	}
}

// AddEntity emits one entity. Entities on disabled layers emit nothing.
func (d *DrawSequenceBuilder) AddEntity(e *Entity, fallback Color, offset geom.Vertex) {
	if _, off := d.disabled[e.Layer]; off {
		return
	}
	vertices := e.Vertices()
	if len(vertices) == 0 {
		return
	}

	color := e.ResolveColor(d.settings, fallback)
	world := func(v geom.Vertex) geom.Vertex {
		v = v.Add(offset)
		if e.Highlighted() {
			v = d.gesture.Apply(v)
		}
		return v
	}

	d.stats.Entities++
	if e.Highlighted() {
		d.stats.Highlighted++
	}

	if len(vertices) == 1 {
		d.addCross(world(vertices[0]), color)
		return
	}

	first := d.next
	for _, v := range vertices {
		d.addVertex(world(v), color)
		d.buf.Indices = append(d.buf.Indices, d.next)
		d.next++
	}
	if e.Closed {
		d.buf.Indices = append(d.buf.Indices, first)
	}
	d.buf.Indices = append(d.buf.Indices, PrimitiveRestart)
}

// addCross draws a single-vertex entity as two diagonal segments of
// half-width CrossSize around p.
func (d *DrawSequenceBuilder) addCross(p geom.Vertex, c Color) {
	s := d.settings.CrossSize
	d.addVertex(geom.V(p.X-s, p.Y-s), c.Shade(-crossShade))
	d.addVertex(geom.V(p.X+s, p.Y+s), c.Shade(crossShade))
	d.addVertex(geom.V(p.X+s, p.Y-s), c)
	d.addVertex(geom.V(p.X-s, p.Y+s), c)

	i := d.next
	d.buf.Indices = append(d.buf.Indices,
		i, i+1, PrimitiveRestart,
		i+2, i+3, PrimitiveRestart,
	)
	d.next += 4
}

func (d *DrawSequenceBuilder) addVertex(v geom.Vertex, c Color) {
	d.buf.Vertices = append(d.buf.Vertices, v.X, v.Y, c.R, c.G, c.B, c.A)

	pt := geom.Box(v.X, v.X, v.Y, v.Y)
	if len(d.buf.Vertices) == VertexStride {
		d.stats.Extent = pt
	} else {
		d.stats.Extent = d.stats.Extent.Union(pt)
	}
}

// Stats returns the summary of everything added so far.
func (d *DrawSequenceBuilder) Stats() DrawStats {
	return d.stats
}

// UpdateDrawSequence refills buf with the pattern as seen under s.View and
// records the number of highlighted entities drawn in s.
func (p *Pattern) UpdateDrawSequence(s *Settings, buf *DrawBuffers) DrawStats {
	builder := NewDrawSequenceBuilder(s, buf)
	view := s.ParsedView()
	for _, b := range p.blocksInView(view) {
		builder.AddBlock(b, p.offsetInView(b, view))
	}

	stats := builder.Stats()
	s.HighlightSelectedEntities = stats.Highlighted
	return stats
}
