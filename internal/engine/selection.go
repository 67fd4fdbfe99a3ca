package engine

import (
	"slices"

	"github.com/inamate/pattern-engine/internal/geom"
)

// --- Highlight state ---

// ResetSelection clears every highlight.
func (p *Pattern) ResetSelection() {
	for _, b := range p.blocks {
		b.RemoveHighlight()
	}
}

// HighlightSelection highlights exactly the named blocks; everything else is
// cleared first.
func (p *Pattern) HighlightSelection(keys []string) {
	p.ResetSelection()
	for _, key := range keys {
		if b := p.Block(key); b != nil {
			b.Highlight()
		}
	}
}

// SetHighlight sets one block's highlight without touching the others.
// It returns false if the block does not exist.
func (p *Pattern) SetHighlight(key string, status bool) bool {
	b := p.Block(key)
	if b == nil {
		return false
	}
	if status {
		b.Highlight()
	} else {
		b.RemoveHighlight()
	}
	return true
}

// ToggleHighlight flips one block's highlight. It returns false if the block
// does not exist.
func (p *Pattern) ToggleHighlight(key string) bool {
	b := p.Block(key)
	if b == nil {
		return false
	}
	return p.SetHighlight(key, !b.Highlighted())
}

// HighlightedBlocks returns the names of highlighted blocks, sorted.
func (p *Pattern) HighlightedBlocks() []string {
	keys := []string{}
	for _, b := range p.blocks {
		if b.Highlighted() {
			keys = append(keys, b.Name)
		}
	}
	slices.Sort(keys)
	return keys
}

// highlightedInView returns the highlighted blocks visible under view.
func (p *Pattern) highlightedInView(view View) []*Block {
	var out []*Block
	for _, b := range p.blocksInView(view) {
		if b.Highlighted() {
			out = append(out, b)
		}
	}
	return out
}

// HighlightedBoundingBox returns the union of the placed boxes of highlighted
// blocks. ok is false if nothing is highlighted.
func (p *Pattern) HighlightedBoundingBox(view View) (box geom.BoundingBox, ok bool) {
	for _, b := range p.highlightedInView(view) {
		placed := b.BoundingBox().Offset(p.offsetInView(b, view))
		if ok {
			box = box.Union(placed)
		} else {
			box, ok = placed, true
		}
	}
	return box, ok
}

// --- Transforms on the highlighted set ---

// OffsetHighlighted moves the highlighted blocks by d. In the model view a
// placed block moves by shifting its insert; the block geometry is shared and
// left alone. In a single-block view, or for a block without an insert, the
// entities themselves move.
func (p *Pattern) OffsetHighlighted(d geom.Vertex, view View) {
	for _, b := range p.highlightedInView(view) {
		if !view.IsSingleBlock() {
			if ins := p.Insert(b.Name); ins != nil {
				ins.Position = ins.Position.Add(d)
				continue
			}
		}
		b.OffsetEntities(d)
	}
}

// ScaleHighlighted scales the highlighted blocks about a world-space anchor.
func (p *Pattern) ScaleHighlighted(factor, anchor geom.Vertex, view View) {
	for _, b := range p.highlightedInView(view) {
		local := anchor.Sub(p.offsetInView(b, view))
		b.ScaleEntities(factor, local)
	}
}

// RotateHighlighted rotates the highlighted blocks about a world-space center.
func (p *Pattern) RotateHighlighted(r geom.Rotation, center geom.Vertex, view View) {
	for _, b := range p.highlightedInView(view) {
		local := center.Sub(p.offsetInView(b, view))
		b.RotateEntities(r, local)
	}
}
