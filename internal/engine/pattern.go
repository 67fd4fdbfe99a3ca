package engine

import (
	"log/slog"
	"slices"

	"github.com/inamate/pattern-engine/internal/document"
	"github.com/inamate/pattern-engine/internal/entityid"
	"github.com/inamate/pattern-engine/internal/geom"
)

// Pattern owns every block and insert. Blocks are kept in ascending name
// order; inserts refer to blocks by name and are resolved through blockIndex.
type Pattern struct {
	blocks      []*Block
	blockIndex  map[string]int
	inserts     []*Insert
	insertIndex map[string]int // block name -> its placing insert
}

// NewEmptyPattern returns a pattern with no blocks or inserts.
func NewEmptyPattern() *Pattern {
	return &Pattern{
		blockIndex:  make(map[string]int),
		insertIndex: make(map[string]int),
	}
}

// NewPattern decodes a document payload and builds a pattern from it. If the
// payload does not have the document shape, the returned pattern is empty but
// usable and the error wraps document.ErrInvalidDocument.
func NewPattern(data []byte) (*Pattern, error) {
	doc, err := document.Decode(data)
	if err != nil {
		return NewEmptyPattern(), err
	}
	return FromDocument(doc), nil
}

// FromDocument builds a pattern. Records that fail validation are skipped
// with a diagnostic; they never fail the whole pattern.
func FromDocument(doc *document.InDocument) *Pattern {
	p := NewEmptyPattern()
	if doc == nil {
		return p
	}

	names := make([]string, 0, len(doc.Pattern.Blocks))
	for name := range doc.Pattern.Blocks {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		rec := doc.Pattern.Blocks[name]
		layer, err := document.ParseLayer(rec.Layer)
		if err != nil {
			slog.Warn("skip block", "block", name, "error", err)
			continue
		}

		block := NewBlock(name, layer, rec.Centroid)
		for i := range rec.Entities {
			addEntity(block, &rec.Entities[i])
		}

		p.blockIndex[name] = len(p.blocks)
		p.blocks = append(p.blocks, block)
	}

	for _, rec := range doc.Pattern.Entities {
		p.addInsert(rec)
	}

	return p
}

func addEntity(block *Block, rec *document.EntityRecord) {
	log := slog.With("block", block.Name, "entity", rec.EntityIndex)

	layer, err := document.ParseLayer(rec.Layer)
	if err != nil {
		log.Warn("skip entity", "error", err)
		return
	}
	id, err := entityid.Parse(rec.EntityIndex)
	if err != nil {
		log.Warn("skip entity", "error", err)
		return
	}
	kind, ok := kindFromType(rec.EntityType)
	if !ok || kind == KindInsert {
		log.Warn("skip entity: unsupported entity type", "type", rec.EntityType)
		return
	}

	switch kind {
	case KindPoint:
		if rec.Position == nil {
			log.Warn("skip entity: point without position")
			return
		}
		block.AddPoint(layer, *rec.Position, id)

	case KindLine:
		if len(rec.Vertices) != 2 {
			log.Warn("skip entity: line needs exactly 2 vertices", "vertices", len(rec.Vertices))
			return
		}
		block.AddLine(layer, rec.Vertices, id)

	case KindPolyline:
		if len(rec.Vertices) == 0 {
			log.Warn("skip entity: polyline without vertices")
			return
		}
		block.AddPolyline(layer, rec.Closed(), id, rec.Vertices)

	case KindText:
		if rec.StartPoint == nil || rec.TextHeight == nil || rec.Text == nil {
			log.Warn("skip entity: text needs start_point, text_height and text")
			return
		}
		block.AddText(layer, *rec.StartPoint, id, *rec.TextHeight, *rec.Text)
	}
}

func (p *Pattern) addInsert(rec document.InsertRecord) {
	log := slog.With("insert", rec.Name)

	if rec.EntityType != document.EntityTypeInsert {
		log.Warn("skip insert: unsupported entity type", "type", rec.EntityType)
		return
	}
	if _, ok := p.blockIndex[rec.Name]; !ok {
		log.Warn("skip insert: unknown block")
		return
	}
	if _, ok := p.insertIndex[rec.Name]; ok {
		log.Warn("skip insert: block already placed")
		return
	}
	layer, err := document.ParseLayer(rec.Layer)
	if err != nil {
		log.Warn("skip insert", "error", err)
		return
	}

	p.insertIndex[rec.Name] = len(p.inserts)
	p.inserts = append(p.inserts, NewInsert(rec.Name, layer, rec.Position))
}

// --- Counts and listings ---

func (p *Pattern) NumBlocks() int {
	return len(p.blocks)
}

func (p *Pattern) NumInserts() int {
	return len(p.inserts)
}

// NumEntities counts entities across all blocks.
func (p *Pattern) NumEntities() int {
	n := 0
	for _, b := range p.blocks {
		n += b.NumEntities()
	}
	return n
}

func (p *Pattern) Blocks() []*Block {
	return p.blocks
}

func (p *Pattern) Inserts() []*Insert {
	return p.inserts
}

// Layers returns every distinct block and entity layer, ascending.
func (p *Pattern) Layers() []int32 {
	var layers []int32
	for _, b := range p.blocks {
		layers = b.AllLayers(layers)
	}
	slices.Sort(layers)
	return layers
}

// BlockNames returns all block names, sorted.
func (p *Pattern) BlockNames() []string {
	names := make([]string, 0, len(p.blocks))
	for _, b := range p.blocks {
		names = append(names, b.Name)
	}
	slices.Sort(names)
	return names
}

// --- Lookups ---

// Block returns the named block, or nil with a diagnostic.
func (p *Pattern) Block(name string) *Block {
	if i, ok := p.blockIndex[name]; ok {
		return p.blocks[i]
	}
	slog.Warn("block not in pattern", "block", name)
	return nil
}

// Insert returns the insert placing the named block, or nil.
func (p *Pattern) Insert(name string) *Insert {
	if i, ok := p.insertIndex[name]; ok {
		return p.inserts[i]
	}
	return nil
}

// PlacementOffset returns the world offset of the named block: its insert
// position, or zero if the block is never placed.
func (p *Pattern) PlacementOffset(name string) geom.Vertex {
	if ins := p.Insert(name); ins != nil {
		return ins.Position
	}
	slog.Debug("block not in inserts", "block", name)
	return geom.Vertex{}
}

// offsetInView is the placement offset used for b under the given view.
// A single-block view shows the block at its local origin.
func (p *Pattern) offsetInView(b *Block, view View) geom.Vertex {
	if view.IsSingleBlock() {
		return geom.Vertex{}
	}
	return p.PlacementOffset(b.Name)
}

// blocksInView returns the blocks a query under view should visit.
func (p *Pattern) blocksInView(view View) []*Block {
	if !view.IsSingleBlock() {
		return p.blocks
	}
	if b := p.Block(view.Block); b != nil {
		return []*Block{b}
	}
	return nil
}

// PlacedBoundingBox returns the block box in the coordinates of view.
// Unknown names yield the zero box.
func (p *Pattern) PlacedBoundingBox(name string, view View) geom.BoundingBox {
	b := p.Block(name)
	if b == nil {
		return geom.BoundingBox{}
	}
	return b.BoundingBox().Offset(p.offsetInView(b, view))
}

// --- Spatial queries ---

// FindBlocksWithPoint returns the names of blocks whose box, grown by
// threshold, contains point.
func (p *Pattern) FindBlocksWithPoint(point geom.Vertex, threshold float32, view View) []string {
	keys := []string{}
	for _, b := range p.blocksInView(view) {
		local := point.Sub(p.offsetInView(b, view))
		if b.PointInBoundingBox(local, threshold) {
			keys = append(keys, b.Name)
		}
	}
	return keys
}

// FindBlocksWithBox returns the names of blocks whose placed box intersects
// box, with the union of those placed boxes. ok is false if nothing matched.
func (p *Pattern) FindBlocksWithBox(box geom.BoundingBox, view View) (keys []string, union geom.BoundingBox, ok bool) {
	keys = []string{}
	for _, b := range p.blocksInView(view) {
		placed := b.BoundingBox().Offset(p.offsetInView(b, view))
		if !placed.Intersects(box) {
			continue
		}
		keys = append(keys, b.Name)
		if ok {
			union = union.Union(placed)
		} else {
			union, ok = placed, true
		}
	}
	return keys, union, ok
}
