package engine

import "github.com/inamate/pattern-engine/internal/geom"

// Insert places a block, looked up by Name in the owning Pattern, at a world
// offset. It refers to the block by key only.
type Insert struct {
	Name     string
	Layer    int32
	Position geom.Vertex
}

func NewInsert(name string, layer int32, position geom.Vertex) *Insert {
	return &Insert{
		Name:     name,
		Layer:    layer,
		Position: position,
	}
}
