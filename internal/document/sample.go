package document

import (
	"github.com/google/uuid"

	"github.com/inamate/pattern-engine/internal/geom"
)

// Layer ids used by the sample pattern.
const (
	LayerUnknown   = "0"
	LayerSeam      = "1"
	LayerTurnPoint = "2"
	LayerNotch     = "4"
	LayerGrain     = "7"
	LayerMarkup    = "8"
)

// NewEmptyDocument creates a document with no blocks and no placements.
func NewEmptyDocument() *InDocument {
	return &InDocument{
		Pattern: Pattern{
			Blocks:   map[string]Block{},
			Entities: []InsertRecord{},
		},
	}
}

// NewSampleDocument builds a small two-piece pattern: a front and a back
// panel, each with a closed seam outline, a grain line, a notch and a label.
func NewSampleDocument() *InDocument {
	doc := NewEmptyDocument()

	doc.Pattern.Blocks["Front"] = samplePanel("Front", 40, 60)
	doc.Pattern.Blocks["Back"] = samplePanel("Back", 44, 62)

	doc.Pattern.Entities = append(doc.Pattern.Entities,
		InsertRecord{
			EntityType: EntityTypeInsert,
			Name:       "Front",
			Position:   geom.V(0, 0),
			Layer:      LayerUnknown,
		},
		InsertRecord{
			EntityType: EntityTypeInsert,
			Name:       "Back",
			Position:   geom.V(60, 0),
			Layer:      LayerUnknown,
		},
	)

	return doc
}

func samplePanel(label string, width, height float32) Block {
	closed := true
	textHeight := float32(2.5)
	text := label

	return Block{
		Centroid: geom.V(width/2, height/2),
		Layer:    LayerSeam,
		Entities: []EntityRecord{
			{
				EntityType:  EntityTypeLWPolyline,
				EntityIndex: uuid.NewString(),
				Layer:       LayerSeam,
				Shape:       &closed,
				Vertices: []geom.Vertex{
					geom.V(0, 0),
					geom.V(width, 0),
					geom.V(width, height),
					geom.V(0, height),
				},
			},
			{
				EntityType:  EntityTypeLine,
				EntityIndex: uuid.NewString(),
				Layer:       LayerGrain,
				Vertices: []geom.Vertex{
					geom.V(width/2, height*0.2),
					geom.V(width/2, height*0.8),
				},
			},
			{
				EntityType:  EntityTypePoint,
				EntityIndex: uuid.NewString(),
				Layer:       LayerNotch,
				Position:    &geom.Vertex{X: width, Y: height / 2},
			},
			{
				EntityType:  EntityTypeText,
				EntityIndex: uuid.NewString(),
				Layer:       LayerMarkup,
				StartPoint:  &geom.Vertex{X: width * 0.1, Y: height * 0.9},
				TextHeight:  &textHeight,
				Text:        &text,
			},
		},
	}
}
