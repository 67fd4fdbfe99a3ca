package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/inamate/pattern-engine/internal/geom"
)

var ErrInvalidDocument = errors.New("invalid pattern document")

// InDocument is the top-level payload handed over by the host.
type InDocument struct {
	Pattern Pattern `json:"pattern_json"`
}

type Pattern struct {
	Blocks   map[string]Block `json:"blocks"`
	Entities []InsertRecord   `json:"entities"`
}

type Block struct {
	Entities []EntityRecord `json:"entities"`
	Centroid geom.Vertex    `json:"centroid"`
	Layer    string         `json:"layer"`
}

type EntityType string

const (
	EntityTypePoint      EntityType = "POINT"
	EntityTypeLine       EntityType = "LINE"
	EntityTypeLWLine     EntityType = "LWLINE"
	EntityTypePolyline   EntityType = "POLYLINE"
	EntityTypeLWPolyline EntityType = "LWPOLYLINE"
	EntityTypeText       EntityType = "TEXT"
	EntityTypeInsert     EntityType = "INSERT"
)

// EntityRecord is one drawable record inside a block. Which optional fields
// are required depends on EntityType.
type EntityRecord struct {
	EntityType  EntityType    `json:"entity_type"`
	EntityIndex string        `json:"entity_index"`
	Layer       string        `json:"layer"`
	Shape       *bool         `json:"shape,omitempty"`
	Vertices    []geom.Vertex `json:"vertices,omitempty"`
	Position    *geom.Vertex  `json:"position,omitempty"`
	StartPoint  *geom.Vertex  `json:"start_point,omitempty"`
	TextHeight  *float32      `json:"text_height,omitempty"`
	Text        *string       `json:"text,omitempty"`
}

// InsertRecord places a block, referenced by name, at a position.
type InsertRecord struct {
	EntityType EntityType  `json:"entity_type"`
	Name       string      `json:"name"`
	Position   geom.Vertex `json:"position"`
	Layer      string      `json:"layer"`
}

// Decode parses a document payload. A payload that does not match the
// expected shape is reported as ErrInvalidDocument.
func Decode(data []byte) (*InDocument, error) {
	var doc InDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc.Pattern.Blocks == nil && doc.Pattern.Entities == nil {
		return nil, fmt.Errorf("%w: missing pattern_json", ErrInvalidDocument)
	}
	return &doc, nil
}

// ParseLayer decodes a string-encoded layer id.
func ParseLayer(layer string) (int32, error) {
	n, err := strconv.ParseInt(layer, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid layer %q: %w", layer, err)
	}
	return int32(n), nil
}

// Closed reports the polyline shape flag, defaulting to open.
func (r *EntityRecord) Closed() bool {
	return r.Shape != nil && *r.Shape
}
