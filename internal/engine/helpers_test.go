package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inamate/pattern-engine/internal/entityid"
	"github.com/inamate/pattern-engine/internal/geom"
)

const tol = 1e-4

// singlePointDoc has one block holding one point, placed once at (10, 5).
const singlePointDoc = `{
  "pattern_json": {
    "blocks": {
      "L-1": {
        "layer": "3",
        "centroid": {"x": 0, "y": 0},
        "entities": [
          {"entity_type": "POINT", "entity_index": "550e8400-e29b-41d4-a716-446655440000", "layer": "3", "position": {"x": 0, "y": 0}}
        ]
      }
    },
    "entities": [
      {"entity_type": "INSERT", "name": "L-1", "position": {"x": 10, "y": 5}, "layer": "0"}
    ]
  }
}`

// twoPanelDoc has two square panels; A is placed at (100, 0), B is not placed.
const twoPanelDoc = `{
  "pattern_json": {
    "blocks": {
      "A": {
        "layer": "1",
        "centroid": {"x": 5, "y": 5},
        "entities": [
          {"entity_type": "LWPOLYLINE", "entity_index": "00000000-0000-0000-0000-00000000000a", "layer": "1", "shape": true,
           "vertices": [{"x": 0, "y": 0}, {"x": 10, "y": 0}, {"x": 10, "y": 10}, {"x": 0, "y": 10}]},
          {"entity_type": "LINE", "entity_index": "00000000-0000-0000-0000-00000000000b", "layer": "7",
           "vertices": [{"x": 5, "y": 2}, {"x": 5, "y": 8}]}
        ]
      },
      "B": {
        "layer": "1",
        "centroid": {"x": 2, "y": 2},
        "entities": [
          {"entity_type": "POLYLINE", "entity_index": "00000000-0000-0000-0000-00000000000c", "layer": "1",
           "vertices": [{"x": 0, "y": 0}, {"x": 4, "y": 0}, {"x": 4, "y": 4}]},
          {"entity_type": "TEXT", "entity_index": "00000000-0000-0000-0000-00000000000d", "layer": "8",
           "start_point": {"x": 1, "y": 1}, "text_height": 2.5, "text": "B"}
        ]
      }
    },
    "entities": [
      {"entity_type": "INSERT", "name": "A", "position": {"x": 100, "y": 0}, "layer": "0"}
    ]
  }
}`

func mustPattern(t *testing.T, doc string) *Pattern {
	t.Helper()
	p, err := NewPattern([]byte(doc))
	require.NoError(t, err)
	return p
}

func mustToken(t *testing.T, id string) entityid.Token {
	t.Helper()
	tok, err := entityid.Parse(id)
	require.NoError(t, err)
	return tok
}

func assertVertex(t *testing.T, want, got geom.Vertex) {
	t.Helper()
	require.InDelta(t, want.X, got.X, tol)
	require.InDelta(t, want.Y, got.Y, tol)
}

func assertBox(t *testing.T, want, got geom.BoundingBox) {
	t.Helper()
	require.InDelta(t, want.X.Min, got.X.Min, tol, "min x")
	require.InDelta(t, want.X.Max, got.X.Max, tol, "max x")
	require.InDelta(t, want.Y.Min, got.Y.Min, tol, "min y")
	require.InDelta(t, want.Y.Max, got.Y.Max, tol, "max y")
}
