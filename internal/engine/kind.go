package engine

import "github.com/inamate/pattern-engine/internal/document"

// EntityKind is the closed set of primitive kinds. Only Point, Line,
// Polyline and Text are stored as drawable entities; Insert is carried by
// the separate Insert record.
type EntityKind uint8

const (
	KindPoint EntityKind = iota
	KindLine
	KindPolyline
	KindText
	KindInsert
)

func (k EntityKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPolyline:
		return "polyline"
	case KindText:
		return "text"
	case KindInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// kindFromType maps a document entity type onto the enumeration. The
// comparison is case-sensitive.
func kindFromType(t document.EntityType) (EntityKind, bool) {
	switch t {
	case document.EntityTypePoint:
		return KindPoint, true
	case document.EntityTypeLine, document.EntityTypeLWLine:
		return KindLine, true
	case document.EntityTypePolyline, document.EntityTypeLWPolyline:
		return KindPolyline, true
	case document.EntityTypeText:
		return KindText, true
	case document.EntityTypeInsert:
		return KindInsert, true
	default:
		return 0, false
	}
}
