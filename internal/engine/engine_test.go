package engine

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/pattern-engine/internal/document"
	"github.com/inamate/pattern-engine/internal/geom"
)

func newLoadedEngine(t *testing.T, doc string) *Engine {
	t.Helper()
	e := NewEngine()
	require.NoError(t, e.LoadDocument([]byte(doc)))
	return e
}

func TestEngineLoadAndDraw(t *testing.T) {
	e := newLoadedEngine(t, singlePointDoc)
	assert.Equal(t, 1, e.NumBlocks())
	assert.Equal(t, 1, e.NumInserts())
	assert.Equal(t, 1, e.NumEntities())
	assert.Equal(t, []int32{3}, e.Layers())
	assert.Equal(t, []string{"L-1"}, e.BlockNames())

	stats := e.UpdateDrawSequence()
	assert.Equal(t, uint32(1), stats.Entities)
	assert.Len(t, e.VertexBuffer(), 4*VertexStride)
	assert.Equal(t, []uint32{0, 1, X, 2, 3, X}, e.IndexBuffer())
	assert.Equal(t, stats, e.DrawStats())
	assertBox(t, geom.Box(9.7, 10.3, 4.7, 5.3), stats.Extent)
}

func TestEngineLoadInvalidDocument(t *testing.T) {
	e := newLoadedEngine(t, singlePointDoc)
	e.UpdateDrawSequence()

	err := e.LoadDocument([]byte(`{"something": "else"}`))
	assert.ErrorIs(t, err, document.ErrInvalidDocument)
	assert.Zero(t, e.NumBlocks())
	assert.Empty(t, e.VertexBuffer())
	assert.Empty(t, e.IndexBuffer())

	e.UpdateDrawSequence()
	assert.Empty(t, e.VertexBuffer())
}

func TestEngineLoadSampleDocument(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument()

	assert.Equal(t, 2, e.NumBlocks())
	assert.Equal(t, 2, e.NumInserts())
	assert.Equal(t, 8, e.NumEntities())
	assert.Equal(t, []string{"Back", "Front"}, e.BlockNames())
	assert.Equal(t, []int32{1, 4, 7, 8}, e.Layers())

	stats := e.UpdateDrawSequence()
	assert.Equal(t, uint32(8), stats.Entities)
	assert.Equal(t, geom.V(60, 0), e.Pattern().PlacementOffset("Back"))
}

func TestEngineSelectWithPoint(t *testing.T) {
	e := newLoadedEngine(t, singlePointDoc)

	assert.Equal(t, []string{"L-1"}, e.SelectBlockWithPoint(geom.V(12, 7)))
	assert.Equal(t, []string{"L-1"}, e.Selection())

	assert.Empty(t, e.SelectBlockWithPoint(geom.V(20, 20)))
	assert.Empty(t, e.Selection(), "a miss clears the selection")
}

func TestEngineSelectWithBox(t *testing.T) {
	e := newLoadedEngine(t, twoPanelDoc)

	keys, union, ok := e.SelectBlocksWithBox(geom.V(105, 5), geom.V(95, -1))
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, keys)
	assert.Equal(t, geom.Box(100, 110, 0, 10), union)

	keys, _, ok = e.SelectBlocksWithBox(geom.V(-1, -1), geom.V(200, 20))
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, keys)

	keys, _, ok = e.SelectBlocksWithBox(geom.V(50, 50), geom.V(60, 60))
	assert.False(t, ok)
	assert.Empty(t, keys)
	assert.Empty(t, e.Selection())
}

func TestEngineHighlightAndToggle(t *testing.T) {
	e := newLoadedEngine(t, twoPanelDoc)

	assert.True(t, e.HighlightBlock("A", true))
	assert.True(t, e.ToggleBlock("B"))
	assert.Equal(t, []string{"A", "B"}, e.Selection())

	assert.True(t, e.ToggleBlock("A"))
	assert.Equal(t, []string{"B"}, e.Selection())

	assert.False(t, e.HighlightBlock("missing", true))
	assert.False(t, e.ToggleBlock("missing"))

	e.ResetSelection()
	assert.Empty(t, e.Selection())
	_, ok := e.HighlightedBoundingBox()
	assert.False(t, ok)
}

func TestEngineCommitOffset(t *testing.T) {
	e := newLoadedEngine(t, twoPanelDoc)
	e.HighlightBlock("A", true)

	e.SetHighlightOffset(5, -2)
	e.UpdateDrawSequence()
	assert.Equal(t, geom.V(100, 0), e.Pattern().PlacementOffset("A"), "preview does not move the model")

	e.OffsetHighlights()
	assert.Equal(t, geom.V(105, -2), e.Pattern().PlacementOffset("A"))
	assert.Equal(t, geom.Box(0, 10, 0, 10), e.Pattern().Block("A").BoundingBox())
	assert.Equal(t, geom.Vertex{}, e.Settings().HighlightOffset)

	box, ok := e.HighlightedBoundingBox()
	require.True(t, ok)
	assert.Equal(t, geom.Box(105, 115, -2, 8), box)
}

func TestEngineCommitOffsetUnplacedBlock(t *testing.T) {
	e := newLoadedEngine(t, twoPanelDoc)
	e.HighlightBlock("B", true)

	e.SetHighlightOffset(1, 1)
	e.OffsetHighlights()
	assert.Equal(t, geom.Box(1, 5, 1, 5), e.Pattern().Block("B").BoundingBox())
}

func TestEngineCommitScale(t *testing.T) {
	e := newLoadedEngine(t, twoPanelDoc)
	e.HighlightBlock("A", true)

	e.SetHighlightScale(2, 2)
	e.SetHighlightFlip(false, true)
	e.SetHighlightAnchor(100, 0)
	e.ScaleHighlights()

	assert.Equal(t, geom.Box(0, 20, -20, 0), e.Pattern().Block("A").BoundingBox())
	s := e.Settings()
	assert.Equal(t, geom.V(1, 1), s.HighlightScale)
	assert.Equal(t, [2]bool{}, s.HighlightFlip)
	assert.Equal(t, geom.Vertex{}, s.HighlightAnchor)
	assert.Equal(t, geom.Box(0, 4, 0, 4), e.Pattern().Block("B").BoundingBox(), "unselected block untouched")
}

func TestEngineCommitRotate(t *testing.T) {
	e := newLoadedEngine(t, twoPanelDoc)
	e.HighlightBlock("A", true)

	e.SetHighlightRotationCenter(105, 5)
	e.SetHighlightRotationAngle(math32.Pi / 2)
	box, ok := e.RotateHighlights()
	require.True(t, ok)

	// A square turned a quarter about its own center lands on itself.
	assertBox(t, geom.Box(100, 110, 0, 10), box)
	assertBox(t, geom.Box(0, 10, 0, 10), e.Pattern().Block("A").BoundingBox())
	assert.Zero(t, e.Settings().HighlightRotationAngle)

	// The grain line was vertical through x=5 and is now horizontal at y=5.
	grain := e.Pattern().Block("A").Entities()[1]
	assertVertex(t, geom.V(2, 5), grain.Vertices()[0])
	assertVertex(t, geom.V(8, 5), grain.Vertices()[1])
}

func TestEngineSingleBlockViewTransforms(t *testing.T) {
	e := newLoadedEngine(t, twoPanelDoc)
	e.HighlightBlock("A", true)
	e.HighlightBlock("B", true)
	e.SetView("Block=>A")

	e.SetHighlightOffset(1, 0)
	e.OffsetHighlights()

	assert.Equal(t, geom.Box(1, 11, 0, 10), e.Pattern().Block("A").BoundingBox())
	assert.Equal(t, geom.V(100, 0), e.Pattern().PlacementOffset("A"))
	assert.Equal(t, geom.Box(0, 4, 0, 4), e.Pattern().Block("B").BoundingBox())

	box, ok := e.HighlightedBoundingBox()
	require.True(t, ok)
	assert.Equal(t, geom.Box(1, 11, 0, 10), box)
}

func TestEngineColors(t *testing.T) {
	e := NewEngine()

	require.NoError(t, e.SetLayerColor(1, "#FF0000FF"))
	c, ok := e.Settings().LayerColor(1)
	require.True(t, ok)
	assert.Equal(t, RGBA8(255, 0, 0, 255), c)

	assert.ErrorIs(t, e.SetLayerColor(2, "red"), ErrInvalidColor)
	_, ok = e.Settings().LayerColor(2)
	assert.False(t, ok)

	before := e.Settings()
	assert.ErrorIs(t, e.SetDefaultColor("#12345"), ErrInvalidColor)
	assert.ErrorIs(t, e.SetHighlightColor("zz"), ErrInvalidColor)
	assert.Equal(t, before, e.Settings())

	require.NoError(t, e.SetHighlightColor("#00FF00FF"))
	assert.Equal(t, "#00FF00FF", e.Settings().HighlightColor.Hex())

	e.ClearLayerColor(1)
	_, ok = e.Settings().LayerColor(1)
	assert.False(t, ok)
}

func TestEngineLayerToggles(t *testing.T) {
	e := newLoadedEngine(t, twoPanelDoc)

	e.DisableLayer(1)
	e.UpdateDrawSequence()
	assert.Equal(t, 6, len(e.VertexBuffer())/VertexStride)

	e.EnableLayer(1)
	e.UpdateDrawSequence()
	assert.Equal(t, 13, len(e.VertexBuffer())/VertexStride)
}

func TestEngineLoadSettings(t *testing.T) {
	base := DefaultSettings()
	base.PointThreshold = 2.5
	base.DisableLayer(7)
	e := NewEngineWithSettings(base)

	require.NoError(t, e.LoadSettings([]byte(`{"cross_size": 1, "view": "Block=>A"}`)))
	assert.Equal(t, float32(1), e.Settings().CrossSize)
	assert.Equal(t, BlockView("A"), e.Settings().ParsedView())
	assert.Equal(t, float32(2.5), e.Settings().PointThreshold, "omitted fields keep the current value")
	assert.True(t, e.Settings().LayerDisabled(7))

	before := e.Settings()
	err := e.LoadSettings([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Equal(t, before, e.Settings())
}

func TestEngineSettingsValueQueries(t *testing.T) {
	e := NewEngine()
	e.SetView("Block=>A")
	e.SetHighlightFlip(true, false)

	assert.Equal(t, BlockView("A"), e.Settings().ParsedView())
	assert.Equal(t, geom.V(-1, 1), e.Settings().ScaleFactor())
	assert.True(t, e.Settings().RotationMatrix().IsIdentity())
	assert.False(t, e.Settings().LayerDisabled(1))
	_, ok := e.Settings().LayerColor(1)
	assert.False(t, ok)
}

func TestEngineResetSelectionAfterPointHit(t *testing.T) {
	e := newLoadedEngine(t, singlePointDoc)
	require.Equal(t, []string{"L-1"}, e.SelectBlockWithPoint(geom.V(12, 7)))

	e.ResetSelection()
	assert.Empty(t, e.Selection())
	_, ok := e.HighlightedBoundingBox()
	assert.False(t, ok)
}

func TestEngineSetSettings(t *testing.T) {
	e := NewEngineWithSettings(Settings{CrossSize: 2})
	assert.NotNil(t, e.Settings().LayerColors)

	e.SetSettings(Settings{PointThreshold: 1})
	assert.Equal(t, float32(1), e.Settings().PointThreshold)
	assert.NotNil(t, e.Settings().LayerColors)
}

func TestEngineSettingsIsACopy(t *testing.T) {
	e := NewEngine()
	e.DisableLayer(3)

	s := e.Settings()
	s.SetLayerColor(1, RGBA8(1, 1, 1, 255))
	s.DisabledLayers[0] = 9

	_, ok := e.Settings().LayerColor(1)
	assert.False(t, ok)
	assert.Equal(t, []int32{3}, e.Settings().DisabledLayers)
}
