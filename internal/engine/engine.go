package engine

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/inamate/pattern-engine/internal/document"
	"github.com/inamate/pattern-engine/internal/geom"
)

// Engine owns the pattern, the display settings and the draw buffers for one
// interactive session. It processes commands from the host and answers its
// queries. Calls are expected to be serialized by the host.
type Engine struct {
	pattern  *Pattern
	settings Settings

	// Reused across frames
	buffers DrawBuffers
	stats   DrawStats
}

// NewEngine creates an engine with an empty pattern and default settings.
func NewEngine() *Engine {
	return NewEngineWithSettings(DefaultSettings())
}

// NewEngineWithSettings creates an engine with an empty pattern.
func NewEngineWithSettings(s Settings) *Engine {
	if s.LayerColors == nil {
		s.LayerColors = map[int32]Color{}
	}
	return &Engine{
		pattern:  NewEmptyPattern(),
		settings: s,
	}
}

// --- Commands (host → engine) ---

// LoadDocument replaces the pattern with one built from a JSON document. On
// a decode failure the pattern becomes empty and the error is returned.
func (e *Engine) LoadDocument(data []byte) error {
	p, err := NewPattern(data)
	e.pattern = p
	e.buffers.Reset()
	e.stats = DrawStats{}
	if err != nil {
		return err
	}

	slog.Debug("pattern loaded",
		"blocks", p.NumBlocks(),
		"inserts", p.NumInserts(),
		"entities", p.NumEntities(),
	)
	return nil
}

// LoadSampleDocument loads the built-in sample pattern.
func (e *Engine) LoadSampleDocument() {
	e.pattern = FromDocument(document.NewSampleDocument())
	e.buffers.Reset()
	e.stats = DrawStats{}
}

// LoadSettings decodes a JSON payload over the current settings. Omitted
// fields keep their current values. An invalid payload leaves the settings
// untouched and returns the error.
func (e *Engine) LoadSettings(data []byte) error {
	s, err := e.settings.Overlay(data)
	if err != nil {
		slog.Warn("settings in incorrect format, keeping current settings", "error", err)
		return err
	}
	e.settings = s
	return nil
}

func (e *Engine) SetSettings(s Settings) {
	if s.LayerColors == nil {
		s.LayerColors = map[int32]Color{}
	}
	e.settings = s
}

// UpdateDrawSequence rebuilds the draw buffers from the current state.
func (e *Engine) UpdateDrawSequence() DrawStats {
	e.stats = e.pattern.UpdateDrawSequence(&e.settings, &e.buffers)
	return e.stats
}

// SetView switches between "Model" and "Block=>NAME".
func (e *Engine) SetView(name string) {
	e.settings.View = name
}

func (e *Engine) SetLayerColor(layer int32, hex string) error {
	c, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	e.settings.SetLayerColor(layer, c)
	return nil
}

// ClearLayerColor drops a layer override.
func (e *Engine) ClearLayerColor(layer int32) {
	delete(e.settings.LayerColors, layer)
}

func (e *Engine) SetDefaultColor(hex string) error {
	c, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	e.settings.DefaultColor = c
	return nil
}

func (e *Engine) SetHighlightColor(hex string) error {
	c, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	e.settings.HighlightColor = c
	return nil
}

func (e *Engine) DisableLayer(layer int32) {
	e.settings.DisableLayer(layer)
}

func (e *Engine) EnableLayer(layer int32) {
	e.settings.EnableLayer(layer)
}

// --- Selection ---

func (e *Engine) ResetSelection() {
	e.pattern.ResetSelection()
}

// SelectBlockWithPoint highlights exactly the blocks hit by p and returns
// their names.
func (e *Engine) SelectBlockWithPoint(p geom.Vertex) []string {
	keys := e.pattern.FindBlocksWithPoint(p, e.settings.PointThreshold, e.settings.ParsedView())
	e.pattern.HighlightSelection(keys)
	return keys
}

// SelectBlocksWithBox highlights exactly the blocks whose placed box
// intersects the rectangle spanned by a and b. It returns their names and
// the union of their boxes.
func (e *Engine) SelectBlocksWithBox(a, b geom.Vertex) ([]string, geom.BoundingBox, bool) {
	keys, union, ok := e.pattern.FindBlocksWithBox(geom.FromCorners(a, b), e.settings.ParsedView())
	e.pattern.HighlightSelection(keys)
	return keys, union, ok
}

// HighlightBlock sets one block's highlight, leaving the rest untouched.
func (e *Engine) HighlightBlock(key string, status bool) bool {
	return e.pattern.SetHighlight(key, status)
}

// ToggleBlock flips one block's highlight.
func (e *Engine) ToggleBlock(key string) bool {
	return e.pattern.ToggleHighlight(key)
}

// --- Highlight gesture ---
// Set* calls only change how highlighted geometry is drawn. The matching
// commit applies the gesture to the model and resets its parameters.

func (e *Engine) SetHighlightOffset(x, y float32) {
	e.settings.HighlightOffset = geom.V(x, y)
}

func (e *Engine) SetHighlightScale(x, y float32) {
	e.settings.HighlightScale = geom.V(x, y)
}

func (e *Engine) SetHighlightFlip(x, y bool) {
	e.settings.HighlightFlip = [2]bool{x, y}
}

func (e *Engine) SetHighlightAnchor(x, y float32) {
	e.settings.HighlightAnchor = geom.V(x, y)
}

func (e *Engine) SetHighlightRotationCenter(x, y float32) {
	e.settings.HighlightRotationCenter = geom.V(x, y)
}

// SetHighlightRotationAngle sets the gesture angle in radians.
func (e *Engine) SetHighlightRotationAngle(radians float32) {
	e.settings.HighlightRotationAngle = radians
}

// OffsetHighlights commits the gesture offset.
func (e *Engine) OffsetHighlights() {
	e.pattern.OffsetHighlighted(e.settings.HighlightOffset, e.settings.ParsedView())
	e.settings.resetOffset()
}

// ScaleHighlights commits the gesture scale and flip about the anchor.
func (e *Engine) ScaleHighlights() {
	e.pattern.ScaleHighlighted(e.settings.ScaleFactor(), e.settings.HighlightAnchor, e.settings.ParsedView())
	e.settings.resetScale()
}

// RotateHighlights commits the gesture rotation and returns the refreshed
// box of the highlighted blocks.
func (e *Engine) RotateHighlights() (geom.BoundingBox, bool) {
	view := e.settings.ParsedView()
	e.pattern.RotateHighlighted(e.settings.RotationMatrix(), e.settings.HighlightRotationCenter, view)
	e.settings.resetRotation()
	return e.pattern.HighlightedBoundingBox(view)
}

// --- Queries (host ← engine) ---

func (e *Engine) Pattern() *Pattern {
	return e.pattern
}

// Settings returns a copy of the current settings. The layer color map and
// disabled layer list are cloned.
func (e *Engine) Settings() Settings {
	s := e.settings
	s.LayerColors = maps.Clone(s.LayerColors)
	s.DisabledLayers = slices.Clone(s.DisabledLayers)
	return s
}

func (e *Engine) NumBlocks() int {
	return e.pattern.NumBlocks()
}

func (e *Engine) NumInserts() int {
	return e.pattern.NumInserts()
}

func (e *Engine) NumEntities() int {
	return e.pattern.NumEntities()
}

func (e *Engine) Layers() []int32 {
	return e.pattern.Layers()
}

func (e *Engine) BlockNames() []string {
	return e.pattern.BlockNames()
}

// Selection returns the names of highlighted blocks.
func (e *Engine) Selection() []string {
	return e.pattern.HighlightedBlocks()
}

// HighlightedBoundingBox returns the box of the current selection in the
// coordinates of the current view.
func (e *Engine) HighlightedBoundingBox() (geom.BoundingBox, bool) {
	return e.pattern.HighlightedBoundingBox(e.settings.ParsedView())
}

// VertexBuffer returns the vertex records of the last pass. The slice is
// reused by the next UpdateDrawSequence.
func (e *Engine) VertexBuffer() []float32 {
	return e.buffers.Vertices
}

// IndexBuffer returns the indices of the last pass. The slice is reused by
// the next UpdateDrawSequence.
func (e *Engine) IndexBuffer() []uint32 {
	return e.buffers.Indices
}

// DrawStats returns the summary of the last pass.
func (e *Engine) DrawStats() DrawStats {
	return e.stats
}
