//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"unsafe"

	"github.com/inamate/pattern-engine/internal/engine"
	"github.com/inamate/pattern-engine/internal/geom"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine()

	// Create the engine API object
	patternEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	patternEngine.Set("loadDocument", js.FuncOf(loadDocument))
	patternEngine.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	patternEngine.Set("loadSettings", js.FuncOf(loadSettings))
	patternEngine.Set("updateDrawSequence", js.FuncOf(updateDrawSequence))
	patternEngine.Set("setView", js.FuncOf(setView))
	patternEngine.Set("setLayerColor", js.FuncOf(setLayerColor))
	patternEngine.Set("clearLayerColor", js.FuncOf(clearLayerColor))
	patternEngine.Set("setDefaultColor", js.FuncOf(setDefaultColor))
	patternEngine.Set("setHighlightColor", js.FuncOf(setHighlightColor))
	patternEngine.Set("disableLayer", js.FuncOf(disableLayer))
	patternEngine.Set("enableLayer", js.FuncOf(enableLayer))
	patternEngine.Set("selectBlockWithPoint", js.FuncOf(selectBlockWithPoint))
	patternEngine.Set("selectBlocksWithBox", js.FuncOf(selectBlocksWithBox))
	patternEngine.Set("highlightBlock", js.FuncOf(highlightBlock))
	patternEngine.Set("toggleBlock", js.FuncOf(toggleBlock))
	patternEngine.Set("resetSelection", js.FuncOf(resetSelection))
	patternEngine.Set("setHighlightOffset", js.FuncOf(setHighlightOffset))
	patternEngine.Set("setHighlightScale", js.FuncOf(setHighlightScale))
	patternEngine.Set("setHighlightFlip", js.FuncOf(setHighlightFlip))
	patternEngine.Set("setHighlightAnchor", js.FuncOf(setHighlightAnchor))
	patternEngine.Set("setHighlightRotationCenter", js.FuncOf(setHighlightRotationCenter))
	patternEngine.Set("setHighlightRotationAngle", js.FuncOf(setHighlightRotationAngle))
	patternEngine.Set("offsetHighlights", js.FuncOf(offsetHighlights))
	patternEngine.Set("scaleHighlights", js.FuncOf(scaleHighlights))
	patternEngine.Set("rotateHighlights", js.FuncOf(rotateHighlights))

	// --- Queries (frontend ← backend) ---
	patternEngine.Set("getVertexBuffer", js.FuncOf(getVertexBuffer))
	patternEngine.Set("getIndexBuffer", js.FuncOf(getIndexBuffer))
	patternEngine.Set("getNumBlocks", js.FuncOf(getNumBlocks))
	patternEngine.Set("getNumInserts", js.FuncOf(getNumInserts))
	patternEngine.Set("getNumEntities", js.FuncOf(getNumEntities))
	patternEngine.Set("getLayers", js.FuncOf(getLayers))
	patternEngine.Set("getBlockNames", js.FuncOf(getBlockNames))
	patternEngine.Set("getSelection", js.FuncOf(getSelection))
	patternEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	patternEngine.Set("getSettings", js.FuncOf(getSettings))

	// Register on global scope
	js.Global().Set("patternEngine", patternEngine)

	// Signal that WASM is ready
	js.Global().Set("patternWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorResult(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

func okResult() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func vertexArgs(args []js.Value) (geom.Vertex, bool) {
	if len(args) < 2 {
		return geom.Vertex{}, false
	}
	return geom.V(float32(args[0].Float()), float32(args[1].Float())), true
}

func boxResult(box geom.BoundingBox, ok bool) interface{} {
	if !ok {
		return js.Null()
	}
	return js.ValueOf(map[string]interface{}{
		"minX": box.X.Min,
		"maxX": box.X.Max,
		"minY": box.Y.Min,
		"maxY": box.Y.Max,
	})
}

func stringsResult(s []string) interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return js.ValueOf(out)
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}
	if err := eng.LoadDocument([]byte(args[0].String())); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	eng.LoadSampleDocument()
	return okResult()
}

func loadSettings(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing settings JSON"})
	}
	if err := eng.LoadSettings([]byte(args[0].String())); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func updateDrawSequence(this js.Value, args []js.Value) interface{} {
	stats := eng.UpdateDrawSequence()
	return js.ValueOf(map[string]interface{}{
		"entities":    int(stats.Entities),
		"highlighted": int(stats.Highlighted),
		"vertices":    len(eng.VertexBuffer()) / engine.VertexStride,
		"indices":     len(eng.IndexBuffer()),
	})
}

func setView(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.SetView(args[0].String())
	return nil
}

func setLayerColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	if err := eng.SetLayerColor(int32(args[0].Int()), args[1].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func clearLayerColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.ClearLayerColor(int32(args[0].Int()))
	return nil
}

func setDefaultColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if err := eng.SetDefaultColor(args[0].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func setHighlightColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if err := eng.SetHighlightColor(args[0].String()); err != nil {
		return errorResult(err)
	}
	return okResult()
}

func disableLayer(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.DisableLayer(int32(args[0].Int()))
	return nil
}

func enableLayer(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.EnableLayer(int32(args[0].Int()))
	return nil
}

func selectBlockWithPoint(this js.Value, args []js.Value) interface{} {
	p, ok := vertexArgs(args)
	if !ok {
		eng.ResetSelection()
		return stringsResult(nil)
	}
	return stringsResult(eng.SelectBlockWithPoint(p))
}

func selectBlocksWithBox(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return js.ValueOf(map[string]interface{}{"error": "want x0, y0, x1, y1"})
	}
	a, _ := vertexArgs(args[0:2])
	b, _ := vertexArgs(args[2:4])
	keys, box, ok := eng.SelectBlocksWithBox(a, b)
	return js.ValueOf(map[string]interface{}{
		"keys":   stringsResult(keys),
		"bounds": boxResult(box, ok),
	})
}

func highlightBlock(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(false)
	}
	return js.ValueOf(eng.HighlightBlock(args[0].String(), args[1].Bool()))
}

func toggleBlock(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	return js.ValueOf(eng.ToggleBlock(args[0].String()))
}

func resetSelection(this js.Value, args []js.Value) interface{} {
	eng.ResetSelection()
	return nil
}

func setHighlightOffset(this js.Value, args []js.Value) interface{} {
	if v, ok := vertexArgs(args); ok {
		eng.SetHighlightOffset(v.X, v.Y)
	}
	return nil
}

func setHighlightScale(this js.Value, args []js.Value) interface{} {
	if v, ok := vertexArgs(args); ok {
		eng.SetHighlightScale(v.X, v.Y)
	}
	return nil
}

func setHighlightFlip(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.SetHighlightFlip(args[0].Bool(), args[1].Bool())
	return nil
}

func setHighlightAnchor(this js.Value, args []js.Value) interface{} {
	if v, ok := vertexArgs(args); ok {
		eng.SetHighlightAnchor(v.X, v.Y)
	}
	return nil
}

func setHighlightRotationCenter(this js.Value, args []js.Value) interface{} {
	if v, ok := vertexArgs(args); ok {
		eng.SetHighlightRotationCenter(v.X, v.Y)
	}
	return nil
}

func setHighlightRotationAngle(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.SetHighlightRotationAngle(float32(args[0].Float()))
	return nil
}

func offsetHighlights(this js.Value, args []js.Value) interface{} {
	eng.OffsetHighlights()
	return boxResult(eng.HighlightedBoundingBox())
}

func scaleHighlights(this js.Value, args []js.Value) interface{} {
	eng.ScaleHighlights()
	return boxResult(eng.HighlightedBoundingBox())
}

func rotateHighlights(this js.Value, args []js.Value) interface{} {
	return boxResult(eng.RotateHighlights())
}

// --- Query Handlers ---

// copyToJS copies n raw bytes starting at p into a fresh ArrayBuffer.
func copyToJS(p unsafe.Pointer, n int) js.Value {
	u8 := js.Global().Get("Uint8Array").New(n)
	if n > 0 {
		js.CopyBytesToJS(u8, unsafe.Slice((*byte)(p), n))
	}
	return u8.Get("buffer")
}

func getVertexBuffer(this js.Value, args []js.Value) interface{} {
	v := eng.VertexBuffer()
	if len(v) == 0 {
		return js.Global().Get("Float32Array").New(0)
	}
	buf := copyToJS(unsafe.Pointer(&v[0]), len(v)*4)
	return js.Global().Get("Float32Array").New(buf)
}

func getIndexBuffer(this js.Value, args []js.Value) interface{} {
	idx := eng.IndexBuffer()
	if len(idx) == 0 {
		return js.Global().Get("Uint32Array").New(0)
	}
	buf := copyToJS(unsafe.Pointer(&idx[0]), len(idx)*4)
	return js.Global().Get("Uint32Array").New(buf)
}

func getNumBlocks(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.NumBlocks())
}

func getNumInserts(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.NumInserts())
}

func getNumEntities(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.NumEntities())
}

func getLayers(this js.Value, args []js.Value) interface{} {
	layers := eng.Layers()
	out := make([]interface{}, len(layers))
	for i, l := range layers {
		out[i] = int(l)
	}
	return js.ValueOf(out)
}

func getBlockNames(this js.Value, args []js.Value) interface{} {
	return stringsResult(eng.BlockNames())
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return stringsResult(eng.Selection())
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return boxResult(eng.HighlightedBoundingBox())
}

func getSettings(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(eng.Settings())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}
