package engine

import "strings"

const (
	ModelViewName   = "Model"
	blockViewPrefix = "Block=>"
)

// View selects what a drawing pass or query looks at: the whole model with
// placement offsets applied, or one block in isolation at zero offset.
type View struct {
	Block string
}

// ModelView is the whole-pattern view.
var ModelView = View{}

// BlockView isolates the named block.
func BlockView(name string) View {
	return View{Block: name}
}

// ParseView reads "Block=>NAME" as a single-block view. Anything else,
// including an empty block name, is the model view.
func ParseView(name string) View {
	if key, ok := strings.CutPrefix(name, blockViewPrefix); ok {
		return View{Block: key}
	}
	return ModelView
}

// IsSingleBlock reports whether the view isolates one block.
func (v View) IsSingleBlock() bool {
	return v.Block != ""
}

func (v View) String() string {
	if v.IsSingleBlock() {
		return blockViewPrefix + v.Block
	}
	return ModelViewName
}
