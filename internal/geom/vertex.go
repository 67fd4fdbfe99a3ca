package geom

// Vertex is a 2D point in pattern space.
type Vertex struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// V returns the vertex (x, y).
func V(x, y float32) Vertex {
	return Vertex{X: x, Y: y}
}

// Add returns v + o.
func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies component-wise. A negative component flips that axis.
func (v Vertex) Mul(o Vertex) Vertex {
	return Vertex{X: v.X * o.X, Y: v.Y * o.Y}
}

// Neg returns -v.
func (v Vertex) Neg() Vertex {
	return Vertex{X: -v.X, Y: -v.Y}
}

// ScaleAbout returns (v - anchor) * factor + anchor.
func (v Vertex) ScaleAbout(factor, anchor Vertex) Vertex {
	return v.Sub(anchor).Mul(factor).Add(anchor)
}
