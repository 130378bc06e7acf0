// Package tensor provides the minimal dense math needed to run the glyph
// classifiers' forward passes on the CPU. Inference only: no gradients,
// no autograd bookkeeping, every op is a pure function of its inputs.
package tensor

import "fmt"

// Tensor is a dense float32 volume in CHW layout.
type Tensor struct {
	C, H, W int
	Data    []float32
}

// New allocates a zero-filled tensor of the given shape.
func New(c, h, w int) *Tensor {
	return &Tensor{C: c, H: h, W: w, Data: make([]float32, c*h*w)}
}

// At returns the value at (channel, row, col).
func (t *Tensor) At(c, y, x int) float32 {
	return t.Data[(c*t.H+y)*t.W+x]
}

// Set writes the value at (channel, row, col).
func (t *Tensor) Set(c, y, x int, v float32) {
	t.Data[(c*t.H+y)*t.W+x] = v
}

// Numel returns the number of elements.
func (t *Tensor) Numel() int {
	return t.C * t.H * t.W
}

// Shape returns a printable shape description.
func (t *Tensor) Shape() string {
	return fmt.Sprintf("(%d,%d,%d)", t.C, t.H, t.W)
}
