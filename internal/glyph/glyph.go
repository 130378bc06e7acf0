// Package glyph turns raw handwriting captures into the fixed-size,
// centered intensity grids the classifiers were trained on.
package glyph

import "errors"

// ErrDecode indicates the submitted bytes are not a decodable raster image.
var ErrDecode = errors.New("image decode failed")

// Glyph is a single-channel Size×Size intensity grid, row-major.
// Background is 0 (dark), ink is high intensity, matching the training
// distribution of the classifiers.
type Glyph struct {
	Size int
	Pix  []uint8
}

// At returns the intensity at (x, y).
func (g *Glyph) At(x, y int) uint8 {
	return g.Pix[y*g.Size+x]
}

// InkBounds returns the tight bounding box of non-zero pixels as
// (minX, minY, maxX, maxY) inclusive, and false if the glyph is blank.
func (g *Glyph) InkBounds() (int, int, int, int, bool) {
	minX, minY := g.Size, g.Size
	maxX, maxY := -1, -1
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.At(x, y) != 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < 0 {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX, maxY, true
}
