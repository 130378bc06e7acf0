package glyph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	// Registered decoders for the capture formats the app submits.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// dilationWindow is the side of the max-filter neighborhood used to
// thicken strokes. High-DPI captures draw thinner strokes than the
// training corpus; the filter compensates.
const dilationWindow = 5

// Normalize converts a raw raster submission into a gridSize×gridSize
// Glyph whose ink content is cropped, shrunk to fit contentSize and
// centered. The transform is deterministic: identical bytes always yield
// an identical Glyph.
//
// Transparent pixels are composited onto white before grayscale
// conversion, so a black-on-transparent canvas does not read as solid ink.
// Intensities are inverted (captures are dark-on-light, the classifiers
// expect bright-on-dark) and strokes are thickened with a 5×5 max filter.
//
// A blank canvas is not an error: the whole (featureless) image is
// resampled to gridSize and the classifier scores it with low confidence.
func Normalize(raw []byte, gridSize, contentSize int) (*Glyph, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	gray := flattenToGray(src)
	invert(gray)
	ink := dilate(gray, dilationWindow)

	bbox := inkBBox(ink)
	if bbox.Empty() {
		return resampleToGlyph(ink, gridSize), nil
	}

	cropped := ink.SubImage(bbox).(*image.Gray)
	fitted := shrinkToFit(cropped, contentSize)
	return pasteCentered(fitted, gridSize), nil
}

// flattenToGray composites the source onto an opaque white background and
// converts it to single-channel luminance.
func flattenToGray(src image.Image) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			// RGBA returns alpha-premultiplied components; compositing
			// over white adds the uncovered remainder of the background.
			bg := 0xffff - a
			cr := (r + bg) >> 8
			cg := (g + bg) >> 8
			cb := (bl + bg) >> 8
			// Integer ITU-R 601-2 weights on 8-bit values so pure white
			// maps to exactly 255.
			lum := (299*cr + 587*cg + 114*cb) / 1000
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: uint8(lum)})
		}
	}
	return out
}

func invert(img *image.Gray) {
	for i, v := range img.Pix {
		img.Pix[i] = 255 - v
	}
}

// dilate applies a window×window maximum filter, clamping the
// neighborhood at the image edges.
func dilate(img *image.Gray, window int) *image.Gray {
	r := window / 2
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var max uint8
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					nx, ny := x+dx, y+dy
					if nx < b.Min.X || nx >= b.Max.X || ny < b.Min.Y || ny >= b.Max.Y {
						continue
					}
					if v := img.GrayAt(nx, ny).Y; v > max {
						max = v
					}
				}
			}
			out.SetGray(x, y, color.Gray{Y: max})
		}
	}
	return out
}

// inkBBox returns the tight bounding box of non-zero pixels.
func inkBBox(img *image.Gray) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y == 0 {
				continue
			}
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
	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// shrinkToFit isotropically downscales img so its longer side fits within
// limit. Images already within the limit are returned untouched; the
// content window is a ceiling, not a target.
func shrinkToFit(img *image.Gray, limit int) *image.Gray {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w <= limit && h <= limit {
		return img
	}
	var nw, nh uint
	if w >= h {
		nw = uint(limit)
	} else {
		nh = uint(limit)
	}
	resized := resize.Resize(nw, nh, img, resize.Lanczos3)
	return toGray(resized)
}

// pasteCentered places img into a zero-filled grid×grid canvas with the
// padding split evenly, floor on the top/left.
func pasteCentered(img *image.Gray, grid int) *Glyph {
	g := &Glyph{Size: grid, Pix: make([]uint8, grid*grid)}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	xPad := (grid - w) / 2
	yPad := (grid - h) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tx, ty := x+xPad, y+yPad
			if tx < 0 || tx >= grid || ty < 0 || ty >= grid {
				continue
			}
			g.Pix[ty*grid+tx] = img.GrayAt(b.Min.X+x, b.Min.Y+y).Y
		}
	}
	return g
}

// resampleToGlyph squashes the whole image to grid×grid. Degenerate path
// for blank canvases.
func resampleToGlyph(img *image.Gray, grid int) *Glyph {
	resized := toGray(resize.Resize(uint(grid), uint(grid), img, resize.Lanczos3))
	g := &Glyph{Size: grid, Pix: make([]uint8, grid*grid)}
	b := resized.Bounds()
	for y := 0; y < grid && y < b.Dy(); y++ {
		for x := 0; x < grid && x < b.Dx(); x++ {
			g.Pix[y*grid+x] = resized.GrayAt(b.Min.X+x, b.Min.Y+y).Y
		}
	}
	return g
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x-b.Min.X, y-b.Min.Y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return out
}
