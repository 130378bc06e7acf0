package glyph

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG renders a white canvas with a black rectangle of ink and
// returns the encoded bytes.
func encodePNG(t *testing.T, w, h int, ink image.Rectangle) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if image.Pt(x, y).In(ink) {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// encodeTransparentPNG renders ink on a fully transparent canvas.
func encodeTransparentPNG(t *testing.T, w, h int, ink image.Rectangle) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := ink.Min.Y; y < ink.Max.Y; y++ {
		for x := ink.Min.X; x < ink.Max.X; x++ {
			img.Set(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalize_Deterministic(t *testing.T) {
	raw := encodePNG(t, 200, 150, image.Rect(40, 30, 120, 100))

	a, err := Normalize(raw, 28, 20)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	b, err := Normalize(raw, 28, 20)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two runs over identical bytes produced different glyphs")
	}
}

func TestNormalize_Centered(t *testing.T) {
	// Ink placed well off-center: the normalizer must still center it.
	raw := encodePNG(t, 300, 300, image.Rect(10, 20, 90, 140))

	g, err := Normalize(raw, 28, 20)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	minX, minY, maxX, maxY, ok := g.InkBounds()
	if !ok {
		t.Fatal("expected ink in normalized glyph")
	}

	leftPad := minX
	rightPad := g.Size - 1 - maxX
	topPad := minY
	bottomPad := g.Size - 1 - maxY

	if d := leftPad - rightPad; d < -1 || d > 1 {
		t.Errorf("horizontal padding %d vs %d, off by more than 1", leftPad, rightPad)
	}
	if d := topPad - bottomPad; d < -1 || d > 1 {
		t.Errorf("vertical padding %d vs %d, off by more than 1", topPad, bottomPad)
	}
}

func TestNormalize_ContentFitsWindow(t *testing.T) {
	raw := encodePNG(t, 400, 400, image.Rect(0, 0, 400, 400))

	g, err := Normalize(raw, 32, 24)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	minX, minY, maxX, maxY, ok := g.InkBounds()
	if !ok {
		t.Fatal("expected ink in normalized glyph")
	}
	if w := maxX - minX + 1; w > 24 {
		t.Errorf("ink width %d exceeds content window 24", w)
	}
	if h := maxY - minY + 1; h > 24 {
		t.Errorf("ink height %d exceeds content window 24", h)
	}
}

func TestNormalize_BlankCanvas(t *testing.T) {
	raw := encodePNG(t, 100, 100, image.Rectangle{})

	g, err := Normalize(raw, 28, 20)
	if err != nil {
		t.Fatalf("blank canvas must not fail: %v", err)
	}
	if g.Size != 28 || len(g.Pix) != 28*28 {
		t.Errorf("got %dx%d glyph, want 28x28", g.Size, g.Size)
	}
	if _, _, _, _, ok := g.InkBounds(); ok {
		t.Error("blank canvas produced ink")
	}
}

func TestNormalize_TransparentBackground(t *testing.T) {
	// Black ink on transparency: compositing onto white must keep only
	// the drawn strokes as ink, not the whole canvas.
	raw := encodeTransparentPNG(t, 100, 100, image.Rect(40, 40, 60, 60))

	g, err := Normalize(raw, 28, 20)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	minX, _, maxX, _, ok := g.InkBounds()
	if !ok {
		t.Fatal("expected ink from the drawn square")
	}
	if w := maxX - minX + 1; w > 24 {
		t.Errorf("transparent background registered as ink (width %d)", w)
	}
}

func TestNormalize_FullyTransparent(t *testing.T) {
	raw := encodeTransparentPNG(t, 64, 64, image.Rectangle{})

	g, err := Normalize(raw, 28, 20)
	if err != nil {
		t.Fatalf("all-transparent canvas must not fail: %v", err)
	}
	if _, _, _, _, ok := g.InkBounds(); ok {
		t.Error("all-transparent canvas produced ink")
	}
}

func TestNormalize_BadBytes(t *testing.T) {
	_, err := Normalize([]byte("not an image"), 28, 20)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got %v, want ErrDecode", err)
	}
}

func TestNormalize_SmallInkNotUpscaled(t *testing.T) {
	// A 3x3 dot dilates to roughly 7x7; it should be pasted as-is, not
	// inflated to fill the content window.
	raw := encodePNG(t, 100, 100, image.Rect(50, 50, 53, 53))

	g, err := Normalize(raw, 28, 20)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	minX, minY, maxX, maxY, ok := g.InkBounds()
	if !ok {
		t.Fatal("expected ink")
	}
	if w := maxX - minX + 1; w > 9 {
		t.Errorf("ink width %d, small strokes must not be upscaled", w)
	}
	if h := maxY - minY + 1; h > 9 {
		t.Errorf("ink height %d, small strokes must not be upscaled", h)
	}
}

func TestFlattenToGray_WhiteMapsTo255(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})
	img.Set(1, 0, color.RGBA{0, 0, 0, 255})

	gray := flattenToGray(img)
	if got := gray.GrayAt(0, 0).Y; got != 255 {
		t.Errorf("white pixel = %d, want 255; background must invert to zero ink", got)
	}
	if got := gray.GrayAt(1, 0).Y; got != 0 {
		t.Errorf("black pixel = %d, want 0", got)
	}
}
