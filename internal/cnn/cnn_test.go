package cnn

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dipin-Adhikari/akshara/internal/glyph"
)

// fill produces small deterministic pseudo-weights so forward passes are
// reproducible without real training artifacts.
func fill(n int, seed int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32((i+seed)%13-6) * 0.01
	}
	return out
}

func ones(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func addBatchNorm(w WeightMap, prefix string, channels int) {
	w[prefix+".weight"] = ones(channels)
	w[prefix+".bias"] = make([]float32, channels)
	w[prefix+".running_mean"] = make([]float32, channels)
	w[prefix+".running_var"] = ones(channels)
}

func englishWeights() WeightMap {
	w := WeightMap{
		"conv1.weight": fill(32*1*9, 1),
		"conv1.bias":   fill(32, 2),
		"conv2.weight": fill(64*32*9, 3),
		"conv2.bias":   fill(64, 4),
		"fc1.weight":   fill(256*64*7*7, 5),
		"fc1.bias":     fill(256, 6),
		"fc2.weight":   fill(26*256, 7),
		"fc2.bias":     fill(26, 8),
	}
	addBatchNorm(w, "bn1", 32)
	addBatchNorm(w, "bn2", 64)
	return w
}

func nepaliWeights() WeightMap {
	w := WeightMap{
		"conv1.weight": fill(32*1*9, 1),
		"conv1.bias":   fill(32, 2),
		"conv2.weight": fill(32*32*9, 3),
		"conv2.bias":   fill(32, 4),
		"conv3.weight": fill(64*32*9, 5),
		"conv3.bias":   fill(64, 6),
		"conv4.weight": fill(64*64*9, 7),
		"conv4.bias":   fill(64, 8),
		"conv5.weight": fill(128*64*9, 9),
		"conv5.bias":   fill(128, 10),
		"fc1.weight":   fill(512*128*4*4, 11),
		"fc1.bias":     fill(512, 12),
		"fc2.weight":   fill(46*512, 13),
		"fc2.bias":     fill(46, 14),
	}
	for i, ch := range []int{32, 32, 64, 64, 128} {
		addBatchNorm(w, "bn"+string(rune('1'+i)), ch)
	}
	return w
}

func testGlyph(size int) *glyph.Glyph {
	g := &glyph.Glyph{Size: size, Pix: make([]uint8, size*size)}
	for i := range g.Pix {
		if i%3 == 0 {
			g.Pix[i] = uint8(i % 251)
		}
	}
	return g
}

func TestEnglishNet_Classify(t *testing.T) {
	net, err := NewEnglishNet(englishWeights())
	if err != nil {
		t.Fatalf("NewEnglishNet: %v", err)
	}

	label, confidence, err := net.Classify(testGlyph(28))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if confidence < 0 || confidence > 1 {
		t.Errorf("confidence %f out of [0,1]", confidence)
	}
	found := false
	for _, l := range net.Labels() {
		if l == label {
			found = true
		}
	}
	if !found {
		t.Errorf("label %q not in English label space", label)
	}
}

func TestEnglishNet_Deterministic(t *testing.T) {
	net, err := NewEnglishNet(englishWeights())
	if err != nil {
		t.Fatalf("NewEnglishNet: %v", err)
	}
	g := testGlyph(28)

	l1, c1, _ := net.Classify(g)
	l2, c2, _ := net.Classify(g)
	if l1 != l2 || c1 != c2 {
		t.Errorf("classification not deterministic: (%s,%f) vs (%s,%f)", l1, c1, l2, c2)
	}
}

func TestEnglishNet_WrongGlyphSize(t *testing.T) {
	net, err := NewEnglishNet(englishWeights())
	if err != nil {
		t.Fatalf("NewEnglishNet: %v", err)
	}
	if _, _, err := net.Classify(testGlyph(32)); err == nil {
		t.Error("expected error for 32px glyph on a 28px network")
	}
}

func TestNepaliNet_Classify(t *testing.T) {
	net, err := NewNepaliNet(nepaliWeights())
	if err != nil {
		t.Fatalf("NewNepaliNet: %v", err)
	}
	if got := len(net.Labels()); got != 46 {
		t.Fatalf("label space size %d, want 46", got)
	}

	label, confidence, err := net.Classify(testGlyph(32))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if confidence < 0 || confidence > 1 {
		t.Errorf("confidence %f out of [0,1]", confidence)
	}
	if label == "" {
		t.Error("empty label")
	}
}

func TestNewEnglishNet_RejectsWrongShape(t *testing.T) {
	w := englishWeights()
	w["fc2.weight"] = fill(10*256, 1) // final layer width must match labels
	if _, err := NewEnglishNet(w); err == nil {
		t.Error("expected shape validation error")
	}
}

func TestNewEnglishNet_RejectsMissingTensor(t *testing.T) {
	w := englishWeights()
	delete(w, "conv2.bias")
	if _, err := NewEnglishNet(w); err == nil {
		t.Error("expected missing tensor error")
	}
}

func TestWeights_Roundtrip(t *testing.T) {
	w := WeightMap{
		"conv1.weight": {1.5, -2.25, 0},
		"conv1.bias":   {0.125},
	}
	data, err := MarshalWeights(w, []string{"conv1.weight", "conv1.bias"})
	if err != nil {
		t.Fatalf("MarshalWeights: %v", err)
	}

	got, err := UnmarshalWeights(data)
	if err != nil {
		t.Fatalf("UnmarshalWeights: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tensors, want 2", len(got))
	}
	for i, v := range w["conv1.weight"] {
		if got["conv1.weight"][i] != v {
			t.Errorf("weight[%d] = %f, want %f", i, got["conv1.weight"][i], v)
		}
	}
}

func TestUnmarshalWeights_BadMagic(t *testing.T) {
	if _, err := UnmarshalWeights([]byte("XXXX garbage")); err == nil {
		t.Error("expected bad magic error")
	}
}

func TestUnmarshalWeights_Truncated(t *testing.T) {
	w := WeightMap{"a": {1, 2, 3, 4}}
	data, err := MarshalWeights(w, []string{"a"})
	if err != nil {
		t.Fatalf("MarshalWeights: %v", err)
	}
	if _, err := UnmarshalWeights(data[:len(data)-6]); err == nil {
		t.Error("expected truncation error")
	}
}

func TestRegistry_MissingWeightsDegrades(t *testing.T) {
	cfg := Config{
		EnglishWeights: filepath.Join(t.TempDir(), "missing_en.akw"),
		NepaliWeights:  filepath.Join(t.TempDir(), "missing_ne.akw"),
	}
	r := NewRegistry(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if _, err := r.Classifier(LanguageEnglish); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("got %v, want ErrModelUnavailable", err)
	}
	if got := len(r.Loaded()); got != 0 {
		t.Errorf("%d languages loaded, want 0", got)
	}
}

func TestRegistry_LoadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "english.akw")

	w := englishWeights()
	order := make([]string, 0, len(w))
	for name := range w {
		order = append(order, name)
	}
	data, err := MarshalWeights(w, order)
	if err != nil {
		t.Fatalf("MarshalWeights: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	cfg := Config{
		EnglishWeights: path,
		NepaliWeights:  filepath.Join(dir, "missing.akw"),
	}
	r := NewRegistry(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	c, err := r.Classifier(LanguageEnglish)
	if err != nil {
		t.Fatalf("Classifier(english): %v", err)
	}
	if c.InputSize() != 28 {
		t.Errorf("input size %d, want 28", c.InputSize())
	}

	if _, err := r.Classifier(LanguageNepali); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("nepali: got %v, want ErrModelUnavailable", err)
	}
}

func TestParseLanguage(t *testing.T) {
	if _, err := ParseLanguage("english"); err != nil {
		t.Errorf("english: %v", err)
	}
	if _, err := ParseLanguage("nepali"); err != nil {
		t.Errorf("nepali: %v", err)
	}
	if _, err := ParseLanguage("klingon"); err == nil {
		t.Error("expected error for unsupported language")
	}
}
