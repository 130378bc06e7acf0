package assess

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/Dipin-Adhikari/akshara/internal/cnn"
	"github.com/Dipin-Adhikari/akshara/internal/glyph"
	"github.com/Dipin-Adhikari/akshara/internal/scoring"
)

// stubClassifier always predicts a fixed label.
type stubClassifier struct {
	label      string
	confidence float64
	size       int
}

func (s *stubClassifier) Classify(g *glyph.Glyph) (string, float64, error) {
	if g.Size != s.size {
		return "", 0, errors.New("wrong glyph size")
	}
	return s.label, s.confidence, nil
}

func (s *stubClassifier) InputSize() int   { return s.size }
func (s *stubClassifier) ContentSize() int { return s.size - 8 }
func (s *stubClassifier) Labels() []string { return []string{s.label} }

func testService(t *testing.T, predicted string) *Service {
	t.Helper()
	registry := cnn.NewRegistryWith(map[cnn.Language]cnn.Classifier{
		cnn.LanguageEnglish: &stubClassifier{label: predicted, confidence: 0.9, size: 28},
	})
	scorer := scoring.NewScorer(scoring.DefaultConfig())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(registry, scorer, logger)
}

func pngPayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	for y := 10; y < 40; y++ {
		for x := 20; x < 30; x++ {
			img.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAnalyzeWriting_Correct(t *testing.T) {
	svc := testService(t, "b")

	res, err := svc.AnalyzeWriting(context.Background(), Submission{
		TargetLetter: "b",
		ImageBase64:  pngPayload(t),
		Language:     "english",
	})
	if err != nil {
		t.Fatalf("AnalyzeWriting: %v", err)
	}
	if !res.IsCorrect || res.RiskWeight != 0 {
		t.Errorf("got (%v,%d), want correct with zero risk", res.IsCorrect, res.RiskWeight)
	}
	if res.QuestionType != "writing" {
		t.Errorf("question type %q, want writing", res.QuestionType)
	}
	if res.Confidence != 0.9 {
		t.Errorf("confidence %f, want 0.9", res.Confidence)
	}
}

func TestAnalyzeWriting_MirrorError(t *testing.T) {
	svc := testService(t, "d")

	res, err := svc.AnalyzeWriting(context.Background(), Submission{
		TargetLetter: "b",
		ImageBase64:  pngPayload(t),
		Language:     "english",
	})
	if err != nil {
		t.Fatalf("AnalyzeWriting: %v", err)
	}
	if res.IsCorrect {
		t.Error("mirror error scored as correct")
	}
	if res.RiskWeight != 100 {
		t.Errorf("risk weight %d, want 100", res.RiskWeight)
	}
}

func TestAnalyzeWriting_DataURLPrefix(t *testing.T) {
	svc := testService(t, "b")

	_, err := svc.AnalyzeWriting(context.Background(), Submission{
		TargetLetter: "b",
		ImageBase64:  "data:image/png;base64," + pngPayload(t),
		Language:     "english",
	})
	if err != nil {
		t.Fatalf("data URL payload rejected: %v", err)
	}
}

func TestAnalyzeWriting_BadImage(t *testing.T) {
	svc := testService(t, "b")

	_, err := svc.AnalyzeWriting(context.Background(), Submission{
		TargetLetter: "b",
		ImageBase64:  base64.StdEncoding.EncodeToString([]byte("junk")),
		Language:     "english",
	})
	if !errors.Is(err, glyph.ErrDecode) {
		t.Errorf("got %v, want ErrDecode", err)
	}
}

func TestAnalyzeWriting_BadBase64(t *testing.T) {
	svc := testService(t, "b")

	_, err := svc.AnalyzeWriting(context.Background(), Submission{
		TargetLetter: "b",
		ImageBase64:  "%%% not base64 %%%",
		Language:     "english",
	})
	if !errors.Is(err, glyph.ErrDecode) {
		t.Errorf("got %v, want ErrDecode", err)
	}
}

func TestAnalyzeWriting_ModelUnavailable(t *testing.T) {
	svc := testService(t, "b")

	_, err := svc.AnalyzeWriting(context.Background(), Submission{
		TargetLetter: "ka",
		ImageBase64:  pngPayload(t),
		Language:     "nepali",
	})
	if !errors.Is(err, cnn.ErrModelUnavailable) {
		t.Errorf("got %v, want ErrModelUnavailable", err)
	}
}

func TestAnalyzeWriting_UnknownLanguage(t *testing.T) {
	svc := testService(t, "b")

	_, err := svc.AnalyzeWriting(context.Background(), Submission{
		TargetLetter: "b",
		ImageBase64:  pngPayload(t),
		Language:     "latin",
	})
	if err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestFinishAssessment(t *testing.T) {
	svc := testService(t, "b")

	fa := svc.FinishAssessment([]scoring.AnalysisResult{
		{RiskWeight: 100}, {RiskWeight: 0},
	})
	if fa.ScorePercentage != 50 {
		t.Errorf("score = %d, want 50", fa.ScorePercentage)
	}

	empty := svc.FinishAssessment(nil)
	if empty.ScorePercentage != 0 || empty.RiskLabel != "N/A" {
		t.Errorf("empty batch: got (%d,%q), want (0,N/A)", empty.ScorePercentage, empty.RiskLabel)
	}
}
