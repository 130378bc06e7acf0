package speech

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Dipin-Adhikari/akshara/internal/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnalyzer_MapsAssessment(t *testing.T) {
	resp := json.RawMessage(`{"transcribed_text":"the cat sat","accuracy_score":90,"risk_weight":20,"feedback":"Great reading, keep going!"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig(), discardLogger())

	result := a.Analyze(context.Background(), Request{
		Audio:      []byte{0x1a, 0x45},
		MIMEType:   "audio/webm",
		TargetText: "The cat sat",
		Language:   "english",
	})

	if result.QuestionType != "speaking" {
		t.Errorf("question_type = %q, want speaking", result.QuestionType)
	}
	if result.Predicted != "the cat sat" {
		t.Errorf("predicted = %q, want transcription", result.Predicted)
	}
	if result.Confidence != 0.9 {
		t.Errorf("confidence = %f, want 0.9", result.Confidence)
	}
	if !result.IsCorrect {
		t.Error("risk 20 should count as correct")
	}
	if result.RiskWeight != 20 {
		t.Errorf("risk_weight = %d, want 20", result.RiskWeight)
	}
}

func TestAnalyzer_HighRiskIsIncorrect(t *testing.T) {
	resp := json.RawMessage(`{"transcribed_text":"","accuracy_score":10,"risk_weight":100,"feedback":"Let's try that again together!"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig(), discardLogger())

	result := a.Analyze(context.Background(), Request{
		Audio:      []byte{0x00},
		TargetText: "ball",
		Language:   "english",
	})

	if result.IsCorrect {
		t.Error("risk 100 should not count as correct")
	}
	if result.RiskWeight != 100 {
		t.Errorf("risk_weight = %d, want 100", result.RiskWeight)
	}
}

func TestAnalyzer_ProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig(), discardLogger())

	result := a.Analyze(context.Background(), Request{
		Audio:      []byte{0x00},
		TargetText: "sun",
		Language:   "english",
	})

	if result.RiskWeight != 0 {
		t.Errorf("fallback risk_weight = %d, want 0", result.RiskWeight)
	}
	if result.IsCorrect {
		t.Error("fallback should not be correct")
	}
	if result.Target != "sun" {
		t.Errorf("target = %q, want sun", result.Target)
	}
	if result.Feedback == "" {
		t.Error("fallback feedback should ask for a retry")
	}
}

func TestAnalyzer_UnparseableResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig(), discardLogger())

	result := a.Analyze(context.Background(), Request{
		Audio:      []byte{0x00},
		TargetText: "moon",
		Language:   "english",
	})

	if result.RiskWeight != 0 || result.IsCorrect {
		t.Errorf("fallback = %+v, want zero-risk incorrect", result)
	}
}

func TestAnalyzer_ClampsOutOfRangeValues(t *testing.T) {
	resp := json.RawMessage(`{"transcribed_text":"hi","accuracy_score":250,"risk_weight":-5,"feedback":"ok"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig(), discardLogger())

	result := a.Analyze(context.Background(), Request{
		Audio:      []byte{0x00},
		TargetText: "hi",
		Language:   "english",
	})

	if result.Confidence != 1 {
		t.Errorf("confidence = %f, want clamped to 1", result.Confidence)
	}
	if result.RiskWeight != 0 {
		t.Errorf("risk_weight = %d, want clamped to 0", result.RiskWeight)
	}
}
