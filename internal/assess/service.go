// Package assess orchestrates the handwriting assessment pipeline:
// payload decode, glyph normalization, classification and risk scoring.
package assess

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dipin-Adhikari/akshara/internal/cnn"
	"github.com/Dipin-Adhikari/akshara/internal/glyph"
	"github.com/Dipin-Adhikari/akshara/internal/scoring"
)

// Submission is one handwriting item: ephemeral, never persisted here.
type Submission struct {
	TargetLetter string `json:"target_letter"`
	ImageBase64  string `json:"image_base64"`
	Language     string `json:"language"`
}

// ClassifierSource resolves a language to its loaded classifier.
// *cnn.Registry is the production implementation; tests inject doubles.
type ClassifierSource interface {
	Classifier(lang cnn.Language) (cnn.Classifier, error)
}

// Service runs the writing analysis pipeline. Stateless past model load;
// safe for concurrent use.
type Service struct {
	models ClassifierSource
	scorer *scoring.Scorer
	logger *slog.Logger
}

// NewService wires the pipeline.
func NewService(models ClassifierSource, scorer *scoring.Scorer, logger *slog.Logger) *Service {
	return &Service{models: models, scorer: scorer, logger: logger}
}

// AnalyzeWriting evaluates a single handwriting submission. It either
// returns a complete AnalysisResult or an error. A failed analysis must
// block progression rather than default to correct or incorrect, since a
// guessed score corrupts the clinical signal.
//
// Inference runs to completion once started; ctx is only consulted
// before the forward pass begins.
func (s *Service) AnalyzeWriting(ctx context.Context, sub Submission) (*scoring.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lang, err := cnn.ParseLanguage(sub.Language)
	if err != nil {
		return nil, err
	}

	classifier, err := s.models.Classifier(lang)
	if err != nil {
		return nil, err
	}

	raw, err := decodePayload(sub.ImageBase64)
	if err != nil {
		return nil, err
	}

	g, err := glyph.Normalize(raw, classifier.InputSize(), classifier.ContentSize())
	if err != nil {
		return nil, err
	}

	predicted, confidence, err := classifier.Classify(g)
	if err != nil {
		return nil, fmt.Errorf("classify %s glyph: %w", lang, err)
	}

	target := strings.ToLower(strings.TrimSpace(sub.TargetLetter))
	isCorrect, riskWeight, feedback := s.scorer.Score(string(lang), target, predicted)

	s.logger.Debug("writing analyzed",
		"language", lang,
		"target", target,
		"predicted", predicted,
		"confidence", confidence,
		"risk_weight", riskWeight)

	return &scoring.AnalysisResult{
		QuestionType: "writing",
		Target:       target,
		Predicted:    predicted,
		Confidence:   confidence,
		IsCorrect:    isCorrect,
		RiskWeight:   riskWeight,
		Feedback:     feedback,
	}, nil
}

// FinishAssessment folds a session's results into the final risk report.
// Total: an empty batch yields the defined no-data assessment.
func (s *Service) FinishAssessment(results []scoring.AnalysisResult) scoring.FinalAssessment {
	fa := s.scorer.Aggregate(results)
	s.logger.Info("assessment completed",
		"items", len(results),
		"risk_percentage", fa.ScorePercentage,
		"risk_label", fa.RiskLabel)
	return fa
}

// decodePayload accepts raw base64 with an optional data-URL prefix
// (the capture UI submits "data:image/png;base64,...").
func decodePayload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, "base64,"); idx >= 0 {
		payload = payload[idx+len("base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", glyph.ErrDecode, err)
	}
	return raw, nil
}
