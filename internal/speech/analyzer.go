package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/Dipin-Adhikari/akshara/internal/llm"
	"github.com/Dipin-Adhikari/akshara/internal/scoring"
)

// correctBelow is the risk weight under which an attempt counts as correct.
const correctBelow = 40

// AnalyzerConfig holds configuration for the LLM reading assessor.
type AnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultAnalyzerConfig returns sensible defaults.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// Analyzer scores recorded read-aloud attempts via a multimodal LLM.
type Analyzer struct {
	provider llm.Provider
	cfg      AnalyzerConfig
	logger   *slog.Logger
}

// NewAnalyzer creates a reading assessor backed by the given provider.
// The provider must accept audio attachments.
func NewAnalyzer(provider llm.Provider, cfg AnalyzerConfig, logger *slog.Logger) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg, logger: logger}
}

// Request is a single read-aloud attempt to assess.
type Request struct {
	Audio      []byte
	MIMEType   string // e.g. "audio/webm"; defaults to "audio/mp3" if empty
	TargetText string
	Language   string
}

// analysisOutput is the raw LLM response.
type analysisOutput struct {
	TranscribedText string `json:"transcribed_text"`
	AccuracyScore   int    `json:"accuracy_score"`
	RiskWeight      int    `json:"risk_weight"`
	Feedback        string `json:"feedback"`
}

// Analyze sends the recording to the LLM and maps the assessment to an
// AnalysisResult. Provider failures degrade to a zero-risk retry result
// rather than an error, so one bad recording never aborts a session.
func (a *Analyzer) Analyze(ctx context.Context, req Request) scoring.AnalysisResult {
	ctx = llm.WithPurpose(ctx, "reading-analysis")

	userMsg, err := buildAnalysisMessage(req)
	if err != nil {
		a.logger.Warn("speech prompt build failed", "err", err)
		return fallbackResult(req.TargetText)
	}

	mime := req.MIMEType
	if mime == "" {
		mime = "audio/mp3"
	}

	llmReq := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Attachments: []llm.Attachment{
			{MIMEType: mime, Data: req.Audio},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, llmReq)
	if err != nil {
		a.logger.Warn("speech analysis failed", "target", req.TargetText, "err", err)
		return fallbackResult(req.TargetText)
	}

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		a.logger.Warn("speech analysis unparseable", "err", err)
		return fallbackResult(req.TargetText)
	}

	return scoring.AnalysisResult{
		QuestionType: "speaking",
		Target:       req.TargetText,
		Predicted:    raw.TranscribedText,
		Confidence:   clamp01(float64(raw.AccuracyScore) / 100.0),
		IsCorrect:    raw.RiskWeight < correctBelow,
		RiskWeight:   clampWeight(raw.RiskWeight),
		Feedback:     raw.Feedback,
	}
}

// fallbackResult is returned when the recording could not be assessed.
// Risk stays at zero so an infrastructure failure never inflates a
// child's risk score.
func fallbackResult(target string) scoring.AnalysisResult {
	return scoring.AnalysisResult{
		QuestionType: "speaking",
		Target:       target,
		Predicted:    "Error processing audio",
		Confidence:   0,
		IsCorrect:    false,
		RiskWeight:   0,
		Feedback:     "Could not analyze audio. Please try again.",
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampWeight(w int) int {
	if w < 0 {
		return 0
	}
	if w > 100 {
		return 100
	}
	return w
}

const analysisSystemPrompt = `You are an expert dyslexia assessor reviewing recordings of children (roughly 6-12 years old) reading short texts aloud.

Instructions:
- Transcribe exactly what the child said.
- Score accuracy from 0 to 100 against the target text.
- Watch for phonological processing signs: skipped words, stuttering on specific sounds.
- Assign risk_weight: 0 if perfect or near perfect, 20 for minor hesitations, 50 for mispronounced key words, 100 for inability to read or completely wrong words.
- Feedback must be short and encouraging (max 10 words).`

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Target text: "{{.TargetText}}"
Language: {{.Language}}

The child's recording is attached. Assess the attempt.`))

func buildAnalysisMessage(req Request) (string, error) {
	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("render analysis template: %w", err)
	}
	return buf.String(), nil
}
