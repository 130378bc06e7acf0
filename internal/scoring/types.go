// Package scoring maps classifier predictions onto dyslexia-risk weights
// using per-language tables of known letter confusions, and folds a
// session's results into a final assessment.
package scoring

// AnalysisResult is the outcome of scoring one submission, writing or
// speaking. Immutable once produced.
type AnalysisResult struct {
	QuestionType string  `json:"question_type"`
	Target       string  `json:"target"`
	Predicted    string  `json:"predicted"`
	Confidence   float64 `json:"confidence"`
	IsCorrect    bool    `json:"is_correct"`
	RiskWeight   int     `json:"risk_weight"`
	Feedback     string  `json:"feedback"`
}

// FinalAssessment is the session-level risk report, recomputed from a
// batch of results every time and never persisted.
type FinalAssessment struct {
	ScorePercentage int    `json:"score_percentage"`
	RiskLabel       string `json:"risk_label"`
	RiskColor       string `json:"risk_color"`
	SummaryText     string `json:"summary_text"`
}
