package scoring

import "testing"

func results(weights ...int) []AnalysisResult {
	out := make([]AnalysisResult, len(weights))
	for i, w := range weights {
		out[i] = AnalysisResult{QuestionType: "writing", RiskWeight: w}
	}
	return out
}

func TestAggregate_Empty(t *testing.T) {
	s := NewScorer(DefaultConfig())

	fa := s.Aggregate(nil)
	if fa.ScorePercentage != 0 {
		t.Errorf("score = %d, want 0", fa.ScorePercentage)
	}
	if fa.RiskLabel != "N/A" {
		t.Errorf("label = %q, want N/A", fa.RiskLabel)
	}
}

func TestAggregate_Exact(t *testing.T) {
	s := NewScorer(DefaultConfig())

	fa := s.Aggregate(results(100, 0))
	if fa.ScorePercentage != 50 {
		t.Errorf("score = %d, want 50", fa.ScorePercentage)
	}
}

func TestAggregate_CeilRounding(t *testing.T) {
	s := NewScorer(DefaultConfig())

	// 20 / 3 ≈ 6.67, ceil → 7.
	fa := s.Aggregate(results(20, 0, 0))
	if fa.ScorePercentage != 7 {
		t.Errorf("score = %d, want 7", fa.ScorePercentage)
	}
}

func TestAggregate_Tiers(t *testing.T) {
	s := NewScorer(DefaultConfig())

	cases := []struct {
		weights []int
		label   string
	}{
		{[]int{0, 0, 0}, "Low Risk"},
		{[]int{20, 20, 20}, "Low Risk"},       // 20 < 25
		{[]int{100, 0, 0, 0}, "Moderate Risk"}, // 25
		{[]int{100, 20, 20}, "Moderate Risk"},  // 47
		{[]int{100, 100, 0}, "High Risk"},      // 67
		{[]int{100, 100, 100}, "High Risk"},
	}
	for _, c := range cases {
		fa := s.Aggregate(results(c.weights...))
		if fa.RiskLabel != c.label {
			t.Errorf("weights %v: label %q (score %d), want %q", c.weights, fa.RiskLabel, fa.ScorePercentage, c.label)
		}
	}
}

func TestAggregate_MonotoneInAddedRisk(t *testing.T) {
	s := NewScorer(DefaultConfig())

	batches := [][]int{
		{},
		{0},
		{20, 20},
		{100, 0, 50},
		{100, 100},
	}
	for _, weights := range batches {
		before := s.Aggregate(results(weights...)).ScorePercentage
		after := s.Aggregate(results(append(append([]int{}, weights...), 100)...)).ScorePercentage
		if after < before {
			t.Errorf("adding a 100-risk item dropped the score: %d -> %d (batch %v)", before, after, weights)
		}
	}
}

func TestAggregate_Clamped(t *testing.T) {
	s := NewScorer(DefaultConfig())

	fa := s.Aggregate(results(100, 100, 100, 100))
	if fa.ScorePercentage != 100 {
		t.Errorf("score = %d, want 100", fa.ScorePercentage)
	}
}

func TestAggregate_SummaryPresent(t *testing.T) {
	s := NewScorer(DefaultConfig())
	fa := s.Aggregate(results(100))
	if fa.SummaryText == "" {
		t.Error("expected a tier summary")
	}
	if fa.RiskColor == "" {
		t.Error("expected a tier color")
	}
}
