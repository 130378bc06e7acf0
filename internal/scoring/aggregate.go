package scoring

import "math"

// noDataAssessment is returned for an empty batch. An empty assessment
// is a valid, defined state, not an error.
var noDataAssessment = FinalAssessment{
	ScorePercentage: 0,
	RiskLabel:       "N/A",
	SummaryText:     "No data received.",
}

// Aggregate folds a session's per-item risk weights into a final
// percentage and tier. Every item contributes equally to the denominator
// regardless of modality, so writing and speaking results blend fairly.
func (s *Scorer) Aggregate(results []AnalysisResult) FinalAssessment {
	if len(results) == 0 {
		return noDataAssessment
	}

	total := 0
	for _, r := range results {
		total += r.RiskWeight
	}

	// Each item's maximum risk is 100, so the percentage reduces to
	// ceil(total / count), clamped.
	pct := int(math.Ceil(float64(total) / float64(len(results))))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	tier := s.tierFor(pct)
	return FinalAssessment{
		ScorePercentage: pct,
		RiskLabel:       tier.Label,
		RiskColor:       tier.Color,
		SummaryText:     tier.Summary,
	}
}

func (s *Scorer) tierFor(pct int) Tier {
	for _, t := range s.cfg.Tiers {
		if t.Below != 0 && pct < t.Below {
			return t
		}
	}
	return s.cfg.Tiers[len(s.cfg.Tiers)-1]
}
