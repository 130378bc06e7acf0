package scoring

import (
	"fmt"
	"strings"
)

// Scorer applies the confusion-table policy. Safe for concurrent use:
// all state is read-only after construction.
type Scorer struct {
	cfg *Config

	// lookup[language][target][predicted] -> matched confusion group.
	lookup map[string]map[string]map[string]*ConfusionGroup
}

// NewScorer builds a scorer and its pair lookup from a validated config.
// Every configured pair is indexed in both directions: writing 'd' for a
// 'b' target is the same clinical signal as the reverse.
func NewScorer(cfg *Config) *Scorer {
	lookup := make(map[string]map[string]map[string]*ConfusionGroup, len(cfg.Languages))
	for lang, table := range cfg.Languages {
		byTarget := make(map[string]map[string]*ConfusionGroup)
		for i := range table.Confusions {
			g := &table.Confusions[i]
			for _, pair := range g.Pairs {
				a := strings.ToLower(pair[0])
				b := strings.ToLower(pair[1])
				indexPair(byTarget, a, b, g)
				indexPair(byTarget, b, a, g)
			}
		}
		lookup[lang] = byTarget
	}
	return &Scorer{cfg: cfg, lookup: lookup}
}

func indexPair(byTarget map[string]map[string]*ConfusionGroup, target, predicted string, g *ConfusionGroup) {
	if byTarget[target] == nil {
		byTarget[target] = make(map[string]*ConfusionGroup)
	}
	byTarget[target][predicted] = g
}

// Score maps (target, predicted) onto (isCorrect, riskWeight, feedback)
// for the given language. Policy in priority order: exact match wins
// regardless of any table entry, then a confusion-table hit at its
// configured severity, then the language's flat baseline.
func (s *Scorer) Score(language, target, predicted string) (bool, int, string) {
	target = strings.ToLower(strings.TrimSpace(target))
	predicted = strings.ToLower(strings.TrimSpace(predicted))

	table, ok := s.cfg.Languages[language]
	if !ok {
		table = LanguageTable{BaselineWeight: 20, CorrectFeedback: "Correct"}
	}

	if target == predicted {
		return true, 0, table.CorrectFeedback
	}

	if g, ok := s.lookup[language][target][predicted]; ok {
		return false, g.Weight, confusionFeedback(g.Kind, target, predicted)
	}

	return false, table.BaselineWeight, fmt.Sprintf("Incorrect. Looks like %q", predicted)
}

// confusionFeedback names the specific confusion so the final report can
// surface which clinical marker fired.
func confusionFeedback(kind, target, predicted string) string {
	switch kind {
	case "mirror":
		return fmt.Sprintf("Mirror error: wrote %q instead of %q", predicted, target)
	case "rotation":
		return fmt.Sprintf("Rotation error: wrote %q instead of %q", predicted, target)
	case "visual":
		return fmt.Sprintf("Visual confusion: %q vs %q", predicted, target)
	default:
		return fmt.Sprintf("Known confusion (%s): %q vs %q", kind, predicted, target)
	}
}
