package scoring

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScore_ExactMatch(t *testing.T) {
	s := NewScorer(DefaultConfig())

	correct, weight, feedback := s.Score("english", "b", "b")
	if !correct || weight != 0 {
		t.Errorf("got (%v,%d), want (true,0)", correct, weight)
	}
	if !strings.Contains(feedback, "Correct") {
		t.Errorf("feedback %q does not confirm correctness", feedback)
	}
}

func TestScore_ExactMatchCaseInsensitive(t *testing.T) {
	s := NewScorer(DefaultConfig())

	correct, weight, _ := s.Score("english", "B", "b")
	if !correct || weight != 0 {
		t.Errorf("got (%v,%d), want (true,0)", correct, weight)
	}
}

func TestScore_ExactMatchBeatsConfusionTable(t *testing.T) {
	// Even for letters that appear in the confusion table, an exact
	// match must always score zero risk.
	s := NewScorer(DefaultConfig())
	for _, letter := range []string{"b", "d", "p", "q", "m", "w"} {
		correct, weight, _ := s.Score("english", letter, letter)
		if !correct || weight != 0 {
			t.Errorf("%s: got (%v,%d), want (true,0)", letter, correct, weight)
		}
	}
}

func TestScore_EnglishMirrorPairs(t *testing.T) {
	s := NewScorer(DefaultConfig())

	cases := []struct{ target, predicted string }{
		{"b", "d"}, {"d", "b"}, {"p", "q"}, {"q", "p"}, {"m", "w"}, {"w", "m"},
	}
	for _, c := range cases {
		correct, weight, feedback := s.Score("english", c.target, c.predicted)
		if correct {
			t.Errorf("%s/%s scored as correct", c.target, c.predicted)
		}
		if weight != 100 {
			t.Errorf("%s/%s weight = %d, want 100", c.target, c.predicted, weight)
		}
		if !strings.Contains(strings.ToLower(feedback), "mirror") {
			t.Errorf("%s/%s feedback %q does not mention the mirror error", c.target, c.predicted, feedback)
		}
	}
}

func TestScore_NepaliVisualPairs(t *testing.T) {
	s := NewScorer(DefaultConfig())

	for _, c := range []struct{ target, predicted string }{
		{"ka", "pha"}, {"pha", "ka"}, {"ma", "bha"}, {"bha", "ma"},
	} {
		correct, weight, feedback := s.Score("nepali", c.target, c.predicted)
		if correct {
			t.Errorf("%s/%s scored as correct", c.target, c.predicted)
		}
		if weight != 80 {
			t.Errorf("%s/%s weight = %d, want 80", c.target, c.predicted, weight)
		}
		if !strings.Contains(strings.ToLower(feedback), "confusion") {
			t.Errorf("feedback %q does not name the confusion", feedback)
		}
	}
}

func TestScore_BaselineError(t *testing.T) {
	s := NewScorer(DefaultConfig())

	correct, weight, feedback := s.Score("english", "a", "z")
	if correct {
		t.Error("a/z scored as correct")
	}
	if weight != 20 {
		t.Errorf("weight = %d, want baseline 20", weight)
	}
	if !strings.Contains(feedback, "z") {
		t.Errorf("feedback %q does not mention the predicted letter", feedback)
	}
}

func TestScore_TablesAreLanguageScoped(t *testing.T) {
	// b/d is an English mirror pair; for Nepali it is just a baseline miss.
	s := NewScorer(DefaultConfig())

	_, weight, _ := s.Score("nepali", "b", "d")
	if weight != 20 {
		t.Errorf("weight = %d, want nepali baseline 20", weight)
	}
}

func TestLoadConfig_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "risk.yaml")
	override := `
languages:
  english:
    baseline_weight: 35
    correct_feedback: "Well done"
    confusions:
      - kind: rotation
        weight: 90
        pairs:
          - [n, u]
tiers:
  - label: "Fine"
    below: 50
    summary: "ok"
  - label: "Not fine"
    summary: "not ok"
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	s := NewScorer(cfg)

	_, weight, feedback := s.Score("english", "n", "u")
	if weight != 90 {
		t.Errorf("weight = %d, want 90 from override", weight)
	}
	if !strings.Contains(strings.ToLower(feedback), "rotation") {
		t.Errorf("feedback %q does not name the rotation confusion", feedback)
	}

	_, weight, _ = s.Score("english", "a", "z")
	if weight != 35 {
		t.Errorf("baseline = %d, want overridden 35", weight)
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Languages) != 2 {
		t.Errorf("%d languages, want 2", len(cfg.Languages))
	}
}

func TestConfig_ValidateRejectsBadWeight(t *testing.T) {
	cfg := DefaultConfig()
	table := cfg.Languages["english"]
	table.BaselineWeight = 150
	cfg.Languages["english"] = table
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for weight > 100")
	}
}

func TestConfig_ValidateRejectsUnboundedMiddleTier(t *testing.T) {
	// Zero means open-ended, so a middle tier with no bound would be
	// skipped during lookup instead of matching anything.
	cfg := DefaultConfig()
	cfg.Tiers[1].Below = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for middle tier without a bound")
	}
}

func TestConfig_ValidateRejectsNonAscendingTiers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tiers[0].Below, cfg.Tiers[1].Below = cfg.Tiers[1].Below, cfg.Tiers[0].Below
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-order tier bounds")
	}
}
