package scoring

import (
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

//go:embed defaults.yaml
var defaultConfigYAML []byte

// Config is the externally loaded scoring policy: per-language confusion
// tables plus the aggregate risk tiers. Loaded once at startup, never
// mutated afterwards.
type Config struct {
	Languages map[string]LanguageTable `yaml:"languages"`
	Tiers     []Tier                   `yaml:"tiers"`
}

// LanguageTable holds one language's scoring policy.
type LanguageTable struct {
	// BaselineWeight is the risk assigned to a plain wrong answer that
	// matches no known confusion.
	BaselineWeight int `yaml:"baseline_weight"`

	// CorrectFeedback is the message returned on an exact match.
	CorrectFeedback string `yaml:"correct_feedback"`

	Confusions []ConfusionGroup `yaml:"confusions"`
}

// ConfusionGroup is a set of symmetric letter pairs sharing one named
// confusion kind and severity. Mirror-image pairs are the canonical
// dyslexia marker and carry the maximum severity.
type ConfusionGroup struct {
	Kind   string      `yaml:"kind"`
	Weight int         `yaml:"weight"`
	Pairs  [][2]string `yaml:"pairs"`
}

// Tier is one band of the final risk scale. A tier with Below == 0 is
// the open-ended top band.
type Tier struct {
	Label   string `yaml:"label"`
	Below   int    `yaml:"below"`
	Color   string `yaml:"color"`
	Summary string `yaml:"summary"`
}

// DefaultConfig parses the embedded scoring tables.
func DefaultConfig() *Config {
	cfg, err := parseConfig(defaultConfigYAML)
	if err != nil {
		// The embedded file ships with the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded scoring config invalid: %v", err))
	}
	return cfg
}

// LoadConfig reads a scoring policy from path, falling back to the
// embedded defaults when path is empty.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring config: %w", err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that weights are in range and the tier ladder is
// usable.
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("no languages configured")
	}
	for lang, table := range c.Languages {
		if table.BaselineWeight < 0 || table.BaselineWeight > 100 {
			return fmt.Errorf("%s: baseline_weight %d out of [0,100]", lang, table.BaselineWeight)
		}
		for _, g := range table.Confusions {
			if g.Weight < 0 || g.Weight > 100 {
				return fmt.Errorf("%s: confusion %q weight %d out of [0,100]", lang, g.Kind, g.Weight)
			}
			if len(g.Pairs) == 0 {
				return fmt.Errorf("%s: confusion %q has no pairs", lang, g.Kind)
			}
		}
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("no risk tiers configured")
	}
	if last := c.Tiers[len(c.Tiers)-1]; last.Below != 0 {
		return fmt.Errorf("last tier %q must be open-ended (no below bound)", last.Label)
	}
	// Below == 0 doubles as the open-ended marker, so a middle tier
	// carrying it would be silently skipped at lookup time. Require
	// every bounded tier to have a positive, ascending bound.
	prev := 0
	for _, t := range c.Tiers[:len(c.Tiers)-1] {
		if t.Below <= 0 {
			return fmt.Errorf("tier %q: below must be positive", t.Label)
		}
		if t.Below <= prev {
			return fmt.Errorf("tier %q: below %d must exceed the previous tier's bound %d", t.Label, t.Below, prev)
		}
		prev = t.Below
	}
	return nil
}
