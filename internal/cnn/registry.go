package cnn

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrModelUnavailable indicates the requested language's weights did not
// load at startup. The condition is fatal per language, not per request:
// the same process will keep failing until redeployed with weights.
var ErrModelUnavailable = errors.New("model not loaded")

// Config locates the per-language weight artifacts.
type Config struct {
	EnglishWeights string
	NepaliWeights  string
}

// DefaultConfig returns the standard artifact locations.
func DefaultConfig() Config {
	return Config{
		EnglishWeights: "models/emnist_english.akw",
		NepaliWeights:  "models/devanagari_nepali.akw",
	}
}

// ConfigFromEnv overrides defaults from environment variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if p := os.Getenv("AKSHARA_ENGLISH_WEIGHTS"); p != "" {
		cfg.EnglishWeights = p
	}
	if p := os.Getenv("AKSHARA_NEPALI_WEIGHTS"); p != "" {
		cfg.NepaliWeights = p
	}
	return cfg
}

// Registry holds the loaded classifiers, one per language. It is built
// once at startup and read-only afterwards; a language whose weights
// failed to load stays registered as unavailable rather than crashing
// the process.
type Registry struct {
	classifiers map[Language]Classifier
	loadErrs    map[Language]error
}

// NewRegistry eagerly loads every configured language. Load failures are
// logged and recorded; they surface later as ErrModelUnavailable when the
// language is requested.
func NewRegistry(cfg Config, logger *slog.Logger) *Registry {
	r := &Registry{
		classifiers: make(map[Language]Classifier),
		loadErrs:    make(map[Language]error),
	}

	r.load(LanguageEnglish, cfg.EnglishWeights, logger, func(w WeightMap) (Classifier, error) {
		return NewEnglishNet(w)
	})
	r.load(LanguageNepali, cfg.NepaliWeights, logger, func(w WeightMap) (Classifier, error) {
		return NewNepaliNet(w)
	})

	return r
}

// NewRegistryWith builds a registry from pre-constructed classifiers.
// Intended for tests injecting doubles.
func NewRegistryWith(classifiers map[Language]Classifier) *Registry {
	r := &Registry{
		classifiers: make(map[Language]Classifier, len(classifiers)),
		loadErrs:    make(map[Language]error),
	}
	for lang, c := range classifiers {
		r.classifiers[lang] = c
	}
	return r
}

func (r *Registry) load(lang Language, path string, logger *slog.Logger, build func(WeightMap) (Classifier, error)) {
	weights, err := ReadWeightsFile(path)
	if err != nil {
		logger.Warn("model weights unavailable, language degraded",
			"language", lang, "path", path, "err", err)
		r.loadErrs[lang] = err
		return
	}
	c, err := build(weights)
	if err != nil {
		logger.Warn("model weights rejected, language degraded",
			"language", lang, "path", path, "err", err)
		r.loadErrs[lang] = err
		return
	}
	logger.Info("model loaded", "language", lang, "path", path, "classes", len(c.Labels()))
	r.classifiers[lang] = c
}

// Classifier returns the loaded classifier for a language, or
// ErrModelUnavailable (wrapping the load failure, if any).
func (r *Registry) Classifier(lang Language) (Classifier, error) {
	if c, ok := r.classifiers[lang]; ok {
		return c, nil
	}
	if err, ok := r.loadErrs[lang]; ok {
		return nil, fmt.Errorf("%w for %s: %v", ErrModelUnavailable, lang, err)
	}
	return nil, fmt.Errorf("%w for %s", ErrModelUnavailable, lang)
}

// Loaded reports the languages whose classifiers are serving.
func (r *Registry) Loaded() []Language {
	out := make([]Language, 0, len(r.classifiers))
	for lang := range r.classifiers {
		out = append(out, lang)
	}
	return out
}
