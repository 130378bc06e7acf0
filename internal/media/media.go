// Package media generates story illustrations and narration audio,
// caching artifacts on disk keyed by a content hash so repeated prompts
// never pay for a second API call.
package media

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config holds media generation configuration.
type Config struct {
	// ClipdropAPIKey authorizes text-to-image requests. When empty,
	// image generation returns a placeholder URL.
	ClipdropAPIKey string

	// ImageDir and AudioDir are the local cache directories.
	ImageDir string
	AudioDir string

	// BaseURL is the public prefix under which the cache directories
	// are served, e.g. "http://localhost:8000".
	BaseURL string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ImageDir: "images",
		AudioDir: "audio",
		BaseURL:  "http://localhost:8000",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("AKSHARA_CLIPDROP_API_KEY"); k != "" {
		cfg.ClipdropAPIKey = k
	} else if k := os.Getenv("CLIPDROP_API_KEY"); k != "" {
		cfg.ClipdropAPIKey = k
	}
	if d := os.Getenv("AKSHARA_IMAGE_DIR"); d != "" {
		cfg.ImageDir = d
	}
	if d := os.Getenv("AKSHARA_AUDIO_DIR"); d != "" {
		cfg.AudioDir = d
	}
	if u := os.Getenv("AKSHARA_MEDIA_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	return cfg
}

// Service generates and caches story media.
type Service struct {
	cfg         Config
	httpClient  *http.Client
	synthesizer Synthesizer
	endpoint    string
	logger      *slog.Logger
}

// NewService creates a media service. synth may be nil, in which case
// audio generation is disabled and AudioURL returns "".
func NewService(cfg Config, synth Synthesizer, logger *slog.Logger) *Service {
	return &Service{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		synthesizer: synth,
		endpoint:    clipdropEndpoint,
		logger:      logger,
	}
}
