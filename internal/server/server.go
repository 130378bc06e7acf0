// Package server exposes the assessment pipeline, curriculum and story
// generator over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Dipin-Adhikari/akshara/internal/assess"
	"github.com/Dipin-Adhikari/akshara/internal/curriculum"
	"github.com/Dipin-Adhikari/akshara/internal/scoring"
	"github.com/Dipin-Adhikari/akshara/internal/speech"
	"github.com/Dipin-Adhikari/akshara/internal/store"
)

// WritingAnalyzer runs the handwriting assessment pipeline.
type WritingAnalyzer interface {
	AnalyzeWriting(ctx context.Context, sub assess.Submission) (*scoring.AnalysisResult, error)
	FinishAssessment(results []scoring.AnalysisResult) scoring.FinalAssessment
}

// SpeechAnalyzer scores recorded read-aloud attempts.
type SpeechAnalyzer interface {
	Analyze(ctx context.Context, req speech.Request) scoring.AnalysisResult
}

// StorySource returns a user's generated story set.
type StorySource interface {
	Stories(ctx context.Context, userID string, refresh bool) (*store.StorySet, error)
}

// Speaker synthesizes instruction audio.
type Speaker interface {
	Speak(ctx context.Context, text, language string) ([]byte, error)
}

// ProgressTracker drives adaptive leveling and module progress.
type ProgressTracker interface {
	Level(ctx context.Context, userID, moduleID string) (int, error)
	ReportProgress(ctx context.Context, data store.AttemptData) error
	ModuleStatus(ctx context.Context, moduleID, userID string) (*curriculum.ModuleStatus, error)
}

// Config holds HTTP server configuration.
type Config struct {
	Addr     string
	ImageDir string
	AudioDir string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8000",
		ImageDir: "images",
		AudioDir: "audio",
	}
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if a := os.Getenv("AKSHARA_ADDR"); a != "" {
		cfg.Addr = a
	}
	if d := os.Getenv("AKSHARA_IMAGE_DIR"); d != "" {
		cfg.ImageDir = d
	}
	if d := os.Getenv("AKSHARA_AUDIO_DIR"); d != "" {
		cfg.AudioDir = d
	}
	return cfg
}

// Server routes HTTP requests to the domain services.
type Server struct {
	cfg      Config
	writing  WritingAnalyzer
	speaking SpeechAnalyzer
	stories  StorySource
	speaker  Speaker
	progress ProgressTracker
	content  store.ContentRepo
	logger   *slog.Logger
}

// New creates a Server. Any service may be nil; its routes then answer
// 503 so a partially configured deployment still serves the rest.
func New(cfg Config, writing WritingAnalyzer, speaking SpeechAnalyzer, stories StorySource, speaker Speaker, progress ProgressTracker, content store.ContentRepo, logger *slog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		writing:  writing,
		speaking: speaking,
		stories:  stories,
		speaker:  speaker,
		progress: progress,
		content:  content,
		logger:   logger,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/test/curriculum", s.handleCurriculum)
	mux.HandleFunc("/api/test/analyze/writing", s.handleAnalyzeWriting)
	mux.HandleFunc("/api/test/analyze/speaking", s.handleAnalyzeSpeaking)
	mux.HandleFunc("/api/test/finish-assessment", s.handleFinishAssessment)
	mux.HandleFunc("/api/test/speak", s.handleSpeak)
	mux.HandleFunc("/api/stories/", s.handleStories)
	mux.HandleFunc("/api/report-progress", s.handleReportProgress)
	mux.HandleFunc("/api/module/", s.handleModuleContent)
	mux.HandleFunc("/api/modules/", s.handleModules)
	mux.HandleFunc("/healthcheck", s.handleHealthcheck)

	// Generated media artifacts.
	mux.Handle("/images/", http.StripPrefix("/images/", http.FileServer(http.Dir(s.cfg.ImageDir))))
	mux.Handle("/audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(s.cfg.AudioDir))))

	return mux
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("server listening", "addr", s.cfg.Addr)
	return srv.ListenAndServe()
}
