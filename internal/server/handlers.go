package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Dipin-Adhikari/akshara/internal/assess"
	"github.com/Dipin-Adhikari/akshara/internal/cnn"
	"github.com/Dipin-Adhikari/akshara/internal/curriculum"
	"github.com/Dipin-Adhikari/akshara/internal/glyph"
	"github.com/Dipin-Adhikari/akshara/internal/scoring"
	"github.com/Dipin-Adhikari/akshara/internal/speech"
	"github.com/Dipin-Adhikari/akshara/internal/store"
)

// maxAudioUpload bounds speaking submissions at 10 MiB.
const maxAudioUpload = 10 << 20

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("OK")); err != nil {
		s.logger.Error("unable to write healthcheck", "err", err)
	}
}

func (s *Server) handleCurriculum(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, curriculum.Screening())
}

func (s *Server) handleAnalyzeWriting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.writing == nil {
		http.Error(w, "Writing analysis unavailable", http.StatusServiceUnavailable)
		return
	}

	var sub assess.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.logger.Error("unable to decode submission", "err", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := s.writing.AnalyzeWriting(r.Context(), sub)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	s.writeJSON(w, result)
}

func (s *Server) handleAnalyzeSpeaking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.speaking == nil {
		http.Error(w, "Speech analysis unavailable", http.StatusServiceUnavailable)
		return
	}

	if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
		s.logger.Error("unable to parse speaking form", "err", err)
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing audio file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioUpload))
	if err != nil {
		s.logger.Error("unable to read audio upload", "err", err)
		http.Error(w, "Failed to read audio", http.StatusBadRequest)
		return
	}

	result := s.speaking.Analyze(r.Context(), speech.Request{
		Audio:      audio,
		MIMEType:   header.Header.Get("Content-Type"),
		TargetText: r.FormValue("target_text"),
		Language:   r.FormValue("language"),
	})
	s.writeJSON(w, result)
}

func (s *Server) handleFinishAssessment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.writing == nil {
		http.Error(w, "Assessment unavailable", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Results []scoring.AnalysisResult `json:"results"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error("unable to decode results", "err", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	s.writeJSON(w, s.writing.FinishAssessment(req.Results))
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.speaker == nil {
		http.Error(w, "Speech synthesis unavailable", http.StatusServiceUnavailable)
		return
	}

	text := r.FormValue("text")
	if text == "" {
		text = "No text provided"
	}
	language := r.FormValue("language")
	if language == "" {
		language = "english"
	}

	audio, err := s.speaker.Speak(r.Context(), text, language)
	if err != nil {
		s.logger.Error("speech synthesis failed", "err", err)
		http.Error(w, "Speech synthesis failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	if _, err := w.Write(audio); err != nil {
		s.logger.Error("unable to write audio response", "err", err)
	}
}

func (s *Server) handleStories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.stories == nil {
		http.Error(w, "Story generation unavailable", http.StatusServiceUnavailable)
		return
	}

	userID := strings.TrimPrefix(r.URL.Path, "/api/stories/")
	if userID == "" || strings.Contains(userID, "/") {
		http.Error(w, "Missing user id", http.StatusBadRequest)
		return
	}
	refresh := r.URL.Query().Get("refresh") == "true"

	set, err := s.stories.Stories(r.Context(), userID, refresh)
	if err != nil {
		s.logger.Error("story generation failed", "user", userID, "err", err)
		http.Error(w, "Story generation failed", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, set)
}

func (s *Server) handleReportProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.progress == nil {
		http.Error(w, "Progress tracking unavailable", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		UserID         string `json:"user_id"`
		ModuleID       string `json:"module_id"`
		Level          int    `json:"level"`
		Epoch          int    `json:"epoch"`
		SelectedID     string `json:"selected_id"`
		TargetLetter   string `json:"target_letter"`
		IsCorrect      bool   `json:"is_correct"`
		ResponseTimeMs int    `json:"response_time_ms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error("unable to decode progress report", "err", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.ModuleID == "" {
		http.Error(w, "Missing user_id or module_id", http.StatusBadRequest)
		return
	}

	err := s.progress.ReportProgress(r.Context(), store.AttemptData{
		UserID:         req.UserID,
		ModuleID:       req.ModuleID,
		Level:          req.Level,
		Epoch:          req.Epoch,
		QuestionType:   "module",
		TargetLetter:   req.TargetLetter,
		SelectedID:     req.SelectedID,
		Correct:        req.IsCorrect,
		ResponseTimeMs: req.ResponseTimeMs,
	})
	if err != nil {
		s.logger.Error("progress report failed", "err", err)
		http.Error(w, "Failed to record progress", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, map[string]string{"status": "success"})
}

func (s *Server) handleModuleContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.progress == nil || s.content == nil {
		http.Error(w, "Module content unavailable", http.StatusServiceUnavailable)
		return
	}

	// Path shape: /api/module/{module_id}/{user_id}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/module/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "Expected /api/module/{module_id}/{user_id}", http.StatusBadRequest)
		return
	}
	moduleID, userID := parts[0], parts[1]

	level, err := s.progress.Level(r.Context(), userID, moduleID)
	if err != nil {
		s.logger.Error("level lookup failed", "err", err)
		http.Error(w, "Failed to resolve level", http.StatusInternalServerError)
		return
	}

	task, err := s.content.RandomTask(r.Context(), moduleID, level)
	if err != nil {
		s.logger.Error("content lookup failed", "err", err)
		http.Error(w, "Failed to load content", http.StatusInternalServerError)
		return
	}
	if task == nil {
		http.Error(w, "No content found for module "+moduleID, http.StatusNotFound)
		return
	}
	s.writeJSON(w, task)
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.progress == nil {
		http.Error(w, "Module catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	// Path shapes: /api/modules/all/{user_id} or /api/modules/{module_id}/{user_id}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/modules/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "Expected /api/modules/{module_id}/{user_id}", http.StatusBadRequest)
		return
	}
	moduleID, userID := parts[0], parts[1]

	if moduleID == "all" {
		var statuses []*curriculum.ModuleStatus
		for _, desc := range curriculum.Modules() {
			status, err := s.progress.ModuleStatus(r.Context(), desc.ModuleID, userID)
			if err != nil {
				s.logger.Error("module status failed", "module", desc.ModuleID, "err", err)
				http.Error(w, "Failed to load modules", http.StatusInternalServerError)
				return
			}
			statuses = append(statuses, status)
		}
		s.writeJSON(w, map[string]any{
			"modules":       statuses,
			"total_modules": len(statuses),
		})
		return
	}

	status, err := s.progress.ModuleStatus(r.Context(), moduleID, userID)
	if err != nil {
		http.Error(w, "Unknown module "+moduleID, http.StatusNotFound)
		return
	}
	s.writeJSON(w, status)
}

// writeAnalysisError maps pipeline errors to HTTP statuses: client
// payload problems are 400s, missing models are server configuration
// 500s.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, glyph.ErrDecode):
		http.Error(w, "Invalid image payload", http.StatusBadRequest)
	case errors.Is(err, cnn.ErrUnknownLanguage):
		http.Error(w, "Unsupported language", http.StatusBadRequest)
	case errors.Is(err, cnn.ErrModelUnavailable):
		s.logger.Error("model unavailable", "err", err)
		http.Error(w, "Model not loaded", http.StatusInternalServerError)
	default:
		s.logger.Error("writing analysis failed", "err", err)
		http.Error(w, "Processing failed", http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("unable to encode response", "err", err)
	}
}
