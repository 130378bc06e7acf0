package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dipin-Adhikari/akshara/internal/assess"
	"github.com/Dipin-Adhikari/akshara/internal/cnn"
	"github.com/Dipin-Adhikari/akshara/internal/curriculum"
	"github.com/Dipin-Adhikari/akshara/internal/glyph"
	"github.com/Dipin-Adhikari/akshara/internal/scoring"
	"github.com/Dipin-Adhikari/akshara/internal/speech"
	"github.com/Dipin-Adhikari/akshara/internal/store"
)

type stubWriting struct {
	result *scoring.AnalysisResult
	err    error
}

func (s *stubWriting) AnalyzeWriting(_ context.Context, _ assess.Submission) (*scoring.AnalysisResult, error) {
	return s.result, s.err
}

func (s *stubWriting) FinishAssessment(results []scoring.AnalysisResult) scoring.FinalAssessment {
	return scoring.FinalAssessment{ScorePercentage: len(results) * 10, RiskLabel: "Low"}
}

type stubSpeaking struct {
	last speech.Request
}

func (s *stubSpeaking) Analyze(_ context.Context, req speech.Request) scoring.AnalysisResult {
	s.last = req
	return scoring.AnalysisResult{QuestionType: "speaking", Target: req.TargetText, IsCorrect: true}
}

type stubStories struct {
	set         *store.StorySet
	err         error
	lastRefresh bool
}

func (s *stubStories) Stories(_ context.Context, userID string, refresh bool) (*store.StorySet, error) {
	s.lastRefresh = refresh
	return s.set, s.err
}

type stubSpeaker struct {
	audio []byte
	err   error
}

func (s *stubSpeaker) Speak(_ context.Context, _, _ string) ([]byte, error) {
	return s.audio, s.err
}

type stubProgress struct {
	level    int
	reported []store.AttemptData
}

func (s *stubProgress) Level(_ context.Context, _, _ string) (int, error) {
	if s.level == 0 {
		return 1, nil
	}
	return s.level, nil
}

func (s *stubProgress) ReportProgress(_ context.Context, data store.AttemptData) error {
	s.reported = append(s.reported, data)
	return nil
}

func (s *stubProgress) ModuleStatus(_ context.Context, moduleID, _ string) (*curriculum.ModuleStatus, error) {
	for _, desc := range curriculum.Modules() {
		if desc.ModuleID == moduleID {
			return &curriculum.ModuleStatus{ModuleDescriptor: desc, Attempts: 2, Correct: 1, Incorrect: 1, Accuracy: 50, Status: "active"}, nil
		}
	}
	return nil, fmt.Errorf("unknown module: %q", moduleID)
}

type stubContent struct {
	task *store.ContentTask
}

func (s *stubContent) RandomTask(_ context.Context, _ string, _ int) (*store.ContentTask, error) {
	return s.task, nil
}

func (s *stubContent) Seed(_ context.Context, _ string, _, _ int, _ string, _ map[string]any) error {
	return nil
}

func (s *stubContent) Count(_ context.Context, _ string) (int, error) { return 0, nil }

type serverStubs struct {
	writing  *stubWriting
	speaking *stubSpeaking
	stories  *stubStories
	speaker  *stubSpeaker
	progress *stubProgress
	content  *stubContent
}

func newTestServer(t *testing.T) (*httptest.Server, *serverStubs) {
	t.Helper()
	stubs := &serverStubs{
		writing:  &stubWriting{result: &scoring.AnalysisResult{QuestionType: "writing", Target: "b", Predicted: "b", IsCorrect: true}},
		speaking: &stubSpeaking{},
		stories:  &stubStories{set: &store.StorySet{UserID: "u1"}},
		speaker:  &stubSpeaker{audio: []byte("mp3")},
		progress: &stubProgress{},
		content:  &stubContent{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(DefaultConfig(), stubs.writing, stubs.speaking, stubs.stories, stubs.speaker, stubs.progress, stubs.content, logger)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts, stubs
}

func TestHealthcheck(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthcheck")
	if err != nil {
		t.Fatalf("healthcheck: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "OK" {
		t.Errorf("body = %q, want OK", body)
	}
}

func TestCurriculumRoute(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/test/curriculum")
	if err != nil {
		t.Fatalf("curriculum: %v", err)
	}
	defer resp.Body.Close()

	var items []curriculum.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 6 {
		t.Errorf("items = %d, want 6", len(items))
	}
}

func TestAnalyzeWriting(t *testing.T) {
	ts, _ := newTestServer(t)
	body := `{"target_letter":"b","image_base64":"aW1n","language":"english"}`
	resp, err := http.Post(ts.URL+"/api/test/analyze/writing", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var result scoring.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.IsCorrect || result.Predicted != "b" {
		t.Errorf("result = %+v", result)
	}
}

func TestAnalyzeWritingErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad image", fmt.Errorf("decode: %w", glyph.ErrDecode), http.StatusBadRequest},
		{"bad language", fmt.Errorf("%w %q", cnn.ErrUnknownLanguage, "klingon"), http.StatusBadRequest},
		{"missing model", fmt.Errorf("nepali: %w", cnn.ErrModelUnavailable), http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, stubs := newTestServer(t)
			stubs.writing.result = nil
			stubs.writing.err = tt.err

			resp, err := http.Post(ts.URL+"/api/test/analyze/writing", "application/json",
				strings.NewReader(`{"target_letter":"b","image_base64":"x","language":"english"}`))
			if err != nil {
				t.Fatalf("analyze: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestAnalyzeWritingRejectsGet(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/test/analyze/writing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestAnalyzeSpeaking(t *testing.T) {
	ts, stubs := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "attempt.webm")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	fw.Write([]byte("audio-bytes"))
	w.WriteField("target_text", "The cat sat on the mat")
	w.WriteField("language", "english")
	w.Close()

	resp, err := http.Post(ts.URL+"/api/test/analyze/speaking", w.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("analyze speaking: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if string(stubs.speaking.last.Audio) != "audio-bytes" {
		t.Errorf("audio = %q", stubs.speaking.last.Audio)
	}
	if stubs.speaking.last.TargetText != "The cat sat on the mat" {
		t.Errorf("target = %q", stubs.speaking.last.TargetText)
	}
}

func TestAnalyzeSpeakingMissingFile(t *testing.T) {
	ts, _ := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("target_text", "hello")
	w.Close()

	resp, err := http.Post(ts.URL+"/api/test/analyze/speaking", w.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("analyze speaking: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFinishAssessment(t *testing.T) {
	ts, _ := newTestServer(t)
	body := `{"results":[{"question_type":"writing","target":"b","is_correct":true,"risk_weight":0}]}`
	resp, err := http.Post(ts.URL+"/api/test/finish-assessment", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	defer resp.Body.Close()

	var fa scoring.FinalAssessment
	if err := json.NewDecoder(resp.Body).Decode(&fa); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fa.ScorePercentage != 10 {
		t.Errorf("score = %d, want 10", fa.ScorePercentage)
	}
}

func TestSpeak(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.PostForm(ts.URL+"/api/test/speak", map[string][]string{
		"text":     {"Write the letter b"},
		"language": {"english"},
	})
	if err != nil {
		t.Fatalf("speak: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("content type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "mp3" {
		t.Errorf("body = %q", body)
	}
}

func TestStoriesRoute(t *testing.T) {
	ts, stubs := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/stories/u1")
	if err != nil {
		t.Fatalf("stories: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if stubs.stories.lastRefresh {
		t.Error("refresh should default to false")
	}

	resp, err = http.Get(ts.URL + "/api/stories/u1?refresh=true")
	if err != nil {
		t.Fatalf("stories refresh: %v", err)
	}
	resp.Body.Close()
	if !stubs.stories.lastRefresh {
		t.Error("refresh=true not propagated")
	}

	resp, err = http.Get(ts.URL + "/api/stories/")
	if err != nil {
		t.Fatalf("stories no user: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestReportProgress(t *testing.T) {
	ts, stubs := newTestServer(t)
	body := `{"user_id":"u1","module_id":"sound-safari","level":1,"epoch":0,"selected_id":"b","target_letter":"b","is_correct":true,"response_time_ms":900}`
	resp, err := http.Post(ts.URL+"/api/report-progress", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(stubs.progress.reported) != 1 {
		t.Fatalf("reported = %d attempts", len(stubs.progress.reported))
	}
	got := stubs.progress.reported[0]
	if got.UserID != "u1" || got.ModuleID != "sound-safari" || !got.Correct {
		t.Errorf("attempt = %+v", got)
	}
	if got.ResponseTimeMs != 900 {
		t.Errorf("response_time_ms = %d", got.ResponseTimeMs)
	}
}

func TestReportProgressMissingIDs(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/report-progress", "application/json",
		strings.NewReader(`{"is_correct":true}`))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestModuleContent(t *testing.T) {
	ts, stubs := newTestServer(t)
	stubs.content.task = &store.ContentTask{
		TaskID: "7", ModuleID: "sound-safari", Level: 1, Kind: "sound_safari",
		Payload: map[string]any{"target_letter": "b"},
	}

	resp, err := http.Get(ts.URL + "/api/module/sound-safari/u1")
	if err != nil {
		t.Fatalf("module content: %v", err)
	}
	defer resp.Body.Close()

	var task store.ContentTask
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if task.TaskID != "7" || task.Payload["target_letter"] != "b" {
		t.Errorf("task = %+v", task)
	}
}

func TestModuleContentNotFound(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/module/sound-safari/u1")
	if err != nil {
		t.Fatalf("module content: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestModulesAll(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/modules/all/u1")
	if err != nil {
		t.Fatalf("modules all: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Modules      []curriculum.ModuleStatus `json:"modules"`
		TotalModules int                       `json:"total_modules"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TotalModules != 2 || len(out.Modules) != 2 {
		t.Errorf("modules = %+v", out)
	}
}

func TestModulesUnknown(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/modules/nope/u1")
	if err != nil {
		t.Fatalf("modules: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestNilServicesReturn503(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(DefaultConfig(), nil, nil, nil, nil, nil, nil, logger)
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/test/analyze/writing", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/api/stories/u1")
	if err != nil {
		t.Fatalf("stories: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}
