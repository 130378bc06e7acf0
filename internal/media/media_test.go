package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(t *testing.T, handler http.HandlerFunc, synth Synthesizer) *Service {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		ClipdropAPIKey: "test-key",
		ImageDir:       filepath.Join(dir, "images"),
		AudioDir:       filepath.Join(dir, "audio"),
		BaseURL:        "http://localhost:8000",
	}
	s := NewService(cfg, synth, discardLogger())
	if handler != nil {
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		s.endpoint = server.URL
	}
	return s
}

func TestImageURL_GeneratesAndCaches(t *testing.T) {
	calls := 0
	handler := func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q, want test-key", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if got := r.FormValue("prompt"); got != "a friendly dragon" {
			t.Errorf("prompt = %q", got)
		}
		w.Write([]byte("png-bytes"))
	}
	s := testService(t, handler, nil)

	url := s.ImageURL(context.Background(), "a friendly dragon")
	if !strings.HasPrefix(url, "http://localhost:8000/images/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url: %q", url)
	}

	// Second call must come from the disk cache.
	url2 := s.ImageURL(context.Background(), "a friendly dragon")
	if url2 != url {
		t.Errorf("cached url = %q, want %q", url2, url)
	}
	if calls != 1 {
		t.Errorf("API calls = %d, want 1", calls)
	}

	data, err := os.ReadFile(filepath.Join(s.cfg.ImageDir, filepath.Base(url)))
	if err != nil {
		t.Fatalf("reading cached image: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("cached content = %q", data)
	}
}

func TestImageURL_DistinctPromptsDistinctFiles(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png"))
	}
	s := testService(t, handler, nil)

	a := s.ImageURL(context.Background(), "a red kite")
	b := s.ImageURL(context.Background(), "a blue kite")
	if a == b {
		t.Errorf("distinct prompts mapped to same file: %q", a)
	}
}

func TestImageURL_NoKeyPlaceholder(t *testing.T) {
	s := testService(t, nil, nil)
	s.cfg.ClipdropAPIKey = ""

	url := s.ImageURL(context.Background(), "anything")
	if url != placeholderNoKey {
		t.Errorf("url = %q, want no-key placeholder", url)
	}
}

func TestImageURL_APIErrorPlaceholder(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}
	s := testService(t, handler, nil)

	url := s.ImageURL(context.Background(), "anything")
	if url != placeholderError {
		t.Errorf("url = %q, want error placeholder", url)
	}
}

// stubSynth returns fixed bytes and records requests.
type stubSynth struct {
	data  []byte
	err   error
	calls []string
}

func (s *stubSynth) Synthesize(_ context.Context, text, language string) ([]byte, error) {
	s.calls = append(s.calls, text+"/"+language)
	return s.data, s.err
}

func TestAudioURL_GeneratesAndCaches(t *testing.T) {
	synth := &stubSynth{data: []byte("mp3-bytes")}
	s := testService(t, nil, synth)

	url := s.AudioURL(context.Background(), "Once upon a time", "english")
	if !strings.HasPrefix(url, "http://localhost:8000/audio/story_") || !strings.HasSuffix(url, ".mp3") {
		t.Fatalf("unexpected url: %q", url)
	}

	url2 := s.AudioURL(context.Background(), "Once upon a time", "english")
	if url2 != url {
		t.Errorf("cached url = %q, want %q", url2, url)
	}
	if len(synth.calls) != 1 {
		t.Errorf("synth calls = %d, want 1", len(synth.calls))
	}
}

func TestAudioURL_LanguageKeysCache(t *testing.T) {
	synth := &stubSynth{data: []byte("mp3")}
	s := testService(t, nil, synth)

	en := s.AudioURL(context.Background(), "hello", "english")
	ne := s.AudioURL(context.Background(), "hello", "nepali")
	if en == ne {
		t.Errorf("same text in two languages mapped to same file: %q", en)
	}
}

func TestAudioURL_NoSynthesizer(t *testing.T) {
	s := testService(t, nil, nil)
	if url := s.AudioURL(context.Background(), "hello", "english"); url != "" {
		t.Errorf("url = %q, want empty", url)
	}
}

func TestAudioURL_SynthFailure(t *testing.T) {
	synth := &stubSynth{err: errors.New("quota")}
	s := testService(t, nil, synth)
	if url := s.AudioURL(context.Background(), "hello", "english"); url != "" {
		t.Errorf("url = %q, want empty", url)
	}
}

func TestSpeak_BypassesCache(t *testing.T) {
	synth := &stubSynth{data: []byte("mp3")}
	s := testService(t, nil, synth)

	for i := 0; i < 2; i++ {
		data, err := s.Speak(context.Background(), "Write the letter b", "english")
		if err != nil {
			t.Fatalf("Speak failed: %v", err)
		}
		if string(data) != "mp3" {
			t.Errorf("data = %q", data)
		}
	}
	if len(synth.calls) != 2 {
		t.Errorf("synth calls = %d, want 2", len(synth.calls))
	}
}

func TestVoiceFor(t *testing.T) {
	if v := voiceFor("nepali"); v.LanguageCode != "ne-NP" {
		t.Errorf("nepali voice = %q", v.LanguageCode)
	}
	if v := voiceFor("Nepali"); v.LanguageCode != "ne-NP" {
		t.Errorf("case-insensitive nepali voice = %q", v.LanguageCode)
	}
	if v := voiceFor("english"); v.LanguageCode != "en-US" {
		t.Errorf("english voice = %q", v.LanguageCode)
	}
}
