package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// Synthesizer converts text to MP3 narration audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// GoogleSynthesizer speaks via the Google Cloud Text-to-Speech API,
// picking a child-friendly voice per language.
type GoogleSynthesizer struct {
	client *texttospeech.Client
}

// NewGoogleSynthesizer creates a Synthesizer backed by the Cloud TTS
// API. Credentials come from the usual GOOGLE_APPLICATION_CREDENTIALS
// environment.
func NewGoogleSynthesizer(ctx context.Context) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating texttospeech client: %w", err)
	}
	return &GoogleSynthesizer{client: client}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	voice := voiceFor(language)

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: voice,
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("synthesizing speech: %w", err)
	}
	return resp.AudioContent, nil
}

// Close releases the underlying gRPC connection.
func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}

func voiceFor(language string) *texttospeechpb.VoiceSelectionParams {
	if strings.EqualFold(language, "nepali") {
		return &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "ne-NP",
			Name:         "ne-NP-Standard-A",
		}
	}
	return &texttospeechpb.VoiceSelectionParams{
		LanguageCode: "en-US",
		Name:         "en-US-Neural2-F",
	}
}

// AudioURL returns a served URL for narration of the text. Results are
// cached on disk under a hash of text and language. Returns "" when no
// synthesizer is configured or synthesis fails.
func (s *Service) AudioURL(ctx context.Context, text, language string) string {
	if s.synthesizer == nil {
		s.logger.Warn("audio synthesis not configured")
		return ""
	}

	filename := "story_" + hashKey(text+"_"+language) + ".mp3"
	path := filepath.Join(s.cfg.AudioDir, filename)
	url := s.cfg.BaseURL + "/audio/" + filename

	if _, err := os.Stat(path); err == nil {
		s.logger.Debug("audio cache hit", "file", filename)
		return url
	}

	data, err := s.synthesizer.Synthesize(ctx, text, language)
	if err != nil {
		s.logger.Warn("audio generation failed", "err", err)
		return ""
	}

	if err := writeCacheFile(s.cfg.AudioDir, filename, data); err != nil {
		s.logger.Warn("audio cache write failed", "err", err)
		return ""
	}

	s.logger.Debug("audio generated", "file", filename)
	return url
}

// Speak synthesizes text directly without touching the cache, for
// streaming instruction audio to the client.
func (s *Service) Speak(ctx context.Context, text, language string) ([]byte, error) {
	if s.synthesizer == nil {
		return nil, fmt.Errorf("audio synthesis not configured")
	}
	return s.synthesizer.Synthesize(ctx, text, language)
}
