package media

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

const clipdropEndpoint = "https://clipdrop-api.co/text-to-image/v1"

// Placeholder URLs returned when an illustration cannot be produced.
const (
	placeholderNoKey = "https://placehold.co/600x400?text=No+Key"
	placeholderError = "https://placehold.co/600x400?text=Error"
)

// ImageURL returns a served URL for an illustration of the prompt.
// Generated images are cached on disk under a hash of the prompt, so
// the API is only hit once per distinct prompt. Failures degrade to a
// placeholder URL rather than an error.
func (s *Service) ImageURL(ctx context.Context, prompt string) string {
	if s.cfg.ClipdropAPIKey == "" {
		s.logger.Warn("clipdrop API key not set")
		return placeholderNoKey
	}

	filename := hashKey(prompt) + ".png"
	path := filepath.Join(s.cfg.ImageDir, filename)
	url := s.cfg.BaseURL + "/images/" + filename

	if _, err := os.Stat(path); err == nil {
		s.logger.Debug("image cache hit", "file", filename)
		return url
	}

	data, err := s.generateImage(ctx, prompt)
	if err != nil {
		s.logger.Warn("image generation failed", "err", err)
		return placeholderError
	}

	if err := writeCacheFile(s.cfg.ImageDir, filename, data); err != nil {
		s.logger.Warn("image cache write failed", "err", err)
		return placeholderError
	}

	s.logger.Debug("image generated", "file", filename)
	return url
}

// generateImage calls the Clipdrop text-to-image API. The prompt is
// sent as a multipart form field and the response body is raw PNG.
func (s *Service) generateImage(ctx context.Context, prompt string) ([]byte, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("encoding prompt: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("x-api-key", s.cfg.ClipdropAPIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clipdrop request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("clipdrop returned %d: %s", resp.StatusCode, msg)
	}

	return io.ReadAll(resp.Body)
}

func hashKey(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func writeCacheFile(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}
