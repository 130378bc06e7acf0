package story

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/Dipin-Adhikari/akshara/internal/llm"
	"github.com/Dipin-Adhikari/akshara/internal/store"
	"github.com/google/uuid"
)

// defaultFocusLetters is used when the attempt log has no misses yet,
// covering the most common mirror confusion.
var defaultFocusLetters = []string{"b", "d"}

// weakLetterLimit caps how many focus letters feed one story set.
const weakLetterLimit = 3

// MediaFiller resolves image and narration URLs for generated stories.
type MediaFiller interface {
	ImageURL(ctx context.Context, prompt string) string
	AudioURL(ctx context.Context, text, language string) string
}

// GeneratorConfig holds configuration for the story generator.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGeneratorConfig returns sensible defaults. Story sets are
// long-form output, so the token ceiling is generous.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   4096,
		Temperature: 0.8,
	}
}

// Service generates practice stories targeted at a learner's weak
// letters, caching each user's latest set.
type Service struct {
	attempts store.AttemptRepo
	stories  store.StoryRepo
	provider llm.Provider
	media    MediaFiller
	cfg      GeneratorConfig
	logger   *slog.Logger
}

// NewService creates a story service.
func NewService(attempts store.AttemptRepo, stories store.StoryRepo, provider llm.Provider, media MediaFiller, cfg GeneratorConfig, logger *slog.Logger) *Service {
	return &Service{
		attempts: attempts,
		stories:  stories,
		provider: provider,
		media:    media,
		cfg:      cfg,
		logger:   logger,
	}
}

// Stories returns the user's story set, serving from cache unless
// refresh is set or nothing is cached yet.
func (s *Service) Stories(ctx context.Context, userID string, refresh bool) (*store.StorySet, error) {
	if !refresh {
		cached, err := s.stories.Get(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("read story cache: %w", err)
		}
		if cached != nil {
			s.logger.Debug("story cache hit", "user", userID)
			return cached, nil
		}
	}

	letters, err := s.attempts.WeakLetters(ctx, userID, weakLetterLimit)
	if err != nil {
		return nil, fmt.Errorf("weak letters: %w", err)
	}
	if len(letters) == 0 {
		letters = defaultFocusLetters
	}

	generated, err := s.generate(ctx, letters)
	if err != nil {
		return nil, err
	}

	s.fillMedia(ctx, generated)

	set := &store.StorySet{
		UserID:       userID,
		FocusLetters: letters,
		Stories:      generated,
	}
	if err := s.stories.Put(ctx, set); err != nil {
		return nil, fmt.Errorf("cache story set: %w", err)
	}

	s.logger.Info("stories generated", "user", userID, "focus_letters", letters)
	return set, nil
}

// rawStory and rawPage mirror the LLM output shape.
type rawPage struct {
	Text        string `json:"text"`
	ImagePrompt string `json:"image_prompt"`
}

type rawStory struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Theme            string    `json:"theme"`
	Language         string    `json:"language"`
	CoverImagePrompt string    `json:"cover_image_prompt"`
	FocusLetters     []string  `json:"focus_letters"`
	Pages            []rawPage `json:"pages"`
}

func (s *Service) generate(ctx context.Context, letters []string) ([]store.Story, error) {
	ctx = llm.WithPurpose(ctx, "story-generation")

	userMsg, err := buildStoryMessage(letters)
	if err != nil {
		return nil, fmt.Errorf("build story prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: storySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      StorySetSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("story generation failed: %w", err)
	}

	var raw []rawStory
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse story response: %w", err)
	}

	stories := make([]store.Story, 0, len(raw))
	for _, r := range raw {
		language := r.Language
		if language == "" {
			language = "English"
		}
		focus := r.FocusLetters
		if len(focus) == 0 {
			focus = letters
		}
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		st := store.Story{
			ID:               id,
			Title:            r.Title,
			Theme:            r.Theme,
			Language:         language,
			CoverImagePrompt: r.CoverImagePrompt,
			FocusLetters:     focus,
		}
		for _, p := range r.Pages {
			st.Pages = append(st.Pages, store.StoryPage{
				Text:        p.Text,
				ImagePrompt: p.ImagePrompt,
			})
		}
		stories = append(stories, st)
	}
	return stories, nil
}

// fillMedia resolves cover and page media for every story in place.
func (s *Service) fillMedia(ctx context.Context, stories []store.Story) {
	if s.media == nil {
		return
	}
	for i := range stories {
		st := &stories[i]
		if st.CoverImagePrompt != "" {
			st.CoverImageURL = s.media.ImageURL(ctx, st.CoverImagePrompt)
		}
		for j := range st.Pages {
			p := &st.Pages[j]
			if p.ImagePrompt != "" {
				p.ImageURL = s.media.ImageURL(ctx, p.ImagePrompt)
			}
			if p.Text != "" {
				p.AudioURL = s.media.AudioURL(ctx, p.Text, st.Language)
			}
		}
	}
}

const storySystemPrompt = `You are a specialized dyslexia tutor for children aged 6-8. You write very short practice stories that give repeated, natural exposure to specific letters a child struggles with.

Requirements:
- Each story has a cover_image_prompt and exactly 3 pages.
- Each page has text (2-3 simple sentences) and an image_prompt describing the scene for an AI image generator.
- Themes: story 1 in English with a Nepali village theme, story 2 in English with an animals or nature theme, story 3 in the Nepali language with simple folklore.
- Image prompts must be cute, colorful, 3d render style, suitable for children.`

var storyUserTemplate = template.Must(template.New("stories").Parse(`Create 3 short stories to practice these letters: {{range $i, $l := .}}{{if $i}}, {{end}}{{$l}}{{end}}.`))

func buildStoryMessage(letters []string) (string, error) {
	var buf bytes.Buffer
	if err := storyUserTemplate.Execute(&buf, letters); err != nil {
		return "", fmt.Errorf("render story template: %w", err)
	}
	return buf.String(), nil
}
