package story

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Dipin-Adhikari/akshara/internal/llm"
	"github.com/Dipin-Adhikari/akshara/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAttemptRepo serves canned weak letters.
type mockAttemptRepo struct {
	weak []string
}

func (m *mockAttemptRepo) Append(_ context.Context, _ store.AttemptData) error { return nil }
func (m *mockAttemptRepo) Recent(_ context.Context, _ string, _ int) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockAttemptRepo) WeakLetters(_ context.Context, _ string, limit int) ([]string, error) {
	if limit > 0 && len(m.weak) > limit {
		return m.weak[:limit], nil
	}
	return m.weak, nil
}
func (m *mockAttemptRepo) Progress(_ context.Context, _, _ string) (store.ModuleProgress, error) {
	return store.ModuleProgress{}, nil
}

// mockStoryRepo is an in-memory StoryRepo.
type mockStoryRepo struct {
	sets map[string]*store.StorySet
}

func (m *mockStoryRepo) Get(_ context.Context, userID string) (*store.StorySet, error) {
	return m.sets[userID], nil
}

func (m *mockStoryRepo) Put(_ context.Context, set *store.StorySet) error {
	if m.sets == nil {
		m.sets = make(map[string]*store.StorySet)
	}
	m.sets[set.UserID] = set
	return nil
}

// mockMedia returns deterministic URLs and counts calls.
type mockMedia struct {
	images int
	audio  int
}

func (m *mockMedia) ImageURL(_ context.Context, prompt string) string {
	m.images++
	return "http://media/img/" + prompt
}

func (m *mockMedia) AudioURL(_ context.Context, text, language string) string {
	m.audio++
	return "http://media/audio/" + language
}

func storySetJSON() json.RawMessage {
	set := []rawStory{
		{
			ID: "1", Title: "The Big Bear", Theme: "Animals", Language: "English",
			CoverImagePrompt: "bear cover",
			FocusLetters:     []string{"b", "d"},
			Pages: []rawPage{
				{Text: "The bear saw a bee.", ImagePrompt: "bear and bee"},
				{Text: "The bee flew away.", ImagePrompt: "bee flying"},
				{Text: "The bear went home.", ImagePrompt: "bear walking home"},
			},
		},
		{
			ID: "2", Title: "Dinesh's Drum", Theme: "Village", Language: "English",
			CoverImagePrompt: "drum cover",
			FocusLetters:     []string{"b", "d"},
			Pages: []rawPage{
				{Text: "Dinesh has a drum.", ImagePrompt: "boy with drum"},
				{Text: "He drums all day.", ImagePrompt: "boy drumming"},
				{Text: "The village dances.", ImagePrompt: "village dancing"},
			},
		},
		{
			ID: "3", Title: "रामको कथा", Theme: "Folklore", Language: "Nepali",
			CoverImagePrompt: "folklore cover",
			FocusLetters:     []string{"b", "d"},
			Pages: []rawPage{
				{Text: "राम गाउँमा बस्छ।", ImagePrompt: "village boy"},
				{Text: "ऊ खेल्न जान्छ।", ImagePrompt: "boy playing"},
				{Text: "ऊ घर फर्कन्छ।", ImagePrompt: "boy returning home"},
			},
		},
	}
	data, _ := json.Marshal(set)
	return data
}

func newTestService(provider llm.Provider, attempts *mockAttemptRepo, stories *mockStoryRepo, media MediaFiller) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(attempts, stories, provider, media, DefaultGeneratorConfig(), logger)
}

func TestStories_GeneratesAndCaches(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: storySetJSON()})
	media := &mockMedia{}
	repo := &mockStoryRepo{}
	s := newTestService(mock, &mockAttemptRepo{weak: []string{"b", "d"}}, repo, media)

	set, err := s.Stories(context.Background(), "u1", false)
	require.NoError(t, err)
	require.Len(t, set.Stories, 3)
	assert.Equal(t, []string{"b", "d"}, set.FocusLetters)
	assert.Equal(t, "The Big Bear", set.Stories[0].Title)

	// Cover plus page images: 3 stories x (1 + 3 pages).
	assert.Equal(t, 12, media.images)
	// Narration per page.
	assert.Equal(t, 9, media.audio)
	assert.Equal(t, "http://media/img/bear cover", set.Stories[0].CoverImageURL)
	assert.Equal(t, "http://media/audio/Nepali", set.Stories[2].Pages[0].AudioURL)

	// Cached set served without another LLM call.
	cached, err := s.Stories(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.Equal(t, set.Stories[0].Title, cached.Stories[0].Title)
	assert.Equal(t, 12, media.images, "cache hit must not regenerate media")
}

func TestStories_RefreshBypassesCache(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: storySetJSON()},
		llm.MockResponse{Content: storySetJSON()},
	)
	repo := &mockStoryRepo{}
	s := newTestService(mock, &mockAttemptRepo{weak: []string{"m"}}, repo, &mockMedia{})

	_, err := s.Stories(context.Background(), "u1", false)
	require.NoError(t, err)

	_, err = s.Stories(context.Background(), "u1", true)
	require.NoError(t, err, "refresh should regenerate, consuming the second mock response")

	// A third non-refresh call hits the cache; the mock queue is empty,
	// so a generation attempt would fail.
	_, err = s.Stories(context.Background(), "u1", false)
	require.NoError(t, err)
}

func TestStories_DefaultFocusLetters(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: storySetJSON()})
	s := newTestService(mock, &mockAttemptRepo{}, &mockStoryRepo{}, &mockMedia{})

	set, err := s.Stories(context.Background(), "fresh-user", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, set.FocusLetters)
}

func TestStories_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("quota")})
	repo := &mockStoryRepo{}
	s := newTestService(mock, &mockAttemptRepo{weak: []string{"b"}}, repo, &mockMedia{})

	_, err := s.Stories(context.Background(), "u1", false)
	require.Error(t, err)
	assert.Empty(t, repo.sets, "failed generation must not poison the cache")
}

func TestBuildStoryMessage(t *testing.T) {
	msg, err := buildStoryMessage([]string{"b", "d", "m"})
	require.NoError(t, err)
	assert.Contains(t, msg, "b, d, m")
}

func TestStories_AssignsMissingIDs(t *testing.T) {
	var bare []rawStory
	require.NoError(t, json.Unmarshal(storySetJSON(), &bare))
	for i := range bare {
		bare[i].ID = ""
	}
	data, err := json.Marshal(bare)
	require.NoError(t, err)

	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	s := newTestService(mock, &mockAttemptRepo{weak: []string{"b"}}, &mockStoryRepo{}, &mockMedia{})

	set, err := s.Stories(context.Background(), "u1", false)
	require.NoError(t, err)
	require.Len(t, set.Stories, 3)

	seen := make(map[string]bool)
	for _, st := range set.Stories {
		assert.NotEmpty(t, st.ID, "every story gets an id even when the model omits one")
		assert.False(t, seen[st.ID], "generated ids must be distinct")
		seen[st.ID] = true
	}
}
