package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AttemptData captures a single task attempt for persistence.
type AttemptData struct {
	UserID         string
	ModuleID       string
	Level          int
	Epoch          int
	QuestionType   string
	TargetLetter   string
	SelectedID     string
	Correct        bool
	RiskWeight     int
	ResponseTimeMs int
}

// AttemptRecord is a persisted attempt with its event metadata.
type AttemptRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AttemptData
}

// ModuleProgress summarizes a learner's history within one module.
type ModuleProgress struct {
	Attempts int
	Correct  int
	Accuracy float64
}

// AttemptRepo provides append and analytics access to the attempt log.
type AttemptRepo interface {
	// Append records an attempt.
	Append(ctx context.Context, data AttemptData) error

	// Recent returns the learner's most recent attempts, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]AttemptRecord, error)

	// WeakLetters returns the most frequently missed target letters
	// from the learner's recent incorrect attempts, most missed first.
	WeakLetters(ctx context.Context, userID string, limit int) ([]string, error)

	// Progress summarizes attempts within one module.
	Progress(ctx context.Context, userID, moduleID string) (ModuleProgress, error)
}

// LearnerRepo manages per-user adaptive state.
type LearnerRepo interface {
	// Level returns the learner's current level for a module, creating
	// the learner at level 1 on first sight.
	Level(ctx context.Context, userID, moduleID string) (int, error)

	// SetLevel stores the learner's level for a module.
	SetLevel(ctx context.Context, userID, moduleID string, level int) error
}

// StoryPage is one page of a generated story.
type StoryPage struct {
	Text        string `json:"text"`
	ImagePrompt string `json:"image_prompt"`
	ImageURL    string `json:"image_url,omitempty"`
	AudioURL    string `json:"audio_url,omitempty"`
}

// Story is one generated story with its media URLs.
type Story struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Theme            string      `json:"theme"`
	Language         string      `json:"language"`
	CoverImagePrompt string      `json:"cover_image_prompt"`
	CoverImageURL    string      `json:"cover_image_url,omitempty"`
	FocusLetters     []string    `json:"focus_letters"`
	Pages            []StoryPage `json:"pages"`
}

// StorySet is the cached story collection for one user.
type StorySet struct {
	UserID       string    `json:"user_id"`
	FocusLetters []string  `json:"focus_letters"`
	Stories      []Story   `json:"stories"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// StoryRepo caches generated story sets per user.
type StoryRepo interface {
	// Get returns the cached set for a user, or nil if none exists.
	Get(ctx context.Context, userID string) (*StorySet, error)

	// Put stores or replaces the cached set for a user.
	Put(ctx context.Context, set *StorySet) error
}

// ContentTask is a seeded practice task served to the client.
type ContentTask struct {
	TaskID   string         `json:"task_id"`
	ModuleID string         `json:"module_id"`
	Level    int            `json:"level"`
	Epoch    int            `json:"epoch"`
	Kind     string         `json:"kind"`
	Payload  map[string]any `json:"content"`
}

// ContentRepo manages seeded module content.
type ContentRepo interface {
	// RandomTask returns a random active task for the module at the
	// given level. Returns nil if no content exists.
	RandomTask(ctx context.Context, moduleID string, level int) (*ContentTask, error)

	// Seed inserts a task. Used by the seeding command.
	Seed(ctx context.Context, moduleID string, level, epoch int, kind string, payload map[string]any) error

	// Count returns the number of active tasks for a module.
	Count(ctx context.Context, moduleID string) (int, error)
}
