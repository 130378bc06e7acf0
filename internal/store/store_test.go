package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attempts := []AttemptData{
		{UserID: "u1", ModuleID: "screening", QuestionType: "writing", TargetLetter: "b", Correct: true},
		{UserID: "u1", ModuleID: "screening", QuestionType: "writing", TargetLetter: "d", Correct: false, RiskWeight: 100},
		{UserID: "u2", ModuleID: "screening", QuestionType: "speaking", TargetLetter: "the cat", Correct: true},
	}
	for i, a := range attempts {
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d records, want 2", len(recent))
	}
	// Newest first.
	if recent[0].TargetLetter != "d" {
		t.Errorf("recent[0].target = %q, want d", recent[0].TargetLetter)
	}
	if recent[0].RiskWeight != 100 {
		t.Errorf("recent[0].risk_weight = %d, want 100", recent[0].RiskWeight)
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("sequences not descending: %d then %d", recent[0].Sequence, recent[1].Sequence)
	}
}

func TestAttemptRecentLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		err := repo.Append(ctx, AttemptData{
			UserID: "u1", ModuleID: "screening", QuestionType: "writing",
			TargetLetter: "b", Correct: i%2 == 0,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, "u1", 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("recent = %d records, want 5", len(recent))
	}
}

func TestWeakLetters(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	// b missed 3x, d missed 2x, m missed 1x, k correct.
	misses := []string{"b", "b", "d", "b", "m", "d"}
	for _, l := range misses {
		err := repo.Append(ctx, AttemptData{
			UserID: "u1", ModuleID: "screening", QuestionType: "writing",
			TargetLetter: l, Correct: false,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	err := repo.Append(ctx, AttemptData{
		UserID: "u1", ModuleID: "screening", QuestionType: "writing",
		TargetLetter: "k", Correct: true,
	})
	if err != nil {
		t.Fatalf("append correct: %v", err)
	}

	letters, err := repo.WeakLetters(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("weak letters: %v", err)
	}
	if len(letters) != 2 {
		t.Fatalf("letters = %v, want 2 entries", letters)
	}
	if letters[0] != "b" || letters[1] != "d" {
		t.Errorf("letters = %v, want [b d]", letters)
	}
}

func TestWeakLettersNoMisses(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	letters, err := repo.WeakLetters(ctx, "unknown", 3)
	if err != nil {
		t.Fatalf("weak letters: %v", err)
	}
	if len(letters) != 0 {
		t.Errorf("letters = %v, want empty", letters)
	}
}

func TestModuleProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	results := []bool{true, true, true, false}
	for _, ok := range results {
		err := repo.Append(ctx, AttemptData{
			UserID: "u1", ModuleID: "sound-safari", QuestionType: "writing",
			TargetLetter: "b", Correct: ok,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	p, err := repo.Progress(ctx, "u1", "sound-safari")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.Attempts != 4 || p.Correct != 3 {
		t.Errorf("progress = %+v, want 4 attempts 3 correct", p)
	}
	if p.Accuracy != 75 {
		t.Errorf("accuracy = %f, want 75", p.Accuracy)
	}

	empty, err := repo.Progress(ctx, "u1", "twin-letters-ar")
	if err != nil {
		t.Fatalf("progress (empty): %v", err)
	}
	if empty.Attempts != 0 || empty.Accuracy != 0 {
		t.Errorf("empty progress = %+v, want zeros", empty)
	}
}

func TestLearnerLevelDefaultsToOne(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()

	lvl, err := repo.Level(ctx, "new-user", "sound-safari")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	if lvl != 1 {
		t.Errorf("level = %d, want 1", lvl)
	}

	// A second module for the same learner also starts at 1.
	lvl, err = repo.Level(ctx, "new-user", "twin-letters-ar")
	if err != nil {
		t.Fatalf("level (second module): %v", err)
	}
	if lvl != 1 {
		t.Errorf("level = %d, want 1", lvl)
	}
}

func TestLearnerSetLevel(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()

	if err := repo.SetLevel(ctx, "u1", "sound-safari", 3); err != nil {
		t.Fatalf("set level: %v", err)
	}
	lvl, err := repo.Level(ctx, "u1", "sound-safari")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	if lvl != 3 {
		t.Errorf("level = %d, want 3", lvl)
	}

	// Other modules stay independent.
	lvl, err = repo.Level(ctx, "u1", "twin-letters-ar")
	if err != nil {
		t.Fatalf("level (other module): %v", err)
	}
	if lvl != 1 {
		t.Errorf("level = %d, want 1", lvl)
	}

	// Level floor is 1.
	if err := repo.SetLevel(ctx, "u1", "sound-safari", 0); err != nil {
		t.Fatalf("set level 0: %v", err)
	}
	lvl, err = repo.Level(ctx, "u1", "sound-safari")
	if err != nil {
		t.Fatalf("level after floor: %v", err)
	}
	if lvl != 1 {
		t.Errorf("level = %d, want 1 (floor)", lvl)
	}
}

func TestStoryRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StoryRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil set when none cached")
	}

	set := &StorySet{
		UserID:       "u1",
		FocusLetters: []string{"b", "d"},
		Stories: []Story{
			{
				ID:               "1",
				Title:            "The Big Bear",
				Theme:            "Animals",
				Language:         "English",
				CoverImagePrompt: "a bear in a forest",
				CoverImageURL:    "http://localhost:8000/images/abc.png",
				FocusLetters:     []string{"b", "d"},
				Pages: []StoryPage{
					{Text: "The bear saw a bee.", ImagePrompt: "bear and bee", ImageURL: "http://x/1.png", AudioURL: "http://x/1.mp3"},
				},
			},
		},
	}
	if err := repo.Put(ctx, set); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached set")
	}
	if len(got.Stories) != 1 || got.Stories[0].Title != "The Big Bear" {
		t.Errorf("stories = %+v", got.Stories)
	}
	if got.Stories[0].Pages[0].AudioURL != "http://x/1.mp3" {
		t.Errorf("page audio = %q", got.Stories[0].Pages[0].AudioURL)
	}

	// Put for the same user replaces rather than duplicating.
	set.Stories[0].Title = "The Bigger Bear"
	if err := repo.Put(ctx, set); err != nil {
		t.Fatalf("put (replace): %v", err)
	}
	got, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if got.Stories[0].Title != "The Bigger Bear" {
		t.Errorf("title = %q, want replaced", got.Stories[0].Title)
	}
}

func TestContentRepoSeedAndRandom(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	task, err := repo.RandomTask(ctx, "sound-safari", 1)
	if err != nil {
		t.Fatalf("random (empty): %v", err)
	}
	if task != nil {
		t.Fatal("expected nil task when no content seeded")
	}

	payload := map[string]any{
		"target_letter": "b",
		"choices":       []any{"b", "d", "p"},
		"audio_url":     "static/audio/b.mp3",
	}
	if err := repo.Seed(ctx, "sound-safari", 1, 0, "sound_safari", payload); err != nil {
		t.Fatalf("seed: %v", err)
	}

	task, err = repo.RandomTask(ctx, "sound-safari", 1)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if task == nil {
		t.Fatal("expected a task")
	}
	if task.ModuleID != "sound-safari" || task.Level != 1 {
		t.Errorf("task = %+v", task)
	}
	if task.Payload["target_letter"] != "b" {
		t.Errorf("payload = %+v", task.Payload)
	}

	// Wrong level yields nothing.
	task, err = repo.RandomTask(ctx, "sound-safari", 2)
	if err != nil {
		t.Fatalf("random (level 2): %v", err)
	}
	if task != nil {
		t.Errorf("expected nil for unseeded level, got %+v", task)
	}

	n, err := repo.Count(ctx, "sound-safari")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"attempt_events", "learners", "story_records", "content_items"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
