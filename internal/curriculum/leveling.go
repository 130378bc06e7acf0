package curriculum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dipin-Adhikari/akshara/internal/store"
)

// Streak leveling parameters: a learner levels up when at least
// streakNeeded of their last streakWindow attempts were correct.
const (
	streakWindow = 5
	streakNeeded = 4
)

// Service applies adaptive leveling on top of the attempt log.
type Service struct {
	attempts store.AttemptRepo
	learners store.LearnerRepo
	logger   *slog.Logger
}

// NewService creates a leveling service.
func NewService(attempts store.AttemptRepo, learners store.LearnerRepo, logger *slog.Logger) *Service {
	return &Service{attempts: attempts, learners: learners, logger: logger}
}

// Level returns the learner's current level for a module, starting new
// learners at level 1.
func (s *Service) Level(ctx context.Context, userID, moduleID string) (int, error) {
	return s.learners.Level(ctx, userID, moduleID)
}

// ReportProgress logs an attempt and levels the learner up when the
// recent streak warrants it.
func (s *Service) ReportProgress(ctx context.Context, data store.AttemptData) error {
	if err := s.attempts.Append(ctx, data); err != nil {
		return fmt.Errorf("log attempt: %w", err)
	}

	if !data.Correct {
		return nil
	}

	recent, err := s.attempts.Recent(ctx, data.UserID, streakWindow)
	if err != nil {
		return fmt.Errorf("query streak window: %w", err)
	}

	streak := 0
	for _, a := range recent {
		if a.Correct {
			streak++
		}
	}
	if streak < streakNeeded {
		return nil
	}

	level, err := s.learners.Level(ctx, data.UserID, data.ModuleID)
	if err != nil {
		return fmt.Errorf("read level: %w", err)
	}
	if err := s.learners.SetLevel(ctx, data.UserID, data.ModuleID, level+1); err != nil {
		return fmt.Errorf("level up: %w", err)
	}

	s.logger.Info("learner leveled up",
		"user", data.UserID,
		"module", data.ModuleID,
		"level", level+1)
	return nil
}

// Progress summarizes a learner's history within one module.
func (s *Service) Progress(ctx context.Context, userID, moduleID string) (store.ModuleProgress, error) {
	return s.attempts.Progress(ctx, userID, moduleID)
}
