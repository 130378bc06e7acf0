package store

import (
	"context"
	"fmt"

	"github.com/Dipin-Adhikari/akshara/ent"
	"github.com/Dipin-Adhikari/akshara/ent/learner"
)

// learnerRepo implements LearnerRepo backed by ent.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) Level(ctx context.Context, userID, moduleID string) (int, error) {
	row, err := r.client.Learner.Query().
		Where(learner.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		// First sight of this learner: create at level 1.
		_, createErr := r.client.Learner.Create().
			SetUserID(userID).
			SetLevels(map[string]int{moduleID: 1}).
			Save(ctx)
		if createErr != nil {
			return 0, fmt.Errorf("create learner: %w", createErr)
		}
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query learner: %w", err)
	}

	if lvl, ok := row.Levels[moduleID]; ok && lvl >= 1 {
		return lvl, nil
	}
	return 1, nil
}

func (r *learnerRepo) SetLevel(ctx context.Context, userID, moduleID string, level int) error {
	if level < 1 {
		level = 1
	}

	row, err := r.client.Learner.Query().
		Where(learner.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, createErr := r.client.Learner.Create().
			SetUserID(userID).
			SetLevels(map[string]int{moduleID: level}).
			Save(ctx)
		if createErr != nil {
			return fmt.Errorf("create learner: %w", createErr)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("query learner: %w", err)
	}

	levels := make(map[string]int, len(row.Levels)+1)
	for k, v := range row.Levels {
		levels[k] = v
	}
	levels[moduleID] = level

	if _, err := row.Update().SetLevels(levels).Save(ctx); err != nil {
		return fmt.Errorf("update learner levels: %w", err)
	}
	return nil
}
