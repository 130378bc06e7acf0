package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/Dipin-Adhikari/akshara/ent"
	"github.com/Dipin-Adhikari/akshara/ent/attemptevent"
)

// wrongAttemptWindow bounds how far back weak-letter analysis looks.
const wrongAttemptWindow = 50

// attemptRepo implements AttemptRepo backed by ent and the global
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetModuleID(data.ModuleID).
		SetLevel(data.Level).
		SetEpoch(data.Epoch).
		SetQuestionType(data.QuestionType).
		SetTargetLetter(data.TargetLetter).
		SetSelectedID(data.SelectedID).
		SetCorrect(data.Correct).
		SetRiskWeight(data.RiskWeight).
		SetResponseTimeMs(data.ResponseTimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, userID string, limit int) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AttemptRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AttemptData: AttemptData{
				UserID:         row.UserID,
				ModuleID:       row.ModuleID,
				Level:          row.Level,
				Epoch:          row.Epoch,
				QuestionType:   row.QuestionType,
				TargetLetter:   row.TargetLetter,
				SelectedID:     row.SelectedID,
				Correct:        row.Correct,
				RiskWeight:     row.RiskWeight,
				ResponseTimeMs: row.ResponseTimeMs,
			},
		})
	}
	return records, nil
}

func (r *attemptRepo) WeakLetters(ctx context.Context, userID string, limit int) ([]string, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.Correct(false),
			attemptevent.TargetLetterNEQ(""),
		).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(wrongAttemptWindow).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query wrong attempts: %w", err)
	}

	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.TargetLetter]++
	}
	if len(counts) == 0 {
		return nil, nil
	}

	letters := make([]string, 0, len(counts))
	for l := range counts {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool {
		if counts[letters[i]] != counts[letters[j]] {
			return counts[letters[i]] > counts[letters[j]]
		}
		return letters[i] < letters[j]
	})

	if limit > 0 && len(letters) > limit {
		letters = letters[:limit]
	}
	return letters, nil
}

func (r *attemptRepo) Progress(ctx context.Context, userID, moduleID string) (ModuleProgress, error) {
	total, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.ModuleID(moduleID),
		).
		Count(ctx)
	if err != nil {
		return ModuleProgress{}, fmt.Errorf("count attempts: %w", err)
	}

	correct, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.ModuleID(moduleID),
			attemptevent.Correct(true),
		).
		Count(ctx)
	if err != nil {
		return ModuleProgress{}, fmt.Errorf("count correct attempts: %w", err)
	}

	p := ModuleProgress{Attempts: total, Correct: correct}
	if total > 0 {
		p.Accuracy = float64(correct) / float64(total) * 100
	}
	return p, nil
}
