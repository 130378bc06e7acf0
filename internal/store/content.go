package store

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/Dipin-Adhikari/akshara/ent"
	"github.com/Dipin-Adhikari/akshara/ent/contentitem"
)

// contentRepo implements ContentRepo backed by ent.
type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) RandomTask(ctx context.Context, moduleID string, level int) (*ContentTask, error) {
	rows, err := r.client.ContentItem.Query().
		Where(
			contentitem.ModuleID(moduleID),
			contentitem.Level(level),
			contentitem.Active(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query content items: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[rand.Intn(len(rows))]
	return &ContentTask{
		TaskID:   strconv.Itoa(row.ID),
		ModuleID: row.ModuleID,
		Level:    row.Level,
		Epoch:    row.Epoch,
		Kind:     row.Kind,
		Payload:  row.Payload,
	}, nil
}

func (r *contentRepo) Seed(ctx context.Context, moduleID string, level, epoch int, kind string, payload map[string]any) error {
	_, err := r.client.ContentItem.Create().
		SetModuleID(moduleID).
		SetLevel(level).
		SetEpoch(epoch).
		SetKind(kind).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("seed content item: %w", err)
	}
	return nil
}

func (r *contentRepo) Count(ctx context.Context, moduleID string) (int, error) {
	n, err := r.client.ContentItem.Query().
		Where(
			contentitem.ModuleID(moduleID),
			contentitem.Active(true),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count content items: %w", err)
	}
	return n, nil
}
