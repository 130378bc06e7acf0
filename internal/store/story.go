package store

import (
	"context"
	"fmt"

	"github.com/Dipin-Adhikari/akshara/ent"
	entschema "github.com/Dipin-Adhikari/akshara/ent/schema"
	"github.com/Dipin-Adhikari/akshara/ent/storyrecord"
)

// storyRepo implements StoryRepo backed by ent.
type storyRepo struct {
	client *ent.Client
}

func (r *storyRepo) Get(ctx context.Context, userID string) (*StorySet, error) {
	row, err := r.client.StoryRecord.Query().
		Where(storyrecord.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query story record: %w", err)
	}

	set := &StorySet{
		UserID:       row.UserID,
		FocusLetters: row.FocusLetters,
		GeneratedAt:  row.GeneratedAt,
	}
	for _, doc := range row.Stories {
		set.Stories = append(set.Stories, storyFromDoc(doc))
	}
	return set, nil
}

func (r *storyRepo) Put(ctx context.Context, set *StorySet) error {
	docs := make([]entschema.StoryDoc, 0, len(set.Stories))
	for _, s := range set.Stories {
		docs = append(docs, storyToDoc(s))
	}

	n, err := r.client.StoryRecord.Update().
		Where(storyrecord.UserID(set.UserID)).
		SetFocusLetters(set.FocusLetters).
		SetStories(docs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update story record: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.StoryRecord.Create().
		SetUserID(set.UserID).
		SetFocusLetters(set.FocusLetters).
		SetStories(docs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create story record: %w", err)
	}
	return nil
}

func storyFromDoc(doc entschema.StoryDoc) Story {
	s := Story{
		ID:               doc.ID,
		Title:            doc.Title,
		Theme:            doc.Theme,
		Language:         doc.Language,
		CoverImagePrompt: doc.CoverImagePrompt,
		CoverImageURL:    doc.CoverImageURL,
		FocusLetters:     doc.FocusLetters,
	}
	for _, p := range doc.Pages {
		s.Pages = append(s.Pages, StoryPage{
			Text:        p.Text,
			ImagePrompt: p.ImagePrompt,
			ImageURL:    p.ImageURL,
			AudioURL:    p.AudioURL,
		})
	}
	return s
}

func storyToDoc(s Story) entschema.StoryDoc {
	doc := entschema.StoryDoc{
		ID:               s.ID,
		Title:            s.Title,
		Theme:            s.Theme,
		Language:         s.Language,
		CoverImagePrompt: s.CoverImagePrompt,
		CoverImageURL:    s.CoverImageURL,
		FocusLetters:     s.FocusLetters,
	}
	for _, p := range s.Pages {
		doc.Pages = append(doc.Pages, entschema.StoryPageDoc{
			Text:        p.Text,
			ImagePrompt: p.ImagePrompt,
			ImageURL:    p.ImageURL,
			AudioURL:    p.AudioURL,
		})
	}
	return doc
}
