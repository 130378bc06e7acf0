package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryRecord caches the most recently generated story set for a user,
// so repeat visits don't re-run the LLM and media pipelines.
type StoryRecord struct {
	ent.Schema
}

// StoryPageDoc is the serialized form of one story page.
type StoryPageDoc struct {
	Text        string `json:"text"`
	ImagePrompt string `json:"image_prompt"`
	ImageURL    string `json:"image_url,omitempty"`
	AudioURL    string `json:"audio_url,omitempty"`
}

// StoryDoc is the serialized form of one generated story.
type StoryDoc struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Theme            string         `json:"theme"`
	Language         string         `json:"language"`
	CoverImagePrompt string         `json:"cover_image_prompt"`
	CoverImageURL    string         `json:"cover_image_url,omitempty"`
	FocusLetters     []string       `json:"focus_letters"`
	Pages            []StoryPageDoc `json:"pages"`
}

func (StoryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Learner the stories were generated for"),
		field.JSON("focus_letters", []string{}).
			Optional().
			Comment("Weak letters the stories practice"),
		field.JSON("stories", []StoryDoc{}).
			Comment("The generated stories with media URLs"),
		field.Time("generated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When this set was generated"),
	}
}

func (StoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
