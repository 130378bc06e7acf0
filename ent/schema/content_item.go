package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentItem is a seeded practice task served by the game modules.
// The payload shape varies per module kind, so it is stored as opaque
// JSON and passed through to the client.
type ContentItem struct {
	ent.Schema
}

func (ContentItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("module_id").
			NotEmpty().
			Comment("Module the task belongs to, e.g. sound-safari"),
		field.Int("level").
			Default(1).
			Comment("Difficulty level the task is served at"),
		field.Int("epoch").
			Default(0).
			Comment("Content epoch within the level"),
		field.String("kind").
			NotEmpty().
			Comment("Task payload kind, e.g. sound_safari or twin_letters"),
		field.JSON("payload", map[string]any{}).
			Comment("Module-specific task content (choices, audio URL, target)"),
		field.Bool("active").
			Default(true).
			Comment("Inactive items are excluded from serving"),
	}
}

func (ContentItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id", "level"),
		index.Fields("active"),
	}
}
