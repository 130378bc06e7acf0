package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single task attempt by a learner, whether from
// a screening question or a practice module.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Learner this attempt belongs to"),
		field.String("module_id").
			NotEmpty().
			Comment("Module the task came from, e.g. sound-safari or screening"),
		field.Int("level").
			Default(1).
			Comment("Difficulty level the task was served at"),
		field.Int("epoch").
			Default(0).
			Comment("Content epoch within the level"),
		field.String("question_type").
			NotEmpty().
			Comment("writing or speaking"),
		field.String("target_letter").
			Optional().
			Comment("The letter or text the learner was asked to produce"),
		field.String("selected_id").
			Optional().
			Comment("Choice the learner picked, for selection tasks"),
		field.Bool("correct").
			Comment("Whether the attempt was scored correct"),
		field.Int("risk_weight").
			Default(0).
			Comment("Dyslexia risk weight assigned to the attempt (0-100)"),
		field.Int("response_time_ms").
			Default(0).
			Comment("Milliseconds to respond"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("module_id"),
		index.Fields("correct"),
	}
}
