package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner holds per-user adaptive state: the current difficulty level
// for each module the learner has touched.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("External user identifier"),
		field.JSON("levels", map[string]int{}).
			Comment("Current level per module id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the learner was first seen"),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
