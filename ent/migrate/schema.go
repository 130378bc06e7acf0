// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "epoch", Type: field.TypeInt, Default: 0},
		{Name: "question_type", Type: field.TypeString},
		{Name: "target_letter", Type: field.TypeString, Nullable: true},
		{Name: "selected_id", Type: field.TypeString, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
		{Name: "risk_weight", Type: field.TypeInt, Default: 0},
		{Name: "response_time_ms", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[10]},
			},
		},
	}
	// ContentItemsColumns holds the columns for the "content_items" table.
	ContentItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "module_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "epoch", Type: field.TypeInt, Default: 0},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ContentItemsTable holds the schema information for the "content_items" table.
	ContentItemsTable = &schema.Table{
		Name:       "content_items",
		Columns:    ContentItemsColumns,
		PrimaryKey: []*schema.Column{ContentItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentitem_module_id_level",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[1], ContentItemsColumns[2]},
			},
			{
				Name:    "contentitem_active",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[6]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "levels", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learner_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearnersColumns[1]},
			},
		},
	}
	// StoryRecordsColumns holds the columns for the "story_records" table.
	StoryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "focus_letters", Type: field.TypeJSON, Nullable: true},
		{Name: "stories", Type: field.TypeJSON},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// StoryRecordsTable holds the schema information for the "story_records" table.
	StoryRecordsTable = &schema.Table{
		Name:       "story_records",
		Columns:    StoryRecordsColumns,
		PrimaryKey: []*schema.Column{StoryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "storyrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{StoryRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ContentItemsTable,
		LearnersTable,
		StoryRecordsTable,
	}
)

func init() {
}
