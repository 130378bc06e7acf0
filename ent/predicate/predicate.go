// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// ContentItem is the predicate function for contentitem builders.
type ContentItem func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// StoryRecord is the predicate function for storyrecord builders.
type StoryRecord func(*sql.Selector)
