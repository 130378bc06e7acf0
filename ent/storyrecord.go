// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Dipin-Adhikari/akshara/ent/schema"
	"github.com/Dipin-Adhikari/akshara/ent/storyrecord"
)

// StoryRecord is the model entity for the StoryRecord schema.
type StoryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner the stories were generated for
	UserID string `json:"user_id,omitempty"`
	// Weak letters the stories practice
	FocusLetters []string `json:"focus_letters,omitempty"`
	// The generated stories with media URLs
	Stories []schema.StoryDoc `json:"stories,omitempty"`
	// When this set was generated
	GeneratedAt  time.Time `json:"generated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storyrecord.FieldFocusLetters, storyrecord.FieldStories:
			values[i] = new([]byte)
		case storyrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case storyrecord.FieldUserID:
			values[i] = new(sql.NullString)
		case storyrecord.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoryRecord fields.
func (_m *StoryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storyrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case storyrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case storyrecord.FieldFocusLetters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field focus_letters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FocusLetters); err != nil {
					return fmt.Errorf("unmarshal field focus_letters: %w", err)
				}
			}
		case storyrecord.FieldStories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stories); err != nil {
					return fmt.Errorf("unmarshal field stories: %w", err)
				}
			}
		case storyrecord.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StoryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *StoryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StoryRecord.
// Note that you need to call StoryRecord.Unwrap() before calling this method if this StoryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StoryRecord) Update() *StoryRecordUpdateOne {
	return NewStoryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StoryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StoryRecord) Unwrap() *StoryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StoryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("StoryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("focus_letters=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusLetters))
	builder.WriteString(", ")
	builder.WriteString("stories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stories))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StoryRecords is a parsable slice of StoryRecord.
type StoryRecords []*StoryRecord
