// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Dipin-Adhikari/akshara/ent/predicate"
	"github.com/Dipin-Adhikari/akshara/ent/schema"
	"github.com/Dipin-Adhikari/akshara/ent/storyrecord"
)

// StoryRecordUpdate is the builder for updating StoryRecord entities.
type StoryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StoryRecordMutation
}

// Where appends a list predicates to the StoryRecordUpdate builder.
func (_u *StoryRecordUpdate) Where(ps ...predicate.StoryRecord) *StoryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StoryRecordUpdate) SetUserID(v string) *StoryRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StoryRecordUpdate) SetNillableUserID(v *string) *StoryRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFocusLetters sets the "focus_letters" field.
func (_u *StoryRecordUpdate) SetFocusLetters(v []string) *StoryRecordUpdate {
	_u.mutation.SetFocusLetters(v)
	return _u
}

// AppendFocusLetters appends value to the "focus_letters" field.
func (_u *StoryRecordUpdate) AppendFocusLetters(v []string) *StoryRecordUpdate {
	_u.mutation.AppendFocusLetters(v)
	return _u
}

// ClearFocusLetters clears the value of the "focus_letters" field.
func (_u *StoryRecordUpdate) ClearFocusLetters() *StoryRecordUpdate {
	_u.mutation.ClearFocusLetters()
	return _u
}

// SetStories sets the "stories" field.
func (_u *StoryRecordUpdate) SetStories(v []schema.StoryDoc) *StoryRecordUpdate {
	_u.mutation.SetStories(v)
	return _u
}

// AppendStories appends value to the "stories" field.
func (_u *StoryRecordUpdate) AppendStories(v []schema.StoryDoc) *StoryRecordUpdate {
	_u.mutation.AppendStories(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *StoryRecordUpdate) SetGeneratedAt(v time.Time) *StoryRecordUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// Mutation returns the StoryRecordMutation object of the builder.
func (_u *StoryRecordUpdate) Mutation() *StoryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoryRecordUpdate) defaults() {
	if _, ok := _u.mutation.GeneratedAt(); !ok {
		v := storyrecord.UpdateDefaultGeneratedAt()
		_u.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := storyrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyrecord.Table, storyrecord.Columns, sqlgraph.NewFieldSpec(storyrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(storyrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FocusLetters(); ok {
		_spec.SetField(storyrecord.FieldFocusLetters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusLetters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyrecord.FieldFocusLetters, value)
		})
	}
	if _u.mutation.FocusLettersCleared() {
		_spec.ClearField(storyrecord.FieldFocusLetters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Stories(); ok {
		_spec.SetField(storyrecord.FieldStories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyrecord.FieldStories, value)
		})
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(storyrecord.FieldGeneratedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryRecordUpdateOne is the builder for updating a single StoryRecord entity.
type StoryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *StoryRecordUpdateOne) SetUserID(v string) *StoryRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StoryRecordUpdateOne) SetNillableUserID(v *string) *StoryRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFocusLetters sets the "focus_letters" field.
func (_u *StoryRecordUpdateOne) SetFocusLetters(v []string) *StoryRecordUpdateOne {
	_u.mutation.SetFocusLetters(v)
	return _u
}

// AppendFocusLetters appends value to the "focus_letters" field.
func (_u *StoryRecordUpdateOne) AppendFocusLetters(v []string) *StoryRecordUpdateOne {
	_u.mutation.AppendFocusLetters(v)
	return _u
}

// ClearFocusLetters clears the value of the "focus_letters" field.
func (_u *StoryRecordUpdateOne) ClearFocusLetters() *StoryRecordUpdateOne {
	_u.mutation.ClearFocusLetters()
	return _u
}

// SetStories sets the "stories" field.
func (_u *StoryRecordUpdateOne) SetStories(v []schema.StoryDoc) *StoryRecordUpdateOne {
	_u.mutation.SetStories(v)
	return _u
}

// AppendStories appends value to the "stories" field.
func (_u *StoryRecordUpdateOne) AppendStories(v []schema.StoryDoc) *StoryRecordUpdateOne {
	_u.mutation.AppendStories(v)
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *StoryRecordUpdateOne) SetGeneratedAt(v time.Time) *StoryRecordUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// Mutation returns the StoryRecordMutation object of the builder.
func (_u *StoryRecordUpdateOne) Mutation() *StoryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoryRecordUpdate builder.
func (_u *StoryRecordUpdateOne) Where(ps ...predicate.StoryRecord) *StoryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryRecordUpdateOne) Select(field string, fields ...string) *StoryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoryRecord entity.
func (_u *StoryRecordUpdateOne) Save(ctx context.Context) (*StoryRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryRecordUpdateOne) SaveX(ctx context.Context) *StoryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoryRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.GeneratedAt(); !ok {
		v := storyrecord.UpdateDefaultGeneratedAt()
		_u.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := storyrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryRecordUpdateOne) sqlSave(ctx context.Context) (_node *StoryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyrecord.Table, storyrecord.Columns, sqlgraph.NewFieldSpec(storyrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storyrecord.FieldID)
		for _, f := range fields {
			if !storyrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storyrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(storyrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FocusLetters(); ok {
		_spec.SetField(storyrecord.FieldFocusLetters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFocusLetters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyrecord.FieldFocusLetters, value)
		})
	}
	if _u.mutation.FocusLettersCleared() {
		_spec.ClearField(storyrecord.FieldFocusLetters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Stories(); ok {
		_spec.SetField(storyrecord.FieldStories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyrecord.FieldStories, value)
		})
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(storyrecord.FieldGeneratedAt, field.TypeTime, value)
	}
	_node = &StoryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
