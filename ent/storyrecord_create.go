// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Dipin-Adhikari/akshara/ent/schema"
	"github.com/Dipin-Adhikari/akshara/ent/storyrecord"
)

// StoryRecordCreate is the builder for creating a StoryRecord entity.
type StoryRecordCreate struct {
	config
	mutation *StoryRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *StoryRecordCreate) SetUserID(v string) *StoryRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFocusLetters sets the "focus_letters" field.
func (_c *StoryRecordCreate) SetFocusLetters(v []string) *StoryRecordCreate {
	_c.mutation.SetFocusLetters(v)
	return _c
}

// SetStories sets the "stories" field.
func (_c *StoryRecordCreate) SetStories(v []schema.StoryDoc) *StoryRecordCreate {
	_c.mutation.SetStories(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *StoryRecordCreate) SetGeneratedAt(v time.Time) *StoryRecordCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *StoryRecordCreate) SetNillableGeneratedAt(v *time.Time) *StoryRecordCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// Mutation returns the StoryRecordMutation object of the builder.
func (_c *StoryRecordCreate) Mutation() *StoryRecordMutation {
	return _c.mutation
}

// Save creates the StoryRecord in the database.
func (_c *StoryRecordCreate) Save(ctx context.Context) (*StoryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryRecordCreate) SaveX(ctx context.Context) *StoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryRecordCreate) defaults() {
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := storyrecord.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StoryRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := storyrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StoryRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stories(); !ok {
		return &ValidationError{Name: "stories", err: errors.New(`ent: missing required field "StoryRecord.stories"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "StoryRecord.generated_at"`)}
	}
	return nil
}

func (_c *StoryRecordCreate) sqlSave(ctx context.Context) (*StoryRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StoryRecordCreate) createSpec() (*StoryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StoryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storyrecord.Table, sqlgraph.NewFieldSpec(storyrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(storyrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FocusLetters(); ok {
		_spec.SetField(storyrecord.FieldFocusLetters, field.TypeJSON, value)
		_node.FocusLetters = value
	}
	if value, ok := _c.mutation.Stories(); ok {
		_spec.SetField(storyrecord.FieldStories, field.TypeJSON, value)
		_node.Stories = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(storyrecord.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// StoryRecordCreateBulk is the builder for creating many StoryRecord entities in bulk.
type StoryRecordCreateBulk struct {
	config
	err      error
	builders []*StoryRecordCreate
}

// Save creates the StoryRecord entities in the database.
func (_c *StoryRecordCreateBulk) Save(ctx context.Context) ([]*StoryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StoryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StoryRecordCreateBulk) SaveX(ctx context.Context) []*StoryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
