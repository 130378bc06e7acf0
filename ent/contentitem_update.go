// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Dipin-Adhikari/akshara/ent/contentitem"
	"github.com/Dipin-Adhikari/akshara/ent/predicate"
)

// ContentItemUpdate is the builder for updating ContentItem entities.
type ContentItemUpdate struct {
	config
	hooks    []Hook
	mutation *ContentItemMutation
}

// Where appends a list predicates to the ContentItemUpdate builder.
func (_u *ContentItemUpdate) Where(ps ...predicate.ContentItem) *ContentItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ContentItemUpdate) SetModuleID(v string) *ContentItemUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableModuleID(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ContentItemUpdate) SetLevel(v int) *ContentItemUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableLevel(v *int) *ContentItemUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ContentItemUpdate) AddLevel(v int) *ContentItemUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetEpoch sets the "epoch" field.
func (_u *ContentItemUpdate) SetEpoch(v int) *ContentItemUpdate {
	_u.mutation.ResetEpoch()
	_u.mutation.SetEpoch(v)
	return _u
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableEpoch(v *int) *ContentItemUpdate {
	if v != nil {
		_u.SetEpoch(*v)
	}
	return _u
}

// AddEpoch adds value to the "epoch" field.
func (_u *ContentItemUpdate) AddEpoch(v int) *ContentItemUpdate {
	_u.mutation.AddEpoch(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContentItemUpdate) SetKind(v string) *ContentItemUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableKind(v *string) *ContentItemUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ContentItemUpdate) SetPayload(v map[string]interface{}) *ContentItemUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ContentItemUpdate) SetActive(v bool) *ContentItemUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ContentItemUpdate) SetNillableActive(v *bool) *ContentItemUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ContentItemMutation object of the builder.
func (_u *ContentItemUpdate) Mutation() *ContentItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentItemUpdate) check() error {
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := contentitem.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ContentItem.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := contentitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContentItem.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentitem.Table, contentitem.Columns, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(contentitem.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(contentitem.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(contentitem.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Epoch(); ok {
		_spec.SetField(contentitem.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpoch(); ok {
		_spec.AddField(contentitem.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contentitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(contentitem.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(contentitem.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentItemUpdateOne is the builder for updating a single ContentItem entity.
type ContentItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentItemMutation
}

// SetModuleID sets the "module_id" field.
func (_u *ContentItemUpdateOne) SetModuleID(v string) *ContentItemUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableModuleID(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ContentItemUpdateOne) SetLevel(v int) *ContentItemUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableLevel(v *int) *ContentItemUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ContentItemUpdateOne) AddLevel(v int) *ContentItemUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetEpoch sets the "epoch" field.
func (_u *ContentItemUpdateOne) SetEpoch(v int) *ContentItemUpdateOne {
	_u.mutation.ResetEpoch()
	_u.mutation.SetEpoch(v)
	return _u
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableEpoch(v *int) *ContentItemUpdateOne {
	if v != nil {
		_u.SetEpoch(*v)
	}
	return _u
}

// AddEpoch adds value to the "epoch" field.
func (_u *ContentItemUpdateOne) AddEpoch(v int) *ContentItemUpdateOne {
	_u.mutation.AddEpoch(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContentItemUpdateOne) SetKind(v string) *ContentItemUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableKind(v *string) *ContentItemUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ContentItemUpdateOne) SetPayload(v map[string]interface{}) *ContentItemUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ContentItemUpdateOne) SetActive(v bool) *ContentItemUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ContentItemUpdateOne) SetNillableActive(v *bool) *ContentItemUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ContentItemMutation object of the builder.
func (_u *ContentItemUpdateOne) Mutation() *ContentItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentItemUpdate builder.
func (_u *ContentItemUpdateOne) Where(ps ...predicate.ContentItem) *ContentItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentItemUpdateOne) Select(field string, fields ...string) *ContentItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentItem entity.
func (_u *ContentItemUpdateOne) Save(ctx context.Context) (*ContentItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentItemUpdateOne) SaveX(ctx context.Context) *ContentItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentItemUpdateOne) check() error {
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := contentitem.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ContentItem.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := contentitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContentItem.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentItemUpdateOne) sqlSave(ctx context.Context) (_node *ContentItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentitem.Table, contentitem.Columns, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentitem.FieldID)
		for _, f := range fields {
			if !contentitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentitem.FieldID {
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
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(contentitem.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(contentitem.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(contentitem.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Epoch(); ok {
		_spec.SetField(contentitem.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpoch(); ok {
		_spec.AddField(contentitem.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contentitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(contentitem.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(contentitem.FieldActive, field.TypeBool, value)
	}
	_node = &ContentItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
