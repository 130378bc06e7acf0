// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Dipin-Adhikari/akshara/ent/attemptevent"
	"github.com/Dipin-Adhikari/akshara/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdate) SetUserID(v string) *AttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *AttemptEventUpdate) SetModuleID(v string) *AttemptEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableModuleID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdate) SetLevel(v int) *AttemptEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLevel(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AttemptEventUpdate) AddLevel(v int) *AttemptEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetEpoch sets the "epoch" field.
func (_u *AttemptEventUpdate) SetEpoch(v int) *AttemptEventUpdate {
	_u.mutation.ResetEpoch()
	_u.mutation.SetEpoch(v)
	return _u
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableEpoch(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetEpoch(*v)
	}
	return _u
}

// AddEpoch adds value to the "epoch" field.
func (_u *AttemptEventUpdate) AddEpoch(v int) *AttemptEventUpdate {
	_u.mutation.AddEpoch(v)
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AttemptEventUpdate) SetQuestionType(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionType(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetTargetLetter sets the "target_letter" field.
func (_u *AttemptEventUpdate) SetTargetLetter(v string) *AttemptEventUpdate {
	_u.mutation.SetTargetLetter(v)
	return _u
}

// SetNillableTargetLetter sets the "target_letter" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTargetLetter(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTargetLetter(*v)
	}
	return _u
}

// ClearTargetLetter clears the value of the "target_letter" field.
func (_u *AttemptEventUpdate) ClearTargetLetter() *AttemptEventUpdate {
	_u.mutation.ClearTargetLetter()
	return _u
}

// SetSelectedID sets the "selected_id" field.
func (_u *AttemptEventUpdate) SetSelectedID(v string) *AttemptEventUpdate {
	_u.mutation.SetSelectedID(v)
	return _u
}

// SetNillableSelectedID sets the "selected_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSelectedID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSelectedID(*v)
	}
	return _u
}

// ClearSelectedID clears the value of the "selected_id" field.
func (_u *AttemptEventUpdate) ClearSelectedID() *AttemptEventUpdate {
	_u.mutation.ClearSelectedID()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetRiskWeight sets the "risk_weight" field.
func (_u *AttemptEventUpdate) SetRiskWeight(v int) *AttemptEventUpdate {
	_u.mutation.ResetRiskWeight()
	_u.mutation.SetRiskWeight(v)
	return _u
}

// SetNillableRiskWeight sets the "risk_weight" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableRiskWeight(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetRiskWeight(*v)
	}
	return _u
}

// AddRiskWeight adds value to the "risk_weight" field.
func (_u *AttemptEventUpdate) AddRiskWeight(v int) *AttemptEventUpdate {
	_u.mutation.AddRiskWeight(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptEventUpdate) SetResponseTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableResponseTimeMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptEventUpdate) AddResponseTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := attemptevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := attemptevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(attemptevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Epoch(); ok {
		_spec.SetField(attemptevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpoch(); ok {
		_spec.AddField(attemptevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(attemptevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLetter(); ok {
		_spec.SetField(attemptevent.FieldTargetLetter, field.TypeString, value)
	}
	if _u.mutation.TargetLetterCleared() {
		_spec.ClearField(attemptevent.FieldTargetLetter, field.TypeString)
	}
	if value, ok := _u.mutation.SelectedID(); ok {
		_spec.SetField(attemptevent.FieldSelectedID, field.TypeString, value)
	}
	if _u.mutation.SelectedIDCleared() {
		_spec.ClearField(attemptevent.FieldSelectedID, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskWeight(); ok {
		_spec.SetField(attemptevent.FieldRiskWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskWeight(); ok {
		_spec.AddField(attemptevent.FieldRiskWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdateOne) SetUserID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *AttemptEventUpdateOne) SetModuleID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableModuleID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdateOne) SetLevel(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLevel(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AttemptEventUpdateOne) AddLevel(v int) *AttemptEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetEpoch sets the "epoch" field.
func (_u *AttemptEventUpdateOne) SetEpoch(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetEpoch()
	_u.mutation.SetEpoch(v)
	return _u
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableEpoch(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetEpoch(*v)
	}
	return _u
}

// AddEpoch adds value to the "epoch" field.
func (_u *AttemptEventUpdateOne) AddEpoch(v int) *AttemptEventUpdateOne {
	_u.mutation.AddEpoch(v)
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AttemptEventUpdateOne) SetQuestionType(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionType(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetTargetLetter sets the "target_letter" field.
func (_u *AttemptEventUpdateOne) SetTargetLetter(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTargetLetter(v)
	return _u
}

// SetNillableTargetLetter sets the "target_letter" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTargetLetter(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTargetLetter(*v)
	}
	return _u
}

// ClearTargetLetter clears the value of the "target_letter" field.
func (_u *AttemptEventUpdateOne) ClearTargetLetter() *AttemptEventUpdateOne {
	_u.mutation.ClearTargetLetter()
	return _u
}

// SetSelectedID sets the "selected_id" field.
func (_u *AttemptEventUpdateOne) SetSelectedID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSelectedID(v)
	return _u
}

// SetNillableSelectedID sets the "selected_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSelectedID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSelectedID(*v)
	}
	return _u
}

// ClearSelectedID clears the value of the "selected_id" field.
func (_u *AttemptEventUpdateOne) ClearSelectedID() *AttemptEventUpdateOne {
	_u.mutation.ClearSelectedID()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetRiskWeight sets the "risk_weight" field.
func (_u *AttemptEventUpdateOne) SetRiskWeight(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetRiskWeight()
	_u.mutation.SetRiskWeight(v)
	return _u
}

// SetNillableRiskWeight sets the "risk_weight" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableRiskWeight(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetRiskWeight(*v)
	}
	return _u
}

// AddRiskWeight adds value to the "risk_weight" field.
func (_u *AttemptEventUpdateOne) AddRiskWeight(v int) *AttemptEventUpdateOne {
	_u.mutation.AddRiskWeight(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptEventUpdateOne) SetResponseTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableResponseTimeMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptEventUpdateOne) AddResponseTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := attemptevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := attemptevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(attemptevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Epoch(); ok {
		_spec.SetField(attemptevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpoch(); ok {
		_spec.AddField(attemptevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(attemptevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLetter(); ok {
		_spec.SetField(attemptevent.FieldTargetLetter, field.TypeString, value)
	}
	if _u.mutation.TargetLetterCleared() {
		_spec.ClearField(attemptevent.FieldTargetLetter, field.TypeString)
	}
	if value, ok := _u.mutation.SelectedID(); ok {
		_spec.SetField(attemptevent.FieldSelectedID, field.TypeString, value)
	}
	if _u.mutation.SelectedIDCleared() {
		_spec.ClearField(attemptevent.FieldSelectedID, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskWeight(); ok {
		_spec.SetField(attemptevent.FieldRiskWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRiskWeight(); ok {
		_spec.AddField(attemptevent.FieldRiskWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
