// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/predicate"
	"github.com/abhisek/docent/ent/tutoringevent"
)

// TutoringEventUpdate is the builder for updating TutoringEvent entities.
type TutoringEventUpdate struct {
	config
	hooks    []Hook
	mutation *TutoringEventMutation
}

// Where appends a list predicates to the TutoringEventUpdate builder.
func (_u *TutoringEventUpdate) Where(ps ...predicate.TutoringEvent) *TutoringEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TutoringEventUpdate) SetSessionID(v string) *TutoringEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TutoringEventUpdate) SetNillableSessionID(v *string) *TutoringEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TutoringEventUpdate) SetDocumentID(v string) *TutoringEventUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TutoringEventUpdate) SetNillableDocumentID(v *string) *TutoringEventUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TutoringEventUpdate) SetAction(v string) *TutoringEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TutoringEventUpdate) SetNillableAction(v *string) *TutoringEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStateFrom sets the "state_from" field.
func (_u *TutoringEventUpdate) SetStateFrom(v string) *TutoringEventUpdate {
	_u.mutation.SetStateFrom(v)
	return _u
}

// SetNillableStateFrom sets the "state_from" field if the given value is not nil.
func (_u *TutoringEventUpdate) SetNillableStateFrom(v *string) *TutoringEventUpdate {
	if v != nil {
		_u.SetStateFrom(*v)
	}
	return _u
}

// SetStateTo sets the "state_to" field.
func (_u *TutoringEventUpdate) SetStateTo(v string) *TutoringEventUpdate {
	_u.mutation.SetStateTo(v)
	return _u
}

// SetNillableStateTo sets the "state_to" field if the given value is not nil.
func (_u *TutoringEventUpdate) SetNillableStateTo(v *string) *TutoringEventUpdate {
	if v != nil {
		_u.SetStateTo(*v)
	}
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *TutoringEventUpdate) SetSectionIndex(v int) *TutoringEventUpdate {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *TutoringEventUpdate) SetNillableSectionIndex(v *int) *TutoringEventUpdate {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *TutoringEventUpdate) AddSectionIndex(v int) *TutoringEventUpdate {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// Mutation returns the TutoringEventMutation object of the builder.
func (_u *TutoringEventUpdate) Mutation() *TutoringEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutoringEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutoringEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutoringEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutoringEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutoringEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := tutoringevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutoringEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := tutoringevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TutoringEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *TutoringEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutoringevent.Table, tutoringevent.Columns, sqlgraph.NewFieldSpec(tutoringevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tutoringevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(tutoringevent.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tutoringevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateFrom(); ok {
		_spec.SetField(tutoringevent.FieldStateFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateTo(); ok {
		_spec.SetField(tutoringevent.FieldStateTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(tutoringevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(tutoringevent.FieldSectionIndex, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutoringevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutoringEventUpdateOne is the builder for updating a single TutoringEvent entity.
type TutoringEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutoringEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TutoringEventUpdateOne) SetSessionID(v string) *TutoringEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TutoringEventUpdateOne) SetNillableSessionID(v *string) *TutoringEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TutoringEventUpdateOne) SetDocumentID(v string) *TutoringEventUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TutoringEventUpdateOne) SetNillableDocumentID(v *string) *TutoringEventUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *TutoringEventUpdateOne) SetAction(v string) *TutoringEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TutoringEventUpdateOne) SetNillableAction(v *string) *TutoringEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStateFrom sets the "state_from" field.
func (_u *TutoringEventUpdateOne) SetStateFrom(v string) *TutoringEventUpdateOne {
	_u.mutation.SetStateFrom(v)
	return _u
}

// SetNillableStateFrom sets the "state_from" field if the given value is not nil.
func (_u *TutoringEventUpdateOne) SetNillableStateFrom(v *string) *TutoringEventUpdateOne {
	if v != nil {
		_u.SetStateFrom(*v)
	}
	return _u
}

// SetStateTo sets the "state_to" field.
func (_u *TutoringEventUpdateOne) SetStateTo(v string) *TutoringEventUpdateOne {
	_u.mutation.SetStateTo(v)
	return _u
}

// SetNillableStateTo sets the "state_to" field if the given value is not nil.
func (_u *TutoringEventUpdateOne) SetNillableStateTo(v *string) *TutoringEventUpdateOne {
	if v != nil {
		_u.SetStateTo(*v)
	}
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *TutoringEventUpdateOne) SetSectionIndex(v int) *TutoringEventUpdateOne {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *TutoringEventUpdateOne) SetNillableSectionIndex(v *int) *TutoringEventUpdateOne {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *TutoringEventUpdateOne) AddSectionIndex(v int) *TutoringEventUpdateOne {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// Mutation returns the TutoringEventMutation object of the builder.
func (_u *TutoringEventUpdateOne) Mutation() *TutoringEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutoringEventUpdate builder.
func (_u *TutoringEventUpdateOne) Where(ps ...predicate.TutoringEvent) *TutoringEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutoringEventUpdateOne) Select(field string, fields ...string) *TutoringEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutoringEvent entity.
func (_u *TutoringEventUpdateOne) Save(ctx context.Context) (*TutoringEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutoringEventUpdateOne) SaveX(ctx context.Context) *TutoringEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutoringEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutoringEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutoringEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := tutoringevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutoringEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := tutoringevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TutoringEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *TutoringEventUpdateOne) sqlSave(ctx context.Context) (_node *TutoringEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutoringevent.Table, tutoringevent.Columns, sqlgraph.NewFieldSpec(tutoringevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutoringEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutoringevent.FieldID)
		for _, f := range fields {
			if !tutoringevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutoringevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tutoringevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(tutoringevent.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tutoringevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateFrom(); ok {
		_spec.SetField(tutoringevent.FieldStateFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateTo(); ok {
		_spec.SetField(tutoringevent.FieldStateTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(tutoringevent.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(tutoringevent.FieldSectionIndex, field.TypeInt, value)
	}
	_node = &TutoringEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutoringevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
