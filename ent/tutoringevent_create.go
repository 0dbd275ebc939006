// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/tutoringevent"
)

// TutoringEventCreate is the builder for creating a TutoringEvent entity.
type TutoringEventCreate struct {
	config
	mutation *TutoringEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TutoringEventCreate) SetSequence(v int64) *TutoringEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TutoringEventCreate) SetTimestamp(v time.Time) *TutoringEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TutoringEventCreate) SetNillableTimestamp(v *time.Time) *TutoringEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TutoringEventCreate) SetSessionID(v string) *TutoringEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *TutoringEventCreate) SetDocumentID(v string) *TutoringEventCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_c *TutoringEventCreate) SetNillableDocumentID(v *string) *TutoringEventCreate {
	if v != nil {
		_c.SetDocumentID(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *TutoringEventCreate) SetAction(v string) *TutoringEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetStateFrom sets the "state_from" field.
func (_c *TutoringEventCreate) SetStateFrom(v string) *TutoringEventCreate {
	_c.mutation.SetStateFrom(v)
	return _c
}

// SetNillableStateFrom sets the "state_from" field if the given value is not nil.
func (_c *TutoringEventCreate) SetNillableStateFrom(v *string) *TutoringEventCreate {
	if v != nil {
		_c.SetStateFrom(*v)
	}
	return _c
}

// SetStateTo sets the "state_to" field.
func (_c *TutoringEventCreate) SetStateTo(v string) *TutoringEventCreate {
	_c.mutation.SetStateTo(v)
	return _c
}

// SetNillableStateTo sets the "state_to" field if the given value is not nil.
func (_c *TutoringEventCreate) SetNillableStateTo(v *string) *TutoringEventCreate {
	if v != nil {
		_c.SetStateTo(*v)
	}
	return _c
}

// SetSectionIndex sets the "section_index" field.
func (_c *TutoringEventCreate) SetSectionIndex(v int) *TutoringEventCreate {
	_c.mutation.SetSectionIndex(v)
	return _c
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_c *TutoringEventCreate) SetNillableSectionIndex(v *int) *TutoringEventCreate {
	if v != nil {
		_c.SetSectionIndex(*v)
	}
	return _c
}

// Mutation returns the TutoringEventMutation object of the builder.
func (_c *TutoringEventCreate) Mutation() *TutoringEventMutation {
	return _c.mutation
}

// Save creates the TutoringEvent in the database.
func (_c *TutoringEventCreate) Save(ctx context.Context) (*TutoringEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutoringEventCreate) SaveX(ctx context.Context) *TutoringEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutoringEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutoringEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutoringEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := tutoringevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		v := tutoringevent.DefaultDocumentID
		_c.mutation.SetDocumentID(v)
	}
	if _, ok := _c.mutation.StateFrom(); !ok {
		v := tutoringevent.DefaultStateFrom
		_c.mutation.SetStateFrom(v)
	}
	if _, ok := _c.mutation.StateTo(); !ok {
		v := tutoringevent.DefaultStateTo
		_c.mutation.SetStateTo(v)
	}
	if _, ok := _c.mutation.SectionIndex(); !ok {
		v := tutoringevent.DefaultSectionIndex
		_c.mutation.SetSectionIndex(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutoringEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TutoringEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TutoringEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TutoringEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := tutoringevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutoringEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "TutoringEvent.document_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "TutoringEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := tutoringevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TutoringEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateFrom(); !ok {
		return &ValidationError{Name: "state_from", err: errors.New(`ent: missing required field "TutoringEvent.state_from"`)}
	}
	if _, ok := _c.mutation.StateTo(); !ok {
		return &ValidationError{Name: "state_to", err: errors.New(`ent: missing required field "TutoringEvent.state_to"`)}
	}
	if _, ok := _c.mutation.SectionIndex(); !ok {
		return &ValidationError{Name: "section_index", err: errors.New(`ent: missing required field "TutoringEvent.section_index"`)}
	}
	return nil
}

func (_c *TutoringEventCreate) sqlSave(ctx context.Context) (*TutoringEvent, error) {
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

func (_c *TutoringEventCreate) createSpec() (*TutoringEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TutoringEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutoringevent.Table, sqlgraph.NewFieldSpec(tutoringevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(tutoringevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(tutoringevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(tutoringevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(tutoringevent.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(tutoringevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.StateFrom(); ok {
		_spec.SetField(tutoringevent.FieldStateFrom, field.TypeString, value)
		_node.StateFrom = value
	}
	if value, ok := _c.mutation.StateTo(); ok {
		_spec.SetField(tutoringevent.FieldStateTo, field.TypeString, value)
		_node.StateTo = value
	}
	if value, ok := _c.mutation.SectionIndex(); ok {
		_spec.SetField(tutoringevent.FieldSectionIndex, field.TypeInt, value)
		_node.SectionIndex = value
	}
	return _node, _spec
}

// TutoringEventCreateBulk is the builder for creating many TutoringEvent entities in bulk.
type TutoringEventCreateBulk struct {
	config
	err      error
	builders []*TutoringEventCreate
}

// Save creates the TutoringEvent entities in the database.
func (_c *TutoringEventCreateBulk) Save(ctx context.Context) ([]*TutoringEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutoringEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutoringEventMutation)
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
func (_c *TutoringEventCreateBulk) SaveX(ctx context.Context) []*TutoringEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutoringEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutoringEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
