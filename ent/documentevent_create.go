// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/documentevent"
)

// DocumentEventCreate is the builder for creating a DocumentEvent entity.
type DocumentEventCreate struct {
	config
	mutation *DocumentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DocumentEventCreate) SetSequence(v int64) *DocumentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DocumentEventCreate) SetTimestamp(v time.Time) *DocumentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DocumentEventCreate) SetNillableTimestamp(v *time.Time) *DocumentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentEventCreate) SetDocumentID(v string) *DocumentEventCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *DocumentEventCreate) SetAction(v string) *DocumentEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocumentEventCreate) SetTitle(v string) *DocumentEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DocumentEventCreate) SetNillableTitle(v *string) *DocumentEventCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *DocumentEventCreate) SetSourceType(v string) *DocumentEventCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *DocumentEventCreate) SetNillableSourceType(v *string) *DocumentEventCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetSectionCount sets the "section_count" field.
func (_c *DocumentEventCreate) SetSectionCount(v int) *DocumentEventCreate {
	_c.mutation.SetSectionCount(v)
	return _c
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_c *DocumentEventCreate) SetNillableSectionCount(v *int) *DocumentEventCreate {
	if v != nil {
		_c.SetSectionCount(*v)
	}
	return _c
}

// SetChunkCount sets the "chunk_count" field.
func (_c *DocumentEventCreate) SetChunkCount(v int) *DocumentEventCreate {
	_c.mutation.SetChunkCount(v)
	return _c
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_c *DocumentEventCreate) SetNillableChunkCount(v *int) *DocumentEventCreate {
	if v != nil {
		_c.SetChunkCount(*v)
	}
	return _c
}

// SetCharCount sets the "char_count" field.
func (_c *DocumentEventCreate) SetCharCount(v int) *DocumentEventCreate {
	_c.mutation.SetCharCount(v)
	return _c
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_c *DocumentEventCreate) SetNillableCharCount(v *int) *DocumentEventCreate {
	if v != nil {
		_c.SetCharCount(*v)
	}
	return _c
}

// Mutation returns the DocumentEventMutation object of the builder.
func (_c *DocumentEventCreate) Mutation() *DocumentEventMutation {
	return _c.mutation
}

// Save creates the DocumentEvent in the database.
func (_c *DocumentEventCreate) Save(ctx context.Context) (*DocumentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentEventCreate) SaveX(ctx context.Context) *DocumentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := documentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := documentevent.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		v := documentevent.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.SectionCount(); !ok {
		v := documentevent.DefaultSectionCount
		_c.mutation.SetSectionCount(v)
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		v := documentevent.DefaultChunkCount
		_c.mutation.SetChunkCount(v)
	}
	if _, ok := _c.mutation.CharCount(); !ok {
		v := documentevent.DefaultCharCount
		_c.mutation.SetCharCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DocumentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DocumentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentEvent.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := documentevent.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "DocumentEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := documentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "DocumentEvent.title"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "DocumentEvent.source_type"`)}
	}
	if _, ok := _c.mutation.SectionCount(); !ok {
		return &ValidationError{Name: "section_count", err: errors.New(`ent: missing required field "DocumentEvent.section_count"`)}
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		return &ValidationError{Name: "chunk_count", err: errors.New(`ent: missing required field "DocumentEvent.chunk_count"`)}
	}
	if _, ok := _c.mutation.CharCount(); !ok {
		return &ValidationError{Name: "char_count", err: errors.New(`ent: missing required field "DocumentEvent.char_count"`)}
	}
	return nil
}

func (_c *DocumentEventCreate) sqlSave(ctx context.Context) (*DocumentEvent, error) {
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

func (_c *DocumentEventCreate) createSpec() (*DocumentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentevent.Table, sqlgraph.NewFieldSpec(documentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(documentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(documentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(documentevent.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(documentevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(documentevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(documentevent.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SectionCount(); ok {
		_spec.SetField(documentevent.FieldSectionCount, field.TypeInt, value)
		_node.SectionCount = value
	}
	if value, ok := _c.mutation.ChunkCount(); ok {
		_spec.SetField(documentevent.FieldChunkCount, field.TypeInt, value)
		_node.ChunkCount = value
	}
	if value, ok := _c.mutation.CharCount(); ok {
		_spec.SetField(documentevent.FieldCharCount, field.TypeInt, value)
		_node.CharCount = value
	}
	return _node, _spec
}

// DocumentEventCreateBulk is the builder for creating many DocumentEvent entities in bulk.
type DocumentEventCreateBulk struct {
	config
	err      error
	builders []*DocumentEventCreate
}

// Save creates the DocumentEvent entities in the database.
func (_c *DocumentEventCreateBulk) Save(ctx context.Context) ([]*DocumentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentEventMutation)
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
func (_c *DocumentEventCreateBulk) SaveX(ctx context.Context) []*DocumentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
