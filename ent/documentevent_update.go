// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/documentevent"
	"github.com/abhisek/docent/ent/predicate"
)

// DocumentEventUpdate is the builder for updating DocumentEvent entities.
type DocumentEventUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentEventMutation
}

// Where appends a list predicates to the DocumentEventUpdate builder.
func (_u *DocumentEventUpdate) Where(ps ...predicate.DocumentEvent) *DocumentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentEventUpdate) SetDocumentID(v string) *DocumentEventUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableDocumentID(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *DocumentEventUpdate) SetAction(v string) *DocumentEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableAction(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentEventUpdate) SetTitle(v string) *DocumentEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableTitle(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentEventUpdate) SetSourceType(v string) *DocumentEventUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableSourceType(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSectionCount sets the "section_count" field.
func (_u *DocumentEventUpdate) SetSectionCount(v int) *DocumentEventUpdate {
	_u.mutation.ResetSectionCount()
	_u.mutation.SetSectionCount(v)
	return _u
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableSectionCount(v *int) *DocumentEventUpdate {
	if v != nil {
		_u.SetSectionCount(*v)
	}
	return _u
}

// AddSectionCount adds value to the "section_count" field.
func (_u *DocumentEventUpdate) AddSectionCount(v int) *DocumentEventUpdate {
	_u.mutation.AddSectionCount(v)
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *DocumentEventUpdate) SetChunkCount(v int) *DocumentEventUpdate {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableChunkCount(v *int) *DocumentEventUpdate {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *DocumentEventUpdate) AddChunkCount(v int) *DocumentEventUpdate {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetCharCount sets the "char_count" field.
func (_u *DocumentEventUpdate) SetCharCount(v int) *DocumentEventUpdate {
	_u.mutation.ResetCharCount()
	_u.mutation.SetCharCount(v)
	return _u
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableCharCount(v *int) *DocumentEventUpdate {
	if v != nil {
		_u.SetCharCount(*v)
	}
	return _u
}

// AddCharCount adds value to the "char_count" field.
func (_u *DocumentEventUpdate) AddCharCount(v int) *DocumentEventUpdate {
	_u.mutation.AddCharCount(v)
	return _u
}

// Mutation returns the DocumentEventMutation object of the builder.
func (_u *DocumentEventUpdate) Mutation() *DocumentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentEventUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := documentevent.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := documentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentevent.Table, documentevent.Columns, sqlgraph.NewFieldSpec(documentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(documentevent.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(documentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(documentevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(documentevent.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionCount(); ok {
		_spec.SetField(documentevent.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionCount(); ok {
		_spec.AddField(documentevent.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(documentevent.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(documentevent.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CharCount(); ok {
		_spec.SetField(documentevent.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharCount(); ok {
		_spec.AddField(documentevent.FieldCharCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentEventUpdateOne is the builder for updating a single DocumentEvent entity.
type DocumentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentEventMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentEventUpdateOne) SetDocumentID(v string) *DocumentEventUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableDocumentID(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *DocumentEventUpdateOne) SetAction(v string) *DocumentEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableAction(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentEventUpdateOne) SetTitle(v string) *DocumentEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableTitle(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentEventUpdateOne) SetSourceType(v string) *DocumentEventUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableSourceType(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSectionCount sets the "section_count" field.
func (_u *DocumentEventUpdateOne) SetSectionCount(v int) *DocumentEventUpdateOne {
	_u.mutation.ResetSectionCount()
	_u.mutation.SetSectionCount(v)
	return _u
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableSectionCount(v *int) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetSectionCount(*v)
	}
	return _u
}

// AddSectionCount adds value to the "section_count" field.
func (_u *DocumentEventUpdateOne) AddSectionCount(v int) *DocumentEventUpdateOne {
	_u.mutation.AddSectionCount(v)
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *DocumentEventUpdateOne) SetChunkCount(v int) *DocumentEventUpdateOne {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableChunkCount(v *int) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *DocumentEventUpdateOne) AddChunkCount(v int) *DocumentEventUpdateOne {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetCharCount sets the "char_count" field.
func (_u *DocumentEventUpdateOne) SetCharCount(v int) *DocumentEventUpdateOne {
	_u.mutation.ResetCharCount()
	_u.mutation.SetCharCount(v)
	return _u
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableCharCount(v *int) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetCharCount(*v)
	}
	return _u
}

// AddCharCount adds value to the "char_count" field.
func (_u *DocumentEventUpdateOne) AddCharCount(v int) *DocumentEventUpdateOne {
	_u.mutation.AddCharCount(v)
	return _u
}

// Mutation returns the DocumentEventMutation object of the builder.
func (_u *DocumentEventUpdateOne) Mutation() *DocumentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentEventUpdate builder.
func (_u *DocumentEventUpdateOne) Where(ps ...predicate.DocumentEvent) *DocumentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentEventUpdateOne) Select(field string, fields ...string) *DocumentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentEvent entity.
func (_u *DocumentEventUpdateOne) Save(ctx context.Context) (*DocumentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentEventUpdateOne) SaveX(ctx context.Context) *DocumentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentEventUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := documentevent.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := documentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentEventUpdateOne) sqlSave(ctx context.Context) (_node *DocumentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentevent.Table, documentevent.Columns, sqlgraph.NewFieldSpec(documentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentevent.FieldID)
		for _, f := range fields {
			if !documentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentevent.FieldID {
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
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(documentevent.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(documentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(documentevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(documentevent.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionCount(); ok {
		_spec.SetField(documentevent.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionCount(); ok {
		_spec.AddField(documentevent.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(documentevent.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(documentevent.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CharCount(); ok {
		_spec.SetField(documentevent.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharCount(); ok {
		_spec.AddField(documentevent.FieldCharCount, field.TypeInt, value)
	}
	_node = &DocumentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
