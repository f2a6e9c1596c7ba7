// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/predicate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/proceduretemplate"
)

// ProcedureTemplateDelete is the builder for deleting a ProcedureTemplate entity.
type ProcedureTemplateDelete struct {
	config
	hooks    []Hook
	mutation *ProcedureTemplateMutation
}

// Where appends a list predicates to the ProcedureTemplateDelete builder.
func (_d *ProcedureTemplateDelete) Where(ps ...predicate.ProcedureTemplate) *ProcedureTemplateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcedureTemplateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcedureTemplateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcedureTemplateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(proceduretemplate.Table, sqlgraph.NewFieldSpec(proceduretemplate.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProcedureTemplateDeleteOne is the builder for deleting a single ProcedureTemplate entity.
type ProcedureTemplateDeleteOne struct {
	_d *ProcedureTemplateDelete
}

// Where appends a list predicates to the ProcedureTemplateDelete builder.
func (_d *ProcedureTemplateDeleteOne) Where(ps ...predicate.ProcedureTemplate) *ProcedureTemplateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcedureTemplateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{proceduretemplate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcedureTemplateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
