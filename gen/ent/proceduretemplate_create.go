// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/proceduretemplate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/google/uuid"
)

// ProcedureTemplateCreate is the builder for creating a ProcedureTemplate entity.
type ProcedureTemplateCreate struct {
	config
	mutation *ProcedureTemplateMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *ProcedureTemplateCreate) SetProfileID(v uuid.UUID) *ProcedureTemplateCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProcedureTemplateCreate) SetName(v string) *ProcedureTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCashPrice sets the "cash_price" field.
func (_c *ProcedureTemplateCreate) SetCashPrice(v float64) *ProcedureTemplateCreate {
	_c.mutation.SetCashPrice(v)
	return _c
}

// SetInsurancePrice sets the "insurance_price" field.
func (_c *ProcedureTemplateCreate) SetInsurancePrice(v float64) *ProcedureTemplateCreate {
	_c.mutation.SetInsurancePrice(v)
	return _c
}

// SetNillableInsurancePrice sets the "insurance_price" field if the given value is not nil.
func (_c *ProcedureTemplateCreate) SetNillableInsurancePrice(v *float64) *ProcedureTemplateCreate {
	if v != nil {
		_c.SetInsurancePrice(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcedureTemplateCreate) SetCreatedAt(v time.Time) *ProcedureTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcedureTemplateCreate) SetNillableCreatedAt(v *time.Time) *ProcedureTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcedureTemplateCreate) SetUpdatedAt(v time.Time) *ProcedureTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcedureTemplateCreate) SetNillableUpdatedAt(v *time.Time) *ProcedureTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcedureTemplateCreate) SetID(v uuid.UUID) *ProcedureTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcedureTemplateCreate) SetNillableID(v *uuid.UUID) *ProcedureTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ProcedureTemplateCreate) SetProfile(v *Profile) *ProcedureTemplateCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the ProcedureTemplateMutation object of the builder.
func (_c *ProcedureTemplateCreate) Mutation() *ProcedureTemplateMutation {
	return _c.mutation
}

// Save creates the ProcedureTemplate in the database.
func (_c *ProcedureTemplateCreate) Save(ctx context.Context) (*ProcedureTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcedureTemplateCreate) SaveX(ctx context.Context) *ProcedureTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcedureTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcedureTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcedureTemplateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := proceduretemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := proceduretemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := proceduretemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcedureTemplateCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ProcedureTemplate.profile_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ProcedureTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := proceduretemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProcedureTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CashPrice(); !ok {
		return &ValidationError{Name: "cash_price", err: errors.New(`ent: missing required field "ProcedureTemplate.cash_price"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcedureTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProcedureTemplate.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "ProcedureTemplate.profile"`)}
	}
	return nil
}

func (_c *ProcedureTemplateCreate) sqlSave(ctx context.Context) (*ProcedureTemplate, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcedureTemplateCreate) createSpec() (*ProcedureTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcedureTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proceduretemplate.Table, sqlgraph.NewFieldSpec(proceduretemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(proceduretemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CashPrice(); ok {
		_spec.SetField(proceduretemplate.FieldCashPrice, field.TypeFloat64, value)
		_node.CashPrice = value
	}
	if value, ok := _c.mutation.InsurancePrice(); ok {
		_spec.SetField(proceduretemplate.FieldInsurancePrice, field.TypeFloat64, value)
		_node.InsurancePrice = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(proceduretemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(proceduretemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   proceduretemplate.ProfileTable,
			Columns: []string{proceduretemplate.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcedureTemplateCreateBulk is the builder for creating many ProcedureTemplate entities in bulk.
type ProcedureTemplateCreateBulk struct {
	config
	err      error
	builders []*ProcedureTemplateCreate
}

// Save creates the ProcedureTemplate entities in the database.
func (_c *ProcedureTemplateCreateBulk) Save(ctx context.Context) ([]*ProcedureTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcedureTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcedureTemplateMutation)
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
func (_c *ProcedureTemplateCreateBulk) SaveX(ctx context.Context) []*ProcedureTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcedureTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcedureTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
