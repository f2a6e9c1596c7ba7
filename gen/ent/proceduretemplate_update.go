// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/predicate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/proceduretemplate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/google/uuid"
)

// ProcedureTemplateUpdate is the builder for updating ProcedureTemplate entities.
type ProcedureTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *ProcedureTemplateMutation
}

// Where appends a list predicates to the ProcedureTemplateUpdate builder.
func (_u *ProcedureTemplateUpdate) Where(ps ...predicate.ProcedureTemplate) *ProcedureTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ProcedureTemplateUpdate) SetProfileID(v uuid.UUID) *ProcedureTemplateUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ProcedureTemplateUpdate) SetNillableProfileID(v *uuid.UUID) *ProcedureTemplateUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProcedureTemplateUpdate) SetName(v string) *ProcedureTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcedureTemplateUpdate) SetNillableName(v *string) *ProcedureTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCashPrice sets the "cash_price" field.
func (_u *ProcedureTemplateUpdate) SetCashPrice(v float64) *ProcedureTemplateUpdate {
	_u.mutation.ResetCashPrice()
	_u.mutation.SetCashPrice(v)
	return _u
}

// SetNillableCashPrice sets the "cash_price" field if the given value is not nil.
func (_u *ProcedureTemplateUpdate) SetNillableCashPrice(v *float64) *ProcedureTemplateUpdate {
	if v != nil {
		_u.SetCashPrice(*v)
	}
	return _u
}

// AddCashPrice adds value to the "cash_price" field.
func (_u *ProcedureTemplateUpdate) AddCashPrice(v float64) *ProcedureTemplateUpdate {
	_u.mutation.AddCashPrice(v)
	return _u
}

// SetInsurancePrice sets the "insurance_price" field.
func (_u *ProcedureTemplateUpdate) SetInsurancePrice(v float64) *ProcedureTemplateUpdate {
	_u.mutation.ResetInsurancePrice()
	_u.mutation.SetInsurancePrice(v)
	return _u
}

// SetNillableInsurancePrice sets the "insurance_price" field if the given value is not nil.
func (_u *ProcedureTemplateUpdate) SetNillableInsurancePrice(v *float64) *ProcedureTemplateUpdate {
	if v != nil {
		_u.SetInsurancePrice(*v)
	}
	return _u
}

// AddInsurancePrice adds value to the "insurance_price" field.
func (_u *ProcedureTemplateUpdate) AddInsurancePrice(v float64) *ProcedureTemplateUpdate {
	_u.mutation.AddInsurancePrice(v)
	return _u
}

// ClearInsurancePrice clears the value of the "insurance_price" field.
func (_u *ProcedureTemplateUpdate) ClearInsurancePrice() *ProcedureTemplateUpdate {
	_u.mutation.ClearInsurancePrice()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcedureTemplateUpdate) SetCreatedAt(v time.Time) *ProcedureTemplateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcedureTemplateUpdate) SetNillableCreatedAt(v *time.Time) *ProcedureTemplateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcedureTemplateUpdate) SetUpdatedAt(v time.Time) *ProcedureTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ProcedureTemplateUpdate) SetProfile(v *Profile) *ProcedureTemplateUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the ProcedureTemplateMutation object of the builder.
func (_u *ProcedureTemplateUpdate) Mutation() *ProcedureTemplateMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ProcedureTemplateUpdate) ClearProfile() *ProcedureTemplateUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcedureTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcedureTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcedureTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcedureTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcedureTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proceduretemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcedureTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := proceduretemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProcedureTemplate.name": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcedureTemplate.profile"`)
	}
	return nil
}

func (_u *ProcedureTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proceduretemplate.Table, proceduretemplate.Columns, sqlgraph.NewFieldSpec(proceduretemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(proceduretemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CashPrice(); ok {
		_spec.SetField(proceduretemplate.FieldCashPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashPrice(); ok {
		_spec.AddField(proceduretemplate.FieldCashPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InsurancePrice(); ok {
		_spec.SetField(proceduretemplate.FieldInsurancePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInsurancePrice(); ok {
		_spec.AddField(proceduretemplate.FieldInsurancePrice, field.TypeFloat64, value)
	}
	if _u.mutation.InsurancePriceCleared() {
		_spec.ClearField(proceduretemplate.FieldInsurancePrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(proceduretemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proceduretemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proceduretemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcedureTemplateUpdateOne is the builder for updating a single ProcedureTemplate entity.
type ProcedureTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcedureTemplateMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *ProcedureTemplateUpdateOne) SetProfileID(v uuid.UUID) *ProcedureTemplateUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ProcedureTemplateUpdateOne) SetNillableProfileID(v *uuid.UUID) *ProcedureTemplateUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProcedureTemplateUpdateOne) SetName(v string) *ProcedureTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcedureTemplateUpdateOne) SetNillableName(v *string) *ProcedureTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCashPrice sets the "cash_price" field.
func (_u *ProcedureTemplateUpdateOne) SetCashPrice(v float64) *ProcedureTemplateUpdateOne {
	_u.mutation.ResetCashPrice()
	_u.mutation.SetCashPrice(v)
	return _u
}

// SetNillableCashPrice sets the "cash_price" field if the given value is not nil.
func (_u *ProcedureTemplateUpdateOne) SetNillableCashPrice(v *float64) *ProcedureTemplateUpdateOne {
	if v != nil {
		_u.SetCashPrice(*v)
	}
	return _u
}

// AddCashPrice adds value to the "cash_price" field.
func (_u *ProcedureTemplateUpdateOne) AddCashPrice(v float64) *ProcedureTemplateUpdateOne {
	_u.mutation.AddCashPrice(v)
	return _u
}

// SetInsurancePrice sets the "insurance_price" field.
func (_u *ProcedureTemplateUpdateOne) SetInsurancePrice(v float64) *ProcedureTemplateUpdateOne {
	_u.mutation.ResetInsurancePrice()
	_u.mutation.SetInsurancePrice(v)
	return _u
}

// SetNillableInsurancePrice sets the "insurance_price" field if the given value is not nil.
func (_u *ProcedureTemplateUpdateOne) SetNillableInsurancePrice(v *float64) *ProcedureTemplateUpdateOne {
	if v != nil {
		_u.SetInsurancePrice(*v)
	}
	return _u
}

// AddInsurancePrice adds value to the "insurance_price" field.
func (_u *ProcedureTemplateUpdateOne) AddInsurancePrice(v float64) *ProcedureTemplateUpdateOne {
	_u.mutation.AddInsurancePrice(v)
	return _u
}

// ClearInsurancePrice clears the value of the "insurance_price" field.
func (_u *ProcedureTemplateUpdateOne) ClearInsurancePrice() *ProcedureTemplateUpdateOne {
	_u.mutation.ClearInsurancePrice()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcedureTemplateUpdateOne) SetCreatedAt(v time.Time) *ProcedureTemplateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcedureTemplateUpdateOne) SetNillableCreatedAt(v *time.Time) *ProcedureTemplateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcedureTemplateUpdateOne) SetUpdatedAt(v time.Time) *ProcedureTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ProcedureTemplateUpdateOne) SetProfile(v *Profile) *ProcedureTemplateUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the ProcedureTemplateMutation object of the builder.
func (_u *ProcedureTemplateUpdateOne) Mutation() *ProcedureTemplateMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ProcedureTemplateUpdateOne) ClearProfile() *ProcedureTemplateUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the ProcedureTemplateUpdate builder.
func (_u *ProcedureTemplateUpdateOne) Where(ps ...predicate.ProcedureTemplate) *ProcedureTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcedureTemplateUpdateOne) Select(field string, fields ...string) *ProcedureTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcedureTemplate entity.
func (_u *ProcedureTemplateUpdateOne) Save(ctx context.Context) (*ProcedureTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcedureTemplateUpdateOne) SaveX(ctx context.Context) *ProcedureTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcedureTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcedureTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcedureTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proceduretemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcedureTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := proceduretemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ProcedureTemplate.name": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcedureTemplate.profile"`)
	}
	return nil
}

func (_u *ProcedureTemplateUpdateOne) sqlSave(ctx context.Context) (_node *ProcedureTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proceduretemplate.Table, proceduretemplate.Columns, sqlgraph.NewFieldSpec(proceduretemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcedureTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proceduretemplate.FieldID)
		for _, f := range fields {
			if !proceduretemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proceduretemplate.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(proceduretemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CashPrice(); ok {
		_spec.SetField(proceduretemplate.FieldCashPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCashPrice(); ok {
		_spec.AddField(proceduretemplate.FieldCashPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InsurancePrice(); ok {
		_spec.SetField(proceduretemplate.FieldInsurancePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInsurancePrice(); ok {
		_spec.AddField(proceduretemplate.FieldInsurancePrice, field.TypeFloat64, value)
	}
	if _u.mutation.InsurancePriceCleared() {
		_spec.ClearField(proceduretemplate.FieldInsurancePrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(proceduretemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proceduretemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcedureTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proceduretemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
